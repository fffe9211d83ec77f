package service

import (
	"context"
	"errors"
	"time"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/game"
	"corvaxlab/internal/logger"
	"corvaxlab/internal/radix"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMachineNotFound = errors.New("machine not found")

// MachineService implements build, move, upgrade, activate and bulk sync.
// Every mutation runs in one transaction: lock balances and machines, settle
// amplifier upkeep, evaluate the rule, write, commit.
type MachineService struct {
	db             *pgxpool.Pool
	machineRepo    *repository.MachineRepository
	ledgerRepo     *repository.LedgerRepository
	userRepo       *repository.UserRepository
	gateway        *radix.Client
	strictFomoGate bool
}

func NewMachineService(db *pgxpool.Pool, gateway *radix.Client, strictFomoGate bool) *MachineService {
	return &MachineService{
		db:             db,
		machineRepo:    repository.NewMachineRepository(db),
		ledgerRepo:     repository.NewLedgerRepository(db),
		userRepo:       repository.NewUserRepository(db),
		gateway:        gateway,
		strictFomoGate: strictFomoGate,
	}
}

// mutation wraps the shared open-lock-settle prologue and commit epilogue.
func (s *MachineService) mutation(ctx context.Context, userID int64, fn func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balances, err := s.ledgerRepo.LockBalances(ctx, tx, userID)
	if err != nil {
		return err
	}
	machines, err := s.machineRepo.ListForUserLocked(ctx, tx, userID)
	if err != nil {
		return err
	}

	nowMs := time.Now().UnixMilli()
	if err := settleAmplifiers(ctx, tx, s.machineRepo, s.ledgerRepo, userID, machines, balances, nowMs); err != nil {
		return err
	}

	if err := fn(tx, machines, balances, nowMs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *MachineService) pay(ctx context.Context, tx pgx.Tx, userID int64, balances map[string]float64, cost game.Cost) error {
	if !game.Affordable(cost, balances) {
		return game.ErrInsufficientFunds
	}
	for name, amount := range cost {
		balances[name] -= amount
		if err := s.ledgerRepo.SetBalance(ctx, tx, userID, name, balances[name]); err != nil {
			return err
		}
	}
	return nil
}

// Build creates a machine after checking cost, gates, bounds and collisions.
func (s *MachineService) Build(ctx context.Context, userID int64, machineType string, x, y, room int) (*domain.Machine, map[string]float64, error) {
	var built *domain.Machine
	var finalBalances map[string]float64

	err := s.mutation(ctx, userID, func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error {
		cost, err := game.BuildCost(machines, machineType, s.strictFomoGate)
		if err != nil {
			return err
		}
		if err := game.ValidatePlacement(machines, 0, x, y, room); err != nil {
			return err
		}
		if err := s.pay(ctx, tx, userID, balances, cost); err != nil {
			return err
		}

		m := &domain.Machine{
			UserID:    userID,
			Type:      machineType,
			X:         x,
			Y:         y,
			Room:      room,
			Level:     1,
			IsOffline: machineType == domain.MachineIncubator,
		}
		if machineType == domain.MachineAmplifier {
			// First upkeep cycle starts now, not on the next settlement pass.
			m.NextBilling = nowMs + game.BillingIntervalMs
		}
		if err := s.machineRepo.Create(ctx, tx, m); err != nil {
			return err
		}

		built = m
		finalBalances = balances
		logger.Info("machine built", "user_id", userID, "type", machineType, "machine_id", m.ID)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return built, finalBalances, nil
}

// Move repositions a machine for a flat tcorvax fee.
func (s *MachineService) Move(ctx context.Context, userID, machineID int64, x, y, room int) (map[string]float64, error) {
	var finalBalances map[string]float64

	err := s.mutation(ctx, userID, func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error {
		m := findMachine(machines, machineID)
		if m == nil {
			return ErrMachineNotFound
		}
		if err := game.ValidatePlacement(machines, machineID, x, y, room); err != nil {
			return err
		}
		if err := s.pay(ctx, tx, userID, balances, game.Cost{domain.ResourceTcorvax: game.MoveCost}); err != nil {
			return err
		}
		if err := s.machineRepo.UpdatePosition(ctx, tx, machineID, x, y, room); err != nil {
			return err
		}
		finalBalances = balances
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finalBalances, nil
}

// Upgrade raises a machine one level, debiting the level-dependent cost.
func (s *MachineService) Upgrade(ctx context.Context, userID, machineID int64) (int, map[string]float64, error) {
	var newLevel int
	var finalBalances map[string]float64

	err := s.mutation(ctx, userID, func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error {
		m := findMachine(machines, machineID)
		if m == nil {
			return ErrMachineNotFound
		}
		cost, err := game.UpgradeCost(machines, *m)
		if err != nil {
			return err
		}
		if err := s.pay(ctx, tx, userID, balances, cost); err != nil {
			return err
		}
		if err := s.machineRepo.UpdateLevel(ctx, tx, machineID, m.Level+1); err != nil {
			return err
		}
		newLevel = m.Level + 1
		finalBalances = balances
		logger.Info("machine upgraded", "user_id", userID, "machine_id", machineID, "level", newLevel)
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return newLevel, finalBalances, nil
}

// Placement is one entry of a bulk layout sync.
type Placement struct {
	ID   int64 `json:"id"`
	X    int   `json:"x"`
	Y    int   `json:"y"`
	Room int   `json:"room"`
}

// Sync applies a client-sent layout in one transaction. Positions only; free
// of charge, used after the client re-arranges a whole room. Every placement
// must pass bounds and collision checks against the synced layout itself.
func (s *MachineService) Sync(ctx context.Context, userID int64, placements []Placement) error {
	return s.mutation(ctx, userID, func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error {
		byID := make(map[int64]*domain.Machine, len(machines))
		for i := range machines {
			byID[machines[i].ID] = &machines[i]
		}

		for _, p := range placements {
			m, ok := byID[p.ID]
			if !ok {
				return ErrMachineNotFound
			}
			m.X, m.Y, m.Room = p.X, p.Y, p.Room
		}

		for _, p := range placements {
			if err := game.ValidatePlacement(machines, p.ID, p.X, p.Y, p.Room); err != nil {
				return err
			}
		}

		for _, p := range placements {
			if err := s.machineRepo.UpdatePosition(ctx, tx, p.ID, p.X, p.Y, p.Room); err != nil {
				return err
			}
		}
		return nil
	})
}

// ActivationResult is what an activation returns to the client. Exactly one
// of Yield / Status / Manifest carries the interesting payload depending on
// the machine type.
type ActivationResult struct {
	MachineID int64              `json:"machineId"`
	Type      string             `json:"type"`
	Yield     game.Yield         `json:"yield,omitempty"`
	Balances  map[string]float64 `json:"resources"`
	Status    string             `json:"status,omitempty"`
	Manifest  string             `json:"manifest,omitempty"`
}

// Activate runs one machine's activation branch.
func (s *MachineService) Activate(ctx context.Context, userID, machineID int64) (*ActivationResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// incubator rewards depend on the live staked balance; fetch before
	// taking locks so the gateway round trip happens outside the transaction
	var scvxBalance float64
	if user.RadixAddress != "" {
		scvxBalance, err = s.gateway.TokenBalance(ctx, user.RadixAddress, radix.SCVXResource)
		if err != nil {
			logger.Warn("staked balance fetch failed, using zero", "user_id", userID, "error", err)
			scvxBalance = 0
		}
	}

	var result *ActivationResult
	err = s.mutation(ctx, userID, func(tx pgx.Tx, machines []domain.Machine, balances map[string]float64, nowMs int64) error {
		m := findMachine(machines, machineID)
		if m == nil {
			return ErrMachineNotFound
		}

		result = &ActivationResult{MachineID: m.ID, Type: m.Type, Balances: balances}

		// amplifier activation is a status query, exempt from the cooldown
		if m.Type == domain.MachineAmplifier {
			result.Status = "Online"
			if m.IsOffline {
				result.Status = "Offline"
			}
			return nil
		}

		if remaining := game.CooldownRemaining(m.LastActivated, nowMs); remaining > 0 {
			return &game.CooldownError{RemainingMs: remaining}
		}

		var yield game.Yield
		switch m.Type {
		case domain.MachineCatLair:
			yield = game.CatLairYield(m.Level)

		case domain.MachineReactor:
			if balances[domain.ResourceCatNips] < game.ReactorCatNipsCost {
				return game.ErrInsufficientFunds
			}
			ampLevel, ampOnline := amplifierState(machines)
			yield = game.ReactorYield(m.Level, ampLevel, ampOnline)

		case domain.MachineIncubator:
			yield = game.IncubatorYield(m.Level, scvxBalance)
			if m.IsOffline {
				if err := s.machineRepo.SetOffline(ctx, tx, m.ID, false); err != nil {
					return err
				}
				m.IsOffline = false
			}

		case domain.MachineFomoHit:
			if m.LastActivated == 0 {
				if user.RadixAddress == "" {
					return errors.New("no wallet connected")
				}
				if err := s.machineRepo.SetProvisionalMint(ctx, tx, m.ID, true); err != nil {
					return err
				}
				result.Manifest = radix.MintNFTManifest(user.RadixAddress)
			} else {
				yield = game.Yield{domain.ResourceTcorvax: game.FomoHitRepeatReward}
			}

		default:
			return game.ErrUnknownMachine
		}

		for name, delta := range yield {
			balances[name] += delta
			if err := s.ledgerRepo.SetBalance(ctx, tx, userID, name, balances[name]); err != nil {
				return err
			}
		}
		if err := s.machineRepo.UpdateActivation(ctx, tx, m.ID, nowMs); err != nil {
			return err
		}

		result.Yield = yield
		result.Balances = balances
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findMachine(machines []domain.Machine, id int64) *domain.Machine {
	for i := range machines {
		if machines[i].ID == id {
			return &machines[i]
		}
	}
	return nil
}

// amplifierState reports the player's amplifier level and whether it is
// online. Zero level when no amplifier exists.
func amplifierState(machines []domain.Machine) (int, bool) {
	for _, m := range machines {
		if m.Type == domain.MachineAmplifier {
			return m.Level, !m.IsOffline
		}
	}
	return 0, false
}
