package service

import (
	"context"
	"time"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/game"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameState is the full per-player snapshot returned by the state endpoint.
type GameState struct {
	FirstName      string             `json:"firstName"`
	Balances       map[string]float64 `json:"resources"`
	Machines       []domain.Machine   `json:"machines"`
	Pets           []domain.Pet       `json:"pets"`
	RoomsUnlocked  int                `json:"roomsUnlocked"`
	SeenRoomUnlock bool               `json:"seenRoomUnlock"`
	RadixAddress   string             `json:"radixAccountAddress,omitempty"`
}

// StateService assembles game state and handles the small account mutations.
type StateService struct {
	db          *pgxpool.Pool
	userRepo    *repository.UserRepository
	ledgerRepo  *repository.LedgerRepository
	machineRepo *repository.MachineRepository
	petRepo     *repository.PetRepository
}

func NewStateService(db *pgxpool.Pool) *StateService {
	return &StateService{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		ledgerRepo:  repository.NewLedgerRepository(db),
		machineRepo: repository.NewMachineRepository(db),
		petRepo:     repository.NewPetRepository(db),
	}
}

// GameState loads the player's snapshot. Amplifier upkeep is settled inside
// the same transaction, so reading state is also what makes time pass.
func (s *StateService) GameState(ctx context.Context, userID int64) (*GameState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balances, err := s.ledgerRepo.LockBalances(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	machines, err := s.machineRepo.ListForUserLocked(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	nowMs := time.Now().UnixMilli()
	if err := settleAmplifiers(ctx, tx, s.machineRepo, s.ledgerRepo, userID, machines, balances, nowMs); err != nil {
		return nil, err
	}

	pets, err := s.petRepo.ListForUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	rooms := 1
	if game.RoomUnlocked(machines) {
		rooms = 2
	}

	return &GameState{
		FirstName:      user.FirstName,
		Balances:       balances,
		Machines:       machines,
		Pets:           pets,
		RoomsUnlocked:  rooms,
		SeenRoomUnlock: user.SeenRoomUnlock,
		RadixAddress:   user.RadixAddress,
	}, nil
}

func (s *StateService) User(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *StateService) SaveWallet(ctx context.Context, userID int64, address string) error {
	return s.userRepo.SaveRadixAddress(ctx, userID, address)
}

func (s *StateService) MarkRoomUnlockSeen(ctx context.Context, userID int64) error {
	return s.userRepo.SetSeenRoomUnlock(ctx, userID)
}
