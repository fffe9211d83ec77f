package service

import (
	"context"
	"errors"
	"strings"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/logger"
	"corvaxlab/internal/radix"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoWallet       = errors.New("no wallet connected")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrBadForm        = errors.New("creature form does not allow this operation")
)

// CreatureService brokers everything blockchain-adjacent: listing the
// player's NFTs, building transaction manifests for the wallet to sign, and
// confirming submitted transactions. Gateway failures on the read paths
// degrade to empty results so the UI renders an empty lab instead of an
// error page.
type CreatureService struct {
	db          *pgxpool.Pool
	gateway     *radix.Client
	userRepo    *repository.UserRepository
	machineRepo *repository.MachineRepository
	ledgerRepo  *repository.LedgerRepository
}

func NewCreatureService(db *pgxpool.Pool, gateway *radix.Client) *CreatureService {
	return &CreatureService{
		db:          db,
		gateway:     gateway,
		userRepo:    repository.NewUserRepository(db),
		machineRepo: repository.NewMachineRepository(db),
		ledgerRepo:  repository.NewLedgerRepository(db),
	}
}

// CreatureInventory is the display payload for the player's on-ledger assets.
type CreatureInventory struct {
	Creatures []radix.Creature   `json:"creatures"`
	Tools     []radix.BonusItem  `json:"tools"`
	Spells    []radix.BonusItem  `json:"spells"`
	Balances  map[string]float64 `json:"tokenBalances"`
}

func (s *CreatureService) wallet(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.RadixAddress == "" {
		return "", ErrNoWallet
	}
	return user.RadixAddress, nil
}

// Inventory enumerates and normalizes the player's creature, tool and spell
// NFTs plus fungible token balances.
func (s *CreatureService) Inventory(ctx context.Context, userID int64) (*CreatureInventory, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	inv := &CreatureInventory{
		Creatures: []radix.Creature{},
		Tools:     []radix.BonusItem{},
		Spells:    []radix.BonusItem{},
		Balances:  map[string]float64{},
	}

	inv.Creatures = s.fetchCreatures(ctx, account)
	inv.Tools = s.fetchBonusItems(ctx, account, radix.ToolNFTResource, "tool")
	inv.Spells = s.fetchBonusItems(ctx, account, radix.SpellNFTResource, "spell")

	if balances, err := s.gateway.FungibleBalances(ctx, account); err != nil {
		logger.Warn("token balance fetch failed", "user_id", userID, "error", err)
	} else {
		for symbol, address := range radix.TokenAddresses {
			if amount, ok := balances[address]; ok {
				inv.Balances[symbol] = amount
			}
		}
	}

	return inv, nil
}

func (s *CreatureService) fetchCreatures(ctx context.Context, account string) []radix.Creature {
	ids, err := s.gateway.NonFungibleIDs(ctx, account, radix.CreatureNFTResource)
	if err != nil {
		logger.Warn("creature id fetch failed", "account", account, "error", err)
		return []radix.Creature{}
	}
	if len(ids) == 0 {
		return []radix.Creature{}
	}

	data, err := s.gateway.NonFungibleData(ctx, radix.CreatureNFTResource, ids)
	if err != nil {
		logger.Warn("creature data fetch failed", "account", account, "error", err)
		data = nil
	}

	creatures := make([]radix.Creature, 0, len(ids))
	for _, id := range ids {
		creatures = append(creatures, radix.ProcessCreature(id, data[id]))
	}
	radix.SortCreatures(creatures)
	return creatures
}

func (s *CreatureService) fetchBonusItems(ctx context.Context, account, resource, itemType string) []radix.BonusItem {
	ids, err := s.gateway.NonFungibleIDs(ctx, account, resource)
	if err != nil {
		logger.Warn("bonus item fetch failed", "account", account, "type", itemType, "error", err)
		return []radix.BonusItem{}
	}
	if len(ids) == 0 {
		return []radix.BonusItem{}
	}

	data, err := s.gateway.NonFungibleData(ctx, resource, ids)
	if err != nil {
		data = nil
	}

	items := make([]radix.BonusItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, radix.ProcessBonusItem(id, itemType, data[id]))
	}
	return items
}

// MintEggManifest prices an egg in XRD and returns the manifest text.
func (s *CreatureService) MintEggManifest(ctx context.Context, userID int64) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	return radix.MintEggManifest(account), nil
}

// creatureForOperation loads one creature owned by the player's wallet.
func (s *CreatureService) creatureForOperation(ctx context.Context, account, creatureID string) (*radix.Creature, error) {
	data, err := s.gateway.NonFungibleData(ctx, radix.CreatureNFTResource, []string{creatureID})
	if err != nil {
		return nil, err
	}
	raw, ok := data[creatureID]
	if !ok {
		return nil, errors.New("creature not found")
	}
	c := radix.ProcessCreature(creatureID, raw)
	return &c, nil
}

// statAllocationTotal counts the points in one allocation request.
func statAllocationTotal(alloc radix.StatAllocation) int {
	return alloc.Energy + alloc.Strength + alloc.Magic + alloc.Stamina + alloc.Speed
}

// UpgradeStatsManifest builds the stat-upgrade manifest for a pre-final
// creature, priced in the species' preferred token per point.
func (s *CreatureService) UpgradeStatsManifest(ctx context.Context, userID int64, creatureID string, alloc radix.StatAllocation) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	c, err := s.creatureForOperation(ctx, account, creatureID)
	if err != nil {
		return "", err
	}
	if c.Form >= 3 {
		return "", ErrBadForm
	}

	species, ok := radix.SpeciesData[c.SpeciesID]
	if !ok {
		return "", ErrUnknownSpecies
	}
	amount := species.StatPrice * float64(statAllocationTotal(alloc))
	token := radix.TokenAddresses[species.PreferredToken]
	return radix.UpgradeStatsManifest(account, creatureID, alloc, token, amount), nil
}

// EvolveManifest builds the evolve manifest, priced by the creature's
// current form.
func (s *CreatureService) EvolveManifest(ctx context.Context, userID int64, creatureID string) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	c, err := s.creatureForOperation(ctx, account, creatureID)
	if err != nil {
		return "", err
	}
	if c.Form >= 3 {
		return "", ErrBadForm
	}

	species, ok := radix.SpeciesData[c.SpeciesID]
	if !ok {
		return "", ErrUnknownSpecies
	}
	amount := species.EvolutionPrices[c.Form]
	token := radix.TokenAddresses[species.PreferredToken]
	return radix.EvolveManifest(account, creatureID, token, amount), nil
}

// LevelUpManifest is the final-form variant of stat upgrades.
func (s *CreatureService) LevelUpManifest(ctx context.Context, userID int64, creatureID string, alloc radix.StatAllocation) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	c, err := s.creatureForOperation(ctx, account, creatureID)
	if err != nil {
		return "", err
	}
	if c.Form != 3 {
		return "", ErrBadForm
	}

	species, ok := radix.SpeciesData[c.SpeciesID]
	if !ok {
		return "", ErrUnknownSpecies
	}
	amount := species.StatPrice * float64(statAllocationTotal(alloc))
	token := radix.TokenAddresses[species.PreferredToken]
	return radix.LevelUpManifest(account, creatureID, alloc, token, amount), nil
}

// CombineManifest fuses two final-form creatures of the same species.
func (s *CreatureService) CombineManifest(ctx context.Context, userID int64, creatureAID, creatureBID string) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	a, err := s.creatureForOperation(ctx, account, creatureAID)
	if err != nil {
		return "", err
	}
	b, err := s.creatureForOperation(ctx, account, creatureBID)
	if err != nil {
		return "", err
	}
	if a.Form != 3 || b.Form != 3 {
		return "", ErrBadForm
	}
	if a.SpeciesID != b.SpeciesID {
		return "", errors.New("creatures must be the same species")
	}
	return radix.CombineManifest(account, creatureAID, creatureBID), nil
}

// BuyEnergyManifest sells an in-game energy pack for CVX.
func (s *CreatureService) BuyEnergyManifest(ctx context.Context, userID int64) (string, error) {
	account, err := s.wallet(ctx, userID)
	if err != nil {
		return "", err
	}
	return radix.BuyEnergyManifest(account), nil
}

// EnergyPackAmount is credited once the energy purchase transaction commits.
const EnergyPackAmount = 500.0

// TxStatusResult reports a polled transaction back to the client.
type TxStatusResult struct {
	Status       string   `json:"status"`
	Committed    bool     `json:"committed"`
	Failed       bool     `json:"failed"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	MintedIDs    []string `json:"mintedIds,omitempty"`
}

// ConfirmTransaction polls an intent hash and applies the local side effects
// of a committed transaction: clearing provisional mint flags and crediting
// purchased energy.
func (s *CreatureService) ConfirmTransaction(ctx context.Context, userID int64, intentHash, kind string) (*TxStatusResult, error) {
	status, err := s.gateway.GetTransactionStatus(ctx, intentHash)
	if err != nil {
		return nil, err
	}

	res := &TxStatusResult{Status: status.Status}
	switch strings.ToLower(status.Status) {
	case "committedsuccess":
		res.Committed = true
	case "committedfailure", "rejected":
		res.Failed = true
		res.ErrorMessage = status.ErrorMessage
	}

	if res.Failed && kind == "mint" {
		// the mint is definitively dead on chain; re-arm the machine so the
		// next activation can issue a fresh manifest
		if err := s.releaseFailedMints(ctx, userID); err != nil {
			return nil, err
		}
	}
	if !res.Committed {
		return res, nil
	}

	if changes, err := s.gateway.CommittedDetails(ctx, intentHash); err == nil {
		for _, ch := range changes {
			if ch.ResourceAddress == radix.CreatureNFTResource && ch.Operation == "deposit" {
				res.MintedIDs = append(res.MintedIDs, ch.NonFungibleIDs...)
			}
		}
	}

	switch kind {
	case "mint":
		if err := s.clearProvisionalMints(ctx, userID); err != nil {
			return nil, err
		}
	case "energy":
		if err := s.creditEnergy(ctx, userID, EnergyPackAmount); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *CreatureService) clearProvisionalMints(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	machines, err := s.machineRepo.ListForUserLocked(ctx, tx, userID)
	if err != nil {
		return err
	}
	for _, m := range machines {
		if m.Type == domain.MachineFomoHit && m.ProvisionalMint {
			if err := s.machineRepo.SetProvisionalMint(ctx, tx, m.ID, false); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}

// releaseFailedMints clears the pending flag and the activation timestamp of
// every provisionally minted fomoHit, so the machine behaves as never
// activated.
func (s *CreatureService) releaseFailedMints(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	machines, err := s.machineRepo.ListForUserLocked(ctx, tx, userID)
	if err != nil {
		return err
	}
	for _, m := range machines {
		if m.Type != domain.MachineFomoHit || !m.ProvisionalMint {
			continue
		}
		if err := s.machineRepo.SetProvisionalMint(ctx, tx, m.ID, false); err != nil {
			return err
		}
		if err := s.machineRepo.UpdateActivation(ctx, tx, m.ID, 0); err != nil {
			return err
		}
		logger.Info("released failed mint", "user_id", userID, "machine_id", m.ID)
	}
	return tx.Commit(ctx)
}

func (s *CreatureService) creditEnergy(ctx context.Context, userID int64, amount float64) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balances, err := s.ledgerRepo.LockBalances(ctx, tx, userID)
	if err != nil {
		return err
	}
	newAmount := balances[domain.ResourceEnergy] + amount
	if err := s.ledgerRepo.SetBalance(ctx, tx, userID, domain.ResourceEnergy, newAmount); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
