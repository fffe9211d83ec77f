package service

import (
	"context"
	"errors"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/game"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPetNotFound = errors.New("pet not found")

type PetService struct {
	db          *pgxpool.Pool
	petRepo     *repository.PetRepository
	ledgerRepo  *repository.LedgerRepository
	machineRepo *repository.MachineRepository
}

func NewPetService(db *pgxpool.Pool) *PetService {
	return &PetService{
		db:          db,
		petRepo:     repository.NewPetRepository(db),
		ledgerRepo:  repository.NewLedgerRepository(db),
		machineRepo: repository.NewMachineRepository(db),
	}
}

// Buy purchases a pet for a flat tcorvax fee. One pet per type per player.
func (s *PetService) Buy(ctx context.Context, userID int64, x, y, room int, parentMachine *int64) (*domain.Pet, map[string]float64, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balances, err := s.ledgerRepo.LockBalances(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}

	cost := game.Cost{domain.ResourceTcorvax: game.PetCost}
	if !game.Affordable(cost, balances) {
		return nil, nil, game.ErrInsufficientFunds
	}

	if parentMachine != nil {
		if _, err := s.machineRepo.GetForUser(ctx, tx, userID, *parentMachine); err != nil {
			return nil, nil, ErrMachineNotFound
		}
	}

	p := &domain.Pet{
		UserID:        userID,
		X:             x,
		Y:             y,
		Room:          room,
		Type:          domain.DefaultPetType,
		ParentMachine: parentMachine,
	}
	if err := s.petRepo.Create(ctx, tx, p); err != nil {
		return nil, nil, err
	}

	balances[domain.ResourceTcorvax] -= game.PetCost
	if err := s.ledgerRepo.SetBalance(ctx, tx, userID, domain.ResourceTcorvax, balances[domain.ResourceTcorvax]); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return p, balances, nil
}

// Move repositions a pet. Free, no collision rules apply to pets.
func (s *PetService) Move(ctx context.Context, userID, petID int64, x, y, room int) error {
	if _, err := s.petRepo.GetForUser(ctx, userID, petID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.petRepo.UpdatePosition(ctx, tx, petID, x, y, room); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
