package repository

import (
	"context"
	"errors"

	"corvaxlab/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPetExists = errors.New("pet already owned")

type PetRepository struct {
	db *pgxpool.Pool
}

func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) ListForUser(ctx context.Context, q Querier, userID int64) ([]domain.Pet, error) {
	rows, err := q.Query(ctx,
		`SELECT id, user_id, x, y, room, type, parent_machine
		 FROM pets WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Pet
	for rows.Next() {
		var p domain.Pet
		if err := rows.Scan(&p.ID, &p.UserID, &p.X, &p.Y, &p.Room, &p.Type, &p.ParentMachine); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetRepository) GetForUser(ctx context.Context, userID, petID int64) (*domain.Pet, error) {
	var p domain.Pet
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, x, y, room, type, parent_machine
		 FROM pets WHERE id = $1 AND user_id = $2`, petID, userID,
	).Scan(&p.ID, &p.UserID, &p.X, &p.Y, &p.Room, &p.Type, &p.ParentMachine)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a pet; the unique (user_id, type) constraint enforces one
// pet of each type per player.
func (r *PetRepository) Create(ctx context.Context, tx pgx.Tx, p *domain.Pet) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO pets (user_id, x, y, room, type, parent_machine)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, type) DO NOTHING
		 RETURNING id`,
		p.UserID, p.X, p.Y, p.Room, p.Type, p.ParentMachine,
	).Scan(&p.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPetExists
	}
	return err
}

func (r *PetRepository) UpdatePosition(ctx context.Context, tx pgx.Tx, petID int64, x, y, room int) error {
	_, err := tx.Exec(ctx,
		`UPDATE pets SET x = $1, y = $2, room = $3 WHERE id = $4`, x, y, room, petID)
	return err
}
