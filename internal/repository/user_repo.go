package repository

import (
	"context"
	"errors"

	"corvaxlab/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, tg_id, first_name, corvax_count, seen_room_unlock, COALESCE(radix_account_address, ''), created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.TgID,
		&u.FirstName,
		&u.CorvaxCount,
		&u.SeenRoomUnlock,
		&u.RadixAddress,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByTgID(ctx context.Context, tgID int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE tg_id = $1`, tgID))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.FirstName == "" {
		u.FirstName = "Unknown"
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO users (tg_id, first_name)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		u.TgID, u.FirstName,
	).Scan(&u.ID, &u.CreatedAt)
}

// GetOrCreate is the login path: returns the existing player or creates one.
func (r *UserRepository) GetOrCreate(ctx context.Context, tgID int64, firstName string) (*domain.User, error) {
	u, err := r.GetByTgID(ctx, tgID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	u = &domain.User{TgID: tgID, FirstName: firstName}
	if err := r.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) SaveRadixAddress(ctx context.Context, userID int64, address string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET radix_account_address = $1 WHERE id = $2`, address, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetSeenRoomUnlock(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET seen_room_unlock = TRUE WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
