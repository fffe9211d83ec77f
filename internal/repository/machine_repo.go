package repository

import (
	"context"
	"errors"

	"corvaxlab/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MachineRepository struct {
	db *pgxpool.Pool
}

func NewMachineRepository(db *pgxpool.Pool) *MachineRepository {
	return &MachineRepository{db: db}
}

const machineColumns = `id, user_id, machine_type, x, y, room, level, last_activated, is_offline, provisional_mint, next_billing`

func scanMachine(row pgx.Row) (*domain.Machine, error) {
	var m domain.Machine
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Type,
		&m.X,
		&m.Y,
		&m.Room,
		&m.Level,
		&m.LastActivated,
		&m.IsOffline,
		&m.ProvisionalMint,
		&m.NextBilling,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListForUser returns the player's machines ordered by creation. The order
// matters: upgrade pricing depends on which machine of a type was built first.
func (r *MachineRepository) ListForUser(ctx context.Context, q Querier, userID int64) ([]domain.Machine, error) {
	rows, err := q.Query(ctx,
		`SELECT `+machineColumns+` FROM user_machines WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Machine
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Type, &m.X, &m.Y, &m.Room, &m.Level,
			&m.LastActivated, &m.IsOffline, &m.ProvisionalMint, &m.NextBilling,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListForUserLocked is ListForUser with FOR UPDATE, for mutation paths.
func (r *MachineRepository) ListForUserLocked(ctx context.Context, tx pgx.Tx, userID int64) ([]domain.Machine, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+machineColumns+` FROM user_machines WHERE user_id = $1 ORDER BY id FOR UPDATE`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Machine
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Type, &m.X, &m.Y, &m.Room, &m.Level,
			&m.LastActivated, &m.IsOffline, &m.ProvisionalMint, &m.NextBilling,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MachineRepository) GetForUser(ctx context.Context, q Querier, userID, machineID int64) (*domain.Machine, error) {
	return scanMachine(q.QueryRow(ctx,
		`SELECT `+machineColumns+` FROM user_machines WHERE id = $1 AND user_id = $2`,
		machineID, userID))
}

func (r *MachineRepository) Create(ctx context.Context, tx pgx.Tx, m *domain.Machine) error {
	return tx.QueryRow(ctx,
		`INSERT INTO user_machines (user_id, machine_type, x, y, room, level, last_activated, is_offline, provisional_mint, next_billing)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		m.UserID, m.Type, m.X, m.Y, m.Room, m.Level,
		m.LastActivated, m.IsOffline, m.ProvisionalMint, m.NextBilling,
	).Scan(&m.ID)
}

func (r *MachineRepository) UpdatePosition(ctx context.Context, tx pgx.Tx, machineID int64, x, y, room int) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET x = $1, y = $2, room = $3 WHERE id = $4`,
		x, y, room, machineID)
	return err
}

func (r *MachineRepository) UpdateLevel(ctx context.Context, tx pgx.Tx, machineID int64, level int) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET level = $1 WHERE id = $2`, level, machineID)
	return err
}

func (r *MachineRepository) UpdateActivation(ctx context.Context, tx pgx.Tx, machineID, lastActivated int64) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET last_activated = $1 WHERE id = $2`,
		lastActivated, machineID)
	return err
}

// UpdateBilling persists the amplifier billing state computed by the rules.
func (r *MachineRepository) UpdateBilling(ctx context.Context, tx pgx.Tx, machineID, nextBilling int64, offline bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET next_billing = $1, is_offline = $2 WHERE id = $3`,
		nextBilling, offline, machineID)
	return err
}

func (r *MachineRepository) SetOffline(ctx context.Context, tx pgx.Tx, machineID int64, offline bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET is_offline = $1 WHERE id = $2`, offline, machineID)
	return err
}

func (r *MachineRepository) SetProvisionalMint(ctx context.Context, tx pgx.Tx, machineID int64, provisional bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE user_machines SET provisional_mint = $1 WHERE id = $2`, provisional, machineID)
	return err
}
