package repository

import (
	"context"

	"corvaxlab/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository reads and writes the per-player resource balances.
// Tcorvax is stored on the users row; catNips, energy and eggs are rows in
// the resources table. Callers see one flat map either way.
type LedgerRepository struct {
	db *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Balances returns all four balances without locking.
func (r *LedgerRepository) Balances(ctx context.Context, userID int64) (map[string]float64, error) {
	return balances(ctx, r.db, userID, false)
}

// LockBalances locks the users row and resources rows for the duration of tx
// and returns the current balances. Every write path goes through this.
func (r *LedgerRepository) LockBalances(ctx context.Context, tx pgx.Tx, userID int64) (map[string]float64, error) {
	return balances(ctx, tx, userID, true)
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func balances(ctx context.Context, q Querier, userID int64, lock bool) (map[string]float64, error) {
	out := map[string]float64{
		domain.ResourceTcorvax: 0,
		domain.ResourceCatNips: 0,
		domain.ResourceEnergy:  0,
		domain.ResourceEggs:    0,
	}

	userQuery := `SELECT corvax_count FROM users WHERE id = $1`
	resQuery := `SELECT resource_name, amount FROM resources WHERE user_id = $1`
	if lock {
		userQuery += ` FOR UPDATE`
		resQuery += ` FOR UPDATE`
	}

	var tcorvax float64
	if err := q.QueryRow(ctx, userQuery, userID).Scan(&tcorvax); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out[domain.ResourceTcorvax] = tcorvax

	rows, err := q.Query(ctx, resQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var amount float64
		if err := rows.Scan(&name, &amount); err != nil {
			return nil, err
		}
		out[name] = amount
	}
	return out, rows.Err()
}

// SetBalance writes one balance inside tx, routing tcorvax to the users row.
func (r *LedgerRepository) SetBalance(ctx context.Context, tx pgx.Tx, userID int64, name string, amount float64) error {
	if name == domain.ResourceTcorvax {
		_, err := tx.Exec(ctx,
			`UPDATE users SET corvax_count = $1 WHERE id = $2`, amount, userID)
		return err
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO resources (user_id, resource_name, amount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, resource_name) DO UPDATE SET amount = EXCLUDED.amount`,
		userID, name, amount)
	return err
}

// SetBalances writes every entry of balances inside tx.
func (r *LedgerRepository) SetBalances(ctx context.Context, tx pgx.Tx, userID int64, balances map[string]float64) error {
	for name, amount := range balances {
		if err := r.SetBalance(ctx, tx, userID, name, amount); err != nil {
			return err
		}
	}
	return nil
}
