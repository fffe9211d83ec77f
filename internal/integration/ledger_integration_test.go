package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"corvaxlab/internal/db"
	"corvaxlab/internal/domain"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	u := &domain.User{TgID: time.Now().UnixNano(), FirstName: "Test"}
	if err := repository.NewUserRepository(pool).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLedgerRoundTrip(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	ledger := repository.NewLedgerRepository(pool)
	ctx := context.Background()

	balances, err := ledger.Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	for _, name := range []string{domain.ResourceTcorvax, domain.ResourceCatNips, domain.ResourceEnergy, domain.ResourceEggs} {
		if balances[name] != 0 {
			t.Errorf("new user %s = %v, want 0", name, balances[name])
		}
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	for name, amount := range map[string]float64{
		domain.ResourceTcorvax: 42.5,
		domain.ResourceCatNips: 7,
		domain.ResourceEnergy:  100,
	} {
		if err := ledger.SetBalance(ctx, tx, user.ID, name, amount); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	balances, err = ledger.Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances[domain.ResourceTcorvax] != 42.5 {
		t.Errorf("tcorvax = %v, want 42.5", balances[domain.ResourceTcorvax])
	}
	if balances[domain.ResourceCatNips] != 7 {
		t.Errorf("catNips = %v, want 7", balances[domain.ResourceCatNips])
	}
	if balances[domain.ResourceEggs] != 0 {
		t.Errorf("eggs = %v, want 0", balances[domain.ResourceEggs])
	}
}

func TestMachineRepoCreateAndList(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	machines := repository.NewMachineRepository(pool)
	ctx := context.Background()

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	m := &domain.Machine{UserID: user.ID, Type: domain.MachineCatLair, X: 10, Y: 20, Room: 1, Level: 1}
	if err := machines.Create(ctx, tx, m); err != nil {
		t.Fatalf("create machine: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if m.ID == 0 {
		t.Fatal("expected machine id to be set")
	}

	list, err := machines.ListForUser(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Type != domain.MachineCatLair || list[0].Level != 1 {
		t.Fatalf("list = %+v", list)
	}
}

func TestPetUniquePerType(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	pets := repository.NewPetRepository(pool)
	ctx := context.Background()

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	p := &domain.Pet{UserID: user.ID, X: 1, Y: 2, Room: 1, Type: domain.DefaultPetType}
	if err := pets.Create(ctx, tx, p); err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	tx, err = pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer tx.Rollback(ctx)

	dup := &domain.Pet{UserID: user.ID, X: 5, Y: 6, Room: 1, Type: domain.DefaultPetType}
	if err := pets.Create(ctx, tx, dup); err != repository.ErrPetExists {
		t.Fatalf("duplicate create err = %v, want ErrPetExists", err)
	}
}
