package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/game"
	"corvaxlab/internal/radix"
	"corvaxlab/internal/repository"
	"corvaxlab/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setBalance(t *testing.T, pool *pgxpool.Pool, userID int64, name string, amount float64) {
	t.Helper()
	ctx := context.Background()
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repository.NewLedgerRepository(pool).SetBalance(ctx, tx, userID, name, amount); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestBuildCatLairScenario(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	// broke player is rejected and nothing changes
	_, _, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 100, 100, 1)
	if !errors.Is(err, game.ErrInsufficientFunds) {
		t.Fatalf("build err = %v, want ErrInsufficientFunds", err)
	}

	balances, err := repository.NewLedgerRepository(pool).Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances[domain.ResourceTcorvax] != 0 {
		t.Fatalf("tcorvax = %v after rejected build, want 0", balances[domain.ResourceTcorvax])
	}

	// with exactly the cost, the build succeeds and drains the balance
	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 10)

	m, newBalances, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 100, 100, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Level != 1 || m.Type != domain.MachineCatLair {
		t.Errorf("machine = %+v", m)
	}
	if newBalances[domain.ResourceTcorvax] != 0 {
		t.Errorf("tcorvax = %v after build, want 0", newBalances[domain.ResourceTcorvax])
	}
}

func TestBuildCollisionRejected(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 100)

	if _, _, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 100, 100, 1); err != nil {
		t.Fatalf("first build: %v", err)
	}
	_, _, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 150, 150, 1)
	if !errors.Is(err, game.ErrCollision) {
		t.Fatalf("overlapping build err = %v, want ErrCollision", err)
	}
	// far enough away is fine
	if _, _, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 300, 100, 1); err != nil {
		t.Fatalf("non-overlapping build: %v", err)
	}
}

func TestActivateCatLairCooldown(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 10)
	m, _, err := svc.Build(ctx, user.ID, domain.MachineCatLair, 100, 100, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	res, err := svc.Activate(ctx, user.ID, m.ID)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if res.Yield[domain.ResourceCatNips] != 5 {
		t.Errorf("level-1 catLair yield = %v, want 5", res.Yield[domain.ResourceCatNips])
	}

	// immediate second activation must hit the cooldown and change nothing
	_, err = svc.Activate(ctx, user.ID, m.ID)
	var cooldown *game.CooldownError
	if !errors.As(err, &cooldown) {
		t.Fatalf("second activate err = %v, want CooldownError", err)
	}
	if cooldown.RemainingMs <= 0 || cooldown.RemainingMs > game.CooldownMs {
		t.Errorf("remaining = %d", cooldown.RemainingMs)
	}

	balances, err := repository.NewLedgerRepository(pool).Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances[domain.ResourceCatNips] != 5 {
		t.Errorf("catNips = %v after cooldown rejection, want 5", balances[domain.ResourceCatNips])
	}
}

func TestActivateReactorConsumesCatNips(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 10)
	setBalance(t, pool, user.ID, domain.ResourceCatNips, 10)
	m, _, err := svc.Build(ctx, user.ID, domain.MachineReactor, 100, 100, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	res, err := svc.Activate(ctx, user.ID, m.ID)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if res.Balances[domain.ResourceCatNips] != 7 {
		t.Errorf("catNips = %v, want 7", res.Balances[domain.ResourceCatNips])
	}
	// level 1, no amplifier: 1.0 tcorvax plus 2 energy
	if res.Balances[domain.ResourceTcorvax] != 1.0 {
		t.Errorf("tcorvax = %v, want 1.0", res.Balances[domain.ResourceTcorvax])
	}
	if res.Balances[domain.ResourceEnergy] != 2 {
		t.Errorf("energy = %v, want 2", res.Balances[domain.ResourceEnergy])
	}
}

func TestActivateReactorRejectedWithoutCatNips(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 10)
	setBalance(t, pool, user.ID, domain.ResourceCatNips, 2)
	m, _, err := svc.Build(ctx, user.ID, domain.MachineReactor, 100, 100, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	_, err = svc.Activate(ctx, user.ID, m.ID)
	if !errors.Is(err, game.ErrInsufficientFunds) {
		t.Fatalf("activate err = %v, want ErrInsufficientFunds", err)
	}

	balances, err := repository.NewLedgerRepository(pool).Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances[domain.ResourceCatNips] != 2 {
		t.Errorf("catNips = %v after rejection, want 2", balances[domain.ResourceCatNips])
	}
}

func TestBuildAmplifierSchedulesBilling(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	svc := service.NewMachineService(pool, radix.NewClient(radix.DefaultGatewayURL), true)
	ctx := context.Background()

	setBalance(t, pool, user.ID, domain.ResourceTcorvax, 10)
	setBalance(t, pool, user.ID, domain.ResourceCatNips, 10)
	setBalance(t, pool, user.ID, domain.ResourceEnergy, 10)

	before := time.Now().UnixMilli()
	m, _, err := svc.Build(ctx, user.ID, domain.MachineAmplifier, 100, 100, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	after := time.Now().UnixMilli()

	// the first upkeep cycle is due one interval after the build itself
	if m.NextBilling < before+game.BillingIntervalMs || m.NextBilling > after+game.BillingIntervalMs {
		t.Fatalf("next billing = %d, want ~build time + %d", m.NextBilling, game.BillingIntervalMs)
	}

	// simulate the player staying away for three days, then one state read:
	// three cycles are due and all of them settle in that single request
	if _, err := pool.Exec(ctx,
		`UPDATE user_machines SET next_billing = next_billing - $1 WHERE id = $2`,
		3*game.BillingIntervalMs, m.ID); err != nil {
		t.Fatalf("backdate billing: %v", err)
	}
	setBalance(t, pool, user.ID, domain.ResourceEnergy, 100)

	state, err := service.NewStateService(pool).GameState(ctx, user.ID)
	if err != nil {
		t.Fatalf("game state: %v", err)
	}
	want := 100 - 3*game.UpkeepPerCycle(m.Level)
	if state.Balances[domain.ResourceEnergy] != want {
		t.Fatalf("energy = %v after 3-day catch-up, want %v", state.Balances[domain.ResourceEnergy], want)
	}
}
