package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/radix"
	"corvaxlab/internal/repository"
	"corvaxlab/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fakeGateway serves the two endpoints ConfirmTransaction touches.
func fakeGateway(t *testing.T, status string, mintedIDs []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"` + status + `","intent_status":"` + status + `"}`))
	})
	mux.HandleFunc("/transaction/committed-details", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := `{"non_fungible_changes":[]}`
		if len(mintedIDs) > 0 {
			body = `{"non_fungible_changes":[{"resource_address":"` + radix.CreatureNFTResource +
				`","operation":"deposit","non_fungible_ids":["` + mintedIDs[0] + `"]}]}`
		}
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func createFomoHit(t *testing.T, pool *pgxpool.Pool, userID int64, provisional bool) *domain.Machine {
	t.Helper()
	ctx := context.Background()
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	m := &domain.Machine{
		UserID:          userID,
		Type:            domain.MachineFomoHit,
		X:               100,
		Y:               100,
		Room:            1,
		Level:           1,
		LastActivated:   time.Now().UnixMilli(),
		ProvisionalMint: provisional,
	}
	if err := repository.NewMachineRepository(pool).Create(ctx, tx, m); err != nil {
		t.Fatalf("create machine: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return m
}

func TestConfirmTransactionFailedMintReleasesMachine(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	m := createFomoHit(t, pool, user.ID, true)

	srv := fakeGateway(t, "CommittedFailure", nil)
	svc := service.NewCreatureService(pool, radix.NewClient(srv.URL))
	ctx := context.Background()

	res, err := svc.ConfirmTransaction(ctx, user.ID, "txid_failed", "mint")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !res.Failed || res.Committed {
		t.Fatalf("result = %+v, want failed and not committed", res)
	}

	got, err := repository.NewMachineRepository(pool).GetForUser(ctx, pool, user.ID, m.ID)
	if err != nil {
		t.Fatalf("get machine: %v", err)
	}
	if got.ProvisionalMint {
		t.Error("provisional flag should clear after a failed mint")
	}
	if got.LastActivated != 0 {
		t.Errorf("last activated = %d after a failed mint, want 0 so the mint re-arms", got.LastActivated)
	}
}

func TestConfirmTransactionCommittedMint(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	m := createFomoHit(t, pool, user.ID, true)

	srv := fakeGateway(t, "CommittedSuccess", []string{"#42#"})
	svc := service.NewCreatureService(pool, radix.NewClient(srv.URL))
	ctx := context.Background()

	res, err := svc.ConfirmTransaction(ctx, user.ID, "txid_ok", "mint")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !res.Committed || res.Failed {
		t.Fatalf("result = %+v, want committed", res)
	}
	if len(res.MintedIDs) != 1 || res.MintedIDs[0] != "#42#" {
		t.Fatalf("minted ids = %v, want [#42#]", res.MintedIDs)
	}

	got, err := repository.NewMachineRepository(pool).GetForUser(ctx, pool, user.ID, m.ID)
	if err != nil {
		t.Fatalf("get machine: %v", err)
	}
	if got.ProvisionalMint {
		t.Error("provisional flag should clear after a committed mint")
	}
	if got.LastActivated == 0 {
		t.Error("committed mint must keep the activation timestamp")
	}
}

func TestConfirmTransactionCommittedEnergyCredits(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	srv := fakeGateway(t, "CommittedSuccess", nil)
	svc := service.NewCreatureService(pool, radix.NewClient(srv.URL))
	ctx := context.Background()

	if _, err := svc.ConfirmTransaction(ctx, user.ID, "txid_energy", "energy"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	balances, err := repository.NewLedgerRepository(pool).Balances(ctx, user.ID)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances[domain.ResourceEnergy] != service.EnergyPackAmount {
		t.Fatalf("energy = %v, want %v", balances[domain.ResourceEnergy], service.EnergyPackAmount)
	}
}
