package service

import (
	"context"

	"corvaxlab/internal/domain"
	"corvaxlab/internal/game"
	"corvaxlab/internal/logger"
	"corvaxlab/internal/repository"

	"github.com/jackc/pgx/v5"
)

// settleAmplifiers runs the lazy upkeep catch-up for every amplifier the
// player owns. Called inside the caller's transaction on every request that
// touches machines, before any rule evaluation. Mutates machines and balances
// in place and persists whatever changed.
func settleAmplifiers(
	ctx context.Context,
	tx pgx.Tx,
	machineRepo *repository.MachineRepository,
	ledgerRepo *repository.LedgerRepository,
	userID int64,
	machines []domain.Machine,
	balances map[string]float64,
	nowMs int64,
) error {
	for i := range machines {
		m := &machines[i]
		if m.Type != domain.MachineAmplifier {
			continue
		}

		res := game.AdvanceBilling(m.Level, m.IsOffline, m.NextBilling, nowMs, balances[domain.ResourceEnergy])
		if res.NextBilling == m.NextBilling && res.Offline == m.IsOffline && res.EnergySpent == 0 {
			continue
		}

		if res.EnergySpent > 0 {
			balances[domain.ResourceEnergy] -= res.EnergySpent
			if err := ledgerRepo.SetBalance(ctx, tx, userID, domain.ResourceEnergy, balances[domain.ResourceEnergy]); err != nil {
				return err
			}
		}
		if err := machineRepo.UpdateBilling(ctx, tx, m.ID, res.NextBilling, res.Offline); err != nil {
			return err
		}

		if res.Offline && !m.IsOffline {
			logger.Info("amplifier went offline", "user_id", userID, "machine_id", m.ID)
		}
		m.NextBilling = res.NextBilling
		m.IsOffline = res.Offline
	}
	return nil
}
