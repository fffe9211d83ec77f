package game

// BillingIntervalMs is the amplifier upkeep cycle: one day.
const BillingIntervalMs int64 = 24 * 60 * 60 * 1000

// UpkeepPerCycle is the energy an amplifier burns each cycle.
func UpkeepPerCycle(level int) float64 {
	return 2 * float64(level)
}

// BillingResult describes the outcome of advancing an amplifier's upkeep to
// the present moment.
type BillingResult struct {
	EnergySpent float64
	NextBilling int64
	Offline     bool
	CyclesPaid  int
}

// AdvanceBilling runs the lazy catch-up for one amplifier.
//
// An online amplifier pays for every elapsed cycle until it either catches up
// or cannot afford one, at which point it flips offline without queueing the
// missed cycles. An offline amplifier gets exactly one recovery attempt: if a
// cycle is due and affordable it pays once, reschedules a full interval out,
// and comes back online.
func AdvanceBilling(level int, offline bool, nextBilling, nowMs int64, energy float64) BillingResult {
	res := BillingResult{NextBilling: nextBilling, Offline: offline}

	if nextBilling == 0 {
		res.NextBilling = nowMs + BillingIntervalMs
		return res
	}

	upkeep := UpkeepPerCycle(level)

	if offline {
		if nowMs >= nextBilling && energy >= upkeep {
			res.EnergySpent = upkeep
			res.NextBilling = nowMs + BillingIntervalMs
			res.Offline = false
			res.CyclesPaid = 1
		}
		return res
	}

	for nowMs >= res.NextBilling {
		if energy-res.EnergySpent < upkeep {
			res.Offline = true
			break
		}
		res.EnergySpent += upkeep
		res.CyclesPaid++
		res.NextBilling += BillingIntervalMs
	}
	return res
}
