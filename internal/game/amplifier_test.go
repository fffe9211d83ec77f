package game

import "testing"

const dayMs = BillingIntervalMs

func TestAdvanceBilling_SchedulesFirstCycle(t *testing.T) {
	now := int64(1_000_000)
	res := AdvanceBilling(2, false, 0, now, 100)
	if res.EnergySpent != 0 {
		t.Fatalf("first scheduling must not charge, spent %v", res.EnergySpent)
	}
	if res.NextBilling != now+dayMs {
		t.Fatalf("expected billing at now+24h, got %d", res.NextBilling)
	}
}

func TestAdvanceBilling_ThreeDayCatchUp(t *testing.T) {
	// created at t0, first billing at t0+1d, request arrives at t0+3d:
	// exactly three cycles are due
	t0 := int64(1_000_000)
	level := 2
	res := AdvanceBilling(level, false, t0+dayMs, t0+3*dayMs, 100)

	want := 3 * 2 * float64(level)
	if res.EnergySpent != want {
		t.Fatalf("expected %v energy over 3 cycles, got %v", want, res.EnergySpent)
	}
	if res.CyclesPaid != 3 {
		t.Fatalf("expected 3 cycles paid, got %d", res.CyclesPaid)
	}
	if res.Offline {
		t.Fatal("should stay online when affordable throughout")
	}
	if res.NextBilling != t0+4*dayMs {
		t.Fatalf("expected next billing at t0+4d, got %d", res.NextBilling)
	}
}

func TestAdvanceBilling_FlipsOfflineAtFirstUnaffordableCycle(t *testing.T) {
	// level 2 costs 4 per cycle; 6 energy covers one cycle only
	t0 := int64(0)
	res := AdvanceBilling(2, false, dayMs, 3*dayMs, 6)

	if res.EnergySpent != 4 {
		t.Fatalf("expected 4 energy for the single affordable cycle, got %v", res.EnergySpent)
	}
	if !res.Offline {
		t.Fatal("should flip offline at the unaffordable cycle")
	}
	if res.NextBilling != t0+2*dayMs {
		t.Fatalf("billing must stop advancing once offline, got %d", res.NextBilling)
	}
}

func TestAdvanceBilling_OfflineRecovery(t *testing.T) {
	// due and affordable: pay one cycle, back online, rescheduled from now
	now := 5 * dayMs
	res := AdvanceBilling(1, true, 2*dayMs, now, 10)

	if res.EnergySpent != 2 {
		t.Fatalf("recovery pays exactly one cycle, got %v", res.EnergySpent)
	}
	if res.Offline {
		t.Fatal("should come back online")
	}
	if res.NextBilling != now+dayMs {
		t.Fatalf("expected reschedule 24h from now, got %d", res.NextBilling)
	}
}

func TestAdvanceBilling_OfflineStaysWhenBroke(t *testing.T) {
	res := AdvanceBilling(3, true, dayMs, 2*dayMs, 5) // needs 6
	if res.EnergySpent != 0 || !res.Offline {
		t.Fatalf("broke offline amplifier must not change: %+v", res)
	}
}

func TestAdvanceBilling_NotDueYet(t *testing.T) {
	res := AdvanceBilling(1, false, 2*dayMs, dayMs, 100)
	if res.EnergySpent != 0 || res.NextBilling != 2*dayMs {
		t.Fatalf("nothing due: %+v", res)
	}
}
