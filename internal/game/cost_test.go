package game

import (
	"errors"
	"testing"

	"corvaxlab/internal/domain"
)

func machine(id int64, mtype string, level int) domain.Machine {
	return domain.Machine{ID: id, Type: mtype, Level: level}
}

func TestBuildCost_FirstCatLair(t *testing.T) {
	cost, err := BuildCost(nil, domain.MachineCatLair, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost[domain.ResourceTcorvax] != 10 {
		t.Fatalf("expected 10 tcorvax, got %v", cost[domain.ResourceTcorvax])
	}
}

func TestBuildCost_MonotonicAndCapped(t *testing.T) {
	for _, mtype := range []string{domain.MachineCatLair, domain.MachineReactor} {
		var owned []domain.Machine
		prev := 0.0
		for i := 0; i < 2; i++ {
			cost, err := BuildCost(owned, mtype, true)
			if err != nil {
				t.Fatalf("%s #%d: unexpected error %v", mtype, i+1, err)
			}
			if cost[domain.ResourceTcorvax] < prev {
				t.Fatalf("%s cost decreased at count %d", mtype, i)
			}
			prev = cost[domain.ResourceTcorvax]
			owned = append(owned, machine(int64(i+1), mtype, 1))
		}

		_, err := BuildCost(owned, mtype, true)
		if err == nil {
			t.Fatalf("%s: expected cap error past limit", mtype)
		}
	}
}

func TestBuildCost_SingletonTypes(t *testing.T) {
	owned := []domain.Machine{machine(1, domain.MachineAmplifier, 1)}
	if _, err := BuildCost(owned, domain.MachineAmplifier, true); !errors.Is(err, ErrMachineLimit) {
		t.Fatalf("expected ErrMachineLimit for second amplifier, got %v", err)
	}
}

func TestBuildCost_ThirdReactorGate(t *testing.T) {
	owned := []domain.Machine{
		machine(1, domain.MachineReactor, 3),
		machine(2, domain.MachineReactor, 3),
	}

	if _, err := BuildCost(owned, domain.MachineReactor, true); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("expected gate failure without incubator+fomoHit, got %v", err)
	}

	owned = append(owned,
		machine(3, domain.MachineIncubator, 1),
		machine(4, domain.MachineFomoHit, 1),
	)
	cost, err := BuildCost(owned, domain.MachineReactor, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost[domain.ResourceTcorvax] != 640 || cost[domain.ResourceCatNips] != 640 {
		t.Fatalf("unexpected third reactor cost: %v", cost)
	}
}

func TestBuildCost_IncubatorGate(t *testing.T) {
	owned := []domain.Machine{
		machine(1, domain.MachineCatLair, 3),
		machine(2, domain.MachineReactor, 3),
		machine(3, domain.MachineAmplifier, 4),
	}
	if _, err := BuildCost(owned, domain.MachineIncubator, true); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("expected gate failure with amplifier below 5, got %v", err)
	}

	owned[2].Level = 5
	if _, err := BuildCost(owned, domain.MachineIncubator, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a single lagging catLair blocks the gate
	owned = append(owned, machine(4, domain.MachineCatLair, 2))
	if _, err := BuildCost(owned, domain.MachineIncubator, true); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("expected gate failure with level-2 catLair, got %v", err)
	}
}

func TestBuildCost_FomoHitGate_StrictVsLenient(t *testing.T) {
	// presence of all four types, but no level progress, incubator offline
	owned := []domain.Machine{
		machine(1, domain.MachineCatLair, 1),
		machine(2, domain.MachineReactor, 1),
		machine(3, domain.MachineAmplifier, 1),
		{ID: 4, Type: domain.MachineIncubator, Level: 1, IsOffline: true},
	}

	if _, err := BuildCost(owned, domain.MachineFomoHit, true); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("strict gate should fail, got %v", err)
	}
	if _, err := BuildCost(owned, domain.MachineFomoHit, false); err != nil {
		t.Fatalf("lenient gate should pass, got %v", err)
	}

	// full progress satisfies the strict gate
	owned[0].Level = 3
	owned[1].Level = 3
	owned[2].Level = 3
	owned[3].IsOffline = false
	if _, err := BuildCost(owned, domain.MachineFomoHit, true); err != nil {
		t.Fatalf("strict gate should pass with progress, got %v", err)
	}
}

func TestUpgradeCost_Doubling(t *testing.T) {
	m := machine(1, domain.MachineCatLair, 1)
	owned := []domain.Machine{m}

	cost, err := UpgradeCost(owned, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// base 10 x 2^(2-1)
	if cost[domain.ResourceTcorvax] != 20 {
		t.Fatalf("level 2 cost: expected 20, got %v", cost[domain.ResourceTcorvax])
	}

	m.Level = 2
	owned[0].Level = 2
	cost, err = UpgradeCost(owned, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost[domain.ResourceTcorvax] != 40 {
		t.Fatalf("level 3 cost: expected 40, got %v", cost[domain.ResourceTcorvax])
	}

	m.Level = 3
	owned[0].Level = 3
	if _, err := UpgradeCost(owned, m); !errors.Is(err, ErrNotUpgradable) {
		t.Fatalf("expected ErrNotUpgradable at max level, got %v", err)
	}
}

func TestUpgradeCost_SecondMachinePaysQuadruple(t *testing.T) {
	first := machine(1, domain.MachineReactor, 1)
	second := machine(2, domain.MachineReactor, 1)
	owned := []domain.Machine{first, second}

	cost1, err := UpgradeCost(owned, first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cost2, err := UpgradeCost(owned, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost2[domain.ResourceTcorvax] != 4*cost1[domain.ResourceTcorvax] {
		t.Fatalf("second reactor should pay 4x: %v vs %v", cost2, cost1)
	}
}

func TestUpgradeCost_AmplifierNoSecondMultiplier(t *testing.T) {
	amp := machine(1, domain.MachineAmplifier, 1)
	owned := []domain.Machine{amp}

	cost, err := UpgradeCost(owned, amp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost[domain.ResourceEnergy] != 20 {
		t.Fatalf("amplifier level 2: expected 20 energy, got %v", cost[domain.ResourceEnergy])
	}
}

func TestUpgradeCost_AmplifierHighLevelsGated(t *testing.T) {
	amp := machine(1, domain.MachineAmplifier, 3)
	owned := []domain.Machine{amp}

	if _, err := UpgradeCost(owned, amp); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("level 4 should be gated, got %v", err)
	}

	owned = append(owned,
		machine(2, domain.MachineCatLair, 3),
		machine(3, domain.MachineReactor, 3),
	)
	if _, err := UpgradeCost(owned, amp); err != nil {
		t.Fatalf("level 4 gate satisfied, got %v", err)
	}

	amp.Level = 4
	owned[0].Level = 4
	if _, err := UpgradeCost(owned, amp); !errors.Is(err, ErrPrereqNotMet) {
		t.Fatalf("level 5 needs two of each, got %v", err)
	}

	owned = append(owned,
		machine(4, domain.MachineCatLair, 3),
		machine(5, domain.MachineReactor, 3),
	)
	if _, err := UpgradeCost(owned, amp); err != nil {
		t.Fatalf("level 5 gate satisfied, got %v", err)
	}
}

func TestUpgradeCost_IncubatorFlat(t *testing.T) {
	inc := machine(1, domain.MachineIncubator, 1)
	cost, err := UpgradeCost([]domain.Machine{inc}, inc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost[domain.ResourceTcorvax] != 500 {
		t.Fatalf("expected flat 500 tcorvax, got %v", cost)
	}

	inc.Level = 2
	if _, err := UpgradeCost([]domain.Machine{inc}, inc); !errors.Is(err, ErrNotUpgradable) {
		t.Fatalf("incubator caps at level 2, got %v", err)
	}
}

func TestAffordable(t *testing.T) {
	cost := Cost{domain.ResourceTcorvax: 10, domain.ResourceCatNips: 5}

	balances := map[string]float64{domain.ResourceTcorvax: 10, domain.ResourceCatNips: 5}
	if !Affordable(cost, balances) {
		t.Fatal("exact balances should afford")
	}

	balances[domain.ResourceCatNips] = 4.5
	if Affordable(cost, balances) {
		t.Fatal("shortfall in one resource must fail the whole check")
	}
}
