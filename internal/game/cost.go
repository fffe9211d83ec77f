package game

import (
	"sort"

	"corvaxlab/internal/domain"
)

// Cost maps resource name to the amount required. A nil Cost means the
// operation is not permitted at all.
type Cost map[string]float64

// Build cost per machine type, indexed by how many of that type the player
// already owns. The third reactor is handled separately because it is gated.
var buildCosts = map[string][]Cost{
	domain.MachineCatLair: {
		{domain.ResourceTcorvax: 10},
		{domain.ResourceTcorvax: 40},
	},
	domain.MachineReactor: {
		{domain.ResourceTcorvax: 10, domain.ResourceCatNips: 10},
		{domain.ResourceTcorvax: 40, domain.ResourceCatNips: 40},
	},
	domain.MachineAmplifier: {
		{domain.ResourceTcorvax: 10, domain.ResourceCatNips: 10, domain.ResourceEnergy: 10},
	},
	domain.MachineIncubator: {
		{domain.ResourceTcorvax: 320, domain.ResourceCatNips: 320, domain.ResourceEnergy: 320},
	},
	domain.MachineFomoHit: {
		{domain.ResourceTcorvax: 640, domain.ResourceCatNips: 640, domain.ResourceEnergy: 640},
	},
}

var thirdReactorCost = Cost{domain.ResourceTcorvax: 640, domain.ResourceCatNips: 640}

// Maximum level per machine type. fomoHit never levels.
var maxLevels = map[string]int{
	domain.MachineCatLair:   3,
	domain.MachineReactor:   3,
	domain.MachineAmplifier: 5,
	domain.MachineIncubator: 2,
	domain.MachineFomoHit:   1,
}

// MoveCost is the flat tcorvax price of repositioning a machine.
const MoveCost = 50

// PetCost is the flat tcorvax price of buying a pet.
const PetCost = 50

// CountType returns how many machines of the given type are in the list.
func CountType(machines []domain.Machine, machineType string) int {
	n := 0
	for _, m := range machines {
		if m.Type == machineType {
			n++
		}
	}
	return n
}

func countTypeAtLevel(machines []domain.Machine, machineType string, minLevel int) int {
	n := 0
	for _, m := range machines {
		if m.Type == machineType && m.Level >= minLevel {
			n++
		}
	}
	return n
}

// BuildCost returns the cost of building one more machine of the given type,
// given the player's current machines. Returns ErrMachineLimit past the cap
// and ErrPrereqNotMet when a gate fails.
func BuildCost(machines []domain.Machine, machineType string, strictFomoGate bool) (Cost, error) {
	table, ok := buildCosts[machineType]
	if !ok {
		return nil, ErrUnknownMachine
	}

	count := CountType(machines, machineType)

	switch machineType {
	case domain.MachineReactor:
		if count == 2 {
			if !CanBuildThirdReactor(machines) {
				return nil, ErrPrereqNotMet
			}
			return thirdReactorCost, nil
		}
	case domain.MachineIncubator:
		if count == 0 && !CanBuildIncubator(machines) {
			return nil, ErrPrereqNotMet
		}
	case domain.MachineFomoHit:
		if count == 0 && !CanBuildFomoHit(machines, strictFomoGate) {
			return nil, ErrPrereqNotMet
		}
	}

	if count >= len(table) {
		return nil, ErrMachineLimit
	}
	return table[count], nil
}

// UpgradeCost returns the cost of raising machine m one level. The second
// catLair/reactor built (by creation order) pays four times the formula price.
func UpgradeCost(machines []domain.Machine, m domain.Machine) (Cost, error) {
	max, ok := maxLevels[m.Type]
	if !ok {
		return nil, ErrUnknownMachine
	}
	if m.Level >= max {
		return nil, ErrNotUpgradable
	}

	nextLevel := m.Level + 1

	switch m.Type {
	case domain.MachineIncubator:
		return Cost{domain.ResourceTcorvax: 500}, nil
	case domain.MachineFomoHit:
		return nil, ErrNotUpgradable
	case domain.MachineAmplifier:
		if !amplifierLevelAllowed(machines, nextLevel) {
			return nil, ErrPrereqNotMet
		}
	}

	base := buildCosts[m.Type][0]
	mult := float64(int(1) << (nextLevel - 1)) // 2^(nextLevel-1)
	if isSecondBuilt(machines, m) && (m.Type == domain.MachineCatLair || m.Type == domain.MachineReactor) {
		mult *= 4
	}

	cost := Cost{}
	for name, amount := range base {
		cost[name] = amount * mult
	}
	return cost, nil
}

// amplifierLevelAllowed gates amplifier levels 4 and 5 behind catLair/reactor
// progress.
func amplifierLevelAllowed(machines []domain.Machine, nextLevel int) bool {
	switch {
	case nextLevel <= 3:
		return true
	case nextLevel == 4:
		return countTypeAtLevel(machines, domain.MachineCatLair, 3) >= 1 &&
			countTypeAtLevel(machines, domain.MachineReactor, 3) >= 1
	case nextLevel == 5:
		return countTypeAtLevel(machines, domain.MachineCatLair, 3) >= 2 &&
			countTypeAtLevel(machines, domain.MachineReactor, 3) >= 2
	default:
		return false
	}
}

// isSecondBuilt reports whether m was the second machine of its type created,
// using id order as creation order.
func isSecondBuilt(machines []domain.Machine, m domain.Machine) bool {
	var ids []int64
	for _, other := range machines {
		if other.Type == m.Type {
			ids = append(ids, other.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return len(ids) >= 2 && ids[1] == m.ID
}

// Affordable reports whether every resource named in cost is covered by the
// balances. Shortfall in any single resource fails the whole check.
func Affordable(cost Cost, balances map[string]float64) bool {
	for name, amount := range cost {
		if balances[name] < amount {
			return false
		}
	}
	return true
}
