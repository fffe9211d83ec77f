package game

import "corvaxlab/internal/domain"

// CanBuildThirdReactor: a third reactor is only sold to players who own an
// incubator and a fomoHit and currently have exactly two reactors.
func CanBuildThirdReactor(machines []domain.Machine) bool {
	return CountType(machines, domain.MachineIncubator) >= 1 &&
		CountType(machines, domain.MachineFomoHit) >= 1 &&
		CountType(machines, domain.MachineReactor) == 2
}

// CanBuildIncubator requires every catLair and reactor at level 3 and an
// amplifier at level 5.
func CanBuildIncubator(machines []domain.Machine) bool {
	lairs, reactors, amplifierMax := 0, 0, 0
	for _, m := range machines {
		switch m.Type {
		case domain.MachineCatLair:
			lairs++
			if m.Level < 3 {
				return false
			}
		case domain.MachineReactor:
			reactors++
			if m.Level < 3 {
				return false
			}
		case domain.MachineAmplifier:
			if m.Level > amplifierMax {
				amplifierMax = m.Level
			}
		}
	}
	return lairs >= 1 && reactors >= 1 && amplifierMax >= 5
}

// CanBuildFomoHit checks the capstone gate. Strict mode requires machine
// progress on top of presence: a max-level catLair and reactor, an amplifier
// at level 3 or higher, and an online incubator. Lenient mode only requires
// owning one of each prerequisite type.
func CanBuildFomoHit(machines []domain.Machine, strict bool) bool {
	required := []string{
		domain.MachineCatLair,
		domain.MachineReactor,
		domain.MachineAmplifier,
		domain.MachineIncubator,
	}
	for _, t := range required {
		if CountType(machines, t) == 0 {
			return false
		}
	}
	if !strict {
		return true
	}

	if countTypeAtLevel(machines, domain.MachineCatLair, 3) == 0 {
		return false
	}
	if countTypeAtLevel(machines, domain.MachineReactor, 3) == 0 {
		return false
	}
	if countTypeAtLevel(machines, domain.MachineAmplifier, 3) == 0 {
		return false
	}
	for _, m := range machines {
		if m.Type == domain.MachineIncubator && !m.IsOffline {
			return true
		}
	}
	return false
}

// RoomUnlocked: room 2 opens at two catLairs, two reactors and an amplifier.
func RoomUnlocked(machines []domain.Machine) bool {
	return CountType(machines, domain.MachineCatLair) >= 2 &&
		CountType(machines, domain.MachineReactor) >= 2 &&
		CountType(machines, domain.MachineAmplifier) >= 1
}
