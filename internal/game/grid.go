package game

import "corvaxlab/internal/domain"

// Room canvas and machine footprint in pixels.
const (
	RoomWidth   = 800
	RoomHeight  = 600
	MachineSize = 128
)

// ValidatePlacement checks that (x, y) keeps a full machine footprint inside
// the room and does not overlap any other machine in the same room.
// excludeID skips the machine being moved; pass 0 for new builds.
func ValidatePlacement(machines []domain.Machine, excludeID int64, x, y, room int) error {
	if x < 0 || y < 0 || x > RoomWidth-MachineSize || y > RoomHeight-MachineSize {
		return ErrOutOfBounds
	}

	for _, m := range machines {
		if m.ID == excludeID || m.Room != room {
			continue
		}
		if abs(m.X-x) < MachineSize && abs(m.Y-y) < MachineSize {
			return ErrCollision
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
