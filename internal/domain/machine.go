package domain

// Machine types.
const (
	MachineCatLair   = "catLair"
	MachineReactor   = "reactor"
	MachineAmplifier = "amplifier"
	MachineIncubator = "incubator"
	MachineFomoHit   = "fomoHit"
)

// Machine is a placed, leveled game object on the room grid.
// LastActivated and NextBilling are milliseconds since epoch; zero means
// never activated / billing not yet scheduled.
type Machine struct {
	ID              int64  `db:"id" json:"id"`
	UserID          int64  `db:"user_id" json:"-"`
	Type            string `db:"machine_type" json:"type"`
	X               int    `db:"x" json:"x"`
	Y               int    `db:"y" json:"y"`
	Room            int    `db:"room" json:"room"`
	Level           int    `db:"level" json:"level"`
	LastActivated   int64  `db:"last_activated" json:"lastActivated"`
	IsOffline       bool   `db:"is_offline" json:"isOffline"`
	ProvisionalMint bool   `db:"provisional_mint" json:"provisionalMint"`
	NextBilling     int64  `db:"next_billing" json:"nextBilling,omitempty"`
}
