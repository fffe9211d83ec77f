package domain

// Pet is a placed companion; one per (player, type).
type Pet struct {
	ID            int64  `db:"id" json:"id"`
	UserID        int64  `db:"user_id" json:"-"`
	X             int    `db:"x" json:"x"`
	Y             int    `db:"y" json:"y"`
	Room          int    `db:"room" json:"room"`
	Type          string `db:"type" json:"type"`
	ParentMachine *int64 `db:"parent_machine" json:"parentMachine,omitempty"`
}

const DefaultPetType = "cat"
