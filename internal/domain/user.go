package domain

import "time"

// User is a player identified by their Telegram account.
// Tcorvax lives on the user row; the remaining resources are rows in the
// resources table.
type User struct {
	ID             int64     `db:"id" json:"id"`
	TgID           int64     `db:"tg_id" json:"tg_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	CorvaxCount    float64   `db:"corvax_count" json:"tcorvax"`
	SeenRoomUnlock bool      `db:"seen_room_unlock" json:"seen_room_unlock"`
	RadixAddress   string    `db:"radix_account_address" json:"radix_account_address,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Resource names tracked in the resources table.
const (
	ResourceTcorvax = "tcorvax"
	ResourceCatNips = "catNips"
	ResourceEnergy  = "energy"
	ResourceEggs    = "eggs"
)
