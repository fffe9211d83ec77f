package game

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMachineLimit      = errors.New("machine limit reached")
	ErrPrereqNotMet      = errors.New("prerequisites not met")
	ErrNotUpgradable     = errors.New("machine cannot be upgraded further")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCollision         = errors.New("position collides with another machine")
	ErrUnknownMachine    = errors.New("unknown machine type")
)

// CooldownError reports how long until a machine can be activated again.
type CooldownError struct {
	RemainingMs int64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, %dms remaining", e.RemainingMs)
}
