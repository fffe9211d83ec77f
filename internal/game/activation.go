package game

import (
	"math"

	"corvaxlab/internal/domain"
)

// CooldownMs is the gap required between two activations of one machine.
const CooldownMs int64 = 60 * 60 * 1000

// FomoHitRepeatReward is the tcorvax paid by a fomoHit after its mint.
const FomoHitRepeatReward = 5.0

// ReactorCatNipsCost is consumed by every reactor activation.
const ReactorCatNipsCost = 3.0

// CooldownRemaining returns milliseconds until the machine may activate
// again, or 0 when it is ready. lastActivated == 0 means never activated.
func CooldownRemaining(lastActivated, nowMs int64) int64 {
	if lastActivated == 0 {
		return 0
	}
	remaining := lastActivated + CooldownMs - nowMs
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Yield is what an activation produces and consumes, by resource name.
// Negative amounts are consumption.
type Yield map[string]float64

// CatLairYield: catNips scaling with level.
func CatLairYield(level int) Yield {
	return Yield{domain.ResourceCatNips: 5 + float64(level-1)}
}

// reactor tcorvax base by level 1..3
var reactorBase = []float64{1.0, 1.5, 2.0}

// ReactorYield consumes 3 catNips and produces tcorvax plus 2 energy. The
// amplifier bonus applies only while an online amplifier exists.
func ReactorYield(level int, amplifierLevel int, amplifierOnline bool) Yield {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(reactorBase) {
		idx = len(reactorBase) - 1
	}

	tcorvax := reactorBase[idx]
	if amplifierOnline {
		tcorvax += 0.5 * float64(amplifierLevel)
	}

	return Yield{
		domain.ResourceTcorvax: tcorvax,
		domain.ResourceCatNips: -ReactorCatNipsCost,
		domain.ResourceEnergy:  2,
	}
}

// IncubatorYield derives rewards from the player's staked sCVX balance.
// The base reward caps at 10 tcorvax; the level-2 bonus is uncapped.
func IncubatorYield(level int, scvxBalance float64) Yield {
	base := math.Floor(scvxBalance / 100)
	if base > 10 {
		base = 10
	}
	tcorvax := base
	if level >= 2 {
		tcorvax += math.Floor(scvxBalance / 1000)
	}

	return Yield{
		domain.ResourceTcorvax: tcorvax,
		domain.ResourceEggs:    math.Floor(scvxBalance / 500),
	}
}
