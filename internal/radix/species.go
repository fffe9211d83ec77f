package radix

// Species describes one evolving-creature species. EvolutionPrices are per
// form (0→1, 1→2, 2→3) in the species' preferred token.
type Species struct {
	Name            string
	SpecialtyStats  []string
	Rarity          string
	PreferredToken  string
	EvolutionPrices []float64
	StatPrice       float64
	BaseURL         string
}

// SpeciesData mirrors the on-chain species catalog.
var SpeciesData = map[int]Species{
	// Common
	1:  {"Bullx", []string{"strength", "stamina"}, "Common", "RBX", []float64{50, 100, 200}, 100, "https://cvxlab.net/assets/evolving_creatures/bullx"},
	2:  {"Cudoge", []string{"strength", "stamina"}, "Common", "DGC", []float64{100000, 200000, 300000}, 200000, "https://cvxlab.net/assets/evolving_creatures/cudoge"},
	3:  {"Cvxling", []string{"speed", "energy"}, "Common", "CVX", []float64{20, 50, 100}, 50, "https://cvxlab.net/assets/evolving_creatures/cvxling"},
	4:  {"Dan", []string{"stamina", "magic"}, "Common", "DAN", []float64{500000, 1000000, 2000000}, 1000000, "https://cvxlab.net/assets/evolving_creatures/dan"},
	5:  {"Delayer", []string{"magic"}, "Common", "DELAY", []float64{20000, 40000, 100000}, 40000, "https://cvxlab.net/assets/evolving_creatures/delayer"},
	6:  {"Delivera", []string{"stamina", "strength"}, "Common", "DELIVER", []float64{1000, 2000, 4000}, 2000, "https://cvxlab.net/assets/evolving_creatures/delivera"},
	7:  {"Flooper", []string{"magic", "energy"}, "Common", "FLOOP", []float64{0.001, 0.002, 0.003}, 0.002, "https://cvxlab.net/assets/evolving_creatures/flooper"},
	8:  {"Hitter", []string{"strength", "magic"}, "Common", "HIT", []float64{20000000, 40000000, 100000000}, 40000000, "https://cvxlab.net/assets/evolving_creatures/hitter"},
	9:  {"Moxer", []string{"speed", "magic"}, "Common", "MOX", []float64{200, 400, 1000}, 400, "https://cvxlab.net/assets/evolving_creatures/moxer"},
	10: {"Ocipod", []string{"energy"}, "Common", "CVX", []float64{20, 50, 100}, 50, "https://cvxlab.net/assets/evolving_creatures/ocipod"},
	// Rare
	11: {"Wowori", []string{"magic", "energy"}, "Rare", "WOWO", []float64{4000, 10000, 20000}, 10000, "https://cvxlab.net/assets/evolving_creatures/wowori"},
	12: {"Earlybyte", []string{"speed", "energy"}, "Rare", "EARLY", []float64{1000, 2000, 4000}, 2000, "https://cvxlab.net/assets/evolving_creatures/earlybyte"},
	13: {"Edge", []string{"strength", "energy"}, "Rare", "EDGE", []float64{20000000, 40000000, 100000000}, 40000000, "https://cvxlab.net/assets/evolving_creatures/edge"},
	14: {"Fomotron", []string{"energy", "strength"}, "Rare", "FOMO", []float64{200, 500, 1000}, 500, "https://cvxlab.net/assets/evolving_creatures/fomotron"},
	15: {"Hodlphant", []string{"strength"}, "Rare", "CVX", []float64{20, 50, 100}, 50, "https://cvxlab.net/assets/evolving_creatures/hodlphant"},
	16: {"Minermole", []string{"strength", "stamina"}, "Rare", "CVX", []float64{20, 50, 100}, 50, "https://cvxlab.net/assets/evolving_creatures/minermole"},
	17: {"Ocitrup", []string{"speed", "strength"}, "Rare", "OCI", []float64{100, 200, 400}, 200, "https://cvxlab.net/assets/evolving_creatures/ocitrup"},
	// Epic
	18: {"Etherion", []string{"magic", "energy"}, "Epic", "XRD", []float64{100, 200, 400}, 200, "https://cvxlab.net/assets/evolving_creatures/etherion"},
	19: {"Hugbloom", []string{"stamina"}, "Epic", "HUG", []float64{100000, 300000, 500000}, 300000, "https://cvxlab.net/assets/evolving_creatures/hugbloom"},
	20: {"Ilispect", []string{"stamina", "magic"}, "Epic", "ILIS", []float64{200, 400, 1000}, 400, "https://cvxlab.net/assets/evolving_creatures/ilispect"},
	21: {"Reddix", []string{"strength", "stamina"}, "Epic", "REDDICKS", []float64{300, 500, 1000}, 500, "https://cvxlab.net/assets/evolving_creatures/reddix"},
	22: {"Satoshium", []string{"strength", "stamina"}, "Epic", "XRD", []float64{100, 200, 400}, 200, "https://cvxlab.net/assets/evolving_creatures/satoshium"},
	// Legendary
	23: {"Cassie", []string{"magic", "energy"}, "Legendary", "CASSIE", []float64{0.004, 0.01, 0.02}, 0.01, "https://cvxlab.net/assets/evolving_creatures/cassie"},
	24: {"Corvax", []string{"magic", "energy"}, "Legendary", "CVX", []float64{20, 50, 100}, 50, "https://cvxlab.net/assets/evolving_creatures/corvax"},
	25: {"Xerdian", []string{"stamina", "energy"}, "Legendary", "XRD", []float64{100, 200, 400}, 200, "https://cvxlab.net/assets/evolving_creatures/xerdian"},
}

// RarityScore orders rarities for display sorting.
func RarityScore(rarity string) int {
	switch rarity {
	case "Legendary":
		return 4
	case "Epic":
		return 3
	case "Rare":
		return 2
	default:
		return 1
	}
}
