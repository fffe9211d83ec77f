package radix

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Creature is the display projection of a creature NFT. Nothing here is
// persisted; it is re-derived from ledger data on every fetch.
type Creature struct {
	ID                 string             `json:"id"`
	SpeciesID          int                `json:"species_id"`
	SpeciesName        string             `json:"species_name"`
	Form               int                `json:"form"`
	KeyImageURL        string             `json:"key_image_url"`
	ImageURL           string             `json:"image_url"`
	Rarity             string             `json:"rarity"`
	Stats              map[string]int     `json:"stats"`
	EvolutionProgress  *EvolutionProgress `json:"evolution_progress"`
	FinalFormUpgrades  int                `json:"final_form_upgrades"`
	Version            int                `json:"version"`
	CombinationLevel   int                `json:"combination_level"`
	BonusStats         map[string]int     `json:"bonus_stats"`
	SpecialtyStats     []string           `json:"specialty_stats,omitempty"`
	DisplayForm        string             `json:"display_form"`
	DisplayStats       string             `json:"display_stats"`
	DisplayCombination string             `json:"display_combination"`
	PreferredToken     string             `json:"preferred_token"`
}

// EvolutionProgress tracks stat upgrades toward the next form. Final-form
// creatures carry none.
type EvolutionProgress struct {
	StatUpgradesCompleted int `json:"stat_upgrades_completed"`
	TotalPointsAllocated  int `json:"total_points_allocated"`
	EnergyAllocated       int `json:"energy_allocated"`
	StrengthAllocated     int `json:"strength_allocated"`
	MagicAllocated        int `json:"magic_allocated"`
	StaminaAllocated      int `json:"stamina_allocated"`
	SpeedAllocated        int `json:"speed_allocated"`
}

type rawCreature struct {
	SpeciesID         *int               `json:"species_id"`
	Form              *int               `json:"form"`
	Stats             map[string]int     `json:"stats"`
	EvolutionProgress *EvolutionProgress `json:"evolution_progress"`
	FinalFormUpgrades *int               `json:"final_form_upgrades"`
	Version           *int               `json:"version"`
	CombinationLevel  *int               `json:"combination_level"`
	BonusStats        map[string]int     `json:"bonus_stats"`
	ProgrammaticJSON  json.RawMessage    `json:"programmatic_json"`
}

var defaultStats = map[string]int{
	"energy":   5,
	"strength": 5,
	"magic":    5,
	"stamina":  5,
	"speed":    5,
}

// ProcessCreature normalizes raw NFT data into the display structure,
// falling back to defaults field by field when data is missing or malformed.
func ProcessCreature(nftID string, data json.RawMessage) Creature {
	c := Creature{
		ID:                nftID,
		SpeciesID:         1,
		SpeciesName:       "Unknown",
		Rarity:            "Common",
		Stats:             copyStats(defaultStats),
		EvolutionProgress: &EvolutionProgress{},
		Version:           1,
		BonusStats:        map[string]int{},
		DisplayForm:       "Egg",
		PreferredToken:    "XRD",
	}

	var raw rawCreature
	if len(data) > 0 {
		// some gateway versions nest the fields under programmatic_json
		_ = json.Unmarshal(data, &raw)
		if raw.SpeciesID == nil && len(raw.ProgrammaticJSON) > 0 {
			_ = json.Unmarshal(raw.ProgrammaticJSON, &raw)
		}
	}

	if raw.SpeciesID != nil {
		c.SpeciesID = *raw.SpeciesID
	}

	species, ok := SpeciesData[c.SpeciesID]
	if ok {
		c.SpeciesName = species.Name
		c.Rarity = species.Rarity
		c.PreferredToken = species.PreferredToken
		c.SpecialtyStats = species.SpecialtyStats
	}

	if raw.Form != nil {
		c.Form = *raw.Form
	}
	c.DisplayForm = formName(c.Form)

	baseURL := "https://cvxlab.net/assets/evolving_creatures/bullx"
	if ok {
		baseURL = species.BaseURL
	}
	c.ImageURL = formImageURL(baseURL, c.Form)
	c.KeyImageURL = c.ImageURL

	if raw.Stats != nil {
		c.Stats = copyStats(defaultStats)
		for k, v := range raw.Stats {
			c.Stats[k] = v
		}
	}

	if raw.EvolutionProgress != nil {
		c.EvolutionProgress = raw.EvolutionProgress
	} else if c.Form == 3 {
		c.EvolutionProgress = nil
	}

	if raw.FinalFormUpgrades != nil {
		c.FinalFormUpgrades = *raw.FinalFormUpgrades
	}
	if raw.Version != nil {
		c.Version = *raw.Version
	}
	if raw.CombinationLevel != nil {
		c.CombinationLevel = *raw.CombinationLevel
		if c.CombinationLevel > 0 {
			c.DisplayCombination = fmt.Sprintf("Fusion Level %d", c.CombinationLevel)
		}
		if raw.BonusStats != nil {
			c.BonusStats = raw.BonusStats
		}
	}

	c.DisplayStats = displayStats(c.Stats)
	return c
}

// SortCreatures orders by rarity then form, highest first.
func SortCreatures(creatures []Creature) {
	sort.SliceStable(creatures, func(i, j int) bool {
		ri, rj := RarityScore(creatures[i].Rarity), RarityScore(creatures[j].Rarity)
		if ri != rj {
			return ri > rj
		}
		return creatures[i].Form > creatures[j].Form
	})
}

func formName(form int) string {
	switch form {
	case 1:
		return "Form 1"
	case 2:
		return "Form 2"
	case 3:
		return "Form 3 (Final)"
	default:
		return "Egg"
	}
}

func formImageURL(baseURL string, form int) string {
	switch form {
	case 1, 2, 3:
		return fmt.Sprintf("%s_form%d.png", baseURL, form)
	default:
		return baseURL + "_egg.png"
	}
}

func copyStats(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var statOrder = []string{"energy", "strength", "magic", "stamina", "speed"}

func displayStats(stats map[string]int) string {
	parts := make([]string, 0, len(statOrder))
	for _, name := range statOrder {
		parts = append(parts, fmt.Sprintf("%s%s: %d", strings.ToUpper(name[:1]), name[1:], stats[name]))
	}
	return strings.Join(parts, ", ")
}

// BonusItem is a tool or spell NFT minted alongside a creature.
type BonusItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
	Effect   string `json:"effect,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
}

type rawBonus struct {
	KeyImageURL string `json:"key_image_url"`
	ToolName    string `json:"tool_name"`
	ToolType    string `json:"tool_type"`
	ToolEffect  string `json:"tool_effect"`
	SpellName   string `json:"spell_name"`
	SpellType   string `json:"spell_type"`
	SpellEffect string `json:"spell_effect"`
}

// ProcessBonusItem normalizes a tool or spell NFT.
func ProcessBonusItem(nftID, itemType string, data json.RawMessage) BonusItem {
	name := "Mystery Tool"
	if itemType == "spell" {
		name = "Mystery Spell"
	}
	item := BonusItem{
		ID:       nftID,
		Type:     itemType,
		Name:     name,
		ImageURL: "https://cvxlab.net/assets/tools/babylon_keystone.png",
	}

	var raw rawBonus
	if len(data) > 0 {
		_ = json.Unmarshal(data, &raw)
	}

	if itemType == "tool" {
		if raw.ToolName != "" {
			item.Name = raw.ToolName
		}
		item.Subtype = raw.ToolType
		item.Effect = raw.ToolEffect
	} else {
		if raw.SpellName != "" {
			item.Name = raw.SpellName
		}
		item.Subtype = raw.SpellType
		item.Effect = raw.SpellEffect
	}
	if raw.KeyImageURL != "" {
		item.ImageURL = raw.KeyImageURL
	}
	return item
}
