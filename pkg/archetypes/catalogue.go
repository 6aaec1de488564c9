package archetypes

import (
	"github.com/nikogura/archetype-match/pkg/traits"
)

// Archetype is a named personality character with its reference vector.
type Archetype struct {
	Name       string             `json:"name"`
	Nickname   string             `json:"nickname"`
	Reference  traits.Vector      `json:"reference_vector"`
	CoreTraits []traits.Dimension `json:"core_traits"` // exactly 3, weighted up during distance
}

// Catalogue order is canonical and breaks ranking ties. Do not reorder.
//
//nolint:gochecknoglobals // Archetype reference data
var catalogue = []Archetype{
	{
		Name:       "开心柯基",
		Nickname:   "Happy Corgi",
		Reference:  traits.Vector{A: 57, O: 54, C: 46, E: 55, X: 66, P: 62},
		CoreTraits: []traits.Dimension{traits.Extraversion, traits.Positivity, traits.Affinity},
	},
	{
		Name:       "太阳鸡",
		Nickname:   "Sunny Rooster",
		Reference:  traits.Vector{A: 58, O: 50, C: 55, E: 65, X: 60, P: 68},
		CoreTraits: []traits.Dimension{traits.Positivity, traits.EmotionalStability, traits.Extraversion},
	},
	{
		Name:       "夸夸豚",
		Nickname:   "Cheerleader Dolphin",
		Reference:  traits.Vector{A: 68, O: 52, C: 48, E: 55, X: 58, P: 64},
		CoreTraits: []traits.Dimension{traits.Affinity, traits.Positivity, traits.Extraversion},
	},
	{
		Name:       "机智狐",
		Nickname:   "Clever Fox",
		Reference:  traits.Vector{A: 48, O: 68, C: 52, E: 55, X: 58, P: 55},
		CoreTraits: []traits.Dimension{traits.Openness, traits.Extraversion, traits.Conscientiousness},
	},
	{
		Name:       "淡定海豚",
		Nickname:   "Serene Dolphin",
		Reference:  traits.Vector{A: 55, O: 55, C: 55, E: 68, X: 52, P: 58},
		CoreTraits: []traits.Dimension{traits.EmotionalStability, traits.Affinity, traits.Positivity},
	},
	{
		Name:       "织网蛛",
		Nickname:   "Weaver Spider",
		Reference:  traits.Vector{A: 66, O: 60, C: 64, E: 55, X: 52, P: 56},
		CoreTraits: []traits.Dimension{traits.Affinity, traits.Conscientiousness, traits.Openness},
	},
	{
		Name:       "暖心熊",
		Nickname:   "Warm Bear",
		Reference:  traits.Vector{A: 70, O: 50, C: 55, E: 60, X: 50, P: 60},
		CoreTraits: []traits.Dimension{traits.Affinity, traits.EmotionalStability, traits.Positivity},
	},
	{
		Name:       "灵感章鱼",
		Nickname:   "Inspired Octopus",
		Reference:  traits.Vector{A: 50, O: 70, C: 45, E: 52, X: 55, P: 58},
		CoreTraits: []traits.Dimension{traits.Openness, traits.Positivity, traits.Extraversion},
	},
	{
		Name:       "沉思猫头鹰",
		Nickname:   "Thoughtful Owl",
		Reference:  traits.Vector{A: 48, O: 65, C: 62, E: 58, X: 42, P: 50},
		CoreTraits: []traits.Dimension{traits.Openness, traits.Conscientiousness, traits.EmotionalStability},
	},
	{
		Name:       "定心大象",
		Nickname:   "Steady Elephant",
		Reference:  traits.Vector{A: 60, O: 48, C: 68, E: 66, X: 46, P: 55},
		CoreTraits: []traits.Dimension{traits.Conscientiousness, traits.EmotionalStability, traits.Affinity},
	},
	{
		Name:       "稳如龟",
		Nickname:   "Steadfast Turtle",
		Reference:  traits.Vector{A: 55, O: 45, C: 66, E: 62, X: 40, P: 52},
		CoreTraits: []traits.Dimension{traits.Conscientiousness, traits.EmotionalStability, traits.Openness},
	},
	{
		Name:       "隐身猫",
		Nickname:   "Stealth Cat",
		Reference:  traits.Vector{A: 52, O: 56, C: 54, E: 56, X: 48, P: 50},
		CoreTraits: []traits.Dimension{traits.Openness, traits.EmotionalStability, traits.Conscientiousness},
	},
}

// All returns a copy of the catalogue in canonical order.
func All() (all []Archetype) {
	all = make([]Archetype, len(catalogue))
	for i, a := range catalogue {
		all[i] = a.clone()
	}
	return all
}

// Len returns the number of archetypes in the catalogue.
func Len() (n int) {
	n = len(catalogue)
	return n
}

// Names returns the archetype names in canonical order.
func Names() (names []string) {
	names = make([]string, 0, len(catalogue))
	for _, a := range catalogue {
		names = append(names, a.Name)
	}
	return names
}

// Lookup finds an archetype by name.
func Lookup(name string) (archetype Archetype, found bool) {
	for _, a := range catalogue {
		if a.Name == name {
			archetype = a.clone()
			found = true
			return archetype, found
		}
	}
	return archetype, found
}

// IsCore reports whether d is one of the archetype's core traits.
func (a Archetype) IsCore(d traits.Dimension) (core bool) {
	core = traits.Contains(a.CoreTraits, d)
	return core
}

// clone copies the CoreTraits slice so callers cannot mutate the catalogue.
func (a Archetype) clone() (c Archetype) {
	c = a
	c.CoreTraits = append([]traits.Dimension(nil), a.CoreTraits...)
	return c
}
