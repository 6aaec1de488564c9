package matcher

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how archetypes are ranked against a user's traits.
type Strategy int

const (
	// WeightedDistance ranks by core-weighted Euclidean distance, closest first.
	WeightedDistance Strategy = iota
	// Hybrid ranks by the blended distance and cosine score, highest first.
	Hybrid
)

// String returns the strategy's wire name.
func (s Strategy) String() (name string) {
	switch s {
	case WeightedDistance:
		name = "weighted-distance"
	case Hybrid:
		name = "hybrid"
	default:
		name = "unknown"
	}
	return name
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() (text []byte, err error) {
	if s != WeightedDistance && s != Hybrid {
		err = errors.Errorf("unknown strategy %d", int(s))
		return text, err
	}
	text = []byte(s.String())
	return text, err
}

// UnmarshalText decodes a strategy name.
func (s *Strategy) UnmarshalText(text []byte) (err error) {
	var parsed Strategy
	parsed, err = ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return err
}

// ParseStrategy converts a wire name into a Strategy.
func ParseStrategy(name string) (strategy Strategy, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weighted-distance", "distance":
		strategy = WeightedDistance
	case "hybrid":
		strategy = Hybrid
	default:
		err = errors.Errorf("unknown strategy %q (want weighted-distance or hybrid)", name)
	}
	return strategy, err
}
