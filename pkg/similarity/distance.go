package similarity

import (
	"math"

	"github.com/nikogura/archetype-match/pkg/traits"
)

const (
	// CoreWeight multiplies squared differences on an archetype's core dimensions.
	CoreWeight = 1.3
	// NonCoreWeight multiplies squared differences on the remaining dimensions.
	NonCoreWeight = 0.8
	// MaxDistance is the calibrated weighted distance that maps to a score of 0.
	// The archetype reference vectors were tuned against this exact value.
	MaxDistance = 245.0
	// DefaultAlpha is the share of the hybrid score taken from distance.
	DefaultAlpha = 0.6
)

// EuclideanDistance is the unweighted L2 distance over all six dimensions.
func EuclideanDistance(v1, v2 traits.Vector) (distance float64) {
	a := v1.Values()
	b := v2.Values()

	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	distance = math.Sqrt(sum)
	return distance
}

// WeightedEuclideanDistance is the L2 distance with each squared difference scaled by
// CoreWeight when the dimension is in core and NonCoreWeight otherwise.
func WeightedEuclideanDistance(v1, v2 traits.Vector, core []traits.Dimension) (distance float64) {
	var sum float64
	for _, d := range traits.Dimensions() {
		diff := float64(v1.Get(d) - v2.Get(d))
		weight := NonCoreWeight
		if traits.Contains(core, d) {
			weight = CoreWeight
		}
		sum += diff * diff * weight
	}

	distance = math.Sqrt(sum)
	return distance
}

// DistanceToScore maps a distance onto 0-100: 0 gives 100, MaxDistance or more gives 0.
func DistanceToScore(distance float64) (score int) {
	raw := 100 - (distance/MaxDistance)*100
	if raw < 0 {
		raw = 0
	}

	score = traits.RoundHalfUp(raw)
	return score
}
