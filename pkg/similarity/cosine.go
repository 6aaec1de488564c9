package similarity

import (
	"math"

	"github.com/nikogura/archetype-match/pkg/traits"
)

// CosineSimilarity compares deviation from neutral: both vectors are shifted by -Baseline
// before taking the cosine. A zero-norm side (an all-neutral vector) yields 0.
func CosineSimilarity(v1, v2 traits.Vector) (similarity float64) {
	a := v1.Values()
	b := v2.Values()

	var dot, normA, normB float64
	for i := range a {
		ca := a[i] - traits.Baseline
		cb := b[i] - traits.Baseline
		dot += ca * cb
		normA += ca * ca
		normB += cb * cb
	}

	if normA == 0 || normB == 0 {
		return similarity
	}

	similarity = dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return similarity
}

// CosineToScore maps similarity in [-1, 1] onto 0-100, with 0 similarity at 50.
func CosineToScore(similarity float64) (score int) {
	score = traits.RoundHalfUp(((similarity + 1) / 2) * 100)
	return score
}

// HybridScore blends the distance score and the cosine score:
// alpha*DistanceToScore(weighted distance) + (1-alpha)*CosineToScore(similarity), rounded.
func HybridScore(v1, v2 traits.Vector, core []traits.Dimension, alpha float64) (score int) {
	distanceScore := float64(DistanceToScore(WeightedEuclideanDistance(v1, v2, core)))
	cosineScore := float64(CosineToScore(CosineSimilarity(v1, v2)))

	score = traits.RoundHalfUp(alpha*distanceScore + (1-alpha)*cosineScore)
	return score
}
