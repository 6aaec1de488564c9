package matcher

import (
	"sort"

	"github.com/nikogura/archetype-match/pkg/archetypes"
	"github.com/nikogura/archetype-match/pkg/similarity"
	"github.com/nikogura/archetype-match/pkg/traits"
)

// Fit is how well one archetype matches a user.
type Fit struct {
	Archetype         string             `json:"archetype"`
	CoreTraits        []traits.Dimension `json:"core_traits"`
	Distance          float64            `json:"distance"`
	EuclideanDistance float64            `json:"euclidean_distance"`
	Score             int                `json:"score"`
}

// MatchResult is the primary/secondary archetype assignment for one user.
type MatchResult struct {
	Strategy             Strategy      `json:"strategy"`
	PrimaryArchetype     string        `json:"primary_archetype"`
	PrimaryDistance      float64       `json:"primary_distance"`
	PrimaryScore         int           `json:"primary_score"`
	SecondaryArchetype   string        `json:"secondary_archetype"`
	SecondaryDistance    float64       `json:"secondary_distance"`
	SecondaryScore       int           `json:"secondary_score"`
	UserTraits           traits.Vector `json:"user_traits"`
	DualDisplay          string        `json:"dual_display"`
	DualConsistencyBonus int           `json:"dual_consistency_bonus"`
}

// Match assigns primary and secondary archetypes to the user, blending hybrid scores at
// similarity.DefaultAlpha.
func Match(userTraits traits.Vector, strategy Strategy) (result MatchResult) {
	result = MatchWithAlpha(userTraits, strategy, similarity.DefaultAlpha)
	return result
}

// MatchWithAlpha is Match with an explicit hybrid blend. Alpha is ignored by WeightedDistance.
func MatchWithAlpha(userTraits traits.Vector, strategy Strategy, alpha float64) (result MatchResult) {
	ranking := RankWithAlpha(userTraits, strategy, alpha)
	primary, secondary := ranking[0], ranking[1]

	result = MatchResult{
		Strategy:             strategy,
		PrimaryArchetype:     primary.Archetype,
		PrimaryDistance:      primary.Distance,
		PrimaryScore:         primary.Score,
		SecondaryArchetype:   secondary.Archetype,
		SecondaryDistance:    secondary.Distance,
		SecondaryScore:       secondary.Score,
		UserTraits:           userTraits,
		DualDisplay:          DualDisplay(primary.Archetype, secondary.Archetype),
		DualConsistencyBonus: DualConsistencyBonus(userTraits, primary.CoreTraits, secondary.CoreTraits),
	}
	return result
}

// Rank scores every catalogue archetype and orders them best first.
// WeightedDistance sorts by ascending weighted distance, Hybrid by descending hybrid score.
// Ties keep catalogue order.
func Rank(userTraits traits.Vector, strategy Strategy) (ranking []Fit) {
	ranking = RankWithAlpha(userTraits, strategy, similarity.DefaultAlpha)
	return ranking
}

// RankWithAlpha is Rank with an explicit hybrid blend.
func RankWithAlpha(userTraits traits.Vector, strategy Strategy, alpha float64) (ranking []Fit) {
	all := archetypes.All()
	ranking = make([]Fit, 0, len(all))

	for _, a := range all {
		distance := similarity.WeightedEuclideanDistance(userTraits, a.Reference, a.CoreTraits)
		fit := Fit{
			Archetype:         a.Name,
			CoreTraits:        a.CoreTraits,
			Distance:          distance,
			EuclideanDistance: similarity.EuclideanDistance(userTraits, a.Reference),
		}

		if strategy == Hybrid {
			fit.Score = similarity.HybridScore(userTraits, a.Reference, a.CoreTraits, alpha)
		} else {
			fit.Score = similarity.DistanceToScore(distance)
		}

		ranking = append(ranking, fit)
	}

	if strategy == Hybrid {
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].Score > ranking[j].Score
		})
		return ranking
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Distance < ranking[j].Distance
	})
	return ranking
}
