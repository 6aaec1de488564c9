package scorer

import (
	"math"

	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/traits"
)

// Scorer folds quiz answers into a trait vector. It holds no mutable state.
type Scorer struct {
	bank *questions.Bank
}

// NewScorer creates a scorer over the given question bank.
func NewScorer(bank *questions.Bank) (scorer *Scorer) {
	scorer = &Scorer{bank: bank}
	return scorer
}

// Accumulate scores answers against the embedded question bank.
func Accumulate(answers map[string]Answer) (vector traits.Vector) {
	vector = NewScorer(questions.MustDefault()).Accumulate(answers)
	return vector
}

// Accumulate sums each answer's increments and normalizes the totals.
// Answers need not cover every question; unknown questions or options add nothing.
func (s *Scorer) Accumulate(answers map[string]Answer) (vector traits.Vector) {
	vector = Normalize(s.Raw(answers))
	return vector
}

// Raw returns the un-normalized per-dimension sums. Every dimension is present.
func (s *Scorer) Raw(answers map[string]Answer) (raw map[traits.Dimension]int) {
	raw = make(map[traits.Dimension]int, 6)
	for _, d := range traits.Dimensions() {
		raw[d] = 0
	}

	for questionID, answer := range answers {
		switch answer.Kind {
		case questions.KindSingle:
			addScaled(raw, s.pick(questionID, answer.SelectedOption, answer.TraitScores), 1)
		case questions.KindDual:
			addScaled(raw, s.pick(questionID, answer.MostLikeOption, answer.TraitScores), 1)
			addScaled(raw, s.pick(questionID, answer.SecondLikeOption, answer.SecondTraitScores), SecondaryWeight)
		}
	}

	return raw
}

// pick prefers the override when present, else the bank's increments for the option.
func (s *Scorer) pick(questionID, option string, override traits.Increments) (inc traits.Increments) {
	if override != nil {
		inc = override
		return inc
	}
	if s.bank == nil {
		return inc
	}

	inc = s.bank.Increments(questionID, option)
	return inc
}

// addScaled adds floor(value*weight) per dimension. Unknown dimension codes are skipped.
func addScaled(raw map[traits.Dimension]int, inc traits.Increments, weight float64) {
	for code, value := range inc {
		dim, err := traits.ParseDimension(string(code))
		if err != nil {
			continue
		}
		raw[dim] += int(math.Floor(float64(value) * weight))
	}
}

// Normalize maps raw totals onto 0-100: round(50 + raw/ceiling*50), clamped.
// An all-zero input lands exactly on the baseline.
func Normalize(raw map[traits.Dimension]int) (vector traits.Vector) {
	for _, d := range traits.Dimensions() {
		scaled := traits.Baseline + (float64(raw[d])/NormalizationCeiling)*50
		vector = vector.With(d, traits.Clamp(traits.RoundHalfUp(scaled)))
	}
	return vector
}
