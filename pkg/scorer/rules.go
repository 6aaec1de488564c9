package scorer

import (
	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/traits"
)

const (
	// SecondaryWeight scales the second-like pick of a dual answer before flooring.
	SecondaryWeight = 0.5
	// NormalizationCeiling is the raw total that maps to a full 50-point swing from baseline.
	NormalizationCeiling = questions.MaxPossibleRaw
)

// Answer is one answered question.
//
// Single answers use SelectedOption. Dual answers use MostLikeOption and SecondLikeOption.
// TraitScores and SecondTraitScores, when non-nil, replace the bank lookup for the
// corresponding pick; upstream calibration puts its adjusted scores there.
type Answer struct {
	Kind              questions.Kind    `json:"kind" validate:"required,oneof=single dual"`
	SelectedOption    string            `json:"selected_option,omitempty" validate:"required_if=Kind single"`
	MostLikeOption    string            `json:"most_like_option,omitempty" validate:"required_if=Kind dual"`
	SecondLikeOption  string            `json:"second_like_option,omitempty" validate:"required_if=Kind dual"`
	TraitScores       traits.Increments `json:"trait_scores,omitempty"`
	SecondTraitScores traits.Increments `json:"second_trait_scores,omitempty"`
}

// Single builds a single-choice answer.
func Single(option string) (answer Answer) {
	answer = Answer{Kind: questions.KindSingle, SelectedOption: option}
	return answer
}

// Dual builds a forced-rank dual-choice answer.
func Dual(mostLike, secondLike string) (answer Answer) {
	answer = Answer{Kind: questions.KindDual, MostLikeOption: mostLike, SecondLikeOption: secondLike}
	return answer
}

// WithOverride returns a copy of the answer whose primary pick scores come from scores.
func (a Answer) WithOverride(scores traits.Increments) (out Answer) {
	out = a
	out.TraitScores = scores
	return out
}

// WithSecondOverride returns a copy of the answer whose second-like pick scores come from scores.
func (a Answer) WithSecondOverride(scores traits.Increments) (out Answer) {
	out = a
	out.SecondTraitScores = scores
	return out
}
