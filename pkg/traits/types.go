package traits

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Dimension is one of the six personality axes, identified by its short code.
type Dimension string

const (
	// Affinity is warmth toward others.
	Affinity Dimension = "A"
	// Openness is appetite for novelty.
	Openness Dimension = "O"
	// Conscientiousness is orderliness and follow-through.
	Conscientiousness Dimension = "C"
	// EmotionalStability is calm under pressure.
	EmotionalStability Dimension = "E"
	// Extraversion is social energy.
	Extraversion Dimension = "X"
	// Positivity is upbeat outlook.
	Positivity Dimension = "P"
)

const (
	// Baseline is the neutral score, zero net evidence on a dimension.
	Baseline = 50
	// MinScore is the lowest score a dimension can hold.
	MinScore = 0
	// MaxScore is the highest score a dimension can hold.
	MaxScore = 100
)

// Dimensions returns the six dimensions in declaration order (A, O, C, E, X, P).
// The order is load-bearing: it breaks ties wherever dimensions are ranked.
func Dimensions() (dims []Dimension) {
	dims = []Dimension{Affinity, Openness, Conscientiousness, EmotionalStability, Extraversion, Positivity}
	return dims
}

// ParseDimension converts a short code (case-insensitive) into a Dimension.
func ParseDimension(code string) (dim Dimension, err error) {
	candidate := Dimension(strings.ToUpper(strings.TrimSpace(code)))
	for _, d := range Dimensions() {
		if d == candidate {
			dim = d
			return dim, err
		}
	}

	err = errors.Errorf("unknown trait dimension %q (want one of A, O, C, E, X, P)", code)
	return dim, err
}

// Name returns the long name of the dimension.
func (d Dimension) Name() (name string) {
	switch d {
	case Affinity:
		name = "affinity"
	case Openness:
		name = "openness"
	case Conscientiousness:
		name = "conscientiousness"
	case EmotionalStability:
		name = "emotional stability"
	case Extraversion:
		name = "extraversion"
	case Positivity:
		name = "positivity"
	default:
		name = "unknown"
	}
	return name
}

// Vector holds one score per dimension. Scores live in [0, 100] with 50 as neutral.
// Vectors are values; every computation produces a fresh one.
type Vector struct {
	A int `json:"A" yaml:"A"`
	O int `json:"O" yaml:"O"`
	C int `json:"C" yaml:"C"`
	E int `json:"E" yaml:"E"`
	X int `json:"X" yaml:"X"`
	P int `json:"P" yaml:"P"`
}

// BaselineVector returns the all-neutral vector.
func BaselineVector() (v Vector) {
	v = Vector{A: Baseline, O: Baseline, C: Baseline, E: Baseline, X: Baseline, P: Baseline}
	return v
}

// Get returns the score for a dimension. Unknown dimensions read as 0.
func (v Vector) Get(d Dimension) (score int) {
	switch d {
	case Affinity:
		score = v.A
	case Openness:
		score = v.O
	case Conscientiousness:
		score = v.C
	case EmotionalStability:
		score = v.E
	case Extraversion:
		score = v.X
	case Positivity:
		score = v.P
	}
	return score
}

// With returns a copy of v with dimension d set to score.
func (v Vector) With(d Dimension, score int) (out Vector) {
	out = v
	switch d {
	case Affinity:
		out.A = score
	case Openness:
		out.O = score
	case Conscientiousness:
		out.C = score
	case EmotionalStability:
		out.E = score
	case Extraversion:
		out.X = score
	case Positivity:
		out.P = score
	}
	return out
}

// Values returns the scores as floats in declaration order.
func (v Vector) Values() (values [6]float64) {
	for i, d := range Dimensions() {
		values[i] = float64(v.Get(d))
	}
	return values
}

// String renders the vector as "A:50 O:50 C:50 E:50 X:50 P:50".
func (v Vector) String() (s string) {
	parts := make([]string, 0, 6)
	for _, d := range Dimensions() {
		parts = append(parts, fmt.Sprintf("%s:%d", d, v.Get(d)))
	}
	s = strings.Join(parts, " ")
	return s
}

// Increments is a partial set of per-dimension integer contributions.
// Absent dimensions contribute nothing.
type Increments map[Dimension]int
