package questions

import (
	_ "embed"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/nikogura/archetype-match/pkg/traits"
)

//go:embed questions.yaml
var questionsYAML []byte

// MaxPossibleRaw is the largest raw total a single dimension may reach across the bank.
// Normalization divides by this constant rather than by per-dimension maxima.
const MaxPossibleRaw = 36

// Kind distinguishes single-choice questions from forced-rank dual-choice ones.
type Kind string

const (
	// KindSingle asks for one option.
	KindSingle Kind = "single"
	// KindDual asks for a most-like and a second-like option.
	KindDual Kind = "dual"
)

// Option is one selectable answer and the trait increments it carries.
type Option struct {
	Key        string
	Label      string
	Increments traits.Increments
}

// Question is one quiz item.
type Question struct {
	ID          string
	Kind        Kind
	Prompt      string
	Calibration bool
	Options     []Option
}

// Bank is an immutable question set with folded-key lookups.
type Bank struct {
	questions []Question
	byID      map[string]int
	maxRaw    map[traits.Dimension]int
}

type rawBank struct {
	Questions []rawQuestion `yaml:"questions"`
}

type rawQuestion struct {
	ID          string      `yaml:"id"`
	Kind        string      `yaml:"kind"`
	Prompt      string      `yaml:"prompt"`
	Calibration bool        `yaml:"calibration"`
	Options     []rawOption `yaml:"options"`
}

type rawOption struct {
	Key    string         `yaml:"key"`
	Label  string         `yaml:"label"`
	Traits map[string]int `yaml:"traits"`
}

//nolint:gochecknoglobals // Lazily parsed embedded bank
var (
	defaultBank     *Bank
	defaultBankErr  error
	defaultBankOnce sync.Once
)

// Default returns the embedded question bank, parsed once.
func Default() (bank *Bank, err error) {
	defaultBankOnce.Do(func() {
		defaultBank, defaultBankErr = Parse(questionsYAML)
	})

	bank = defaultBank
	err = defaultBankErr
	return bank, err
}

// MustDefault returns the embedded bank and panics if it is malformed.
func MustDefault() (bank *Bank) {
	var err error
	bank, err = Default()
	if err != nil {
		panic(errors.Wrap(err, "embedded question bank"))
	}
	return bank
}

// Parse builds a bank from YAML and checks its invariants.
func Parse(data []byte) (bank *Bank, err error) {
	var raw rawBank
	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		err = errors.Wrap(err, "failed to parse question bank YAML")
		return bank, err
	}

	if len(raw.Questions) == 0 {
		err = errors.New("question bank has no questions")
		return bank, err
	}

	b := &Bank{
		questions: make([]Question, 0, len(raw.Questions)),
		byID:      make(map[string]int, len(raw.Questions)),
		maxRaw:    make(map[traits.Dimension]int),
	}

	for i, rq := range raw.Questions {
		var q Question
		q, err = b.convertQuestion(rq)
		if err != nil {
			err = errors.Wrapf(err, "question at index %d", i)
			return bank, err
		}

		key := b.fold(q.ID)
		if _, exists := b.byID[key]; exists {
			err = errors.Errorf("duplicate question id %q", q.ID)
			return bank, err
		}
		b.byID[key] = len(b.questions)
		b.questions = append(b.questions, q)
	}

	b.computeMaxRaw()
	for _, d := range traits.Dimensions() {
		if b.maxRaw[d] > MaxPossibleRaw {
			err = errors.Errorf("dimension %s can reach %d raw points, above the %d normalization ceiling", d, b.maxRaw[d], MaxPossibleRaw)
			return bank, err
		}
	}

	bank = b
	return bank, err
}

func (b *Bank) convertQuestion(rq rawQuestion) (q Question, err error) {
	if rq.ID == "" {
		err = errors.New("missing id")
		return q, err
	}

	kind := Kind(rq.Kind)
	if kind != KindSingle && kind != KindDual {
		err = errors.Errorf("question %s has unknown kind %q", rq.ID, rq.Kind)
		return q, err
	}

	if len(rq.Options) < 2 {
		err = errors.Errorf("question %s needs at least 2 options, has %d", rq.ID, len(rq.Options))
		return q, err
	}

	q = Question{
		ID:          rq.ID,
		Kind:        kind,
		Prompt:      rq.Prompt,
		Calibration: rq.Calibration,
		Options:     make([]Option, 0, len(rq.Options)),
	}

	seen := make(map[string]bool, len(rq.Options))
	for _, ro := range rq.Options {
		if ro.Key == "" {
			err = errors.Errorf("question %s has an option without a key", rq.ID)
			return q, err
		}
		folded := b.fold(ro.Key)
		if seen[folded] {
			err = errors.Errorf("question %s repeats option key %q", rq.ID, ro.Key)
			return q, err
		}
		seen[folded] = true

		opt := Option{Key: ro.Key, Label: ro.Label, Increments: make(traits.Increments, len(ro.Traits))}
		for code, value := range ro.Traits {
			var dim traits.Dimension
			dim, err = traits.ParseDimension(code)
			if err != nil {
				err = errors.Wrapf(err, "question %s option %s", rq.ID, ro.Key)
				return q, err
			}
			if value <= 0 {
				err = errors.Errorf("question %s option %s has non-positive increment %d on %s", rq.ID, ro.Key, value, dim)
				return q, err
			}
			opt.Increments[dim] = value
		}
		q.Options = append(q.Options, opt)
	}

	return q, err
}

// computeMaxRaw sums, per dimension, the largest single-option increment of each question.
func (b *Bank) computeMaxRaw() {
	for _, q := range b.questions {
		for _, d := range traits.Dimensions() {
			best := 0
			for _, opt := range q.Options {
				if opt.Increments[d] > best {
					best = opt.Increments[d]
				}
			}
			b.maxRaw[d] += best
		}
	}
}

// fold builds a fresh Caser per call; Casers carry state and are not goroutine safe.
func (b *Bank) fold(s string) (folded string) {
	folded = cases.Fold().String(s)
	return folded
}
