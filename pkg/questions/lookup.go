package questions

import (
	"github.com/nikogura/archetype-match/pkg/traits"
)

// Len returns the number of questions.
func (b *Bank) Len() (n int) {
	n = len(b.questions)
	return n
}

// Questions returns a copy of the questions in bank order.
func (b *Bank) Questions() (qs []Question) {
	qs = make([]Question, len(b.questions))
	for i, q := range b.questions {
		qs[i] = q.clone()
	}
	return qs
}

// Question finds a question by id. Ids match case-insensitively.
func (b *Bank) Question(id string) (q Question, found bool) {
	idx, ok := b.byID[b.fold(id)]
	if !ok {
		return q, found
	}

	q = b.questions[idx].clone()
	found = true
	return q, found
}

// HasOption reports whether the question exists and offers the option key.
func (b *Bank) HasOption(questionID, optionKey string) (found bool) {
	_, found = b.option(questionID, optionKey)
	return found
}

// Increments returns the trait increments for choosing optionKey on questionID.
// An unknown question or option yields nil, which callers treat as no contribution.
func (b *Bank) Increments(questionID, optionKey string) (inc traits.Increments) {
	opt, found := b.option(questionID, optionKey)
	if !found {
		return inc
	}

	inc = make(traits.Increments, len(opt.Increments))
	for d, v := range opt.Increments {
		inc[d] = v
	}
	return inc
}

// MaxRaw is the sum over questions of the largest single-option increment on d.
func (b *Bank) MaxRaw(d traits.Dimension) (raw int) {
	raw = b.maxRaw[d]
	return raw
}

func (b *Bank) option(questionID, optionKey string) (opt Option, found bool) {
	idx, ok := b.byID[b.fold(questionID)]
	if !ok {
		return opt, found
	}

	key := b.fold(optionKey)
	for _, o := range b.questions[idx].Options {
		if b.fold(o.Key) == key {
			opt = o
			found = true
			return opt, found
		}
	}
	return opt, found
}

func (q Question) clone() (c Question) {
	c = q
	c.Options = make([]Option, len(q.Options))
	for i, o := range q.Options {
		inc := make(traits.Increments, len(o.Increments))
		for d, v := range o.Increments {
			inc[d] = v
		}
		c.Options[i] = Option{Key: o.Key, Label: o.Label, Increments: inc}
	}
	return c
}
