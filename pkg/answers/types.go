package answers

import (
	"github.com/nikogura/archetype-match/pkg/scorer"
)

// Sheet is one user's submitted quiz, keyed by question id.
type Sheet struct {
	UserID  string                   `json:"user_id" validate:"required"`
	Answers map[string]scorer.Answer `json:"answers" validate:"dive,keys,required,endkeys"`
}

// Coverage reports how a sheet lines up with a question bank.
// Nothing here blocks scoring; unknown entries simply contribute zero.
type Coverage struct {
	UnknownQuestions []string `json:"unknown_questions,omitempty"`
	UnknownOptions   []string `json:"unknown_options,omitempty"` // "question:option"
	WrongKind        []string `json:"wrong_kind,omitempty"`
	Unanswered       []string `json:"unanswered,omitempty"`
}

// Clean reports whether the sheet answered every question with known options.
func (c Coverage) Clean() (clean bool) {
	clean = len(c.UnknownQuestions) == 0 && len(c.UnknownOptions) == 0 &&
		len(c.WrongKind) == 0 && len(c.Unanswered) == 0
	return clean
}

// Warnings flattens the coverage findings into readable lines.
func (c Coverage) Warnings() (warnings []string) {
	for _, id := range c.UnknownQuestions {
		warnings = append(warnings, "unknown question "+id)
	}
	for _, ref := range c.UnknownOptions {
		warnings = append(warnings, "unknown option "+ref)
	}
	for _, id := range c.WrongKind {
		warnings = append(warnings, "answer kind does not match question "+id)
	}
	for _, id := range c.Unanswered {
		warnings = append(warnings, "unanswered question "+id)
	}
	return warnings
}
