// Package batch matches many answer sheets in parallel.
package batch

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nikogura/archetype-match/pkg/answers"
	"github.com/nikogura/archetype-match/pkg/logging"
	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/scorer"
	"github.com/nikogura/archetype-match/pkg/similarity"
)

// Outcome is the match for one sheet plus any coverage warnings it raised.
type Outcome struct {
	UserID   string              `json:"user_id"`
	Result   matcher.MatchResult `json:"result"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Runner fans Accumulate and Match out over a bounded pool of goroutines.
type Runner struct {
	Workers  int
	Strategy matcher.Strategy
	// Alpha is the hybrid blend. Nil means similarity.DefaultAlpha.
	Alpha *float64
	// Bank defaults to the embedded question bank.
	Bank *questions.Bank
	// OnOutcome, when set, sees each outcome as its sheet finishes. It is called from
	// worker goroutines and must be safe for concurrent use.
	OnOutcome func(index int, outcome Outcome)
}

// Run scores and matches every sheet. Outcomes come back in input order.
// Cancelling ctx stops scheduling further sheets and Run returns the context error.
// A cancellation that lands after every sheet has been matched does not discard the results.
func (r *Runner) Run(ctx context.Context, sheets []answers.Sheet) (outcomes []Outcome, err error) {
	bank := r.Bank
	if bank == nil {
		bank, err = questions.Default()
		if err != nil {
			err = errors.Wrap(err, "failed to load question bank")
			return outcomes, err
		}
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	alpha := similarity.DefaultAlpha
	if r.Alpha != nil {
		alpha = *r.Alpha
	}

	logger := logging.WithComponent("batch")
	s := scorer.NewScorer(bank)
	results := make([]Outcome, len(sheets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	logger.Debug().Int("sheets", len(sheets)).Int("workers", workers).Str("strategy", r.Strategy.String()).Msg("batch started")

	scheduled := 0
	for i := range sheets {
		if gctx.Err() != nil {
			break
		}
		scheduled++

		g.Go(func() (err error) {
			err = gctx.Err()
			if err != nil {
				return err
			}

			sheet := &sheets[i]
			result := matcher.MatchWithAlpha(s.Accumulate(sheet.Answers), r.Strategy, alpha)

			results[i] = Outcome{
				UserID:   sheet.UserID,
				Result:   result,
				Warnings: sheet.Coverage(bank).Warnings(),
			}

			logger.Debug().
				Str("user_id", sheet.UserID).
				Str("primary", result.PrimaryArchetype).
				Str("secondary", result.SecondaryArchetype).
				Int("warnings", len(results[i].Warnings)).
				Msg("sheet matched")

			if r.OnOutcome != nil {
				r.OnOutcome(i, results[i])
			}
			return err
		})
	}

	err = g.Wait()
	if err == nil && scheduled < len(sheets) {
		err = ctx.Err()
	}
	if err != nil {
		err = errors.Wrap(err, "batch cancelled")
		return outcomes, err
	}

	outcomes = results
	return outcomes, err
}

// WriteJSONL writes one JSON object per outcome.
func WriteJSONL(w io.Writer, outcomes []Outcome) (err error) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i := range outcomes {
		err = enc.Encode(&outcomes[i])
		if err != nil {
			err = errors.Wrapf(err, "failed to write outcome for %s", outcomes[i].UserID)
			return err
		}
	}

	return err
}
