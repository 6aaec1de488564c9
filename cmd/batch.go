package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/archetype-match/pkg/answers"
	"github.com/nikogura/archetype-match/pkg/batch"
	"github.com/nikogura/archetype-match/pkg/logging"
	"github.com/nikogura/archetype-match/pkg/matcher"
)

//nolint:gochecknoglobals // Cobra boilerplate
var batchStrategy string

//nolint:gochecknoglobals // Cobra boilerplate
var batchWorkers int

//nolint:gochecknoglobals // Cobra boilerplate
var batchOut string

//nolint:gochecknoglobals // Cobra boilerplate
var batchCmd = &cobra.Command{
	Use:   "batch <sheets.json|sheets.jsonl|url>",
	Short: "Match many answer sheets in parallel",
	Long: `Match every answer sheet in a file and write one JSON result per line.

The input is either a JSON array of answer sheets or one sheet per line.
Results keep input order.

Example:
  archetype-match batch sheets.jsonl
  archetype-match batch sheets.json --workers 16 --out results.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchStrategy, "strategy", "", "Matching strategy: weighted-distance or hybrid (default from config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Parallel workers (default from config)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "Write results to this file instead of stdout (bare names go under output_dir)")
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var strategy matcher.Strategy
	strategy, err = resolveStrategy(batchStrategy)
	if err != nil {
		return err
	}

	workers := getConfig().Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	var sheets []answers.Sheet
	sheets, err = answers.LoadManyWithContext(ctx, args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	runner := &batch.Runner{
		Workers:  workers,
		Strategy: strategy,
		Alpha:    getConfig().HybridAlpha,
		OnOutcome: func(_ int, o batch.Outcome) {
			logWarnings(o.UserID, o.Warnings)
		},
	}

	var outcomes []batch.Outcome
	outcomes, err = runner.Run(ctx, sheets)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if batchOut != "" {
		path := reportPath(batchOut)
		err = os.MkdirAll(filepath.Dir(path), 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create output directory for %s", path)
			return err
		}

		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to create results file: %s", path)
			return err
		}
		defer f.Close()
		w = f
	}

	err = batch.WriteJSONL(w, outcomes)
	if err != nil {
		return err
	}

	logging.Info().
		Int("sheets", len(outcomes)).
		Int("workers", workers).
		Str("strategy", strategy.String()).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("batch complete")

	if batchOut != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Results written to %s\n", reportPath(batchOut))
	}

	return err
}
