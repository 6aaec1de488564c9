package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/archetype-match/pkg/answers"
	"github.com/nikogura/archetype-match/pkg/logging"
	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/report"
	"github.com/nikogura/archetype-match/pkg/scorer"
)

//nolint:gochecknoglobals // Cobra boilerplate
var matchStrategy string

//nolint:gochecknoglobals // Cobra boilerplate
var matchReport string

//nolint:gochecknoglobals // Cobra boilerplate
var matchTop int

//nolint:gochecknoglobals // Cobra boilerplate
var matchCmd = &cobra.Command{
	Use:   "match <answers.json|url>",
	Short: "Score one answer sheet and assign archetypes",
	Long: `Score a single answer sheet and print the match result as JSON.

Unknown questions or options and unanswered questions are logged as warnings;
they contribute nothing to the trait vector.

Example:
  archetype-match match answers.json
  archetype-match match answers.json --strategy weighted-distance --top 5
  archetype-match match answers.json --report alice.md`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringVar(&matchStrategy, "strategy", "", "Matching strategy: weighted-distance or hybrid (default from config)")
	matchCmd.Flags().StringVar(&matchReport, "report", "", "Write a markdown report to this file (bare names go under output_dir)")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Also print the N best-fitting archetypes")
}

func runMatch(cmd *cobra.Command, args []string) (err error) {
	var strategy matcher.Strategy
	strategy, err = resolveStrategy(matchStrategy)
	if err != nil {
		return err
	}

	var sheet answers.Sheet
	sheet, err = answers.Load(args[0])
	if err != nil {
		return err
	}

	var bank *questions.Bank
	bank, err = questions.Default()
	if err != nil {
		err = errors.Wrap(err, "failed to load question bank")
		return err
	}

	logWarnings(sheet.UserID, sheet.Coverage(bank).Warnings())

	cfg := getConfig()
	alpha := cfg.Alpha()
	userTraits := scorer.NewScorer(bank).Accumulate(sheet.Answers)
	result := matcher.MatchWithAlpha(userTraits, strategy, alpha)

	logging.Debug().
		Str("user_id", sheet.UserID).
		Str("traits", userTraits.String()).
		Str("primary", result.PrimaryArchetype).
		Msg("sheet matched")

	var data []byte
	data, err = json.MarshalIndent(result, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal match result")
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	var ranking []matcher.Fit
	if matchTop > 0 || matchReport != "" {
		ranking = matcher.RankWithAlpha(userTraits, strategy, alpha)
	}

	if matchTop > 0 {
		t := report.RankingTable(ranking, matchTop)
		t.SetStyle(table.StyleLight)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	}

	if matchReport != "" {
		path := reportPath(matchReport)
		err = report.WriteMarkdown(report.Markdown(result, ranking), path)
		if err != nil {
			return err
		}
		if getVerbose() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
		}
	}

	return err
}

// resolveStrategy prefers the flag value and falls back to config.
func resolveStrategy(flagValue string) (strategy matcher.Strategy, err error) {
	if flagValue == "" {
		cfg := getConfig()
		strategy = cfg.MatchStrategy()
		return strategy, err
	}

	strategy, err = matcher.ParseStrategy(flagValue)
	if err != nil {
		err = errors.Wrap(err, "invalid --strategy")
		return strategy, err
	}
	return strategy, err
}

// reportPath places bare file names under the configured output directory.
func reportPath(name string) (path string) {
	path = name
	if !filepath.IsAbs(name) && filepath.Dir(name) == "." {
		path = filepath.Join(getConfig().OutputDir, name)
	}
	return path
}

func logWarnings(userID string, warnings []string) {
	for _, w := range warnings {
		logging.Warn().Str("user_id", userID).Msg(w)
	}
}
