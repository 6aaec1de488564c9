package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/traits"
)

//nolint:gochecknoglobals // Cobra boilerplate
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank",
	Long: `List every question with its options and the trait increments each option adds.

Dual questions take a most-like and a second-like pick; the second pick counts at half weight.`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) (err error) {
	var bank *questions.Bank
	bank, err = questions.Default()
	if err != nil {
		err = errors.Wrap(err, "failed to load question bank")
		return err
	}

	out := cmd.OutOrStdout()
	for _, q := range bank.Questions() {
		tag := string(q.Kind)
		if q.Calibration {
			tag += ", calibration"
		}
		fmt.Fprintf(out, "%s [%s] %s\n", q.ID, tag, q.Prompt)

		for _, opt := range q.Options {
			fmt.Fprintf(out, "   %s) %s  %s\n", opt.Key, opt.Label, formatIncrements(opt.Increments))
		}
		fmt.Fprintln(out)
	}

	var maxRaw []string
	for _, d := range traits.Dimensions() {
		maxRaw = append(maxRaw, fmt.Sprintf("%s=%d", d, bank.MaxRaw(d)))
	}
	fmt.Fprintf(out, "max raw per dimension: %s (normalization ceiling %d)\n", strings.Join(maxRaw, " "), questions.MaxPossibleRaw)

	return err
}

// formatIncrements renders increments in dimension order, e.g. "X+3 P+1".
func formatIncrements(inc traits.Increments) (s string) {
	parts := make([]string, 0, len(inc))
	for _, d := range traits.Dimensions() {
		if v, ok := inc[d]; ok {
			parts = append(parts, fmt.Sprintf("%s+%d", d, v))
		}
	}
	s = strings.Join(parts, " ")
	return s
}
