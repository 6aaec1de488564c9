// Package report renders match results as markdown and terminal tables.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/archetype-match/pkg/archetypes"
	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/traits"
)

// BarWidth is the number of cells in a trait bar. Each cell is five points.
const BarWidth = 20

// Markdown renders the result. A nil ranking omits the ranking section.
func Markdown(result matcher.MatchResult, ranking []matcher.Fit) (content string) {
	titleCaser := cases.Title(language.English)

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", result.DualDisplay)
	fmt.Fprintf(&b, "Strategy: %s  \n", titleCaser.String(strings.ReplaceAll(result.Strategy.String(), "-", " ")))
	fmt.Fprintf(&b, "Dual consistency: %d%%\n\n", result.DualConsistencyBonus)

	b.WriteString(RolesTable(result).RenderMarkdown())
	b.WriteString("\n\n## Traits\n\n")
	b.WriteString(TraitsTable(result.UserTraits).RenderMarkdown())
	b.WriteString("\n")

	if ranking != nil {
		b.WriteString("\n## Ranking\n\n")
		b.WriteString(RankingTable(ranking, len(ranking)).RenderMarkdown())
		b.WriteString("\n")
	}

	content = b.String()
	return content
}

// RolesTable lists the primary and secondary archetypes.
func RolesTable(result matcher.MatchResult) (t table.Writer) {
	t = table.NewWriter()
	t.AppendHeader(table.Row{"Role", "Archetype", "Nickname", "Score", "Distance"})
	t.AppendRow(table.Row{"Primary", result.PrimaryArchetype, nickname(result.PrimaryArchetype), result.PrimaryScore, fmt.Sprintf("%.2f", result.PrimaryDistance)})
	t.AppendRow(table.Row{"Secondary", result.SecondaryArchetype, nickname(result.SecondaryArchetype), result.SecondaryScore, fmt.Sprintf("%.2f", result.SecondaryDistance)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t
}

// TraitsTable shows each dimension with a bar. The user's top three are marked.
func TraitsTable(v traits.Vector) (t table.Writer) {
	titleCaser := cases.Title(language.English)
	top := v.Top(3)

	t = table.NewWriter()
	t.AppendHeader(table.Row{"Dimension", "Score", "Bar", "Top"})
	for _, d := range traits.Dimensions() {
		mark := ""
		if traits.Contains(top, d) {
			mark = "✓"
		}
		t.AppendRow(table.Row{fmt.Sprintf("%s (%s)", titleCaser.String(d.Name()), d), v.Get(d), Bar(v.Get(d)), mark})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return t
}

// RankingTable lists the first n fits, best first.
func RankingTable(ranking []matcher.Fit, n int) (t table.Writer) {
	t = table.NewWriter()
	t.AppendHeader(table.Row{"#", "Archetype", "Score", "Weighted distance", "Euclidean distance", "Core traits"})

	for i, fit := range ranking[:min(max(n, 0), len(ranking))] {
		core := make([]string, len(fit.CoreTraits))
		for j, d := range fit.CoreTraits {
			core[j] = string(d)
		}
		t.AppendRow(table.Row{
			i + 1,
			fit.Archetype,
			fit.Score,
			fmt.Sprintf("%.2f", fit.Distance),
			fmt.Sprintf("%.2f", fit.EuclideanDistance),
			strings.Join(core, ", "),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t
}

func nickname(name string) (nick string) {
	if a, found := archetypes.Lookup(name); found {
		nick = a.Nickname
	}
	return nick
}

// Bar draws a fixed-width bar for a score in [0, 100].
func Bar(score int) (bar string) {
	filled := traits.Clamp(score) * BarWidth / traits.MaxScore
	bar = strings.Repeat("█", filled) + strings.Repeat("·", BarWidth-filled)
	return bar
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}
