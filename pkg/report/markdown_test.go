package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/traits"
)

// lineWith returns the first line containing marker.
func lineWith(t *testing.T, content, marker string) (line string) {
	t.Helper()
	for _, l := range strings.Split(content, "\n") {
		if strings.Contains(l, marker) {
			line = l
			return line
		}
	}
	t.Fatalf("no line contains %q in:\n%s", marker, content)
	return line
}

// cells splits a markdown table row into trimmed cell values.
func cells(line string) (values []string) {
	for _, c := range strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|") {
		values = append(values, strings.TrimSpace(c))
	}
	return values
}

func TestMarkdown(t *testing.T) {
	user := traits.BaselineVector().With(traits.Extraversion, 100)
	result := matcher.Match(user, matcher.WeightedDistance)

	content := Markdown(result, matcher.Rank(user, matcher.WeightedDistance))

	assert.True(t, strings.HasPrefix(content, "# 开心柯基 × 隐身猫\n"))
	assert.Contains(t, content, "Strategy: Weighted Distance")
	assert.Contains(t, content, "Dual consistency: 100%")

	assert.Equal(t, []string{"Primary", "开心柯基", "Happy Corgi", "83", "42.42"}, cells(lineWith(t, content, "Primary")))
	assert.Equal(t, []string{"Secondary", "隐身猫", "Stealth Cat", "81", "47.76"}, cells(lineWith(t, content, "Secondary")))

	extraversion := lineWith(t, content, "Extraversion (X)")
	assert.Contains(t, extraversion, strings.Repeat("█", BarWidth))
	assert.Contains(t, extraversion, "✓")
	assert.NotContains(t, lineWith(t, content, "Emotional Stability (E)"), "✓")

	require.Contains(t, content, "## Ranking")
	ranking := content[strings.Index(content, "## Ranking"):]
	first := cells(lineWith(t, ranking, "开心柯基"))
	require.Len(t, first, 6)
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "83", first[2])
	assert.Equal(t, "X, P, A", first[5])

	last := cells(lineWith(t, ranking, archetypeRankedLast(t)))
	assert.Equal(t, "12", last[0])
}

func archetypeRankedLast(t *testing.T) (name string) {
	t.Helper()
	ranking := matcher.Rank(traits.BaselineVector().With(traits.Extraversion, 100), matcher.WeightedDistance)
	name = ranking[len(ranking)-1].Archetype
	return name
}

func TestMarkdownWithoutRanking(t *testing.T) {
	result := matcher.Match(traits.BaselineVector(), matcher.Hybrid)

	content := Markdown(result, nil)

	assert.Contains(t, content, "Strategy: Hybrid")
	assert.NotContains(t, content, "## Ranking")
}

func TestRankingTableLimits(t *testing.T) {
	ranking := matcher.Rank(traits.BaselineVector(), matcher.WeightedDistance)

	assert.Equal(t, 3, RankingTable(ranking, 3).Length())
	assert.Equal(t, len(ranking), RankingTable(ranking, 50).Length())
	assert.Equal(t, 0, RankingTable(ranking, -1).Length())

	rendered := RankingTable(ranking, 2).Render()
	assert.Contains(t, rendered, "隐身猫")
	assert.Contains(t, rendered, "机智狐")
}

func TestBar(t *testing.T) {
	tests := []struct {
		score  int
		filled int
	}{
		{score: 0, filled: 0},
		{score: 4, filled: 0},
		{score: 5, filled: 1},
		{score: 50, filled: 10},
		{score: 99, filled: 19},
		{score: 100, filled: 20},
		{score: 140, filled: 20},
		{score: -3, filled: 0},
	}

	for _, tt := range tests {
		bar := Bar(tt.score)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "score %d", tt.score)
		assert.Equal(t, BarWidth, len([]rune(bar)), "score %d", tt.score)
	}
}

func TestWriteMarkdown(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "report.md")
	testContent := "# Report\n\nThis is a test."

	err := WriteMarkdown(testContent, testFile)
	require.NoError(t, err)

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, string(data))
}

func TestWriteMarkdownCreatesDir(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "dir", "report.md")

	err := WriteMarkdown("test", nestedPath)
	require.NoError(t, err)

	_, err = os.Stat(nestedPath)
	assert.NoError(t, err)
}
