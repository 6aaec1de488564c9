package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/archetype-match/pkg/batch"
	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/similarity"
	"github.com/nikogura/archetype-match/pkg/traits"
)

const maxExtraversionSheet = `{
  "user_id": "extravert",
  "answers": {
    "q1": {"kind": "single", "selected_option": "a"},
    "q2": {"kind": "single", "selected_option": "b"},
    "q3": {"kind": "single", "selected_option": "c"},
    "q4": {"kind": "single", "selected_option": "d"},
    "q5": {"kind": "single", "selected_option": "b"},
    "q6": {"kind": "dual", "most_like_option": "a", "second_like_option": "d"},
    "q7": {"kind": "single", "selected_option": "c"},
    "q8": {"kind": "single", "selected_option": "a"},
    "q9": {"kind": "dual", "most_like_option": "b", "second_like_option": "d"},
    "q10": {"kind": "single", "selected_option": "d"},
    "q11": {"kind": "single", "selected_option": "a"},
    "q12": {"kind": "single", "selected_option": "b"}
  }
}`

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	verbose, configFile, logLevel = false, "", "error"
	matchStrategy, matchReport, matchTop = "", "", 0
	batchStrategy, batchWorkers, batchOut = "", 0, ""
	archetypesJSON = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	stdout = out.String()
	return stdout, err
}

func writeSheet(t *testing.T, name, content string) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMatchCommand(t *testing.T) {
	out, err := execute(t, "match", writeSheet(t, "answers.json", maxExtraversionSheet), "--strategy", "weighted-distance", "--log-level", "error")
	require.NoError(t, err)

	var result matcher.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "开心柯基", result.PrimaryArchetype)
	assert.Equal(t, "隐身猫", result.SecondaryArchetype)
	assert.Equal(t, 100, result.UserTraits.X)
	assert.Equal(t, matcher.WeightedDistance, result.Strategy)
}

func TestMatchCommandTopAndReport(t *testing.T) {
	reportFile := filepath.Join(t.TempDir(), "reports", "extravert.md")

	out, err := execute(t, "match", writeSheet(t, "answers.json", maxExtraversionSheet), "--top", "3", "--report", reportFile, "--log-level", "error")
	require.NoError(t, err)

	table := out[strings.LastIndex(out, "}")+1:]
	expected := matcher.Rank(traits.BaselineVector().With(traits.Extraversion, 100), matcher.Hybrid)
	for _, fit := range expected[:3] {
		assert.Contains(t, table, fit.Archetype)
	}
	for _, fit := range expected[3:] {
		assert.NotContains(t, table, fit.Archetype)
	}

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# 开心柯基 × 机智狐"))
}

func TestMatchCommandHybridAlphaFromConfig(t *testing.T) {
	configPath := writeSheet(t, "config.json", `{"strategy": "hybrid", "hybrid_alpha": 1}`)

	out, err := execute(t, "match", writeSheet(t, "answers.json", maxExtraversionSheet), "--config", configPath, "--log-level", "error")
	require.NoError(t, err)

	var result matcher.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	expected := matcher.MatchWithAlpha(traits.BaselineVector().With(traits.Extraversion, 100), matcher.Hybrid, 1)
	assert.Equal(t, expected.PrimaryArchetype, result.PrimaryArchetype)
	assert.Equal(t, expected.PrimaryScore, result.PrimaryScore)
	assert.Equal(t, similarity.DistanceToScore(result.PrimaryDistance), result.PrimaryScore)
	assert.Equal(t, similarity.DistanceToScore(result.SecondaryDistance), result.SecondaryScore)
}

func TestMatchCommandErrors(t *testing.T) {
	_, err := execute(t, "match", "/nonexistent/answers.json", "--log-level", "error")
	require.Error(t, err)

	_, err = execute(t, "match", writeSheet(t, "answers.json", maxExtraversionSheet), "--strategy", "cosine", "--log-level", "error")
	require.Error(t, err)

	_, err = execute(t, "match", writeSheet(t, "bad.json", `{"answers": {}}`), "--log-level", "error")
	require.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	sheets := strings.ReplaceAll(maxExtraversionSheet, "\n", "") + "\n" + `{"user_id": "blank", "answers": {}}` + "\n"
	outFile := filepath.Join(t.TempDir(), "results.jsonl")

	_, err := execute(t, "batch", writeSheet(t, "sheets.jsonl", sheets), "--workers", "2", "--out", outFile, "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first, second batch.Outcome
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "extravert", first.UserID)
	assert.Equal(t, "开心柯基", first.Result.PrimaryArchetype)
	assert.Equal(t, matcher.Hybrid, first.Result.Strategy)
	assert.Equal(t, "blank", second.UserID)
	assert.Contains(t, second.Warnings, "unanswered question q1")
}

func TestArchetypesCommand(t *testing.T) {
	out, err := execute(t, "archetypes", "--log-level", "error")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "开心柯基"), strings.Index(out, "隐身猫"))
	assert.Contains(t, out, "Steady Elephant")
	assert.Contains(t, out, "X,P,A")

	out, err = execute(t, "archetypes", "--json", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `"nickname": "Warm Bear"`)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "q6 [dual]")
	assert.Contains(t, out, "q12 [single, calibration]")
	assert.Contains(t, out, "X=36")
	assert.Contains(t, out, "normalization ceiling 36")
}

func TestInitCommand(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	out, err := execute(t, "init", "--config", configPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, configPath)

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	_, err = execute(t, "init", "--config", configPath, "--log-level", "error")
	require.Error(t, err)
}
