package cmd

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/archetype-match/pkg/archetypes"
)

//nolint:gochecknoglobals // Cobra boilerplate
var archetypesJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the archetype catalogue",
	Long: `List the twelve archetypes in canonical order with their reference vectors
and core traits.`,
	Args: cobra.NoArgs,
	RunE: runArchetypes,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(archetypesCmd)
	archetypesCmd.Flags().BoolVar(&archetypesJSON, "json", false, "Print the catalogue as JSON")
}

func runArchetypes(cmd *cobra.Command, args []string) (err error) {
	all := archetypes.All()

	if archetypesJSON {
		var data []byte
		data, err = json.MarshalIndent(all, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal archetypes")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Nickname", "A", "O", "C", "E", "X", "P", "Core"})
	for i, a := range all {
		core := make([]string, len(a.CoreTraits))
		for j, d := range a.CoreTraits {
			core[j] = string(d)
		}
		r := a.Reference
		t.AppendRow(table.Row{i + 1, a.Name, a.Nickname, r.A, r.O, r.C, r.E, r.X, r.P, strings.Join(core, ",")})
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
