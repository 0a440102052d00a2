package main

import (
	"github.com/npillmayer/boar/ll1"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "sets",
		Short:   "Print the FIRST and FOLLOW sets of a grammar",
		Example: `  boarll1 sets -g expr.bnf`,
		Args:    cobra.NoArgs,
		RunE:    runSets,
	}
	rootCmd.AddCommand(cmd)
}

func runSets(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	ga := ll1.Analysis(g)
	pterm.DefaultTable.WithHasHeader().WithData(setsTableData(ga)).Render()
	return nil
}

func setsTableData(ga *ll1.SetAnalysis) pterm.TableData {
	g := ga.Grammar()
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW", "Nullable"}}
	for _, A := range g.NonTerminals() {
		nullable := ""
		if ga.IsNullable(A) {
			nullable = "ε"
		}
		data = append(data, []string{
			g.Display(A),
			ga.First(A).String(),
			ga.Follow(A).String(),
			nullable,
		})
	}
	return data
}
