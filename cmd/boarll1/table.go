package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/boar/ll1"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the LL(1) parsing table of a grammar",
		Long: `table prints the parsing table of a grammar. Rows are non-terminals,
columns are terminals and the end marker $. A cell holds the number of the
rule to expand with.`,
		Example: `  boarll1 table -g expr.bnf`,
		Args:    cobra.NoArgs,
		RunE:    runTable,
	}
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	table, err := ll1.NewTable(g)
	if err != nil {
		var conflict *ll1.ConflictError
		if errors.As(err, &conflict) {
			pterm.Error.Println(fmt.Sprintf("rules competing for cell [%s, %s]:", conflict.NonTerminal, conflict.Terminal))
			pterm.Println("    " + g.Rule(conflict.First).String())
			pterm.Println("    " + g.Rule(conflict.Second).String())
		}
		return err
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData(table)).Render()
	pterm.Println()
	for _, r := range g.Rules() {
		pterm.Println(r.String())
	}
	return nil
}

func tableData(table *ll1.Table) pterm.TableData {
	cols := table.Lookaheads()
	header := append([]string{"M"}, cols...)
	data := pterm.TableData{header}
	for _, A := range table.NonTerminals() {
		row := make([]string, len(cols)+1)
		row[0] = table.Grammar().Display(A)
		for j, a := range cols {
			if r, ok := table.Lookup(A, a); ok {
				row[j+1] = strconv.Itoa(r.Index)
			}
		}
		data = append(data, row)
	}
	return data
}
