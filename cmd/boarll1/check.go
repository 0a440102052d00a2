package main

import (
	"fmt"

	"github.com/npillmayer/boar/ll1"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a grammar for consistency and the LL(1) property",
		Long: `check verifies that every non-terminal of a grammar is defined and
reachable, builds the LL(1) parsing table and prints the grammar's fingerprint.`,
		Example: `  boarll1 check -g expr.bnf`,
		Args:    cobra.NoArgs,
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("grammar %s: %d rules, %d non-terminals, %d terminals",
		g.Name(), g.Size(), len(g.NonTerminals()), len(g.Terminals())))
	for _, i := range g.EpsilonLiterals() {
		pterm.Warning.Println(fmt.Sprintf("rule %s uses ε as a literal, treated as empty", g.Rule(i)))
	}
	if err = g.Verify(); err != nil {
		return err
	}
	table, err := ll1.NewTable(g)
	if err != nil {
		return err
	}
	fp, err := g.Fingerprint()
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("grammar is LL(1), %d table entries", table.Size()))
	pterm.Info.Println("fingerprint " + fp)
	return nil
}
