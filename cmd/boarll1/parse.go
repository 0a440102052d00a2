package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// demoTokens is the terminal sequence of 'numa x <- 3;'.
const demoTokens = "numa IDENTIFIER <- NUM_LITERAL ;"

var parseFlags = struct {
	tokens *string
	tree   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a sequence of terminals",
		Long: `parse runs the predictive parser on a whitespace separated sequence of
terminals and prints the productions applied and the resulting parse tree.`,
		Example: `  boarll1 parse --tokens "numa IDENTIFIER <- NUM_LITERAL ;"
  boarll1 parse -g expr.bnf --tokens "id + id * id" --tree`,
		Args: cobra.NoArgs,
		RunE: runParse,
	}
	parseFlags.tokens = cmd.Flags().StringP("tokens", "k", demoTokens, "terminals to parse")
	parseFlags.tree = cmd.Flags().Bool("tree", false, "also print the parse tree as an indented tree")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	terminals := strings.Fields(*parseFlags.tokens)
	tracer().Infof("parsing %d terminals", len(terminals))
	out := engine.ParseTerminals(terminals)
	showOutput(out, showOptions{productions: true, tree: *parseFlags.tree})
	if !out.Succeeded() {
		return errors.New("input rejected")
	}
	return nil
}
