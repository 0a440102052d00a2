package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "ebnf",
		Short:   "Write a grammar in EBNF notation",
		Example: `  boarll1 ebnf -g expr.bnf > expr.ebnf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar()
			if err != nil {
				return err
			}
			return g.WriteEBNF(os.Stdout)
		},
	}
	rootCmd.AddCommand(cmd)
}
