package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
)

var compileFlags = struct {
	tree *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "compile [source file]",
		Short: "Compile a Boar source file",
		Long: `compile scans and parses a Boar source file. It prints the program internal
form, the productions applied and the parse tree. Without a file argument the
source is read from stdin.`,
		Example: `  boarll1 compile program.boar
  cat program.boar | boarll1 compile`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompile,
	}
	compileFlags.tree = cmd.Flags().Bool("tree", false, "also print the parse tree as an indented tree")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	var src []byte
	if len(args) > 0 {
		src, err = ioutil.ReadFile(args[0])
	} else {
		src, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}
	out := engine.Compile(string(src))
	showOutput(out, showOptions{pif: true, productions: true, tree: *compileFlags.tree})
	if !out.Succeeded() {
		return fmt.Errorf("compilation failed with %d error(s)", len(out.Errors))
	}
	return nil
}
