package main

import (
	"github.com/npillmayer/boar/boarlang"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/pipeline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	grammar *string
	trace   *string
}{}

var rootCmd = &cobra.Command{
	Use:   "boarll1",
	Short: "Analyse LL(1) grammars and parse Boar programs",
	Long: `boarll1 provides the following features:
- Checks a grammar for the LL(1) property and prints its sets and parsing table.
- Parses sequences of terminals and prints derivation and parse tree.
- Compiles Boar source files into program internal form and parse tree.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "", "grammar file path (default bundled Boar grammar)")
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, key := range []string{"boar.ll1", "boar.scanner", "boar.pipeline", "boar.cli"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar loads the grammar selected by flag --grammar.
func loadGrammar() (*ll1.Grammar, error) {
	if *rootFlags.grammar == "" {
		return boarlang.Grammar()
	}
	return ll1.LoadFromFile(*rootFlags.grammar)
}

// loadEngine prepares an engine for the grammar selected by flag --grammar.
func loadEngine() (*pipeline.Engine, error) {
	return pipeline.LoadEngine(*rootFlags.grammar)
}
