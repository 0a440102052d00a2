package main

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boar/pipeline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `repl reads lines of Boar source and compiles each of them. Lines starting
with a colon are commands:

  :terminals t1 t2 …   parse a sequence of terminals
  :table               print the parsing table
  :sets                print FIRST and FOLLOW sets
  :tree                print the last parse tree as an indented tree
  :quit                end the session (as does <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.init = cmd.Flags().StringP("init", "i", "", "file of lines to evaluate before going interactive")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	repl, err := readline.New("boar> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{engine: engine, repl: repl}
	pterm.Info.Println("Welcome to the Boar REPL")
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// Intp is an interactive session on an engine.
type Intp struct {
	engine  *pipeline.Engine
	repl    *readline.Instance
	lastOut *pipeline.Output
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL reads and evaluates lines until EOF or :quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var (
	errUnknownCommand = errors.New("unknown command")
	errNoTree         = errors.New("no parse tree")
)

// Eval evaluates one line of input. It returns true if the session should end.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.show(intp.engine.Compile(line))
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":terminals", ":t":
		return false, intp.show(intp.engine.ParseTerminals(args[1:]))
	case ":table":
		pterm.DefaultTable.WithHasHeader().WithData(tableData(intp.engine.Table)).Render()
		return false, nil
	case ":tree":
		if intp.lastOut == nil || intp.lastOut.Tree == nil {
			pterm.Error.Println("no parse tree available")
			return false, errNoTree
		}
		root := pterm.NewTreeFromLeveledList(intp.lastOut.Tree.LeveledList())
		pterm.DefaultTree.WithRoot(root).Render()
		return false, nil
	case ":sets":
		pterm.DefaultTable.WithHasHeader().WithData(setsTableData(intp.engine.Table.Analysis())).Render()
		return false, nil
	}
	pterm.Error.Println("unknown command " + args[0])
	return false, errUnknownCommand
}

func (intp *Intp) show(out *pipeline.Output) error {
	intp.lastOut = out
	showOutput(out, showOptions{productions: true})
	if !out.Succeeded() {
		return errors.New(out.Errors[0])
	}
	return nil
}
