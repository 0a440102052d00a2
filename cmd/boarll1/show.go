package main

import (
	"github.com/npillmayer/boar/ll1/fstree"
	"github.com/npillmayer/boar/pipeline"
	"github.com/pterm/pterm"
)

// showOptions selects the sections of an output to print.
type showOptions struct {
	pif         bool
	productions bool
	tree        bool // pterm tree in addition to the father-sibling table
}

// showOutput prints the results of a compilation. Errors are always printed.
func showOutput(out *pipeline.Output, opts showOptions) {
	if opts.pif && len(out.PIF) > 0 {
		pterm.DefaultSection.Println("Program internal form")
		for _, line := range out.PIFLines() {
			pterm.Println(line)
		}
	}
	if opts.productions && len(out.Productions) > 0 {
		pterm.DefaultSection.Println("Productions")
		for _, p := range out.Productions {
			pterm.Println(p)
		}
	}
	for _, msg := range out.Errors {
		pterm.Error.Println(msg)
	}
	if out.Tree != nil {
		showTree(out.Tree, opts.tree)
	}
}

func showTree(tree *fstree.Tree, fancy bool) {
	pterm.DefaultSection.Println("Parse tree")
	pterm.DefaultTable.WithHasHeader().WithData(tree.TableData()).Render()
	if fancy {
		pterm.Println()
		root := pterm.NewTreeFromLeveledList(tree.LeveledList())
		pterm.DefaultTree.WithRoot(root).Render()
	}
}
