package fstree

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"
)

var tableHeader = []string{"Index", "Info", "Parent", "RightSibling"}

// WriteTable writes the tree as a table with columns Index, Info, Parent and
// RightSibling, one row per node in ID order. Absent links are shown as '-'.
func (t *Tree) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range t.TableData() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// TableData returns the table of WriteTable, including the header row,
// ready to be rendered with pterm.DefaultTable.
func (t *Tree) TableData() pterm.TableData {
	data := pterm.TableData{tableHeader}
	for _, n := range t.nodes {
		data = append(data, []string{
			strconv.Itoa(n.ID),
			n.Info,
			link(n.Parent),
			link(n.RightSibling),
		})
	}
	return data
}

// LeveledList flattens the tree depth-first, for display with
// pterm.NewTreeFromLeveledList.
func (t *Tree) LeveledList() pterm.LeveledList {
	var ll pterm.LeveledList
	t.Walk(func(n Node, depth int) {
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: n.Info})
	})
	return ll
}

func link(id int) string {
	if id == NoNode {
		return "-"
	}
	return strconv.Itoa(id)
}
