package ll1

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/boar/ll1/sparse"
)

// Table is a predictive parsing table for an LL(1) grammar. It maps pairs
// (non-terminal, lookahead) to exactly one rule. Lookaheads are terminals
// or the end marker $.
//
// Rows are the grammar's non-terminals in sorted order, columns are the sorted
// terminals followed by $. Tables are read-only and may be shared between
// parsers running concurrently.
type Table struct {
	g       *Grammar
	ga      *SetAnalysis
	rows    map[string]int
	cols    map[string]int
	rowSyms []string
	colSyms []string
	matrix  *sparse.IntMatrix
}

// NewTable analyses a grammar and builds its parsing table in one step.
func NewTable(g *Grammar) (*Table, error) {
	return BuildTable(Analysis(g))
}

// BuildTable constructs the LL(1) parsing table from a grammar analysis.
//
// For every rule A ::= α, the cells [A,t] for all terminals t ∈ FIRST(α) receive
// the rule. If α is nullable, the cells [A,f] for all f ∈ FOLLOW(A) receive the
// rule as well. If a cell is claimed by two different rules, the grammar is not
// LL(1) and BuildTable returns a *ConflictError for the first conflict found.
func BuildTable(ga *SetAnalysis) (*Table, error) {
	g := ga.Grammar()
	t := &Table{
		g:       g,
		ga:      ga,
		rows:    make(map[string]int),
		cols:    make(map[string]int),
		rowSyms: g.NonTerminals(),
		colSyms: append(g.Terminals(), EndMarker),
	}
	for i, A := range t.rowSyms {
		t.rows[A] = i
	}
	for j, a := range t.colSyms {
		t.cols[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rowSyms), len(t.colSyms), sparse.DefaultNullValue)
	tracer().Infof("LL(1) table of size %d x %d", t.matrix.M(), t.matrix.N())
	for _, r := range g.rules {
		first := ga.FirstOfSequence(r.rhs)
		for _, a := range first.syms {
			if a == Epsilon {
				continue
			}
			if err := t.assign(r, a); err != nil {
				return nil, err
			}
		}
		if first.Contains(Epsilon) {
			for _, f := range ga.Follow(r.LHS).syms {
				if err := t.assign(r, f); err != nil {
					return nil, err
				}
			}
		}
	}
	t.matrix.Freeze()
	return t, nil
}

func (t *Table) assign(r *Rule, a string) error {
	i, j := t.rows[r.LHS], t.cols[a]
	if existing := t.matrix.Value(i, j); existing != t.matrix.NullValue() {
		if int(existing) == r.Index {
			return nil
		}
		tracer().Errorf("conflict at [%s, %s]: rules %d and %d", r.LHS, a, existing, r.Index)
		return &ConflictError{
			NonTerminal: r.LHS,
			Terminal:    a,
			First:       int(existing),
			Second:      r.Index,
		}
	}
	tracer().Debugf("M[%s, %s] = %d", r.LHS, a, r.Index)
	t.matrix.Set(i, j, int32(r.Index))
	return nil
}

// Grammar returns the grammar this table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Analysis returns the FIRST/FOLLOW sets the table has been built from.
func (t *Table) Analysis() *SetAnalysis {
	return t.ga
}

// Lookup returns the rule for non-terminal A with lookahead a.
func (t *Table) Lookup(A, a string) (*Rule, bool) {
	i, ok := t.rows[A]
	if !ok {
		return nil, false
	}
	j, ok := t.cols[a]
	if !ok {
		return nil, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// HasRow is true if A is a non-terminal known to the table.
func (t *Table) HasRow(A string) bool {
	_, ok := t.rows[A]
	return ok
}

// Expected returns the lookaheads with a table entry for non-terminal A, in
// column order. If A has no row, Expected returns nil.
func (t *Table) Expected(A string) []string {
	i, ok := t.rows[A]
	if !ok {
		return nil
	}
	expected := []string{}
	t.matrix.Row(i, func(j int, _ int32) {
		expected = append(expected, t.colSyms[j])
	})
	return expected
}

// Lookaheads returns the column headers of the table: all terminals in
// sorted order, followed by the end marker.
func (t *Table) Lookaheads() []string {
	return append([]string(nil), t.colSyms...)
}

// NonTerminals returns the row headers of the table.
func (t *Table) NonTerminals() []string {
	return append([]string(nil), t.rowSyms...)
}

// Size returns the number of non-empty cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Each calls f for every non-empty cell, row by row.
func (t *Table) Each(f func(A, a string, r *Rule)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(t.rowSyms[i], t.colSyms[j], t.g.Rule(int(v)))
	})
}

// WriteTo writes the non-empty cells of the table to w, one line per cell.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	t.Each(func(A, a string, r *Rule) {
		fmt.Fprintf(&b, "M[%s, %s] = %s\n", A, a, r)
	})
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// --- Derivations -----------------------------------------------------------

// Application records the expansion of a non-terminal by a rule during a
// parse. Step numbers start at 1 and follow the order of a leftmost derivation.
type Application struct {
	Step int
	Rule *Rule
}

func (app Application) String() string {
	return app.Rule.String()
}
