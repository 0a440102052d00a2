/*
Package predictive provides a table-driven LL(1) parser. Clients have to use
package ll1 to load a grammar and to prepare its parsing table. The parser
utilizes the table to create a leftmost derivation for a given sequence of
terminals.

The parser does not build a tree. It returns the sequence of rules it has
applied, in the order of a leftmost derivation, and package fstree may turn
this sequence into a parse tree.

Usage

	g, err := ll1.LoadFromFile("expr.bnf")
	table, err := ll1.NewTable(g)        // fails for non-LL(1) grammars
	p := predictive.NewParser(table)
	derivation, err := p.Parse([]string{"id", "+", "id"})

Parsing stops at the first error; there is no error recovery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("boar.ll1")
}

// Parser is an LL(1) parser. Create and initialize one with predictive.NewParser(...).
// A parser holds no state between calls to Parse and may be used concurrently.
type Parser struct {
	G     *ll1.Grammar
	table *ll1.Table
}

// NewParser creates a predictive parser for a table.
func NewParser(table *ll1.Table) *Parser {
	return &Parser{G: table.Grammar(), table: table}
}

// Table returns the parsing table the parser is driven by.
func (p *Parser) Table() *ll1.Table {
	return p.table
}

// Parse checks input, a sequence of terminals of the grammar, and returns the
// rules applied during a leftmost derivation of the input from the start symbol.
//
// If input is not in the language of the grammar, Parse returns a *ll1.ParseError
// for the first problem found, together with the rules applied so far.
func (p *Parser) Parse(input []string) ([]ll1.Application, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.table == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return nil, fmt.Errorf("LL(1)-parser not initialized")
	}
	tracer().Infof("parsing %d tokens: %s", len(input), strings.Join(input, " "))
	stack := arraystack.New()
	stack.Push(ll1.EndMarker)
	stack.Push(p.G.Start())
	var derivation []ll1.Application
	pos := 0
	lookahead := func() string {
		if pos < len(input) {
			return input[pos]
		}
		return ll1.EndMarker
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		top := v.(string)
		la := lookahead()
		tracer().Debugf("top = %s, lookahead = %s", p.G.Display(top), la)
		switch {
		case top == ll1.EndMarker:
			if pos < len(input) {
				return derivation, p.error(ll1.ErrTrailingInput, pos, top, la, nil)
			}
			if !stack.Empty() {
				return derivation, p.error(ll1.ErrIncompleteParse, pos, top, la, nil)
			}
			tracer().Infof("accepted input after %d steps", len(derivation))
			return derivation, nil
		case p.G.IsNonTerminal(top):
			rule, ok := p.table.Lookup(top, la)
			if !ok {
				return derivation, p.error(ll1.ErrNoTableEntry, pos, top, la, p.table.Expected(top))
			}
			derivation = append(derivation, ll1.Application{Step: len(derivation) + 1, Rule: rule})
			tracer().Debugf("expand %v", rule)
			for i := rule.Len() - 1; i >= 0; i-- {
				if sym := rule.Symbol(i); sym != ll1.Epsilon {
					stack.Push(sym)
				}
			}
		case top == la:
			tracer().Debugf("match %s", la)
			pos++
		default:
			return derivation, p.error(ll1.ErrTokenMismatch, pos, top, la, []string{top})
		}
	}
	return derivation, p.error(ll1.ErrStackExhausted, pos, "", lookahead(), nil)
}

func (p *Parser) error(kind error, pos int, top, la string, expected []string) error {
	err := &ll1.ParseError{
		Kind:      kind,
		Position:  pos,
		Top:       top,
		Lookahead: la,
		Expected:  expected,
	}
	tracer().Errorf("%v", err)
	return err
}
