package ll1

import (
	"fmt"
	"io"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Verify checks a grammar for non-terminals which are referenced but never
// defined, and for non-terminals which cannot be reached from the start
// symbol. Loading a grammar does not check for these, as a grammar with
// undefined non-terminals is still usable for inputs which never need them.
//
// Verification is done by package golang.org/x/exp/ebnf, therefore messages
// refer to non-terminals by their EBNF names (see WriteEBNF).
func (g *Grammar) Verify() error {
	eg, names := g.toEBNF()
	if err := ebnf.Verify(eg, names[g.start]); err != nil {
		return fmt.Errorf("grammar %s does not verify: %w", g.name, err)
	}
	return nil
}

// WriteEBNF writes the grammar in the EBNF notation used by the Go language
// specification. EBNF requires non-terminal names to start with an upper case
// letter, so names are capitalized. Epsilon alternatives are written as "".
func (g *Grammar) WriteEBNF(w io.Writer) error {
	eg, names := g.toEBNF()
	for _, A := range g.definitionOrder() {
		p := eg[names[A]]
		if _, err := fmt.Fprintf(w, "%s = ", p.Name.String); err != nil {
			return err
		}
		if err := writeEBNFExpression(w, p.Expr); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " .\n"); err != nil {
			return err
		}
	}
	return nil
}

// toEBNF converts g into an ebnf.Grammar. The second return value maps
// non-terminals to their EBNF names.
func (g *Grammar) toEBNF() (ebnf.Grammar, map[string]string) {
	names := make(map[string]string)
	used := make(map[string]bool)
	for _, A := range g.NonTerminals() {
		name := ebnfName(A)
		for used[name] {
			name += "_"
		}
		used[name] = true
		names[A] = name
	}
	eg := make(ebnf.Grammar)
	for _, A := range g.definitionOrder() {
		rules := g.byLHS[A]
		pos := scanner.Position{Filename: g.name, Line: rules[0].Line, Column: 1}
		alts := make(ebnf.Alternative, 0, len(rules))
		for _, r := range rules {
			seq := make(ebnf.Sequence, 0, len(r.rhs))
			for _, sym := range r.rhs {
				switch {
				case sym == Epsilon:
					seq = append(seq, &ebnf.Token{StringPos: pos, String: ""})
				case g.IsNonTerminal(sym):
					seq = append(seq, &ebnf.Name{StringPos: pos, String: names[sym]})
				default:
					seq = append(seq, &ebnf.Token{StringPos: pos, String: sym})
				}
			}
			alts = append(alts, seq)
		}
		var expr ebnf.Expression = alts
		if len(alts) == 1 {
			expr = alts[0]
		}
		eg[names[A]] = &ebnf.Production{
			Name: &ebnf.Name{StringPos: pos, String: names[A]},
			Expr: expr,
		}
	}
	return eg, names
}

// definitionOrder lists the defined non-terminals in order of their first rule.
func (g *Grammar) definitionOrder() []string {
	var order []string
	seen := make(map[string]bool)
	for _, r := range g.rules {
		if !seen[r.LHS] {
			seen[r.LHS] = true
			order = append(order, r.LHS)
		}
	}
	return order
}

// ebnfName makes a non-terminal name start with an upper case letter, as
// lower case names denote lexical productions in EBNF.
func ebnfName(A string) string {
	r, size := utf8.DecodeRuneInString(A)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return "N" + A
	}
	return string(unicode.ToUpper(r)) + A[size:]
}

func writeEBNFExpression(w io.Writer, e ebnf.Expression) (err error) {
	switch x := e.(type) {
	case ebnf.Sequence:
		for i, v := range x {
			if i != 0 {
				if _, err = io.WriteString(w, " "); err != nil {
					return
				}
			}
			if err = writeEBNFExpression(w, v); err != nil {
				return
			}
		}
	case ebnf.Alternative:
		for i, v := range x {
			if i != 0 {
				if _, err = io.WriteString(w, " | "); err != nil {
					return
				}
			}
			if err = writeEBNFExpression(w, v); err != nil {
				return
			}
		}
	case *ebnf.Name:
		_, err = io.WriteString(w, x.String)
	case *ebnf.Token:
		_, err = fmt.Fprintf(w, "%q", x.String)
	case nil:
		// empty
	default:
		err = fmt.Errorf("unexpected EBNF expression %T", x)
	}
	return
}
