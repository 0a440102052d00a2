package ll1

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LoadFromFile loads a grammar from a BNF source file.
//
// If the file does not exist, the returned error wraps os.ErrNotExist. Syntax
// errors in the grammar source are reported as *GrammarError.
func LoadFromFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grammar file not found: %w", err)
	}
	defer f.Close()
	return Load(path, f)
}

// Load reads a grammar in BNF notation from r. name is used for error
// messages and as the name of the grammar.
func Load(name string, r io.Reader) (*Grammar, error) {
	g := newGrammar(name)
	referenced := make(map[string]struct{})
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		if err := g.addDefinition(line, lineno, referenced); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("cannot read grammar %s: %w", name, err)
	}
	if g.start == "" {
		return nil, &GrammarError{Source: name, Err: ErrNoProductions}
	}
	for A := range referenced {
		g.nonterminals[A] = struct{}{}
	}
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if sym == Epsilon || g.IsNonTerminal(sym) {
				continue
			}
			g.terminals[sym] = struct{}{}
		}
	}
	tracer().Infof("loaded grammar %s: %d rules, %d non-terminals, %d terminals",
		name, len(g.rules), len(g.nonterminals), len(g.terminals))
	return g, nil
}

// addDefinition parses a line of the form
//
//     <LHS> ::= alt1 | alt2 | …
//
// and appends one rule per alternative.
func (g *Grammar) addDefinition(line string, lineno int, referenced map[string]struct{}) error {
	sep := strings.Index(line, "::=")
	if sep < 0 {
		return &GrammarError{Source: g.name, Line: lineno, Text: line, Err: ErrMissingSeparator}
	}
	lhs := normalizeNonTerminal(line[:sep])
	if lhs == "" {
		return &GrammarError{Source: g.name, Line: lineno, Text: line, Err: ErrEmptyLHS}
	}
	g.nonterminals[lhs] = struct{}{}
	if g.start == "" {
		g.start = lhs
	}
	for _, alt := range splitAlternatives(strings.TrimSpace(line[sep+3:])) {
		symbols, err := tokenizeSymbols(alt, referenced)
		if err != nil {
			return &GrammarError{Source: g.name, Line: lineno, Text: alt, Err: err}
		}
		if len(symbols) == 0 {
			symbols = append(symbols, Epsilon)
		}
		r := &Rule{Index: len(g.rules) + 1, LHS: lhs, Line: lineno, rhs: symbols}
		if len(symbols) > 1 && contains(symbols, Epsilon) {
			tracer().Errorf("%s:%d: rule %d mixes ε with other symbols; ε cannot be used as a terminal",
				g.name, lineno, r.Index)
			g.epsilonLits = append(g.epsilonLits, r.Index)
		}
		g.rules = append(g.rules, r)
		g.byLHS[lhs] = append(g.byLHS[lhs], r)
	}
	return nil
}

// normalizeNonTerminal strips surrounding angle brackets and whitespace.
func normalizeNonTerminal(sym string) string {
	sym = strings.TrimSpace(sym)
	if strings.HasPrefix(sym, "<") && strings.HasSuffix(sym, ">") && len(sym) >= 2 {
		sym = strings.TrimSpace(sym[1 : len(sym)-1])
	}
	return sym
}

// splitAlternatives splits a right-hand side at '|', except for bars within
// quoted literals. Every alternative is reported, empty ones included.
func splitAlternatives(rhs string) []string {
	var alts []string
	var b strings.Builder
	inQuote := false
	for _, ch := range rhs {
		switch {
		case ch == '"':
			inQuote = !inQuote
			b.WriteRune(ch)
		case ch == '|' && !inQuote:
			alts = append(alts, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(ch)
		}
	}
	return append(alts, strings.TrimSpace(b.String()))
}

// tokenizeSymbols splits an alternative into symbols. Quoted literals lose
// their quotes, non-terminal references lose their brackets and are recorded
// in referenced.
func tokenizeSymbols(alt string, referenced map[string]struct{}) ([]string, error) {
	var symbols []string
	i := 0
	for i < len(alt) {
		ch, size := utf8.DecodeRuneInString(alt[i:])
		switch {
		case unicode.IsSpace(ch):
			i += size
		case ch == '"':
			end := strings.IndexByte(alt[i+1:], '"')
			if end < 0 {
				return nil, ErrUnterminatedLiteral
			}
			symbols = append(symbols, alt[i+1:i+1+end])
			i += end + 2
		case ch == '<':
			end := strings.IndexByte(alt[i+1:], '>')
			if end < 0 {
				return nil, ErrUnterminatedNonTerminal
			}
			name := strings.TrimSpace(alt[i+1 : i+1+end])
			symbols = append(symbols, name)
			referenced[name] = struct{}{}
			i += end + 2
		default:
			end := strings.IndexFunc(alt[i:], unicode.IsSpace)
			if end < 0 {
				end = len(alt) - i
			}
			symbols = append(symbols, alt[i:i+end])
			i += end
		}
	}
	return symbols, nil
}

func contains(symbols []string, sym string) bool {
	for _, s := range symbols {
		if s == sym {
			return true
		}
	}
	return false
}
