package ll1

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// Epsilon is the marker for an empty right-hand side. It is neither a
// terminal nor a non-terminal.
const Epsilon = "ε"

// EndMarker is the pseudo-terminal denoting the end of input. It occurs in
// FOLLOW sets and in parsing tables, but never in grammar rules.
const EndMarker = "$"

// --- Rules -----------------------------------------------------------------

// Rule is a production rule of a grammar. Rules are numbered from 1 in the
// order they appear in the grammar source; the number is unique across the
// whole grammar.
//
// Rules are immutable once loaded.
type Rule struct {
	Index int    // 1-based serial number of this rule
	LHS   string // non-terminal on the left-hand side
	Line  int    // source line this rule has been defined on, 0 if unknown
	rhs   []string
}

// RHS returns a copy of the right-hand side symbols of a rule. An
// epsilon-rule has a right-hand side of [ε].
func (r *Rule) RHS() []string {
	return append([]string(nil), r.rhs...)
}

// Len returns the number of right-hand side symbols, counting ε.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Symbol returns the i-th right-hand side symbol.
func (r *Rule) Symbol(i int) string {
	return r.rhs[i]
}

// IsEpsilon is true for rules of the form A ::= ε.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0] == Epsilon
}

// String renders a rule as
//
//     3. <decl_init> ::= <- expr
//
// Epsilon-rules are shown with ε as right-hand side.
func (r *Rule) String() string {
	rhs := Epsilon
	if len(r.rhs) > 0 {
		rhs = strings.Join(r.rhs, " ")
	}
	return fmt.Sprintf("%d. <%s> ::= %s", r.Index, r.LHS, rhs)
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar, usually loaded from a BNF source
// with LoadFromFile. A grammar owns its rules, the start symbol and the
// partition of its symbols into terminals and non-terminals.
//
// Every non-terminal occuring on a right-hand side should be defined by at
// least one rule. This is not enforced while loading (use Verify), but an
// undefined non-terminal will result in parse errors later on.
type Grammar struct {
	name         string
	start        string
	rules        []*Rule
	byLHS        map[string][]*Rule
	nonterminals map[string]struct{}
	terminals    map[string]struct{}
	epsilonLits  []int
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		name:         name,
		byLHS:        make(map[string][]*Rule),
		nonterminals: make(map[string]struct{}),
		terminals:    make(map[string]struct{}),
	}
}

// Name returns the name of the grammar, usually the path it has been loaded from.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Rules returns all rules of the grammar, ordered by rule number.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with a given (1-based) number, or nil.
func (g *Grammar) Rule(index int) *Rule {
	if index < 1 || index > len(g.rules) {
		return nil
	}
	return g.rules[index-1]
}

// RulesFor returns the rules for non-terminal A, in source order.
// For symbols without rules it returns an empty slice.
func (g *Grammar) RulesFor(A string) []*Rule {
	return append([]*Rule(nil), g.byLHS[A]...)
}

// NonTerminals returns all non-terminals, sorted by name. This includes
// non-terminals which are referenced but never defined.
func (g *Grammar) NonTerminals() []string {
	return sortedKeys(g.nonterminals)
}

// Terminals returns all terminals, sorted by name.
func (g *Grammar) Terminals() []string {
	return sortedKeys(g.terminals)
}

// IsNonTerminal checks if a symbol is a non-terminal of g.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.nonterminals[sym]
	return ok
}

// IsTerminal checks if a symbol is a terminal of g. ε is not a terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	_, ok := g.terminals[sym]
	return ok
}

// IsDefined is true if non-terminal A has at least one rule.
func (g *Grammar) IsDefined(A string) bool {
	return len(g.byLHS[A]) > 0
}

// EpsilonLiterals lists the numbers of rules which contain an explicit ε
// together with other symbols. Grammar sources cannot use ε as a real
// terminal; rules listed here are candidates for a misunderstanding.
func (g *Grammar) EpsilonLiterals() []int {
	return append([]int(nil), g.epsilonLits...)
}

// Display returns the display form of a symbol: non-terminals in angle
// brackets, terminals as they are.
func (g *Grammar) Display(sym string) string {
	if g.IsNonTerminal(sym) {
		return "<" + sym + ">"
	}
	return sym
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start symbol <%s> ---------", g.name, g.start)
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("-------------------------------------------")
}

// Fingerprint returns a structural hash of the grammar. Two grammars with the
// same start symbol and the same rules in the same order have the same
// fingerprint, regardless of their names.
func (g *Grammar) Fingerprint() (string, error) {
	fp := grammarPrint{Start: g.start}
	for _, r := range g.rules {
		fp.Rules = append(fp.Rules, rulePrint{LHS: r.LHS, RHS: r.rhs})
	}
	return structhash.Hash(fp, 1)
}

// grammarPrint is the hashable shape of a grammar. structhash only
// sees exported fields.
type grammarPrint struct {
	Start string
	Rules []rulePrint
}

type rulePrint struct {
	LHS string
	RHS []string
}

// --- Helpers ---------------------------------------------------------------

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
