package ll1

import (
	"errors"
	"fmt"
	"strings"
)

// Errors for loading grammars.
var (
	ErrMissingSeparator        = errors.New("invalid production (missing ::=)")
	ErrUnterminatedLiteral     = errors.New("unterminated literal")
	ErrUnterminatedNonTerminal = errors.New("unterminated non-terminal")
	ErrEmptyLHS                = errors.New("empty left-hand side")
	ErrNoProductions           = errors.New("grammar does not contain any productions")
)

// ErrNotLL1 is the cause of every *ConflictError.
var ErrNotLL1 = errors.New("grammar is not LL(1)")

// Kinds of parse errors, see ParseError.
var (
	ErrTrailingInput   = errors.New("unexpected trailing input")
	ErrTokenMismatch   = errors.New("token mismatch")
	ErrNoTableEntry    = errors.New("no table entry")
	ErrStackExhausted  = errors.New("parser stack exhausted")
	ErrIncompleteParse = errors.New("parsing stopped before consuming all tokens")
)

// Kinds of tree construction errors, see TreeError.
var (
	ErrEmptyDerivation       = errors.New("cannot build tree without applied productions")
	ErrRuleMismatch          = errors.New("production mismatch")
	ErrProductionsExhausted  = errors.New("production sequence ended before the tree could be fully expanded")
	ErrUnconsumedProductions = errors.New("not all production applications were consumed")
)

// GrammarError is returned for malformed grammar sources.
type GrammarError struct {
	Source string // name of the grammar source
	Line   int    // 1-based line number, 0 if not related to a line
	Text   string // offending text
	Err    error  // one of the ErrXXX load errors
}

func (e *GrammarError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%s:", e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:", e.Line)
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	b.WriteString(e.Err.Error())
	if e.Text != "" {
		fmt.Fprintf(&b, ": %s", e.Text)
	}
	return b.String()
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

// ConflictError reports two rules competing for the same cell of a parsing table.
type ConflictError struct {
	NonTerminal string
	Terminal    string
	First       int // rule already present in the cell
	Second      int // rule which tried to claim the cell
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: conflict at [%s, %s] between productions %d and %d",
		ErrNotLL1, e.NonTerminal, e.Terminal, e.First, e.Second)
}

func (e *ConflictError) Unwrap() error {
	return ErrNotLL1
}

// ParseError is returned by the predictive parser. Kind is one of the
// ErrXXX parse error values and may be tested for with errors.Is.
type ParseError struct {
	Kind      error
	Position  int      // index of the lookahead within the input
	Top       string   // symbol on top of the stack
	Lookahead string   // current input symbol
	Expected  []string // acceptable terminals, if known
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrTrailingInput:
		msg = fmt.Sprintf("unexpected trailing input '%s'", e.Lookahead)
	case ErrTokenMismatch:
		msg = fmt.Sprintf("expected '%s' but found '%s'", e.Top, e.Lookahead)
	case ErrNoTableEntry:
		expected := "no productions available"
		if len(e.Expected) > 0 {
			expected = fmt.Sprintf("expected one of [%s]", strings.Join(e.Expected, ", "))
		}
		msg = fmt.Sprintf("no table entry for (%s, %s); %s", e.Top, e.Lookahead, expected)
	default:
		msg = e.Kind.Error()
	}
	return fmt.Sprintf("parsing failed at token %d: %s", e.Position, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// IsInternal is true for errors signalling a broken parser invariant
// rather than malformed input.
func (e *ParseError) IsInternal() bool {
	return e.Kind == ErrIncompleteParse || e.Kind == ErrStackExhausted
}

// TreeError is returned if a sequence of rule applications does not fit the
// structure of the grammar. Tree errors are internal consistency failures:
// a derivation produced by the parser always fits.
type TreeError struct {
	Kind     error
	Step     int    // step of the offending application, if any
	Expected string // non-terminal waiting for expansion
	Found    string // left-hand side of the offending application
}

func (e *TreeError) Error() string {
	if e.Kind == ErrRuleMismatch {
		return fmt.Sprintf("tree construction failed at step %d: %v: expected to expand <%s> but found <%s>",
			e.Step, e.Kind, e.Expected, e.Found)
	}
	return fmt.Sprintf("tree construction failed: %v", e.Kind)
}

func (e *TreeError) Unwrap() error {
	return e.Kind
}
