package boar

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Token categories are defined by
// the lexer in use (see package boarlang for the categories of the Boar language).
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able to print
// out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and reflect
// lexical classes of a language.
//
// An example would be a token for a real literal:
//
//    TokType = REAL_LITERAL  // category of this kind of tokens
//    Lexeme  = "3.1416"      // lexeme as it appeared in the input stream
//    Span    = 67…73         // byte offsets within the input stream
//    Pos     = 4:12          // line and column where the token starts
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Pos() Position
}

// --- Positions and spans ---------------------------------------------------

// Position is a line/column pair, both starting at 1. The zero value means
// "position unknown".
type Position struct {
	Line, Column int
}

// IsValid is true for positions known to a scanner.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
