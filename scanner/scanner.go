/*
Package scanner defines an interface for scanners to be used with the Boar
front end.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/boar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("boar.scanner")
}

// EOF is the token type signalling the end of input.
const EOF boar.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() boar.Token
	SetErrorHandler(func(error))
}

// ReadAll reads tokens until EOF. The EOF token is not included.
func ReadAll(t Tokenizer) []boar.Token {
	var tokens []boar.Token
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		tokens = append(tokens, token)
	}
	tracer().Debugf("read %d tokens", len(tokens))
	return tokens
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   boar.TokType
	lexeme string
	Val    interface{}
	span   boar.Span
	pos    boar.Position
}

var _ boar.Token = DefaultToken{}

// MakeDefaultToken creates a token. pos is the line and column of the first
// character of the lexeme.
func MakeDefaultToken(typ boar.TokType, lexeme string, span boar.Span, pos boar.Position) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		pos:    pos,
	}
}

func (t DefaultToken) TokType() boar.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() boar.Span {
	return t.span
}

func (t DefaultToken) Pos() boar.Position {
	return t.pos
}
