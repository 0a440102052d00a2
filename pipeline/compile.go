package pipeline

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boar"
	"github.com/npillmayer/boar/boarlang"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/ll1/fstree"
	"github.com/npillmayer/boar/pif"
	"github.com/npillmayer/boar/scanner"
	"github.com/timtadh/lexmachine/machines"
)

// ErrUnsupportedToken is the cause of every *TokenError.
var ErrUnsupportedToken = errors.New("unsupported token")

// TokenError reports a token which cannot be mapped to a terminal.
type TokenError struct {
	Pos    boar.Position
	Lexeme string
	Class  string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("Line %d, Col %d: %v '%s' (%s)", e.Pos.Line, e.Pos.Column,
		ErrUnsupportedToken, e.Lexeme, e.Class)
}

func (e *TokenError) Unwrap() error {
	return ErrUnsupportedToken
}

// Output collects the results of a compilation.
type Output struct {
	PIF          []pif.Entry       // tokens in input order
	Symbols      *pif.SymbolTable  // identifiers and constants
	Terminals    []string          // terminals the tokens have been mapped to
	Applications []ll1.Application // derivation found by the parser
	Productions  []string          // one line per application
	Errors       []string          // lexical, syntax and internal errors
	Tree         *fstree.Tree      // parse tree, nil if there were errors
	form         *pif.Form
}

// Succeeded is true if no errors have been reported.
func (out *Output) Succeeded() bool {
	return len(out.Errors) == 0
}

// PIFLines renders the program internal form, one line per token.
func (out *Output) PIFLines() []string {
	if out.form == nil {
		return nil
	}
	return out.form.Lines()
}

func (out *Output) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("%s", msg)
	out.Errors = append(out.Errors, msg)
}

// Terminal maps a Boar token to a terminal of the grammar: identifiers and
// literals map to their class name, keywords and operators to their lexeme.
// Other tokens result in a *TokenError.
func Terminal(token boar.Token) (string, error) {
	switch t := token.TokType(); {
	case boarlang.IsClass(t):
		return boarlang.ClassName(t), nil
	case boarlang.IsFixed(t):
		return token.Lexeme(), nil
	}
	return "", &TokenError{
		Pos:    token.Pos(),
		Lexeme: token.Lexeme(),
		Class:  boarlang.ClassName(token.TokType()),
	}
}

// Compile tokenizes source, parses it and builds the parse tree.
//
// Compile never fails as such; problems are reported in Output.Errors.
// The parser runs only if tokenizing has been free of errors, and the tree
// is built only if parsing succeeded.
func (e *Engine) Compile(source string) *Output {
	out := &Output{}
	tokens := e.tokenize(source, out)
	form := pif.New()
	for _, token := range tokens {
		class := boarlang.ClassName(token.TokType())
		out.PIF = append(out.PIF, form.Append(token, class, symbolKind(token.TokType())))
		term, err := Terminal(token)
		if err != nil {
			out.errorf("%v", err)
			continue
		}
		out.Terminals = append(out.Terminals, term)
	}
	out.form = form
	out.Symbols = form.Symbols()
	if !out.Succeeded() {
		tracer().Infof("%d lexical errors, skipping parser", len(out.Errors))
		return out
	}
	e.parse(out, func(pos int) string {
		if pos < len(tokens) {
			p := tokens[pos].Pos()
			return fmt.Sprintf("Line %d, Col %d: ", p.Line, p.Column)
		}
		return "At end of input: "
	})
	return out
}

// ParseTerminals parses a sequence of terminals directly, bypassing the
// lexer, and builds the parse tree.
func (e *Engine) ParseTerminals(terminals []string) *Output {
	out := &Output{Terminals: terminals}
	e.parse(out, func(int) string { return "" })
	return out
}

func (e *Engine) parse(out *Output, where func(int) string) {
	derivation, err := e.parser.Parse(out.Terminals)
	out.Applications = derivation
	for _, app := range derivation {
		out.Productions = append(out.Productions, app.String())
	}
	if err != nil {
		var perr *ll1.ParseError
		if errors.As(err, &perr) {
			out.errorf("%s%v", where(perr.Position), err)
		} else {
			out.errorf("%v", err)
		}
		return
	}
	tree, err := fstree.Build(e.G, derivation)
	if err != nil {
		out.errorf("internal error: %v", err)
		return
	}
	out.Tree = tree
}

func (e *Engine) tokenize(source string, out *Output) []boar.Token {
	sc, err := e.lexer.Scanner(source)
	if err != nil {
		out.errorf("%v", err)
		return nil
	}
	sc.SetErrorHandler(func(err error) {
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			text := ui.Text
			if ui.StartTC <= ui.FailTC && ui.FailTC <= len(text) {
				text = text[ui.StartTC:ui.FailTC]
			}
			out.errorf("Line %d, Col %d: token recognition error at: '%s'",
				ui.StartLine, ui.StartColumn, text)
			return
		}
		out.errorf("%v", err)
	})
	return scanner.ReadAll(sc)
}

func symbolKind(t boar.TokType) pif.Kind {
	switch t {
	case boarlang.Identifier:
		return pif.IdentifierKind
	case boarlang.NumLiteral, boarlang.RealLiteral, boarlang.TextLiteral, boarlang.FlagLiteral:
		return pif.ConstantKind
	}
	return pif.Undefined
}
