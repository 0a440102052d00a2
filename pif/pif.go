/*
Package pif implements the program internal form (PIF) of a tokenized program,
together with its symbol table.

The PIF lists the tokens of a program in input order. Each entry knows its
lexical class, its text and, for identifiers and constants, the position of
its name within the symbol table. Entries print as

	[IDENTIFIER]: 'count'

with carriage returns and line feeds in the text escaped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pif

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boar"
)

// NoSymbol is the symbol position of entries without a symbol table entry.
const NoSymbol = -1

// Entry is a token of the program internal form.
type Entry struct {
	Class  string // name of the lexical class
	Text   string // lexeme
	Pos    boar.Position
	Span   boar.Span
	Symbol int // position in the symbol table, or NoSymbol
}

var escaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

func (e Entry) String() string {
	return fmt.Sprintf("[%s]: '%s'", e.Class, escaper.Replace(e.Text))
}

// Form is the program internal form of a single program.
type Form struct {
	entries []Entry
	symbols *SymbolTable
}

// New creates an empty program internal form.
func New() *Form {
	return &Form{symbols: NewSymbolTable()}
}

// Append adds a token to the form. class is the token's class name. Tokens of
// kind IdentifierKind or ConstantKind are entered into the symbol table, tokens
// of kind Undefined are not.
func (f *Form) Append(token boar.Token, class string, kind Kind) Entry {
	e := Entry{
		Class:  class,
		Text:   token.Lexeme(),
		Pos:    token.Pos(),
		Span:   token.Span(),
		Symbol: NoSymbol,
	}
	if kind != Undefined {
		if tag, _ := f.symbols.ResolveOrDefineTag(e.Text, kind); tag != nil {
			if tag.Class == "" {
				tag.Class = class
			}
			e.Symbol = tag.Index
		}
	}
	f.entries = append(f.entries, e)
	return e
}

// Entries returns the entries of the form, in input order.
func (f *Form) Entries() []Entry {
	return append([]Entry(nil), f.entries...)
}

// Len returns the number of entries.
func (f *Form) Len() int {
	return len(f.entries)
}

// Symbols returns the symbol table of the form.
func (f *Form) Symbols() *SymbolTable {
	return f.symbols
}

// Lines renders every entry with Entry.String.
func (f *Form) Lines() []string {
	lines := make([]string, len(f.entries))
	for i, e := range f.entries {
		lines[i] = e.String()
	}
	return lines
}
