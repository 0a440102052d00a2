package pif

import (
	"fmt"
)

// Symbol table for identifiers and constants of a program. Every distinct
// name gets a position in the table, and tokens in the program internal form
// refer to their symbol by this position.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with parser
// generators and grammars: Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used for
// the names a program uses.
//
type Tag struct {
	name  string
	Index int    // position within the symbol table, starting at 0
	Kind  Kind   // identifier or constant
	Class string // lexical class of the first occurence
}

// Kind discriminates tags.
type Kind int8

// Kinds of tags.
const (
	Undefined Kind = iota
	IdentifierKind
	ConstantKind
)

func (k Kind) String() string {
	switch k {
	case IdentifierKind:
		return "identifier"
	case ConstantKind:
		return "constant"
	}
	return "undefined"
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'[%d]:%s>", s.Name(), s.Index, s.Kind)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics). Tags
// are numbered in the order they are defined.
type SymbolTable struct {
	table map[string]*Tag
	order []*Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		table: make(map[string]*Tag),
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.table[tagname]
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag has already been present.
// Empty tag names are not allowed.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string, kind Kind) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	return t.DefineTag(tagname, kind), false
}

// DefineTag creates a new tag and stores it into the symbol table. If a tag
// of this name already exists, it is returned unchanged, keeping its index.
// The tag's name may not be empty.
//
func (t *SymbolTable) DefineTag(tagname string, kind Kind) *Tag {
	if len(tagname) == 0 {
		return nil
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag
	}
	tag := &Tag{name: tagname, Index: len(t.order), Kind: kind}
	t.table[tagname] = tag
	t.order = append(t.order, tag)
	return tag
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.order)
}

// Tag returns the tag at position index, or nil.
func (t *SymbolTable) Tag(index int) *Tag {
	if index < 0 || index >= len(t.order) {
		return nil
	}
	return t.order[index]
}

// Each iterates over each tag in the table in order of definition,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, tag := range t.order {
		mapper(tag.name, tag)
	}
}
