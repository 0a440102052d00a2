/*
Package pipeline glues the Boar lexer, the predictive parser and the parse
tree builder together.

An Engine holds everything which can be prepared once per grammar: the
grammar itself, its LL(1) table, a parser and a lexer. Engines are read-only
after construction and may be used by concurrent compilations.

	engine, err := pipeline.LoadEngine("")  // "" selects the bundled Boar grammar
	out := engine.Compile(source)
	if !out.Succeeded() {
		for _, msg := range out.Errors { … }
	}

Compilation is errors-first: if the lexer or the mapping of tokens to
terminals reports any problem, the parser is not run at all.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"sync"

	"github.com/npillmayer/boar/boarlang"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/ll1/predictive"
	"github.com/npillmayer/boar/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("boar.pipeline")
}

// Engine bundles a grammar with its parsing table, a parser and a lexer.
type Engine struct {
	G           *ll1.Grammar
	Table       *ll1.Table
	parser      *predictive.Parser
	lexer       *lexmach.LMAdapter
	fingerprint string
}

// NewEngine prepares an engine for grammar g. It fails if g is not LL(1).
//
// Source code is always tokenized with the Boar lexer; g has to use Boar's
// class names and lexemes as terminals.
func NewEngine(g *ll1.Grammar) (*Engine, error) {
	fp, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	table, err := ll1.NewTable(g)
	if err != nil {
		return nil, err
	}
	lexer, err := boarlang.Lexer()
	if err != nil {
		return nil, err
	}
	tracer().Infof("engine for grammar %s ready, %d table entries", g.Name(), table.Size())
	return &Engine{
		G:           g,
		Table:       table,
		parser:      predictive.NewParser(table),
		lexer:       lexer,
		fingerprint: fp,
	}, nil
}

// Fingerprint returns the fingerprint of the engine's grammar.
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}

// Parser returns the engine's parser.
func (e *Engine) Parser() *predictive.Parser {
	return e.parser
}

// --- Engine cache ----------------------------------------------------------

var engines = struct {
	sync.Mutex
	cache map[string]*Engine
}{cache: make(map[string]*Engine)}

// LoadEngine loads a grammar file and prepares an engine for it. An empty path
// selects the bundled Boar grammar.
//
// Engines are cached by grammar fingerprint. Loading the same grammar again,
// even from a different file, returns the engine prepared before.
func LoadEngine(path string) (*Engine, error) {
	var g *ll1.Grammar
	var err error
	if path == "" {
		g, err = boarlang.Grammar()
	} else {
		g, err = ll1.LoadFromFile(path)
	}
	if err != nil {
		return nil, err
	}
	return CachedEngine(g)
}

// CachedEngine returns the cached engine for a grammar with the same
// fingerprint as g, or prepares and caches a new one.
func CachedEngine(g *ll1.Grammar) (*Engine, error) {
	fp, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	engines.Lock()
	defer engines.Unlock()
	if e, ok := engines.cache[fp]; ok {
		tracer().Debugf("using cached engine for grammar %s", g.Name())
		return e, nil
	}
	e, err := NewEngine(g)
	if err != nil {
		return nil, err
	}
	engines.cache[fp] = e
	return e, nil
}
