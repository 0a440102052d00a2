package pipeline

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const program = `numa count <- 3;
texta greeting <- "hello";
while (count > 0) {
	show(greeting);
	count <- count - 1;
}
if (count == 0) { show("done"); } else { }
`

func TestMockPIF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	engine := boarEngine(t)
	out := engine.ParseTerminals(strings.Fields("numa IDENTIFIER <- NUM_LITERAL ;"))
	if !out.Succeeded() {
		t.Fatalf("expected mock PIF to parse, have %v", out.Errors)
	}
	if len(out.Productions) != 12 {
		t.Errorf("expected 12 productions, have %d", len(out.Productions))
	}
	if out.Productions[0] != "1. <program> ::= stmt_list" {
		t.Errorf("unexpected first production %q", out.Productions[0])
	}
	if out.Tree == nil || out.Tree.Len() != 17 {
		t.Fatalf("expected parse tree with 17 nodes, have %v", out.Tree)
	}
	if out.Tree.Root().Info != "<program>" {
		t.Errorf("expected tree root <program>, is %s", out.Tree.Root().Info)
	}
	if out.PIFLines() != nil {
		t.Errorf("terminals parsed directly have no program internal form")
	}
}

func TestCompileProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	engine := boarEngine(t)
	out := engine.Compile(program)
	if !out.Succeeded() {
		t.Fatalf("expected program to compile, have %v", out.Errors)
	}
	if out.Tree == nil {
		t.Fatalf("expected a parse tree")
	}
	lines := out.PIFLines()
	if lines[0] != "[NUMA]: 'numa'" || lines[1] != "[IDENTIFIER]: 'count'" {
		t.Errorf("unexpected PIF start %v", lines[:2])
	}
	if out.Symbols.ResolveTag("count") == nil || out.Symbols.ResolveTag(`"hello"`) == nil {
		t.Errorf("expected identifiers and constants in symbol table")
	}
	if len(out.Terminals) != len(out.PIF) {
		t.Errorf("expected one terminal per token, have %d for %d", len(out.Terminals), len(out.PIF))
	}
}

func TestCompileEmptySource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	out := boarEngine(t).Compile("// nothing to see here\n")
	if !out.Succeeded() || out.Tree == nil || out.Tree.Len() != 2 {
		t.Errorf("expected empty program to parse to <program> <stmt_list>, have %v", out.Errors)
	}
}

func TestUnsupportedTokenSkipsParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	out := boarEngine(t).Compile("numa x <- 1 # 2;")
	if len(out.Errors) != 1 {
		t.Fatalf("expected 1 error, have %v", out.Errors)
	}
	if !strings.Contains(out.Errors[0], "unsupported token '#' (ILLEGAL)") {
		t.Errorf("unexpected error message %q", out.Errors[0])
	}
	if out.Applications != nil || out.Tree != nil {
		t.Errorf("parser must not run after lexical errors")
	}
	if len(out.PIF) != 7 {
		t.Errorf("expected PIF to list all 7 tokens, have %d", len(out.PIF))
	}
}

func TestSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	out := boarEngine(t).Compile("numa x <- ;")
	if len(out.Errors) != 1 {
		t.Fatalf("expected 1 error, have %v", out.Errors)
	}
	msg := out.Errors[0]
	if !strings.HasPrefix(msg, "Line 1, Col ") || !strings.Contains(msg, "parsing failed at token 3") {
		t.Errorf("expected error to point to ';', have %q", msg)
	}
	if !strings.Contains(msg, "no table entry for (expr, ;)") {
		t.Errorf("unexpected error message %q", msg)
	}
	if out.Tree != nil {
		t.Errorf("no tree expected after a syntax error")
	}
	if len(out.Productions) == 0 {
		t.Errorf("expected productions applied before the error")
	}
	out = boarEngine(t).Compile("numa x <- 1")
	if len(out.Errors) != 1 || !strings.HasPrefix(out.Errors[0], "At end of input: ") {
		t.Errorf("expected error at end of input, have %v", out.Errors)
	}
}

func TestTerminalMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	engine := boarEngine(t)
	sc, err := engine.lexer.Scanner(`x <- "s" ~`)
	if err != nil {
		t.Fatal(err)
	}
	tokens := scanner.ReadAll(sc)
	expected := []string{"IDENTIFIER", "<-", "TEXT_LITERAL"}
	for i, exp := range expected {
		if term, err := Terminal(tokens[i]); err != nil || term != exp {
			t.Errorf("expected token %d to map to %s, have %s/%v", i, exp, term, err)
		}
	}
	_, err = Terminal(tokens[3])
	if !errors.Is(err, ErrUnsupportedToken) {
		t.Errorf("expected ~ to be unsupported, have %v", err)
	}
}

func TestEngineCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	e1 := boarEngine(t)
	e2 := boarEngine(t)
	if e1 != e2 {
		t.Errorf("expected engine to be cached")
	}
	if _, err := LoadEngine("../ll1/testdata/conflict.bnf"); !errors.Is(err, ll1.ErrNotLL1) {
		t.Errorf("expected conflict for non-LL(1) grammar, have %v", err)
	}
	if _, err := LoadEngine("../ll1/testdata/expr.bnf"); err != nil {
		t.Errorf("expected engine for expression grammar, have %v", err)
	}
}

func TestConcurrentCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.pipeline")
	defer teardown()
	//
	engine := boarEngine(t)
	want := engine.Compile(program)
	if !want.Succeeded() {
		t.Fatalf("expected program to compile, have %v", want.Errors)
	}
	sources := []string{program, "numa x <- ;", "numa x <- 1 # 2;", program}
	var wg sync.WaitGroup
	failures := make(chan string, len(sources)*4)
	for i := 0; i < len(sources)*4; i++ {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()
			out := engine.Compile(src)
			if out.Succeeded() != (src == program) {
				failures <- "unexpected result for " + src
			}
		}(sources[i%len(sources)])
	}
	wg.Wait()
	close(failures)
	for msg := range failures {
		t.Error(msg)
	}
	after := engine.Compile(program)
	if !after.Succeeded() || after.Tree.Len() != want.Tree.Len() ||
		strings.Join(after.Productions, "\n") != strings.Join(want.Productions, "\n") {
		t.Errorf("expected identical result after failed compilations")
	}
}

func boarEngine(t *testing.T) *Engine {
	engine, err := LoadEngine("")
	if err != nil {
		t.Fatal(err)
	}
	return engine
}
