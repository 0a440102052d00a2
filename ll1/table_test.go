package ll1

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFirstAndFollowSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/expr.bnf")
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	first := map[string]string{
		"E":  "{(, id}",
		"E'": "{+, ε}",
		"T":  "{(, id}",
		"T'": "{*, ε}",
		"F":  "{(, id}",
	}
	follow := map[string]string{
		"E":  "{$, )}",
		"E'": "{$, )}",
		"T":  "{$, ), +}",
		"T'": "{$, ), +}",
		"F":  "{$, ), *, +}",
	}
	for A, expected := range first {
		if s := ga.First(A).String(); s != expected {
			t.Errorf("expected FIRST(%s) = %s, is %s", A, expected, s)
		}
	}
	for A, expected := range follow {
		if s := ga.Follow(A).String(); s != expected {
			t.Errorf("expected FOLLOW(%s) = %s, is %s", A, expected, s)
		}
		if ga.Follow(A).Contains(Epsilon) {
			t.Errorf("FOLLOW(%s) must not contain ε", A)
		}
	}
	if !ga.IsNullable("T'") || ga.IsNullable("T") {
		t.Errorf("expected T' to be nullable and T not to be")
	}
	if s := ga.FirstOfSequence([]string{"T'", "E'"}).String(); s != "{*, +, ε}" {
		t.Errorf("expected FIRST(T' E') = {*, +, ε}, is %s", s)
	}
	if s := ga.FirstOfSequence(nil).String(); s != "{ε}" {
		t.Errorf("expected FIRST of empty sequence to be {ε}, is %s", s)
	}
}

func TestAnalysisIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/expr.bnf")
	if err != nil {
		t.Fatal(err)
	}
	ga1, ga2 := Analysis(g), Analysis(g)
	for _, A := range g.NonTerminals() {
		if !ga1.First(A).Equals(ga2.First(A)) || !ga1.Follow(A).Equals(ga2.Follow(A)) {
			t.Errorf("analysis of %s differs between runs", A)
		}
	}
}

func TestEpsilonOnlyNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/eps.bnf")
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	ga := table.Analysis()
	if s := ga.First("A").String(); s != "{ε}" {
		t.Errorf("expected FIRST(A) = {ε}, is %s", s)
	}
	if s := ga.Follow("A").String(); s != "{;}" {
		t.Errorf("expected FOLLOW(A) = {;}, is %s", s)
	}
	if r, ok := table.Lookup("A", ";"); !ok || r.Index != 2 {
		t.Errorf("expected M[A, ;] = rule 2, is %v", r)
	}
	if r, ok := table.Lookup("S", ";"); !ok || r.Index != 1 {
		t.Errorf("expected M[S, ;] = rule 1, is %v", r)
	}
	if table.Size() != 2 {
		t.Errorf("expected 2 table entries, have %d", table.Size())
	}
}

func TestExpressionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/expr.bnf")
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	if table.Size() != 13 {
		t.Errorf("expected 13 table entries, have %d", table.Size())
	}
	cells := []struct {
		A, a string
		rule int
	}{
		{"E", "id", 1}, {"E'", "+", 2}, {"E'", ")", 3}, {"E'", "$", 3},
		{"T", "(", 4}, {"T'", "*", 5}, {"T'", "+", 6}, {"F", "id", 8},
	}
	for _, c := range cells {
		if r, ok := table.Lookup(c.A, c.a); !ok || r.Index != c.rule {
			t.Errorf("expected M[%s, %s] = %d, is %v", c.A, c.a, c.rule, r)
		}
	}
	if _, ok := table.Lookup("F", "+"); ok {
		t.Errorf("expected M[F, +] to be empty")
	}
	if _, ok := table.Lookup("X", "+"); ok {
		t.Errorf("expected lookup of unknown non-terminal to fail")
	}
	if !table.HasRow("T'") || table.HasRow("X") || table.Expected("X") != nil {
		t.Errorf("expected rows for grammar non-terminals only")
	}
	if exp := strings.Join(table.Expected("E'"), " "); exp != ") + $" {
		t.Errorf("expected lookaheads ) + $ for E', have %s", exp)
	}
	if la := table.Lookaheads(); la[len(la)-1] != EndMarker {
		t.Errorf("expected end marker to be the last column, have %v", la)
	}
	var b strings.Builder
	if _, err := table.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "M[F, (] = 7. <F> ::= ( E )\n") {
		t.Errorf("unexpected table dump:\n%s", b.String())
	}
}

func TestTableCellsMatchSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/expr.bnf")
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	ga := table.Analysis()
	table.Each(func(A, a string, r *Rule) {
		first := ga.FirstOfSequence(r.RHS())
		if first.Contains(a) {
			return
		}
		if !first.Contains(Epsilon) || !ga.Follow(A).Contains(a) {
			t.Errorf("M[%s, %s] = %v is neither justified by FIRST nor by FOLLOW", A, a, r)
		}
	})
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	g, err := LoadFromFile("testdata/conflict.bnf")
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewTable(g)
	if !errors.Is(err, ErrNotLL1) {
		t.Fatalf("expected grammar not to be LL(1), have %v", err)
	}
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected a *ConflictError, have %T", err)
	}
	if conflict.NonTerminal != "S" || conflict.Terminal != "a" || conflict.First != 1 || conflict.Second != 2 {
		t.Errorf("unexpected conflict %+v", conflict)
	}
	expected := "grammar is not LL(1): conflict at [S, a] between productions 1 and 2"
	if err.Error() != expected {
		t.Errorf("expected message %q, have %q", expected, err.Error())
	}
}

func TestEpsilonConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.ll1")
	defer teardown()
	//
	// FOLLOW(A) contains "a", as does FIRST of A's first alternative
	g, err := Load("follow-conflict", strings.NewReader(`<S> ::= <A> "a"
<A> ::= "a" | ε`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewTable(g)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected a *ConflictError, have %v", err)
	}
	if conflict.NonTerminal != "A" || conflict.Terminal != "a" {
		t.Errorf("expected conflict at [A, a], have %+v", conflict)
	}
}
