package lexmach

import (
	"testing"

	"github.com/npillmayer/boar/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"if iffy",
	`x="mystring" // commented `,
	"1,22,333",
	"a ~ b",
}

var tokenCounts = []int{1, 3, 2, 3, 3, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		var errs []error
		sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
		count := 0
		for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if input == "a ~ b" && len(errs) != 1 {
			t.Errorf("Expected unmatched input to be reported once, have %d errors", len(errs))
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestKeywordsBeforeIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("if iffy\n  x")
	if err != nil {
		t.Fatal(err)
	}
	tokens := scanner.ReadAll(sc)
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(tokens))
	}
	if tokens[0].TokType() != 20 {
		t.Errorf("expected 'if' to be scanned as a keyword, is %d", tokens[0].TokType())
	}
	if tokens[1].TokType() != 2 || tokens[1].Lexeme() != "iffy" {
		t.Errorf("expected 'iffy' to be scanned as an identifier, is %d", tokens[1].TokType())
	}
	if span := tokens[1].Span(); span.From() != 3 || span.To() != 7 {
		t.Errorf("expected span (3…7) for 'iffy', is %v", span)
	}
	if pos := tokens[2].Pos(); pos.Line != 2 {
		t.Errorf("expected 'x' on line 2, is %v", pos)
	}
}

func makeAdapter(t *testing.T) *LMAdapter {
	tokenIds := map[string]int{
		"ID":     2,
		"NUM":    3,
		"STRING": 4,
		"if":     20,
		"+":      30,
		"=":      31,
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, []string{"+", "="}, []string{"if"}, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}
