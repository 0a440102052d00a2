package boarlang

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/boar"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/scanner"
	"github.com/npillmayer/boar/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Lexical classes of Boar tokens. Keywords and operators have token types
// above these.
const (
	Illegal boar.TokType = iota + 1
	Identifier
	NumLiteral
	RealLiteral
	TextLiteral
	FlagLiteral
)

var classNames = map[boar.TokType]string{
	Illegal:     "ILLEGAL",
	Identifier:  "IDENTIFIER",
	NumLiteral:  "NUM_LITERAL",
	RealLiteral: "REAL_LITERAL",
	TextLiteral: "TEXT_LITERAL",
	FlagLiteral: "FLAG_LITERAL",
}

type fixedToken struct {
	name   string // class name
	lexeme string
}

// The keyword tokens
var keywords = []fixedToken{
	{"NUMA", "numa"},
	{"REALA", "reala"},
	{"TEXTA", "texta"},
	{"FLAGA", "flaga"},
	{"SHOW", "show"},
	{"IF", "if"},
	{"ELSE", "else"},
	{"WHILE", "while"},
}

// The operator and punctuation tokens
var operators = []fixedToken{
	{"ASSIGN", "<-"},
	{"SEMI", ";"},
	{"LPAREN", "("},
	{"RPAREN", ")"},
	{"LBRACE", "{"},
	{"RBRACE", "}"},
	{"PLUS", "+"},
	{"MINUS", "-"},
	{"MUL", "*"},
	{"DIV", "/"},
	{"EQ", "=="},
	{"NEQ", "!="},
	{"LE", "<="},
	{"GE", ">="},
	{"LT", "<"},
	{"GT", ">"},
}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from class names and lexemes to token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		for typ, name := range classNames {
			tokenIds[name] = int(typ)
		}
		next := int(FlagLiteral) + 1
		for _, group := range [][]fixedToken{keywords, operators} {
			for _, tok := range group {
				tokenIds[tok.lexeme] = next
				classNames[boar.TokType(next)] = tok.name
				next++
			}
		}
	})
}

// Token returns the token type for a class name or for the lexeme of a
// keyword or operator.
func Token(t string) boar.TokType {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return boar.TokType(id)
}

// ClassName returns the symbolic name of a token type, e.g. IDENTIFIER
// or ASSIGN. It may be used as a boar.TokTypeStringer.
func ClassName(t boar.TokType) string {
	initTokens()
	if name, ok := classNames[t]; ok {
		return name
	}
	if t == scanner.EOF {
		return "EOF"
	}
	return fmt.Sprintf("%d", t)
}

var _ boar.TokTypeStringer = ClassName

// IsClass is true for token types the grammar refers to by class name,
// i.e. identifiers and literals.
func IsClass(t boar.TokType) bool {
	return t >= Identifier && t <= FlagLiteral
}

// IsFixed is true for keywords and operators, which the grammar refers to
// by lexeme.
func IsFixed(t boar.TokType) bool {
	return t > FlagLiteral && int(t) < int(FlagLiteral)+1+len(keywords)+len(operators)
}

// Keywords returns the lexemes of all Boar keywords.
func Keywords() []string {
	return lexemes(keywords)
}

// Operators returns the lexemes of all Boar operators and punctuation.
func Operators() []string {
	return lexemes(operators)
}

func lexemes(toks []fixedToken) []string {
	l := make([]string, len(toks))
	for i, tok := range toks {
		l[i] = tok.lexeme
	}
	return l
}

// Lexer creates a new lexmachine lexer for Boar.
func Lexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`\"[^"\n]*\"`), makeToken("TEXT_LITERAL"))
		lexer.Add([]byte(`[0-9]+\.[0-9]+`), makeToken("REAL_LITERAL"))
		lexer.Add([]byte(`[0-9]+`), makeToken("NUM_LITERAL"))
		lexer.Add([]byte(`true|false`), makeToken("FLAG_LITERAL"))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("IDENTIFIER"))
		lexer.Add([]byte(`.`), makeToken("ILLEGAL"))
	}
	adapter, err := lexmach.NewLMAdapter(init, Operators(), Keywords(), tokenIds)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("Boar lexer with %d keywords and %d operators", len(keywords), len(operators))
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

// --- Grammar ---------------------------------------------------------------

//go:embed boar.bnf
var grammarSource string

// GrammarSource returns the BNF source of the Boar grammar.
func GrammarSource() string {
	return grammarSource
}

// Grammar loads the Boar grammar.
func Grammar() (*ll1.Grammar, error) {
	return ll1.Load("boar.bnf", strings.NewReader(grammarSource))
}
