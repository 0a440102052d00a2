/*
Package ll1 implements the prerequisites for LL(1) parsing: a grammar model,
a loader for grammars in BNF notation, FIRST/FOLLOW set computation and the
construction of predictive parsing tables.

Grammar Files

Grammars are read from text files, one non-terminal definition per line:

    # Boar declarations
    <decl>      ::= <type> IDENTIFIER <decl_init> ";"
    <decl_init> ::= "<-" <expr> | ε
    <type>      ::= "numa" | "reala"

Non-terminals are written in angle brackets, literal terminals in double quotes.
Bare words (IDENTIFIER above) are terminals, too. Alternatives are separated
by '|', an empty alternative (or a lone ε) denotes an epsilon-production.
Lines starting with '//' or '#' are comments. The left-hand side of the first
rule is the start symbol of the grammar.

    g, err := ll1.LoadFromFile("boar.bnf")

Rules are numbered from 1 in the order they appear in the file. The rule
number is the identity of a rule for parsing tables and parser output.

Static Grammar Analysis

After loading, the grammar is subjected to an analysis, which computes FIRST
and FOLLOW sets for all non-terminals.

    ga := ll1.Analysis(g)
    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
    }

Parser Tables

From the analysis a predictive parsing table is derived. If any cell of
the table would receive more than one rule, the grammar is not LL(1) and
table construction fails with a *ConflictError.

    table, err := ll1.BuildTable(ga)
    if errors.Is(err, ll1.ErrNotLL1) { … }

Grammars, analysis results and tables are immutable once constructed and may
be shared between goroutines. Package predictive implements a parser driven by
a table, package fstree turns the parser's derivation into a parse tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("boar.ll1")
}
