/*
Command boarll1 is a command line tool for the Boar LL(1) front end.

It analyses grammars, prints FIRST/FOLLOW sets and parsing tables, parses
terminal sequences and compiles Boar source files into their program
internal form, derivation and parse tree. Subcommand repl starts an
interactive session.

	boarll1 check -g expr.bnf
	boarll1 table
	boarll1 parse --tokens "numa IDENTIFIER <- NUM_LITERAL ;"
	boarll1 compile program.boar

Without flag --grammar, the bundled Boar grammar is used.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.cli'
func tracer() tracing.Trace {
	return tracing.Select("boar.cli")
}
