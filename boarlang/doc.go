/*
Package boarlang defines the lexical structure of Boar, a small imperative
teaching language, and ships its grammar in LL(1) form.

A Boar program is a list of statements:

	numa count <- 3;
	texta greeting <- "hello";
	while (count > 0) {
		show(greeting);
		count <- count - 1;
	}

Tokens fall into three groups. Identifiers and literals are lexical classes,
and the grammar refers to them by class name (IDENTIFIER, NUM_LITERAL,
REAL_LITERAL, TEXT_LITERAL, FLAG_LITERAL). Keywords and operators are matched
by their lexeme. Any other character is scanned as a token of class ILLEGAL,
leaving it to clients to report it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boarlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.scanner'
func tracer() tracing.Trace {
	return tracing.Select("boar.scanner")
}
