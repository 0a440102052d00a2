/*
Package boar is the LL(1) front end of the Boar compiler.

It loads a context-free grammar from a BNF text file, computes FIRST and
FOLLOW sets, builds a predictive parsing table and drives a table-based
parser over a stream of terminal symbols. The derivation found by the
parser is finally turned into a father-sibling parse tree. Package structure
is as follows:

■ ll1: Package ll1 implements the grammar model, the grammar loader and the
construction of FIRST/FOLLOW sets and LL(1) parsing tables. Sub-packages
contain the predictive parser (ll1/predictive) and the parse tree builder
(ll1/fstree).

■ scanner: Package scanner defines the tokenizer interface used by the
pipeline, together with an adapter for lexmachine.

■ boarlang: Package boarlang defines the lexical classes of the Boar language
and ships a Boar grammar in LL(1) form.

■ pif: Package pif holds the program internal form of scanned source code
and the symbol table for identifiers and constants.

■ pipeline: Package pipeline glues lexer, parser and tree builder together.

■ cmd/boarll1: A command line tool and REPL on top of package pipeline.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boar
