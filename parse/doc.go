// Package parse reads the textual structure-file grammar:
//
//	structure := '{' prop (',' prop)* '}'
//	prop      := symbol
//	           | symbol '(' arg (',' arg)* ')'
//	symbol, arg := bare-identifier | single-quoted | double-quoted
//
// Whitespace is insignificant and '#' begins a line comment. A file
// holds exactly two back-to-back structures, read by ReadPair.
//
// No parser-combinator or grammar-generator library appears anywhere in
// this module's retrieval corpus, so this package is a hand-written
// recursive-descent reader over a small hand-rolled lexer, in the same
// spirit the corpus uses for its own small textual formats.
package parse
