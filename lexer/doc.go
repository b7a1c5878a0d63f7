// Package lexer turns raw doc-comment text into the logical lines consumed by the markup parser.
//
// A physical line ending in an unescaped backslash is joined with the line that follows it, with
// the backslash removed. Lines offers a single line of lookahead: Peek may be called any number of
// times before Next consumes the pending line. Once the input is exhausted both return an empty
// line forever.
package lexer
