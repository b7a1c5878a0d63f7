package lexer

import (
	"fmt"
)

// Position of a logical line in the input.
type Position struct {
	Filename string
	Line     int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Line: %d}", p.Filename, p.Line)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// A LineSource yields logical lines.
//
// Peek and Next return "" once the source is exhausted.
type LineSource interface {
	// Peek at the next logical line without consuming it.
	Peek() string
	// Next consumes and returns the next logical line.
	Next() string
	// Done returns true once no logical lines remain.
	Done() bool
	// Position of the next logical line.
	Position() Position
}
