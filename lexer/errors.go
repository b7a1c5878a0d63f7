package lexer

import "fmt"

// Error represents a failure to read input.
type Error struct {
	Message string
	Pos     Position
	Err     error
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap returns the underlying read error, if any.
func (e *Error) Unwrap() error { return e.Err }
