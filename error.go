package docmark

import (
	"errors"
	"fmt"

	"github.com/docmark/docmark/lexer"
)

// The markup has no syntax errors. Parsing fails only when a resource limit is exceeded or the
// input cannot be read.
var (
	// ErrSubstitutionLimit is returned when variable substitution does not settle within the
	// configured number of passes or grows a line beyond the configured size, as happens with
	// cyclic definitions.
	ErrSubstitutionLimit = errors.New("variable substitution limit exceeded")
	// ErrNestingTooDeep is returned when blocks nest deeper than the configured limit.
	ErrNestingTooDeep = errors.New("blocks nested too deeply")
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

type parseError struct {
	Msg string
	Pos lexer.Position
	Err error
}

func (p *parseError) Message() string          { return p.Msg }
func (p *parseError) Position() lexer.Position { return p.Pos }
func (p *parseError) Unwrap() error            { return p.Err }

func (p *parseError) Error() string {
	return fmt.Sprintf("%s: %s", p.Pos, p.Msg)
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is a lexer.Error or docmark.Error it will be returned unmodified.
func AnnotateError(pos lexer.Position, err error) error {
	if perr, ok := err.(Error); ok {
		return perr
	}
	if lerr, ok := err.(*lexer.Error); ok {
		return lerr
	}
	return &parseError{Msg: err.Error(), Pos: pos, Err: err}
}

// Errorf creates a new Error at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// wrapf creates an Error at the given position that matches err with errors.Is.
func wrapf(pos lexer.Position, err error, format string, args ...interface{}) error {
	return &parseError{Msg: err.Error() + ": " + fmt.Sprintf(format, args...), Pos: pos, Err: err}
}
