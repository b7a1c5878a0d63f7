package docmark

import (
	"fmt"
	"io"
)

// Limits applied when no corresponding Option is given.
const (
	DefaultMaxSubstitutionPasses = 64
	DefaultMaxExpansion          = 1 << 20
	DefaultMaxDepth              = 256
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Define a variable ahead of any ":name: value" line in the document.
//
// Predefined variables are looked up in the order they were defined, before any definitions from
// the document itself.
func Define(name, value string) Option {
	return func(p *Parser) error {
		if !isVariableName(name) {
			return fmt.Errorf("invalid variable name %q", name)
		}
		p.defines = append(p.defines, binding{name: name, value: value})
		return nil
	}
}

// OverrideDefinitions makes a later definition of a variable shadow earlier ones.
//
// By default the first definition of a name wins and redefinitions are ignored.
func OverrideDefinitions() Option {
	return func(p *Parser) error {
		p.override = true
		return nil
	}
}

// MaxSubstitutionPasses limits how many times variable substitution rescans a line.
//
// Each pass expands one level of variables referencing other variables. Input that is still
// changing after n passes fails with ErrSubstitutionLimit.
func MaxSubstitutionPasses(n int) Option {
	return func(p *Parser) error {
		if n < 1 {
			return fmt.Errorf("substitution pass limit must be positive, not %d", n)
		}
		p.maxPasses = n
		return nil
	}
}

// MaxExpansion limits the size in bytes that variable substitution may grow a line to.
func MaxExpansion(n int) Option {
	return func(p *Parser) error {
		if n < 1 {
			return fmt.Errorf("expansion limit must be positive, not %d", n)
		}
		p.maxExpansion = n
		return nil
	}
}

// MaxDepth limits how deeply blocks may nest inside groups, lists and tables.
func MaxDepth(n int) Option {
	return func(p *Parser) error {
		if n < 1 {
			return fmt.Errorf("depth limit must be positive, not %d", n)
		}
		p.maxDepth = n
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}
