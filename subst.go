package docmark

import (
	"strings"
)

type binding struct {
	name  string
	value string
}

// bindings is the ordered, append-only list of variables visible to substitution.
type bindings struct {
	list     []binding
	override bool
}

func (b *bindings) define(name, value string) {
	b.list = append(b.list, binding{name: name, value: value})
}

// lookup returns the first definition of name, or the last one if definitions override.
func (b *bindings) lookup(name string) (string, bool) {
	if b.override {
		for i := len(b.list) - 1; i >= 0; i-- {
			if b.list[i].name == name {
				return b.list[i].value, true
			}
		}
		return "", false
	}
	for _, v := range b.list {
		if v.name == name {
			return v.value, true
		}
	}
	return "", false
}

func isVariableChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isVariableChar(s[i]) {
			return false
		}
	}
	return true
}

// substitute expands {name} references until a pass makes no further replacement.
//
// The escapes \\ and \{ are copied through untouched for the inline parser to resolve.
func (d *docParser) substitute(text string) (string, error) {
	if len(d.vars.list) == 0 || strings.IndexByte(text, '{') < 0 {
		return text, nil
	}
	limit := d.maxExpansion
	if len(text) > limit {
		limit = len(text)
	}
	for pass := 1; ; pass++ {
		out, changed := substitutePass(text, d.vars)
		if !changed {
			return text, nil
		}
		if pass > d.maxPasses {
			return "", wrapf(d.pos, ErrSubstitutionLimit, "still expanding after %d passes", d.maxPasses)
		}
		if len(out) > limit {
			return "", wrapf(d.pos, ErrSubstitutionLimit, "text grew to %d bytes", len(out))
		}
		text = out
	}
}

func substitutePass(text string, vars *bindings) (string, bool) {
	out := &strings.Builder{}
	out.Grow(len(text))
	changed := false
	i := 0
	for i < len(text) {
		if text[i] == '\\' && i+1 < len(text) && (text[i+1] == '\\' || text[i+1] == '{') {
			out.WriteString(text[i : i+2])
			i += 2
			continue
		}
		if text[i] == '{' {
			j := i + 1
			for j < len(text) && isVariableChar(text[j]) {
				j++
			}
			if j > i+1 && j < len(text) && text[j] == '}' {
				if value, ok := vars.lookup(text[i+1 : j]); ok {
					out.WriteString(value)
					changed = true
					i = j + 1
					continue
				}
			}
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String(), changed
}
