package docmark

import (
	"strings"
)

const linkPrefix = "link:"

// textParser parses inline text into a TextBlock.
//
// Plain bytes are buffered in current and flushed into spans whenever a formatted span starts.
type textParser struct {
	text       string
	current    strings.Builder
	hasCurrent bool
	spans      []*TextBlock
}

// parseText parses inline markup. It never fails: unterminated spans run to the end of the text.
func parseText(text string) *TextBlock {
	p := &textParser{text: text}
	for len(p.text) > 0 {
		if p.escapeSequence() || p.bold() || p.raw() || p.link() {
			continue
		}
		p.appendRaw(p.text[:1])
		p.text = p.text[1:]
	}
	return p.finish()
}

func (p *textParser) finish() *TextBlock {
	switch {
	case len(p.spans) == 0 && p.hasCurrent:
		return &TextBlock{Inner: Raw(p.current.String())}
	case len(p.spans) == 0:
		return &TextBlock{Inner: Raw("")}
	case len(p.spans) == 1 && !p.hasCurrent:
		return p.spans[0]
	}
	p.finishRaw()
	return &TextBlock{Inner: Nested(p.spans)}
}

func (p *textParser) appendRaw(s string) {
	p.current.WriteString(s)
	p.hasCurrent = true
}

func (p *textParser) finishRaw() {
	if !p.hasCurrent {
		return
	}
	p.spans = append(p.spans, &TextBlock{Inner: Raw(p.current.String())})
	p.current.Reset()
	p.hasCurrent = false
}

// escapeSequence handles \\ \` \* \{ \] \| and \link:
func (p *textParser) escapeSequence() bool {
	if len(p.text) < 2 || p.text[0] != '\\' {
		return false
	}
	n := 0
	switch p.text[1] {
	case '\\', '`', '*', '{', ']', '|':
		n = 1
	default:
		if !strings.HasPrefix(p.text[1:], linkPrefix) {
			return false
		}
		n = len(linkPrefix)
	}
	p.appendRaw(p.text[1 : 1+n])
	p.text = p.text[1+n:]
	return true
}

// bold parses a *starred* span. Its content is parsed recursively.
func (p *textParser) bold() bool {
	if p.text[0] != '*' {
		return false
	}
	inner := parseText(p.span('*', false))
	if inner.Attr != NoAttr {
		inner = &TextBlock{Inner: Nested{inner}}
	}
	inner.Attr = BoldAttr
	p.spans = append(p.spans, inner)
	return true
}

// raw parses a `backtick` span. Its content is literal.
func (p *textParser) raw() bool {
	if p.text[0] != '`' {
		return false
	}
	content := p.span('`', true)
	p.spans = append(p.spans, &TextBlock{Attr: RawAttr, Inner: Raw(content)})
	return true
}

// span consumes a span delimited by delim and returns its content.
//
// An escaped delimiter or backslash does not end the span. With unescape set the escapes are
// resolved, otherwise they are left for the recursive parse of the content.
func (p *textParser) span(delim byte, unescape bool) string {
	content := &strings.Builder{}
	i := 1
	for i < len(p.text) && p.text[i] != delim {
		if p.text[i] == '\\' && i+1 < len(p.text) && (p.text[i+1] == '\\' || p.text[i+1] == delim) {
			if !unescape {
				content.WriteByte('\\')
			}
			i++
		}
		content.WriteByte(p.text[i])
		i++
	}
	p.finishRaw()
	if i < len(p.text) {
		i++ // closing delimiter
	}
	p.text = p.text[i:]
	return content.String()
}

// link parses "link:target" optionally followed by "[text]".
//
// If the link text is not closed the bracket is left in place and the link has no text.
func (p *textParser) link() bool {
	if !strings.HasPrefix(p.text, linkPrefix) {
		return false
	}
	end := len(linkPrefix)
	for end < len(p.text) && p.text[end] != ' ' && p.text[end] != '[' {
		end++
	}
	link := &Link{Target: p.text[len(linkPrefix):end]}
	consumed := end
	if end < len(p.text) && p.text[end] == '[' {
		if rbrack := closingBracket(p.text, end+1); rbrack >= 0 {
			link.Text = parseText(p.text[end+1 : rbrack])
			consumed = rbrack + 1
		}
	}
	p.finishRaw()
	p.spans = append(p.spans, &TextBlock{Inner: link})
	p.text = p.text[consumed:]
	return true
}

// closingBracket returns the index of the first unescaped ']' at or after start, or -1.
func closingBracket(text string, start int) int {
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if i+1 < len(text) && (text[i+1] == '\\' || text[i+1] == ']') {
				i++
			}
		case ']':
			return i
		}
	}
	return -1
}
