package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Lines reads logical lines from an io.Reader with one line of lookahead.
type Lines struct {
	r    *bufio.Reader
	pos  Position // of the next physical line
	eof  bool
	err  error
	buf  strings.Builder
	next *line
}

type line struct {
	text string
	pos  Position
	ok   bool
}

var _ LineSource = &Lines{}

// New creates a Lines reading from r.
//
// "filename" is used only for positions.
func New(filename string, r io.Reader) *Lines {
	return &Lines{
		r:   bufio.NewReader(r),
		pos: Position{Filename: filename, Line: 1},
	}
}

// FromBytes creates a Lines over a byte slice.
func FromBytes(filename string, b []byte) *Lines {
	return New(filename, bytes.NewReader(b))
}

// FromString creates a Lines over a string.
func FromString(filename, s string) *Lines {
	return New(filename, strings.NewReader(s))
}

// Peek returns the next logical line without consuming it.
func (l *Lines) Peek() string {
	return l.pending().text
}

// Next consumes and returns the next logical line.
func (l *Lines) Next() string {
	n := l.pending()
	l.next = nil
	return n.text
}

// Done returns true if no logical lines remain.
func (l *Lines) Done() bool {
	return !l.pending().ok
}

// Position of the next logical line.
func (l *Lines) Position() Position {
	return l.pending().pos
}

// Err returns the first non-EOF error encountered while reading.
//
// A read error ends the input, so callers only need to check it once Done returns true.
func (l *Lines) Err() error {
	return l.err
}

func (l *Lines) pending() *line {
	if l.next == nil {
		pos := l.pos
		text, ok := l.readLogical()
		l.next = &line{text: text, pos: pos, ok: ok}
	}
	return l.next
}

// readLogical joins physical lines ending in an unescaped backslash.
func (l *Lines) readLogical() (string, bool) {
	text, ok := l.readPhysical()
	if !ok {
		return "", false
	}
	if !continues(text) {
		return text, true
	}
	l.buf.Reset()
	for ok && continues(text) {
		l.buf.WriteString(text[:len(text)-1])
		text, ok = l.readPhysical()
	}
	if ok {
		l.buf.WriteString(text)
	}
	return l.buf.String(), true
}

func (l *Lines) readPhysical() (string, bool) {
	if l.eof {
		return "", false
	}
	text, err := l.r.ReadString('\n')
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.err = &Error{Message: err.Error(), Pos: l.pos, Err: err}
			return "", false
		}
		if text == "" {
			return "", false
		}
	}
	l.pos.Line++
	return strings.TrimSuffix(text, "\n"), true
}

// continues returns true if text ends in an odd number of backslashes.
func continues(text string) bool {
	n := 0
	for i := len(text) - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
