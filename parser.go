package docmark

import (
	"io"
	"strings"

	"github.com/docmark/docmark/lexer"
)

// A Parser for doc-comment markup.
//
// A Parser only holds configuration and is safe for concurrent use.
type Parser struct {
	trace        io.Writer
	defines      []binding
	override     bool
	maxPasses    int
	maxExpansion int
	maxDepth     int
}

// New creates a Parser configured by the given options.
func New(options ...Option) (*Parser, error) {
	p := &Parser{
		maxPasses:    DefaultMaxSubstitutionPasses,
		maxExpansion: DefaultMaxExpansion,
		maxDepth:     DefaultMaxDepth,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

var defaultParser = MustNew()

// Parse a doc comment with the default options.
func Parse(b []byte) (*Document, error) {
	return defaultParser.ParseBytes("", b)
}

// Parse a doc comment from r.
//
// "filename" is used only for positions in errors and traces.
func (p *Parser) Parse(filename string, r io.Reader) (*Document, error) {
	return p.parse(lexer.New(filename, r))
}

// ParseString parses a doc comment from a string.
func (p *Parser) ParseString(filename string, s string) (*Document, error) {
	return p.parse(lexer.FromString(filename, s))
}

// ParseBytes parses a doc comment from a byte slice.
func (p *Parser) ParseBytes(filename string, b []byte) (*Document, error) {
	return p.parse(lexer.FromBytes(filename, b))
}

func (p *Parser) parse(lines *lexer.Lines) (*Document, error) {
	d := &docParser{
		Parser: p,
		lines:  lines,
		vars:   &bindings{override: p.override},
	}
	d.vars.list = append(d.vars.list, p.defines...)
	doc, err := d.document()
	if err != nil {
		return nil, err
	}
	if err := lines.Err(); err != nil {
		return nil, AnnotateError(d.pos, err)
	}
	return doc, nil
}

// docParser holds the state of a single parse.
type docParser struct {
	*Parser
	lines lexer.LineSource
	pos   lexer.Position // of the most recently consumed line
	vars  *bindings
	depth int
	// groups and tables count the enclosing "{" and "|===" blocks. Their closing lines end a
	// paragraph inside them.
	groups int
	tables int
}

func (d *docParser) next() string {
	d.pos = d.lines.Position()
	return d.lines.Next()
}

func (d *docParser) blankLines() {
	for !d.lines.Done() && d.lines.Peek() == "" {
		d.next()
	}
}

// document <- ( blank* ( section_header | var_def | block ) )*
func (d *docParser) document() (*Document, error) {
	doc := &Document{}
	for {
		d.blankLines()
		if d.lines.Done() {
			return doc, nil
		}
		if header, err := d.sectionHeader(); err != nil {
			return nil, err
		} else if header != nil {
			doc.Parts = append(doc.Parts, header)
			continue
		}
		if d.varDef() {
			continue
		}
		block, err := d.block()
		if err != nil {
			return nil, err
		}
		doc.Parts = append(doc.Parts, block)
	}
}

// sectionHeader <- '='+ ' ' text
//
//	= Section header
//	== Level 2 section header
func (d *docParser) sectionHeader() (*SectionHeader, error) {
	line := d.lines.Peek()
	depth := 0
	for depth < len(line) && line[depth] == '=' {
		depth++
	}
	if depth == 0 || depth == len(line) || line[depth] != ' ' {
		return nil, nil
	}
	d.tracef("section header, depth %d", depth)
	d.next()
	text, err := d.text(line[depth+1:])
	if err != nil {
		return nil, err
	}
	return &SectionHeader{Depth: depth, Text: text}, nil
}

// varDef <- ':' [a-zA-Z_]+ ': ' value
//
// The value is stored as written; it is substituted when a reference to it is expanded.
func (d *docParser) varDef() bool {
	line := d.lines.Peek()
	if len(line) == 0 || line[0] != ':' {
		return false
	}
	end := 1
	for end < len(line) && isVariableChar(line[end]) {
		end++
	}
	if end == 1 || end+1 >= len(line) || line[end] != ':' || line[end+1] != ' ' {
		return false
	}
	d.tracef("variable %s", line[1:end])
	d.next()
	d.vars.define(line[1:end], line[end+2:])
	return true
}

// block <- attribute* ( grouped / code / table / list / paragraph )
func (d *docParser) block() (*BlockData, error) {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return nil, wrapf(d.lines.Position(), ErrNestingTooDeep, "more than %d levels", d.maxDepth)
	}
	attributes := d.attributes()
	for _, alternative := range []func() (Block, error){d.grouped, d.code, d.table, d.list} {
		inner, err := alternative()
		if err != nil {
			return nil, err
		}
		if inner != nil {
			return &BlockData{Attributes: attributes, Inner: inner}, nil
		}
	}
	inner, err := d.paragraph()
	if err != nil {
		return nil, err
	}
	return &BlockData{Attributes: attributes, Inner: inner}, nil
}

// attributes <- ( '[' name ( ',' args )? ']' )*
//
//	[hidden]
//	[argument, flags]
func (d *docParser) attributes() []Attribute {
	var attributes []Attribute
	for !d.lines.Done() {
		line := d.lines.Peek()
		if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
			break
		}
		d.tracef("attribute %s", line)
		d.next()
		line = line[1 : len(line)-1]
		attribute := Attribute{Name: line}
		if comma := strings.IndexByte(line, ','); comma >= 0 {
			attribute = Attribute{Name: line[:comma], Args: line[comma+1:], HasArgs: true}
		}
		attributes = append(attributes, attribute)
	}
	return attributes
}

// grouped <- '{' ( blank* block )* blank* '}'?
func (d *docParser) grouped() (Block, error) {
	if d.lines.Peek() != "{" {
		return nil, nil
	}
	d.tracef("group")
	d.next()
	d.groups++
	defer func() { d.groups-- }()
	group := &Grouped{}
	for {
		d.blankLines()
		if d.lines.Done() || d.lines.Peek() == "}" {
			break
		}
		block, err := d.block()
		if err != nil {
			return nil, err
		}
		group.Blocks = append(group.Blocks, block)
	}
	d.next()
	return group, nil
}

// code <- '----' line* '----'?
func (d *docParser) code() (Block, error) {
	if d.lines.Peek() != "----" {
		return nil, nil
	}
	d.tracef("code")
	d.next()
	var lines []string
	for !d.lines.Done() {
		line := d.next()
		if line == "----" {
			break
		}
		lines = append(lines, line)
	}
	return &Code{Source: strings.Join(lines, "\n")}, nil
}

// table <- '|===' ( blank* row )* blank* '|==='?
// row   <- ( '|' column ( '|' column )* )+ / block
//
// A row ends at a blank line. A row that does not start with '|' holds exactly one block.
func (d *docParser) table() (Block, error) {
	if d.lines.Peek() != "|===" {
		return nil, nil
	}
	d.tracef("table")
	d.next()
	d.tables++
	defer func() { d.tables-- }()
	table := &Table{}
	for {
		d.blankLines()
		if d.lines.Done() || d.lines.Peek() == "|===" {
			break
		}
		row := &TableRow{}
		if d.lines.Peek()[0] != '|' {
			start := d.lines.Position()
			block, err := d.block()
			if err != nil {
				return nil, err
			}
			if d.lines.Position() == start {
				// The line closes an enclosing group.
				break
			}
			row.Cols = append(row.Cols, block)
			table.Rows = append(table.Rows, row)
			continue
		}
		for line := d.lines.Peek(); line != "" && line != "|===" && line[0] == '|'; line = d.lines.Peek() {
			d.next()
			for _, column := range splitColumns(line[1:]) {
				text, err := d.text(column)
				if err != nil {
					return nil, err
				}
				row.Cols = append(row.Cols, text)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if d.lines.Peek() == "|===" {
		d.next()
	}
	return table, nil
}

// splitColumns splits a simple row at unescaped '|'. The escapes \| and \\ are kept for the inline
// parser.
func splitColumns(line string) []string {
	var columns []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if i+1 < len(line) && (line[i+1] == '\\' || line[i+1] == '|') {
				i++
			}
		case '|':
			columns = append(columns, line[start:i])
			start = i + 1
		}
	}
	return append(columns, line[start:])
}

// list     <- item+
// item     <- '* ' text ( '  ' text )* / '**' block
func (d *docParser) list() (Block, error) {
	list := &List{}
	for {
		line := d.lines.Peek()
		if line == "**" {
			d.tracef("complex list item")
			d.next()
			block, err := d.block()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, block)
			continue
		}
		if !strings.HasPrefix(line, "* ") {
			break
		}
		d.tracef("list item")
		d.next()
		item := line[2:]
		for strings.HasPrefix(d.lines.Peek(), "  ") {
			item += " " + d.next()[2:]
		}
		text, err := d.text(item)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, text)
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return list, nil
}

// paragraph <- ( line )* blank?
//
// Always matches. It consumes at least one line unless the next line closes an enclosing group or
// table, in which case the paragraph is empty.
func (d *docParser) paragraph() (Block, error) {
	d.tracef("paragraph")
	var lines []string
	blank := false
	for {
		line := d.lines.Peek()
		if line == "" {
			blank = true
			break
		}
		if line == "}" && d.groups > 0 || line == "|===" && d.tables > 0 {
			break
		}
		lines = append(lines, d.next())
	}
	text, err := d.text(strings.Join(lines, " "))
	if err != nil {
		return nil, err
	}
	if blank {
		d.next()
	}
	return &Paragraph{Text: text}, nil
}

// text substitutes variables into raw content and parses the result as inline text.
func (d *docParser) text(content string) (*TextBlock, error) {
	content, err := d.substitute(content)
	if err != nil {
		return nil, err
	}
	return parseText(content), nil
}
