package docmark

import "strings"

// A Node in a parsed document tree.
//
// Every value reachable from a Document implements Node, which makes the whole tree walkable with
// Walk.
type Node interface {
	node()
}

// Document is the parse result for one doc comment.
type Document struct {
	Parts []Part
}

// A Part of a Document: either a *SectionHeader or a *BlockData.
type Part interface {
	Node
	part()
}

// SectionHeader is a "= Title" line. Depth is the number of "=" characters.
type SectionHeader struct {
	Depth int
	Text  *TextBlock
}

// BlockData is a block together with the attribute lines directly above it.
type BlockData struct {
	Attributes []Attribute
	Inner      Block
}

// Attribute is a "[name]" or "[name,args]" line decorating a block.
//
// Attributes are purely syntactic. What a name means is up to the renderer.
type Attribute struct {
	Name    string
	Args    string
	HasArgs bool
}

// A Block is one of *Grouped, *Code, *List, *Table or *Paragraph.
type Block interface {
	Node
	block()
}

// Grouped is a "{" ... "}" block containing nested blocks.
type Grouped struct {
	Blocks []*BlockData
}

// Code is a "----" delimited block. Source is captured verbatim.
type Code struct {
	Source string
}

// List of "* " and "**" items.
type List struct {
	Items []ListEl
}

// A ListEl is either a *TextBlock (simple item) or a *BlockData (complex item).
type ListEl interface {
	Node
	listEl()
}

// Table is a "|===" delimited block.
type Table struct {
	Rows []*TableRow
}

// TableRow is a row of a Table.
type TableRow struct {
	Cols []TableCol
}

// A TableCol is either a *TextBlock (simple cell) or a *BlockData (complex cell).
type TableCol interface {
	Node
	tableCol()
}

// Paragraph is the fallback block: consecutive non-blank lines joined by single spaces.
type Paragraph struct {
	Text *TextBlock
}

// TextAttr is the formatting applied to a TextBlock.
type TextAttr int

const (
	NoAttr   TextAttr = iota // NoAttr is plain text.
	RawAttr                  // RawAttr is a `backtick` span.
	BoldAttr                 // BoldAttr is a *starred* span.
)

func (a TextAttr) String() string {
	switch a {
	case RawAttr:
		return "Raw"
	case BoldAttr:
		return "Bold"
	}
	return "None"
}

// TextBlock is the result of parsing inline text.
type TextBlock struct {
	Attr  TextAttr
	Inner Text
}

// Text is one of Raw, Nested or *Link.
type Text interface {
	Node
	text()
}

// Raw is a run of literal text.
type Raw string

// Nested is a sequence of spans.
type Nested []*TextBlock

// Link is a "link:target" or "link:target[text]" span. Text is nil when no link text was given.
type Link struct {
	Target string
	Text   *TextBlock
}

func (*Document) node()      {}
func (*SectionHeader) node() {}
func (*BlockData) node()     {}
func (*Grouped) node()       {}
func (*Code) node()          {}
func (*List) node()          {}
func (*Table) node()         {}
func (*TableRow) node()      {}
func (*Paragraph) node()     {}
func (*TextBlock) node()     {}
func (Raw) node()            {}
func (Nested) node()         {}
func (*Link) node()          {}

func (*SectionHeader) part() {}
func (*BlockData) part()     {}

func (*Grouped) block()   {}
func (*Code) block()      {}
func (*List) block()      {}
func (*Table) block()     {}
func (*Paragraph) block() {}

func (*TextBlock) listEl() {}
func (*BlockData) listEl() {}

func (*TextBlock) tableCol() {}
func (*BlockData) tableCol() {}

func (Raw) text()    {}
func (Nested) text() {}
func (*Link) text()  {}

// PlainText returns the literal content of the block with all formatting removed.
//
// Links contribute their text, or their target when they have none.
func (t *TextBlock) PlainText() string {
	if t == nil {
		return ""
	}
	w := &strings.Builder{}
	writePlain(w, t.Inner)
	return w.String()
}

func writePlain(w *strings.Builder, text Text) {
	switch text := text.(type) {
	case Raw:
		w.WriteString(string(text))
	case Nested:
		for _, child := range text {
			writePlain(w, child.Inner)
		}
	case *Link:
		if text.Text != nil {
			writePlain(w, text.Text.Inner)
		} else {
			w.WriteString(text.Target)
		}
	}
}
