package docmark

import (
	"fmt"
	"strings"
)

// Dump returns a compact S-expression rendering of a tree, one line per call.
//
// Plain text without formatting is printed as a quoted string, so
//
//	== Title *here*
//
// dumps as
//
//	(document (h2 (seq "Title " (bold "here"))))
func Dump(node Node) string {
	w := &strings.Builder{}
	dump(w, node)
	return w.String()
}

func dump(w *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Document:
		w.WriteString("(document")
		for _, part := range n.Parts {
			w.WriteByte(' ')
			dump(w, part)
		}
		w.WriteByte(')')

	case *SectionHeader:
		fmt.Fprintf(w, "(h%d ", n.Depth)
		dump(w, n.Text)
		w.WriteByte(')')

	case *BlockData:
		if len(n.Attributes) == 0 {
			dump(w, n.Inner)
			return
		}
		w.WriteString("(block")
		for _, attr := range n.Attributes {
			if attr.HasArgs {
				fmt.Fprintf(w, " [%s,%s]", attr.Name, attr.Args)
			} else {
				fmt.Fprintf(w, " [%s]", attr.Name)
			}
		}
		w.WriteByte(' ')
		dump(w, n.Inner)
		w.WriteByte(')')

	case *Grouped:
		w.WriteString("(group")
		for _, block := range n.Blocks {
			w.WriteByte(' ')
			dump(w, block)
		}
		w.WriteByte(')')

	case *Code:
		fmt.Fprintf(w, "(code %q)", n.Source)

	case *List:
		w.WriteString("(list")
		for _, item := range n.Items {
			w.WriteString(" (item ")
			dump(w, item)
			w.WriteByte(')')
		}
		w.WriteByte(')')

	case *Table:
		w.WriteString("(table")
		for _, row := range n.Rows {
			w.WriteByte(' ')
			dump(w, row)
		}
		w.WriteByte(')')

	case *TableRow:
		w.WriteString("(row")
		for _, col := range n.Cols {
			w.WriteString(" (cell ")
			dump(w, col)
			w.WriteByte(')')
		}
		w.WriteByte(')')

	case *Paragraph:
		w.WriteString("(p ")
		dump(w, n.Text)
		w.WriteByte(')')

	case *TextBlock:
		if n == nil {
			w.WriteString("nil")
			return
		}
		switch n.Attr {
		case BoldAttr:
			w.WriteString("(bold ")
		case RawAttr:
			w.WriteString("(raw ")
		default:
			dump(w, n.Inner)
			return
		}
		dump(w, n.Inner)
		w.WriteByte(')')

	case Raw:
		fmt.Fprintf(w, "%q", string(n))

	case Nested:
		w.WriteString("(seq")
		for _, span := range n {
			w.WriteByte(' ')
			dump(w, span)
		}
		w.WriteByte(')')

	case *Link:
		fmt.Fprintf(w, "(link %q", n.Target)
		if n.Text != nil {
			w.WriteByte(' ')
			dump(w, n.Text)
		}
		w.WriteByte(')')

	default:
		w.WriteString("?")
	}
}
