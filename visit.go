package docmark

// A Visitor is called for each node by Walk.
//
// Calling next descends into the children of the node. A visitor that does not call next skips the
// subtree. Returning an error aborts the walk.
type Visitor func(node Node, next func() error) error

// Walk the tree rooted at node in document order.
func Walk(node Node, visitor Visitor) error {
	return visitor(node, func() error {
		switch node := node.(type) {
		case *Document:
			for _, part := range node.Parts {
				if err := Walk(part, visitor); err != nil {
					return err
				}
			}

		case *SectionHeader:
			return walkText(node.Text, visitor)

		case *BlockData:
			return Walk(node.Inner, visitor)

		case *Grouped:
			for _, block := range node.Blocks {
				if err := Walk(block, visitor); err != nil {
					return err
				}
			}

		case *Code:

		case *List:
			for _, item := range node.Items {
				if err := Walk(item, visitor); err != nil {
					return err
				}
			}

		case *Table:
			for _, row := range node.Rows {
				if err := Walk(row, visitor); err != nil {
					return err
				}
			}

		case *TableRow:
			for _, col := range node.Cols {
				if err := Walk(col, visitor); err != nil {
					return err
				}
			}

		case *Paragraph:
			return walkText(node.Text, visitor)

		case *TextBlock:
			return Walk(node.Inner, visitor)

		case Raw:

		case Nested:
			for _, span := range node {
				if err := Walk(span, visitor); err != nil {
					return err
				}
			}

		case *Link:
			return walkText(node.Text, visitor)

		default:
			panic("unsupported")
		}
		return nil
	})
}

func walkText(text *TextBlock, visitor Visitor) error {
	if text == nil {
		return nil
	}
	return Walk(text, visitor)
}
