package docmark

import "strings"

// Summary returns the parts before the first top level "= Section" header.
func (d *Document) Summary() []Part {
	for i, part := range d.Parts {
		if isTopLevel(part) {
			return d.Parts[:i]
		}
	}
	return d.Parts
}

// Section returns the parts following the top level header titled title, up to the next top level
// header. It returns nil if there is no such section.
func (d *Document) Section(title string) []Part {
	for i, part := range d.Parts {
		if !isTopLevel(part) || strings.TrimSpace(part.(*SectionHeader).Text.PlainText()) != title {
			continue
		}
		rest := d.Parts[i+1:]
		for j, part := range rest {
			if isTopLevel(part) {
				return rest[:j]
			}
		}
		return rest
	}
	return nil
}

// Lookup returns the first block in the summary carrying the attribute name.
//
// If args is given, the attribute arguments must also equal args[0].
//
//	[argument,path]
//	The file to open.
//
// is found by Lookup("argument", "path").
func (d *Document) Lookup(name string, args ...string) *BlockData {
	for _, part := range d.Summary() {
		block, ok := part.(*BlockData)
		if !ok {
			continue
		}
		attr, ok := block.Attribute(name)
		if !ok {
			continue
		}
		if len(args) > 0 && (!attr.HasArgs || strings.TrimSpace(attr.Args) != args[0]) {
			continue
		}
		return block
	}
	return nil
}

// HasAttribute returns true if the block is decorated with the named attribute.
func (b *BlockData) HasAttribute(name string) bool {
	_, ok := b.Attribute(name)
	return ok
}

// Attribute returns the first attribute named name.
func (b *BlockData) Attribute(name string) (Attribute, bool) {
	for _, attr := range b.Attributes {
		if strings.TrimSpace(attr.Name) == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

func isTopLevel(part Part) bool {
	header, ok := part.(*SectionHeader)
	return ok && header.Depth == 1
}
