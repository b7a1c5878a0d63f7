package docmark_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/docmark/docmark"
)

func raw(s string) *docmark.TextBlock {
	return &docmark.TextBlock{Inner: docmark.Raw(s)}
}

func para(s string) *docmark.BlockData {
	return &docmark.BlockData{Inner: &docmark.Paragraph{Text: raw(s)}}
}

func doc(parts ...docmark.Part) *docmark.Document {
	return &docmark.Document{Parts: parts}
}

func mustParse(t *testing.T, p *docmark.Parser, input string) *docmark.Document {
	t.Helper()
	actual, err := p.ParseString("", input)
	require.NoError(t, err)
	return actual
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *docmark.Document
	}{
		{"Empty", "", doc()},
		{"OnlyBlankLines", "\n\n\n", doc()},
		{"SectionHeader", "== Title\n", doc(&docmark.SectionHeader{Depth: 2, Text: raw("Title")})},
		{"SectionHeaderWithoutSpace", "==Title\n", doc(para("==Title"))},
		{"EqualsOnly", "=\n", doc(para("="))},
		{"EmptySectionHeader", "= \n", doc(&docmark.SectionHeader{Depth: 1, Text: raw("")})},
		{"HeaderFollowedByText", "= A\ntext\n", doc(
			&docmark.SectionHeader{Depth: 1, Text: raw("A")},
			para("text"),
		)},
		{"Variable", ":name: World\n\nHello {name}\n", doc(para("Hello World"))},
		{"VariableInHeader", ":v: 1.0\n= Release {v}\n", doc(&docmark.SectionHeader{Depth: 1, Text: raw("Release 1.0")})},
		{"VariableWithoutSpace", ":x:y\n", doc(para(":x:y"))},
		{"VariableWithoutValue", ":x:\n", doc(para(":x:"))},
		{"UndefinedVariable", "{nope}\n", doc(para("{nope}"))},
		{"TransitiveVariable", ":a: {b}\n:b: done\n{a}\n", doc(para("done"))},
		{"FirstDefinitionWins", ":x: one\n:x: two\n{x}\n", doc(para("one"))},
		{"EscapedReference", ":x: y\n\\{x}\n", doc(para("{x}"))},
		{"ParagraphJoin", "a\nb\n\nc\n", doc(para("a b"), para("c"))},
		{"Continuation", "Hello \\\nworld\n", doc(para("Hello world"))},
		{"Attributes", "[hidden]\n[argument,path]\nText\n", doc(&docmark.BlockData{
			Attributes: []docmark.Attribute{
				{Name: "hidden"},
				{Name: "argument", Args: "path", HasArgs: true},
			},
			Inner: &docmark.Paragraph{Text: raw("Text")},
		})},
		{"AttributeAtEnd", "[hidden]\n", doc(&docmark.BlockData{
			Attributes: []docmark.Attribute{{Name: "hidden"}},
			Inner:      &docmark.Paragraph{Text: raw("")},
		})},
		{"Group", "{\nfoo\n\nbar\n}\n", doc(&docmark.BlockData{Inner: &docmark.Grouped{
			Blocks: []*docmark.BlockData{para("foo"), para("bar")},
		}})},
		{"UnterminatedGroup", "{\nfoo\n", doc(&docmark.BlockData{Inner: &docmark.Grouped{
			Blocks: []*docmark.BlockData{para("foo")},
		}})},
		{"NestedGroups", "{\n{\na\n}\n}\nb\n", doc(
			&docmark.BlockData{Inner: &docmark.Grouped{Blocks: []*docmark.BlockData{
				{Inner: &docmark.Grouped{Blocks: []*docmark.BlockData{para("a")}}},
			}}},
			para("b"),
		)},
		{"BraceOutsideGroup", "a\n}\n", doc(para("a }"))},
		{"HeaderLineInsideParagraph", "a\n= B\n", doc(para("a = B"))},
		{"AttributeBeforeGroupClose", "{\n[x]\n}\nafter\n", doc(
			&docmark.BlockData{Inner: &docmark.Grouped{Blocks: []*docmark.BlockData{{
				Attributes: []docmark.Attribute{{Name: "x"}},
				Inner:      &docmark.Paragraph{Text: raw("")},
			}}}},
			para("after"),
		)},
		{"ComplexItemBeforeGroupClose", "{\n**\n}\nafter\n", doc(
			&docmark.BlockData{Inner: &docmark.Grouped{Blocks: []*docmark.BlockData{
				{Inner: &docmark.List{Items: []docmark.ListEl{
					&docmark.BlockData{Inner: &docmark.Paragraph{Text: raw("")}},
				}}},
			}}},
			para("after"),
		)},
		{"UnterminatedTableInGroup", "{\n|===\nx\n}\nafter\n", doc(
			&docmark.BlockData{Inner: &docmark.Grouped{Blocks: []*docmark.BlockData{
				{Inner: &docmark.Table{Rows: []*docmark.TableRow{
					{Cols: []docmark.TableCol{para("x")}},
				}}},
			}}},
			para("after"),
		)},
		{"Code", "----\nfoo *bar*\n  baz\n----\n", doc(&docmark.BlockData{Inner: &docmark.Code{Source: "foo *bar*\n  baz"}})},
		{"EmptyCode", "----\n----\n", doc(&docmark.BlockData{Inner: &docmark.Code{}})},
		{"UnterminatedCode", "----\na\n\nb\n", doc(&docmark.BlockData{Inner: &docmark.Code{Source: "a\n\nb"}})},
		{"Table", "|===\n|a|b|c\n|===\n", doc(&docmark.BlockData{Inner: &docmark.Table{Rows: []*docmark.TableRow{
			{Cols: []docmark.TableCol{raw("a"), raw("b"), raw("c")}},
		}}})},
		{"TableRowOverLines", "|===\n|a\n|b\n\n|c\n|===\n", doc(&docmark.BlockData{Inner: &docmark.Table{Rows: []*docmark.TableRow{
			{Cols: []docmark.TableCol{raw("a"), raw("b")}},
			{Cols: []docmark.TableCol{raw("c")}},
		}}})},
		{"TableEscapedPipe", "|===\n|a\\|b|c\n|===\n", doc(&docmark.BlockData{Inner: &docmark.Table{Rows: []*docmark.TableRow{
			{Cols: []docmark.TableCol{raw("a|b"), raw("c")}},
		}}})},
		{"TableComplexRow", "|===\n|a\n\nsome text\n|===\n", doc(&docmark.BlockData{Inner: &docmark.Table{Rows: []*docmark.TableRow{
			{Cols: []docmark.TableCol{raw("a")}},
			{Cols: []docmark.TableCol{para("some text")}},
		}}})},
		{"UnterminatedTable", "|===\n|a\n", doc(&docmark.BlockData{Inner: &docmark.Table{Rows: []*docmark.TableRow{
			{Cols: []docmark.TableCol{raw("a")}},
		}}})},
		{"List", "* one\n  two\n* three\n", doc(&docmark.BlockData{Inner: &docmark.List{Items: []docmark.ListEl{
			raw("one two"), raw("three"),
		}}})},
		{"ComplexListItem", "* one\n**\nblock text\n", doc(&docmark.BlockData{Inner: &docmark.List{Items: []docmark.ListEl{
			raw("one"), para("block text"),
		}}})},
		{"ListEndsAtParagraph", "* one\n\ntext\n", doc(
			&docmark.BlockData{Inner: &docmark.List{Items: []docmark.ListEl{raw("one")}}},
			para("text"),
		)},
		{"ListItemWithVariable", ":x: X\n* {x}\n", doc(&docmark.BlockData{Inner: &docmark.List{Items: []docmark.ListEl{raw("X")}}})},
		{"StarWithoutSpace", "*bold* text\n", doc(&docmark.BlockData{Inner: &docmark.Paragraph{Text: &docmark.TextBlock{Inner: docmark.Nested{
			{Attr: docmark.BoldAttr, Inner: docmark.Raw("bold")},
			raw(" text"),
		}}}})},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := docmark.Parse([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, test.expected, actual, repr.String(actual, repr.Indent("  ")))
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := ":x: X\n= Title *{x}*\n[a,b]\n{\n* one\n**\n|===\n|`c`|link:d[e]\n|===\n}\n"
	first, err := docmark.Parse([]byte(input))
	require.NoError(t, err)
	second, err := docmark.Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPartsPreserveSourceOrder(t *testing.T) {
	actual, err := docmark.Parse([]byte("= One\na\n\n= Two\nb\n"))
	require.NoError(t, err)
	require.Equal(t, doc(
		&docmark.SectionHeader{Depth: 1, Text: raw("One")},
		para("a"),
		&docmark.SectionHeader{Depth: 1, Text: raw("Two")},
		para("b"),
	), actual)
}

func TestParseReader(t *testing.T) {
	p := docmark.MustNew()
	actual, err := p.Parse("doc", strings.NewReader("= A\r\n"))
	require.NoError(t, err)
	require.Equal(t, doc(&docmark.SectionHeader{Depth: 1, Text: raw("A\r")}), actual)

	actual, err = p.ParseBytes("doc", []byte("text"))
	require.NoError(t, err)
	require.Equal(t, doc(para("text")), actual)
}

func TestParseReadError(t *testing.T) {
	failure := errors.New("disk on fire")
	_, err := docmark.MustNew().Parse("doc", iotest.ErrReader(failure))
	require.Error(t, err)
	require.True(t, errors.Is(err, failure), "%v", err)
}

func TestDefine(t *testing.T) {
	p := docmark.MustNew(docmark.Define("name", "World"))
	require.Equal(t, doc(para("Hello World")), mustParse(t, p, "Hello {name}\n"))

	// Predefined variables come first, so they win unless definitions override.
	require.Equal(t, doc(para("World")), mustParse(t, p, ":name: Doc\n{name}\n"))

	p = docmark.MustNew(docmark.Define("name", "World"), docmark.OverrideDefinitions())
	require.Equal(t, doc(para("Doc")), mustParse(t, p, ":name: Doc\n{name}\n"))

	_, err := docmark.New(docmark.Define("not a name", ""))
	require.Error(t, err)
}

func TestOverrideDefinitions(t *testing.T) {
	p := docmark.MustNew(docmark.OverrideDefinitions())
	require.Equal(t, doc(para("two")), mustParse(t, p, ":x: one\n:x: two\n{x}\n"))
}

func TestInvalidLimits(t *testing.T) {
	for _, option := range []docmark.Option{
		docmark.MaxSubstitutionPasses(0),
		docmark.MaxExpansion(-1),
		docmark.MaxDepth(0),
	} {
		_, err := docmark.New(option)
		require.Error(t, err)
	}
	require.Panics(t, func() { docmark.MustNew(docmark.MaxDepth(0)) })
}

func TestCyclicVariables(t *testing.T) {
	_, err := docmark.Parse([]byte(":a: {b}\n:b: {a}\n\n{a}\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, docmark.ErrSubstitutionLimit), "%v", err)

	var perr docmark.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 4, perr.Position().Line)
}

func TestExpansionLimit(t *testing.T) {
	p := docmark.MustNew(docmark.MaxExpansion(100))
	_, err := p.ParseString("", ":a: {a}{a}\n{a}\n")
	require.True(t, errors.Is(err, docmark.ErrSubstitutionLimit), "%v", err)

	p = docmark.MustNew(docmark.MaxSubstitutionPasses(2))
	_, err = p.ParseString("", ":a: {b}\n:b: {c}\n:c: {d}\n:d: x\n{a}\n")
	require.True(t, errors.Is(err, docmark.ErrSubstitutionLimit), "%v", err)
	require.Equal(t, doc(para("x")), mustParse(t, p, ":a: {b}\n:b: x\n{a}\n"))
}

func TestMaxDepth(t *testing.T) {
	p := docmark.MustNew(docmark.MaxDepth(2))
	_, err := p.ParseString("doc", "{\n{\na\n}\n}\n")
	require.True(t, errors.Is(err, docmark.ErrNestingTooDeep), "%v", err)
	require.EqualError(t, err, "doc:3: blocks nested too deeply: more than 2 levels")

	_, err = p.ParseString("doc", "{\na\n}\n")
	require.NoError(t, err)
}

func TestDeepNestingWithinDefaultDepth(t *testing.T) {
	n := docmark.DefaultMaxDepth - 1
	input := strings.Repeat("**\n", n) + "leaf\n"
	actual, err := docmark.Parse([]byte(input))
	require.NoError(t, err)
	depth := 0
	for block := actual.Parts[0].(*docmark.BlockData); ; depth++ {
		list, ok := block.Inner.(*docmark.List)
		if !ok {
			break
		}
		block = list.Items[0].(*docmark.BlockData)
	}
	require.Equal(t, n, depth)

	_, err = docmark.Parse([]byte(strings.Repeat("**\n", docmark.DefaultMaxDepth) + "leaf\n"))
	require.True(t, errors.Is(err, docmark.ErrNestingTooDeep))
}

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	p := docmark.MustNew(docmark.Trace(w))
	_, err := p.ParseString("doc", "= Title\n:x: y\n{\ntext\n}\n")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"doc:1 section header, depth 1",
		"doc:2 variable x",
		"  doc:3 group",
		"    doc:4 paragraph",
		"",
	}, "\n"), w.String())
}
