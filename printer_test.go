package docmark_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docmark/docmark"
)

func TestDump(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", `(document)`},
		{"== Title *here*\n", `(document (h2 (seq "Title " (bold "here"))))`},
		{"[hidden]\n[argument,path]\ntext\n", `(document (block [hidden] [argument,path] (p "text")))`},
		{"{\na\n\n----\nx\n\"y\"\n----\n}\n", `(document (group (p "a") (code "x\n\"y\"")))`},
		{"* a\n**\nb\n", `(document (list (item "a") (item (p "b"))))`},
		{"|===\n|a|`b`\n\nc\n|===\n", `(document (table (row (cell "a") (cell (raw "b"))) (row (cell (p "c")))))`},
		{"link:x link:y[z]\n", `(document (p (seq (link "x") " " (link "y" "z"))))`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := docmark.Parse([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, test.expected, docmark.Dump(actual))
		})
	}
}

func TestDumpNode(t *testing.T) {
	require.Equal(t, `(bold "x")`, docmark.Dump(&docmark.TextBlock{Attr: docmark.BoldAttr, Inner: docmark.Raw("x")}))
	require.Equal(t, `""`, docmark.Dump(docmark.Raw("")))
}
