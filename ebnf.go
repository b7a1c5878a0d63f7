package docmark

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar describes the markup in EBNF.
//
// It is approximate: EBNF cannot express "any line except", so those exclusions are given as
// comments. Lines are logical lines, after continuation lines have been joined. Variable
// references are expanded before inline text is parsed.
const Grammar = `
Document      = { BlankLine | SectionHeader | VarDef | Block } .
SectionHeader = "=" { "=" } " " Text newline .
VarDef        = ":" name ":" " " { char } newline .

Block     = { Attribute } ( Grouped | Code | Table | List | Paragraph ) .
Attribute = "[" { char } [ "," { char } ] "]" newline .
Grouped   = "{" newline { BlankLine | Block } [ "}" newline ] .
Code      = "----" newline { { char } newline } [ "----" newline ] .
Table     = "|===" newline { BlankLine | Row } [ "|===" newline ] .
Row       = Cells { Cells } | Block .  // Block must not start with "|".
Cells     = "|" Text { "|" Text } newline .
List      = Item { Item } .
Item      = "* " Text newline { "  " Text newline } | "**" newline Block .
Paragraph = Text newline { Text newline } [ BlankLine ] .
BlankLine = newline .

Text      = { Escape | Reference | Bold | RawSpan | Link | char } .
Escape    = "\\" ( "\\" | "\x60" | "*" | "{" | "]" | "|" | "link:" ) .
Reference = "{" name "}" .
Bold      = "*" Text [ "*" ] .
RawSpan   = "\x60" { char } [ "\x60" ] .
Link      = "link:" { char } [ "[" Text "]" ] .  // The target stops at " " or "[".

name    = letter { letter } .
letter  = "a" … "z" | "A" … "Z" | "_" .
char    = "\x00" … "\x09" | "\x0b" … "\U0010FFFF" .
newline = "\n" .
`

// VerifyGrammar checks that Grammar is well formed and that every production is reachable from
// Document.
func VerifyGrammar() error {
	grammar, err := ebnf.Parse("grammar.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, "Document")
}
