// Package docmark parses doc-comment markup into a Document tree.
//
// The markup is line oriented. A line ending in an odd number of backslashes continues on the next
// line. The supported block syntax is:
//
//   - `= Title` Section header. The number of "=" is the depth.
//   - `:name: value` Define a variable, referenced in text as {name}.
//   - `[name]` or `[name,args]` Attribute of the block that follows.
//   - `{` ... `}` Group of blocks.
//   - `----` ... `----` Verbatim code.
//   - `|===` ... `|===` Table. Rows of `|a|b` cells, or a single nested block.
//   - `* item` List item, continued by lines indented with two spaces.
//   - `**` Complex list item, holding the next block.
//
// Anything else is a paragraph running to the next blank line. Within text:
//
//   - `*bold*` Bold, may contain other spans.
//   - "`raw`" Literal text.
//   - `link:target` or `link:target[text]` A link.
//   - `\x` Escapes any of \ ` * { ] | and link:
//
// There are no syntax errors. Unterminated blocks and spans run to the end of their input.
//
// Here's an example:
//
//	:tool: docmark
//
//	Parses markup for {tool}.
//
//	[argument,path]
//	The *file* to read, or `-` for stdin.
//
//	= Examples
//	----
//	docmark parse README.doc
//	----
package docmark
