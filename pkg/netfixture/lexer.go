package netfixture

import "github.com/alecthomas/participle/v2/lexer"

// fixtureLexer defines the lexical structure of a fixture file: C-style
// line comments, whitespace, bare identifiers (cell kinds and names),
// decimal integers (bit indices), and the handful of punctuation tokens
// the grammar needs.
var fixtureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Dot", Pattern: `\.`},
})
