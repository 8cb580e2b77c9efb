package netfixture

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses fixture text into a File AST. Build once, reuse across
// many ParseString/ParseFile calls.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a fixture Parser.
func NewParser() (*Parser, error) {
	p, err := participle.Build[File](
		participle.Lexer(fixtureLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("netfixture: build parser: %w", err)
	}
	return &Parser{parser: p}, nil
}

// ParseString parses fixture text from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("netfixture: parse: %w", err)
	}
	return f, nil
}

// Parse parses fixture text from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("netfixture: parse: %w", err)
	}
	return f, nil
}

// ParseFile parses fixture text from a file path.
func (p *Parser) ParseFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfixture: open %s: %w", path, err)
	}
	defer file.Close()
	return p.Parse(file)
}
