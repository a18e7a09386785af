package annotations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// annotationExpr is the participle grammar root for one annotation:
// '@' Name, optionally followed by a parenthesized argument list. Arguments
// may be bare or brace-wrapped ("@Produces({"a", "b"})"), and each argument
// may carry a "name =" prefix ("@Path(value = "/users")").
type annotationExpr struct {
	Name string       `parser:"'@' @Ident"`
	Args *argListExpr `parser:"('(' @@? ')')?"`
}

type argListExpr struct {
	Braced []argExpr `parser:"'{' @@ (',' @@)* '}'"`
	Plain  []argExpr `parser:"| @@ (',' @@)*"`
}

type argExpr struct {
	Key   *string `parser:"(@Ident '=')?"`
	Str   *string `parser:"( @String"`
	Const *string `parser:"| @Ident ('.' Ident)*"`
	Num   *string `parser:"| @Number )"`
}

// Parser parses individual annotation spans into ParsedAnnotation values
type Parser struct {
	parser *participle.Parser[annotationExpr]
}

// annotationSpan matches one annotation with optional parenthesized
// arguments. Nested parentheses are out of scope, matching the analyzer's
// best-effort contract.
var annotationSpan = regexp.MustCompile(`@\w+\s*(?:\([^)]*\))?`)

// NewParser creates a new annotation parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\"|[^"])*"|'(\\'|[^'])*'`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Equals", Pattern: `=`},
		{Name: "At", Pattern: `@`},
		{Name: "Punct", Pattern: `[(){},.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// Parse parses a single annotation such as `@Path("/users")` or
// `@Consumes({"application/json", "application/xml"})`. Only quoted string
// arguments are collected; constant references and numbers are dropped.
func (p *Parser) Parse(raw string) (*ParsedAnnotation, error) {
	expr, err := p.parser.ParseString("", strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse annotation %q: %w", raw, err)
	}

	parsed := &ParsedAnnotation{
		Kind: KindForName(expr.Name),
		Name: expr.Name,
		Raw:  raw,
	}

	if expr.Args != nil {
		args := expr.Args.Plain
		if len(expr.Args.Braced) > 0 {
			args = expr.Args.Braced
		}
		for _, arg := range args {
			if arg.Str != nil {
				parsed.Values = append(parsed.Values, unquote(*arg.Str))
			}
		}
	}

	return parsed, nil
}

// ParseBlock extracts and parses every annotation span in a block of source
// text. Spans that fail to parse are dropped; extraction is best-effort.
func (p *Parser) ParseBlock(block string) []*ParsedAnnotation {
	var parsed []*ParsedAnnotation
	for _, span := range annotationSpan.FindAllString(block, -1) {
		annotation, err := p.Parse(span)
		if err != nil {
			continue
		}
		parsed = append(parsed, annotation)
	}
	return parsed
}

// unquote strips the surrounding quotes from a String token value
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
