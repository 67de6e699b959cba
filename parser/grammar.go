package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A '.' only starts a fraction when a digit follows, so 1.abs() and 0..10
// lex as an integer followed by punctuation.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "RawString", Pattern: `r"[^"]*"`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])+'`},
	{Name: "Float", Pattern: `\d[\d_]*\.\d[\d_]*([eE][+-]?\d+)?|\d[\d_]*[eE][+-]?\d+`},
	{Name: "Int", Pattern: `\d[\d_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `\.\.|::|==|!=|<=|>=|&&|\|\||[-+*/%<>!.,()\[\]&]`},
})

var exprParser = participle.MustBuild[rangeExpr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String", "Char"),
	participle.UseLookahead(4),
)

// rangeExpr is the loosest binding form: an optional .. between two chains.
// It can match nothing at all; convertRange and convertList decide where
// that is allowed.
type rangeExpr struct {
	Pos  lexer.Position
	From *binaryExpr `@@?`
	Dots bool        `( @".."`
	To   *binaryExpr `  @@? )?`
}

// binaryExpr is a flat chain of infix operators, folded by precedence after parsing.
type binaryExpr struct {
	Pos  lexer.Position
	Head *unaryExpr `@@`
	Tail []*opTerm  `@@*`
}

type opTerm struct {
	Pos   lexer.Position
	Op    string     `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%")`
	Right *unaryExpr `@@`
}

type unaryExpr struct {
	Pos     lexer.Position
	Op      string       `(  @("!" | "-" | "&")`
	Operand *unaryExpr   `   @@ )`
	Postfix *postfixExpr `| @@`
}

type postfixExpr struct {
	Pos     lexer.Position
	Primary *primary     `@@`
	Ops     []*postfixOp `@@*`
}

type postfixOp struct {
	Pos   lexer.Position
	Index *rangeExpr `  "[" @@ "]"`
	Name  string     `| "." @Ident`
	Call  *callArgs  `  @@?`
}

type callArgs struct {
	Open bool         `@"("`
	Args []*rangeExpr `( @@ ( "," @@ )* ","? )? ")"`
}

type primary struct {
	Pos   lexer.Position
	Float *string    `  @Float`
	Int   *string    `| @Int`
	Bool  *string    `| @("true" | "false")`
	None  bool       `| @"None"`
	Str   *string    `| @String`
	Char  *string    `| @Char`
	Raw   *string    `| @RawString`
	Path  []string   `| @Ident ( "::" @Ident )*`
	Array *arrayLit  `| @@`
	Paren *rangeExpr `| "(" @@ ")"`
}

type arrayLit struct {
	Pos   lexer.Position
	Open  bool         `@"["`
	Elems []*rangeExpr `( @@ ( "," @@ )* ","? )? "]"`
}
