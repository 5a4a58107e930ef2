package lisp

import (
	"strconv"
	"strings"

	c "github.com/dhamidi/parsec/combinator"
)

// keywords maps every accepted operator spelling to its Operator.
var keywords = map[string]Operator{
	"+": Add, "add": Add,
	"-": Sub, "sub": Sub,
	"*": Mul, "mul": Mul,
	"/": Div, "div": Div,
	"neg": Neg,
	"abs": Abs,
	"min": Min,
	"max": Max,
}

var program = newGrammar()

func newGrammar() c.Parser[Expr] {
	ws := c.Skip[string](c.Optional(c.Whitespace()))

	number := c.MapOK(
		c.Sequence(c.Digits(), c.Optional[string](c.Sequence(c.Literal("."), c.Digits()))),
		func(v c.Cardinality[string]) (c.Cardinality[Expr], error) {
			f, err := strconv.ParseFloat(strings.Join(v.Values(), ""), 64)
			if err != nil {
				return c.Cardinality[Expr]{}, err
			}
			return c.One[Expr](Number(f)), nil
		},
	)

	operator := c.Choice(
		c.Literal("+"), c.Literal("-"), c.Literal("*"), c.Literal("/"),
		c.Literal("add"), c.Literal("sub"), c.Literal("mul"), c.Literal("div"),
		c.Literal("neg"), c.Literal("abs"), c.Literal("min"), c.Literal("max"),
	)

	expr := c.NamedRef[Expr]("expr")
	arg := c.Sequence(c.Skip[Expr](c.Whitespace()), c.Parser[Expr](expr))

	statement := c.Chain(operator, func(v c.Cardinality[string]) c.Parser[Expr] {
		op := keywords[v.UnwrapOne()]
		var args c.Parser[Expr] = c.OneOrMore[Expr](arg)
		if op.Unary() {
			args = arg
		}
		return c.MapOK(args, func(v c.Cardinality[Expr]) (c.Cardinality[Expr], error) {
			return c.One[Expr](&Statement{Op: op, Args: v.Values()}), nil
		})
	})

	list := c.Between[Expr, string](
		c.Sequence(c.Literal("("), ws),
		c.Sequence(ws, c.Literal(")")),
		statement,
	)

	expr.Set(c.Choice[Expr](number, list))

	return c.Sequence(c.Skip[Expr](ws), c.Parser[Expr](expr), c.Skip[Expr](ws))
}

// Parse reads a single expression, optionally surrounded by whitespace.
// All of src must be consumed.
func Parse(src string, opts ...c.Option) (Expr, error) {
	v, err := c.ParseAll(program, src, opts...)
	if err != nil {
		return nil, err
	}
	return v.Values()[0], nil
}

// Evaluate parses and evaluates src.
func Evaluate(src string, opts ...c.Option) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return Eval(e)
}
