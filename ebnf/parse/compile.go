package parse

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dhamidi/parsec/combinator"
	"golang.org/x/exp/ebnf"
)

// Option configures Compile.
type Option func(*compiler)

// WithWhitespace makes non-lexical productions skip ASCII whitespace
// before each terminal and each reference to a lexical production, and
// lets the input end with whitespace.
func WithWhitespace() Option {
	return func(c *compiler) {
		c.whitespace = true
	}
}

type compiler struct {
	grammar    ebnf.Grammar
	rules      map[string]*combinator.Ref[*Node]
	whitespace bool
}

// Compile verifies g from start and turns every production into a
// combinator parser. Productions may refer to each other, and to
// themselves, in any order; left recursion is not supported.
//
// Alternatives are tried in order and the first that matches wins, so
// longer alternatives sharing a prefix with shorter ones must come first.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*Parser, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		grammar: g,
		rules:   make(map[string]*combinator.Ref[*Node], len(g)),
	}
	for _, opt := range opts {
		opt(c)
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
		c.rules[name] = combinator.NamedRef[*Node](name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, err := c.production(name, g[name])
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", name, err)
		}
		c.rules[name].Set(p)
	}

	var root combinator.Parser[*Node] = c.rules[start]
	if c.whitespace {
		root = combinator.Sequence(root, c.skipSpace())
	}

	return &Parser{start: start, root: root, rules: c.rules}, nil
}

func (c *compiler) production(name string, prod *ebnf.Production) (combinator.Parser[*Node], error) {
	lexical := IsLexical(name)

	var body combinator.Parser[*Node]
	if prod.Expr == nil {
		body = empty
	} else {
		var err error
		body, err = c.expr(prod.Expr, lexical)
		if err != nil {
			return nil, err
		}
	}

	if lexical {
		return combinator.MapSpan(body, func(sp combinator.Span, v combinator.Cardinality[*Node]) (combinator.Cardinality[*Node], error) {
			text := ""
			for _, n := range v.Values() {
				text += n.Text
			}
			return combinator.One(NewTerminal(name, text, sp.Start, sp.End)), nil
		}), nil
	}

	return combinator.MapSpan(body, func(sp combinator.Span, v combinator.Cardinality[*Node]) (combinator.Cardinality[*Node], error) {
		node := NewNonTerminal(name)
		node.Start.Offset, node.End.Offset = sp.Start, sp.End
		for _, child := range v.Values() {
			node.AddChild(child)
		}
		return combinator.One(node), nil
	}), nil
}

func (c *compiler) expr(expr ebnf.Expression, lexical bool) (combinator.Parser[*Node], error) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return c.spaced(token(e.String), lexical), nil

	case *ebnf.Range:
		lo, hi := e.Begin.String, e.End.String
		if len(lo) != 1 || len(hi) != 1 || lo[0] > hi[0] {
			return nil, fmt.Errorf("range %q … %q: bounds must be single ASCII characters", lo, hi)
		}
		return c.spaced(terminal(strconv.Quote(lo+"…"+hi), combinator.CharRange(lo[0], hi[0])), lexical), nil

	case ebnf.Sequence:
		items, err := c.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		return combinator.Sequence(items...), nil

	case ebnf.Alternative:
		items, err := c.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		return combinator.Choice(items...), nil

	case *ebnf.Repetition:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return combinator.ZeroOrMore(body), nil

	case *ebnf.Option:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return combinator.Optional(body), nil

	case *ebnf.Group:
		return c.expr(e.Body, lexical)

	case *ebnf.Name:
		rule, ok := c.rules[e.String]
		if !ok {
			return nil, fmt.Errorf("undefined production %s", e.String)
		}
		if IsLexical(e.String) {
			return c.spaced(rule, lexical), nil
		}
		return rule, nil

	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (c *compiler) exprs(list []ebnf.Expression, lexical bool) ([]combinator.Parser[*Node], error) {
	out := make([]combinator.Parser[*Node], 0, len(list))
	for _, item := range list {
		p, err := c.expr(item, lexical)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// spaced prefixes p with optional whitespace when called from a
// non-lexical production and whitespace skipping is enabled.
func (c *compiler) spaced(p combinator.Parser[*Node], lexical bool) combinator.Parser[*Node] {
	if lexical || !c.whitespace {
		return p
	}
	return combinator.Sequence(c.skipSpace(), p)
}

func (c *compiler) skipSpace() combinator.Parser[*Node] {
	return combinator.Skip[*Node](combinator.Optional(combinator.Whitespace()))
}

var empty = combinator.Func[*Node](func(s combinator.State[*Node]) combinator.State[*Node] {
	if s.Failed() {
		return s
	}
	return s.Ok(s.Index, combinator.Many[*Node]())
})

func token(text string) combinator.Parser[*Node] {
	return terminal(strconv.Quote(text), combinator.Literal(text))
}

func terminal(kind string, p combinator.Parser[string]) combinator.Parser[*Node] {
	return combinator.MapSpan(p, func(sp combinator.Span, v combinator.Cardinality[string]) (combinator.Cardinality[*Node], error) {
		return combinator.One(NewTerminal(kind, v.UnwrapOne(), sp.Start, sp.End)), nil
	})
}
