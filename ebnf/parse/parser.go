package parse

import (
	"fmt"
	"sort"

	"github.com/dhamidi/parsec/combinator"
)

// Parser is a compiled grammar.
type Parser struct {
	start string
	root  combinator.Parser[*Node]
	rules map[string]*combinator.Ref[*Node]
}

// Start returns the name of the start production.
func (p *Parser) Start() string {
	return p.start
}

// Rule returns the parser for a single production, or nil.
func (p *Parser) Rule(name string) combinator.Parser[*Node] {
	r, ok := p.rules[name]
	if !ok {
		return nil
	}
	return r
}

// Rules returns the production names in sorted order.
func (p *Parser) Rules() []string {
	names := make([]string, 0, len(p.rules))
	for name := range p.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run parses input from the start production and returns the final
// state. Trailing input is not an error here; see Parse.
func (p *Parser) Run(input string, opts ...combinator.Option) combinator.State[*Node] {
	return combinator.Run(p.root, input, opts...)
}

// Parse parses all of input and returns the syntax tree of the start
// production, with line and column information filled in.
func (p *Parser) Parse(input string, opts ...combinator.Option) (*Node, error) {
	s := p.Run(input, opts...)
	if err := s.Err(); err != nil {
		return nil, err
	}
	if s.Index < s.Target.Len() {
		return nil, &combinator.Error{
			Kind:   combinator.Unconsumed,
			Offset: s.Index,
			Parser: p.start,
			Got:    firstLine(s.Residual()),
		}
	}
	nodes := s.Value().Values()
	if len(nodes) != 1 {
		return nil, fmt.Errorf("parse %s: got %d root nodes, want 1", p.start, len(nodes))
	}
	root := nodes[0]
	root.locate(s.Target)
	return root, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s) && i < 32; i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	if len(s) > 32 {
		return s[:32]
	}
	return s
}
