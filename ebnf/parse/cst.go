// Package parse compiles EBNF grammars into combinator parsers producing
// concrete syntax trees.
package parse

import (
	"strings"

	"github.com/dhamidi/parsec/combinator"
)

// Node represents a node in the concrete syntax tree.
// Terminal nodes have Text and no Children; interior nodes have Children.
type Node struct {
	Kind     string              `json:"kind" yaml:"kind"`
	Text     string              `json:"text,omitempty" yaml:"text,omitempty"`
	Start    combinator.Position `json:"start" yaml:"start"`
	End      combinator.Position `json:"end" yaml:"end"`
	Children []*Node             `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsTerminal returns true if this is a leaf node.
func (n *Node) IsTerminal() bool {
	return n.Children == nil
}

// AddChild appends a child node and updates the span.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Start = child.Start
	}
	n.End = child.End
}

// NewTerminal creates a terminal node covering [start, end).
func NewTerminal(kind, text string, start, end int) *Node {
	return &Node{
		Kind:  kind,
		Text:  text,
		Start: combinator.Position{Offset: start},
		End:   combinator.Position{Offset: end},
	}
}

// NewNonTerminal creates an interior node.
func NewNonTerminal(kind string) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
	}
}

// Walk calls fn for n and all of its descendants, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// String renders the tree as an s-expression, terminals quoted.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.IsTerminal() {
		sb.WriteString(n.Kind)
		sb.WriteByte(' ')
		sb.WriteString(quote(n.Text))
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind)
	for _, c := range n.Children {
		sb.WriteByte(' ')
		if c.IsTerminal() {
			sb.WriteString(quote(c.Text))
		} else {
			c.write(sb)
		}
	}
	sb.WriteByte(')')
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// locate fills line and column information from offsets.
func (n *Node) locate(in *combinator.Input) {
	n.Walk(func(m *Node) {
		m.Start = in.Position(m.Start.Offset)
		m.End = in.Position(m.End.Offset)
	})
}
