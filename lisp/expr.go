// Package lisp implements a small prefix arithmetic language on top of
// the combinator package:
//
//	(+ 1 2)            => 3
//	(* 2 (- 10 4) 0.5) => 6
//	(max 3 (abs (neg 9)) 4)
//
// Operators are + - * / or the keywords add sub mul div neg abs min max.
// neg and abs take exactly one argument, the others one or more.
package lisp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by Eval when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Expr is a parsed expression: a Number or a *Statement.
type Expr interface {
	String() string
	expr()
}

// Number is a numeric literal.
type Number float64

func (Number) expr() {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Operator names an operation.
type Operator string

const (
	Add Operator = "add"
	Sub Operator = "sub"
	Mul Operator = "mul"
	Div Operator = "div"
	Neg Operator = "neg"
	Abs Operator = "abs"
	Min Operator = "min"
	Max Operator = "max"
)

var symbols = map[Operator]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// Symbol returns the canonical spelling of op.
func (op Operator) Symbol() string {
	if s, ok := symbols[op]; ok {
		return s
	}
	return string(op)
}

// Unary reports whether op takes exactly one argument.
func (op Operator) Unary() bool {
	return op == Neg || op == Abs
}

// Statement applies an operator to its arguments.
type Statement struct {
	Op   Operator
	Args []Expr
}

func (*Statement) expr() {}

func (s *Statement) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(s.Op.Symbol())
	for _, a := range s.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Eval computes the value of e.
func Eval(e Expr) (float64, error) {
	switch e := e.(type) {
	case Number:
		return float64(e), nil
	case *Statement:
		return e.eval()
	default:
		return 0, fmt.Errorf("eval: unexpected expression %T", e)
	}
}

func (s *Statement) eval() (float64, error) {
	if len(s.Args) == 0 {
		return 0, fmt.Errorf("eval %s: no arguments", s)
	}
	if s.Op.Unary() && len(s.Args) != 1 {
		return 0, fmt.Errorf("eval %s: %s takes one argument, got %d", s, s.Op, len(s.Args))
	}

	args := make([]float64, len(s.Args))
	for i, a := range s.Args {
		v, err := Eval(a)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	acc := args[0]
	switch s.Op {
	case Add:
		for _, v := range args[1:] {
			acc += v
		}
	case Sub:
		if len(args) == 1 {
			return -acc, nil
		}
		for _, v := range args[1:] {
			acc -= v
		}
	case Mul:
		for _, v := range args[1:] {
			acc *= v
		}
	case Div:
		if len(args) == 1 {
			args = []float64{1, acc}
			acc = 1
		}
		for _, v := range args[1:] {
			if v == 0 {
				return 0, fmt.Errorf("eval %s: %w", s, ErrDivisionByZero)
			}
			acc /= v
		}
	case Neg:
		acc = -acc
	case Abs:
		acc = math.Abs(acc)
	case Min:
		for _, v := range args[1:] {
			acc = math.Min(acc, v)
		}
	case Max:
		for _, v := range args[1:] {
			acc = math.Max(acc, v)
		}
	default:
		return 0, fmt.Errorf("eval %s: unknown operator %q", s, s.Op)
	}
	return acc, nil
}
