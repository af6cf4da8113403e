// Released under an MIT license. See LICENSE.

// Package ast defines the expression trees produced by the frac parser.
package ast

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
)

// Node is any parsed statement or expression.
//
// String returns source text that parses back to an identical tree.
type Node interface {
	Source() loc.T
	String() string
}

// Assign binds the value of an expression to a name.
type Assign struct {
	At    loc.T
	Name  string
	Value Node
}

// Binary applies an infix operator.
type Binary struct {
	At    loc.T
	Op    string
	Left  Node
	Right Node
}

// Call invokes a builtin function.
type Call struct {
	At   loc.T
	Name string
	Args []Node
}

// Error is emitted in place of a statement that could not be parsed.
type Error struct {
	At  loc.T
	Err error
}

// Integer is an integer literal.
type Integer struct {
	At    loc.T
	Value int64
}

// Name refers to a variable.
type Name struct {
	At   loc.T
	Name string
}

// Text is a single-quoted text literal.
type Text struct {
	At    loc.T
	Value string
}

// Unary applies a prefix operator.
type Unary struct {
	At      loc.T
	Op      string
	Operand Node
}

func (n *Assign) Source() loc.T { return n.At }
func (n *Binary) Source() loc.T { return n.At }
func (n *Call) Source() loc.T { return n.At }
func (n *Error) Source() loc.T { return n.At }
func (n *Integer) Source() loc.T { return n.At }
func (n *Name) Source() loc.T { return n.At }
func (n *Text) Source() loc.T { return n.At }
func (n *Unary) Source() loc.T { return n.At }

func (n *Assign) String() string {
	return n.Name + " = " + n.Value.String()
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

// Error returns the error message prefixed with its location.
func (n *Error) Error() string {
	return n.At.String() + ": " + n.Err.Error()
}

func (n *Error) String() string {
	return n.Error()
}

// Unwrap returns the underlying error.
func (n *Error) Unwrap() error {
	return n.Err
}

func (n *Integer) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *Name) String() string {
	return n.Name
}

func (n *Text) String() string {
	return "'" + n.Value + "'"
}

func (n *Unary) String() string {
	return "(" + n.Op + n.Operand.String() + ")"
}
