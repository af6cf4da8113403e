// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed frac statements.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/frac/internal/common/interface/cell"
	"github.com/michaelmacinnis/frac/internal/common/interface/literal"
	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/type/num"
	"github.com/michaelmacinnis/frac/internal/common/type/str"
	"github.com/michaelmacinnis/frac/internal/common/validate"
	"github.com/michaelmacinnis/frac/internal/engine/commands"
	"github.com/michaelmacinnis/frac/internal/reader"
	"github.com/michaelmacinnis/frac/internal/reader/ast"
	"github.com/michaelmacinnis/frac/internal/reader/parser"
)

// Last is the name of the variable holding the most recent value.
const Last = "_"

const defaultWidth = 80

// ErrUndefined is wrapped by errors for unknown names and functions.
var ErrUndefined = errors.New("undefined")

// Config controls how values are displayed.
type Config struct {
	Float bool       // Follow numbers with a decimal approximation.
	Mixed bool       // Display numbers as mixed numbers.
	Width func() int // Output width for help. Defaults to 80 columns.
}

// T (engine) holds builtins and variables for evaluating frac statements.
type T struct {
	config    Config
	functions map[string]commands.Function
	operators map[string]commands.Operator
	variables map[string]cell.I
}

type engine = T

// New creates a new engine.
func New(c Config) *T {
	e := &T{
		config:    c,
		functions: commands.Functions(),
		operators: commands.Operators(),
		variables: map[string]cell.I{},
	}

	e.functions["help"] = e.help

	return e
}

// Display formats the value c for output.
func (e *engine) Display(c cell.I) string {
	if !num.Is(c) {
		return c.String()
	}

	f := num.To(c).Fraction()

	s := f.String()
	if e.config.Mixed {
		s = f.Mixed()
	}

	if e.config.Float && !f.IsInteger() {
		s += " (~" + strconv.FormatFloat(f.Float(), 'f', -1, 64) + ")"
	}

	return s
}

// Evaluate evaluates the statement n.
// Assignments produce no value. Any other value becomes the value of _.
// Errors are reported as *ast.Error values carrying the failing location.
func (e *engine) Evaluate(n ast.Node) (cell.I, error) {
	v, err := e.evaluate(n)
	if err != nil {
		return nil, err
	}

	if v != nil {
		e.variables[Last] = v
	}

	return v, nil
}

// Names returns the names of all functions and variables, sorted.
func (e *engine) Names() []string {
	names := make([]string, 0, len(e.functions)+len(e.variables))

	for k := range e.functions {
		names = append(names, k)
	}

	for k := range e.variables {
		if _, ok := e.functions[k]; !ok {
			names = append(names, k)
		}
	}

	sort.Strings(names)

	return names
}

// Run evaluates each statement, writing values to out and errors to errs.
// It returns false if any statement failed.
func (e *engine) Run(nodes []ast.Node, out, errs io.Writer) bool {
	ok := true

	for _, n := range nodes {
		v, err := e.Evaluate(n)
		if err != nil {
			fmt.Fprintln(errs, err)

			ok = false

			continue
		}

		if v != nil {
			fmt.Fprintln(out, e.Display(v))
		}
	}

	return ok
}

// Source reads and runs statements from in until end of input.
// The name labels locations in error messages.
func (e *engine) Source(name string, in io.Reader, out, errs io.Writer) (bool, error) {
	r := reader.New(name)
	defer r.Close()

	ok := true

	s := bufio.NewScanner(in)
	for s.Scan() {
		if !e.Run(r.Scan(s.Text()), out, errs) {
			ok = false
		}
	}

	err := s.Err()
	if err != nil {
		return ok, err
	}

	if at, pending := r.Pending(); pending {
		fmt.Fprintln(errs, Unterminated(at))

		ok = false
	}

	return ok, nil
}

// Unterminated is the error for input that ends inside a text literal.
func Unterminated(at loc.T) error {
	return &ast.Error{At: at, Err: fmt.Errorf("%w: unterminated text", parser.ErrSyntax)}
}

func (e *engine) evaluate(n ast.Node) (cell.I, error) {
	switch n := n.(type) {
	case *ast.Assign:
		v, err := e.evaluate(n.Value)
		if err != nil {
			return nil, err
		}

		e.variables[n.Name] = v

		return nil, nil

	case *ast.Binary:
		l, err := e.evaluate(n.Left)
		if err != nil {
			return nil, err
		}

		r, err := e.evaluate(n.Right)
		if err != nil {
			return nil, err
		}

		op, ok := e.operators[n.Op]
		if !ok {
			return nil, locate(n, fmt.Errorf("%w operator: %s", ErrUndefined, n.Op))
		}

		v, err := op(l, r)

		return v, locate(n, err)

	case *ast.Call:
		f, ok := e.functions[n.Name]
		if !ok {
			return nil, locate(n, fmt.Errorf("%w function: %s", ErrUndefined, n.Name))
		}

		args := make([]cell.I, len(n.Args))

		for i, a := range n.Args {
			v, err := e.evaluate(a)
			if err != nil {
				return nil, err
			}

			args[i] = v
		}

		v, err := f(args)
		if err != nil {
			return nil, locate(n, fmt.Errorf("%s: %w", n.Name, err))
		}

		return v, nil

	case *ast.Error:
		return nil, n

	case *ast.Integer:
		return num.Int(n.Value), nil

	case *ast.Name:
		v, ok := e.variables[n.Name]
		if !ok {
			return nil, locate(n, fmt.Errorf("%w: %s", ErrUndefined, n.Name))
		}

		return v, nil

	case *ast.Text:
		return str.New(n.Value), nil

	case *ast.Unary:
		v, err := e.evaluate(n.Operand)
		if err != nil {
			return nil, err
		}

		v, err = commands.Negate(v)

		return v, locate(n, err)
	}

	return nil, locate(n, fmt.Errorf("unexpected statement %s", n))
}

// help(pattern?) lists the builtin functions whose names match pattern.
func (e *engine) help(args []cell.I) (cell.I, error) {
	err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	pattern := "*"

	if len(args) == 1 {
		if !str.Is(args[0]) {
			return nil, fmt.Errorf("pattern must be text, not %s", args[0].Name())
		}

		pattern = args[0].String()
	}

	var names []string

	for k := range e.functions {
		m, err := adapted.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %s: %w", literal.String(args[0]), err)
		}

		if m {
			names = append(names, k)
		}
	}

	sort.Strings(names)

	width := defaultWidth
	if e.config.Width != nil {
		if w := e.config.Width(); w > 0 {
			width = w
		}
	}

	return str.New(columns(names, width)), nil
}

// columns lays out names in columns, top to bottom then left to right.
func columns(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	w := 0
	for _, s := range names {
		if len(s) > w {
			w = len(s)
		}
	}

	w += 2

	cols := width / w
	if cols < 1 {
		cols = 1
	}

	rows := (len(names) + cols - 1) / cols

	lines := make([]string, rows)

	for r := range lines {
		var b strings.Builder

		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(names) {
				break
			}

			b.WriteString(names[i])
			b.WriteString(strings.Repeat(" ", w-len(names[i])))
		}

		lines[r] = strings.TrimRight(b.String(), " ")
	}

	return strings.Join(lines, "\n")
}

func locate(n ast.Node, err error) error {
	if err == nil {
		return nil
	}

	return &ast.Error{At: n.Source(), Err: err}
}
