// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for frac expressions.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
	"github.com/michaelmacinnis/frac/internal/reader/ast"
)

// ErrSyntax is wrapped by every error the parser reports.
var ErrSyntax = errors.New("syntax error")

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(ast.Node)  // Function to call to emit a parsed statement.
	item  func() *token.T // Function to call to get another token.
	last  loc.T           // Location of the last consumed token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of statements.
func New(emit func(ast.Node), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits statements until there are no more tokens.
// A statement that cannot be parsed is emitted as an *ast.Error and the
// rest of its line is discarded.
func (p *T) Parse() {
	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n', ';') {
			p.consume()

			continue
		}

		p.emit(p.line())
	}
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil
	p.last = t.Source()

	return t
}

func (p *T) expect(cs ...token.Class) *token.T {
	if p.peek().Is(cs...) {
		return p.consume()
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n)

	for i, c := range cs {
		e[i] = c.String()
	}

	l := e[n-1]
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e[:n-1], ", ") + l

	p.fail("expected " + l + ", got " + p.describe())

	return nil
}

func (p *T) describe() string {
	t := p.peek()
	if t == nil {
		return "end of input"
	}

	switch t.Class() {
	case '\n':
		return "newline"
	case token.Integer, token.Name, token.Text:
		return strings.ToLower(t.Class().String()) + " " + t.Value()
	}

	return "'" + t.Value() + "'"
}

func (p *T) fail(msg string) {
	at := p.last
	if t := p.peek(); t != nil {
		at = t.Source()
	}

	panic(&ast.Error{At: at, Err: fmt.Errorf("%w: %s", ErrSyntax, msg)})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) skipLine() {
	for t := p.peek(); t != nil; t = p.peek() {
		p.consume()

		if t.Is('\n') {
			return
		}
	}
}

// T state functions.

// <line> ::= <statement> (';' | '\n') .
func (p *T) line() (n ast.Node) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*ast.Error)
		if !ok {
			panic(r)
		}

		p.skipLine()

		n = e
	}()

	n = p.statement()

	p.expect(';', '\n')

	return n
}

// <statement> ::= Name '=' <comparison> | <comparison> .
func (p *T) statement() ast.Node {
	n := p.comparison()

	if v, ok := n.(*ast.Name); ok && p.peek().Is('=') {
		p.consume()

		return &ast.Assign{At: v.At, Name: v.Name, Value: p.comparison()}
	}

	return n
}

// <comparison> ::= <sum> (('==' | '!=' | '<' | '<=' | '>' | '>=') <sum>)? .
func (p *T) comparison() ast.Node {
	n := p.sum()

	t := p.peek()
	if t.Is(token.Equal, token.NotEqual, '<', token.LessEqual, '>', token.GreaterEqual) {
		p.consume()

		n = &ast.Binary{At: t.Source(), Op: t.Value(), Left: n, Right: p.sum()}
	}

	return n
}

// <sum> ::= <product> (('+' | '-') <product>)* .
func (p *T) sum() ast.Node {
	n := p.product()

	for t := p.peek(); t.Is('+', '-'); t = p.peek() {
		p.consume()

		n = &ast.Binary{At: t.Source(), Op: t.Value(), Left: n, Right: p.product()}
	}

	return n
}

// <product> ::= <unary> (('*' | '/') <unary>)* .
func (p *T) product() ast.Node {
	n := p.unary()

	for t := p.peek(); t.Is('*', '/'); t = p.peek() {
		p.consume()

		n = &ast.Binary{At: t.Source(), Op: t.Value(), Left: n, Right: p.unary()}
	}

	return n
}

// <unary> ::= '-' <unary> | <power> .
func (p *T) unary() ast.Node {
	t := p.peek()
	if t.Is('-') {
		p.consume()

		return &ast.Unary{At: t.Source(), Op: t.Value(), Operand: p.unary()}
	}

	return p.power()
}

// <power> ::= <primary> ('^' <unary>)? .
func (p *T) power() ast.Node {
	n := p.primary()

	t := p.peek()
	if t.Is('^') {
		p.consume()

		n = &ast.Binary{At: t.Source(), Op: t.Value(), Left: n, Right: p.unary()}
	}

	return n
}

// <primary> ::= Integer | Text | Name | <call> | '(' <comparison> ')' .
func (p *T) primary() ast.Node {
	t := p.peek()

	switch {
	case t.Is(token.Integer):
		i, err := strconv.ParseInt(t.Value(), 10, 64)
		if err != nil {
			p.fail("integer " + t.Value() + " out of range")
		}

		p.consume()

		return &ast.Integer{At: t.Source(), Value: i}

	case t.Is(token.Text):
		p.consume()

		v := t.Value()

		return &ast.Text{At: t.Source(), Value: v[1 : len(v)-1]}

	case t.Is(token.Name):
		p.consume()

		if p.peek().Is('(') {
			return p.call(t)
		}

		return &ast.Name{At: t.Source(), Name: t.Value()}

	case t.Is('('):
		p.consume()

		n := p.comparison()

		p.expect(')')

		return n
	}

	p.fail("unexpected " + p.describe())

	return nil
}

// <call> ::= Name '(' (<comparison> (',' <comparison>)*)? ')' .
func (p *T) call(name *token.T) ast.Node {
	p.consume()

	c := &ast.Call{At: name.Source(), Name: name.Value()}

	if p.peek().Is(')') {
		p.consume()

		return c
	}

	for {
		c.Args = append(c.Args, p.comparison())

		if p.expect(',', ')').Is(')') {
			return c
		}
	}
}
