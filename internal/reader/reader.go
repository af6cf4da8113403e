// Released under an MIT license. See LICENSE.

// Package reader turns lines of input into parsed frac statements.
package reader

import (
	"strings"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
	"github.com/michaelmacinnis/frac/internal/reader/ast"
	"github.com/michaelmacinnis/frac/internal/reader/lexer"
	"github.com/michaelmacinnis/frac/internal/reader/parser"
)

// T (reader) encapsulates the frac lexer and parser.
type T struct {
	i chan string
	o chan []ast.Node
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader. The name labels the source in error messages.
func New(name string) *T {
	r := &T{
		i: make(chan string),
		o: make(chan []ast.Node),
		s: lexer.New(name),
	}

	var v []ast.Node

	r.p = parser.New(func(n ast.Node) {
		v = append(v, n)
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- v

			v = nil

			if !r.next() {
				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Close terminates the reader. Scan must not be called after Close.
func (r *reader) Close() {
	close(r.i)
}

// Pending returns the location of a statement left incomplete by the lines
// scanned so far. Only an unterminated text literal can continue past the
// end of a line.
func (r *reader) Pending() (loc.T, bool) {
	return r.s.Pending()
}

// Scan reads the line and returns the statements it completes.
// Statements that could not be parsed are returned as *ast.Error values.
func (r *reader) Scan(line string) []ast.Node {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.i <- line

	return <-r.o
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	if r.next() {
		r.p.Parse()
	}

	close(r.o)
}
