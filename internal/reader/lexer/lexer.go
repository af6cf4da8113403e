// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for frac expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Pending returns the location of a token that the scanned text ends
// before completing, such as an unterminated text literal.
func (l *T) Pending() (loc.T, bool) {
	if l.first >= len(l.bytes) {
		return loc.T{}, false
	}

	return l.start(), true
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A token split across buffers is returned once the rest of it is scanned.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, a token containing a newline
		// would be reported as being part of the next line.
		// We fix this in start.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.start())
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// start returns the location of the first character of the current token.
func (l *T) start() loc.T {
	source := l.source

	// Lines are counted as characters are accepted. A token that contains
	// newlines, including a newline token, starts on an earlier line.
	source.Line -= strings.Count(l.Text(), "\n")

	return source
}

// T states.

// afterOperator completes a two character operator that ends in '='.
func afterOperator(single, double token.Class) action {
	return func(l *T) action {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '=':
			l.accept(r, w)
			l.emit(double, l.Text())
		default:
			l.emit(single, l.Text())
		}

		return skipWhitespace
	}
}

func item(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case isDigit(r):
		l.accept(r, w)
		return scanInteger
	case isNameStart(r):
		l.accept(r, w)
		return scanName
	case r == '\'':
		l.accept(r, w)
		return scanText
	}

	l.accept(r, w)

	switch r {
	case '!':
		return afterOperator(token.Error, token.NotEqual)
	case '<':
		return afterOperator('<', token.LessEqual)
	case '=':
		return afterOperator('=', token.Equal)
	case '>':
		return afterOperator('>', token.GreaterEqual)
	case '\n', '(', ')', '*', '+', ',', '-', '/', ';', '^':
		l.emit(r, l.Text())
	default:
		l.emit(token.Error, l.Text())
	}

	return skipWhitespace
}

func scanInteger(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isDigit(r):
			l.accept(r, w)
		default:
			l.emit(token.Integer, l.Text())
			return skipWhitespace
		}
	}
}

func scanName(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isNameStart(r) || isDigit(r):
			l.accept(r, w)
		default:
			l.emit(token.Name, l.Text())
			return skipWhitespace
		}
	}
}

func scanText(l *T) action {
	for {
		r, w := l.peek()
		if r == eof {
			return nil
		}

		l.accept(r, w)

		if r == '\'' {
			l.emit(token.Text, l.Text())
			return skipWhitespace
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			return skipWhitespace
		}

		l.accept(r, w)
		l.skip()
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\r', ' ':
			l.accept(r, w)
			l.skip()
		case '#':
			return skipComment
		default:
			return item
		}
	}
}

func isDigit(r token.Class) bool {
	return '0' <= r && r <= '9'
}

func isNameStart(r token.Class) bool {
	return r == '_' || r < unicode.MaxASCII && unicode.IsLetter(rune(r))
}
