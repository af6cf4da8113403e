// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for frac.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/frac/internal/engine"
	"github.com/michaelmacinnis/frac/internal/reader"
	"github.com/michaelmacinnis/frac/internal/reader/ast"
	"github.com/michaelmacinnis/frac/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed statements.
type Evaluator interface {
	Names() []string
	Run(nodes []ast.Node, out, errs io.Writer) bool
}

// Run prompts for lines and sends the statements they complete to e
// until end of input. The history file at path is loaded first and saved
// on the way out, if path is not empty.
func Run(e Evaluator, prompt, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete(e.Names))

	if path != "" {
		err := history.Load(path, cli.ReadHistory)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	r := reader.New("frac")

	for {
		line, err := cli.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Discard any incomplete statement.
			r.Close()
			r = reader.New("frac")

			continue
		}

		if err != nil {
			at, pending := r.Pending()

			r.Close()

			if !errors.Is(err, io.EOF) {
				return err
			}

			fmt.Println()

			if pending {
				fmt.Fprintln(os.Stderr, engine.Unterminated(at))
			}

			break
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		e.Run(r.Scan(line), os.Stdout, os.Stderr)
	}

	if path == "" {
		return nil
	}

	return history.Save(path, cli.WriteHistory)
}

// complete returns a word completer that completes the name before the cursor.
func complete(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		rs := []rune(line)
		if pos > len(rs) {
			pos = len(rs)
		}

		h := rs[:pos]
		t := string(rs[pos:])

		i := pos
		for i > 0 && isName(h[i-1]) {
			i--
		}

		prefix := string(h[i:])
		if prefix == "" || unicode.IsDigit(h[i]) {
			return string(h), nil, t
		}

		var cs []string

		for _, n := range names() {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n)
			}
		}

		return string(h[:i]), cs, t
	}
}

func isName(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
