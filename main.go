// Released under an MIT license. See LICENSE.

/*
Frac is a calculator for exact fractions.

Every value is kept as a numerator and denominator in lowest terms:

	frac> 1/2 + 1/3
	5 / 6
	frac> _ * 6/5
	1
	frac> mixed(-7/2)
	-4 + 1 / 2

Run frac -h for options and help() at the prompt for a list of functions.

Frac is released under an MIT-style license.
*/
package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/frac/internal/engine"
	"github.com/michaelmacinnis/frac/internal/engine/demo"
	"github.com/michaelmacinnis/frac/internal/system/config"
	"github.com/michaelmacinnis/frac/internal/system/options"
	"github.com/michaelmacinnis/frac/internal/system/terminal"
	"github.com/michaelmacinnis/frac/internal/ui"
)

const version = "frac 0.1.0"

var errFailed = errors.New("one or more statements failed")

func main() {
	logger := log.New(os.Stderr, "frac: ", 0)

	opts, err := options.Parse(version)
	if err != nil {
		logger.Fatal(err)
	}

	err = run(opts, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, errFailed) {
			logger.Print(err)
		}

		os.Exit(1)
	}
}

func run(opts *options.T, in io.Reader, out, errs io.Writer) error {
	path := config.Path(opts.Config)

	c, err := config.Load(path, opts.Config != "")
	if err != nil {
		return err
	}

	e := engine.New(engine.Config{
		Float: c.Float,
		Mixed: c.Mixed || opts.Mixed,
		Width: func() int {
			return terminal.Width(os.Stdout.Fd())
		},
	})

	switch {
	case opts.Demo:
		return source(e, demo.Name, strings.NewReader(demo.Script()), out, errs)

	case opts.Command != "":
		return source(e, "command", strings.NewReader(opts.Command), out, errs)

	case len(opts.Scripts) > 0:
		for _, s := range opts.Scripts {
			err = script(e, s, out, errs)
			if err != nil {
				return err
			}
		}

		return nil

	case opts.Interactive:
		return ui.Run(e, c.Prompt, c.History)
	}

	return source(e, "stdin", in, out, errs)
}

func script(e *engine.T, path string, out, errs io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return source(e, path, f, out, errs)
}

func source(e *engine.T, name string, in io.Reader, out, errs io.Writer) error {
	ok, err := e.Source(name, in, out, errs)
	if err != nil {
		return err
	}

	if !ok {
		return errFailed
	}

	return nil
}
