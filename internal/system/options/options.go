// Released under an MIT license. See LICENSE.

// Package options parses frac's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `frac

Usage:
  frac [-m] [-f FILE] SCRIPT...
  frac [-m] [-f FILE] -c EXPRESSION
  frac [-m] [-f FILE] [-s]
  frac -d
  frac -h
  frac -v

Arguments:
  SCRIPT  Path to a frac script.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  -d, --demo                Run the built-in demonstration.
  -f, --config=FILE         Read settings from FILE.
  -m, --mixed               Display numbers as mixed numbers.
  -s, --stdin               Read statements from stdin without line editing.
  -h, --help                Display this help.
  -v, --version             Print frac version.

If frac's stdin is a TTY, and frac was invoked with no operands, frac reads
statements interactively. Otherwise, statements are read from stdin.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string   // Expression passed with -c.
	Config      string   // Settings file passed with -f.
	Demo        bool     // Run the demonstration script.
	Interactive bool     // Read statements with line editing.
	Mixed       bool     // Display numbers as mixed numbers.
	Scripts     []string // Script files to run in order.
}

// Parse parses os.Args. It prints help or the version and exits when asked.
func Parse(version string) (*T, error) {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	return parse(p, os.Args[1:], version, isatty.IsTerminal(os.Stdin.Fd()))
}

func parse(p *docopt.Parser, argv []string, version string, tty bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	t := &T{}

	t.Command, _ = opts.String("--command")
	t.Config, _ = opts.String("--config")
	t.Demo, _ = opts.Bool("--demo")
	t.Mixed, _ = opts.Bool("--mixed")
	t.Scripts, _ = opts["SCRIPT"].([]string)

	stdin, _ := opts.Bool("--stdin")

	t.Interactive = tty && !stdin && !t.Demo && t.Command == "" && len(t.Scripts) == 0

	return t, nil
}
