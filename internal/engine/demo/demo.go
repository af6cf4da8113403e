// Released under an MIT license. See LICENSE.

// Package demo provides the script run by frac -d.
package demo

import _ "embed" // Blank import required by embed.

//go:embed demo.frac
var script string //nolint:gochecknoglobals

// Name labels the demo script in error messages.
const Name = "demo"

// Script returns the demo script.
func Script() string {
	return script
}
