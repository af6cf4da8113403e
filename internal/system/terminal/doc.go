// Released under an MIT license. See LICENSE.

// Package terminal reports the dimensions of the controlling terminal.
package terminal
