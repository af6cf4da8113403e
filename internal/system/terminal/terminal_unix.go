// Released under an MIT license. See LICENSE.

//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// Width returns the number of columns of the terminal fd, or 0 if fd is
// not a terminal.
func Width(fd uintptr) int {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}

	return int(ws.Col)
}
