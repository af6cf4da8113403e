package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/frac/internal/system/terminal"
)

func TestWidthNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "file"))
	require.NoError(t, err)

	defer f.Close()

	require.Equal(t, 0, terminal.Width(f.Fd()))
}
