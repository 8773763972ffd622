//go:build unix

package sink

import (
	"os"

	"golang.org/x/sys/unix"
)

// consoleWidth probes the terminal width with a floor of 10 columns,
// falling back to 80 when the probe fails.
func consoleWidth() int {
	width := 80
	if ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ); err == nil {
		width = int(ws.Col)
	}
	if width < 10 {
		return 10
	}
	return width
}
