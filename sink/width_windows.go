//go:build windows

package sink

import "golang.org/x/sys/windows"

// consoleWidth probes the console buffer width with a floor of 10
// columns, falling back to 80 when the probe fails.
func consoleWidth() int {
	width := 80
	if h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE); err == nil {
		var info windows.ConsoleScreenBufferInfo
		if err := windows.GetConsoleScreenBufferInfo(h, &info); err == nil {
			width = int(info.Size.X) - 1
		}
	}
	if width < 10 {
		return 10
	}
	return width
}
