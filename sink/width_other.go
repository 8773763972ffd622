//go:build !unix && !windows

package sink

func consoleWidth() int { return 80 }
