//go:build !linux

package core

func setOSThreadName(string) {}
