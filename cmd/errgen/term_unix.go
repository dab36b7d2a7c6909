//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// isatty терминал ли на другом конце, только тогда можно использовать ANSI-цвета
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}
