package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// EnableANSI turns on escape sequence processing for f. It only has an effect
// on Windows consoles; elsewhere it returns a no-op restore function.
func EnableANSI(f *os.File) (restore func() error, err error) {
	restore, err = termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(f))
	if err != nil {
		return func() error { return nil }, fmt.Errorf("ANSI support error: %w", err)
	}
	return restore, nil
}

// Fits reports whether the terminal behind f can show a w x h grid plus the
// stats lines. Non-terminals always fit.
func Fits(f *os.File, w, h int) (ok bool, cols, rows int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return true, 0, 0
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return true, 0, 0
	}
	return fitsSize(cols, rows, w, h), cols, rows
}

func fitsSize(cols, rows, w, h int) bool {
	return cols >= w && rows >= h+statsLines
}

// statsLines covers the line break before the first row, the trailing line
// break after the last row and the three stats lines.
const statsLines = 5
