package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultWidth = 80

// configureColor switches colored output off unless w is a terminal.
func configureColor(w io.Writer, noColor bool) {
	if noColor {
		color.NoColor = true
		return
	}
	f, ok := w.(*os.File)
	color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the number of columns of w, if w is a terminal, or
// defaultWidth otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
