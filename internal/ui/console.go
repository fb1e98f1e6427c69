package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI Color Codes
const (
	Reset = "\033[0m"
	Red   = "\033[31m"
)

// Console prints tagged status lines. Colors are only emitted when the
// underlying writer is a terminal.
type Console struct {
	out   io.Writer
	color bool
}

func NewConsole(w io.Writer) *Console {
	c := &Console{out: w}
	if f, ok := w.(*os.File); ok {
		c.color = term.IsTerminal(int(f.Fd()))
	}
	return c
}

var Stderr = NewConsole(os.Stderr)

func (c *Console) Error(msg string) {
	if c.color {
		fmt.Fprintf(c.out, "%s[ERROR] %s%s\n", Red, Reset, msg)
		return
	}
	fmt.Fprintf(c.out, "[ERROR] %s\n", msg)
}

func Error(msg string) {
	Stderr.Error(msg)
}
