// wiimedic-icon writes the 128x48 Homebrew Channel icon (icon.png) next to
// the program.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wiimedic-icon/internal/config"
	"wiimedic-icon/internal/icon"
	"wiimedic-icon/internal/ui"
)

func main() {
	dir, err := config.ProgramDir()
	if err != nil {
		ui.Error("Could not locate program directory: " + err.Error())
		os.Exit(1)
	}
	if err := run(os.Stdout, dir); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func run(stdout io.Writer, dir string) error {
	out, err := filepath.Abs(config.OutputPath(dir))
	if err != nil {
		return err
	}
	if err := icon.Render(out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Icon saved: %s (%dx%d)\n", out, icon.Width, icon.Height)
	return nil
}
