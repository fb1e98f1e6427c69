//go:build !windows

package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FontDirs returns the system font directories searched for a font file,
// in lookup order.
func FontDirs() []string {
	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		dirs := []string{
			"/Library/Fonts",
			"/System/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	}

	// Linux and the BSDs follow the XDG base directory layout
	var dirs []string
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "fonts"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(d, "fonts"))
	}

	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".fonts"))
	}
	return dirs
}
