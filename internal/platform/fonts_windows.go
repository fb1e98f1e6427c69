//go:build windows

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// FontDirs returns the system font directories searched for a font file,
// in lookup order: the machine-wide Fonts folder, then per-user fonts.
func FontDirs() []string {
	var dirs []string

	if fontsDir, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0); err == nil {
		dirs = append(dirs, fontsDir)
	} else if windir := os.Getenv("WINDIR"); windir != "" {
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
	}

	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
	}
	return dirs
}
