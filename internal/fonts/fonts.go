// Package fonts loads the scalable face used for the icon text and falls
// back to a built-in bitmap face when it cannot.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"wiimedic-icon/internal/platform"
)

const (
	TitleSize    = 16
	SubtitleSize = 9
)

var ErrNotFound = errors.New("font not found")

// Fallback is the fixed-size face substituted for every text line when the
// scalable font is unavailable. It has no independent sizes.
var Fallback font.Face = basicfont.Face7x13

// Faces holds the two faces the icon text is drawn with.
type Faces struct {
	Title    font.Face
	Subtitle font.Face
	Fallback bool
}

// LoadFaces loads name at the title and subtitle sizes. If either size
// fails, both lines use Fallback. The failure is not reported unless
// logger is non-nil.
func LoadFaces(name string, logger *log.Logger) *Faces {
	title, err := Load(name, TitleSize)
	if err != nil {
		return fallback(logger, err)
	}
	subtitle, err := Load(name, SubtitleSize)
	if err != nil {
		title.Close()
		return fallback(logger, err)
	}
	return &Faces{Title: title, Subtitle: subtitle}
}

func fallback(logger *log.Logger, cause error) *Faces {
	if logger != nil {
		logger.Printf("using built-in font: %v", cause)
	}
	return &Faces{Title: Fallback, Subtitle: Fallback, Fallback: true}
}

// Close releases the parsed faces. The fallback face is shared and is
// left alone.
func (f *Faces) Close() error {
	if f.Fallback {
		return nil
	}
	return errors.Join(f.Title.Close(), f.Subtitle.Close())
}

// Load resolves name with Locate and parses it as a TrueType/OpenType face
// at size pixels.
func Load(name string, size float64) (font.Face, error) {
	path, err := Locate(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s face at size %v: %w", path, size, err)
	}
	return face, nil
}

// Locate returns the path of the font file called name. name is tried as
// given first, then every system font directory is searched recursively
// for a file with the same base name, ignoring case.
func Locate(name string) (string, error) {
	if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
		return name, nil
	}
	if filepath.Base(name) != name {
		// an explicit path that does not exist is not searched for
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	for _, dir := range platform.FontDirs() {
		if path := findIn(dir, name); path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

func findIn(dir, name string) string {
	var found string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable or missing directories are skipped
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}
