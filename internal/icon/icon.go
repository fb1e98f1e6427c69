// Package icon draws the 128x48 WiiMedic launcher icon.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"wiimedic-icon/internal/config"
	"wiimedic-icon/internal/fonts"
)

const (
	Width  = 128
	Height = 48

	BorderWidth = 2

	// Cross center, half-width of an arm and half-length of an arm.
	CrossX   = 24
	CrossY   = 24
	CrossArm = 8
	CrossLen = 14

	Title    = "WiiMedic"
	Subtitle = "System Diagnostics"

	// Top-left text anchors.
	TitleX, TitleY       = 46, 8
	SubtitleX, SubtitleY = 46, 28
)

var (
	Background    = color.RGBA{15, 15, 15, 255}
	BorderColor   = color.RGBA{0, 190, 80, 255}
	CrossColor    = color.RGBA{0, 210, 90, 255}
	TitleColor    = color.RGBA{255, 255, 255, 255}
	SubtitleColor = color.RGBA{140, 200, 140, 255}
)

// Render draws the icon with the system font (or the built-in fallback)
// and writes it to path as PNG.
func Render(path string) error {
	faces := fonts.LoadFaces(config.FontName, nil)
	defer faces.Close()

	return Save(Draw(faces), path)
}

// Draw paints the icon onto a new canvas: border, vertical bar, horizontal
// bar, title, subtitle. Later steps overwrite earlier ones.
func Draw(faces *fonts.Faces) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	drawBorder(img, BorderWidth, BorderColor)

	fillRect(img, CrossX-CrossArm, CrossY-CrossLen, CrossX+CrossArm, CrossY+CrossLen, CrossColor)
	fillRect(img, CrossX-CrossLen, CrossY-CrossArm, CrossX+CrossLen, CrossY+CrossArm, CrossColor)

	// Text never paints over the border.
	inner := img.SubImage(img.Bounds().Inset(BorderWidth)).(*image.RGBA)
	drawText(inner, faces.Title, TitleX, TitleY, Title, TitleColor)
	drawText(inner, faces.Subtitle, SubtitleX, SubtitleY, Subtitle, SubtitleColor)

	return img
}

// Save creates or truncates path and encodes img into it.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// fillRect fills the rectangle with corners (x0,y0) and (x1,y1), both
// included.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawBorder(img *image.RGBA, width int, c color.Color) {
	b := img.Bounds()
	maxX, maxY := b.Max.X-1, b.Max.Y-1
	fillRect(img, b.Min.X, b.Min.Y, maxX, b.Min.Y+width-1, c) // top
	fillRect(img, b.Min.X, maxY-width+1, maxX, maxY, c)       // bottom
	fillRect(img, b.Min.X, b.Min.Y, b.Min.X+width-1, maxY, c) // left
	fillRect(img, maxX-width+1, b.Min.Y, maxX, maxY, c)       // right
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst draw.Image, face font.Face, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
