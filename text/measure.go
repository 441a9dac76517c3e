// Package text measures annotation text so text boxes can be laid out and
// resized proportionally. The Source measurer shapes real fonts via
// go-text/typesetting; BitmapMeasurer is a dependency-free fallback built
// on the fixed-size basicfont face.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is a measured text extent in pixels.
type Size struct {
	Width, Height float64
}

// Measurer measures a text block at a font size in points. Multi-line
// input ("\n"-separated) measures as the widest line by the summed line
// heights.
type Measurer interface {
	Measure(text string, size float64) Size
}

// BitmapMeasurer approximates text extents with the built-in 7x13 bitmap
// face, linearly scaled to the requested size. Use it when no font file is
// available; the approximation is coarse but monotonic in the font size,
// which is all proportional resize needs.
type BitmapMeasurer struct{}

// nativeSize is the point size the 7x13 bitmap face corresponds to.
const nativeSize = 13.0

// Measure implements Measurer.
func (BitmapMeasurer) Measure(text string, size float64) Size {
	if text == "" || size <= 0 {
		return Size{}
	}
	face := basicfont.Face7x13
	scale := size / nativeSize

	var widest fixed.Int26_6
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := font.MeasureString(face, line); w > widest {
			widest = w
		}
	}
	lineHeight := float64(face.Metrics().Height) / 64

	return Size{
		Width:  float64(widest) / 64 * scale,
		Height: lineHeight * scale * float64(len(lines)),
	}
}
