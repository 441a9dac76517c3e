package text

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Source measures text against a real parsed font (TTF or OTF) using
// HarfBuzz shaping, so extents reflect kerning and ligatures rather than
// naive per-rune advances.
//
// Source is not safe for concurrent use: the underlying shaper keeps
// internal buffers. The engine measures from the UI thread only.
type Source struct {
	font   *font.Font
	shaper shaping.HarfbuzzShaper
}

// NewSource parses font data and returns a measurer backed by it.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("text: empty font data")
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Source{font: face.Font}, nil
}

// NewSourceFromFile loads and parses a font file.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Measure implements Measurer. Lines are shaped independently; the extent
// is the widest line by the summed line heights.
func (s *Source) Measure(text string, size float64) Size {
	if text == "" || size <= 0 {
		return Size{}
	}

	var out Size
	for _, line := range strings.Split(text, "\n") {
		w, lineHeight := s.measureLine(line, size)
		if w > out.Width {
			out.Width = w
		}
		out.Height += lineHeight
	}
	return out
}

// measureLine shapes one line and returns its advance width and line
// height in pixels.
func (s *Source) measureLine(line string, size float64) (width, height float64) {
	runes := []rune(line)

	// font.Face wraps the thread-safe *Font with per-use glyph caches;
	// creating one per call is cheap.
	face := font.NewFace(s.font)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.shaper.Shape(input)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	lineHeight := fixedToFloat(output.LineBounds.Ascent) -
		fixedToFloat(output.LineBounds.Descent) +
		fixedToFloat(output.LineBounds.Gap)
	return fixedToFloat(advance), lineHeight
}

// detectScript returns the script of the first non-space rune, defaulting
// to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
