package text

import (
	"math"
	"testing"
)

func TestBitmapMeasurer_Basics(t *testing.T) {
	var m BitmapMeasurer

	if got := m.Measure("", 16); got != (Size{}) {
		t.Errorf("empty text measured %+v, want zero", got)
	}
	if got := m.Measure("hello", 0); got != (Size{}) {
		t.Errorf("zero size measured %+v, want zero", got)
	}

	s := m.Measure("hello", nativeSize)
	if s.Width <= 0 || s.Height <= 0 {
		t.Fatalf("Measure = %+v, want positive extents", s)
	}
	// At native size the 7x13 face is 7px per glyph.
	if s.Width != 35 {
		t.Errorf("Width = %v, want 35", s.Width)
	}
}

func TestBitmapMeasurer_ScalesLinearly(t *testing.T) {
	var m BitmapMeasurer

	small := m.Measure("scaling", 13)
	big := m.Measure("scaling", 26)
	if math.Abs(big.Width-2*small.Width) > 1e-9 {
		t.Errorf("doubling size: width %v -> %v, want exact doubling", small.Width, big.Width)
	}
	if math.Abs(big.Height-2*small.Height) > 1e-9 {
		t.Errorf("doubling size: height %v -> %v, want exact doubling", small.Height, big.Height)
	}
}

func TestBitmapMeasurer_Multiline(t *testing.T) {
	var m BitmapMeasurer

	one := m.Measure("wide line here", 16)
	two := m.Measure("wide line here\nshort", 16)

	if two.Width != one.Width {
		t.Errorf("widest line should set the width: %v vs %v", two.Width, one.Width)
	}
	if math.Abs(two.Height-2*one.Height) > 1e-9 {
		t.Errorf("two lines should stack: %v, want %v", two.Height, 2*one.Height)
	}
}

func TestBitmapMeasurer_MonotonicInSize(t *testing.T) {
	var m BitmapMeasurer

	prev := Size{}
	for size := 6.0; size <= 144; size += 6 {
		s := m.Measure("monotonic", size)
		if s.Width <= prev.Width || s.Height <= prev.Height {
			t.Fatalf("extent shrank at size %v: %+v after %+v", size, s, prev)
		}
		prev = s
	}
}

func TestFitFontSize(t *testing.T) {
	var m BitmapMeasurer

	t.Run("plenty of room returns max", func(t *testing.T) {
		if got := FitFontSize(m, "hi", 10000, 10000, 6, 144); got != 144 {
			t.Errorf("FitFontSize = %v, want 144", got)
		}
	})

	t.Run("no room returns min", func(t *testing.T) {
		if got := FitFontSize(m, "does not fit at all", 10, 4, 6, 144); got != 6 {
			t.Errorf("FitFontSize = %v, want 6", got)
		}
	})

	t.Run("empty text returns min", func(t *testing.T) {
		if got := FitFontSize(m, "", 100, 100, 6, 144); got != 6 {
			t.Errorf("FitFontSize = %v, want 6", got)
		}
	})

	t.Run("result fits and is near-maximal", func(t *testing.T) {
		const text = "fitted text"
		got := FitFontSize(m, text, 300, 60, 6, 144)
		ext := m.Measure(text, got)
		if ext.Width > 300 || ext.Height > 60 {
			t.Errorf("size %v overflows: %+v", got, ext)
		}
		// A size one search-step larger must not fit, or the search under-shot.
		bigger := m.Measure(text, got+0.5)
		if bigger.Width <= 300 && bigger.Height <= 60 {
			t.Errorf("size %v still had room: %+v", got+0.5, bigger)
		}
	})

	t.Run("degenerate range", func(t *testing.T) {
		if got := FitFontSize(m, "x", 100, 100, 20, 20); got != 20 {
			t.Errorf("FitFontSize = %v, want 20", got)
		}
	})
}
