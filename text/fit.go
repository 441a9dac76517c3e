package text

// FitFontSize finds the largest font size in [min, max] whose measured
// extent fits within the given box, by binary search over the size range.
// Measured extents must be monotonic in the size, which holds for both
// measurers in this package. If even min overflows the box, min is
// returned: the engine clamps rather than rejects.
func FitFontSize(m Measurer, text string, boxW, boxH float64, min, max float64) float64 {
	if text == "" || min >= max {
		return min
	}

	fits := func(size float64) bool {
		ext := m.Measure(text, size)
		return ext.Width <= boxW && ext.Height <= boxH
	}
	if fits(max) {
		return max
	}
	if !fits(min) {
		return min
	}

	lo, hi := min, max
	for i := 0; i < 20 && hi-lo > 0.25; i++ {
		mid := (lo + hi) / 2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
