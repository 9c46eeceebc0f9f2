package timeline

// progress maps frame f inside a window of w frames onto 0..1. A window of
// zero length is already complete.
func progress(f, w int) float64 {
	if w <= 0 {
		return 1
	}
	return clamp(float64(f) / float64(w))
}

// clamp limits t to [0, 1]
func clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeOutCubic starts fast and settles into the end value
func easeOutCubic(t float64) float64 {
	return 1 - pow(1-t, 3)
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
