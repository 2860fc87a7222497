package render

// RGB is an 8-bit-per-channel color held in integer components. Out-of-gamut
// values survive arithmetic and are clamped only when written to a pixel.
type RGB struct {
	R, G, B int
}

// Lerp interpolates each channel linearly and truncates to an integer.
// t is expected in [0, 1] by contract and is not re-clamped here: callers
// feeding out-of-range stress ratios get out-of-gamut colors back.
func Lerp(c1, c2 RGB, t float64) RGB {
	return RGB{
		R: int(float64(c1.R) + (float64(c2.R)-float64(c1.R))*t),
		G: int(float64(c1.G) + (float64(c2.G)-float64(c1.G))*t),
		B: int(float64(c1.B) + (float64(c2.B)-float64(c1.B))*t),
	}
}
