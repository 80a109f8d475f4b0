package testutil

import "math"

// Grid returns n evenly spaced wavelengths starting at lo with the given step.
func Grid(lo, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

// Ramp returns n absorbance values rising linearly from start by step.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// GaussianBand evaluates a synthetic absorption band on the given grid:
// a gaussian peak of the given height centered at center with the given
// width (standard deviation in wavelength units).
func GaussianBand(grid []float64, center, width, height float64) []float64 {
	out := make([]float64, len(grid))
	for i, w := range grid {
		d := (w - center) / width
		out[i] = height * math.Exp(-0.5*d*d)
	}

	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}
