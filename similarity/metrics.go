package similarity

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SAM computes the Spectral Angle Mapper similarity of two equal-length
// vectors: 1 - angle(a, b)/pi, in [0, 1]. 1 means identical direction.
// Returns 0 when either vector is entirely zero.
func SAM(a, b []float64) float64 {
	c, ok := normalizedDot(a, b)
	if !ok {
		return 0
	}

	return 1 - math.Acos(c)/math.Pi
}

// Cosine computes the cosine similarity of two equal-length vectors,
// in [-1, 1]. Returns 0 when either vector is entirely zero.
func Cosine(a, b []float64) float64 {
	c, ok := normalizedDot(a, b)
	if !ok {
		return 0
	}

	return c
}

// Pearson computes the product-moment correlation of two equal-length
// vectors, in [-1, 1]. Degenerate input (fewer than two points, or a
// zero-variance constant vector) resolves to 0 rather than NaN.
func Pearson(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	if n < 2 {
		return 0
	}

	a = a[:n]
	b = b[:n]

	meanA := vecmath.Sum(a) / float64(n)
	meanB := vecmath.Sum(b) / float64(n)

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	r := cov / math.Sqrt(varA*varB)

	return clip(r)
}

// normalizedDot returns dot(a,b)/(|a|*|b|) clipped to [-1, 1].
// ok is false when either vector is entirely zero.
func normalizedDot(a, b []float64) (c float64, ok bool) {
	normSqA := vecmath.DotProduct(a, a)
	normSqB := vecmath.DotProduct(b, b)

	if normSqA == 0 || normSqB == 0 {
		return 0, false
	}

	dot := vecmath.DotProduct(a, b)

	return clip(dot / math.Sqrt(normSqA*normSqB)), true
}

// clip absorbs floating-point drift that would push a correlation or cosine
// value just outside [-1, 1] and break Acos downstream.
func clip(v float64) float64 {
	if v > 1 {
		return 1
	}

	if v < -1 {
		return -1
	}

	return v
}
