// Package interp resamples spectra onto a common wavelength grid using
// piecewise-linear interpolation, so spectra acquired on different instrument
// grids can be compared pointwise.
//
// Query points outside a spectrum's wavelength domain clamp to the boundary
// absorbance value (flat extrapolation); the curve is never linearly extended
// beyond the measured domain.
package interp

import (
	"github.com/cwbudde/algo-spectral/spectrum"
)

// At evaluates the piecewise-linear curve (wavelengths, absorbances) at x.
// wavelengths must be strictly increasing and both slices equal-length;
// the validation gate enforces this upstream. Outside the domain the boundary
// absorbance is returned. Returns 0 for empty input.
func At(wavelengths, absorbances []float64, x float64) float64 {
	n := len(wavelengths)
	if n == 0 {
		return 0
	}

	if x <= wavelengths[0] {
		return absorbances[0]
	}

	if x >= wavelengths[n-1] {
		return absorbances[n-1]
	}

	// Binary search for the segment containing x.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if wavelengths[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	if x == wavelengths[lo] {
		return absorbances[lo]
	}

	frac := (x - wavelengths[lo]) / (wavelengths[hi] - wavelengths[lo])

	return absorbances[lo] + frac*(absorbances[hi]-absorbances[lo])
}

// Resample produces a new spectrum defined on target, with absorbances taken
// from the piecewise-linear interpolation of s. The source spectrum is not
// modified. Resampling a spectrum onto its own grid reproduces the original
// absorbances exactly.
func Resample(s spectrum.Spectrum, target []float64) spectrum.Spectrum {
	absorbances := make([]float64, len(target))

	// Targets are ordered, so walk the source segments forward instead of
	// binary-searching per point.
	n := s.Len()
	seg := 0

	for i, x := range target {
		switch {
		case n == 0:
			absorbances[i] = 0
		case x <= s.Wavelengths[0]:
			absorbances[i] = s.Absorbances[0]
		case x >= s.Wavelengths[n-1]:
			absorbances[i] = s.Absorbances[n-1]
		default:
			// Advance past segments whose upper bound is at or below x, so
			// an exact grid hit lands on the segment start and returns the
			// stored absorbance bit-for-bit.
			for s.Wavelengths[seg+1] <= x {
				seg++
			}

			w0, w1 := s.Wavelengths[seg], s.Wavelengths[seg+1]
			if x == w0 {
				absorbances[i] = s.Absorbances[seg]
				continue
			}

			frac := (x - w0) / (w1 - w0)
			absorbances[i] = s.Absorbances[seg] + frac*(s.Absorbances[seg+1]-s.Absorbances[seg])
		}
	}

	out := spectrum.New(s.ID, target, absorbances)
	out.Metadata = spectrum.CopyMeta(s.Metadata)

	return out
}

// ResampleAll resamples every spectrum onto the target grid.
func ResampleAll(spectra []spectrum.Spectrum, target []float64) []spectrum.Spectrum {
	out := make([]spectrum.Spectrum, len(spectra))
	for i, s := range spectra {
		out[i] = Resample(s, target)
	}

	return out
}
