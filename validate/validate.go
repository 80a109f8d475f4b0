// Package validate implements the data-quality gate applied to spectra before
// analysis. Wavelength problems are fatal for the affected spectrum; absorbance
// findings are informational and never block ingestion.
package validate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectrum"
)

const (
	// maxPlausibleWavelength is a domain-plausibility heuristic for UV-Vis
	// data, not a hard limit.
	maxPlausibleWavelength = 1000.0

	// maxPlausibleAbsorbance flags measurements beyond the usable range of
	// most instruments.
	maxPlausibleAbsorbance = 10.0

	outlierSigma = 3.0
)

// Outcome is the result of one validation pass. It is assembled once by the
// validation functions and must not be mutated afterwards. OK is false iff at
// least one error was recorded; warnings never flip OK.
type Outcome struct {
	OK       bool
	Errors   []string
	Warnings []string
}

func (o *Outcome) addError(format string, args ...any) {
	o.Errors = append(o.Errors, fmt.Sprintf(format, args...))
	o.OK = false
}

func (o *Outcome) addWarning(format string, args ...any) {
	o.Warnings = append(o.Warnings, fmt.Sprintf(format, args...))
}

// Wavelengths checks a wavelength grid for ingestion fitness.
// Negative values and non-monotonic ordering are errors; values above
// 1000 nm only produce a warning.
func Wavelengths(w []float64) Outcome {
	out := Outcome{OK: true}

	if len(w) == 0 {
		out.addError("wavelength data is empty")
		return out
	}

	for _, v := range w {
		if v < 0 {
			out.addError("wavelength values must not be negative")
			break
		}
	}

	for i := 1; i < len(w); i++ {
		if w[i] <= w[i-1] {
			out.addError("wavelength values must be strictly increasing")
			break
		}
	}

	for _, v := range w {
		if v > maxPlausibleWavelength {
			out.addWarning("wavelength values exceed %v nm, check the data", maxPlausibleWavelength)
			break
		}
	}

	return out
}

// Absorbances checks absorbance values. All findings are warnings: negative
// values, values above 10, and three-sigma outliers (reported with a count).
func Absorbances(a []float64) Outcome {
	out := Outcome{OK: true}

	if len(a) == 0 {
		return out
	}

	for _, v := range a {
		if v < 0 {
			out.addWarning("negative absorbance values present, check the data")
			break
		}
	}

	for _, v := range a {
		if v > maxPlausibleAbsorbance {
			out.addWarning("absorbance values exceed %v, check the data", maxPlausibleAbsorbance)
			break
		}
	}

	mean, std := meanStd(a)
	if std > 0 {
		outliers := 0
		for _, v := range a {
			if math.Abs(v-mean) > outlierSigma*std {
				outliers++
			}
		}

		if outliers > 0 {
			out.addWarning("%d possible outlier value(s) beyond %v sigma", outliers, outlierSigma)
		}
	}

	return out
}

// Batch checks cross-spectrum consistency: an empty batch is an error,
// grids differing from the first spectrum's and duplicate experiment IDs
// are warnings.
func Batch(spectra []spectrum.Spectrum) Outcome {
	out := Outcome{OK: true}

	if len(spectra) == 0 {
		out.addError("no spectra to validate")
		return out
	}

	ref := spectra[0].Wavelengths
	for _, s := range spectra[1:] {
		if !equalGrid(s.Wavelengths, ref) {
			out.addWarning("spectrum %q uses a different wavelength grid than the first spectrum", s.ID)
		}
	}

	seen := make(map[string]bool, len(spectra))
	for _, s := range spectra {
		if seen[s.ID] {
			out.addWarning("duplicate experiment ID %q", s.ID)
			continue
		}

		seen[s.ID] = true
	}

	return out
}

// Reference warns when the reference spectrum's wavelength domain does not
// overlap the domain of the sample spectra. Scoring against a non-overlapping
// reference degenerates to comparing clamped boundary values.
func Reference(ref spectrum.Spectrum, samples []spectrum.Spectrum) Outcome {
	out := Outcome{OK: true}

	if ref.Len() == 0 {
		out.addError("reference spectrum is empty")
		return out
	}

	if len(samples) == 0 || samples[0].Len() == 0 {
		return out
	}

	refLo, refHi := ref.Domain()
	smpLo, smpHi := samples[0].Domain()

	if refLo > smpHi || refHi < smpLo {
		out.addWarning("reference wavelength range [%v, %v] does not overlap sample range [%v, %v]",
			refLo, refHi, smpLo, smpHi)
	}

	return out
}

func meanStd(a []float64) (mean, std float64) {
	nf := float64(len(a))

	// Kahan summation for a numerically stable mean.
	var sum, c float64
	for _, x := range a {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	mean = sum / nf

	var sq float64
	for _, x := range a {
		d := x - mean
		sq += d * d
	}

	variance := sq / nf
	if variance > 0 {
		std = math.Sqrt(variance)
	}

	return mean, std
}

func equalGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
