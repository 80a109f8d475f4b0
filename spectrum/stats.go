package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds aggregate statistics over a batch of spectra.
type Stats struct {
	Count         int
	Points        int // total sample points across the batch
	WavelengthMin float64
	WavelengthMax float64
	Mean          float64 // pooled absorbance mean
	Std           float64 // pooled absorbance standard deviation (population)
	Min           float64
	Max           float64
}

// Calculate computes batch statistics over all spectra in a single pass.
// Empty spectra contribute nothing; an empty batch yields the zero Stats.
func Calculate(spectra []Spectrum) Stats {
	var st Stats

	var (
		sum   float64
		sumSq float64
	)

	for _, s := range spectra {
		if s.Len() == 0 {
			continue
		}

		lo, hi := s.Domain()
		if st.Points == 0 {
			st.WavelengthMin = lo
			st.WavelengthMax = hi
			st.Min = s.Absorbances[0]
			st.Max = s.Absorbances[0]
		} else {
			st.WavelengthMin = math.Min(st.WavelengthMin, lo)
			st.WavelengthMax = math.Max(st.WavelengthMax, hi)
		}

		sum += vecmath.Sum(s.Absorbances)
		sumSq += vecmath.DotProduct(s.Absorbances, s.Absorbances)

		for _, v := range s.Absorbances {
			if v < st.Min {
				st.Min = v
			}

			if v > st.Max {
				st.Max = v
			}
		}

		st.Points += s.Len()
	}

	st.Count = len(spectra)
	if st.Points == 0 {
		return st
	}

	nf := float64(st.Points)
	st.Mean = sum / nf

	variance := sumSq/nf - st.Mean*st.Mean
	if variance > 0 {
		st.Std = math.Sqrt(variance)
	}

	return st
}
