// Package filter narrows spectrum collections by wavelength window,
// experiment ID, or similarity score before or after an analysis run.
// All functions preserve the input order and never mutate their arguments.
package filter

import (
	"github.com/cwbudde/algo-spectral/similarity"
	"github.com/cwbudde/algo-spectral/spectrum"
)

// ByWavelength crops every spectrum to lo <= wavelength <= hi and drops
// spectra with no samples left in the window.
func ByWavelength(spectra []spectrum.Spectrum, lo, hi float64) []spectrum.Spectrum {
	out := make([]spectrum.Spectrum, 0, len(spectra))

	for _, s := range spectra {
		cropped, ok := s.Crop(lo, hi)
		if ok {
			out = append(out, cropped)
		}
	}

	return out
}

// ByID keeps only the spectra whose ID appears in ids.
func ByID(spectra []spectrum.Spectrum, ids []string) []spectrum.Spectrum {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	out := make([]spectrum.Spectrum, 0, len(spectra))
	for _, s := range spectra {
		if keep[s.ID] {
			out = append(out, s)
		}
	}

	return out
}

// BySimilarity keeps the spectra whose score for the selected method is at
// least threshold. Spectra without a score row in the result are dropped.
func BySimilarity(spectra []spectrum.Spectrum, r similarity.Result, m similarity.Method, threshold float64) ([]spectrum.Spectrum, error) {
	scores, err := r.Scores(m)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]float64, len(scores))
	for i, id := range r.SampleIDs {
		byID[id] = scores[i]
	}

	out := make([]spectrum.Spectrum, 0, len(spectra))

	for _, s := range spectra {
		score, ok := byID[s.ID]
		if ok && score >= threshold {
			out = append(out, s)
		}
	}

	return out, nil
}
