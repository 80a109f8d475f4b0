package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is one sampled absorbance curve: paired wavelength and absorbance
// sequences identified by an experiment ID. Values are treated as immutable;
// every transform returns a new Spectrum backed by fresh slices.
type Spectrum struct {
	Wavelengths []float64
	Absorbances []float64
	ID          string
	Metadata    map[string]string
}

// New creates a Spectrum from the given samples. The input slices are copied
// so later mutation of the caller's data cannot alias into the value.
func New(id string, wavelengths, absorbances []float64) Spectrum {
	w := make([]float64, len(wavelengths))
	copy(w, wavelengths)

	a := make([]float64, len(absorbances))
	copy(a, absorbances)

	return Spectrum{Wavelengths: w, Absorbances: a, ID: id}
}

// Len returns the number of sample points.
func (s Spectrum) Len() int {
	return len(s.Wavelengths)
}

// Domain returns the lowest and highest wavelength of the spectrum.
// Both are 0 for an empty spectrum.
func (s Spectrum) Domain() (lo, hi float64) {
	if len(s.Wavelengths) == 0 {
		return 0, 0
	}

	return s.Wavelengths[0], s.Wavelengths[len(s.Wavelengths)-1]
}

// Normalize scales the absorbances so the maximum value becomes 1.
// When the maximum absorbance is not positive the data is returned unchanged
// (as a copy); scaling by a non-positive peak would flip or destroy the curve.
func (s Spectrum) Normalize() Spectrum {
	out := s.clone()

	maxAbs := 0.0
	for _, v := range s.Absorbances {
		if v > maxAbs {
			maxAbs = v
		}
	}

	if maxAbs > 0 {
		vecmath.ScaleBlock(out.Absorbances, s.Absorbances, 1/maxAbs)
	}

	return out
}

// Crop returns the portion of the spectrum with lo <= wavelength <= hi.
// The second return value is false when no sample falls inside the window.
func (s Spectrum) Crop(lo, hi float64) (Spectrum, bool) {
	start, end := -1, -1

	for i, w := range s.Wavelengths {
		if w < lo {
			continue
		}

		if w > hi {
			break
		}

		if start < 0 {
			start = i
		}

		end = i + 1
	}

	if start < 0 {
		return Spectrum{ID: s.ID, Metadata: CopyMeta(s.Metadata)}, false
	}

	out := New(s.ID, s.Wavelengths[start:end], s.Absorbances[start:end])
	out.Metadata = CopyMeta(s.Metadata)

	return out, true
}

// WithMetadata returns a copy of the spectrum with the key set.
func (s Spectrum) WithMetadata(key, value string) Spectrum {
	out := s.clone()
	if out.Metadata == nil {
		out.Metadata = make(map[string]string, 1)
	}

	out.Metadata[key] = value

	return out
}

func (s Spectrum) clone() Spectrum {
	out := New(s.ID, s.Wavelengths, s.Absorbances)
	out.Metadata = CopyMeta(s.Metadata)

	return out
}

// CopyMeta returns an independent copy of a metadata map. Nil stays nil.
func CopyMeta(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}

	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
