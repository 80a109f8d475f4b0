package similarity

import (
	"github.com/cwbudde/algo-spectral/interp"
	"github.com/cwbudde/algo-spectral/spectrum"
)

// Score resamples every sample and the reference onto the reference's own
// wavelength grid and scores each pair with the selected method. Scores are
// positionally aligned with samples; no reordering happens here.
func Score(samples []spectrum.Spectrum, ref spectrum.Spectrum, m Method) ([]float64, error) {
	metric, err := metricFunc(m)
	if err != nil {
		return nil, err
	}

	target := ref.Wavelengths
	alignedRef := interp.Resample(ref, target)

	scores := make([]float64, len(samples))
	for i, s := range samples {
		aligned := interp.Resample(s, target)
		scores[i] = metric(aligned.Absorbances, alignedRef.Absorbances)
	}

	return scores, nil
}

// BatchCalculate scores every sample against the reference with all three
// methods and packages the results. Samples and the reference are resampled
// onto the reference grid once and the aligned vectors are shared across the
// metrics, which is output-equivalent to three independent Score calls.
// Returns ErrEmptyBatch when samples is empty.
func BatchCalculate(samples []spectrum.Spectrum, ref spectrum.Spectrum) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrEmptyBatch
	}

	target := ref.Wavelengths
	alignedRef := interp.Resample(ref, target)

	res := Result{
		ReferenceID: ref.ID,
		SampleIDs:   make([]string, len(samples)),
		SAM:         make([]float64, len(samples)),
		Cosine:      make([]float64, len(samples)),
		Pearson:     make([]float64, len(samples)),
	}

	for i, s := range samples {
		aligned := interp.Resample(s, target)

		res.SampleIDs[i] = s.ID
		res.SAM[i] = SAM(aligned.Absorbances, alignedRef.Absorbances)
		res.Cosine[i] = Cosine(aligned.Absorbances, alignedRef.Absorbances)
		res.Pearson[i] = Pearson(aligned.Absorbances, alignedRef.Absorbances)
	}

	return res, nil
}

// BatchCalculateMultiReference runs BatchCalculate once per reference, in
// supply order. A reference that also appears in samples is scored as-is;
// the resulting self-score row near 1.0 is a useful sanity signal and is not
// suppressed. An empty reference list yields an empty result.
func BatchCalculateMultiReference(samples, refs []spectrum.Spectrum) (MultiResult, error) {
	multi := MultiResult{
		ReferenceIDs: make([]string, 0, len(refs)),
		byID:         make(map[string]Result, len(refs)),
	}

	for _, ref := range refs {
		res, err := BatchCalculate(samples, ref)
		if err != nil {
			return MultiResult{}, err
		}

		multi.ReferenceIDs = append(multi.ReferenceIDs, ref.ID)
		multi.byID[ref.ID] = res
	}

	return multi, nil
}

func metricFunc(m Method) (func(a, b []float64) float64, error) {
	switch m {
	case MethodSAM:
		return SAM, nil
	case MethodCosine:
		return Cosine, nil
	case MethodPearson:
		return Pearson, nil
	default:
		return nil, ErrUnknownMethod
	}
}
