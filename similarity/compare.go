package similarity

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-spectral/spectrum"
)

// Summary holds descriptive statistics of one method's score sequence.
type Summary struct {
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// Comparison relates the three methods over one batch: per-method score
// statistics plus the pairwise correlation of the score sequences.
type Comparison struct {
	SAM     Summary
	Cosine  Summary
	Pearson Summary

	SAMCosine     float64
	SAMPearson    float64
	CosinePearson float64
}

// CompareMethods runs a full batch calculation and summarizes how the three
// methods behave on it. Returns ErrEmptyBatch when samples is empty.
func CompareMethods(samples []spectrum.Spectrum, ref spectrum.Spectrum) (Comparison, error) {
	res, err := BatchCalculate(samples, ref)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		SAM:           summarize(res.SAM),
		Cosine:        summarize(res.Cosine),
		Pearson:       summarize(res.Pearson),
		SAMCosine:     Pearson(res.SAM, res.Cosine),
		SAMPearson:    Pearson(res.SAM, res.Pearson),
		CosinePearson: Pearson(res.Cosine, res.Pearson),
	}, nil
}

func summarize(scores []float64) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Min: scores[0], Max: scores[0]}

	var sum, sumSq float64
	for _, v := range scores {
		sum += v
		sumSq += v * v

		if v < s.Min {
			s.Min = v
		}

		if v > s.Max {
			s.Max = v
		}
	}

	nf := float64(n)
	s.Mean = sum / nf

	variance := sumSq/nf - s.Mean*s.Mean
	if variance > 0 {
		s.Std = math.Sqrt(variance)
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return s
}
