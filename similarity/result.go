package similarity

import (
	"sort"
)

// Result packages the scores of one batch run against a single reference.
// SampleIDs, SAM, Cosine, and Pearson always have equal length; position i
// across all four refers to the same sample spectrum, in input order.
type Result struct {
	ReferenceID string
	SampleIDs   []string
	SAM         []float64
	Cosine      []float64
	Pearson     []float64
}

// Scores returns the score sequence of the selected method.
func (r Result) Scores(m Method) ([]float64, error) {
	switch m {
	case MethodSAM:
		return r.SAM, nil
	case MethodCosine:
		return r.Cosine, nil
	case MethodPearson:
		return r.Pearson, nil
	default:
		return nil, ErrUnknownMethod
	}
}

// MultiResult maps reference IDs to their batch results, preserving the
// order in which the references were supplied. Keys are exactly the supplied
// reference IDs; duplicates are not collapsed in ReferenceIDs.
type MultiResult struct {
	ReferenceIDs []string

	byID map[string]Result
}

// For returns the result computed against the given reference ID.
func (m MultiResult) For(referenceID string) (Result, bool) {
	r, ok := m.byID[referenceID]
	return r, ok
}

// RankedScore pairs a sample ID with its score for one method.
type RankedScore struct {
	ID    string
	Score float64
}

// TopSimilar returns the n best-scoring samples for the selected method,
// sorted descending by score. Equal scores keep their original input order.
// n <= 0 or n beyond the sample count returns all samples.
func TopSimilar(r Result, m Method, n int) ([]RankedScore, error) {
	scores, err := r.Scores(m)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedScore, len(scores))
	for i, s := range scores {
		ranked[i] = RankedScore{ID: r.SampleIDs[i], Score: s}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n], nil
}
