package similarity

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spectrum"
)

func TestCompareMethods(t *testing.T) {
	grid := testutil.Grid(200, 1, 32)
	ref := spectrum.New("ref", grid, testutil.GaussianBand(grid, 215, 4, 1))

	samples := []spectrum.Spectrum{
		ref,
		spectrum.New("shifted", grid, testutil.GaussianBand(grid, 218, 4, 1)),
		spectrum.New("wide", grid, testutil.GaussianBand(grid, 215, 9, 0.7)),
	}

	cmp, err := CompareMethods(samples, ref)
	if err != nil {
		t.Fatalf("CompareMethods: %v", err)
	}

	for name, s := range map[string]Summary{
		"sam":     cmp.SAM,
		"cosine":  cmp.Cosine,
		"pearson": cmp.Pearson,
	} {
		if s.Min > s.Median || s.Median > s.Max {
			t.Fatalf("%s: min/median/max out of order: %+v", name, s)
		}

		if s.Mean < s.Min || s.Mean > s.Max {
			t.Fatalf("%s: mean outside [min, max]: %+v", name, s)
		}

		if s.Std < 0 {
			t.Fatalf("%s: negative std: %v", name, s.Std)
		}

		// The self-score row pins the maximum near 1 for every method.
		testutil.RequireNear(t, s.Max, 1.0, 1e-9)
	}

	for name, r := range map[string]float64{
		"sam-cosine":     cmp.SAMCosine,
		"sam-pearson":    cmp.SAMPearson,
		"cosine-pearson": cmp.CosinePearson,
	} {
		if r < -1 || r > 1 {
			t.Fatalf("%s correlation %v outside [-1, 1]", name, r)
		}
	}
}

func TestCompareMethodsEmpty(t *testing.T) {
	ref := spectrum.New("ref", []float64{200, 201}, []float64{1, 2})

	_, err := CompareMethods(nil, ref)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("got %v, want ErrEmptyBatch", err)
	}
}

func TestSummarizeMedian(t *testing.T) {
	odd := summarize([]float64{0.3, 0.1, 0.2})
	testutil.RequireNear(t, odd.Median, 0.2, 1e-12)

	even := summarize([]float64{0.4, 0.1, 0.2, 0.3})
	testutil.RequireNear(t, even.Median, 0.25, 1e-12)
}
