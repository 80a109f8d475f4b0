package similarity

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spectrum"
)

func benchSpectra(nSamples, nPoints int) ([]spectrum.Spectrum, spectrum.Spectrum) {
	grid := testutil.Grid(200, 0.5, nPoints)
	ref := spectrum.New("ref", grid, testutil.GaussianBand(grid, 300, 20, 1))

	samples := make([]spectrum.Spectrum, nSamples)
	for i := range samples {
		center := 290 + float64(i)
		samples[i] = spectrum.New("s", grid, testutil.GaussianBand(grid, center, 20, 1))
	}

	return samples, ref
}

func BenchmarkSAM(b *testing.B) {
	grid := testutil.Grid(200, 0.5, 1024)
	x := testutil.GaussianBand(grid, 300, 20, 1)
	y := testutil.GaussianBand(grid, 305, 22, 0.9)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = SAM(x, y)
	}
}

func BenchmarkPearson(b *testing.B) {
	grid := testutil.Grid(200, 0.5, 1024)
	x := testutil.GaussianBand(grid, 300, 20, 1)
	y := testutil.GaussianBand(grid, 305, 22, 0.9)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Pearson(x, y)
	}
}

func BenchmarkBatchCalculate(b *testing.B) {
	samples, ref := benchSpectra(32, 1024)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := BatchCalculate(samples, ref); err != nil {
			b.Fatal(err)
		}
	}
}
