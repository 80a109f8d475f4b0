package validate

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectral/spectrum"
)

func TestWavelengthsValid(t *testing.T) {
	out := Wavelengths([]float64{200, 201, 202})

	if !out.OK || len(out.Errors) != 0 || len(out.Warnings) != 0 {
		t.Fatalf("clean input flagged: %+v", out)
	}
}

func TestWavelengthsNegative(t *testing.T) {
	out := Wavelengths([]float64{-1, 200, 300})

	if out.OK {
		t.Fatal("negative wavelength must be an error")
	}
}

func TestWavelengthsNotIncreasing(t *testing.T) {
	for _, w := range [][]float64{
		{200, 200, 201}, // duplicate
		{200, 199, 201}, // decreasing
	} {
		out := Wavelengths(w)
		if out.OK {
			t.Fatalf("%v accepted, want error", w)
		}
	}
}

func TestWavelengthsAbove1000IsWarningOnly(t *testing.T) {
	out := Wavelengths([]float64{900, 1100})

	if !out.OK {
		t.Fatalf("plausibility heuristic must not reject: %+v", out)
	}

	if len(out.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(out.Warnings))
	}
}

func TestWavelengthsEmpty(t *testing.T) {
	if out := Wavelengths(nil); out.OK {
		t.Fatal("empty wavelength data must be an error")
	}
}

func TestAbsorbancesNeverError(t *testing.T) {
	for _, a := range [][]float64{
		{-0.5, 0.1},
		{0.1, 20},
		{},
	} {
		out := Absorbances(a)
		if !out.OK || len(out.Errors) != 0 {
			t.Fatalf("%v: absorbance findings must be warnings only: %+v", a, out)
		}
	}
}

func TestAbsorbancesWarnings(t *testing.T) {
	out := Absorbances([]float64{-0.1, 11, 0.3})

	if len(out.Warnings) < 2 {
		t.Fatalf("got warnings %v, want negative and >10 flagged", out.Warnings)
	}
}

func TestAbsorbancesOutliers(t *testing.T) {
	// 99 values tightly clustered around 1 plus one far outlier: the spike
	// sits far beyond three sigma of the sample.
	a := make([]float64, 100)
	for i := range a {
		a[i] = 1 + 0.001*float64(i%10)
	}
	a[50] = 50

	out := Absorbances(a)

	found := false
	for _, w := range out.Warnings {
		if strings.Contains(w, "outlier") && strings.Contains(w, "1 ") {
			found = true
		}
	}

	if !found {
		t.Fatalf("outlier count not reported: %v", out.Warnings)
	}
}

func TestBatch(t *testing.T) {
	grid := []float64{200, 201}
	other := []float64{300, 301}

	out := Batch([]spectrum.Spectrum{
		spectrum.New("a", grid, []float64{1, 2}),
		spectrum.New("b", other, []float64{1, 2}),
		spectrum.New("a", grid, []float64{3, 4}),
	})

	if !out.OK {
		t.Fatalf("batch findings must be warnings: %+v", out)
	}

	if len(out.Warnings) != 2 {
		t.Fatalf("got %d warnings, want grid mismatch + duplicate ID: %v", len(out.Warnings), out.Warnings)
	}
}

func TestBatchEmpty(t *testing.T) {
	if out := Batch(nil); out.OK {
		t.Fatal("empty batch must be an error")
	}
}

func TestReferenceOverlap(t *testing.T) {
	ref := spectrum.New("ref", []float64{200, 300}, []float64{1, 2})
	samples := []spectrum.Spectrum{spectrum.New("s", []float64{250, 350}, []float64{1, 2})}

	out := Reference(ref, samples)
	if !out.OK || len(out.Warnings) != 0 {
		t.Fatalf("overlapping domains flagged: %+v", out)
	}

	disjoint := []spectrum.Spectrum{spectrum.New("s", []float64{500, 600}, []float64{1, 2})}

	out = Reference(ref, disjoint)
	if !out.OK {
		t.Fatal("non-overlap must stay a warning")
	}

	if len(out.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(out.Warnings))
	}
}

func TestReferenceEmpty(t *testing.T) {
	if out := Reference(spectrum.Spectrum{}, nil); out.OK {
		t.Fatal("empty reference must be an error")
	}
}

func TestValidationIsPure(t *testing.T) {
	w := []float64{200, 100, 300}
	orig := []float64{200, 100, 300}

	Wavelengths(w)

	for i := range w {
		if w[i] != orig[i] {
			t.Fatal("validation mutated its input")
		}
	}
}
