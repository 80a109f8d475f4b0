package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectrum"
)

func ExampleSpectrum_Normalize() {
	s := spectrum.New("run-1", []float64{200, 201, 202}, []float64{0.5, 2.0, 1.0})
	n := s.Normalize()
	fmt.Println(n.Absorbances)

	// Output:
	// [0.25 1 0.5]
}

func ExampleCalculate() {
	st := spectrum.Calculate([]spectrum.Spectrum{
		spectrum.New("a", []float64{200, 201}, []float64{1, 3}),
		spectrum.New("b", []float64{195, 205}, []float64{2, 2}),
	})
	fmt.Printf("spectra=%d range=[%v, %v] mean=%v\n", st.Count, st.WavelengthMin, st.WavelengthMax, st.Mean)

	// Output:
	// spectra=2 range=[195, 205] mean=2
}
