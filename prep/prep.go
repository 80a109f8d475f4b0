// Package prep provides optional absorbance preprocessing for noisy
// acquisitions: moving-average smoothing and FFT-based low-pass smoothing.
// Both operate on raw absorbance slices and leave the caller's data intact.
package prep

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	// ErrInvalidWindow indicates a non-positive moving-average window.
	ErrInvalidWindow = errors.New("prep: window size must be positive")
	// ErrInvalidCutoff indicates a cutoff outside (0, 1].
	ErrInvalidCutoff = errors.New("prep: cutoff must be in (0, 1]")
)

// MovingAverage smooths the input with a centered moving average of the
// given window size. Near the edges the average shrinks to the available
// neighborhood, so output length always equals input length.
func MovingAverage(a []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	out := make([]float64, len(a))
	half := window / 2

	for i := range a {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half
		if hi >= len(a) {
			hi = len(a) - 1
		}

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += a[j]
		}

		out[i] = sum / float64(hi-lo+1)
	}

	return out, nil
}

// FourierLowPass smooths the input by zeroing frequency bins above cutoff,
// where cutoff is a fraction (0, 1] of the Nyquist bin. The input is padded
// to a power of two by edge replication before the transform and truncated
// back afterwards, which avoids the ringing a hard zero-pad would introduce
// at the spectrum boundaries.
func FourierLowPass(a []float64, cutoff float64) ([]float64, error) {
	if cutoff <= 0 || cutoff > 1 {
		return nil, ErrInvalidCutoff
	}

	n := len(a)
	if n < 2 || cutoff == 1 {
		out := make([]float64, n)
		copy(out, a)

		return out, nil
	}

	fftSize := nextPowerOf2(n)

	inData := make([]complex128, fftSize)
	for i := range inData {
		switch {
		case i < n:
			inData[i] = complex(a[i], 0)
		default:
			// Edge replication into the padding region.
			inData[i] = complex(a[n-1], 0)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("prep: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, inData); err != nil {
		return nil, fmt.Errorf("prep: forward FFT failed: %w", err)
	}

	// Zero every bin above the cutoff, mirrored for the negative
	// frequencies in the upper half.
	nyquist := fftSize / 2
	limit := int(cutoff * float64(nyquist))

	for i := limit + 1; i <= nyquist; i++ {
		freq[i] = 0
		if i > 0 && i < fftSize {
			freq[fftSize-i] = 0
		}
	}

	timeOut := make([]complex128, fftSize)
	if err := plan.Inverse(timeOut, freq); err != nil {
		return nil, fmt.Errorf("prep: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeOut[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
