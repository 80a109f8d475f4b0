// Package similarity scores sampled spectra against reference spectra with
// three independent metrics:
//
//   - [SAM]:     Spectral Angle Mapper, 1 - angle/pi, in [0, 1]
//   - [Cosine]:  normalized dot product, in [-1, 1]
//   - [Pearson]: product-moment correlation, in [-1, 1]
//
// The metrics operate on absorbance vectors only; [BatchCalculate] and
// [Score] first resample all inputs onto the reference's wavelength grid so
// the vectors are pointwise comparable.
//
// Numeric edge cases never surface as errors: an all-zero vector or a
// zero-variance vector scores 0 for the affected pair. Structural misuse
// (empty batch, unknown method) fails fast with a sentinel error and no
// partial result.
package similarity
