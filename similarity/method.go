package similarity

import (
	"errors"
	"fmt"
)

// Method selects one of the supported similarity metrics.
type Method int

const (
	// MethodSAM is the Spectral Angle Mapper, range [0, 1].
	MethodSAM Method = iota
	// MethodCosine is cosine similarity, range [-1, 1].
	MethodCosine
	// MethodPearson is the Pearson product-moment correlation, range [-1, 1].
	MethodPearson
)

var (
	// ErrUnknownMethod indicates a Method value outside the supported set.
	ErrUnknownMethod = errors.New("similarity: unknown similarity method")
	// ErrEmptyBatch indicates that no sample spectra were supplied.
	ErrEmptyBatch = errors.New("similarity: no sample spectra to analyze")
)

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	switch m {
	case MethodSAM:
		return "sam"
	case MethodCosine:
		return "cosine"
	case MethodPearson:
		return "pearson"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "sam":
		return MethodSAM, nil
	case "cosine":
		return MethodCosine, nil
	case "pearson":
		return MethodPearson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
