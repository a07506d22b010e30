package spectral

import (
	"fmt"
)

// InvalidDomainError reports malformed wavelength data handed to a
// distribution or shape constructor.
type InvalidDomainError struct {
	Reason     string
	Wavelength float64
	Index      int
}

func (e *InvalidDomainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid spectral domain: %s", e.Reason)
	}
	return fmt.Sprintf("invalid spectral domain: %s (index %d, wavelength %v)", e.Reason, e.Index, e.Wavelength)
}

func newDomainError(reason string) *InvalidDomainError {
	return &InvalidDomainError{Reason: reason, Index: -1}
}
