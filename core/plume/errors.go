package plume

import "fmt"

// DomainError reports a physically invalid input to the dispersion model,
// such as a non-positive wind speed or a negative downwind distance. Inputs
// that are merely degenerate (zero distance, zero spread) are not errors and
// yield a zero concentration instead.
type DomainError struct {
	Quantity string
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s", e.Quantity, e.Reason)
}
