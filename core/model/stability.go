package model

import "fmt"

// StabilityClass is a Pasquill-Gifford atmospheric stability category,
// ordered from most unstable (A) to most stable (F).
type StabilityClass int

const (
	StabilityA StabilityClass = iota
	StabilityB
	StabilityC
	StabilityD
	StabilityE
	StabilityF
)

// String returns the single-letter class name.
func (c StabilityClass) String() string {
	switch c {
	case StabilityA:
		return "A"
	case StabilityB:
		return "B"
	case StabilityC:
		return "C"
	case StabilityD:
		return "D"
	case StabilityE:
		return "E"
	case StabilityF:
		return "F"
	default:
		return "unknown"
	}
}

// Valid reports whether the class is one of the six defined categories.
func (c StabilityClass) Valid() bool {
	return c >= StabilityA && c <= StabilityF
}

// Stable reports whether the class describes stable conditions (E or F).
// Stable classes use the uncorrected vertical dispersion curve.
func (c StabilityClass) Stable() bool {
	return c == StabilityE || c == StabilityF
}

// ParseStabilityClass converts a single-letter class name to a StabilityClass.
func ParseStabilityClass(s string) (StabilityClass, error) {
	switch s {
	case "A", "a":
		return StabilityA, nil
	case "B", "b":
		return StabilityB, nil
	case "C", "c":
		return StabilityC, nil
	case "D", "d":
		return StabilityD, nil
	case "E", "e":
		return StabilityE, nil
	case "F", "f":
		return StabilityF, nil
	default:
		return 0, fmt.Errorf("unknown stability class %q", s)
	}
}
