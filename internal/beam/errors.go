package beam

import (
	"errors"
	"fmt"
)

// Sentinel errors for the element
var (
	// ErrDegenerateGeometry indicates coincident (or non-finite) end nodes
	ErrDegenerateGeometry = errors.New("degenerate element geometry")
	// ErrInvalidSection indicates a non-positive or non-finite section property
	ErrInvalidSection = errors.New("invalid section property")
	// ErrDofOutOfRange indicates an element dof outside a global vector
	ErrDofOutOfRange = errors.New("dof index out of range")
)

// DegenerateGeometryError is returned by New when the element length is
// not strictly positive
type DegenerateGeometryError struct {
	X1, Z1 float64 // first node
	X2, Z2 float64 // second node
	Length float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("element length %g is not positive: nodes (%g, %g) and (%g, %g)",
		e.Length, e.X1, e.Z1, e.X2, e.Z2)
}

func (e *DegenerateGeometryError) Unwrap() error {
	return ErrDegenerateGeometry
}

// InvalidSectionPropertyError reports the rejected property and value
type InvalidSectionPropertyError struct {
	Property string // "EA", "EI" or "rigidity"
	Value    float64
}

func (e *InvalidSectionPropertyError) Error() string {
	return fmt.Sprintf("section property %s must be positive and finite, got %g", e.Property, e.Value)
}

func (e *InvalidSectionPropertyError) Unwrap() error {
	return ErrInvalidSection
}

// DofRangeError is returned when a global vector is too short for the
// element's equation numbers
type DofRangeError struct {
	Dof  int
	Size int
}

func (e *DofRangeError) Error() string {
	return fmt.Sprintf("dof %d outside global vector of length %d", e.Dof, e.Size)
}

func (e *DofRangeError) Unwrap() error {
	return ErrDofOutOfRange
}
