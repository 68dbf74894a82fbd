package section

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goframe/internal/nscp"
)

// Section represents a member cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
// Bending in the frame plane is about the horizontal centroidal axis.
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Material properties. E overrides the modulus derived from f'c.
	Fc float64 `json:"fc,omitempty"` // Concrete compressive strength (MPa)
	E  float64 `json:"e,omitempty"`  // Modulus of elasticity (MPa)

	// Section geometry defined by vertices (in mm)
	// Vertices may be listed clockwise or counter-clockwise
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moment of area about the horizontal centroidal axis
	Ix float64 // mm⁴

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Rectangle returns a b × h section with its bottom-left corner at the origin
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("%gx%g rectangle", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// Modulus returns E when given, otherwise the NSCP concrete modulus for f'c
func (s *Section) Modulus() float64 {
	if s.E > 0 {
		return s.E
	}
	return nscp.ConcreteModulus(s.Fc)
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.E < 0 {
		return &ValidationError{"E must not be negative"}
	}
	if s.E == 0 && s.Fc <= 0 {
		return &ValidationError{"either E or f'c must be positive"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q has zero area", s.Name)}
	}
	return nil
}

// ErrInvalidSection is matched by every ValidationError
var ErrInvalidSection = errors.New("invalid section")

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSection
}
