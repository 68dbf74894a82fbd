package beam

import "math"

// SectionOption supplies one section property to SetSection
type SectionOption func(*sectionProps)

type sectionProps struct {
	ea, ei       float64
	hasEA, hasEI bool
}

// WithEA sets the axial stiffness E·A
func WithEA(v float64) SectionOption {
	return func(p *sectionProps) {
		p.ea, p.hasEA = v, true
	}
}

// WithEI sets the flexural stiffness E·I
func WithEI(v float64) SectionOption {
	return func(p *sectionProps) {
		p.ei, p.hasEI = v, true
	}
}

// SetSection sets the section properties. A property not supplied falls back
// to the element's rigidity value, so SetSection(WithEI(v)) models an
// axially rigid member. On error the element is left unchanged. Loads that
// were already applied are not affected.
func (e *Element) SetSection(opts ...SectionOption) error {
	var p sectionProps
	for _, opt := range opts {
		opt(&p)
	}

	ea, ei := e.rigid, e.rigid
	if p.hasEA {
		if !validProperty(p.ea) {
			return &InvalidSectionPropertyError{Property: "EA", Value: p.ea}
		}
		ea = p.ea
	}
	if p.hasEI {
		if !validProperty(p.ei) {
			return &InvalidSectionPropertyError{Property: "EI", Value: p.ei}
		}
		ei = p.ei
	}

	e.ea, e.ei = ea, ei
	return nil
}

// EA returns the axial stiffness
func (e *Element) EA() float64 { return e.ea }

// EI returns the flexural stiffness
func (e *Element) EI() float64 { return e.ei }

// Rigidity returns the value used for properties that were not supplied
func (e *Element) Rigidity() float64 { return e.rigid }

func validProperty(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
