package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors for frame models
var (
	// ErrMechanism indicates that the supports do not prevent rigid-body motion
	ErrMechanism = errors.New("structure is a mechanism")
	// ErrEmptyModel indicates a solve on a model without nodes
	ErrEmptyModel = errors.New("model has no nodes")
	// ErrUnknownNode indicates a node index outside the model
	ErrUnknownNode = errors.New("unknown node")
	// ErrUnknownElement indicates an element index outside the model
	ErrUnknownElement = errors.New("unknown element")
	// ErrUnknownSection indicates a section name missing from a model file
	ErrUnknownSection = errors.New("unknown section")
)

// MechanismError is returned by Solve when the reduced stiffness matrix is
// singular. Dofs lists the free equations without any stiffness, when
// they could be identified.
type MechanismError struct {
	Dofs      []int
	Condition float64
}

func (e *MechanismError) Error() string {
	if len(e.Dofs) > 0 {
		return fmt.Sprintf("structure is a mechanism: no stiffness at dofs %v", e.Dofs)
	}
	return fmt.Sprintf("structure is a mechanism: condition number %g", e.Condition)
}

func (e *MechanismError) Unwrap() error {
	return ErrMechanism
}

// IndexError reports a node or element index outside the model
type IndexError struct {
	Kind  error // ErrUnknownNode or ErrUnknownElement
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, model has %d", e.Kind, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return e.Kind
}
