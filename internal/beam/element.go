// Package beam implements a 2D prismatic beam-column element for the direct
// stiffness method: axial extension combined with Euler-Bernoulli bending.
//
// Sign convention: z points downward, the element axis runs from the first
// to the second node, rotations are φ = -dw/dx and a positive transverse load
// qz produces positive (sagging) bending moments.
//
//	(0)------------------------(1) ---> x (local)
//	 |
//	 v z (local)
//
// Each node carries the degrees of freedom [u, w, φ]; element vectors are
// ordered [u1, w1, φ1, u2, w2, φ2].
package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultRigidity stands in for an "infinitely" stiff section property when
// EA or EI is not given. It is finite on purpose so the stiffness matrix
// stays well defined; very large values degrade the conditioning of the
// assembled system, so override it with WithRigidity when needed.
const DefaultRigidity = 1.0e20

// Node is what the element needs from the nodes it connects
type Node interface {
	Position() (x, z float64)
	Dofs() [3]int
	AddLoad(f [3]float64)
}

// Element is a two-node beam-column. Geometry and the transformation matrix
// are fixed at construction; section properties and the distributed load
// can be changed at any time and are read on every query.
type Element struct {
	id    int
	nodes [2]Node

	// geometry
	length float64
	angle  float64
	t      *mat.Dense // [6][6] global-to-local transformation

	// section
	rigid float64
	ea    float64
	ei    float64

	// load
	q         [2]float64 // qx, qz in local axes
	localLoad [6]float64
}

// Option configures an element at construction
type Option func(*Element) error

// WithRigidity replaces DefaultRigidity for this element
func WithRigidity(v float64) Option {
	return func(e *Element) error {
		if !validProperty(v) {
			return &InvalidSectionPropertyError{Property: "rigidity", Value: v}
		}
		e.rigid = v
		return nil
	}
}

// New creates an element from n1 to n2. Both section properties start at the
// rigidity value and the distributed load starts at zero.
func New(n1, n2 Node, opts ...Option) (*Element, error) {
	x1, z1 := n1.Position()
	x2, z2 := n2.Position()
	dx := x2 - x1
	dz := z2 - z1

	l := math.Hypot(dx, dz)
	if !(l > 0) || math.IsInf(l, 0) {
		return nil, &DegenerateGeometryError{X1: x1, Z1: z1, X2: x2, Z2: z2, Length: l}
	}

	e := &Element{
		nodes:  [2]Node{n1, n2},
		length: l,
		angle:  math.Atan2(-dz, dx),
		rigid:  DefaultRigidity,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.t = transformation(e.angle)
	e.ea = e.rigid
	e.ei = e.rigid
	return e, nil
}

// ID returns the number assigned by a Counter (zero when built with New)
func (e *Element) ID() int { return e.id }

// Nodes returns the first and second node
func (e *Element) Nodes() (Node, Node) { return e.nodes[0], e.nodes[1] }

// Length returns the distance between the nodes
func (e *Element) Length() float64 { return e.length }

// Angle returns the orientation α = atan2(-Δz, Δx) in radians
func (e *Element) Angle() float64 { return e.angle }

// Transform returns a copy of the 6×6 global-to-local transformation matrix
func (e *Element) Transform() *mat.Dense {
	return mat.DenseCopyOf(e.t)
}

// GlobalDofs returns the equation numbers of the first node followed by
// those of the second node
func (e *Element) GlobalDofs() [6]int {
	var dofs [6]int
	d1 := e.nodes[0].Dofs()
	d2 := e.nodes[1].Dofs()
	copy(dofs[0:3], d1[:])
	copy(dofs[3:6], d2[:])
	return dofs
}

// Gather extracts the element's six entries from a global vector
func (e *Element) Gather(u mat.Vector) ([6]float64, error) {
	var ue [6]float64
	n := u.Len()
	for i, dof := range e.GlobalDofs() {
		if dof < 0 || dof >= n {
			return ue, &DofRangeError{Dof: dof, Size: n}
		}
		ue[i] = u.AtVec(dof)
	}
	return ue, nil
}

// ToGlobal maps a point given in local axes (origin at the first node) to
// global coordinates
func (e *Element) ToGlobal(xl, zl float64) (x, z float64) {
	c, s := math.Cos(e.angle), math.Sin(e.angle)
	x0, z0 := e.nodes[0].Position()
	return x0 + c*xl + s*zl, z0 - s*xl + c*zl
}

func (e *Element) String() string {
	return fmt.Sprintf("element connecting:\nnode #1:\n %v\nwith node #2:\n %v", e.nodes[0], e.nodes[1])
}

// transformation builds T for orientation α. The translational pairs of each
// node are rotated; the rotations are frame invariant in 2D.
func transformation(alpha float64) *mat.Dense {
	c, s := math.Cos(alpha), math.Sin(alpha)
	return mat.NewDense(6, 6, []float64{
		c, -s, 0, 0, 0, 0,
		s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, -s, 0,
		0, 0, 0, s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

// toLocal returns T·v
func (e *Element) toLocal(v [6]float64) [6]float64 {
	var out [6]float64
	dst := mat.NewVecDense(6, out[:])
	dst.MulVec(e.t, mat.NewVecDense(6, v[:]))
	return out
}

// toGlobal returns Tᵀ·v
func (e *Element) toGlobal(v [6]float64) [6]float64 {
	var out [6]float64
	dst := mat.NewVecDense(6, out[:])
	dst.MulVec(e.t.T(), mat.NewVecDense(6, v[:]))
	return out
}
