package node

import (
	"fmt"
	"sync"
)

// Dof selects one of the three degrees of freedom carried by a node
type Dof int

const (
	X        Dof = iota // translation along global x
	Z                   // translation along global z (positive downward)
	Rotation            // in-plane rotation
)

// String returns the short name used in model files and reports
func (d Dof) String() string {
	switch d {
	case X:
		return "x"
	case Z:
		return "z"
	case Rotation:
		return "rotation"
	}
	return fmt.Sprintf("dof(%d)", int(d))
}

// ParseDof converts a model-file name into a Dof
func ParseDof(s string) (Dof, error) {
	switch s {
	case "x", "X", "u":
		return X, nil
	case "z", "Z", "w":
		return Z, nil
	case "rotation", "r", "phi":
		return Rotation, nil
	}
	return 0, fmt.Errorf("unknown degree of freedom %q", s)
}

// Node is a point of the structure with three global degrees of freedom.
// Equation numbers are assigned by whoever builds the model; the node only
// stores them. Loads from elements and from the user accumulate into the
// node and may be added from several goroutines.
type Node struct {
	X float64
	Z float64

	dofs [3]int

	mu   sync.Mutex
	load [3]float64 // fx, fz, moment
}

// New creates a node at (x, z) owning the given global equation numbers
func New(x, z float64, dofs [3]int) *Node {
	return &Node{X: x, Z: z, dofs: dofs}
}

// Position returns the node coordinates
func (n *Node) Position() (x, z float64) {
	return n.X, n.Z
}

// Dofs returns the global equation numbers in [x, z, rotation] order
func (n *Node) Dofs() [3]int {
	return n.dofs
}

// Dof returns the global equation number of one degree of freedom
func (n *Node) Dof(d Dof) int {
	return n.dofs[d]
}

// AddLoad accumulates a global load vector (fx, fz, moment)
func (n *Node) AddLoad(f [3]float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range f {
		n.load[i] += f[i]
	}
}

// Load returns a copy of the accumulated load
func (n *Node) Load() [3]float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.load
}

// ClearLoad zeroes the accumulated load
func (n *Node) ClearLoad() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.load = [3]float64{}
}

func (n *Node) String() string {
	f := n.Load()
	return fmt.Sprintf("node at (%g, %g), dofs %v, load %v", n.X, n.Z, n.dofs, f)
}
