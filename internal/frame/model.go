// Package frame assembles beam-column elements into a plane frame and solves
// K·U = F for the displacements of the free degrees of freedom and the
// support reactions.
//
// Node i owns the equations 3i, 3i+1 and 3i+2 in [x, z, rotation] order.
package frame

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/logging"
	"github.com/alexiusacademia/goframe/internal/node"
)

// Model is a plane frame under construction. It is not safe for concurrent
// modification.
type Model struct {
	logger   *slog.Logger
	rigidity float64

	nodes    []*node.Node
	elements []*beam.Element
	counter  beam.Counter
	fixed    map[int]bool
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger used for assembly and solve messages
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithRigidity replaces beam.DefaultRigidity for every element of the model
func WithRigidity(v float64) Option {
	return func(m *Model) {
		m.rigidity = v
	}
}

// New creates an empty model
func New(opts ...Option) *Model {
	m := &Model{
		logger:   logging.GetLogger(),
		rigidity: beam.DefaultRigidity,
		fixed:    make(map[int]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddNode appends a node at (x, z) and numbers its equations
func (m *Model) AddNode(x, z float64) *node.Node {
	i := len(m.nodes)
	n := node.New(x, z, [3]int{3 * i, 3*i + 1, 3*i + 2})
	m.nodes = append(m.nodes, n)
	return n
}

// AddElement connects nodes i and j. Section options are applied with
// beam.Element.SetSection; without options both properties stay rigid.
func (m *Model) AddElement(i, j int, opts ...beam.SectionOption) (*beam.Element, error) {
	n1, err := m.Node(i)
	if err != nil {
		return nil, err
	}
	n2, err := m.Node(j)
	if err != nil {
		return nil, err
	}

	e, err := m.counter.New(n1, n2, beam.WithRigidity(m.rigidity))
	if err != nil {
		return nil, fmt.Errorf("element %d-%d: %w", i, j, err)
	}
	if len(opts) > 0 {
		if err := e.SetSection(opts...); err != nil {
			return nil, fmt.Errorf("element %d-%d: %w", i, j, err)
		}
	}

	m.elements = append(m.elements, e)
	return e, nil
}

// Fix restrains degrees of freedom of node i; no dofs fixes all three
func (m *Model) Fix(i int, dofs ...node.Dof) error {
	n, err := m.Node(i)
	if err != nil {
		return err
	}
	if len(dofs) == 0 {
		dofs = []node.Dof{node.X, node.Z, node.Rotation}
	}
	for _, d := range dofs {
		if d < node.X || d > node.Rotation {
			return fmt.Errorf("node %d: invalid degree of freedom %v", i, d)
		}
		m.fixed[n.Dof(d)] = true
	}
	return nil
}

// AddNodalLoad adds a global load (fx, fz, moment) to node i
func (m *Model) AddNodalLoad(i int, f [3]float64) error {
	n, err := m.Node(i)
	if err != nil {
		return err
	}
	n.AddLoad(f)
	return nil
}

// AddDistributedLoad applies a local distributed load to element k
func (m *Model) AddDistributedLoad(k int, qx, qz float64) error {
	e, err := m.Element(k)
	if err != nil {
		return err
	}
	e.AddDistributedLoad(qx, qz)
	return nil
}

// Node returns node i
func (m *Model) Node(i int) (*node.Node, error) {
	if i < 0 || i >= len(m.nodes) {
		return nil, &IndexError{Kind: ErrUnknownNode, Index: i, Count: len(m.nodes)}
	}
	return m.nodes[i], nil
}

// Element returns element k (zero based, in insertion order)
func (m *Model) Element(k int) (*beam.Element, error) {
	if k < 0 || k >= len(m.elements) {
		return nil, &IndexError{Kind: ErrUnknownElement, Index: k, Count: len(m.elements)}
	}
	return m.elements[k], nil
}

// Nodes returns the nodes in index order
func (m *Model) Nodes() []*node.Node {
	return append([]*node.Node(nil), m.nodes...)
}

// Elements returns the elements in insertion order
func (m *Model) Elements() []*beam.Element {
	return append([]*beam.Element(nil), m.elements...)
}

// Ndof returns the number of equations
func (m *Model) Ndof() int {
	return 3 * len(m.nodes)
}

// Fixed reports whether equation dof is restrained
func (m *Model) Fixed(dof int) bool {
	return m.fixed[dof]
}

// FreeDofs returns the unrestrained equations in ascending order
func (m *Model) FreeDofs() []int {
	free := make([]int, 0, m.Ndof())
	for dof := 0; dof < m.Ndof(); dof++ {
		if !m.fixed[dof] {
			free = append(free, dof)
		}
	}
	return free
}

// Clear removes every node, element and support and restarts element
// numbering at 1
func (m *Model) Clear() {
	m.nodes = nil
	m.elements = nil
	m.fixed = make(map[int]bool)
	m.counter.Clear()
}
