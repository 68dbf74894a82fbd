package frame

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/logging"
	"github.com/alexiusacademia/goframe/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeNumbering(t *testing.T) {
	m := newModel()
	for i := 0; i < 4; i++ {
		n := m.AddNode(float64(i), 0)
		assert.Equal(t, [3]int{3 * i, 3*i + 1, 3*i + 2}, n.Dofs())
	}
	assert.Equal(t, 12, m.Ndof())
	assert.Len(t, m.Nodes(), 4)
}

func TestAddElement(t *testing.T) {
	m := newModel()
	m.AddNode(0, 0)
	m.AddNode(3, 0)
	m.AddNode(3, -3)

	e1, err := m.AddElement(0, 1, beam.WithEI(100))
	require.NoError(t, err)
	e2, err := m.AddElement(1, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, e1.ID())
	assert.Equal(t, 2, e2.ID())
	assert.Equal(t, 100.0, e1.EI())
	assert.Equal(t, beam.DefaultRigidity, e1.EA())
	assert.Equal(t, beam.DefaultRigidity, e2.EI())
	assert.Equal(t, [6]int{3, 4, 5, 6, 7, 8}, e2.GlobalDofs())

	got, err := m.Element(1)
	require.NoError(t, err)
	assert.Same(t, e2, got)
	assert.Len(t, m.Elements(), 2)
}

func TestAddElementErrors(t *testing.T) {
	m := newModel()
	m.AddNode(0, 0)
	m.AddNode(0, 0)
	m.AddNode(2, 0)

	_, err := m.AddElement(0, 7)
	assert.ErrorIs(t, err, ErrUnknownNode)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 7, ie.Index)
	assert.Equal(t, 3, ie.Count)

	_, err = m.AddElement(0, 1)
	assert.ErrorIs(t, err, beam.ErrDegenerateGeometry)

	_, err = m.AddElement(0, 2, beam.WithEA(-1))
	assert.ErrorIs(t, err, beam.ErrInvalidSection)

	assert.Empty(t, m.Elements())
}

func TestWithRigidity(t *testing.T) {
	m := New(WithLogger(logging.Discard()), WithRigidity(1e9))
	m.AddNode(0, 0)
	m.AddNode(1, 0)

	e, err := m.AddElement(0, 1, beam.WithEI(5))
	require.NoError(t, err)
	assert.Equal(t, 1e9, e.EA())
	assert.Equal(t, 1e9, e.Rigidity())
}

func TestFix(t *testing.T) {
	m := newModel()
	m.AddNode(0, 0)
	m.AddNode(1, 0)

	require.NoError(t, m.Fix(0, node.Z))
	assert.True(t, m.Fixed(1))
	assert.False(t, m.Fixed(0))
	assert.Equal(t, []int{0, 2, 3, 4, 5}, m.FreeDofs())

	require.NoError(t, m.Fix(1))
	assert.Equal(t, []int{0, 2}, m.FreeDofs())

	assert.ErrorIs(t, m.Fix(2), ErrUnknownNode)
	assert.Error(t, m.Fix(0, node.Dof(5)))
}

func TestLoads(t *testing.T) {
	m := newModel()
	n0 := m.AddNode(0, 0)
	n1 := m.AddNode(4, 0)
	_, err := m.AddElement(0, 1)
	require.NoError(t, err)

	require.NoError(t, m.AddNodalLoad(1, [3]float64{1, 2, 3}))
	require.NoError(t, m.AddDistributedLoad(0, 0, 6))

	l0, l1 := n0.Load(), n1.Load()
	assert.InDeltaSlice(t, []float64{0, 12, -8}, l0[:], tol)
	assert.InDeltaSlice(t, []float64{1, 14, 11}, l1[:], tol)

	assert.ErrorIs(t, m.AddNodalLoad(-1, [3]float64{}), ErrUnknownNode)
	assert.ErrorIs(t, m.AddDistributedLoad(3, 0, 1), ErrUnknownElement)

	_, f, err := m.Assemble()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 12, -8, 1, 14, 11}, f.RawVector().Data, tol)
}

func TestClear(t *testing.T) {
	m := newModel()
	m.AddNode(0, 0)
	m.AddNode(1, 0)
	_, err := m.AddElement(0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Fix(0))

	m.Clear()
	assert.Empty(t, m.Nodes())
	assert.Empty(t, m.Elements())
	assert.Zero(t, m.Ndof())

	m.AddNode(0, 0)
	m.AddNode(1, 0)
	e, err := m.AddElement(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID())
	assert.False(t, m.Fixed(0))
}
