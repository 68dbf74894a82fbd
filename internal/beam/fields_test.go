package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStations(t *testing.T) {
	e := newElement(t, 0, 0, 4, 0)

	assert.Empty(t, e.Stations(0))
	assert.Empty(t, e.Stations(-3))
	assert.Equal(t, []float64{0}, e.Stations(1))
	assert.InDeltaSlice(t, []float64{0, 4}, e.Stations(2), tol)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, e.Stations(5), tol)
}

func TestFieldLengths(t *testing.T) {
	e := sectioned(t, 0, 0, 4, 0)
	ue := [6]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	assert.Len(t, e.BendingMoments(ue, 7), 7)
	assert.Len(t, e.ShearForces(ue, 7), 7)
	assert.Len(t, e.NormalForces(ue, 7), 7)
	u, w := e.FullDisplacement(ue, 7)
	assert.Len(t, u, 7)
	assert.Len(t, w, 7)

	u, w = e.FullDisplacement(ue, 0)
	assert.Empty(t, u)
	assert.Empty(t, w)
}

func TestFullDisplacementNodalExactness(t *testing.T) {
	geometries := [][4]float64{
		{0, 0, 5, 0},
		{0, 0, 3, -4},
		{2, 1, -1, 5},
		{0, 0, 0, 2.5},
	}
	displacements := [][6]float64{
		{0, 0, 0, 0, 0, 0},
		{1e-3, -2e-3, 5e-4, 3e-3, 1e-3, -7e-4},
		{0.2, 0.1, -0.05, -0.1, 0.4, 0.02},
	}
	loads := [][2]float64{{0, 0}, {3, -12}, {-1.5, 8}}

	for _, g := range geometries {
		for _, ue := range displacements {
			for _, q := range loads {
				e := sectioned(t, g[0], g[1], g[2], g[3])
				e.AddDistributedLoad(q[0], q[1])
				ul := e.LocalDisplacements(ue)

				u, w := e.FullDisplacement(ue, 11)
				assert.InDelta(t, ul[0], u[0], tol)
				assert.InDelta(t, ul[1], w[0], tol)
				assert.InDelta(t, ul[3], u[10], tol)
				assert.InDelta(t, ul[4], w[10], tol)
			}
		}
	}
}

func TestBendingMomentsHermiteOnly(t *testing.T) {
	e := sectioned(t, 0, 0, 5, 0)
	ei, l := 2e5, 5.0
	w1, phi1, w2, phi2 := 1e-3, -2e-4, -5e-4, 3e-4
	ue := [6]float64{0, w1, phi1, 0, w2, phi2}

	m := e.BendingMoments(ue, 3)
	m0 := 6*ei*(w1-w2)/(l*l) - 4*ei*phi1/l - 2*ei*phi2/l
	mL := -6*ei*(w1-w2)/(l*l) + 2*ei*phi1/l + 4*ei*phi2/l

	assert.InDelta(t, m0, m[0], 1e-6)
	assert.InDelta(t, (m0+mL)/2, m[1], 1e-6)
	assert.InDelta(t, mL, m[2], 1e-6)

	// the shear is the (constant) slope of the linear moment
	for _, v := range e.ShearForces(ue, 4) {
		assert.InDelta(t, (mL-m0)/l, v, 1e-6)
	}
}

func TestFieldsMatchEndForces(t *testing.T) {
	e := sectioned(t, 1, 1, 4, 5)
	e.AddDistributedLoad(2, -9)
	ue := [6]float64{1e-4, 2e-4, -3e-4, -1e-4, 4e-4, 2e-4}

	f := e.EndForces(ue)
	m := e.BendingMoments(ue, 2)
	v := e.ShearForces(ue, 2)
	n := e.NormalForces(ue, 2)

	assert.InDelta(t, -f[2], m[0], 1e-6)
	assert.InDelta(t, f[5], m[1], 1e-6)
	assert.InDelta(t, -f[1], v[0], 1e-6)
	assert.InDelta(t, f[4], v[1], 1e-6)
	assert.InDelta(t, -f[0], n[0], 1e-6)
	assert.InDelta(t, f[3], n[1], 1e-6)
}

func TestFixedFixedUniformLoad(t *testing.T) {
	e := sectioned(t, 0, 0, 6, 0)
	q, l, ei := 10.0, 6.0, 2e5
	e.AddDistributedLoad(0, q)

	var fixed [6]float64
	m := e.BendingMoments(fixed, 3)
	assert.InDelta(t, -q*l*l/12, m[0], 1e-9)
	assert.InDelta(t, q*l*l/24, m[1], 1e-9)
	assert.InDelta(t, -q*l*l/12, m[2], 1e-9)

	_, w := e.FullDisplacement(fixed, 3)
	assert.InDelta(t, 0, w[0], 1e-12)
	assert.InDelta(t, q*math.Pow(l, 4)/(384*ei), w[1], 1e-12)
	assert.InDelta(t, 0, w[2], 1e-12)

	v := e.ShearForces(fixed, 3)
	assert.InDelta(t, q*l/2, v[0], 1e-9)
	assert.InDelta(t, 0, v[1], 1e-9)
	assert.InDelta(t, -q*l/2, v[2], 1e-9)
}

func TestFixedFixedAxialLoad(t *testing.T) {
	e := sectioned(t, 0, 0, 4, 0)
	qx, l, ea := 5.0, 4.0, 1e7
	e.AddDistributedLoad(qx, 0)

	var fixed [6]float64
	u, _ := e.FullDisplacement(fixed, 3)
	assert.InDelta(t, qx*l*l/(8*ea), u[1], 1e-15)

	n := e.NormalForces(fixed, 3)
	assert.InDelta(t, qx*l/2, n[0], 1e-9)
	assert.InDelta(t, 0, n[1], 1e-9)
	assert.InDelta(t, -qx*l/2, n[2], 1e-9)
}

func TestFieldsUseCurrentSection(t *testing.T) {
	e := sectioned(t, 0, 0, 4, 0)
	e.AddDistributedLoad(0, 1)

	var fixed [6]float64
	_, w1 := e.FullDisplacement(fixed, 3)
	require.NoError(t, e.SetSection(WithEA(1e7), WithEI(4e5)))
	_, w2 := e.FullDisplacement(fixed, 3)

	assert.InDelta(t, w1[1]/2, w2[1], 1e-15)
}

func TestHermitePartitionOfUnity(t *testing.T) {
	// w = 1 everywhere reproduces a rigid translation
	l := 3.0
	for _, x := range []float64{0, 0.7, 1.5, 2.2, 3} {
		h := hermite(x, l)
		assert.InDelta(t, 1.0, h[0]+h[2], tol)

		// a rigid rotation θ: w = -θx, φ = θ
		theta := 0.2
		w := h[0]*0 + h[1]*theta + h[2]*(-theta*l) + h[3]*theta
		assert.InDelta(t, -theta*x, w, tol)
	}
}
