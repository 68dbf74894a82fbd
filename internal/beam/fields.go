package beam

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Stations returns n equally spaced positions on [0, L]
func (e *Element) Stations(n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, e.length)
}

// LocalDisplacements rotates the element's global displacements to local axes
func (e *Element) LocalDisplacements(ue [6]float64) [6]float64 {
	return e.toLocal(ue)
}

// EndForces returns the member-end forces in local axes, k·ul minus the
// equivalent nodal loads of the distributed load
func (e *Element) EndForces(ue [6]float64) [6]float64 {
	ul := e.toLocal(ue)

	var f [6]float64
	dst := mat.NewVecDense(6, f[:])
	dst.MulVec(e.LocalStiffness(), mat.NewVecDense(6, ul[:]))
	for i := range f {
		f[i] -= e.localLoad[i]
	}
	return f
}

// BendingMoments evaluates M(x) = -EI·w''(x) at n stations. ue holds the
// element's displacements in global axes (see Gather). The field is exact:
// Hermite curvature of the nodal values plus the particular solution of the
// current transverse load.
func (e *Element) BendingMoments(ue [6]float64, n int) []float64 {
	ul := e.toLocal(ue)
	l, q, ei := e.length, e.q[1], e.ei
	w1, phi1, w2, phi2 := ul[1], ul[2], ul[4], ul[5]

	xs := e.Stations(n)
	m := make([]float64, len(xs))
	for i, x := range xs {
		d2 := hermiteCurvature(x, l)
		curv := d2[0]*w1 + d2[1]*phi1 + d2[2]*w2 + d2[3]*phi2
		m[i] = -ei*curv + q*(-l*l+6*l*x-6*x*x)/12
	}
	return m
}

// ShearForces evaluates V(x) = dM/dx at n stations
func (e *Element) ShearForces(ue [6]float64, n int) []float64 {
	ul := e.toLocal(ue)
	l, q, ei := e.length, e.q[1], e.ei
	w1, phi1, w2, phi2 := ul[1], ul[2], ul[4], ul[5]

	// w''' is constant for cubic interpolation
	d3 := hermiteThird(l)
	v0 := -ei * (d3[0]*w1 + d3[1]*phi1 + d3[2]*w2 + d3[3]*phi2)

	xs := e.Stations(n)
	v := make([]float64, len(xs))
	for i, x := range xs {
		v[i] = v0 + q*(l-2*x)/2
	}
	return v
}

// NormalForces evaluates N(x) = EA·du/dx at n stations (tension positive)
func (e *Element) NormalForces(ue [6]float64, n int) []float64 {
	ul := e.toLocal(ue)
	l, qx, ea := e.length, e.q[0], e.ea
	u1, u2 := ul[0], ul[3]

	xs := e.Stations(n)
	nf := make([]float64, len(xs))
	for i, x := range xs {
		nf[i] = ea*(u2-u1)/l + qx*(l-2*x)/2
	}
	return nf
}

// FullDisplacement evaluates the axial u(x) and transverse w(x) fields at n
// stations. Both reproduce the nodal values exactly at x = 0 and x = L.
func (e *Element) FullDisplacement(ue [6]float64, n int) (u, w []float64) {
	ul := e.toLocal(ue)
	l, qx, qz := e.length, e.q[0], e.q[1]
	ea, ei := e.ea, e.ei
	u1, w1, phi1, u2, w2, phi2 := ul[0], ul[1], ul[2], ul[3], ul[4], ul[5]

	xs := e.Stations(n)
	u = make([]float64, len(xs))
	w = make([]float64, len(xs))
	for i, x := range xs {
		u[i] = u1*(1-x/l) + u2*x/l + qx*x*(l-x)/(2*ea)

		h := hermite(x, l)
		w[i] = h[0]*w1 + h[1]*phi1 + h[2]*w2 + h[3]*phi2 +
			qz*(l*l*x*x-2*l*x*x*x+x*x*x*x)/(24*ei)
	}
	return u, w
}

// hermite returns the cubic shape functions for [w1, φ1, w2, φ2] with φ = -w'
func hermite(x, l float64) [4]float64 {
	r := x / l
	rr := r * r
	rrr := rr * r
	return [4]float64{
		1 - 3*rr + 2*rrr,
		-x + 2*x*r - x*rr,
		3*rr - 2*rrr,
		x*r - x*rr,
	}
}

// hermiteCurvature returns the second derivatives of hermite
func hermiteCurvature(x, l float64) [4]float64 {
	ll := l * l
	return [4]float64{
		(-6 + 12*x/l) / ll,
		4/l - 6*x/ll,
		(6 - 12*x/l) / ll,
		2/l - 6*x/ll,
	}
}

// hermiteThird returns the (constant) third derivatives of hermite
func hermiteThird(l float64) [4]float64 {
	ll := l * l
	lll := ll * l
	return [4]float64{
		12 / lll,
		-6 / ll,
		-12 / lll,
		-6 / ll,
	}
}
