package beam

import "gonum.org/v1/gonum/mat"

// LocalStiffness returns the 6×6 stiffness matrix in local axes
func (e *Element) LocalStiffness() *mat.SymDense {
	return localStiffness(e.ea, e.ei, e.length)
}

// Stiffness returns the element stiffness matrix in global axes, K = Tᵀ·k·T.
// It is rebuilt from the current section properties on every call.
func (e *Element) Stiffness() *mat.SymDense {
	k := e.LocalStiffness()

	var kg mat.Dense
	kg.Product(e.t.T(), k, e.t)

	// the product is symmetric up to round-off; keep the stored matrix exact
	out := mat.NewSymDense(6, nil)
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			out.SetSym(i, j, 0.5*(kg.At(i, j)+kg.At(j, i)))
		}
	}
	return out
}

// localStiffness superposes the bar and the Euler-Bernoulli beam matrices
func localStiffness(ea, ei, l float64) *mat.SymDense {
	ll := l * l
	lll := ll * l

	a := ea / l         // axial
	b := 12.0 * ei / lll // transverse
	c := 6.0 * ei / ll  // coupling
	d := 4.0 * ei / l   // rotation
	f := 2.0 * ei / l   // carry-over

	return mat.NewSymDense(6, []float64{
		+a, 0, 0, -a, 0, 0,
		0, +b, -c, 0, -b, -c,
		0, -c, +d, 0, +c, +f,
		-a, 0, 0, +a, 0, 0,
		0, -b, +c, 0, +b, +c,
		0, -c, +f, 0, +c, +d,
	})
}
