package frame

import (
	"errors"
	"math"
	"sync"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/node"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result holds the solution of a model
type Result struct {
	// U has one entry per equation; restrained entries are zero
	U *mat.VecDense
	// Reactions holds K·U − F at restrained equations and zero elsewhere
	Reactions *mat.VecDense
}

// ElementDisplacements returns the element's six global displacements, the
// input expected by the element's postprocessing methods
func (r *Result) ElementDisplacements(e *beam.Element) ([6]float64, error) {
	return e.Gather(r.U)
}

// NodeDisplacements returns (u, w, φ) of a node
func (r *Result) NodeDisplacements(n *node.Node) [3]float64 {
	return gather3(r.U, n.Dofs())
}

// NodeReactions returns the support reaction (Rx, Rz, M) of a node
func (r *Result) NodeReactions(n *node.Node) [3]float64 {
	return gather3(r.Reactions, n.Dofs())
}

func gather3(v mat.Vector, dofs [3]int) [3]float64 {
	var out [3]float64
	for i, d := range dofs {
		out[i] = v.AtVec(d)
	}
	return out
}

// Assemble builds the global stiffness matrix and load vector. Element
// matrices are computed concurrently and added in element order.
func (m *Model) Assemble() (*mat.SymDense, *mat.VecDense, error) {
	ndof := m.Ndof()
	if ndof == 0 {
		return nil, nil, ErrEmptyModel
	}

	ks := make([]*mat.SymDense, len(m.elements))
	var wg sync.WaitGroup
	for i, e := range m.elements {
		wg.Add(1)
		go func(i int, e *beam.Element) {
			defer wg.Done()
			ks[i] = e.Stiffness()
		}(i, e)
	}
	wg.Wait()

	k := mat.NewSymDense(ndof, nil)
	for i, e := range m.elements {
		dofs := e.GlobalDofs()
		for a := 0; a < 6; a++ {
			for b := a; b < 6; b++ {
				ra, rb := dofs[a], dofs[b]
				k.SetSym(ra, rb, k.At(ra, rb)+ks[i].At(a, b))
			}
		}
	}

	f := mat.NewVecDense(ndof, nil)
	for _, n := range m.nodes {
		load := n.Load()
		for i, d := range n.Dofs() {
			f.SetVec(d, load[i])
		}
	}

	m.logger.Debug("assembled",
		"nodes", len(m.nodes),
		"elements", len(m.elements),
		"ndof", ndof)

	return k, f, nil
}

// Solve assembles the model, solves for the free equations and recovers the
// reactions. A model without free equations yields U = 0.
func (m *Model) Solve() (*Result, error) {
	k, f, err := m.Assemble()
	if err != nil {
		return nil, err
	}

	ndof := m.Ndof()
	free := m.FreeDofs()
	u := mat.NewVecDense(ndof, nil)

	if nf := len(free); nf > 0 {
		if dofs := unstiffened(k, free); len(dofs) > 0 {
			return nil, &MechanismError{Dofs: dofs}
		}

		kff := mat.NewSymDense(nf, nil)
		ff := mat.NewVecDense(nf, nil)
		for a, ra := range free {
			ff.SetVec(a, f.AtVec(ra))
			for b := a; b < nf; b++ {
				kff.SetSym(a, b, k.At(ra, free[b]))
			}
		}

		uf, err := m.solveReduced(kff, ff)
		if err != nil {
			return nil, err
		}
		for a, ra := range free {
			u.SetVec(ra, uf.AtVec(a))
		}
	}

	reactions := mat.NewVecDense(ndof, nil)
	reactions.MulVec(k, u)
	reactions.SubVec(reactions, f)
	for dof := 0; dof < ndof; dof++ {
		if !m.fixed[dof] {
			reactions.SetVec(dof, 0)
		}
	}

	m.logger.Info("solved",
		"free", len(free),
		"restrained", ndof-len(free),
		"max_displacement", floats.Norm(u.RawVector().Data, math.Inf(1)))

	return &Result{U: u, Reactions: reactions}, nil
}

// solveReduced tries Cholesky first and falls back to LU for matrices that
// are not numerically positive definite
func (m *Model) solveReduced(k *mat.SymDense, f *mat.VecDense) (*mat.VecDense, error) {
	var u mat.VecDense
	var chol mat.Cholesky
	var err error

	if chol.Factorize(k) {
		err = chol.SolveVecTo(&u, f)
	} else {
		m.logger.Debug("stiffness matrix is not positive definite, using LU")
		err = u.SolveVec(k, f)
	}

	var cond mat.Condition
	switch {
	case errors.As(err, &cond):
		if math.IsInf(float64(cond), 1) {
			return nil, &MechanismError{Condition: float64(cond)}
		}
		m.logger.Warn("ill-conditioned stiffness matrix",
			"condition", float64(cond),
			"hint", "lower the rigidity value or check the supports")
	case err != nil:
		return nil, err
	}

	for _, v := range u.RawVector().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &MechanismError{Condition: float64(cond)}
		}
	}
	return &u, nil
}

// unstiffened returns the free equations with a zero diagonal: nothing
// connects to them, so the structure cannot be in equilibrium
func unstiffened(k mat.Symmetric, free []int) []int {
	var dofs []int
	for _, d := range free {
		if k.At(d, d) == 0 {
			dofs = append(dofs, d)
		}
	}
	return dofs
}
