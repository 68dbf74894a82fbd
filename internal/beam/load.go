package beam

// AddDistributedLoad applies a constant distributed load given in local axes
// (qx along the element, qz transverse) and adds its statically equivalent
// nodal loads to both nodes.
//
// The element keeps only the last load it was given; the contribution already
// added to the nodes by an earlier call stays there.
func (e *Element) AddDistributedLoad(qx, qz float64) {
	l := e.length

	e.q = [2]float64{qx, qz}
	e.localLoad = [6]float64{
		0.5 * qx * l,
		0.5 * qz * l,
		-1.0 / 12.0 * qz * l * l,
		0.5 * qx * l,
		0.5 * qz * l,
		1.0 / 12.0 * qz * l * l,
	}

	g := e.toGlobal(e.localLoad)
	e.nodes[0].AddLoad([3]float64{g[0], g[1], g[2]})
	e.nodes[1].AddLoad([3]float64{g[3], g[4], g[5]})
}

// DistributedLoad returns the current local load (qx, qz)
func (e *Element) DistributedLoad() (qx, qz float64) {
	return e.q[0], e.q[1]
}

// LocalLoad returns the equivalent nodal loads in local axes
func (e *Element) LocalLoad() [6]float64 {
	return e.localLoad
}

// GlobalLoad returns the equivalent nodal loads in global axes
func (e *Element) GlobalLoad() [6]float64 {
	return e.toGlobal(e.localLoad)
}
