package section

import (
	"math"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()
	props.Ix = s.calculateIx(props.Area, props.CentroidY)

	return props
}

// Rigidity returns the axial and flexural stiffness of the section in frame
// units: EA in kN and EI in kN·m² (vertices in mm, E in MPa).
func (s *Section) Rigidity() (ea, ei float64) {
	props := s.CalculateProperties()
	e := s.Modulus()

	ea = e * props.Area / 1e3 // N → kN
	ei = e * props.Ix / 1e9   // N·mm² → kN·m²
	return ea, ei
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateIx integrates y² over the polygon edge by edge and shifts the
// result to the centroid
func (s *Section) calculateIx(area, cy float64) float64 {
	n := len(s.Vertices)
	if n < 3 || area == 0 {
		return 0
	}

	var signedArea, sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		sum += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
	}

	// Clockwise input flips the sign of every term
	ix := sum / 12
	if signedArea < 0 {
		ix = -ix
	}

	return ix - area*cy*cy
}
