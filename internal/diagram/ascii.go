package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/guptarohit/asciigraph"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// ChartOptions sets the size of terminal charts in characters
type ChartOptions struct {
	Width  int // plot columns, also the number of stations (default 60)
	Height int // plot rows (default 12)
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width < 2 {
		o.Width = 60
	}
	if o.Height <= 0 {
		o.Height = 12
	}
	return o
}

// MomentChart draws the bending-moment diagram of an element. Sagging
// moments are plotted above the axis.
func MomentChart(e *beam.Element, ue [6]float64, opts ChartOptions) string {
	opts = opts.withDefaults()
	m := e.BendingMoments(ue, opts.Width)
	caption := fmt.Sprintf("Bending moment, element #%d (L = %.3f)", e.ID(), e.Length())
	return chart(m, opts, caption)
}

// ShearChart draws the shear-force diagram of an element
func ShearChart(e *beam.Element, ue [6]float64, opts ChartOptions) string {
	opts = opts.withDefaults()
	v := e.ShearForces(ue, opts.Width)
	caption := fmt.Sprintf("Shear force, element #%d (L = %.3f)", e.ID(), e.Length())
	return chart(v, opts, caption)
}

// DeflectionChart draws the transverse displacement of an element with
// downward deflection plotted downward
func DeflectionChart(e *beam.Element, ue [6]float64, opts ChartOptions) string {
	opts = opts.withDefaults()
	_, w := e.FullDisplacement(ue, opts.Width)
	up := make([]float64, len(w))
	for i := range w {
		up[i] = -w[i]
	}
	caption := fmt.Sprintf("Deflection, element #%d (positive down, plotted down)", e.ID())
	return chart(up, opts, caption)
}

func chart(series []float64, opts ChartOptions, caption string) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(0),
		asciigraph.Precision(precisionFor(series)),
		asciigraph.Caption(caption),
	)
}

// precisionFor picks enough decimals to show small displacements
func precisionFor(series []float64) uint {
	var peak float64
	for _, v := range series {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 || peak >= 1 {
		return 2
	}
	digits := int(math.Ceil(-math.Log10(peak))) + 2
	if digits > 8 {
		digits = 8
	}
	return uint(digits)
}

// DrawSection creates an ASCII picture of a polygonal section with the
// centroidal axis marked
func DrawSection(vertices []Point, centroidY float64) string {
	if len(vertices) < 3 {
		return ""
	}

	minX, maxX := vertices[0].X, vertices[0].X
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	if maxX == minX || maxY == minY {
		return ""
	}

	// Scale factors for ASCII drawing
	widthChars := 30
	heightChars := 15
	dx := (maxX - minX) / float64(widthChars)
	dy := (maxY - minY) / float64(heightChars)
	axisRow := int((maxY - centroidY) / dy)

	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < heightChars; row++ {
		y := maxY - (float64(row)+0.5)*dy
		xs := intersectionsAtY(vertices, y)

		sb.WriteString("  ")
		for col := 0; col < widthChars; col++ {
			x := minX + (float64(col)+0.5)*dx
			switch {
			case !inside(xs, x):
				sb.WriteString(" ")
			case row == axisRow:
				sb.WriteString("─")
			default:
				sb.WriteString("░")
			}
		}
		if row == axisRow {
			sb.WriteString(fmt.Sprintf(" ◄─ centroid (y = %.1f)", centroidY))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// intersectionsAtY finds the sorted X coordinates where a horizontal line
// crosses the polygon
func intersectionsAtY(vertices []Point, y float64) []float64 {
	var xs []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		v1, v2 := vertices[i], vertices[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	sort.Float64s(xs)
	return xs
}

// inside applies the even-odd rule to sorted crossings
func inside(xs []float64, x float64) bool {
	for i := 0; i+1 < len(xs); i += 2 {
		if x >= xs[i] && x <= xs[i+1] {
			return true
		}
	}
	return false
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if l := len([]rune(line)); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s with spaces to n runes
func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
