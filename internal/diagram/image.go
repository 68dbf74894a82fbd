package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/goframe/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	structureColor = color.Black
	momentColor    = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	displacedColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	nodeColor      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// NewPlot creates a plot in frame axes: x to the right and z downward
func NewPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"

	// z points down
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	return p
}

// AddStructure draws the elements with numbered nodes (n0, n1, ...) and
// element labels (#1, #2, ...) at mid-length
func AddStructure(p *plot.Plot, elements []*beam.Element) error {
	seen := make(map[beam.Node]bool)
	var nodePts plotter.XYs
	var nodeLabels []string
	var midPts plotter.XYs
	var elemLabels []string

	for _, e := range elements {
		n1, n2 := e.Nodes()
		x1, z1 := n1.Position()
		x2, z2 := n2.Position()

		line, err := plotter.NewLine(plotter.XYs{{X: x1, Y: z1}, {X: x2, Y: z2}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = structureColor
		p.Add(line)

		for _, n := range []beam.Node{n1, n2} {
			if seen[n] {
				continue
			}
			seen[n] = true
			x, z := n.Position()
			nodePts = append(nodePts, plotter.XY{X: x, Y: z})
			nodeLabels = append(nodeLabels, fmt.Sprintf("n%d", n.Dofs()[0]/3))
		}

		mx, mz := e.ToGlobal(e.Length()/2, 0)
		midPts = append(midPts, plotter.XY{X: mx, Y: mz})
		elemLabels = append(elemLabels, fmt.Sprintf("#%d", e.ID()))
	}

	if len(nodePts) == 0 {
		return nil
	}

	nodes, err := plotter.NewScatter(nodePts)
	if err != nil {
		return err
	}
	nodes.GlyphStyle.Color = nodeColor
	nodes.GlyphStyle.Radius = vg.Points(4)
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(nodes)

	for _, lbl := range []struct {
		pts    plotter.XYs
		labels []string
	}{
		{nodePts, nodeLabels},
		{midPts, elemLabels},
	} {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: lbl.pts, Labels: lbl.labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return nil
}

// AddMomentLine draws the bending-moment diagram of one element on the
// tension side: sagging moments are offset towards local +z. scale converts
// moment units into length units.
func AddMomentLine(p *plot.Plot, e *beam.Element, ue [6]float64, n int, scale float64) error {
	xs := e.Stations(n)
	m := e.BendingMoments(ue, n)
	if len(xs) < 2 {
		return nil
	}

	pts := make(plotter.XYs, 0, len(xs)+2)
	x0, z0 := e.ToGlobal(0, 0)
	pts = append(pts, plotter.XY{X: x0, Y: z0})
	for i, x := range xs {
		gx, gz := e.ToGlobal(x, scale*m[i])
		pts = append(pts, plotter.XY{X: gx, Y: gz})
	}
	x1, z1 := e.ToGlobal(e.Length(), 0)
	pts = append(pts, plotter.XY{X: x1, Y: z1})

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = momentColor
	p.Add(line)
	return nil
}

// AddDisplacedShape draws the deformed axis of one element with the
// displacements magnified by scale
func AddDisplacedShape(p *plot.Plot, e *beam.Element, ue [6]float64, n int, scale float64) error {
	xs := e.Stations(n)
	u, w := e.FullDisplacement(ue, n)
	if len(xs) < 2 {
		return nil
	}

	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		gx, gz := e.ToGlobal(x+scale*u[i], scale*w[i])
		pts[i] = plotter.XY{X: gx, Y: gz}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = displacedColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(line)
	return nil
}

// Export saves the plot; the format follows the extension and files
// without a known one are saved as PNG
func Export(p *plot.Plot, filename string) error {
	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
