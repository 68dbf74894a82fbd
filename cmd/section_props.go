package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var (
	propsFile        string
	propsWidth       float64
	propsHeight      float64
	propsFc          float64
	propsE           float64
	propsShowDiagram bool
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate section properties and rigidities",
	Long: `Calculate area, centroid and second moment of area of a section,
and the rigidities EA (kN) and EI (kN·m²) for frame members.

The section is read from a JSON file or given as a rectangle.

Examples:
  goframe section props --file t-beam.json --diagram
  goframe section props --width 300 --height 500 --fc 28
  goframe section props -b 200 -H 400 --e 200000`,
	RunE: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&propsFile, "file", "f", "", "Path to section JSON file")

	// Rectangle flags
	sectionPropsCmd.Flags().Float64VarP(&propsWidth, "width", "b", 0, "Rectangle width (mm)")
	sectionPropsCmd.Flags().Float64VarP(&propsHeight, "height", "H", 0, "Rectangle height (mm)")

	// Material flags
	sectionPropsCmd.Flags().Float64Var(&propsFc, "fc", 0, "Concrete compressive strength f'c (MPa)")
	sectionPropsCmd.Flags().Float64Var(&propsE, "e", 0, "Modulus of elasticity E (MPa), overrides f'c")

	sectionPropsCmd.Flags().BoolVar(&propsShowDiagram, "diagram", false, "Show ASCII section diagram")

	sectionPropsCmd.MarkFlagsMutuallyExclusive("file", "width")
	sectionPropsCmd.MarkFlagsMutuallyExclusive("file", "height")
	sectionPropsCmd.MarkFlagsRequiredTogether("width", "height")
}

func loadSection() (*section.Section, error) {
	if propsFile != "" {
		sec, err := section.LoadFromFile(propsFile)
		if err != nil {
			return nil, err
		}
		if propsFc > 0 {
			sec.Fc = propsFc
		}
		if propsE > 0 {
			sec.E = propsE
		}
		return sec, sec.Validate()
	}
	if propsWidth <= 0 || propsHeight <= 0 {
		return nil, errors.New("provide --file or a positive --width and --height")
	}
	sec := section.Rectangle(propsWidth, propsHeight)
	sec.Fc = propsFc
	sec.E = propsE
	return sec, sec.Validate()
}

func runSectionProps(cmd *cobra.Command, args []string) error {
	sec, err := loadSection()
	if err != nil {
		return err
	}

	props := sec.CalculateProperties()
	ea, ei := sec.Rigidity()

	out := cmd.OutOrStdout()
	printHeader(out, "SECTION PROPERTIES")

	if sec.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", sec.Description)
	}
	fmt.Fprintln(out)

	// Material
	printHeading(out, "MATERIAL")
	w := newTable(out)
	if sec.Fc > 0 {
		fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", sec.Fc)
		fmt.Fprintf(w, "  n = Es/Ec:\t%.2f\n", nscp.ModularRatio(sec.Fc))
	}
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", sec.Modulus())
	w.Flush()
	fmt.Fprintln(out)

	// Geometry
	printHeading(out, "SECTION GEOMETRY")
	w = newTable(out)
	fmt.Fprintf(w, "  Width (max):\t%.0f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.0f mm\n", props.Height)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Ix:\t%.6g mm⁴\n", props.Ix)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Fprintln(out)

	if propsShowDiagram {
		vertices := make([]diagram.Point, len(sec.Vertices))
		for i, v := range sec.Vertices {
			vertices[i] = diagram.Point{X: v.X, Y: v.Y}
		}
		fmt.Fprintln(out, diagram.DrawSection(vertices, props.CentroidY))
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("RIGIDITY", []string{
		fmt.Sprintf("EA = %.6g kN", ea),
		fmt.Sprintf("EI = %.6g kN·m²", ei),
	}))
	fmt.Fprintln(out)

	return nil
}
