package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/logging"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	frameFile          string
	frameCombo         string
	frameUseSimplified bool
	frameStations      int
	frameShowMembers   bool
	frameShowDiagram   bool
	frameExportFile    string
)

var frameSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a frame for one load combination",
	Long: `Assemble and solve a frame defined in a JSON file.

Loads are factored with the NSCP 2015 combination selected by --combo.
Without --combo every load case is applied unfactored.

Examples:
  goframe frame solve --file portal.json
  goframe frame solve -f portal.json --combo 2 --members
  goframe frame solve -f portal.json --combo 4 --diagram -o portal.png`,
	RunE: runFrameSolve,
}

func init() {
	frameCmd.AddCommand(frameSolveCmd)

	frameSolveCmd.Flags().StringVarP(&frameFile, "file", "f", "", "Path to frame JSON file [required]")
	frameSolveCmd.Flags().StringVarP(&frameCombo, "combo", "c", "", "Load combination ID (unfactored if omitted)")
	frameSolveCmd.Flags().BoolVarP(&frameUseSimplified, "simplified", "s", false, "Select --combo from the simplified combinations")
	frameSolveCmd.Flags().IntVarP(&frameStations, "stations", "n", 11, "Number of output stations along each member")
	frameSolveCmd.Flags().BoolVarP(&frameShowMembers, "members", "m", false, "Print internal forces along every member")
	frameSolveCmd.Flags().BoolVar(&frameShowDiagram, "diagram", false, "Show ASCII moment and shear diagrams of every member")
	frameSolveCmd.Flags().StringVarP(&frameExportFile, "output", "o", "", "Export frame diagram to file (png, svg, pdf)")

	frameSolveCmd.MarkFlagRequired("file")
}

func selectCombination(id string, simplified bool) (nscp.LoadCombination, error) {
	if id == "" {
		return nscp.Unfactored(), nil
	}
	combinations := nscp.LoadCombinations
	if simplified {
		combinations = nscp.SimplifiedCombinations
	}
	combo, ok := nscp.FindCombination(id, combinations)
	if !ok {
		return nscp.LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
	}
	return combo, nil
}

func runFrameSolve(cmd *cobra.Command, args []string) error {
	combo, err := selectCombination(frameCombo, frameUseSimplified)
	if err != nil {
		return err
	}

	in, err := frame.LoadFromFile(frameFile)
	if err != nil {
		return err
	}
	m, err := in.Build(combo, frame.WithLogger(logging.GetLogger()))
	if err != nil {
		return err
	}

	// Run analysis
	res, err := m.Solve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "PLANE FRAME ANALYSIS")

	if in.Name != "" {
		fmt.Fprintf(out, "  Frame: %s\n", in.Name)
	}
	if in.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", in.Description)
	}
	fmt.Fprintf(out, "  Load combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Fprintf(out, "  Nodes: %d  Elements: %d  Free dofs: %d\n\n",
		len(m.Nodes()), len(m.Elements()), len(m.FreeDofs()))

	printNodeResults(out, m, res)

	elements := m.Elements()
	printHeading(out, "MEMBER END FORCES (local)")
	w := newTable(out)
	fmt.Fprintf(w, "  Member\tNodes\tN1\tV1\tM1\tN2\tV2\tM2\n")
	for _, e := range elements {
		ue, err := res.ElementDisplacements(e)
		if err != nil {
			return err
		}
		n1, n2 := e.Nodes()
		f := e.EndForces(ue)
		fmt.Fprintf(w, "  #%d\t%d-%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			e.ID(), n1.Dofs()[0]/3, n2.Dofs()[0]/3, f[0], f[1], f[2], f[3], f[4], f[5])
	}
	w.Flush()
	fmt.Fprintln(out)

	for _, e := range elements {
		ue, err := res.ElementDisplacements(e)
		if err != nil {
			return err
		}
		if frameShowMembers {
			printMemberResults(out, e, ue, frameStations)
		}
		if frameShowDiagram {
			opts := diagram.ChartOptions{Width: 60, Height: 8}
			fmt.Fprintf(out, "MEMBER #%d\n", e.ID())
			fmt.Fprintln(out, diagram.MomentChart(e, ue, opts))
			fmt.Fprintln(out)
			fmt.Fprintln(out, diagram.ShearChart(e, ue, opts))
			fmt.Fprintln(out)
		}
	}

	if frameExportFile != "" {
		title := in.Name
		if title == "" {
			title = "Frame analysis"
		}
		if err := exportMembers(frameExportFile, title, elements, res); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram exported to: %s\n\n", frameExportFile)
	}

	return nil
}
