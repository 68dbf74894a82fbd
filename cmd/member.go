package cmd

import (
	"math"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Single beam-column member stiffness and analysis",
	Long: `Inspect and analyze a single prismatic beam-column member
between two nodes (x1, z1) and (x2, z2).

Subcommands:
  stiffness  - Print the transformation and stiffness matrices
  analyze    - Solve the member for a support condition and load

Coordinates use x to the right and z downward. A section property
that is not given is treated as rigid.`,
}

func init() {
	rootCmd.AddCommand(memberCmd)
}

// sectionOptions passes on the properties the user supplied; zero means
// "not given" and leaves the property rigid
func sectionOptions(ea, ei float64) []beam.SectionOption {
	var opts []beam.SectionOption
	if ea != 0 {
		opts = append(opts, beam.WithEA(ea))
	}
	if ei != 0 {
		opts = append(opts, beam.WithEI(ei))
	}
	return opts
}

// peakAbs returns the value of largest magnitude and its index
func peakAbs(values []float64) (float64, int) {
	var peak float64
	at := 0
	for i, v := range values {
		if math.Abs(v) > math.Abs(peak) {
			peak, at = v, i
		}
	}
	return peak, at
}

// autoScale maps a peak value to a fraction of the member length for plots
func autoScale(peak, length, fraction float64) float64 {
	if peak == 0 {
		return 1
	}
	return fraction * length / math.Abs(peak)
}
