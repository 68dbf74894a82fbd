package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal section properties and rigidities",
	Long: `Compute the geometric properties of a member cross-section and
the rigidities EA and EI used by frame members.

Sections are simple polygons given in millimetres with the y-axis
pointing up. Bending in the frame plane is about the horizontal
centroidal axis. E is taken directly when given, otherwise it is
derived from f'c as 4700√f'c (NSCP 2015).

Subcommands:
  props  - Area, centroid, second moment of area, EA and EI

Example JSON file structure:
{
  "name": "T-Beam Section",
  "fc": 28,
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": -300, "y": 500},
    {"x": -300, "y": 400},
    {"x": 0, "y": 400}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
