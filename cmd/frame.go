package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Plane frame analysis from a JSON model",
	Long: `Solve plane frames made of beam-column members defined in JSON
files by the direct stiffness method.

Subcommands:
  solve  - Displacements, reactions and member forces for a load combination

Node indices and element indices start at 0. Nodal loads are global
(fx, fz, m); distributed loads are local to the member (qx along the
member, qz transverse). Loads carry a case (dead, live, roof, wind,
earthquake, rain) that is factored by the selected combination.

Example JSON file structure:
{
  "name": "Portal frame",
  "sections": {
    "column": {"ea": 5e6, "ei": 1e5},
    "girder": {"shape": {"fc": 28, "vertices": [
      {"x": 0, "y": 0}, {"x": 300, "y": 0},
      {"x": 300, "y": 500}, {"x": 0, "y": 500}]}}
  },
  "nodes": [
    {"x": 0, "z": 0, "fix": ["x", "z", "rotation"]},
    {"x": 0, "z": -4},
    {"x": 6, "z": -4},
    {"x": 6, "z": 0, "fix": ["x", "z", "rotation"]}
  ],
  "elements": [
    {"nodes": [0, 1], "section": "column"},
    {"nodes": [1, 2], "section": "girder"},
    {"nodes": [2, 3], "section": "column"}
  ],
  "nodal_loads": [{"node": 1, "case": "wind", "fx": 10}],
  "distributed_loads": [
    {"element": 1, "case": "dead", "qz": 12},
    {"element": 1, "case": "live", "qz": 5}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
