package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored loads
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64

	// Options
	loadShowAll       bool
	loadUseSimplified bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Factor loads using NSCP load combinations",
	Long: `Calculate the governing factored value of a load effect based on
NSCP 2015 load combinations.

The values can be distributed loads (kN/m), nodal forces (kN) or
moments (kN-m); they are combined linearly. The governing result is
the one of largest magnitude.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads on a girder (kN/m)
  goframe load --dead 12 --live 5

  # With wind load
  goframe load --dead 12 --live 5 --wind 4

  # Show all combinations
  goframe load --dead 12 --live 5 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	// Load flags
	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load (D)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load (L)")
	loadCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load (Lr)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load (W)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Earthquake load (E)")
	loadCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load (R)")

	// Options
	loadCmd.Flags().BoolVarP(&loadShowAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&loadUseSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	loads := nscp.Loads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
	}
	if loads.IsZero() {
		return errors.New("provide at least one unfactored load, see 'goframe load --help'")
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if loadUseSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	out := cmd.OutOrStdout()
	printHeader(out, "NSCP 2015 FACTORED LOAD CALCULATION")

	printHeading(out, "UNFACTORED LOADS")
	w := newTable(out)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", loads.Dead},
		{"Live Load (L)", loads.Live},
		{"Roof Live Load (Lr)", loads.Roof},
		{"Wind Load (W)", loads.Wind},
		{"Earthquake Load (E)", loads.Earthquake},
		{"Rain Load (R)", loads.Rain},
	} {
		if row.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", row.label, row.value)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	governing, governingCombo := nscp.Governing(loads, combinations)

	if loadShowAll {
		printHeading(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3)")
		w = newTable(out)
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(loads), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printHeading(out, "RESULT")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n\n", governingCombo.ID, governingCombo.Description)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED LOAD = %.2f\n", governing)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}
