package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goframe/internal/logging"
	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Plane frame analysis with beam-column elements",
	Long: `goframe - Go Plane Frame Analyzer

A CLI tool for the linear static analysis of plane frames by the
direct stiffness method.

Each member is a prismatic beam-column element combining axial
extension with Euler-Bernoulli bending. The tool helps structural
engineers:
  - Inspect member stiffness matrices (local and global)
  - Analyze single members under distributed loads
  - Solve frames defined in JSON files for displacements,
    reactions, member end forces and internal force diagrams
  - Compute section properties (A, I, EA, EI) of polygonal sections
  - Factor loads using NSCP 2015 load combinations

Sign convention: x to the right, z downward, positive moments sag.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		format, err := logging.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		logging.InitLogger(level, format, cmd.ErrOrStderr())
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goframe v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Plane Frame Analyzer                                 ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for plane frame analysis by the direct stiffness method.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Beam-column member stiffness (axial + bending)")
		fmt.Fprintln(out, "    • Single member analysis with moment and deflection diagrams")
		fmt.Fprintln(out, "    • Frame solution from JSON model files")
		fmt.Fprintln(out, "    • Polygonal section properties and rigidities")
		fmt.Fprintln(out, "    • NSCP 2015 load combinations")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goframe --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
