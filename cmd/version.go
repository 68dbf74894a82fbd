package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Plane frame analysis by the direct stiffness method")
		fmt.Fprintln(out, "Load combinations based on NSCP 2015 (National Structural Code of the Philippines)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
