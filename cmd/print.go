package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printHeading(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printMatrix(out io.Writer, m mat.Matrix) {
	fmt.Fprintf(out, "  %.4g\n", mat.Formatted(m, mat.Prefix("  "), mat.Squeeze()))
}
