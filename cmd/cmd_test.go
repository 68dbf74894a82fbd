package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalJSON = `{
  "name": "portal",
  "sections": {
    "column": {"ea": 1e7, "ei": 2e5},
    "girder": {"shape": {"e": 25000, "vertices": [
      {"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 500}, {"x": 0, "y": 500}]}}
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
    {"nodes": [3, 2], "section": "column"}
  ],
  "nodal_loads": [{"node": 1, "case": "wind", "fx": 10}],
  "distributed_loads": [
    {"element": 1, "case": "dead", "qz": 5},
    {"element": 1, "case": "live", "qz": 3}
  ]
}`

// resetFlags restores every flag to its default so runs do not leak state
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "goframe v")
}

func TestMemberStiffness(t *testing.T) {
	out, err := execute(t, "member", "stiffness", "--x2", "5", "--ea", "1e7", "--ei", "2e5", "-t")
	require.NoError(t, err)
	assert.Contains(t, out, "TRANSFORMATION MATRIX")
	assert.Contains(t, out, "LOCAL STIFFNESS MATRIX k")
	assert.Contains(t, out, "GLOBAL STIFFNESS MATRIX")
	assert.Contains(t, out, "5.0000")
}

func TestMemberStiffnessDegenerate(t *testing.T) {
	_, err := execute(t, "member", "stiffness", "--x2", "0")
	assert.Error(t, err)
}

func TestMemberAnalyze(t *testing.T) {
	out, err := execute(t, "member", "analyze",
		"--x2", "6", "--ea", "1e7", "--ei", "2e5", "--qz", "10",
		"--support", "simple", "--stations", "7", "--diagram")
	require.NoError(t, err)

	assert.Contains(t, out, "REACTIONS")
	assert.Contains(t, out, "Max |M| = 45.0000 at x = 3.000")
	assert.Contains(t, out, "Bending moment")
}

func TestMemberAnalyzeUnknownSupport(t *testing.T) {
	_, err := execute(t, "member", "analyze", "--x2", "6", "--ei", "2e5", "--support", "hinge")
	assert.ErrorContains(t, err, "unknown support condition")
}

func TestMemberAnalyzeExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "member.svg")
	out, err := execute(t, "member", "analyze", "--x2", "4", "--ei", "2e5", "--qz", "5",
		"--support", "cantilever", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to")
	assert.FileExists(t, path)
}

func TestFrameSolve(t *testing.T) {
	file := writeFile(t, "portal.json", portalJSON)

	out, err := execute(t, "frame", "solve", "--file", file, "--combo", "2", "--members")
	require.NoError(t, err)
	assert.Contains(t, out, "PLANE FRAME ANALYSIS")
	assert.Contains(t, out, "Frame: portal")
	assert.Contains(t, out, "Load combination: 2")
	assert.Contains(t, out, "Nodes: 4  Elements: 3  Free dofs: 6")
	assert.Contains(t, out, "MEMBER #3 INTERNAL FORCES")
}

func TestFrameSolveUnfactoredWithExport(t *testing.T) {
	file := writeFile(t, "portal.json", portalJSON)
	img := filepath.Join(t.TempDir(), "portal.png")

	out, err := execute(t, "frame", "solve", "-f", file, "--diagram", "-o", img)
	require.NoError(t, err)
	assert.Contains(t, out, "Load combination: 0")
	assert.FileExists(t, img)
}

func TestFrameSolveErrors(t *testing.T) {
	file := writeFile(t, "portal.json", portalJSON)

	_, err := execute(t, "frame", "solve", "-f", file, "--combo", "9")
	assert.ErrorContains(t, err, "unknown load combination")

	_, err = execute(t, "frame", "solve", "-f", file, "--combo", "3", "--simplified")
	assert.ErrorContains(t, err, "unknown load combination")

	_, err = execute(t, "frame", "solve", "-f", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSectionPropsRectangle(t *testing.T) {
	out, err := execute(t, "section", "props", "--width", "300", "--height", "500", "--fc", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "150000 mm²")
	assert.Contains(t, out, "EI = 77718.9 kN·m²")
}

func TestSectionPropsFile(t *testing.T) {
	file := writeFile(t, "section.json", `{
  "name": "square",
  "e": 20000,
  "vertices": [{"x": 0, "y": 0}, {"x": 100, "y": 0}, {"x": 100, "y": 100}, {"x": 0, "y": 100}]
}`)

	out, err := execute(t, "section", "props", "--file", file, "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Section: square")
	assert.Contains(t, out, "EA = 200000 kN")
	assert.Contains(t, out, "centroid")
}

func TestSectionPropsErrors(t *testing.T) {
	_, err := execute(t, "section", "props")
	assert.Error(t, err)

	_, err = execute(t, "section", "props", "--width", "300", "--height", "500")
	assert.Error(t, err, "no modulus")

	_, err = execute(t, "section", "props", "--file", "x.json", "--width", "300", "--height", "500")
	assert.Error(t, err)
}

func TestLoadCommand(t *testing.T) {
	out, err := execute(t, "load", "--dead", "12", "--live", "5", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Governing Combination: 2")
	assert.Contains(t, out, "FACTORED LOAD = 22.40")
	assert.Contains(t, out, "← GOVERNS")
}

func TestLoadCommandRequiresLoads(t *testing.T) {
	_, err := execute(t, "load")
	assert.ErrorContains(t, err, "at least one")
}
