package frame

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goframe/internal/logging"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalJSON = `{
  "name": "portal",
  "sections": {
    "column": {"ea": 1e7, "ei": 2e5},
    "girder": {
      "shape": {
        "name": "300x500",
        "e": 25000,
        "vertices": [
          {"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 500}, {"x": 0, "y": 500}
        ]
      }
    }
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
  "nodal_loads": [
    {"node": 1, "case": "wind", "fx": 10}
  ],
  "distributed_loads": [
    {"element": 1, "case": "dead", "qz": 5},
    {"element": 1, "case": "live", "qz": 3}
  ]
}`

func writeInput(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	in, err := LoadFromFile(writeInput(t, portalJSON))
	require.NoError(t, err)

	assert.Equal(t, "portal", in.Name)
	assert.Len(t, in.Nodes, 4)
	assert.Len(t, in.Elements, 3)
	assert.Equal(t, []string{"x", "z", "rotation"}, in.Nodes[0].Fix)
	require.NotNil(t, in.Sections["girder"].Shape)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeInput(t, `{"nodes": [`))
	assert.Error(t, err)
}

func TestBuildFactored(t *testing.T) {
	in, err := LoadFromFile(writeInput(t, portalJSON))
	require.NoError(t, err)

	combo, ok := nscp.FindCombination("2", nscp.LoadCombinations)
	require.True(t, ok)
	m, err := in.Build(combo, WithLogger(logging.Discard()))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, m.FreeDofs())

	girder, err := m.Element(1)
	require.NoError(t, err)
	qx, qz := girder.DistributedLoad()
	assert.Zero(t, qx)
	assert.InDelta(t, 1.2*5+1.6*3, qz, 1e-12)

	assert.InDelta(t, 25000*150000/1e3, girder.EA(), 1e-6)
	assert.InDelta(t, 25000*3.125e9/1e9, girder.EI(), 1e-6)

	// wind does not enter combination 2
	assert.InDelta(t, 0, m.Nodes()[1].Load()[0], 1e-12)

	res, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, 12, res.U.Len())
}

func TestBuildUnfactored(t *testing.T) {
	in, err := LoadFromFile(writeInput(t, portalJSON))
	require.NoError(t, err)

	m, err := in.Build(nscp.Unfactored(), WithLogger(logging.Discard()))
	require.NoError(t, err)

	girder, err := m.Element(1)
	require.NoError(t, err)
	_, qz := girder.DistributedLoad()
	assert.InDelta(t, 8, qz, 1e-12)
	assert.InDelta(t, 10, m.Nodes()[1].Load()[0], 1e-12)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{
			name: "unknown section",
			input: Input{
				Nodes:    []NodeInput{{X: 0}, {X: 1}},
				Elements: []ElementInput{{Nodes: [2]int{0, 1}, Section: "nope"}},
			},
			want: ErrUnknownSection,
		},
		{
			name: "unknown node",
			input: Input{
				Nodes:    []NodeInput{{X: 0}},
				Elements: []ElementInput{{Nodes: [2]int{0, 4}}},
			},
			want: ErrUnknownNode,
		},
		{
			name: "unknown element",
			input: Input{
				Nodes:            []NodeInput{{X: 0}, {X: 1}},
				DistributedLoads: []DistributedLoadInput{{Element: 0, Qz: 1}},
			},
			want: ErrUnknownElement,
		},
		{
			name: "invalid shape",
			input: Input{
				Sections: map[string]SectionInput{"s": {Shape: section.Rectangle(1, 1)}},
				Nodes:    []NodeInput{{X: 0}, {X: 1}},
				Elements: []ElementInput{{Nodes: [2]int{0, 1}, Section: "s"}},
			},
			want: section.ErrInvalidSection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.Build(nscp.Unfactored(), WithLogger(logging.Discard()))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	bad := Input{Nodes: []NodeInput{{X: 0, Fix: []string{"y"}}}}
	_, err := bad.Build(nscp.Unfactored(), WithLogger(logging.Discard()))
	assert.Error(t, err)

	bad = Input{
		Nodes:      []NodeInput{{X: 0}},
		NodalLoads: []NodalLoadInput{{Node: 0, Case: "snow", Fz: 1}},
	}
	_, err = bad.Build(nscp.Unfactored(), WithLogger(logging.Discard()))
	assert.Error(t, err)
}

func TestBuildRigidity(t *testing.T) {
	in := Input{
		Rigidity: 1e8,
		Nodes:    []NodeInput{{X: 0}, {X: 2}},
		Elements: []ElementInput{{Nodes: [2]int{0, 1}}},
	}
	m, err := in.Build(nscp.Unfactored(), WithLogger(logging.Discard()))
	require.NoError(t, err)

	e, err := m.Element(0)
	require.NoError(t, err)
	assert.Equal(t, 1e8, e.EA())
	assert.Equal(t, 1e8, e.EI())
}
