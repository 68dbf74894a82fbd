package frame

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/node"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
)

// Input is the JSON description of a frame. Units are kN and m; sections
// given by shape are converted with section.Rigidity.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Rigidity replaces beam.DefaultRigidity when positive
	Rigidity float64 `json:"rigidity,omitempty"`

	Sections         map[string]SectionInput `json:"sections"`
	Nodes            []NodeInput             `json:"nodes"`
	Elements         []ElementInput          `json:"elements"`
	NodalLoads       []NodalLoadInput        `json:"nodal_loads,omitempty"`
	DistributedLoads []DistributedLoadInput  `json:"distributed_loads,omitempty"`
}

// SectionInput gives EA and EI directly or through a polygon shape.
// A property left at zero stays rigid.
type SectionInput struct {
	EA    float64          `json:"ea,omitempty"`
	EI    float64          `json:"ei,omitempty"`
	Shape *section.Section `json:"shape,omitempty"`
}

// NodeInput is a node position with its restrained dofs ("x", "z", "rotation")
type NodeInput struct {
	X   float64  `json:"x"`
	Z   float64  `json:"z"`
	Fix []string `json:"fix,omitempty"`
}

// ElementInput connects two node indices
type ElementInput struct {
	Nodes   [2]int `json:"nodes"`
	Section string `json:"section,omitempty"`
}

// NodalLoadInput is a global nodal load. An empty case is applied unfactored.
type NodalLoadInput struct {
	Node int     `json:"node"`
	Case string  `json:"case,omitempty"`
	Fx   float64 `json:"fx,omitempty"`
	Fz   float64 `json:"fz,omitempty"`
	M    float64 `json:"m,omitempty"`
}

// DistributedLoadInput is a local distributed load on one element
type DistributedLoadInput struct {
	Element int     `json:"element"`
	Case    string  `json:"case,omitempty"`
	Qx      float64 `json:"qx,omitempty"`
	Qz      float64 `json:"qz,omitempty"`
}

// LoadFromFile loads a frame definition from a JSON file
func LoadFromFile(filepath string) (*Input, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath, err)
	}
	return &in, nil
}

// Build creates the model with every load factored by combo
func (in *Input) Build(combo nscp.LoadCombination, opts ...Option) (*Model, error) {
	if in.Rigidity > 0 {
		opts = append(opts, WithRigidity(in.Rigidity))
	}
	m := New(opts...)

	for i, n := range in.Nodes {
		m.AddNode(n.X, n.Z)
		for _, name := range n.Fix {
			d, err := node.ParseDof(name)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			if err := m.Fix(i, d); err != nil {
				return nil, err
			}
		}
	}

	for k, el := range in.Elements {
		sectionOpts, err := in.sectionOptions(el.Section)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		if _, err := m.AddElement(el.Nodes[0], el.Nodes[1], sectionOpts...); err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
	}

	for _, l := range in.NodalLoads {
		factor, err := loadFactor(combo, l.Case)
		if err != nil {
			return nil, err
		}
		if err := m.AddNodalLoad(l.Node, [3]float64{factor * l.Fx, factor * l.Fz, factor * l.M}); err != nil {
			return nil, err
		}
	}

	// Elements keep a single distributed load, so cases are combined first
	q := make(map[int][2]float64)
	for _, l := range in.DistributedLoads {
		factor, err := loadFactor(combo, l.Case)
		if err != nil {
			return nil, err
		}
		sum := q[l.Element]
		q[l.Element] = [2]float64{sum[0] + factor*l.Qx, sum[1] + factor*l.Qz}
	}
	keys := make([]int, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if err := m.AddDistributedLoad(k, q[k][0], q[k][1]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (in *Input) sectionOptions(name string) ([]beam.SectionOption, error) {
	if name == "" {
		return nil, nil
	}
	s, ok := in.Sections[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSection, name)
	}

	ea, ei := s.EA, s.EI
	if s.Shape != nil {
		if err := s.Shape.Validate(); err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
		ea, ei = s.Shape.Rigidity()
	}

	var opts []beam.SectionOption
	if ea != 0 {
		opts = append(opts, beam.WithEA(ea))
	}
	if ei != 0 {
		opts = append(opts, beam.WithEI(ei))
	}
	return opts, nil
}

func loadFactor(combo nscp.LoadCombination, name string) (float64, error) {
	if name == "" {
		return 1, nil
	}
	c, err := nscp.ParseLoadCase(name)
	if err != nil {
		return 0, err
	}
	return combo.Factor(c), nil
}
