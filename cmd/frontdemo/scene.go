// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
	"github.com/gogpu/front/mesh"
	"github.com/gogpu/front/state"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Scene is the YAML description of what the demo draws.
type Scene struct {
	Width    uint16               `yaml:"width"`
	Height   uint16               `yaml:"height"`
	Frames   int                  `yaml:"frames"`
	Clear    []float64            `yaml:"clear"`
	Program  ProgramSource        `yaml:"program"`
	Uniforms map[string][]float32 `yaml:"uniforms"`
	Vertices []Vertex             `yaml:"vertices"`
	Indices  []uint16             `yaml:"indices"`
	Topology string               `yaml:"topology"`
	Texture  string               `yaml:"texture"`
	Depth    string               `yaml:"depth"`
	Blend    string               `yaml:"blend"`
}

// ProgramSource holds the WGSL of the scene program.
type ProgramSource struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Vertex is one mesh vertex. It is stored in the vertex buffer as is.
type Vertex struct {
	Pos [3]float32 `yaml:"pos"`
	UV  [2]float32 `yaml:"uv"`
}

// Fields implements mesh.VertexFormat.
func (Vertex) Fields() []mesh.Field {
	return []mesh.Field{
		{Name: "pos", Count: 3, Type: attrib.F32, Offset: 0},
		{Name: "uv", Count: 2, Type: attrib.F32, Offset: 12},
	}
}

var errEmptyScene = errors.New("frontdemo: scene has no vertices")

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene and fills in defaults.
func ParseScene(data []byte) (*Scene, error) {
	s := &Scene{Width: 256, Height: 256, Frames: 1}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("frontdemo: parse scene: %w", err)
	}
	if len(s.Vertices) == 0 {
		return nil, errEmptyScene
	}
	if s.Program.Vertex == "" || s.Program.Fragment == "" {
		return nil, errors.New("frontdemo: scene program needs vertex and fragment source")
	}
	if s.Frames < 1 {
		s.Frames = 1
	}
	if _, err := s.topology(); err != nil {
		return nil, err
	}
	for name, v := range s.Uniforms {
		if _, err := uniformValue(v); err != nil {
			return nil, fmt.Errorf("frontdemo: uniform %q: %w", name, err)
		}
	}
	if _, err := s.drawState(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) topology() (gputypes.PrimitiveTopology, error) {
	switch s.Topology {
	case "", "triangles":
		return gputypes.PrimitiveTopologyTriangleList, nil
	case "triangle-strip":
		return gputypes.PrimitiveTopologyTriangleStrip, nil
	case "lines":
		return gputypes.PrimitiveTopologyLineList, nil
	case "line-strip":
		return gputypes.PrimitiveTopologyLineStrip, nil
	case "points":
		return gputypes.PrimitiveTopologyPointList, nil
	default:
		return 0, fmt.Errorf("frontdemo: unknown topology %q", s.Topology)
	}
}

func (s *Scene) clearColor() gputypes.Color {
	c := gputypes.ColorBlack
	if len(s.Clear) == 4 {
		c = gputypes.NewColor(s.Clear[0], s.Clear[1], s.Clear[2], s.Clear[3])
	}
	return c
}

func (s *Scene) drawState() (state.DrawState, error) {
	st := state.New()
	switch s.Depth {
	case "":
	case "less":
		st = st.WithDepth(gputypes.CompareFunctionLess, true)
	case "less-equal":
		st = st.WithDepth(gputypes.CompareFunctionLessEqual, true)
	default:
		return st, fmt.Errorf("frontdemo: unknown depth test %q", s.Depth)
	}
	switch s.Blend {
	case "":
	case "alpha":
		st = st.WithBlend(gputypes.BlendStateAlpha())
	default:
		return st, fmt.Errorf("frontdemo: unknown blend mode %q", s.Blend)
	}
	return st, nil
}

// uniformValue maps a list of floats to a uniform of matching shape.
func uniformValue(v []float32) (device.UniformValue, error) {
	switch len(v) {
	case 1:
		return device.ValueF32(v[0]), nil
	case 2:
		return device.ValueF32Vector2(v), nil
	case 3:
		return device.ValueF32Vector3(v), nil
	case 4:
		return device.ValueF32Vector4(v), nil
	case 16:
		var m device.ValueF32Matrix4
		for i := range 4 {
			copy(m[i][:], v[i*4:i*4+4])
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%d components", len(v))
	}
}
