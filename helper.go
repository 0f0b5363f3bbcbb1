// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"fmt"
	"math"

	"github.com/gogpu/front/device"
	"github.com/gogpu/front/mesh"
	"github.com/gogpu/front/shade"
	"github.com/gogpu/gputypes"
)

// CreateMesh uploads vertices into a static buffer and returns a mesh
// describing them. The attributes come from T's Fields and the stride is
// the size of T. It panics if there are more than 2^32-1 vertices.
func CreateMesh[T mesh.VertexFormat](dev device.Device, data []T) (*mesh.Mesh, error) {
	if uint64(len(data)) > math.MaxUint32 {
		panic(fmt.Sprintf("front: %d vertices do not fit a mesh", len(data)))
	}
	blob := device.BlobOf(data)
	buf, err := dev.CreateBufferStatic(device.RoleVertex, blob)
	if err != nil {
		return nil, fmt.Errorf("front: create vertex buffer: %w", err)
	}
	var zero T
	return mesh.FromFields(buf, uint32(len(data)), uint32(blob.Stride), zero.Fields()), nil
}

// Index is an index element type.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// CreateIndexSlice uploads indices into a static buffer and returns a slice
// drawing all of them.
func CreateIndexSlice[T Index](dev device.Device, prim gputypes.PrimitiveTopology, indices []T) (mesh.Slice, error) {
	if uint64(len(indices)) > math.MaxUint32 {
		panic(fmt.Sprintf("front: %d indices do not fit a slice", len(indices)))
	}
	blob := device.BlobOf(indices)
	buf, err := dev.CreateBufferStatic(device.RoleIndex, blob)
	if err != nil {
		return mesh.Slice{}, fmt.Errorf("front: create index buffer: %w", err)
	}
	var t device.IndexType
	switch blob.Stride {
	case 1:
		t = device.IndexU8
	case 2:
		t = device.IndexU16
	default:
		t = device.IndexU32
	}
	return mesh.IndexSlice(prim, buf, t, 0, uint32(len(indices))), nil
}

// LinkProgram compiles vs and fs and links them. Failures are reported as
// *ProgramError naming the stage.
func LinkProgram(dev device.Device, vs, fs device.ShaderSource) (device.ProgramHandle, error) {
	v, err := dev.CreateShader(device.StageVertex, vs)
	if err != nil {
		return device.ProgramHandle{}, &ProgramError{Stage: StageVertex, Err: err}
	}
	f, err := dev.CreateShader(device.StageFragment, fs)
	if err != nil {
		return device.ProgramHandle{}, &ProgramError{Stage: StageFragment, Err: err}
	}
	p, err := dev.CreateProgram([]device.ShaderHandle{v, f})
	if err != nil {
		return device.ProgramHandle{}, &ProgramError{Stage: StageLink, Err: err}
	}
	Logger().Debug("front: program linked", "program", p.Name(), "interface", p.Info())
	return p, nil
}

// LinkUserProgram links vs and fs and connects the parameter struct params
// to the program (see shade.Connect).
func LinkUserProgram(dev device.Device, vs, fs device.ShaderSource, params any) (*shade.UserProgram, error) {
	h, err := LinkProgram(dev, vs, fs)
	if err != nil {
		return nil, err
	}
	p, err := shade.Connect(h, params)
	if err != nil {
		return nil, &ProgramError{Stage: StageParameters, Err: err}
	}
	return p, nil
}
