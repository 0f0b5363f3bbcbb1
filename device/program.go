// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "fmt"

// BaseType is the scalar type a shader declares for an input.
type BaseType uint8

const (
	BaseI32 BaseType = iota
	BaseU32
	BaseF32
	BaseF64
	BaseBool
)

// String returns the base type name.
func (t BaseType) String() string {
	switch t {
	case BaseI32:
		return "i32"
	case BaseU32:
		return "u32"
	case BaseF32:
		return "f32"
	case BaseF64:
		return "f64"
	case BaseBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ContainerKind is the shape wrapped around a base type.
type ContainerKind uint8

const (
	ContainerSingle ContainerKind = iota
	ContainerVector
	ContainerMatrix
)

// Container is the shape of a shader variable: a single value, a vector of
// Rows components, or a Cols x Rows matrix.
type Container struct {
	Kind ContainerKind
	Rows uint8
	Cols uint8
}

// Single returns the scalar container.
func Single() Container { return Container{Kind: ContainerSingle, Rows: 1, Cols: 1} }

// Vector returns a vector container of n components.
func Vector(n uint8) Container { return Container{Kind: ContainerVector, Rows: n, Cols: 1} }

// Matrix returns a matrix container.
func Matrix(cols, rows uint8) Container {
	return Container{Kind: ContainerMatrix, Rows: rows, Cols: cols}
}

// String formats the container, e.g. "vec3" or "mat4x4".
func (c Container) String() string {
	switch c.Kind {
	case ContainerVector:
		return fmt.Sprintf("vec%d", c.Rows)
	case ContainerMatrix:
		return fmt.Sprintf("mat%dx%d", c.Cols, c.Rows)
	default:
		return "single"
	}
}

// Location is a uniform or sampler location inside a program.
type Location int32

// AttributeVar is a vertex input declared by a program.
type AttributeVar struct {
	Name      string
	Location  uint32
	Count     int
	BaseType  BaseType
	Container Container
}

// UniformVar is a loose uniform declared by a program.
type UniformVar struct {
	Name      string
	Location  Location
	Count     int
	BaseType  BaseType
	Container Container
}

// BlockVar is a uniform block declared by a program.
type BlockVar struct {
	Name string
	// Size is the block size in bytes.
	Size int
}

// SamplerKind is the dimensionality a texture declaration samples.
type SamplerKind uint8

const (
	Sampler1D SamplerKind = iota
	Sampler2D
	Sampler3D
	SamplerCube
)

// TextureVar is a texture (and its sampler unit) declared by a program.
type TextureVar struct {
	Name     string
	Location Location
	BaseType BaseType
	Kind     SamplerKind
	// Shadow is set for depth-comparison samplers.
	Shadow bool
}

// ProgramInfo is the declared interface of a linked program. All lists keep
// declaration order; positions in these lists are what parameter slots and
// texture units are derived from.
type ProgramInfo struct {
	Attributes []AttributeVar
	Uniforms   []UniformVar
	Blocks     []BlockVar
	Textures   []TextureVar
}

// String summarises the interface for logs.
func (p *ProgramInfo) String() string {
	return fmt.Sprintf("attributes=%d uniforms=%d blocks=%d textures=%d",
		len(p.Attributes), len(p.Uniforms), len(p.Blocks), len(p.Textures))
}

// ShaderStage is a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderSource is the source text handed to a backend for compilation.
type ShaderSource struct {
	// Label names the shader in diagnostics.
	Label string
	// WGSL is the WebGPU Shading Language source.
	WGSL string
}

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Label string
	// Log is the compiler diagnostic, possibly multi-line.
	Log string
	Err error
}

func (e *CompileError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("device: %s shader %q: %s", e.Stage, e.Label, e.Log)
	}
	return fmt.Sprintf("device: %s shader: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return e.Err }

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "device: link failed: " + e.Log
}
