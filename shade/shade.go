// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shade supplies parameter values to linked programs.
//
// A program declares uniforms, uniform blocks and textures (see
// device.ProgramInfo). Before every draw the renderer allocates one empty
// slot per declaration in a ParamValues and asks the Program to fill as
// many as it can. Slots left empty are reported as missing parameters.
//
// Two ready-made Program implementations exist: Bind looks parameters up
// by name on every draw, and Connect resolves the fields of a tagged Go
// struct once, up front.
package shade

import (
	"github.com/gogpu/front/device"
)

// TextureParam is a texture together with the sampler used to read it.
// A nil Sampler uses the texture's default sampling state.
type TextureParam struct {
	Texture device.TextureHandle
	Sampler *device.SamplerHandle
}

// NewTextureParam pairs a texture with a sampler.
func NewTextureParam(tex device.TextureHandle, sampler device.SamplerHandle) TextureParam {
	return TextureParam{Texture: tex, Sampler: &sampler}
}

// ParamValues holds one slot per declared parameter, in declaration order.
// A nil slot means the parameter was not supplied.
type ParamValues struct {
	Uniforms []device.UniformValue
	Blocks   []*device.BufferHandle
	Textures []*TextureParam
}

// NewParamValues returns empty slots for the given interface.
func NewParamValues(info *device.ProgramInfo) *ParamValues {
	return &ParamValues{
		Uniforms: make([]device.UniformValue, len(info.Uniforms)),
		Blocks:   make([]*device.BufferHandle, len(info.Blocks)),
		Textures: make([]*TextureParam, len(info.Textures)),
	}
}

// Program is a linked program able to supply its own parameters.
type Program interface {
	// Handle returns the linked program.
	Handle() device.ProgramHandle

	// FillParams stores the values it has into the slots of p. The slot
	// lists are aligned with Handle().Info(). Slots it cannot fill are left
	// nil.
	FillParams(p *ParamValues)
}
