// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import (
	"github.com/gogpu/front/device"
)

// ParamSource looks parameters up by their declared name.
type ParamSource interface {
	Uniform(name string) (device.UniformValue, bool)
	Block(name string) (device.BufferHandle, bool)
	Texture(name string) (TextureParam, bool)
}

// UserProgram is a program bundled with the source of its parameters.
type UserProgram struct {
	handle device.ProgramHandle
	fill   func(*ParamValues)
}

// Handle implements Program.
func (p *UserProgram) Handle() device.ProgramHandle { return p.handle }

// FillParams implements Program.
func (p *UserProgram) FillParams(v *ParamValues) {
	if p.fill != nil {
		p.fill(v)
	}
}

// Bind returns a program that asks src for every declared parameter by name
// on each draw. Bind never fails; a name src does not know is reported by
// the renderer as a missing parameter when drawing.
func Bind(handle device.ProgramHandle, src ParamSource) *UserProgram {
	info := handle.Info()
	return &UserProgram{
		handle: handle,
		fill: func(v *ParamValues) {
			for i, u := range info.Uniforms {
				if val, ok := src.Uniform(u.Name); ok {
					v.Uniforms[i] = val
				}
			}
			for i, b := range info.Blocks {
				if buf, ok := src.Block(b.Name); ok {
					v.Blocks[i] = &buf
				}
			}
			for i, t := range info.Textures {
				if tex, ok := src.Texture(t.Name); ok {
					v.Textures[i] = &tex
				}
			}
		},
	}
}

// NamedParams is a map-backed ParamSource.
// The zero value is empty and ready to use.
type NamedParams struct {
	uniforms map[string]device.UniformValue
	blocks   map[string]device.BufferHandle
	textures map[string]TextureParam
}

// SetUniform stores a uniform value.
func (n *NamedParams) SetUniform(name string, v device.UniformValue) *NamedParams {
	if n.uniforms == nil {
		n.uniforms = make(map[string]device.UniformValue)
	}
	n.uniforms[name] = v
	return n
}

// SetBlock stores the buffer backing a uniform block.
func (n *NamedParams) SetBlock(name string, buf device.BufferHandle) *NamedParams {
	if n.blocks == nil {
		n.blocks = make(map[string]device.BufferHandle)
	}
	n.blocks[name] = buf
	return n
}

// SetTexture stores a texture and its sampler.
func (n *NamedParams) SetTexture(name string, tex TextureParam) *NamedParams {
	if n.textures == nil {
		n.textures = make(map[string]TextureParam)
	}
	n.textures[name] = tex
	return n
}

// Delete removes every parameter called name.
func (n *NamedParams) Delete(name string) {
	delete(n.uniforms, name)
	delete(n.blocks, name)
	delete(n.textures, name)
}

// Uniform implements ParamSource.
func (n *NamedParams) Uniform(name string) (device.UniformValue, bool) {
	v, ok := n.uniforms[name]
	return v, ok && v != nil
}

// Block implements ParamSource.
func (n *NamedParams) Block(name string) (device.BufferHandle, bool) {
	b, ok := n.blocks[name]
	return b, ok
}

// Texture implements ParamSource.
func (n *NamedParams) Texture(name string) (TextureParam, bool) {
	t, ok := n.textures[name]
	return t, ok
}
