// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "github.com/gogpu/gputypes"

// Name is the backend identifier of a resource.
// Zero is reserved for "no resource" by every backend.
type Name uint32

// BufferUsage is a hint about how often a buffer is updated.
type BufferUsage uint8

const (
	// UsageStatic buffers are written once and drawn many times.
	UsageStatic BufferUsage = iota
	// UsageDynamic buffers are updated occasionally.
	UsageDynamic
	// UsageStream buffers are rewritten every frame.
	UsageStream
)

// String returns the usage name.
func (u BufferUsage) String() string {
	switch u {
	case UsageStatic:
		return "Static"
	case UsageDynamic:
		return "Dynamic"
	case UsageStream:
		return "Stream"
	default:
		return "Unknown"
	}
}

// BufferRole tells the backend what a buffer will be bound as.
type BufferRole uint8

const (
	// RoleVertex buffers feed vertex attributes.
	RoleVertex BufferRole = iota
	// RoleIndex buffers hold index data.
	RoleIndex
	// RoleUniform buffers back uniform blocks.
	RoleUniform
)

// GPUUsage maps the role to WebGPU buffer usage flags.
// Every role is also a copy destination so it can receive updates.
func (r BufferRole) GPUUsage() gputypes.BufferUsage {
	switch r {
	case RoleIndex:
		return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	case RoleUniform:
		return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
	default:
		return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	}
}

// BufferInfo describes a data buffer.
type BufferInfo struct {
	// Usage is the update frequency hint.
	Usage BufferUsage
	// Role is what the buffer is bound as.
	Role BufferRole
	// Size is the capacity in bytes.
	Size int
}

// BufferHandle refers to a data buffer.
type BufferHandle struct {
	name Name
	info BufferInfo
}

// NewBufferHandle is used by backends to hand out buffer handles.
func NewBufferHandle(name Name, info BufferInfo) BufferHandle {
	return BufferHandle{name: name, info: info}
}

// Name returns the backend name of the buffer.
func (h BufferHandle) Name() Name { return h.name }

// Info returns the buffer description.
func (h BufferHandle) Info() BufferInfo { return h.info }

// ArrayBufferHandle refers to a vertex array object.
type ArrayBufferHandle struct {
	name Name
}

// NewArrayBufferHandle is used by backends to hand out array buffers.
func NewArrayBufferHandle(name Name) ArrayBufferHandle {
	return ArrayBufferHandle{name: name}
}

// Name returns the backend name of the array buffer.
func (h ArrayBufferHandle) Name() Name { return h.name }

// FrameBufferHandle refers to a frame buffer object.
type FrameBufferHandle struct {
	name Name
}

// NewFrameBufferHandle is used by backends to hand out frame buffers.
func NewFrameBufferHandle(name Name) FrameBufferHandle {
	return FrameBufferHandle{name: name}
}

// Name returns the backend name of the frame buffer.
func (h FrameBufferHandle) Name() Name { return h.name }

// SurfaceInfo describes a renderable surface.
type SurfaceInfo struct {
	Width   uint16
	Height  uint16
	Samples uint8
	Format  gputypes.TextureFormat
}

// SurfaceHandle refers to a renderable surface that cannot be sampled.
type SurfaceHandle struct {
	name Name
	info SurfaceInfo
}

// NewSurfaceHandle is used by backends to hand out surfaces.
func NewSurfaceHandle(name Name, info SurfaceInfo) SurfaceHandle {
	return SurfaceHandle{name: name, info: info}
}

// Name returns the backend name of the surface.
func (h SurfaceHandle) Name() Name { return h.name }

// Info returns the surface description.
func (h SurfaceHandle) Info() SurfaceInfo { return h.info }

// TextureHandle refers to a texture.
type TextureHandle struct {
	name Name
	info TextureInfo
}

// NewTextureHandle is used by backends to hand out textures.
func NewTextureHandle(name Name, info TextureInfo) TextureHandle {
	return TextureHandle{name: name, info: info}
}

// Name returns the backend name of the texture.
func (h TextureHandle) Name() Name { return h.name }

// Info returns the texture description.
func (h TextureHandle) Info() TextureInfo { return h.info }

// SamplerHandle refers to a sampler object.
type SamplerHandle struct {
	name Name
	info gputypes.SamplerDescriptor
}

// NewSamplerHandle is used by backends to hand out samplers.
func NewSamplerHandle(name Name, info gputypes.SamplerDescriptor) SamplerHandle {
	return SamplerHandle{name: name, info: info}
}

// Name returns the backend name of the sampler.
func (h SamplerHandle) Name() Name { return h.name }

// Info returns the sampler description.
func (h SamplerHandle) Info() gputypes.SamplerDescriptor { return h.info }

// ShaderHandle refers to a compiled shader object.
type ShaderHandle struct {
	name  Name
	stage ShaderStage
}

// NewShaderHandle is used by backends to hand out shaders.
func NewShaderHandle(name Name, stage ShaderStage) ShaderHandle {
	return ShaderHandle{name: name, stage: stage}
}

// Name returns the backend name of the shader.
func (h ShaderHandle) Name() Name { return h.name }

// Stage returns the pipeline stage the shader was compiled for.
func (h ShaderHandle) Stage() ShaderStage { return h.stage }

// ProgramHandle refers to a linked program and its declared interface.
type ProgramHandle struct {
	name Name
	info *ProgramInfo
}

// NewProgramHandle is used by backends to hand out programs.
// The info must not be modified afterwards.
func NewProgramHandle(name Name, info *ProgramInfo) ProgramHandle {
	return ProgramHandle{name: name, info: info}
}

// Name returns the backend name of the program.
func (h ProgramHandle) Name() Name { return h.name }

// Info returns the declared interface of the program.
// A zero handle reports an empty interface.
func (h ProgramHandle) Info() *ProgramInfo {
	if h.info == nil {
		return &ProgramInfo{}
	}
	return h.info
}
