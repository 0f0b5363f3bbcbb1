// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// ErrNotSupported is returned for resources a backend cannot provide.
// Callers treat it as "feature unavailable", not as a failure.
var ErrNotSupported = errors.New("device: not supported")

// Device is the capability the front-end needs from a graphics backend.
//
// The front-end calls these methods only while setting up (creating a
// renderer, a mesh or a program), never while recording draw calls.
//
// Key principle: the front-end RECEIVES a device, it does not create one.
// The host application owns the device and may share it between several
// renderers.
type Device interface {
	// CreateArrayBuffer creates a vertex array object. Backends without
	// vertex array objects return ErrNotSupported.
	CreateArrayBuffer() (ArrayBufferHandle, error)

	// CreateFrameBuffer creates an off-screen frame buffer object.
	CreateFrameBuffer() (FrameBufferHandle, error)

	// CreateShader compiles a shader for the given stage. A compilation
	// failure is reported as *CompileError.
	CreateShader(stage ShaderStage, src ShaderSource) (ShaderHandle, error)

	// CreateProgram links shaders into a program and reports its declared
	// interface through the returned handle.
	CreateProgram(shaders []ShaderHandle) (ProgramHandle, error)

	// CreateBufferStatic creates an immutable buffer for the given role,
	// initialised with data.
	CreateBufferStatic(role BufferRole, data Blob) (BufferHandle, error)

	// MainFrameBuffer returns the platform-provided default frame buffer.
	MainFrameBuffer() FrameBufferHandle
}

// ResourceDevice is a Device that can also create buffers, textures,
// samplers and surfaces on demand.
type ResourceDevice interface {
	Device

	// CreateBuffer creates an uninitialised buffer.
	CreateBuffer(info BufferInfo) (BufferHandle, error)

	// CreateTexture creates an uninitialised texture.
	CreateTexture(info TextureInfo) (TextureHandle, error)

	// CreateSampler creates a sampler object.
	CreateSampler(desc gputypes.SamplerDescriptor) (SamplerHandle, error)

	// CreateSurface creates a renderable surface.
	CreateSurface(info SurfaceInfo) (SurfaceHandle, error)
}
