// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the vocabulary shared between the rendering
// front-end and a graphics backend.
//
// The front-end never talks to a GPU API directly. It receives a [Device]
// from the host application (or from the backend registry), asks it to
// create the few resources it needs once, and from then on only records
// commands that refer to resources by [Name].
//
// # Resource handles
//
// Every resource is identified by a backend-assigned [Name] and carries a
// small, immutable info value describing it:
//
//   - BufferHandle: size and usage of a data buffer
//   - TextureHandle: kind, extent, mip levels and format of a texture
//   - SurfaceHandle: a renderable surface (render buffer)
//   - SamplerHandle: a sampler descriptor
//   - ProgramHandle: the declared interface of a linked program
//
// Handles are plain values. Copying a handle never copies the resource.
//
// # Program interface
//
// [ProgramInfo] is produced by the backend when a program is linked. It
// lists, in declaration order, the vertex attributes, uniforms, uniform
// blocks and textures the program expects. The front-end matches these by
// name against meshes and parameter sets.
//
// # Payloads
//
// Buffer and texture contents cross into the command stream as a [Blob]:
// a byte view plus element stride and count.
package device
