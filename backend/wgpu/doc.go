// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the front-end device on top of the pure Go
// WebGPU HAL (github.com/gogpu/wgpu/hal).
//
// Shaders are WGSL. CreateShader parses and lowers them with naga, and
// CreateProgram reflects the declared interface of the linked shaders
// from the naga IR:
//
//   - vertex inputs are the @location arguments, or @location struct
//     members, of the @vertex entry point
//   - a var<uniform> of scalar, vector or matrix type (or a fixed array of
//     them) is a uniform whose location is its @binding
//   - a var<uniform> of struct type is a uniform block
//   - a texture variable is a texture whose location is its @binding;
//     depth textures are shadow textures
//
// Samplers are not reflected; the renderer pairs them with textures.
//
// WebGPU has no vertex array objects, so CreateArrayBuffer reports
// [device.ErrNotSupported].
//
// # Backends
//
// Importing the package registers these backends with package backend:
//
//   - "software": the pure Go rasteriser (hal/software)
//   - "noop": accepts everything and draws nothing (hal/noop)
//   - "vulkan": when the Vulkan loader is present (not with -tags nogpu)
//
// # Uploads
//
// Device.Upload applies the update-buffer and update-texture commands of
// a recorded sequence through the HAL queue:
//
//	r.UpdateBuffer(buf, device.BlobOf(vertices), 0)
//	if err := dev.Upload(r.Commands()); err != nil {
//		return err
//	}
package wgpu
