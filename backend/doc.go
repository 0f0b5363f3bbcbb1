// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a registry of device backends for the front-end.
//
// A backend opens a [Device]: a [device.ResourceDevice] the front-end can
// create resources on, plus an Upload method that applies the update
// commands a renderer records. Drawing itself is left to whatever executes
// the rest of the command sequence.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/front/backend/wgpu"
//
// # Backend Selection
//
// Use OpenBest() to open the best available backend, or Open() to request
// a specific backend by name:
//
//	dev, err := backend.OpenBest()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
//	r, err := front.NewRenderer(dev)
//
// # Available Backends
//
// With backend/wgpu imported:
//   - "software": pure Go WebGPU rasteriser (always available)
//   - "noop": accepts every call and draws nothing (tests, headless tools)
package backend
