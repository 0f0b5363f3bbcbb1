// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package front turns draw calls into a validated sequence of low-level
// graphics commands.
//
// # Overview
//
// A Renderer sits between application code and a device backend. Each
// Draw binds a frame, a program with all of its parameters, the
// fixed-function state, the mesh's vertex inputs and finally issues the
// draw. Every declared program input is checked: a missing uniform, block
// or texture, or a mesh attribute that cannot feed a vertex input, stops
// the draw with an error naming it.
//
// # Quick Start
//
//	dev, err := backend.OpenBest()
//	r, err := front.NewRenderer(dev)
//
//	m, err := front.CreateMesh(dev, vertices)
//	prog, err := front.LinkUserProgram(dev, vs, fs, &params)
//
//	frame := target.NewFrame(800, 600)
//	st := state.New()
//	if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &frame, prog, &st); err != nil {
//	    r.Reset()
//	}
//	submit(r.Commands())
//
// # Frame Cache
//
// The renderer remembers the attachments of the last off-screen frame it
// bound and records only the attachments that change. Drawing to the
// default frame does not disturb that cache, so alternating between the
// screen and an off-screen frame records no redundant attachments.
//
// # Recording in Parallel
//
// A Renderer is owned by one goroutine. CloneEmpty returns a renderer
// sharing the same device objects but with its own command sequence and
// frame cache, for recording on another goroutine.
package front
