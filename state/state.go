// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package state describes the fixed-function part of a draw call:
// rasterization, scissor, depth and stencil tests, blending and the colour
// write mask.
//
// A DrawState is a plain value. The renderer applies it in full on every
// draw; nothing here is diffed.
package state

import (
	"github.com/gogpu/front/device"
	"github.com/gogpu/gputypes"
)

// RasterMethod is how primitives are rasterized.
type RasterMethod uint8

const (
	// RasterFill fills polygons. This is the zero value.
	RasterFill RasterMethod = iota
	// RasterLine draws polygon edges.
	RasterLine
	// RasterPoint draws polygon vertices.
	RasterPoint
)

// String returns the method name.
func (m RasterMethod) String() string {
	switch m {
	case RasterFill:
		return "Fill"
	case RasterLine:
		return "Line"
	case RasterPoint:
		return "Point"
	default:
		return "Unknown"
	}
}

// Offset is a polygon depth offset: a slope factor and a constant units term.
type Offset struct {
	Factor float32
	Units  float32
}

// Primitive is the rasterizer state.
type Primitive struct {
	FrontFace gputypes.FrontFace
	Method    RasterMethod
	// LineWidth applies to RasterLine.
	LineWidth float32
	// Cull applies to RasterFill only.
	Cull   gputypes.CullMode
	Offset *Offset
}

// CullMode returns the faces to cull. Only filled polygons are culled; the
// line and point methods always report CullModeNone.
func (p Primitive) CullMode() gputypes.CullMode {
	if p.Method != RasterFill {
		return gputypes.CullModeNone
	}
	return p.Cull
}

// Depth is the depth test configuration.
type Depth struct {
	Compare gputypes.CompareFunction
	Write   bool
}

// StencilSide is the stencil test for one face.
type StencilSide struct {
	Compare     gputypes.CompareFunction
	Ref         uint8
	ReadMask    uint8
	WriteMask   uint8
	FailOp      gputypes.StencilOperation
	DepthFailOp gputypes.StencilOperation
	PassOp      gputypes.StencilOperation
}

// Stencil is the stencil test configuration for both faces.
type Stencil struct {
	Front StencilSide
	Back  StencilSide
}

// Blend is the blending configuration.
type Blend struct {
	State gputypes.BlendState
	// Constant is the blend constant colour.
	Constant gputypes.Color
}

// DrawState is the complete fixed-function state of a draw call.
// Nil Scissor, Depth, Stencil and Blend disable the respective stage.
type DrawState struct {
	Primitive Primitive
	Scissor   *device.Rect
	Depth     *Depth
	Stencil   *Stencil
	Blend     *Blend
	ColorMask gputypes.ColorWriteMask
}

// New returns the default state: counter-clockwise filled polygons without
// culling, no scissor, depth, stencil or blending, all colour channels
// written.
func New() DrawState {
	return DrawState{
		Primitive: Primitive{FrontFace: gputypes.FrontFaceCCW, LineWidth: 1},
		ColorMask: gputypes.ColorWriteMaskAll,
	}
}

// WithDepth returns a copy of s with the depth test enabled.
func (s DrawState) WithDepth(cmp gputypes.CompareFunction, write bool) DrawState {
	s.Depth = &Depth{Compare: cmp, Write: write}
	return s
}

// WithStencil returns a copy of s with the same stencil test on both faces.
func (s DrawState) WithStencil(side StencilSide) DrawState {
	s.Stencil = &Stencil{Front: side, Back: side}
	return s
}

// WithBlend returns a copy of s with blending enabled.
//
//	st := state.New().WithBlend(gputypes.BlendStateAlpha())
func (s DrawState) WithBlend(b gputypes.BlendState) DrawState {
	s.Blend = &Blend{State: b}
	return s
}

// WithScissor returns a copy of s with the scissor test enabled.
func (s DrawState) WithScissor(r device.Rect) DrawState {
	s.Scissor = &r
	return s
}

// WithCull returns a copy of s culling the given faces.
func (s DrawState) WithCull(m gputypes.CullMode) DrawState {
	s.Primitive.Cull = m
	return s
}
