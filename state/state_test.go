// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"testing"

	"github.com/gogpu/front/device"
	"github.com/gogpu/gputypes"
)

func TestNew(t *testing.T) {
	s := New()
	if s.Scissor != nil || s.Depth != nil || s.Stencil != nil || s.Blend != nil {
		t.Errorf("New() enables optional stages: %+v", s)
	}
	if s.Primitive.FrontFace != gputypes.FrontFaceCCW || s.Primitive.Method != RasterFill {
		t.Errorf("New().Primitive = %+v", s.Primitive)
	}
	if s.ColorMask != gputypes.ColorWriteMaskAll {
		t.Errorf("New().ColorMask = %v, want all", s.ColorMask)
	}
}

func TestWithDoesNotMutate(t *testing.T) {
	base := New()
	r := device.Rect{X: 1, Y: 2, W: 3, H: 4}
	s := base.
		WithDepth(gputypes.CompareFunctionLess, true).
		WithStencil(StencilSide{Compare: gputypes.CompareFunctionAlways, Ref: 1}).
		WithBlend(gputypes.BlendStateAlpha()).
		WithScissor(r).
		WithCull(gputypes.CullModeBack)

	if base.Depth != nil || base.Stencil != nil || base.Blend != nil || base.Scissor != nil {
		t.Errorf("builder methods modified the receiver: %+v", base)
	}
	if base.Primitive.Cull != gputypes.CullModeNone {
		t.Errorf("base cull = %v", base.Primitive.Cull)
	}
	if s.Depth == nil || s.Depth.Compare != gputypes.CompareFunctionLess || !s.Depth.Write {
		t.Errorf("Depth = %+v", s.Depth)
	}
	if s.Stencil == nil || s.Stencil.Front != s.Stencil.Back || s.Stencil.Front.Ref != 1 {
		t.Errorf("Stencil = %+v", s.Stencil)
	}
	if s.Blend == nil {
		t.Errorf("Blend = %+v", s.Blend)
	}
	if s.Scissor == nil || *s.Scissor != r {
		t.Errorf("Scissor = %v, want %v", s.Scissor, r)
	}
	r.W = 100
	if s.Scissor.W != 3 {
		t.Error("scissor aliases the caller's rectangle")
	}
}

func TestCullMode(t *testing.T) {
	tests := []struct {
		method RasterMethod
		want   gputypes.CullMode
	}{
		{RasterFill, gputypes.CullModeFront},
		{RasterLine, gputypes.CullModeNone},
		{RasterPoint, gputypes.CullModeNone},
	}
	for _, tt := range tests {
		p := Primitive{Method: tt.method, Cull: gputypes.CullModeFront}
		if got := p.CullMode(); got != tt.want {
			t.Errorf("%s: CullMode() = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func TestRasterMethodString(t *testing.T) {
	for m, want := range map[RasterMethod]string{RasterFill: "Fill", RasterLine: "Line", RasterPoint: "Point", 9: "Unknown"} {
		if got := m.String(); got != want {
			t.Errorf("RasterMethod(%d).String() = %q, want %q", m, got, want)
		}
	}
}
