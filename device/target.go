// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TargetKind selects an attachment point of a frame buffer.
type TargetKind uint8

const (
	TargetColor TargetKind = iota
	TargetDepth
	TargetStencil
)

// Target is an attachment point: a colour slot, depth or stencil.
type Target struct {
	Kind TargetKind
	// Index is the colour slot; zero for depth and stencil.
	Index uint8
}

// ColorTarget returns the colour attachment point at slot i.
func ColorTarget(i uint8) Target { return Target{Kind: TargetColor, Index: i} }

// DepthTarget returns the depth attachment point.
func DepthTarget() Target { return Target{Kind: TargetDepth} }

// StencilTarget returns the stencil attachment point.
func StencilTarget() Target { return Target{Kind: TargetStencil} }

// String returns "color[i]", "depth" or "stencil".
func (t Target) String() string {
	switch t.Kind {
	case TargetColor:
		return fmt.Sprintf("color[%d]", t.Index)
	case TargetDepth:
		return "depth"
	case TargetStencil:
		return "stencil"
	default:
		return "unknown"
	}
}

// Rect is an integer rectangle in frame coordinates.
type Rect struct {
	X uint16
	Y uint16
	W uint16
	H uint16
}

// ClearMask selects which planes a clear touches.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil

	ClearAll = ClearColor | ClearDepth | ClearStencil
)

// ClearData describes a clear operation.
type ClearData struct {
	Color   gputypes.Color
	Depth   float32
	Stencil uint8
	Mask    ClearMask
}
