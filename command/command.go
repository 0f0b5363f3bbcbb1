// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package command provides the low-level command sequence produced by the
// rendering front-end.
//
// Commands are typed structs rather than an encoded byte stream so that a
// recorded sequence can be inspected, compared in tests and replayed by any
// backend without a decoder. Resources are referenced by device.Name only;
// a sequence never owns GPU objects.
//
// # Example
//
//	var buf command.Buffer
//	buf.SetViewport(device.Rect{W: 800, H: 600})
//	buf.BindProgram(prog.Name())
//	buf.Draw(gputypes.PrimitiveTopologyTriangleList, 0, 3)
//
//	for _, c := range buf.Commands() {
//	    switch c := c.(type) {
//	    case command.DrawCommand:
//	        // ...
//	    }
//	}
package command

import (
	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
	"github.com/gogpu/front/state"
	"github.com/gogpu/gputypes"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Target commands
	CmdSetViewport       CommandType = iota // Set the viewport rectangle
	CmdClear                                // Clear the bound frame buffer
	CmdBindFrameBuffer                      // Bind a frame buffer object
	CmdBindTargetSurface                    // Attach a surface to a target
	CmdBindTargetTexture                    // Attach a texture level/layer to a target
	CmdUnbindTarget                         // Detach whatever is attached to a target

	// Program commands
	CmdBindProgram      // Bind a linked program
	CmdBindUniform      // Assign a uniform location
	CmdBindUniformBlock // Bind a buffer to a uniform block
	CmdBindTexture      // Bind a texture and sampler to a unit

	// Fixed-function commands
	CmdSetPrimitive    // Set the rasterizer state
	CmdSetScissor      // Set or disable the scissor test
	CmdSetDepthStencil // Set depth and stencil tests and the cull mode
	CmdSetBlend        // Set or disable blending
	CmdSetColorMask    // Set the colour write mask

	// Geometry commands
	CmdBindArrayBuffer // Bind a vertex array object
	CmdBindAttribute   // Bind a buffer range to a vertex input
	CmdBindIndex       // Bind an index buffer
	CmdDraw            // Draw a vertex range
	CmdDrawIndexed     // Draw an index range

	// Resource commands
	CmdUpdateBuffer  // Write data into a buffer
	CmdUpdateTexture // Write data into a texture region
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetViewport:       "SetViewport",
	CmdClear:             "Clear",
	CmdBindFrameBuffer:   "BindFrameBuffer",
	CmdBindTargetSurface: "BindTargetSurface",
	CmdBindTargetTexture: "BindTargetTexture",
	CmdUnbindTarget:      "UnbindTarget",
	CmdBindProgram:       "BindProgram",
	CmdBindUniform:       "BindUniform",
	CmdBindUniformBlock:  "BindUniformBlock",
	CmdBindTexture:       "BindTexture",
	CmdSetPrimitive:      "SetPrimitive",
	CmdSetScissor:        "SetScissor",
	CmdSetDepthStencil:   "SetDepthStencil",
	CmdSetBlend:          "SetBlend",
	CmdSetColorMask:      "SetColorMask",
	CmdBindArrayBuffer:   "BindArrayBuffer",
	CmdBindAttribute:     "BindAttribute",
	CmdBindIndex:         "BindIndex",
	CmdDraw:              "Draw",
	CmdDrawIndexed:       "DrawIndexed",
	CmdUpdateBuffer:      "UpdateBuffer",
	CmdUpdateTexture:     "UpdateTexture",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsTargetBinding reports whether the command changes a frame buffer
// attachment.
func (c CommandType) IsTargetBinding() bool {
	return c == CmdBindTargetSurface || c == CmdBindTargetTexture || c == CmdUnbindTarget
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Target Commands
// --------------------------------------------------------------------------

// SetViewportCommand sets the viewport rectangle.
type SetViewportCommand struct {
	Rect device.Rect
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// ClearCommand clears the planes of the bound frame buffer.
type ClearCommand struct {
	Data device.ClearData
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// BindFrameBufferCommand binds a frame buffer object.
type BindFrameBufferCommand struct {
	FrameBuffer device.Name
}

// Type implements Command.
func (BindFrameBufferCommand) Type() CommandType { return CmdBindFrameBuffer }

// BindTargetSurfaceCommand attaches a surface to an attachment point of the
// bound frame buffer.
type BindTargetSurfaceCommand struct {
	Target  device.Target
	Surface device.Name
}

// Type implements Command.
func (BindTargetSurfaceCommand) Type() CommandType { return CmdBindTargetSurface }

// BindTargetTextureCommand attaches one level and layer of a texture to an
// attachment point of the bound frame buffer.
type BindTargetTextureCommand struct {
	Target  device.Target
	Texture device.Name
	Level   uint8
	Layer   uint16
}

// Type implements Command.
func (BindTargetTextureCommand) Type() CommandType { return CmdBindTargetTexture }

// UnbindTargetCommand detaches an attachment point.
type UnbindTargetCommand struct {
	Target device.Target
}

// Type implements Command.
func (UnbindTargetCommand) Type() CommandType { return CmdUnbindTarget }

// --------------------------------------------------------------------------
// Program Commands
// --------------------------------------------------------------------------

// BindProgramCommand binds a linked program.
type BindProgramCommand struct {
	Program device.Name
}

// Type implements Command.
func (BindProgramCommand) Type() CommandType { return CmdBindProgram }

// BindUniformCommand assigns a value to a uniform location of the bound
// program.
type BindUniformCommand struct {
	Location device.Location
	Value    device.UniformValue
}

// Type implements Command.
func (BindUniformCommand) Type() CommandType { return CmdBindUniform }

// BindUniformBlockCommand binds a buffer to uniform buffer slot Slot and
// points block Index of the program at that slot.
type BindUniformBlockCommand struct {
	Program device.Name
	Slot    uint32
	Index   uint32
	Buffer  device.Name
}

// Type implements Command.
func (BindUniformBlockCommand) Type() CommandType { return CmdBindUniformBlock }

// BindTextureCommand binds a texture and an optional sampler to a texture
// unit. A zero Sampler means the texture's own sampling state is used.
type BindTextureCommand struct {
	Slot    uint32
	Kind    device.TextureKind
	Texture device.Name
	Sampler device.Name
}

// Type implements Command.
func (BindTextureCommand) Type() CommandType { return CmdBindTexture }

// --------------------------------------------------------------------------
// Fixed-Function Commands
// --------------------------------------------------------------------------

// SetPrimitiveCommand sets the rasterizer state.
type SetPrimitiveCommand struct {
	Primitive state.Primitive
}

// Type implements Command.
func (SetPrimitiveCommand) Type() CommandType { return CmdSetPrimitive }

// SetScissorCommand enables the scissor test with Rect, or disables it.
type SetScissorCommand struct {
	Enabled bool
	Rect    device.Rect
}

// Type implements Command.
func (SetScissorCommand) Type() CommandType { return CmdSetScissor }

// SetDepthStencilCommand sets the depth and stencil tests together with
// the cull mode derived from the rasterizer state. Nil tests are disabled.
type SetDepthStencilCommand struct {
	Depth   *state.Depth
	Stencil *state.Stencil
	Cull    gputypes.CullMode
}

// Type implements Command.
func (SetDepthStencilCommand) Type() CommandType { return CmdSetDepthStencil }

// SetBlendCommand enables blending, or disables it when Blend is nil.
type SetBlendCommand struct {
	Blend *state.Blend
}

// Type implements Command.
func (SetBlendCommand) Type() CommandType { return CmdSetBlend }

// SetColorMaskCommand sets the colour write mask.
type SetColorMaskCommand struct {
	Mask gputypes.ColorWriteMask
}

// Type implements Command.
func (SetColorMaskCommand) Type() CommandType { return CmdSetColorMask }

// --------------------------------------------------------------------------
// Geometry Commands
// --------------------------------------------------------------------------

// BindArrayBufferCommand binds a vertex array object.
type BindArrayBufferCommand struct {
	ArrayBuffer device.Name
}

// Type implements Command.
func (BindArrayBufferCommand) Type() CommandType { return CmdBindArrayBuffer }

// BindAttributeCommand feeds vertex input Slot from Count components of
// ElemType read from Buffer at Offset, advancing Stride bytes per vertex.
type BindAttributeCommand struct {
	Slot     uint32
	Buffer   device.Name
	Count    uint8
	ElemType attrib.Type
	Stride   uint32
	Offset   uint32
}

// Type implements Command.
func (BindAttributeCommand) Type() CommandType { return CmdBindAttribute }

// BindIndexCommand binds an index buffer.
type BindIndexCommand struct {
	Buffer device.Name
}

// Type implements Command.
func (BindIndexCommand) Type() CommandType { return CmdBindIndex }

// DrawCommand draws vertices [Start, End).
type DrawCommand struct {
	Primitive gputypes.PrimitiveTopology
	Start     uint32
	End       uint32
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// DrawIndexedCommand draws indices [Start, End) of the bound index buffer,
// whose elements are Index wide.
type DrawIndexedCommand struct {
	Primitive gputypes.PrimitiveTopology
	Index     device.IndexType
	Start     uint32
	End       uint32
}

// Type implements Command.
func (DrawIndexedCommand) Type() CommandType { return CmdDrawIndexed }

// --------------------------------------------------------------------------
// Resource Commands
// --------------------------------------------------------------------------

// UpdateBufferCommand writes Data into Buffer starting at byte Offset.
type UpdateBufferCommand struct {
	Buffer device.Name
	Data   device.Blob
	Offset int
}

// Type implements Command.
func (UpdateBufferCommand) Type() CommandType { return CmdUpdateBuffer }

// UpdateTextureCommand writes Data into the Image region of Texture.
type UpdateTextureCommand struct {
	Kind    device.TextureKind
	Texture device.Name
	Image   device.ImageInfo
	Data    device.Blob
}

// Type implements Command.
func (UpdateTextureCommand) Type() CommandType { return CmdUpdateTexture }
