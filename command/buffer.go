// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
	"github.com/gogpu/front/state"
	"github.com/gogpu/gputypes"
)

// Buffer is an append-only sequence of commands.
//
// The zero value is an empty buffer ready for use. A Buffer is not safe for
// concurrent use.
type Buffer struct {
	cmds []Command
}

// NewBuffer returns an empty buffer with room for capacity commands.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{cmds: make([]Command, 0, max(capacity, 0))}
}

// Len returns the number of recorded commands.
func (b *Buffer) Len() int {
	return len(b.cmds)
}

// Reset removes all commands, keeping the allocated storage.
func (b *Buffer) Reset() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
}

// Truncate drops every command after the first n.
// It panics if n is out of range.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.cmds) {
		panic(fmt.Sprintf("command: Truncate(%d) out of range [0, %d]", n, len(b.cmds)))
	}
	clear(b.cmds[n:])
	b.cmds = b.cmds[:n]
}

// Commands returns a snapshot of the recorded commands.
// Later appends do not affect the returned slice.
func (b *Buffer) Commands() []Command {
	return slices.Clone(b.cmds)
}

// At returns the i-th command.
func (b *Buffer) At(i int) Command {
	return b.cmds[i]
}

// Count returns how many commands of the given type were recorded.
func (b *Buffer) Count(t CommandType) int {
	n := 0
	for _, c := range b.cmds {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// WriteTo writes a human-readable listing, one command per line.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, c := range b.cmds {
		n, err := fmt.Fprintf(w, "%4d %-17s %+v\n", i, c.Type(), c)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Append records an arbitrary command.
func (b *Buffer) Append(c Command) {
	b.cmds = append(b.cmds, c)
}

// SetViewport records a viewport change.
func (b *Buffer) SetViewport(r device.Rect) {
	b.Append(SetViewportCommand{Rect: r})
}

// Clear records a clear of the bound frame buffer.
func (b *Buffer) Clear(data device.ClearData) {
	b.Append(ClearCommand{Data: data})
}

// BindFrameBuffer records a frame buffer binding.
func (b *Buffer) BindFrameBuffer(fb device.Name) {
	b.Append(BindFrameBufferCommand{FrameBuffer: fb})
}

// BindTargetSurface records a surface attachment.
func (b *Buffer) BindTargetSurface(t device.Target, surface device.Name) {
	b.Append(BindTargetSurfaceCommand{Target: t, Surface: surface})
}

// BindTargetTexture records a texture attachment.
func (b *Buffer) BindTargetTexture(t device.Target, tex device.Name, level uint8, layer uint16) {
	b.Append(BindTargetTextureCommand{Target: t, Texture: tex, Level: level, Layer: layer})
}

// UnbindTarget records an attachment removal.
func (b *Buffer) UnbindTarget(t device.Target) {
	b.Append(UnbindTargetCommand{Target: t})
}

// BindProgram records a program binding.
func (b *Buffer) BindProgram(p device.Name) {
	b.Append(BindProgramCommand{Program: p})
}

// BindUniform records a uniform assignment.
func (b *Buffer) BindUniform(loc device.Location, v device.UniformValue) {
	b.Append(BindUniformCommand{Location: loc, Value: v})
}

// BindUniformBlock records a uniform block binding.
func (b *Buffer) BindUniformBlock(program device.Name, slot, index uint32, buf device.Name) {
	b.Append(BindUniformBlockCommand{Program: program, Slot: slot, Index: index, Buffer: buf})
}

// BindTexture records a texture unit binding.
func (b *Buffer) BindTexture(slot uint32, kind device.TextureKind, tex, sampler device.Name) {
	b.Append(BindTextureCommand{Slot: slot, Kind: kind, Texture: tex, Sampler: sampler})
}

// SetPrimitive records the rasterizer state.
func (b *Buffer) SetPrimitive(p state.Primitive) {
	p.Offset = clonePtr(p.Offset)
	b.Append(SetPrimitiveCommand{Primitive: p})
}

// SetScissor records the scissor test; nil disables it.
func (b *Buffer) SetScissor(r *device.Rect) {
	if r == nil {
		b.Append(SetScissorCommand{})
		return
	}
	b.Append(SetScissorCommand{Enabled: true, Rect: *r})
}

// SetDepthStencil records the depth and stencil tests and the cull mode.
// The tests are copied so later changes by the caller are not observed.
func (b *Buffer) SetDepthStencil(depth *state.Depth, stencil *state.Stencil, cull gputypes.CullMode) {
	b.Append(SetDepthStencilCommand{Depth: clonePtr(depth), Stencil: clonePtr(stencil), Cull: cull})
}

// SetBlend records the blend state; nil disables blending.
func (b *Buffer) SetBlend(blend *state.Blend) {
	b.Append(SetBlendCommand{Blend: clonePtr(blend)})
}

// SetColorMask records the colour write mask.
func (b *Buffer) SetColorMask(mask gputypes.ColorWriteMask) {
	b.Append(SetColorMaskCommand{Mask: mask})
}

// BindArrayBuffer records a vertex array object binding.
func (b *Buffer) BindArrayBuffer(ab device.Name) {
	b.Append(BindArrayBufferCommand{ArrayBuffer: ab})
}

// BindAttribute records a vertex input binding.
func (b *Buffer) BindAttribute(slot uint32, buf device.Name, count uint8, t attrib.Type, stride, offset uint32) {
	b.Append(BindAttributeCommand{
		Slot:     slot,
		Buffer:   buf,
		Count:    count,
		ElemType: t,
		Stride:   stride,
		Offset:   offset,
	})
}

// BindIndex records an index buffer binding.
func (b *Buffer) BindIndex(buf device.Name) {
	b.Append(BindIndexCommand{Buffer: buf})
}

// Draw records a non-indexed draw.
func (b *Buffer) Draw(prim gputypes.PrimitiveTopology, start, end uint32) {
	b.Append(DrawCommand{Primitive: prim, Start: start, End: end})
}

// DrawIndexed records an indexed draw.
func (b *Buffer) DrawIndexed(prim gputypes.PrimitiveTopology, index device.IndexType, start, end uint32) {
	b.Append(DrawIndexedCommand{Primitive: prim, Index: index, Start: start, End: end})
}

// UpdateBuffer records a buffer write.
func (b *Buffer) UpdateBuffer(buf device.Name, data device.Blob, offset int) {
	b.Append(UpdateBufferCommand{Buffer: buf, Data: data, Offset: offset})
}

// UpdateTexture records a texture write.
func (b *Buffer) UpdateTexture(kind device.TextureKind, tex device.Name, img device.ImageInfo, data device.Blob) {
	b.Append(UpdateTextureCommand{Kind: kind, Texture: tex, Image: img, Data: data})
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
