// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"fmt"
	"io"

	"github.com/gogpu/front/command"
	"github.com/gogpu/front/device"
	"github.com/gogpu/front/mesh"
	"github.com/gogpu/front/shade"
	"github.com/gogpu/front/state"
	"github.com/gogpu/front/target"
)

// Renderer records draw calls into a command sequence.
//
// It caches the attachments of the last off-screen frame it bound and only
// records the attachment changes a new frame needs. A Renderer is not safe
// for concurrent use; use CloneEmpty to record on several goroutines.
type Renderer struct {
	buf  *command.Buffer
	opts options

	arrayBuffer    device.ArrayBufferHandle
	hasArrayBuffer bool
	frameBuffer    device.FrameBufferHandle
	mainBuffer     device.FrameBufferHandle

	// frame is the last non-default frame bound through frameBuffer.
	frame target.Frame
}

// NewRenderer creates a renderer for dev.
//
// A device without vertex array objects is accepted; the renderer then
// skips array buffer bindings. Failing to create the shared off-screen
// frame buffer is an error.
func NewRenderer(dev device.Device, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ab, abErr := dev.CreateArrayBuffer()
	if abErr != nil {
		Logger().Debug("front: array buffer unavailable", "err", abErr)
	}
	fb, err := dev.CreateFrameBuffer()
	if err != nil {
		return nil, fmt.Errorf("front: create frame buffer: %w", err)
	}

	r := &Renderer{
		buf:            command.NewBuffer(o.capacity),
		opts:           o,
		arrayBuffer:    ab,
		hasArrayBuffer: abErr == nil,
		frameBuffer:    fb,
		mainBuffer:     dev.MainFrameBuffer(),
		frame:          target.NewFrame(0, 0),
	}
	Logger().Info("front: renderer created",
		"frameBuffer", fb.Name(),
		"arrayBuffer", abErr == nil,
		"rollback", o.rollback)
	return r, nil
}

// CloneEmpty returns a renderer sharing the device objects of r with an
// empty command sequence and nothing bound.
func (r *Renderer) CloneEmpty() *Renderer {
	return &Renderer{
		buf:            command.NewBuffer(r.opts.capacity),
		opts:           r.opts,
		arrayBuffer:    r.arrayBuffer,
		hasArrayBuffer: r.hasArrayBuffer,
		frameBuffer:    r.frameBuffer,
		mainBuffer:     r.mainBuffer,
		frame:          target.NewFrame(0, 0),
	}
}

// Reset clears the command sequence. The frame cache is kept.
func (r *Renderer) Reset() {
	r.buf.Reset()
}

// Commands returns a snapshot of the recorded commands for submission.
func (r *Renderer) Commands() []command.Command {
	return r.buf.Commands()
}

// Len returns the number of recorded commands.
func (r *Renderer) Len() int {
	return r.buf.Len()
}

// WriteTo writes a listing of the recorded commands.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	return r.buf.WriteTo(w)
}

// Clear binds f and clears the planes selected by data.Mask.
func (r *Renderer) Clear(data device.ClearData, f *target.Frame) {
	r.bindFrame(f)
	r.buf.Clear(data)
}

// Draw records a draw of slice s of mesh m into frame f, using program p
// and the fixed-function state st.
//
// The frame is bound first, then the program with all its parameters, then
// the fixed-function state, then the vertex inputs, and finally the draw
// itself. The first missing parameter or unusable vertex input stops the
// call with a *DrawError. What the failed call already recorded depends on
// WithRollback.
func (r *Renderer) Draw(m *mesh.Mesh, s mesh.Slice, f *target.Frame, p shade.Program, st *state.DrawState) error {
	mark, shadow := r.buf.Len(), r.frame

	r.bindFrame(f)
	if err := r.bindProgram(p); err != nil {
		return r.fail(PhaseParameter, err, mark, shadow)
	}
	r.bindState(st)
	if err := r.bindMesh(m, p.Handle().Info()); err != nil {
		return r.fail(PhaseMesh, err, mark, shadow)
	}
	r.drawSlice(s)
	return nil
}

func (r *Renderer) fail(phase DrawPhase, err error, mark int, shadow target.Frame) error {
	if r.opts.rollback {
		r.buf.Truncate(mark)
		r.frame = shadow
	}
	Logger().Debug("front: draw rejected",
		"phase", phase,
		"err", err,
		"rolledBack", r.opts.rollback)
	return &DrawError{Phase: phase, Err: err}
}

// bindFrame records the viewport and the frame buffer for f. For an
// off-screen frame only attachments that differ from the cached frame are
// rebound. Binding the default frame leaves the cache untouched.
func (r *Renderer) bindFrame(f *target.Frame) {
	r.buf.SetViewport(f.Viewport())
	if f.IsDefault() {
		r.buf.BindFrameBuffer(r.mainBuffer.Name())
		return
	}

	r.buf.BindFrameBuffer(r.frameBuffer.Name())
	for i := range f.Colors {
		r.bindPlane(device.ColorTarget(uint8(i)), r.frame.Colors[i], f.Colors[i])
	}
	r.bindPlane(device.DepthTarget(), r.frame.Depth, f.Depth)
	r.bindPlane(device.StencilTarget(), r.frame.Stencil, f.Stencil)
	r.frame = *f
}

func (r *Renderer) bindPlane(t device.Target, cur, next target.Plane) {
	if cur == next {
		return
	}
	switch next.Kind() {
	case target.PlaneSurface:
		r.buf.BindTargetSurface(t, next.SurfaceHandle().Name())
	case target.PlaneTexture:
		tex, level, layer := next.TextureHandle()
		r.buf.BindTargetTexture(t, tex.Name(), level, layer)
	default:
		r.buf.UnbindTarget(t)
	}
}

// bindProgram records the program and every declared parameter: uniforms,
// then blocks, then textures, each in declaration order. Block i uses
// uniform buffer slot i and texture i uses texture unit i.
func (r *Renderer) bindProgram(p shade.Program) error {
	h := p.Handle()
	info := h.Info()
	r.buf.BindProgram(h.Name())

	values := shade.NewParamValues(info)
	p.FillParams(values)

	for i, u := range info.Uniforms {
		v := slot(values.Uniforms, i)
		if v == nil {
			return &ParameterError{Kind: ParamUniform, Name: u.Name}
		}
		r.buf.BindUniform(u.Location, v)
	}

	for i, b := range info.Blocks {
		buf := slot(values.Blocks, i)
		if buf == nil {
			return &ParameterError{Kind: ParamBlock, Name: b.Name}
		}
		r.buf.BindUniformBlock(h.Name(), uint32(i), uint32(i), buf.Name())
	}

	for i, t := range info.Textures {
		tp := slot(values.Textures, i)
		if tp == nil {
			return &ParameterError{Kind: ParamTexture, Name: t.Name}
		}
		var sampler device.Name
		if tp.Sampler != nil {
			sampler = tp.Sampler.Name()
		} else if t.Shadow {
			return &ParameterError{Kind: ParamSampler, Name: t.Name}
		}
		r.buf.BindUniform(t.Location, device.ValueI32(i))
		r.buf.BindTexture(uint32(i), tp.Texture.Info().Kind, tp.Texture.Name(), sampler)
	}
	return nil
}

// slot returns s[i], or the zero value if a FillParams implementation
// shortened the list.
func slot[T any](s []T, i int) T {
	if i < len(s) {
		return s[i]
	}
	var zero T
	return zero
}

func (r *Renderer) bindState(st *state.DrawState) {
	r.buf.SetPrimitive(st.Primitive)
	r.buf.SetScissor(st.Scissor)
	r.buf.SetDepthStencil(st.Depth, st.Stencil, st.Primitive.CullMode())
	r.buf.SetBlend(st.Blend)
	r.buf.SetColorMask(st.ColorMask)
}

// bindMesh records one attribute binding per declared vertex input, in
// declaration order. Mesh attributes the program does not declare are
// ignored.
func (r *Renderer) bindMesh(m *mesh.Mesh, info *device.ProgramInfo) error {
	if r.hasArrayBuffer {
		r.buf.BindArrayBuffer(r.arrayBuffer.Name())
	}
	for _, decl := range info.Attributes {
		a, ok := m.Attribute(decl.Name)
		if !ok {
			return &MeshError{Kind: MeshAttributeMissing, Name: decl.Name}
		}
		if a.Format.Type.IsCompatible(decl.BaseType) != nil {
			return &MeshError{
				Kind:     MeshAttributeType,
				Name:     decl.Name,
				Declared: decl.BaseType,
				Have:     a.Format.Type,
			}
		}
		r.buf.BindAttribute(decl.Location, a.Buffer.Name(), a.Format.Count, a.Format.Type, a.Format.Stride, a.Format.Offset)
	}
	return nil
}

func (r *Renderer) drawSlice(s mesh.Slice) {
	if s.Kind == mesh.SliceIndex {
		r.buf.BindIndex(s.Index.Name())
		r.buf.DrawIndexed(s.Prim, s.IndexType, s.Start, s.End)
		return
	}
	r.buf.Draw(s.Prim, s.Start, s.End)
}
