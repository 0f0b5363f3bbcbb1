// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/front/command"
	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
	"github.com/gogpu/front/mesh"
	"github.com/gogpu/front/shade"
	"github.com/gogpu/front/state"
	"github.com/gogpu/front/target"
	"github.com/gogpu/gputypes"
)

func offscreenFrame() target.Frame {
	f := target.NewFrame(8, 8)
	f.SetColor(0, target.Texture(testTexture(10), 0, 0)).
		SetDepth(target.Texture(testTexture(11), 0, 0)).
		SetStencil(target.Surface(testSurface(12)))
	return f
}

func TestBindFrameSingleSlotChange(t *testing.T) {
	tests := []struct {
		name   string
		target device.Target
		change func(*target.Frame)
		want   command.Command
	}{
		{
			name:   "color 0 to texture level",
			target: device.ColorTarget(0),
			change: func(f *target.Frame) { f.SetColor(0, target.Texture(testTexture(10), 1, 0)) },
			want:   command.BindTargetTextureCommand{Target: device.ColorTarget(0), Texture: 10, Level: 1},
		},
		{
			name:   "color 1 to surface",
			target: device.ColorTarget(1),
			change: func(f *target.Frame) { f.SetColor(1, target.Surface(testSurface(20))) },
			want:   command.BindTargetSurfaceCommand{Target: device.ColorTarget(1), Surface: 20},
		},
		{
			name:   "color 3 to texture layer",
			target: device.ColorTarget(3),
			change: func(f *target.Frame) { f.SetColor(3, target.Texture(testTexture(21), 0, 5)) },
			want:   command.BindTargetTextureCommand{Target: device.ColorTarget(3), Texture: 21, Layer: 5},
		},
		{
			name:   "depth to empty",
			target: device.DepthTarget(),
			change: func(f *target.Frame) { f.SetDepth(target.Empty()) },
			want:   command.UnbindTargetCommand{Target: device.DepthTarget()},
		},
		{
			name:   "stencil to other surface",
			target: device.StencilTarget(),
			change: func(f *target.Frame) { f.SetStencil(target.Surface(testSurface(22))) },
			want:   command.BindTargetSurfaceCommand{Target: device.StencilTarget(), Surface: 22},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t)
			f1 := offscreenFrame()
			f2 := f1
			tt.change(&f2)

			r.bindFrame(&f1)
			r.Reset()
			r.bindFrame(&f2)

			got := targetBindings(r.Commands())
			if len(got) != 1 {
				t.Fatalf("got %d target bindings, want 1: %v", len(got), got)
			}
			if got[0] != tt.want {
				t.Errorf("binding = %+v, want %+v", got[0], tt.want)
			}
			if r.frame != f2 {
				t.Error("shadow frame should equal the requested frame")
			}
		})
	}
}

func TestBindFrameFirstBindEmitsAllAttachments(t *testing.T) {
	r := newTestRenderer(t)
	f := offscreenFrame()
	r.bindFrame(&f)

	want := []command.Command{
		command.SetViewportCommand{Rect: device.Rect{W: 8, H: 8}},
		command.BindFrameBufferCommand{FrameBuffer: fakeFrameBuffer},
		command.BindTargetTextureCommand{Target: device.ColorTarget(0), Texture: 10},
		command.BindTargetTextureCommand{Target: device.DepthTarget(), Texture: 11},
		command.BindTargetSurfaceCommand{Target: device.StencilTarget(), Surface: 12},
	}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("commands =\n%+v\nwant\n%+v", got, want)
	}
}

func TestBindFrameSameFrameTwice(t *testing.T) {
	r := newTestRenderer(t)
	f := offscreenFrame()
	r.bindFrame(&f)
	r.Reset()
	r.bindFrame(&f)

	if got := types(r.Commands()); !reflect.DeepEqual(got, []command.CommandType{command.CmdSetViewport, command.CmdBindFrameBuffer}) {
		t.Errorf("rebinding the same frame recorded %v", got)
	}
}

func TestBindFrameDefaultKeepsShadow(t *testing.T) {
	r := newTestRenderer(t)
	f := offscreenFrame()
	r.bindFrame(&f)

	def := target.NewFrame(640, 480)
	r.Reset()
	r.bindFrame(&def)

	want := []command.Command{
		command.SetViewportCommand{Rect: device.Rect{W: 640, H: 480}},
		command.BindFrameBufferCommand{FrameBuffer: fakeMainBuffer},
	}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("default frame commands = %+v, want %+v", got, want)
	}
	if r.frame != f {
		t.Error("binding the default frame must not change the shadow frame")
	}

	// Back to the off-screen frame: nothing changed against the shadow.
	r.Reset()
	r.bindFrame(&f)
	if got := targetBindings(r.Commands()); len(got) != 0 {
		t.Errorf("returning to the cached frame recorded %v", got)
	}
}

func TestBindProgramMissingUniform(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{
		Uniforms: []device.UniformVar{
			{Name: "A", Location: 0, BaseType: device.BaseF32, Container: device.Single()},
			{Name: "B", Location: 1, BaseType: device.BaseF32, Container: device.Single()},
		},
		Blocks:   []device.BlockVar{{Name: "Locals"}},
		Textures: []device.TextureVar{{Name: "t", Location: 2}},
	})
	p.values.Uniforms = []device.UniformValue{nil, device.ValueF32(1)}

	err := r.bindProgram(p)

	var pe *ParameterError
	if !errors.As(err, &pe) {
		t.Fatalf("bindProgram error = %v, want *ParameterError", err)
	}
	if pe.Kind != ParamUniform || pe.Name != "A" {
		t.Errorf("error = %+v, want missing uniform A", pe)
	}
	if !errors.Is(err, ErrMissingUniform) {
		t.Error("error should match ErrMissingUniform")
	}
	if got := types(r.Commands()); !reflect.DeepEqual(got, []command.CommandType{command.CmdBindProgram}) {
		t.Errorf("recorded %v, want only BindProgram", got)
	}
}

func TestBindProgramParameters(t *testing.T) {
	r := newTestRenderer(t)
	blockA := device.NewBufferHandle(70, device.BufferInfo{Role: device.RoleUniform, Size: 64})
	blockB := device.NewBufferHandle(71, device.BufferInfo{Role: device.RoleUniform, Size: 64})
	sampler := device.NewSamplerHandle(80, gputypes.LinearSamplerDescriptor())

	p := newProgram(&device.ProgramInfo{
		Uniforms: []device.UniformVar{{Name: "scale", Location: 3, BaseType: device.BaseF32, Container: device.Single()}},
		Blocks:   []device.BlockVar{{Name: "A"}, {Name: "B"}},
		Textures: []device.TextureVar{{Name: "t0", Location: 5}, {Name: "t1", Location: 6}},
	})
	p.values = shade.ParamValues{
		Uniforms: []device.UniformValue{device.ValueF32(2)},
		Blocks:   []*device.BufferHandle{&blockA, &blockB},
		Textures: []*shade.TextureParam{
			{Texture: testTexture(90)},
			{Texture: testTexture(91), Sampler: &sampler},
		},
	}

	if err := r.bindProgram(p); err != nil {
		t.Fatalf("bindProgram: %v", err)
	}

	want := []command.Command{
		command.BindProgramCommand{Program: 50},
		command.BindUniformCommand{Location: 3, Value: device.ValueF32(2)},
		command.BindUniformBlockCommand{Program: 50, Slot: 0, Index: 0, Buffer: 70},
		command.BindUniformBlockCommand{Program: 50, Slot: 1, Index: 1, Buffer: 71},
		command.BindUniformCommand{Location: 5, Value: device.ValueI32(0)},
		command.BindTextureCommand{Slot: 0, Kind: device.Texture2D, Texture: 90},
		command.BindUniformCommand{Location: 6, Value: device.ValueI32(1)},
		command.BindTextureCommand{Slot: 1, Kind: device.Texture2D, Texture: 91, Sampler: 80},
	}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("commands =\n%+v\nwant\n%+v", got, want)
	}
}

func TestBindProgramMissingParameters(t *testing.T) {
	block := device.NewBufferHandle(70, device.BufferInfo{Size: 16})

	tests := []struct {
		name     string
		info     *device.ProgramInfo
		values   shade.ParamValues
		kind     ParamKind
		param    string
		sentinel error
	}{
		{
			name:     "block",
			info:     &device.ProgramInfo{Blocks: []device.BlockVar{{Name: "A"}, {Name: "B"}}},
			values:   shade.ParamValues{Blocks: []*device.BufferHandle{&block, nil}},
			kind:     ParamBlock,
			param:    "B",
			sentinel: ErrMissingBlock,
		},
		{
			name:     "texture",
			info:     &device.ProgramInfo{Textures: []device.TextureVar{{Name: "diffuse"}}},
			kind:     ParamTexture,
			param:    "diffuse",
			sentinel: ErrMissingTexture,
		},
		{
			name:     "shadow sampler",
			info:     &device.ProgramInfo{Textures: []device.TextureVar{{Name: "shadow", Shadow: true}}},
			values:   shade.ParamValues{Textures: []*shade.TextureParam{{Texture: testTexture(3)}}},
			kind:     ParamSampler,
			param:    "shadow",
			sentinel: ErrMissingSampler,
		},
		{
			name: "uniforms before blocks",
			info: &device.ProgramInfo{
				Uniforms: []device.UniformVar{{Name: "u"}},
				Blocks:   []device.BlockVar{{Name: "b"}},
			},
			kind:     ParamUniform,
			param:    "u",
			sentinel: ErrMissingUniform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t)
			p := newProgram(tt.info)
			p.values = tt.values

			err := r.bindProgram(p)
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParameterError", err)
			}
			if pe.Kind != tt.kind || pe.Name != tt.param {
				t.Errorf("error = %+v, want %v %q", pe, tt.kind, tt.param)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error should match %v", tt.sentinel)
			}
		})
	}
}

func TestDrawCommandShape(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{
		Attributes: []device.AttributeVar{attr("position", 0, device.BaseF32), attr("color", 1, device.BaseF32)},
	})
	m := testMesh("position", "color", "unused")
	f := target.NewFrame(8, 8)

	if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, p, defaultState()); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	cmds := r.Commands()
	checks := []struct {
		ct   command.CommandType
		want int
	}{
		{command.CmdSetViewport, 1},
		{command.CmdBindProgram, 1},
		{command.CmdSetPrimitive, 1},
		{command.CmdSetScissor, 1},
		{command.CmdSetDepthStencil, 1},
		{command.CmdSetBlend, 1},
		{command.CmdSetColorMask, 1},
		{command.CmdBindAttribute, 2},
		{command.CmdDraw, 1},
		{command.CmdDrawIndexed, 0},
		{command.CmdBindIndex, 0},
		{command.CmdBindUniform, 0},
	}
	for _, c := range checks {
		if got := count(cmds, c.ct); got != c.want {
			t.Errorf("%v count = %d, want %d", c.ct, got, c.want)
		}
	}

	want := []command.CommandType{
		command.CmdSetViewport, command.CmdBindFrameBuffer, command.CmdBindProgram,
		command.CmdSetPrimitive, command.CmdSetScissor, command.CmdSetDepthStencil,
		command.CmdSetBlend, command.CmdSetColorMask, command.CmdBindArrayBuffer,
		command.CmdBindAttribute, command.CmdBindAttribute, command.CmdDraw,
	}
	if got := types(cmds); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v\nwant    %v", got, want)
	}

	pos := cmds[9].(command.BindAttributeCommand)
	wantPos := command.BindAttributeCommand{Slot: 0, Buffer: 60, Count: 4, ElemType: attrib.F32, Stride: 48, Offset: 0}
	if pos != wantPos {
		t.Errorf("position binding = %+v, want %+v", pos, wantPos)
	}
	if d := cmds[11].(command.DrawCommand); d.Start != 0 || d.End != 4 {
		t.Errorf("draw range = [%d, %d), want [0, 4)", d.Start, d.End)
	}
}

func TestDrawFixedFunctionState(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{})
	m := testMesh()
	f := target.NewFrame(8, 8)

	scissor := device.Rect{X: 1, Y: 2, W: 3, H: 4}
	st := state.New().
		WithDepth(gputypes.CompareFunctionLess, true).
		WithBlend(gputypes.BlendStateAlpha()).
		WithScissor(scissor).
		WithCull(gputypes.CullModeBack)
	st.Primitive.Method = state.RasterLine
	st.ColorMask = gputypes.ColorWriteMaskRed

	if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyLineList), &f, p, &st); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	cmds := r.Commands()
	if sc := cmds[4].(command.SetScissorCommand); !sc.Enabled || sc.Rect != scissor {
		t.Errorf("scissor = %+v", sc)
	}
	ds := cmds[5].(command.SetDepthStencilCommand)
	if ds.Cull != gputypes.CullModeNone {
		t.Errorf("line rasterization should not cull, got %v", ds.Cull)
	}
	if ds.Depth == nil || ds.Depth.Compare != gputypes.CompareFunctionLess || ds.Stencil != nil {
		t.Errorf("depth/stencil = %+v", ds)
	}
	if bl := cmds[6].(command.SetBlendCommand); bl.Blend == nil || bl.Blend.State != gputypes.BlendStateAlpha() {
		t.Errorf("blend = %+v", bl)
	}
	if cm := cmds[7].(command.SetColorMaskCommand); cm.Mask != gputypes.ColorWriteMaskRed {
		t.Errorf("color mask = %v", cm.Mask)
	}
}

func TestDrawMissingAttribute(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{
		Attributes: []device.AttributeVar{
			attr("color", 0, device.BaseF32),
			attr("position", 1, device.BaseF32),
			attr("uv", 2, device.BaseF32),
		},
	})
	m := testMesh("color", "uv")
	f := target.NewFrame(8, 8)

	err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, p, defaultState())

	var de *DrawError
	if !errors.As(err, &de) || de.Phase != PhaseMesh {
		t.Fatalf("Draw error = %v, want mesh-phase *DrawError", err)
	}
	var me *MeshError
	if !errors.As(err, &me) || me.Kind != MeshAttributeMissing || me.Name != "position" {
		t.Fatalf("error = %v, want attribute missing(position)", err)
	}
	if !errors.Is(err, ErrAttributeMissing) {
		t.Error("error should match ErrAttributeMissing")
	}

	cmds := r.Commands()
	if got := count(cmds, command.CmdBindAttribute); got != 1 {
		t.Errorf("BindAttribute count = %d, want 1 (color only)", got)
	}
	if got := count(cmds, command.CmdDraw); got != 0 {
		t.Error("failed draw must not record a draw command")
	}
}

func TestDrawAttributeTypeMismatch(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{
		Attributes: []device.AttributeVar{attr("id", 0, device.BaseI32)},
	})
	m := testMesh("id")
	f := target.NewFrame(8, 8)

	err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyPointList), &f, p, defaultState())

	var me *MeshError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MeshError", err)
	}
	if me.Kind != MeshAttributeType || me.Name != "id" || me.Declared != device.BaseI32 || me.Have != attrib.F32 {
		t.Errorf("error = %+v", me)
	}
	if !errors.Is(err, ErrAttributeType) {
		t.Error("error should match ErrAttributeType")
	}
}

func TestDrawParameterErrorStopsBeforeState(t *testing.T) {
	r := newTestRenderer(t)
	p := newProgram(&device.ProgramInfo{Uniforms: []device.UniformVar{{Name: "missing"}}})
	m := testMesh()
	f := target.NewFrame(8, 8)

	err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, p, defaultState())

	var de *DrawError
	if !errors.As(err, &de) || de.Phase != PhaseParameter {
		t.Fatalf("Draw error = %v, want parameter-phase *DrawError", err)
	}
	want := []command.CommandType{command.CmdSetViewport, command.CmdBindFrameBuffer, command.CmdBindProgram}
	if got := types(r.Commands()); !reflect.DeepEqual(got, want) {
		t.Errorf("recorded %v, want %v", got, want)
	}
}

func TestDrawSlice(t *testing.T) {
	ib := device.NewBufferHandle(40, device.BufferInfo{Role: device.RoleIndex, Size: 12})

	tests := []struct {
		name  string
		slice mesh.Slice
		want  []command.Command
	}{
		{
			name:  "vertex",
			slice: mesh.VertexSlice(gputypes.PrimitiveTopologyTriangleStrip, 2, 6),
			want: []command.Command{
				command.DrawCommand{Primitive: gputypes.PrimitiveTopologyTriangleStrip, Start: 2, End: 6},
			},
		},
		{
			name:  "index8",
			slice: mesh.IndexSlice8(gputypes.PrimitiveTopologyTriangleList, ib, 0, 12),
			want: []command.Command{
				command.BindIndexCommand{Buffer: 40},
				command.DrawIndexedCommand{Primitive: gputypes.PrimitiveTopologyTriangleList, Index: device.IndexU8, Start: 0, End: 12},
			},
		},
		{
			name:  "index16",
			slice: mesh.IndexSlice16(gputypes.PrimitiveTopologyTriangleList, ib, 0, 6),
			want: []command.Command{
				command.BindIndexCommand{Buffer: 40},
				command.DrawIndexedCommand{Primitive: gputypes.PrimitiveTopologyTriangleList, Index: device.IndexU16, Start: 0, End: 6},
			},
		},
		{
			name:  "index32",
			slice: mesh.IndexSlice32(gputypes.PrimitiveTopologyLineStrip, ib, 1, 3),
			want: []command.Command{
				command.BindIndexCommand{Buffer: 40},
				command.DrawIndexedCommand{Primitive: gputypes.PrimitiveTopologyLineStrip, Index: device.IndexU32, Start: 1, End: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t)
			m := testMesh()
			f := target.NewFrame(8, 8)
			if err := r.Draw(m, tt.slice, &f, newProgram(&device.ProgramInfo{}), defaultState()); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			cmds := r.Commands()
			tail := cmds[len(cmds)-len(tt.want):]
			if !reflect.DeepEqual(tail, tt.want) {
				t.Errorf("tail = %+v, want %+v", tail, tt.want)
			}
			if tt.slice.Kind == mesh.SliceVertex && count(cmds, command.CmdBindIndex) != 0 {
				t.Error("vertex slice must not bind an index buffer")
			}
		})
	}
}

func TestDrawWithoutArrayBuffer(t *testing.T) {
	r, err := NewRenderer(&fakeDevice{noArrayBuffer: true})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	m := testMesh()
	f := target.NewFrame(8, 8)
	if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, newProgram(&device.ProgramInfo{}), defaultState()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := count(r.Commands(), command.CmdBindArrayBuffer); got != 0 {
		t.Errorf("BindArrayBuffer recorded %d times without array buffer support", got)
	}
}

func TestFailedDrawPolicy(t *testing.T) {
	prog := newProgram(&device.ProgramInfo{Attributes: []device.AttributeVar{attr("position", 0, device.BaseF32)}})
	bad := testMesh("normal")
	f := offscreenFrame()

	t.Run("keep partial commands", func(t *testing.T) {
		r := newTestRenderer(t)
		err := r.Draw(bad, bad.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, prog, defaultState())
		if err == nil {
			t.Fatal("Draw should fail")
		}
		cmds := r.Commands()
		if count(cmds, command.CmdBindProgram) != 1 || count(cmds, command.CmdSetColorMask) != 1 {
			t.Errorf("partial commands should remain, got %v", types(cmds))
		}
		if r.frame != f {
			t.Error("frame cache should reflect the bound frame")
		}
	})

	t.Run("rollback", func(t *testing.T) {
		r := newTestRenderer(t, WithRollback(true))
		r.Clear(device.ClearData{Mask: device.ClearColor}, &f)
		before := r.Commands()

		other := offscreenFrame()
		other.SetColor(1, target.Texture(testTexture(30), 0, 0))
		err := r.Draw(bad, bad.ToSlice(gputypes.PrimitiveTopologyTriangleList), &other, prog, defaultState())
		if err == nil {
			t.Fatal("Draw should fail")
		}
		if got := r.Commands(); !reflect.DeepEqual(got, before) {
			t.Errorf("rollback left commands:\n%v\nwant\n%v", types(got), types(before))
		}
		if r.frame != f {
			t.Error("rollback should restore the frame cache")
		}

		// A successful draw afterwards is unaffected.
		good := testMesh("position")
		if err := r.Draw(good, good.ToSlice(gputypes.PrimitiveTopologyTriangleList), &other, prog, defaultState()); err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if got := len(targetBindings(r.Commands()[len(before):])); got != 1 {
			t.Errorf("draw after rollback recorded %d target bindings, want 1", got)
		}
	})
}

func TestClear(t *testing.T) {
	r := newTestRenderer(t)
	f := target.NewFrame(4, 4)
	data := device.ClearData{Color: gputypes.ColorBlack, Depth: 1, Mask: device.ClearAll}
	r.Clear(data, &f)

	want := []command.Command{
		command.SetViewportCommand{Rect: device.Rect{W: 4, H: 4}},
		command.BindFrameBufferCommand{FrameBuffer: fakeMainBuffer},
		command.ClearCommand{Data: data},
	}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("commands = %+v, want %+v", got, want)
	}
}

func TestCloneEmpty(t *testing.T) {
	r := newTestRenderer(t)
	prog := newProgram(&device.ProgramInfo{})
	m := testMesh()
	f := offscreenFrame()
	if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, prog, defaultState()); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := r.CloneEmpty()
	if c.Len() != 0 {
		t.Errorf("clone has %d commands", c.Len())
	}
	if r.Len() == 0 {
		t.Error("CloneEmpty must not clear the original")
	}
	if c.frameBuffer != r.frameBuffer || c.arrayBuffer != r.arrayBuffer || c.mainBuffer != r.mainBuffer {
		t.Error("clone should share device objects")
	}

	c.Clear(device.ClearData{}, &f)
	if got := len(targetBindings(c.Commands())); got != 3 {
		t.Errorf("clone re-bound %d attachments, want 3", got)
	}
}

func TestResetMatchesFreshRenderer(t *testing.T) {
	record := func(r *Renderer) {
		prog := newProgram(&device.ProgramInfo{Attributes: []device.AttributeVar{attr("position", 0, device.BaseF32)}})
		m := testMesh("position")
		f := target.NewFrame(16, 16)
		r.Clear(device.ClearData{Mask: device.ClearColor}, &f)
		if err := r.Draw(m, m.ToSlice(gputypes.PrimitiveTopologyTriangleList), &f, prog, defaultState()); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}

	used := newTestRenderer(t)
	record(used)
	used.Reset()
	if used.Len() != 0 {
		t.Fatalf("Len after Reset = %d", used.Len())
	}
	record(used)

	fresh := newTestRenderer(t)
	record(fresh)

	if !reflect.DeepEqual(used.Commands(), fresh.Commands()) {
		t.Errorf("reset renderer recorded\n%v\nfresh renderer recorded\n%v", types(used.Commands()), types(fresh.Commands()))
	}
}

func TestCommandsSnapshot(t *testing.T) {
	r := newTestRenderer(t)
	f := target.NewFrame(1, 1)
	r.Clear(device.ClearData{}, &f)
	snap := r.Commands()
	r.Reset()
	if len(snap) != 3 {
		t.Errorf("snapshot length = %d after Reset, want 3", len(snap))
	}
}
