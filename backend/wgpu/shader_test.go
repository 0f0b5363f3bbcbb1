// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/front/device"
)

const positionOnlyVS = `
@vertex
fn main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos.x, pos.y, pos.z, 1.0);
}
`

const texturedVS = `
struct Locals {
    transform: mat4x4<f32>,
    tint: vec4<f32>,
}

@group(0) @binding(0) var<uniform> locals: Locals;
@group(0) @binding(1) var<uniform> u_scale: f32;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) a_pos: vec3<f32>, @location(1) a_uv: vec2<f32>, @builtin(vertex_index) idx: u32) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(a_pos.x * u_scale, a_pos.y * u_scale, a_pos.z, 1.0);
    out.uv = a_uv + locals.tint.xy;
    return out;
}
`

const texturedFS = `
@group(0) @binding(1) var<uniform> u_scale: f32;
@group(0) @binding(2) var t_color: texture_2d<f32>;
@group(0) @binding(3) var s_color: sampler;
@group(0) @binding(4) var t_shadow: texture_depth_2d;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(t_color, s_color, uv) * u_scale;
}
`

const structInputVS = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) color: vec4<f32>,
    @location(2) id: u32,
}

@vertex
fn main(input: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(input.position.x, input.position.y, 0.0, 1.0);
}
`

const constantFS = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func compile(t *testing.T, d *Device, stage device.ShaderStage, src string) device.ShaderHandle {
	t.Helper()
	h, err := d.CreateShader(stage, device.ShaderSource{Label: t.Name(), WGSL: src})
	if err != nil {
		t.Fatalf("CreateShader(%v): %v", stage, err)
	}
	if h.Stage() != stage {
		t.Errorf("Stage() = %v, want %v", h.Stage(), stage)
	}
	return h
}

func TestCreateShaderErrors(t *testing.T) {
	d := createNoopDevice(t)

	tests := []struct {
		name  string
		stage device.ShaderStage
		src   string
		is    error
	}{
		{"syntax", device.StageVertex, "fn broken( {", nil},
		{"no vertex entry", device.StageVertex, constantFS, ErrNoEntryPoint},
		{"no fragment entry", device.StageFragment, positionOnlyVS, ErrNoEntryPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.CreateShader(tt.stage, device.ShaderSource{Label: "bad", WGSL: tt.src})
			var ce *device.CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("CreateShader() error = %v, want *device.CompileError", err)
			}
			if ce.Stage != tt.stage || ce.Label != "bad" || ce.Log == "" {
				t.Errorf("CompileError = %+v", ce)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("CreateShader() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestCreateProgramReflection(t *testing.T) {
	d := createNoopDevice(t)
	vs := compile(t, d, device.StageVertex, texturedVS)
	fs := compile(t, d, device.StageFragment, texturedFS)

	p, err := d.CreateProgram([]device.ShaderHandle{vs, fs})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	info := p.Info()

	wantAttrs := []device.AttributeVar{
		{Name: "a_pos", Location: 0, Count: 1, BaseType: device.BaseF32, Container: device.Vector(3)},
		{Name: "a_uv", Location: 1, Count: 1, BaseType: device.BaseF32, Container: device.Vector(2)},
	}
	if !reflect.DeepEqual(info.Attributes, wantAttrs) {
		t.Errorf("Attributes = %+v, want %+v", info.Attributes, wantAttrs)
	}

	wantUniforms := []device.UniformVar{
		{Name: "u_scale", Location: 1, Count: 1, BaseType: device.BaseF32, Container: device.Single()},
	}
	if !reflect.DeepEqual(info.Uniforms, wantUniforms) {
		t.Errorf("Uniforms = %+v, want %+v", info.Uniforms, wantUniforms)
	}

	wantBlocks := []device.BlockVar{{Name: "locals", Size: 80}}
	if !reflect.DeepEqual(info.Blocks, wantBlocks) {
		t.Errorf("Blocks = %+v, want %+v", info.Blocks, wantBlocks)
	}

	wantTextures := []device.TextureVar{
		{Name: "t_color", Location: 2, BaseType: device.BaseF32, Kind: device.Sampler2D},
		{Name: "t_shadow", Location: 4, BaseType: device.BaseF32, Kind: device.Sampler2D, Shadow: true},
	}
	if !reflect.DeepEqual(info.Textures, wantTextures) {
		t.Errorf("Textures = %+v, want %+v", info.Textures, wantTextures)
	}
}

func TestCreateProgramStructInput(t *testing.T) {
	d := createNoopDevice(t)
	vs := compile(t, d, device.StageVertex, structInputVS)

	p, err := d.CreateProgram([]device.ShaderHandle{vs})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	want := []device.AttributeVar{
		{Name: "position", Location: 0, Count: 1, BaseType: device.BaseF32, Container: device.Vector(2)},
		{Name: "color", Location: 1, Count: 1, BaseType: device.BaseF32, Container: device.Vector(4)},
		{Name: "id", Location: 2, Count: 1, BaseType: device.BaseU32, Container: device.Single()},
	}
	if got := p.Info().Attributes; !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes = %+v, want %+v", got, want)
	}
}

func TestCreateProgramLinkErrors(t *testing.T) {
	d := createNoopDevice(t)
	vs := compile(t, d, device.StageVertex, positionOnlyVS)
	fs := compile(t, d, device.StageFragment, constantFS)

	conflictVS := compile(t, d, device.StageVertex, `
@group(0) @binding(1) var<uniform> a: f32;

@vertex
fn main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos.x * a, pos.y, pos.z, 1.0);
}
`)
	conflictFS := compile(t, d, device.StageFragment, `
@group(0) @binding(1) var<uniform> b: f32;

@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(b, 0.0, 0.0, 1.0);
}
`)

	tests := []struct {
		name    string
		shaders []device.ShaderHandle
		log     string
	}{
		{"no vertex shader", []device.ShaderHandle{fs}, "no vertex shader"},
		{"two vertex shaders", []device.ShaderHandle{vs, vs}, "more than one vertex shader"},
		{"unknown shader", []device.ShaderHandle{vs, device.NewShaderHandle(999, device.StageFragment)}, "unknown resource"},
		{"binding conflict", []device.ShaderHandle{conflictVS, conflictFS}, "binding conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.CreateProgram(tt.shaders)
			var le *device.LinkError
			if !errors.As(err, &le) {
				t.Fatalf("CreateProgram() error = %v, want *device.LinkError", err)
			}
			if !strings.Contains(le.Log, tt.log) {
				t.Errorf("LinkError.Log = %q, want it to contain %q", le.Log, tt.log)
			}
		})
	}
}

func TestCreateShaderReusesModules(t *testing.T) {
	d := createNoopDevice(t)
	a := compile(t, d, device.StageVertex, positionOnlyVS)
	b := compile(t, d, device.StageVertex, positionOnlyVS)
	if a.Name() == b.Name() {
		t.Fatal("recompiled shader shares a name")
	}
	if d.shaders[a.Name()].module != d.shaders[b.Name()].module {
		t.Error("identical WGSL was lowered twice")
	}
	compile(t, d, device.StageFragment, constantFS)

	s := d.modules.Stats()
	if s.Len != 2 || s.Hits != 1 {
		t.Errorf("module cache stats = %+v, want 2 entries and 1 hit", s)
	}

	// Failed compilations are not cached.
	for range 2 {
		if _, err := d.CreateShader(device.StageVertex, device.ShaderSource{WGSL: "fn broken( {"}); err == nil {
			t.Fatal("CreateShader(broken) should fail")
		}
	}
	if d.modules.Len() != 2 {
		t.Errorf("module cache holds %d entries after failures, want 2", d.modules.Len())
	}
}
