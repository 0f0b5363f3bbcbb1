// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"crypto/sha256"
	"fmt"

	"github.com/gogpu/front/backend"
	"github.com/gogpu/front/device"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/wgpu/hal"
)

// CreateShader compiles WGSL source for stage. Parse and lowering errors
// and a missing entry point are reported as *device.CompileError.
//
// IR validation findings are logged at Warn and do not fail compilation;
// the HAL backend has the final word when the module is created. Lowered
// modules are cached by stage and source, so recompiling the same WGSL
// skips the front end.
func (d *Device) CreateShader(stage device.ShaderStage, src device.ShaderSource) (device.ShaderHandle, error) {
	key := moduleKey{stage: stage, sum: sha256.Sum256([]byte(src.WGSL))}
	module, err := d.modules.GetOrCreate(key, func() (*ir.Module, error) {
		return compileWGSL(stage, src)
	})
	if err != nil {
		return device.ShaderHandle{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.ShaderHandle{}, backend.ErrClosed
	}
	raw, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  src.Label,
		Source: hal.ShaderSource{WGSL: src.WGSL},
	})
	if err != nil {
		return device.ShaderHandle{}, &device.CompileError{Stage: stage, Label: src.Label, Log: err.Error(), Err: err}
	}
	n := d.alloc()
	d.shaders[n] = &shader{raw: raw, module: module, stage: stage, label: src.Label}
	return device.NewShaderHandle(n, stage), nil
}

func compileWGSL(stage device.ShaderStage, src device.ShaderSource) (*ir.Module, error) {
	fail := func(err error) error {
		return &device.CompileError{Stage: stage, Label: src.Label, Log: err.Error(), Err: err}
	}
	ast, err := naga.Parse(src.WGSL)
	if err != nil {
		return nil, fail(err)
	}
	module, err := naga.LowerWithSource(ast, src.WGSL)
	if err != nil {
		return nil, fail(err)
	}
	if entryPoint(module, stage) == nil {
		return nil, fail(fmt.Errorf("%w %s", ErrNoEntryPoint, stage))
	}

	issues, err := naga.Validate(module)
	switch {
	case err != nil:
		backend.Logger().Warn("wgpu: shader validation failed",
			"stage", stage, "label", src.Label, "err", err)
	case len(issues) > 0:
		backend.Logger().Warn("wgpu: shader validation issues",
			"stage", stage, "label", src.Label, "count", len(issues), "first", issues[0].Error())
	}
	return module, nil
}

// entryPoint returns the first entry point of module for stage, or nil.
func entryPoint(module *ir.Module, stage device.ShaderStage) *ir.EntryPoint {
	want := ir.StageVertex
	if stage == device.StageFragment {
		want = ir.StageFragment
	}
	for i := range module.EntryPoints {
		if module.EntryPoints[i].Stage == want {
			return &module.EntryPoints[i]
		}
	}
	return nil
}

// CreateProgram links a vertex shader and an optional fragment shader and
// reflects their combined interface. Link failures are *device.LinkError.
func (d *Device) CreateProgram(shaders []device.ShaderHandle) (device.ProgramHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.ProgramHandle{}, backend.ErrClosed
	}

	var vertex, fragment *shader
	names := make([]device.Name, 0, len(shaders))
	for _, h := range shaders {
		s, ok := d.shaders[h.Name()]
		if !ok {
			return device.ProgramHandle{}, &device.LinkError{
				Log: fmt.Sprintf("%v: shader %d", ErrUnknownResource, h.Name()),
			}
		}
		switch s.stage {
		case device.StageVertex:
			if vertex != nil {
				return device.ProgramHandle{}, &device.LinkError{Log: "more than one vertex shader"}
			}
			vertex = s
		case device.StageFragment:
			if fragment != nil {
				return device.ProgramHandle{}, &device.LinkError{Log: "more than one fragment shader"}
			}
			fragment = s
		}
		names = append(names, h.Name())
	}
	if vertex == nil {
		return device.ProgramHandle{}, &device.LinkError{Log: "no vertex shader"}
	}

	info, err := reflectProgram(vertex, fragment)
	if err != nil {
		return device.ProgramHandle{}, &device.LinkError{Log: err.Error()}
	}
	n := d.alloc()
	d.programs[n] = &program{shaders: names, info: info}
	backend.Logger().Debug("wgpu: program linked", "program", n, "interface", info.String())
	return device.NewProgramHandle(n, info), nil
}
