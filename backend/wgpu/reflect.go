// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/front/device"
	"github.com/gogpu/naga/ir"
)

// reflectProgram builds the declared interface of a program from the IR
// of its shaders. fs may be nil.
func reflectProgram(vs, fs *shader) (*device.ProgramInfo, error) {
	info := &device.ProgramInfo{}
	if ep := entryPoint(vs.module, device.StageVertex); ep != nil {
		info.Attributes = reflectAttributes(vs.module, ep)
	}

	seen := make(map[ir.ResourceBinding]string)
	for _, s := range []*shader{vs, fs} {
		if s == nil {
			continue
		}
		if err := reflectGlobals(info, s.module, seen); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// reflectAttributes lists the @location inputs of a vertex entry point,
// flattening struct arguments. Built-in inputs are skipped.
func reflectAttributes(module *ir.Module, ep *ir.EntryPoint) []device.AttributeVar {
	var attrs []device.AttributeVar
	add := func(name string, binding *ir.Binding, th ir.TypeHandle) {
		loc, ok := location(binding)
		if !ok {
			return
		}
		bt, c, ok := valueType(module, th)
		if !ok {
			return
		}
		attrs = append(attrs, device.AttributeVar{
			Name:      name,
			Location:  loc,
			Count:     1,
			BaseType:  bt,
			Container: c,
		})
	}
	for _, arg := range ep.Function.Arguments {
		if st, ok := typeInner(module, arg.Type).(ir.StructType); ok && arg.Binding == nil {
			for _, m := range st.Members {
				add(m.Name, m.Binding, m.Type)
			}
			continue
		}
		add(arg.Name, arg.Binding, arg.Type)
	}
	return attrs
}

// reflectGlobals appends the uniforms, blocks and textures of module.
// Variables already reflected from another shader at the same binding are
// merged; a different variable at a taken binding is an error.
func reflectGlobals(info *device.ProgramInfo, module *ir.Module, seen map[ir.ResourceBinding]string) error {
	for _, g := range module.GlobalVariables {
		if g.Binding == nil || (g.Space != ir.SpaceUniform && g.Space != ir.SpaceHandle) {
			continue
		}
		if prev, ok := seen[*g.Binding]; ok {
			if prev != g.Name {
				return fmt.Errorf("%w: @group(%d) @binding(%d) is %q and %q",
					ErrBindingConflict, g.Binding.Group, g.Binding.Binding, prev, g.Name)
			}
			continue
		}
		seen[*g.Binding] = g.Name
		loc := device.Location(g.Binding.Binding)

		switch inner := typeInner(module, g.Type).(type) {
		case ir.StructType:
			if g.Space == ir.SpaceUniform {
				info.Blocks = append(info.Blocks, device.BlockVar{Name: g.Name, Size: int(inner.Span)})
			}
		case ir.ImageType:
			info.Textures = append(info.Textures, device.TextureVar{
				Name:     g.Name,
				Location: loc,
				BaseType: imageBaseType(inner),
				Kind:     samplerKind(inner.Dim),
				Shadow:   inner.Class == ir.ImageClassDepth,
			})
		case ir.ArrayType:
			bt, c, ok := valueType(module, inner.Base)
			if !ok || inner.Size.Constant == nil || g.Space != ir.SpaceUniform {
				continue
			}
			info.Uniforms = append(info.Uniforms, device.UniformVar{
				Name:      g.Name,
				Location:  loc,
				Count:     int(*inner.Size.Constant),
				BaseType:  bt,
				Container: c,
			})
		default:
			bt, c, ok := valueType(module, g.Type)
			if !ok || g.Space != ir.SpaceUniform {
				continue
			}
			info.Uniforms = append(info.Uniforms, device.UniformVar{
				Name:      g.Name,
				Location:  loc,
				Count:     1,
				BaseType:  bt,
				Container: c,
			})
		}
	}
	return nil
}

func typeInner(module *ir.Module, th ir.TypeHandle) ir.TypeInner {
	if int(th) >= len(module.Types) {
		return nil
	}
	return module.Types[th].Inner
}

// location extracts the @location of a binding.
func location(b *ir.Binding) (uint32, bool) {
	if b == nil || *b == nil {
		return 0, false
	}
	switch lb := (*b).(type) {
	case ir.LocationBinding:
		return lb.Location, true
	case *ir.LocationBinding:
		return lb.Location, true
	}
	return 0, false
}

// valueType maps a scalar, vector or matrix type to its base type and
// container.
func valueType(module *ir.Module, th ir.TypeHandle) (device.BaseType, device.Container, bool) {
	switch t := typeInner(module, th).(type) {
	case ir.ScalarType:
		bt, ok := baseType(t)
		return bt, device.Single(), ok
	case ir.VectorType:
		bt, ok := baseType(t.Scalar)
		return bt, device.Vector(uint8(t.Size)), ok
	case ir.MatrixType:
		bt, ok := baseType(t.Scalar)
		return bt, device.Matrix(uint8(t.Columns), uint8(t.Rows)), ok
	}
	return 0, device.Container{}, false
}

func baseType(s ir.ScalarType) (device.BaseType, bool) {
	switch s.Kind {
	case ir.ScalarSint:
		return device.BaseI32, true
	case ir.ScalarUint:
		return device.BaseU32, true
	case ir.ScalarFloat:
		if s.Width == 8 {
			return device.BaseF64, true
		}
		return device.BaseF32, true
	case ir.ScalarBool:
		return device.BaseBool, true
	}
	return 0, false
}

func imageBaseType(img ir.ImageType) device.BaseType {
	if img.Class != ir.ImageClassSampled {
		return device.BaseF32
	}
	switch img.SampledKind {
	case ir.ScalarSint:
		return device.BaseI32
	case ir.ScalarUint:
		return device.BaseU32
	default:
		return device.BaseF32
	}
}

func samplerKind(dim ir.ImageDimension) device.SamplerKind {
	switch dim {
	case ir.Dim1D:
		return device.Sampler1D
	case ir.Dim3D:
		return device.Sampler3D
	case ir.DimCube:
		return device.SamplerCube
	default:
		return device.Sampler2D
	}
}
