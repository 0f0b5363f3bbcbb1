// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gogpu/front/device"
)

// Connect errors.
var (
	// ErrNotStruct is returned when the parameters are not a pointer to a
	// struct.
	ErrNotStruct = errors.New("shade: parameters must be a non-nil pointer to a struct")

	// ErrNoField is returned when a declared parameter has no field.
	ErrNoField = errors.New("shade: no field for declared parameter")

	// ErrFieldType is returned when a field cannot hold the declared
	// parameter.
	ErrFieldType = errors.New("shade: field type does not match declared parameter")
)

// ConnectError reports a parameter struct that does not fit a program.
type ConnectError struct {
	// Param is the declared parameter name, empty for ErrNotStruct.
	Param string
	// Field is the Go field name, empty for ErrNoField.
	Field string
	Err   error
}

func (e *ConnectError) Error() string {
	switch {
	case e.Param == "":
		return e.Err.Error()
	case e.Field == "":
		return fmt.Sprintf("%v %q", e.Err, e.Param)
	default:
		return fmt.Sprintf("%v %q (field %s)", e.Err, e.Param, e.Field)
	}
}

func (e *ConnectError) Unwrap() error { return e.Err }

var (
	uniformValueType = reflect.TypeFor[device.UniformValue]()
	bufferType       = reflect.TypeFor[device.BufferHandle]()
	textureType      = reflect.TypeFor[TextureParam]()
)

// Connect binds the fields of the struct that params points to against the
// declared interface of handle. Every declared uniform, block and texture
// needs a field, found by its `shader:"name"` tag or, without a tag, by the
// field name. Fields tagged `shader:"-"` and fields the program does not
// declare are ignored.
//
// Field types:
//
//	uniform: device.UniformValue, a concrete value type such as device.ValueF32,
//	         or a pointer to one
//	block:   device.BufferHandle or *device.BufferHandle
//	texture: shade.TextureParam or *shade.TextureParam
//
// Nil interface and pointer fields are reported as missing at draw time.
// The struct is read on every draw, so callers update parameters by
// assigning to its fields.
//
//	type params struct {
//	    Color device.ValueF32Vector4 `shader:"u_color"`
//	    Tex   shade.TextureParam     `shader:"t_diffuse"`
//	}
//	p, err := shade.Connect(prog, &params{})
func Connect(handle device.ProgramHandle, params any) (*UserProgram, error) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, &ConnectError{Err: ErrNotStruct}
	}
	sv := rv.Elem()
	fields := fieldsByParam(sv.Type())
	info := handle.Info()

	uniforms := make([]int, len(info.Uniforms))
	for i, u := range info.Uniforms {
		f, err := lookupField(fields, u.Name)
		if err != nil {
			return nil, err
		}
		if !uniformFits(f.Type, u) {
			return nil, &ConnectError{Param: u.Name, Field: f.Name, Err: ErrFieldType}
		}
		uniforms[i] = f.Index[0]
	}

	blocks := make([]int, len(info.Blocks))
	for i, b := range info.Blocks {
		f, err := lookupField(fields, b.Name)
		if err != nil {
			return nil, err
		}
		if !valueOrPointer(f.Type, bufferType) {
			return nil, &ConnectError{Param: b.Name, Field: f.Name, Err: ErrFieldType}
		}
		blocks[i] = f.Index[0]
	}

	textures := make([]int, len(info.Textures))
	for i, t := range info.Textures {
		f, err := lookupField(fields, t.Name)
		if err != nil {
			return nil, err
		}
		if !valueOrPointer(f.Type, textureType) {
			return nil, &ConnectError{Param: t.Name, Field: f.Name, Err: ErrFieldType}
		}
		textures[i] = f.Index[0]
	}

	return &UserProgram{
		handle: handle,
		fill: func(v *ParamValues) {
			for i, idx := range uniforms {
				fv := sv.Field(idx)
				if (fv.Kind() == reflect.Interface || fv.Kind() == reflect.Pointer) && fv.IsNil() {
					continue
				}
				v.Uniforms[i] = reflect.Indirect(fv).Interface().(device.UniformValue)
			}
			for i, idx := range blocks {
				if h, ok := readValue[device.BufferHandle](sv.Field(idx)); ok {
					v.Blocks[i] = &h
				}
			}
			for i, idx := range textures {
				if t, ok := readValue[TextureParam](sv.Field(idx)); ok {
					v.Textures[i] = &t
				}
			}
		},
	}, nil
}

func fieldsByParam(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("shader"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		fields[name] = f
	}
	return fields
}

func lookupField(fields map[string]reflect.StructField, param string) (reflect.StructField, error) {
	f, ok := fields[param]
	if !ok {
		return f, &ConnectError{Param: param, Err: ErrNoField}
	}
	return f, nil
}

// uniformFits reports whether a field of type t can feed uniform u. The
// interface type fits any uniform; a concrete type, or a pointer to one,
// must match the declared base type and container.
func uniformFits(t reflect.Type, u device.UniformVar) bool {
	if t == uniformValueType {
		return true
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return false
	}
	if !t.Implements(uniformValueType) {
		return false
	}
	zero := reflect.Zero(t).Interface().(device.UniformValue)
	return zero.BaseType() == u.BaseType && zero.Container() == u.Container
}

func valueOrPointer(t, want reflect.Type) bool {
	return t == want || (t.Kind() == reflect.Pointer && t.Elem() == want)
}

func readValue[T any](fv reflect.Value) (T, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			var zero T
			return zero, false
		}
		fv = fv.Elem()
	}
	return fv.Interface().(T), true
}
