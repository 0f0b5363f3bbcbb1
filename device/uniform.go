// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

// UniformValue is a value that can be assigned to a uniform location.
// It is one of ValueI32, ValueF32, ValueI32Vector4, ValueF32Vector2,
// ValueF32Vector3, ValueF32Vector4, ValueF32Matrix2, ValueF32Matrix3 or
// ValueF32Matrix4.
type UniformValue interface {
	// BaseType returns the scalar type of the value.
	BaseType() BaseType
	// Container returns the shape of the value.
	Container() Container
}

type (
	ValueI32        int32
	ValueF32        float32
	ValueI32Vector4 [4]int32
	ValueF32Vector2 [2]float32
	ValueF32Vector3 [3]float32
	ValueF32Vector4 [4]float32
	ValueF32Matrix2 [2][2]float32
	ValueF32Matrix3 [3][3]float32
	ValueF32Matrix4 [4][4]float32
)

func (ValueI32) BaseType() BaseType        { return BaseI32 }
func (ValueF32) BaseType() BaseType        { return BaseF32 }
func (ValueI32Vector4) BaseType() BaseType { return BaseI32 }
func (ValueF32Vector2) BaseType() BaseType { return BaseF32 }
func (ValueF32Vector3) BaseType() BaseType { return BaseF32 }
func (ValueF32Vector4) BaseType() BaseType { return BaseF32 }
func (ValueF32Matrix2) BaseType() BaseType { return BaseF32 }
func (ValueF32Matrix3) BaseType() BaseType { return BaseF32 }
func (ValueF32Matrix4) BaseType() BaseType { return BaseF32 }

func (ValueI32) Container() Container        { return Single() }
func (ValueF32) Container() Container        { return Single() }
func (ValueI32Vector4) Container() Container { return Vector(4) }
func (ValueF32Vector2) Container() Container { return Vector(2) }
func (ValueF32Vector3) Container() Container { return Vector(3) }
func (ValueF32Vector4) Container() Container { return Vector(4) }
func (ValueF32Matrix2) Container() Container { return Matrix(2, 2) }
func (ValueF32Matrix3) Container() Container { return Matrix(3, 3) }
func (ValueF32Matrix4) Container() Container { return Matrix(4, 4) }
