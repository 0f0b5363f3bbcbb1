// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package attrib describes how vertex attribute elements are stored in a
// buffer and which shader input types they can feed.
package attrib

import (
	"errors"
	"fmt"

	"github.com/gogpu/front/device"
	"github.com/gogpu/gputypes"
)

// ErrIncompatible is returned when a stored element type cannot feed a
// shader input of the declared base type.
var ErrIncompatible = errors.New("attrib: incompatible element type")

// Size is the size in bytes of one element component.
type Size uint8

const (
	Size8  Size = 1
	Size16 Size = 2
	Size32 Size = 4
	Size64 Size = 8
)

// Signedness of integer components.
type Signedness uint8

const (
	Unsigned Signedness = iota
	Signed
)

// IntSubType says how integer storage reaches the shader.
type IntSubType uint8

const (
	// IntRaw values arrive as integers.
	IntRaw IntSubType = iota
	// IntNormalized values are mapped to [0, 1] or [-1, 1].
	IntNormalized
	// IntAsFloat values are converted to floats without normalisation.
	IntAsFloat
)

// FloatSubType says how float storage reaches the shader.
type FloatSubType uint8

const (
	// FloatDefault values arrive as single precision floats.
	FloatDefault FloatSubType = iota
	// FloatPrecision values keep their storage precision.
	FloatPrecision
)

// Kind is the storage family of an element.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	// KindSpecial covers packed formats that feed no plain base type.
	KindSpecial
)

// Type is the storage type of one vertex attribute component.
// Types are comparable values.
type Type struct {
	Kind  Kind
	Int   IntSubType
	Float FloatSubType
	Size  Size
	Sign  Signedness
}

// Int returns an integer storage type.
func Int(sub IntSubType, size Size, sign Signedness) Type {
	return Type{Kind: KindInt, Int: sub, Size: size, Sign: sign}
}

// Float returns a float storage type.
func Float(sub FloatSubType, size Size) Type {
	return Type{Kind: KindFloat, Float: sub, Size: size}
}

// Special returns the packed storage type.
func Special() Type {
	return Type{Kind: KindSpecial}
}

// Common storage types.
var (
	F32    = Float(FloatDefault, Size32)
	F64    = Float(FloatPrecision, Size64)
	U8Norm = Int(IntNormalized, Size8, Unsigned)
	I32    = Int(IntRaw, Size32, Signed)
	U32    = Int(IntRaw, Size32, Unsigned)
)

// IsCompatible reports whether values stored as t can feed a shader input
// declared with base type bt. It returns nil or an error wrapping
// ErrIncompatible.
//
// Raw integers only feed integer inputs (unsigned storage may also feed
// u32). Normalised or converted integers and every float feed f32. Only
// full precision 64-bit floats feed f64.
func (t Type) IsCompatible(bt device.BaseType) error {
	ok := false
	switch t.Kind {
	case KindInt:
		switch t.Int {
		case IntRaw:
			ok = bt == device.BaseI32 || (bt == device.BaseU32 && t.Sign == Unsigned)
		default:
			ok = bt == device.BaseF32
		}
	case KindFloat:
		ok = bt == device.BaseF32 ||
			(bt == device.BaseF64 && t.Float == FloatPrecision && t.Size == Size64)
	}
	if !ok {
		return fmt.Errorf("%w: %s feeding %s", ErrIncompatible, t, bt)
	}
	return nil
}

// String formats the type, e.g. "f32", "unorm8" or "i16".
func (t Type) String() string {
	bits := int(t.Size) * 8
	switch t.Kind {
	case KindInt:
		prefix := "u"
		if t.Sign == Signed {
			prefix = "i"
		}
		switch t.Int {
		case IntNormalized:
			prefix += "norm"
		case IntAsFloat:
			prefix += "scaled"
		}
		return fmt.Sprintf("%s%d", prefix, bits)
	case KindFloat:
		return fmt.Sprintf("f%d", bits)
	default:
		return "special"
	}
}

type formatKey struct {
	t     Type
	count uint8
}

var vertexFormats = map[formatKey]gputypes.VertexFormat{
	{Int(IntRaw, Size8, Unsigned), 2}:        gputypes.VertexFormatUint8x2,
	{Int(IntRaw, Size8, Unsigned), 4}:        gputypes.VertexFormatUint8x4,
	{Int(IntRaw, Size8, Signed), 2}:          gputypes.VertexFormatSint8x2,
	{Int(IntRaw, Size8, Signed), 4}:          gputypes.VertexFormatSint8x4,
	{Int(IntNormalized, Size8, Unsigned), 2}: gputypes.VertexFormatUnorm8x2,
	{Int(IntNormalized, Size8, Unsigned), 4}: gputypes.VertexFormatUnorm8x4,
	{Int(IntNormalized, Size8, Signed), 2}:   gputypes.VertexFormatSnorm8x2,
	{Int(IntNormalized, Size8, Signed), 4}:   gputypes.VertexFormatSnorm8x4,

	{Int(IntRaw, Size16, Unsigned), 2}:        gputypes.VertexFormatUint16x2,
	{Int(IntRaw, Size16, Unsigned), 4}:        gputypes.VertexFormatUint16x4,
	{Int(IntRaw, Size16, Signed), 2}:          gputypes.VertexFormatSint16x2,
	{Int(IntRaw, Size16, Signed), 4}:          gputypes.VertexFormatSint16x4,
	{Int(IntNormalized, Size16, Unsigned), 2}: gputypes.VertexFormatUnorm16x2,
	{Int(IntNormalized, Size16, Unsigned), 4}: gputypes.VertexFormatUnorm16x4,
	{Int(IntNormalized, Size16, Signed), 2}:   gputypes.VertexFormatSnorm16x2,
	{Int(IntNormalized, Size16, Signed), 4}:   gputypes.VertexFormatSnorm16x4,

	{Int(IntRaw, Size32, Unsigned), 1}: gputypes.VertexFormatUint32,
	{Int(IntRaw, Size32, Unsigned), 2}: gputypes.VertexFormatUint32x2,
	{Int(IntRaw, Size32, Unsigned), 3}: gputypes.VertexFormatUint32x3,
	{Int(IntRaw, Size32, Unsigned), 4}: gputypes.VertexFormatUint32x4,
	{Int(IntRaw, Size32, Signed), 1}:   gputypes.VertexFormatSint32,
	{Int(IntRaw, Size32, Signed), 2}:   gputypes.VertexFormatSint32x2,
	{Int(IntRaw, Size32, Signed), 3}:   gputypes.VertexFormatSint32x3,
	{Int(IntRaw, Size32, Signed), 4}:   gputypes.VertexFormatSint32x4,

	{Float(FloatDefault, Size16), 2}: gputypes.VertexFormatFloat16x2,
	{Float(FloatDefault, Size16), 4}: gputypes.VertexFormatFloat16x4,
	{Float(FloatDefault, Size32), 1}: gputypes.VertexFormatFloat32,
	{Float(FloatDefault, Size32), 2}: gputypes.VertexFormatFloat32x2,
	{Float(FloatDefault, Size32), 3}: gputypes.VertexFormatFloat32x3,
	{Float(FloatDefault, Size32), 4}: gputypes.VertexFormatFloat32x4,
}

// VertexFormat returns the WebGPU vertex format for count components of
// type t, or VertexFormatUndefined when WebGPU has no such format.
func (t Type) VertexFormat(count uint8) gputypes.VertexFormat {
	if t.Kind == KindFloat && t.Float == FloatPrecision && t.Size == Size32 {
		t.Float = FloatDefault
	}
	return vertexFormats[formatKey{t, count}]
}
