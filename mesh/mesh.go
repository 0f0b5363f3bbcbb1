// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh describes vertex data and the ranges of it a draw call uses.
//
// A Mesh is a list of named attributes, each reading from a buffer with its
// own element type, stride and offset. A Slice selects the vertices (or the
// indices) to draw and the primitive topology to draw them with.
package mesh

import (
	"fmt"

	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
	"github.com/gogpu/gputypes"
)

// Format describes how one attribute is laid out in its buffer.
type Format struct {
	// Count is the number of components per vertex, 1 to 4.
	Count uint8
	// Type is the component type.
	Type attrib.Type
	// Offset is the byte offset of the first component.
	Offset uint32
	// Stride is the distance in bytes between consecutive vertices.
	Stride uint32
}

// Attribute is a named vertex attribute of a mesh.
type Attribute struct {
	Name   string
	Buffer device.BufferHandle
	Format Format
}

// Mesh is vertex data ready to be drawn.
type Mesh struct {
	NumVertices uint32
	Attributes  []Attribute
}

// New returns an empty mesh with the given vertex count.
func New(numVertices uint32) *Mesh {
	return &Mesh{NumVertices: numVertices}
}

// AddAttribute appends an attribute and returns the mesh for chaining.
func (m *Mesh) AddAttribute(name string, buf device.BufferHandle, f Format) *Mesh {
	m.Attributes = append(m.Attributes, Attribute{Name: name, Buffer: buf, Format: f})
	return m
}

// Attribute returns the attribute with the given name.
// Names are matched exactly.
func (m *Mesh) Attribute(name string) (*Attribute, bool) {
	for i := range m.Attributes {
		if m.Attributes[i].Name == name {
			return &m.Attributes[i], true
		}
	}
	return nil, false
}

// ToSlice returns a slice covering every vertex of the mesh.
func (m *Mesh) ToSlice(prim gputypes.PrimitiveTopology) Slice {
	return VertexSlice(prim, 0, m.NumVertices)
}

// Field describes one attribute of a vertex structure.
type Field struct {
	Name   string
	Count  uint8
	Type   attrib.Type
	Offset uint32
}

// VertexFormat is implemented by vertex structures that can be uploaded
// with front.CreateMesh. Fields lists the attributes of one vertex; the
// stride is the size of the structure.
//
//	type Vertex struct {
//	    Pos   [2]float32
//	    Color [4]uint8
//	}
//
//	func (Vertex) Fields() []mesh.Field {
//	    return []mesh.Field{
//	        {Name: "pos", Count: 2, Type: attrib.F32, Offset: 0},
//	        {Name: "color", Count: 4, Type: attrib.U8Norm, Offset: 8},
//	    }
//	}
type VertexFormat interface {
	Fields() []Field
}

// FromFields builds a mesh whose attributes all read from buf.
func FromFields(buf device.BufferHandle, numVertices, stride uint32, fields []Field) *Mesh {
	m := New(numVertices)
	for _, f := range fields {
		m.AddAttribute(f.Name, buf, Format{
			Count:  f.Count,
			Type:   f.Type,
			Offset: f.Offset,
			Stride: stride,
		})
	}
	return m
}

// SliceKind tells whether a slice draws vertices directly or through an
// index buffer.
type SliceKind uint8

const (
	// SliceVertex draws a vertex range.
	SliceVertex SliceKind = iota
	// SliceIndex draws an index range.
	SliceIndex
)

// Slice is the part of a mesh a draw call covers.
type Slice struct {
	Kind  SliceKind
	Prim  gputypes.PrimitiveTopology
	Start uint32
	End   uint32
	// Index and IndexType are set for SliceIndex.
	Index     device.BufferHandle
	IndexType device.IndexType
}

// VertexSlice returns a slice drawing vertices [start, end).
func VertexSlice(prim gputypes.PrimitiveTopology, start, end uint32) Slice {
	return Slice{Kind: SliceVertex, Prim: prim, Start: start, End: end}
}

// IndexSlice returns a slice drawing indices [start, end) of buf.
// The element width t must match the buffer contents.
func IndexSlice(prim gputypes.PrimitiveTopology, buf device.BufferHandle, t device.IndexType, start, end uint32) Slice {
	return Slice{Kind: SliceIndex, Prim: prim, Start: start, End: end, Index: buf, IndexType: t}
}

// IndexSlice8 returns a slice over 8-bit indices.
func IndexSlice8(prim gputypes.PrimitiveTopology, buf device.BufferHandle, start, end uint32) Slice {
	return IndexSlice(prim, buf, device.IndexU8, start, end)
}

// IndexSlice16 returns a slice over 16-bit indices.
func IndexSlice16(prim gputypes.PrimitiveTopology, buf device.BufferHandle, start, end uint32) Slice {
	return IndexSlice(prim, buf, device.IndexU16, start, end)
}

// IndexSlice32 returns a slice over 32-bit indices.
func IndexSlice32(prim gputypes.PrimitiveTopology, buf device.BufferHandle, start, end uint32) Slice {
	return IndexSlice(prim, buf, device.IndexU32, start, end)
}

// Len returns the number of vertices or indices the slice covers.
func (s Slice) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// String describes the slice for logs.
func (s Slice) String() string {
	if s.Kind == SliceIndex {
		return fmt.Sprintf("%v indices[%d:%d] (%v)", s.Prim, s.Start, s.End, s.IndexType)
	}
	return fmt.Sprintf("%v vertices[%d:%d]", s.Prim, s.Start, s.End)
}
