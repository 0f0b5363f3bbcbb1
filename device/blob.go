// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "unsafe"

// Blob is a type-erased view of buffer or texture contents.
//
// Data holds Count elements of Stride bytes each. The view aliases the
// memory it was made from; callers that keep recording after mutating
// their slice should pass a copy.
type Blob struct {
	Data   []byte
	Stride int
	Count  int
}

// BlobOf returns a byte view of a slice of plain values.
// T must not contain pointers.
func BlobOf[T any](data []T) Blob {
	var zero T
	stride := int(unsafe.Sizeof(zero))
	if len(data) == 0 {
		return Blob{Stride: stride}
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*stride)
	return Blob{Data: raw, Stride: stride, Count: len(data)}
}

// BlobOfValue returns a byte view of a single plain value.
func BlobOfValue[T any](v *T) Blob {
	return BlobOf(unsafe.Slice(v, 1))
}

// Bytes wraps raw bytes as a blob of single-byte elements.
func Bytes(data []byte) Blob {
	return Blob{Data: data, Stride: 1, Count: len(data)}
}

// Len returns the payload size in bytes.
func (b Blob) Len() int {
	return len(b.Data)
}

// Clone returns a blob that owns a copy of the data.
func (b Blob) Clone() Blob {
	if b.Data != nil {
		b.Data = append([]byte(nil), b.Data...)
	}
	return b
}
