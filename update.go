// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"fmt"
	"math"

	"github.com/gogpu/front/device"
)

// UpdateBuffer records a write of data into buf at byte offset.
// The payload is copied. It panics if the write does not fit in the buffer.
func (r *Renderer) UpdateBuffer(buf device.BufferHandle, data device.Blob, offset int) {
	if size := buf.Info().Size; offset < 0 || offset > size || data.Len() > size-offset {
		panic(fmt.Sprintf("front: buffer update of %d bytes at offset %d exceeds buffer %d of %d bytes",
			data.Len(), offset, buf.Name(), size))
	}
	r.buf.UpdateBuffer(buf.Name(), data.Clone(), offset)
}

// UpdateBufferSlice records a write of data into buf starting at element
// offset, where elements are the size of T.
func UpdateBufferSlice[T any](r *Renderer, buf device.BufferHandle, data []T, offset int) {
	b := device.BlobOf(data)
	if offset < 0 || (b.Stride > 0 && offset > math.MaxInt/b.Stride) {
		panic(fmt.Sprintf("front: buffer update at element %d of %d bytes is out of range", offset, b.Stride))
	}
	r.UpdateBuffer(buf, b, offset*b.Stride)
}

// UpdateBufferValue records a write of v to the start of buf.
//
//	type locals struct{ Transform [16]float32 }
//	front.UpdateBufferValue(r, ubo, locals{Transform: m})
func UpdateBufferValue[T any](r *Renderer, buf device.BufferHandle, v T) {
	r.UpdateBuffer(buf, device.BlobOfValue(&v), 0)
}

// UpdateTexture records a write of data into the img region of tex.
// It panics if the region lies outside the texture or data is larger than
// the region. The payload size can only be checked for formats with a known
// texel size (see device.TexelSize); for other formats, such as compressed
// ones, only the region is checked and the skip is logged at Debug.
func (r *Renderer) UpdateTexture(tex device.TextureHandle, img device.ImageInfo, data device.Blob) {
	info := tex.Info()
	if !info.Contains(img) {
		panic(fmt.Sprintf("front: image region %+v outside texture %d", img, tex.Name()))
	}
	switch size := img.ByteSize(); {
	case size == 0:
		Logger().Debug("front: texture payload size unchecked",
			"texture", tex.Name(), "format", img.Format, "bytes", data.Len())
	case data.Len() > size:
		panic(fmt.Sprintf("front: texture update of %d bytes exceeds region of %d bytes", data.Len(), size))
	}
	r.buf.UpdateTexture(info.Kind, tex.Name(), img, data.Clone())
}

// UpdateTextureSlice records a write of data into the img region of tex.
func UpdateTextureSlice[T any](r *Renderer, tex device.TextureHandle, img device.ImageInfo, data []T) {
	r.UpdateTexture(tex, img, device.BlobOf(data))
}
