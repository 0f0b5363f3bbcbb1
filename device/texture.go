// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "github.com/gogpu/gputypes"

// TextureKind is the shape of a texture.
type TextureKind uint8

const (
	Texture1D TextureKind = iota
	Texture1DArray
	Texture2D
	Texture2DArray
	Texture2DMultiSample
	TextureCube
	Texture3D
)

// String returns the kind name.
func (k TextureKind) String() string {
	switch k {
	case Texture1D:
		return "1D"
	case Texture1DArray:
		return "1DArray"
	case Texture2D:
		return "2D"
	case Texture2DArray:
		return "2DArray"
	case Texture2DMultiSample:
		return "2DMultiSample"
	case TextureCube:
		return "Cube"
	case Texture3D:
		return "3D"
	default:
		return "Unknown"
	}
}

// Dimension maps the kind to a WebGPU texture dimension.
// Array and cube kinds are 2D textures with several layers.
func (k TextureKind) Dimension() gputypes.TextureDimension {
	switch k {
	case Texture1D, Texture1DArray:
		return gputypes.TextureDimension1D
	case Texture3D:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

// TextureInfo describes a texture.
type TextureInfo struct {
	Kind   TextureKind
	Width  uint16
	Height uint16
	// Depth is the depth of a 3D texture or the layer count of an array.
	Depth uint16
	// Levels is the number of mip levels, at least 1.
	Levels uint8
	Format gputypes.TextureFormat
}

// NewTextureInfo returns a single-level 2D texture description.
func NewTextureInfo(width, height uint16, format gputypes.TextureFormat) TextureInfo {
	return TextureInfo{
		Kind:   Texture2D,
		Width:  width,
		Height: height,
		Depth:  1,
		Levels: 1,
		Format: format,
	}
}

// LevelExtent returns the size of the given mip level.
func (t TextureInfo) LevelExtent(level uint8) (w, h, d uint16) {
	w, h, d = max(t.Width>>level, 1), max(t.Height>>level, 1), max(t.Depth, 1)
	if t.Kind == Texture3D {
		d = max(t.Depth>>level, 1)
	}
	return w, h, d
}

// ImageInfo returns the region covering the whole of the given level.
func (t TextureInfo) ImageInfo(level uint8) ImageInfo {
	w, h, d := t.LevelExtent(level)
	return ImageInfo{
		Width:    w,
		Height:   h,
		Depth:    d,
		Format:   t.Format,
		MipLevel: level,
	}
}

// Contains reports whether the image region fits inside the texture:
// the level exists, the formats agree and the region lies within the
// level's extent.
func (t TextureInfo) Contains(img ImageInfo) bool {
	if img.MipLevel >= max(t.Levels, 1) || img.Format != t.Format {
		return false
	}
	w, h, d := t.LevelExtent(img.MipLevel)
	return int(img.XOffset)+int(img.Width) <= int(w) &&
		int(img.YOffset)+int(img.Height) <= int(h) &&
		int(img.ZOffset)+int(max(img.Depth, 1)) <= int(d)
}

// ImageInfo is a region of one mip level of a texture.
type ImageInfo struct {
	XOffset  uint16
	YOffset  uint16
	ZOffset  uint16
	Width    uint16
	Height   uint16
	Depth    uint16
	Format   gputypes.TextureFormat
	MipLevel uint8
}

// ByteSize returns the number of bytes a tightly packed copy of the region
// occupies, or 0 if the format has no known texel size.
func (img ImageInfo) ByteSize() int {
	return int(img.Width) * int(img.Height) * int(max(img.Depth, 1)) * TexelSize(img.Format)
}

// TexelSize returns the size in bytes of one texel of an uncompressed
// format, or 0 for formats the front-end does not upload.
func TexelSize(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint,
		gputypes.TextureFormatStencil8:
		return 1
	case gputypes.TextureFormatR16Unorm, gputypes.TextureFormatR16Snorm,
		gputypes.TextureFormatR16Uint, gputypes.TextureFormatR16Sint,
		gputypes.TextureFormatR16Float, gputypes.TextureFormatRG8Unorm,
		gputypes.TextureFormatRG8Snorm, gputypes.TextureFormatRG8Uint,
		gputypes.TextureFormatRG8Sint, gputypes.TextureFormatDepth16Unorm:
		return 2
	case gputypes.TextureFormatR32Float, gputypes.TextureFormatR32Uint,
		gputypes.TextureFormatR32Sint, gputypes.TextureFormatRG16Float,
		gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatRGBA8Snorm, gputypes.TextureFormatRGBA8Uint,
		gputypes.TextureFormatRGBA8Sint, gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8, gputypes.TextureFormatDepth32Float:
		return 4
	case gputypes.TextureFormatRG32Float, gputypes.TextureFormatRGBA16Float:
		return 8
	case gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 0
	}
}
