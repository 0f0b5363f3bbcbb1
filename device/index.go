// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "github.com/gogpu/gputypes"

// IndexType is the element width of an index buffer.
type IndexType uint8

const (
	IndexU8 IndexType = iota
	IndexU16
	IndexU32
)

// String returns "u8", "u16" or "u32".
func (t IndexType) String() string {
	switch t {
	case IndexU8:
		return "u8"
	case IndexU16:
		return "u16"
	case IndexU32:
		return "u32"
	default:
		return "unknown"
	}
}

// Size returns the element size in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	default:
		return 0
	}
}

// IndexFormat maps the width to a WebGPU index format. WebGPU has no 8-bit
// indices, so IndexU8 reports false.
func (t IndexType) IndexFormat() (gputypes.IndexFormat, bool) {
	switch t {
	case IndexU16:
		return gputypes.IndexFormatUint16, true
	case IndexU32:
		return gputypes.IndexFormatUint32, true
	default:
		return gputypes.IndexFormatUndefined, false
	}
}
