// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/front/device"
	"github.com/gogpu/gputypes"
)

// ErrImageFormat is returned by UploadImage for textures that are not
// 8-bit RGBA or BGRA.
var ErrImageFormat = errors.New("front: texture format cannot receive images")

// UploadImage records a write of img into mip level level (first layer) of
// tex. The image is converted to the texture's byte order and scaled to the
// level's extent when the sizes differ.
func UploadImage(r *Renderer, tex device.TextureHandle, level uint8, img image.Image) error {
	info := tex.Info()
	var swap bool
	switch info.Format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		swap = true
	default:
		return ErrImageFormat
	}

	region := info.ImageInfo(level)
	region.Depth = 1
	dst := image.NewRGBA(image.Rect(0, 0, int(region.Width), int(region.Height)))

	src := img.Bounds()
	if src.Dx() == dst.Rect.Dx() && src.Dy() == dst.Rect.Dy() {
		draw.Draw(dst, dst.Rect, img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Rect, img, src, draw.Src, nil)
	}

	if swap {
		for i := 0; i+3 < len(dst.Pix); i += 4 {
			dst.Pix[i], dst.Pix[i+2] = dst.Pix[i+2], dst.Pix[i]
		}
	}

	r.UpdateTexture(tex, region, device.Bytes(dst.Pix))
	return nil
}
