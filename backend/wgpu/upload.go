// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/front/backend"
	"github.com/gogpu/front/command"
	"github.com/gogpu/front/device"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Upload writes the payloads of update-buffer and update-texture commands
// through the HAL queue, in order. Every other command is skipped.
func (d *Device) Upload(cmds []command.Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return backend.ErrClosed
	}

	written := 0
	for i, cmd := range cmds {
		var err error
		switch c := cmd.(type) {
		case command.UpdateBufferCommand:
			err = d.writeBuffer(c)
		case command.UpdateTextureCommand:
			err = d.writeTexture(c)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("wgpu: upload command %d (%v): %w", i, cmd.Type(), err)
		}
		written++
	}
	if written > 0 {
		backend.Logger().Debug("wgpu: uploaded", "writes", written, "commands", len(cmds))
	}
	return nil
}

func (d *Device) writeBuffer(c command.UpdateBufferCommand) error {
	b, ok := d.buffers[c.Buffer]
	if !ok {
		return fmt.Errorf("%w: buffer %d", ErrUnknownResource, c.Buffer)
	}
	if c.Offset < 0 || c.Offset+c.Data.Len() > b.info.Size {
		return fmt.Errorf("%w: %d bytes at offset %d into buffer of %d",
			ErrOutOfRange, c.Data.Len(), c.Offset, b.info.Size)
	}
	if c.Data.Len() == 0 {
		return nil
	}
	return d.queue.WriteBuffer(b.raw, uint64(c.Offset), c.Data.Data)
}

func (d *Device) writeTexture(c command.UpdateTextureCommand) error {
	t, ok := d.textures[c.Texture]
	if !ok {
		return fmt.Errorf("%w: texture %d", ErrUnknownResource, c.Texture)
	}
	img := c.Image
	if !t.info.Contains(img) {
		return fmt.Errorf("%w: region %+v outside texture %d", ErrOutOfRange, img, c.Texture)
	}
	if need := img.ByteSize(); need > 0 && c.Data.Len() < need {
		return fmt.Errorf("%w: %d bytes for a %d byte region", ErrOutOfRange, c.Data.Len(), need)
	}
	texel := uint32(device.TexelSize(img.Format))
	return d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.raw,
			MipLevel: uint32(img.MipLevel),
			Origin: hal.Origin3D{
				X: uint32(img.XOffset),
				Y: uint32(img.YOffset),
				Z: uint32(img.ZOffset),
			},
			Aspect: gputypes.TextureAspectAll,
		},
		c.Data.Data,
		&hal.ImageDataLayout{
			BytesPerRow:  uint32(img.Width) * texel,
			RowsPerImage: uint32(img.Height),
		},
		&hal.Extent3D{
			Width:              uint32(img.Width),
			Height:             uint32(img.Height),
			DepthOrArrayLayers: uint32(max(img.Depth, 1)),
		},
	)
}
