// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/gogpu/front/backend"
	"github.com/gogpu/front/device"
	"github.com/gogpu/front/internal/cache"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/wgpu/hal"
)

type buffer struct {
	raw  hal.Buffer
	size uint64
	info device.BufferInfo
}

type texture struct {
	raw  hal.Texture
	info device.TextureInfo
}

type shader struct {
	raw    hal.ShaderModule
	module *ir.Module
	stage  device.ShaderStage
	label  string
}

// moduleKey identifies compiled WGSL by stage and source digest.
type moduleKey struct {
	stage device.ShaderStage
	sum   [sha256.Size]byte
}

// moduleCacheSize bounds the number of lowered shader modules kept for
// reuse by CreateShader.
const moduleCacheSize = 64

type program struct {
	shaders []device.Name
	info    *device.ProgramInfo
}

// Device is a front-end resource device backed by a HAL device.
//
// Every resource gets a name from a single counter starting at 1. Name 0
// is the main frame buffer. Device is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  gputypes.AdapterInfo
	closed   bool
	next     device.Name

	buffers      map[device.Name]*buffer
	textures     map[device.Name]*texture
	surfaces     map[device.Name]hal.Texture
	samplers     map[device.Name]hal.Sampler
	shaders      map[device.Name]*shader
	programs     map[device.Name]*program
	frameBuffers map[device.Name]struct{}

	modules *cache.Cache[moduleKey, *ir.Module]
}

var _ backend.Device = (*Device)(nil)

// New opens a device on the preferred adapter of api. Discrete and
// integrated GPUs are preferred over other adapter types.
func New(api hal.Backend) (*Device, error) {
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters found", backend.ErrBackendNotAvailable)
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	d := newDevice(openDev.Device, openDev.Queue)
	d.instance = instance
	d.adapter = selected.Info
	backend.Logger().Info("wgpu: device opened",
		"adapter", selected.Info.Name,
		"type", selected.Info.DeviceType,
		"api", api.Variant())
	return d, nil
}

// Wrap returns a device on an already opened HAL device. The caller keeps
// ownership of dev; Close releases only the resources created through the
// returned Device.
func Wrap(dev hal.Device, queue hal.Queue) *Device {
	return newDevice(dev, queue)
}

func newDevice(dev hal.Device, queue hal.Queue) *Device {
	return &Device{
		device:       dev,
		queue:        queue,
		next:         1,
		buffers:      make(map[device.Name]*buffer),
		textures:     make(map[device.Name]*texture),
		surfaces:     make(map[device.Name]hal.Texture),
		samplers:     make(map[device.Name]hal.Sampler),
		shaders:      make(map[device.Name]*shader),
		programs:     make(map[device.Name]*program),
		frameBuffers: make(map[device.Name]struct{}),
		modules:      cache.New[moduleKey, *ir.Module](moduleCacheSize),
	}
}

// AdapterInfo describes the adapter the device was opened on.
// It is zero for wrapped devices.
func (d *Device) AdapterInfo() gputypes.AdapterInfo {
	return d.adapter
}

// alloc returns the next resource name. d.mu must be held.
func (d *Device) alloc() device.Name {
	n := d.next
	d.next++
	return n
}

// CreateArrayBuffer reports device.ErrNotSupported: vertex layout is part
// of a WebGPU pipeline, not a separate object.
func (d *Device) CreateArrayBuffer() (device.ArrayBufferHandle, error) {
	return device.ArrayBufferHandle{}, device.ErrNotSupported
}

// CreateFrameBuffer reserves a frame buffer name. Attachments are bound
// by the command sequence, so there is no HAL object behind it.
func (d *Device) CreateFrameBuffer() (device.FrameBufferHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.FrameBufferHandle{}, backend.ErrClosed
	}
	n := d.alloc()
	d.frameBuffers[n] = struct{}{}
	return device.NewFrameBufferHandle(n), nil
}

// MainFrameBuffer returns the default frame buffer, name 0.
func (d *Device) MainFrameBuffer() device.FrameBufferHandle {
	return device.NewFrameBufferHandle(0)
}

// CreateBuffer creates an uninitialised buffer.
func (d *Device) CreateBuffer(info device.BufferInfo) (device.BufferHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.createBuffer(info, nil)
}

// CreateBufferStatic creates a buffer for role and writes data into it.
func (d *Device) CreateBufferStatic(role device.BufferRole, data device.Blob) (device.BufferHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info := device.BufferInfo{Usage: device.UsageStatic, Role: role, Size: data.Len()}
	return d.createBuffer(info, data.Data)
}

// createBuffer allocates a HAL buffer and fills it with data.
// d.mu must be held.
func (d *Device) createBuffer(info device.BufferInfo, data []byte) (device.BufferHandle, error) {
	if d.closed {
		return device.BufferHandle{}, backend.ErrClosed
	}
	if info.Size < 0 {
		return device.BufferHandle{}, fmt.Errorf("wgpu: negative buffer size %d", info.Size)
	}
	// WebGPU buffer sizes and writes are multiples of four bytes.
	size := alignUp(uint64(max(info.Size, 1)), 4)
	raw, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("front-buffer-%d", d.next),
		Size:  size,
		Usage: info.Role.GPUUsage(),
	})
	if err != nil {
		return device.BufferHandle{}, fmt.Errorf("wgpu: create buffer: %w", err)
	}
	if len(data) > 0 {
		padded := make([]byte, alignUp(uint64(len(data)), 4))
		copy(padded, data)
		if err := d.queue.WriteBuffer(raw, 0, padded); err != nil {
			d.device.DestroyBuffer(raw)
			return device.BufferHandle{}, fmt.Errorf("wgpu: write buffer: %w", err)
		}
	}
	n := d.alloc()
	d.buffers[n] = &buffer{raw: raw, size: size, info: info}
	return device.NewBufferHandle(n, info), nil
}

// CreateTexture creates an uninitialised texture that can be sampled,
// rendered to and written by uploads.
func (d *Device) CreateTexture(info device.TextureInfo) (device.TextureHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.TextureHandle{}, backend.ErrClosed
	}
	info.Levels = max(info.Levels, 1)
	info.Depth = max(info.Depth, 1)

	layers := uint32(info.Depth)
	if info.Kind == device.TextureCube && layers < 6 {
		layers = 6
	}
	samples := uint32(1)
	if info.Kind == device.Texture2DMultiSample {
		samples = 4
	}
	raw, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: fmt.Sprintf("front-texture-%d", d.next),
		Size: hal.Extent3D{
			Width:              uint32(info.Width),
			Height:             uint32(info.Height),
			DepthOrArrayLayers: layers,
		},
		MipLevelCount: uint32(info.Levels),
		SampleCount:   samples,
		Dimension:     info.Kind.Dimension(),
		Format:        info.Format,
		Usage: gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst |
			gputypes.TextureUsageCopySrc | gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return device.TextureHandle{}, fmt.Errorf("wgpu: create texture: %w", err)
	}
	n := d.alloc()
	d.textures[n] = &texture{raw: raw, info: info}
	return device.NewTextureHandle(n, info), nil
}

// CreateSurface creates a render-only texture.
func (d *Device) CreateSurface(info device.SurfaceInfo) (device.SurfaceHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.SurfaceHandle{}, backend.ErrClosed
	}
	raw, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: fmt.Sprintf("front-surface-%d", d.next),
		Size: hal.Extent3D{
			Width:              uint32(info.Width),
			Height:             uint32(info.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(max(info.Samples, 1)),
		Dimension:     gputypes.TextureDimension2D,
		Format:        info.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return device.SurfaceHandle{}, fmt.Errorf("wgpu: create surface: %w", err)
	}
	n := d.alloc()
	d.surfaces[n] = raw
	return device.NewSurfaceHandle(n, info), nil
}

// CreateSampler creates a sampler object.
func (d *Device) CreateSampler(desc gputypes.SamplerDescriptor) (device.SamplerHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.SamplerHandle{}, backend.ErrClosed
	}
	raw, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        desc.Label,
		AddressModeU: desc.AddressModeU,
		AddressModeV: desc.AddressModeV,
		AddressModeW: desc.AddressModeW,
		MagFilter:    desc.MagFilter,
		MinFilter:    desc.MinFilter,
		// The two filter enums share their values.
		MipmapFilter: gputypes.FilterMode(desc.MipmapFilter),
		LodMinClamp:  desc.LodMinClamp,
		LodMaxClamp:  desc.LodMaxClamp,
		Compare:      desc.Compare,
		Anisotropy:   max(desc.MaxAnisotropy, 1),
	})
	if err != nil {
		return device.SamplerHandle{}, fmt.Errorf("wgpu: create sampler: %w", err)
	}
	n := d.alloc()
	d.samplers[n] = raw
	return device.NewSamplerHandle(n, desc), nil
}

// Close destroys every resource created through the device, then the HAL
// device and instance if the device opened them. Close is idempotent.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true

	released := len(d.buffers) + len(d.textures) + len(d.surfaces) + len(d.samplers) + len(d.shaders)
	for n, b := range d.buffers {
		d.device.DestroyBuffer(b.raw)
		delete(d.buffers, n)
	}
	for n, t := range d.textures {
		d.device.DestroyTexture(t.raw)
		delete(d.textures, n)
	}
	for n, t := range d.surfaces {
		d.device.DestroyTexture(t)
		delete(d.surfaces, n)
	}
	for n, s := range d.samplers {
		d.device.DestroySampler(s)
		delete(d.samplers, n)
	}
	for n, s := range d.shaders {
		d.device.DestroyShaderModule(s.raw)
		delete(d.shaders, n)
	}
	clear(d.programs)
	clear(d.frameBuffers)
	modules := d.modules.Stats()
	d.modules.Clear()

	if d.instance != nil {
		d.device.Destroy()
		d.instance.Destroy()
		d.instance = nil
	}
	backend.Logger().Debug("wgpu: device closed", "released", released,
		"moduleHits", modules.Hits, "moduleMisses", modules.Misses)
}

func alignUp(n, align uint64) uint64 {
	return (n + align - 1) &^ (align - 1)
}
