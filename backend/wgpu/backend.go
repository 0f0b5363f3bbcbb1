// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/gogpu/front/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/gogpu/wgpu/hal/software"
)

// Backend opens devices through one HAL backend.
type Backend struct {
	name string
	api  hal.Backend
}

// NewBackend returns a backend called name that opens devices on api.
func NewBackend(name string, api hal.Backend) *Backend {
	return &Backend{name: name, api: api}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return b.name }

// Open opens a device on the preferred adapter.
func (b *Backend) Open() (backend.Device, error) {
	dev, err := New(b.api)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// halVariants maps registry names to the HAL backends registered by
// importing a HAL package.
var halVariants = map[string]gputypes.Backend{
	backend.BackendVulkan: gputypes.BackendVulkan,
	backend.BackendMetal:  gputypes.BackendMetal,
	backend.BackendDX12:   gputypes.BackendDX12,
	backend.BackendGLES:   gputypes.BackendGL,
}

// init registers the pure Go backends and every native HAL backend that
// is linked in.
func init() {
	backend.Register(backend.BackendSoftware, func() backend.Backend {
		return NewBackend(backend.BackendSoftware, software.API{})
	})
	backend.Register(backend.BackendNoop, func() backend.Backend {
		return NewBackend(backend.BackendNoop, noop.API{})
	})
	for name, variant := range halVariants {
		api, ok := hal.GetBackend(variant)
		if !ok {
			continue
		}
		backend.Register(name, func() backend.Backend {
			return NewBackend(name, api)
		})
	}
}
