// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/front/command"
	"github.com/gogpu/front/device"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered
	// or has no usable adapter.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrClosed is returned by devices used after Close.
	ErrClosed = errors.New("backend: device closed")
)

// Backend name constants, in the order OpenBest prefers them.
const (
	BackendVulkan   = "vulkan"
	BackendMetal    = "metal"
	BackendDX12     = "dx12"
	BackendGLES     = "gles"
	BackendSoftware = "software"
	BackendNoop     = "noop"
)

// Backend opens devices on one graphics API.
//
// Backends must be registered via Register() and are selected via
// Open() or OpenBest().
type Backend interface {
	// Name returns the backend identifier (e.g. "software", "noop").
	Name() string

	// Open creates a device on the first usable adapter.
	// Returns an error wrapping ErrBackendNotAvailable when no adapter exists.
	Open() (Device, error)
}

// Device is a resource device that also applies recorded resource updates.
//
// The front-end records update commands next to draw commands; a Device
// only consumes the former. Everything else in the sequence is meant for
// a command executor and is ignored by Upload.
type Device interface {
	device.ResourceDevice

	// Upload applies every update-buffer and update-texture command in
	// cmds, in order. It stops at the first failure.
	Upload(cmds []command.Command) error

	// Close releases all resources created through the device.
	// The device must not be used after Close.
	Close()
}
