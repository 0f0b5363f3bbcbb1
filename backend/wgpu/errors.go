// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Sentinel errors for the wgpu device.
var (
	// ErrUnknownResource is returned when a name does not refer to a live
	// resource of the expected kind.
	ErrUnknownResource = errors.New("wgpu: unknown resource")

	// ErrOutOfRange is returned by Upload when a write does not fit its
	// destination.
	ErrOutOfRange = errors.New("wgpu: write out of range")

	// ErrNoEntryPoint is returned when a shader has no entry point for the
	// stage it was compiled for.
	ErrNoEntryPoint = errors.New("wgpu: no entry point for stage")

	// ErrBindingConflict is returned when two shaders of a program declare
	// different variables at the same @group/@binding.
	ErrBindingConflict = errors.New("wgpu: binding conflict")
)
