// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/gpucontext"
)

// Factory creates a new backend instance.
type Factory func() Backend

// Priority order for OpenBest: native GPU APIs first, then the pure Go
// software rasteriser, then the noop backend used in tests.
var priority = []string{
	BackendVulkan, BackendMetal, BackendDX12, BackendGLES,
	BackendSoftware, BackendNoop,
}

// backends holds registered factories.
var backends = gpucontext.NewRegistry[Backend](gpucontext.WithPriority(priority...))

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages:
//
//	func init() {
//	    backend.Register("noop", func() backend.Backend {
//	        return NewBackend("noop", noop.API{})
//	    })
//	}
//
// If a backend with the same name is already registered, it is replaced.
// Register panics if factory is nil.
func Register(name string, factory Factory) {
	if factory == nil {
		panic("backend: Register factory is nil")
	}
	backends.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	backends.Unregister(name)
}

// Available returns a sorted list of registered backend names.
func Available() []string {
	names := backends.Available()
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	return backends.Has(name)
}

// Count returns the number of registered backends.
func Count() int {
	return backends.Count()
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Backend {
	return backends.Get(name)
}

// BestName returns the name of the backend OpenBest tries first, or "" when
// nothing is registered.
func BestName() string {
	return backends.BestName()
}

// Open opens a device on the named backend.
//
// Returns an error wrapping ErrBackendNotAvailable if the backend is not
// registered. The error message includes a hint about forgotten imports.
func Open(name string) (Device, error) {
	b := Get(name)
	if b == nil {
		return nil, fmt.Errorf("%w: unknown backend %q (forgotten import?)", ErrBackendNotAvailable, name)
	}
	dev, err := b.Open()
	if err != nil {
		return nil, fmt.Errorf("backend: open %q: %w", name, err)
	}
	Logger().Info("backend: device opened", "backend", name)
	return dev, nil
}

// OpenBest opens a device on the highest-priority registered backend.
// A backend that fails to open is skipped in favour of the next one;
// backends outside the priority list are tried last, by name.
func OpenBest() (Device, error) {
	names := make([]string, 0, Count())
	for _, name := range priority {
		if IsRegistered(name) {
			names = append(names, name)
		}
	}
	for _, name := range Available() {
		if !slices.Contains(priority, name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, ErrBackendNotAvailable
	}

	var errs []error
	for _, name := range names {
		dev, err := Open(name)
		if err == nil {
			return dev, nil
		}
		Logger().Debug("backend: skipping backend", "backend", name, "err", err)
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
}
