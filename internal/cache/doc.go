// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// GetOrCreate builds missing values under the cache lock, so a value is
// created at most once per key while it stays cached. Failed creations are
// not cached.
//
// Cache must not be copied after creation.
package cache
