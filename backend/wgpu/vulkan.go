// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu && !android && !js

package wgpu

// Links the Vulkan HAL so init can register it.
import _ "github.com/gogpu/wgpu/hal/vulkan"
