// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

// ResourceHandle identifies a resource uploaded to the device: a shader,
// vertex array, texture, render buffer or render target.
type ResourceHandle uint32

// DataFieldHandle identifies a shader input field within a data layout.
type DataFieldHandle uint32

// InvalidHandle is the sentinel value shared by all handle types.
const InvalidHandle = ^uint32(0)

// InvalidResource is a resource handle that refers to nothing.
const InvalidResource = ResourceHandle(InvalidHandle)

// IsValid returns true if the handle refers to a device resource.
func (h ResourceHandle) IsValid() bool {
	return uint32(h) != InvalidHandle
}

// IsValid returns true if the handle refers to a data field.
func (h DataFieldHandle) IsValid() bool {
	return uint32(h) != InvalidHandle
}

// Rect is a pixel rectangle used for scissor regions and blit areas.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}
