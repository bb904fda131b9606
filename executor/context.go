// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/frametimer"
)

// RenderingContext is the per-display information scene execution reads and
// updates.
type RenderingContext struct {
	// DisplayBufferDeviceHandle is activated for passes without a render
	// target.
	DisplayBufferDeviceHandle device.ResourceHandle
	// ViewportWidth and ViewportHeight are the display buffer size.
	ViewportWidth, ViewportHeight uint32

	// DisplayBufferClearPending holds the clear still owed to the display
	// buffer in this frame. The first pass rendering to the display buffer
	// consumes it.
	DisplayBufferClearPending device.ClearFlags
	DisplayBufferClearColor   mgl32.Vec4

	// DisplayBufferDepthDiscard allows discarding the display buffer's
	// depth and stencil after its last pass in a frame.
	DisplayBufferDepthDiscard bool

	// RenderFrom is where Executor.Execute continues the current scene.
	RenderFrom Iterator
}

// TimeBudget reports whether the time budget of a renderer section is used
// up. *frametimer.Timer implements it.
type TimeBudget interface {
	IsTimeBudgetExceededForSection(s frametimer.Section) bool
}

var _ TimeBudget = (*frametimer.Timer)(nil)
