// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/executor"
	"github.com/gogpu/sceneexec/frametimer"
)

// Option configures a Controller during creation.
//
// Example:
//
//	// Offscreen display that renders at most 8ms per frame
//	timer := frametimer.New(frametimer.WithBudget(frametimer.SectionOffscreenBufferRender, 8*time.Millisecond))
//	c := display.New(dev, display.WithFrameTimer(timer), display.WithInterruptible(true))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	executor          executor.Config
	timer             *frametimer.Timer
	interruptible     bool
	clearFlags        device.ClearFlags
	clearColor        mgl32.Vec4
	depthDiscard      bool
	width, height     uint32
	clock             func() time.Time
	uniformCacheLimit int
	logCalls          bool
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		executor:          executor.DefaultConfig(),
		clearFlags:        device.ClearFlagsAll,
		clearColor:        mgl32.Vec4{0, 0, 0, 1},
		uniformCacheLimit: executor.DefaultUniformCacheLimit,
	}
}

// WithExecutorConfig sets the executor configuration.
func WithExecutorConfig(cfg executor.Config) Option {
	return func(o *options) {
		o.executor = cfg
	}
}

// WithFrameTimer sets the frame timer started by BeginFrame. Without one the
// controller creates a timer with unlimited budgets.
func WithFrameTimer(t *frametimer.Timer) Option {
	return func(o *options) {
		o.timer = t
	}
}

// WithInterruptible makes scene rendering stop when the offscreen render
// budget of the frame timer is used up. Interrupted scenes continue on the
// next RenderScene call.
func WithInterruptible(on bool) Option {
	return func(o *options) {
		o.interruptible = on
	}
}

// WithClear sets the clear applied to the display buffer once per frame.
// Default is ClearFlagsAll with opaque black.
func WithClear(flags device.ClearFlags, color mgl32.Vec4) Option {
	return func(o *options) {
		o.clearFlags = flags
		o.clearColor = color
	}
}

// WithDepthDiscard allows discarding the display buffer's depth and stencil
// after its last pass in a frame.
func WithDepthDiscard(on bool) Option {
	return func(o *options) {
		o.depthDiscard = on
	}
}

// WithViewport sets the display buffer size.
func WithViewport(width, height uint32) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithClock replaces the wall clock used for time based shader inputs.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithUniformCacheLimit sets the soft limit of resolved semantic uniforms.
func WithUniformCacheLimit(n int) Option {
	return func(o *options) {
		o.uniformCacheLimit = n
	}
}

// WithCallLogging wraps the device in a device.LoggingDevice.
func WithCallLogging(on bool) Option {
	return func(o *options) {
		o.logCalls = on
	}
}
