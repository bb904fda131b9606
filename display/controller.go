// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display drives scene execution for one display.
//
// A Controller owns the execution state, the rendering context and the frame
// timer of a display. Every frame starts with BeginFrame, which restarts the
// timer and schedules the display buffer clear. RenderScene then executes
// scenes; an interrupted scene keeps its iterator and continues where it
// stopped on the next call.
package display

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/executor"
	"github.com/gogpu/sceneexec/frametimer"
	"github.com/gogpu/sceneexec/scene"
)

// Stats counts controller activity since creation.
type Stats struct {
	// Frames is the number of BeginFrame calls.
	Frames uint64
	// SceneExecutions is the number of RenderScene calls.
	SceneExecutions uint64
	// ScenesCompleted counts executions that finished a scene's frame.
	ScenesCompleted uint64
	// Interruptions counts executions stopped by the time budget.
	Interruptions uint64
	// Invalidations counts state invalidations caused by resuming a scene
	// after another scene used the device.
	Invalidations uint64
}

// Controller renders scenes into one display.
//
// Controller is not safe for concurrent use.
type Controller struct {
	dev   device.Device
	ctx   *executor.RenderingContext
	state *executor.State
	exec  *executor.Executor
	timer *frametimer.Timer

	clearFlags device.ClearFlags

	last      *scene.Scene
	iterators map[scene.ID]executor.Iterator
	animated  map[scene.ID]bool
	stats     Stats
}

// New creates a controller rendering with dev.
func New(dev device.Device, opts ...Option) *Controller {
	if dev == nil {
		panic("display: nil device")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logCalls {
		dev = device.NewLoggingDevice(dev, nil)
	}
	if o.timer == nil {
		o.timer = frametimer.New()
	}

	ctx := &executor.RenderingContext{
		DisplayBufferDeviceHandle: dev.FramebufferRenderTarget(),
		ViewportWidth:             o.width,
		ViewportHeight:            o.height,
		DisplayBufferClearColor:   o.clearColor,
		DisplayBufferDepthDiscard: o.depthDiscard,
	}

	var budget executor.TimeBudget
	if o.interruptible {
		budget = o.timer
	}
	stateOpts := []executor.StateOption{executor.WithUniformCacheLimit(o.uniformCacheLimit)}
	if o.clock != nil {
		stateOpts = append(stateOpts, executor.WithClock(o.clock))
	}

	c := &Controller{
		dev:        dev,
		ctx:        ctx,
		state:      executor.NewState(dev, ctx, budget, stateOpts...),
		exec:       executor.New(o.executor),
		timer:      o.timer,
		clearFlags: o.clearFlags,
		iterators:  make(map[scene.ID]executor.Iterator),
		animated:   make(map[scene.ID]bool),
	}
	sceneexec.Logger().Info("display: controller created",
		slog.Uint64("width", uint64(o.width)),
		slog.Uint64("height", uint64(o.height)),
		slog.Bool("interruptible", o.interruptible))
	return c
}

// Open creates a controller on the registered device name.
func Open(name string, host device.Host, opts ...Option) (*Controller, error) {
	dev, err := device.Open(name, host)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	sceneexec.Logger().Info("display: device opened", slog.String("device", name))
	return New(dev, opts...), nil
}

// Device returns the device the controller renders with.
func (c *Controller) Device() device.Device {
	return c.dev
}

// Context returns the rendering context of the display.
func (c *Controller) Context() *executor.RenderingContext {
	return c.ctx
}

// Timer returns the frame timer.
func (c *Controller) Timer() *frametimer.Timer {
	return c.timer
}

// BeginFrame starts a new frame: it restarts the frame timer and schedules
// the display buffer clear for the first pass rendering to it.
func (c *Controller) BeginFrame() {
	c.timer.StartFrame()
	c.ctx.DisplayBufferClearPending = c.clearFlags
	c.stats.Frames++
}

// Resize changes the display buffer size.
func (c *Controller) Resize(width, height uint32) {
	c.ctx.ViewportWidth = width
	c.ctx.ViewportHeight = height
}

// RenderScene executes sc from where its last execution stopped. It reports
// whether the scene finished its frame; false means the time budget ran out
// and the next call continues.
func (c *Controller) RenderScene(sc *scene.Scene) bool {
	id := sc.ID()
	from := c.iterators[id]
	if from.IsZero() {
		c.animated[id] = false
	} else if c.last != sc {
		// Another scene changed the device state since this one stopped.
		c.state.InvalidateAll()
		c.stats.Invalidations++
		sceneexec.Logger().Debug("display: resuming scene after switch",
			slog.String("scene", id.String()),
			slog.String("resume", from.String()))
	}

	it := c.exec.ExecuteScene(c.state, sc, from)
	c.last = sc
	c.stats.SceneExecutions++
	c.animated[id] = c.animated[id] || c.state.HasActiveShaderAnimation()

	if it.IsZero() {
		delete(c.iterators, id)
		c.stats.ScenesCompleted++
		return true
	}
	c.iterators[id] = it
	c.stats.Interruptions++
	return false
}

// Iterator returns where the next execution of the scene id starts.
func (c *Controller) Iterator(id scene.ID) executor.Iterator {
	return c.iterators[id]
}

// ResetScene drops the resumption point of scene id so its next execution
// starts a new frame. Use it when the scene changed while interrupted.
func (c *Controller) ResetScene(id scene.ID) {
	delete(c.iterators, id)
}

// HasActiveShaderAnimation reports whether the last frame of scene id used a
// time based shader input, in which case the scene must be rendered again
// even if it did not change.
func (c *Controller) HasActiveShaderAnimation(id scene.ID) bool {
	return c.animated[id]
}

// Stats returns controller statistics.
func (c *Controller) Stats() Stats {
	return c.stats
}
