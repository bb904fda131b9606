// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package executor turns a resolved scene into an ordered stream of device
// calls.
//
// An Executor holds configuration only. All mutable execution data lives in
// a State, which belongs to one display: its device, its rendering context
// and the memoized pipeline state that lets the executor skip redundant
// device calls.
//
// Execution can be interrupted when a time budget is exhausted. ExecuteScene
// then returns an Iterator; passing it to the next call continues the frame
// where it stopped. The zero Iterator starts a frame and is returned when the
// frame is complete.
//
//	st := executor.NewState(dev, &executor.RenderingContext{
//		DisplayBufferDeviceHandle: dev.FramebufferRenderTarget(),
//		DisplayBufferClearPending: device.ClearFlagsAll,
//	}, timer)
//	ex := executor.New(executor.DefaultConfig())
//	it := ex.ExecuteScene(st, sc, executor.Iterator{})
//	for !it.IsZero() {
//		// next frame slot
//		it = ex.ExecuteScene(st, sc, it)
//	}
package executor
