// Package sceneexec executes resolved renderer scenes against an abstract
// rendering device.
//
// # Overview
//
// A scene arrives fully resolved: render passes are sorted, renderables are
// ordered and every resource (shader, vertex array, texture, render target)
// already has a device handle. The executor walks the scene and emits one
// deterministic stream of device calls. Redundant pipeline state changes are
// elided through cached state cells, offscreen rendering honors a per-frame
// time budget and depth/stencil buffers are discarded when nothing reads
// them before their next clear.
//
// # Architecture
//
// The module is organized into:
//   - device: the abstract device interface, its enums and decorators
//   - recording: a device that captures calls as typed commands
//   - scene: the read-only scene data model
//   - executor: execution state, traversal and the discard analyzer
//   - frametimer: per-frame section budgets
//   - display: per-display controller owning state and resumption iterators
//   - config: TOML configuration loading
//
// # Interruption
//
// Offscreen rendering can be interrupted when its time budget is exhausted.
// ExecuteScene then returns a non-zero iterator; passing it back on the next
// call resumes exactly where the previous call stopped.
//
//	it := exec.ExecuteScene(state, sc, executor.Iterator{})
//	for !it.IsZero() {
//	    it = exec.ExecuteScene(state, sc, it)
//	}
//
// # Logging
//
// By default nothing is logged. Call SetLogger to route diagnostics from all
// sub-packages to a slog.Logger.
package sceneexec
