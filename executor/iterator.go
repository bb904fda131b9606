// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import "fmt"

// Iterator is a position inside the execution of a scene.
//
// As input to ExecuteScene the zero Iterator starts a new frame. As output
// the zero Iterator means the frame is complete; any other value is where
// the next call continues.
type Iterator struct {
	// RenderPass is the index into the sorted pass list of the scene.
	RenderPass uint32
	// Renderable is the index into the renderables of that pass.
	Renderable uint32
	// Flattened counts renderables visited in this frame across all passes.
	Flattened uint32
}

// IsZero reports whether it is the zero Iterator.
func (it Iterator) IsZero() bool {
	return it == Iterator{}
}

// String returns the iterator in "pass/renderable (flattened)" form.
func (it Iterator) String() string {
	return fmt.Sprintf("%d/%d (%d)", it.RenderPass, it.Renderable, it.Flattened)
}
