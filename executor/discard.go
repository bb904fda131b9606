// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/scene"
)

// DepthStencilDiscardAllowed reports whether the depth and stencil content
// of the render target of the render pass at index pass of the sorted pass
// list can be discarded once the pass is done.
//
// For the display buffer the context decides, and only after the last pass
// of the frame rendering to it. For a render target the content must not be
// read again: the passes after pass are scanned, wrapping into the next
// frame and ending with pass itself, for the first one touching the target's
// depth buffer. A render pass into it allows the discard only if it clears
// both depth and stencil. A blit reading from it forbids the discard. A
// buffer nobody touches can be discarded. Targets without a depth buffer
// have nothing to discard.
func DepthStencilDiscardAllowed(sc *scene.Scene, pass int, ctx *RenderingContext) bool {
	passes := sc.Passes()
	if pass < 0 || pass >= len(passes) || passes[pass].Type != scene.PassTypeRender {
		panic(fmt.Sprintf("executor: pass %d is not a render pass", pass))
	}
	rp := sc.RenderPass(passes[pass].RenderPass)

	if rp.RendersToDisplay() {
		if ctx == nil || !ctx.DisplayBufferDepthDiscard {
			return false
		}
		for _, p := range passes[pass+1:] {
			if p.Type == scene.PassTypeRender && sc.RenderPass(p.RenderPass).RendersToDisplay() {
				return false
			}
		}
		return true
	}

	buf := sc.DepthStencilBuffer(rp.RenderTarget)
	if !buf.IsValid() {
		return false
	}
	n := len(passes)
	for i := 1; i <= n; i++ {
		p := passes[(pass+i)%n]
		switch p.Type {
		case scene.PassTypeRender:
			next := sc.RenderPass(p.RenderPass)
			if next.RendersToDisplay() || !sc.RenderTargetHasBuffer(next.RenderTarget, buf) {
				continue
			}
			allowed := next.ClearFlags.Has(device.ClearFlagDepth | device.ClearFlagStencil)
			if !allowed {
				sceneexec.Logger().Debug("executor: depth buffer read by later pass",
					slog.Int("pass", pass),
					slog.Int("reader", (pass+i)%n))
			}
			return allowed
		case scene.PassTypeBlit:
			if sc.BlitPass(p.BlitPass).Source == buf {
				sceneexec.Logger().Debug("executor: depth buffer used as blit source",
					slog.Int("pass", pass),
					slog.Int("blit", (pass+i)%n))
				return false
			}
		}
	}
	return true
}
