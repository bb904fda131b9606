// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Device is the rendering device driven by scene execution.
//
// All methods are called from a single render loop. Implementations must not
// reorder calls; state set by one call stays in effect until it is changed
// by another call of the same kind.
type Device interface {
	// Render target and viewport.
	ActivateRenderTarget(rt ResourceHandle)
	SetViewport(x, y int32, width, height uint32)

	// Pipeline state.
	ScissorTest(state ScissorTest, region Rect)
	DepthFunc(fn DepthFunc)
	DepthWrite(state DepthWrite)
	StencilFunc(fn StencilFunc, ref, mask uint8)
	StencilOp(fail, depthFail, depthPass StencilOp)
	BlendOperations(color, alpha gputypes.BlendOperation)
	BlendFactors(srcColor, dstColor, srcAlpha, dstAlpha gputypes.BlendFactor)
	BlendColor(color mgl32.Vec4)
	ColorMask(mask gputypes.ColorWriteMask)
	CullMode(mode gputypes.CullMode)
	DrawMode(mode gputypes.PrimitiveTopology)

	// Resource binding.
	ActivateShader(shader ResourceHandle)
	ActivateVertexArray(vertexArray ResourceHandle)
	// SetConstant uploads value to the shader input field of the active
	// shader. It returns false if the shader has no such input.
	SetConstant(field DataFieldHandle, value Constant) bool
	ActivateTexture(texture ResourceHandle, field DataFieldHandle)
	ActivateTextureSamplerObject(states SamplerStates, field DataFieldHandle)

	// Draw calls.
	DrawIndexedTriangles(startOffset, elementCount int32, instanceCount uint32)
	DrawTriangles(startOffset, elementCount int32, instanceCount uint32)

	// Buffers.
	ClearColor(color mgl32.Vec4)
	Clear(flags ClearFlags)
	DiscardDepthStencil()
	BlitRenderTargets(src, dst ResourceHandle, srcRect, dstRect Rect, colorOnly bool)

	// FramebufferRenderTarget returns the handle of the display framebuffer.
	FramebufferRenderTarget() ResourceHandle
}
