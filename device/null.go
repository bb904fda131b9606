// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// NullDevice accepts every call and does nothing.
// It counts draw calls so frame statistics remain meaningful.
type NullDevice struct {
	// Framebuffer is returned by FramebufferRenderTarget.
	Framebuffer ResourceHandle

	drawCalls uint32
}

// NewNullDevice returns a null device whose framebuffer handle is 0.
func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

// DrawCallCount returns the number of draw calls since the last call and
// resets the counter.
func (d *NullDevice) DrawCallCount() uint32 {
	n := d.drawCalls
	d.drawCalls = 0
	return n
}

func (d *NullDevice) ActivateRenderTarget(ResourceHandle)                              {}
func (d *NullDevice) SetViewport(int32, int32, uint32, uint32)                         {}
func (d *NullDevice) ScissorTest(ScissorTest, Rect)                                    {}
func (d *NullDevice) DepthFunc(DepthFunc)                                              {}
func (d *NullDevice) DepthWrite(DepthWrite)                                            {}
func (d *NullDevice) StencilFunc(StencilFunc, uint8, uint8)                            {}
func (d *NullDevice) StencilOp(StencilOp, StencilOp, StencilOp)                        {}
func (d *NullDevice) BlendOperations(gputypes.BlendOperation, gputypes.BlendOperation) {}
func (d *NullDevice) BlendFactors(_, _, _, _ gputypes.BlendFactor)                     {}
func (d *NullDevice) BlendColor(mgl32.Vec4)                                            {}
func (d *NullDevice) ColorMask(gputypes.ColorWriteMask)                                {}
func (d *NullDevice) CullMode(gputypes.CullMode)                                       {}
func (d *NullDevice) DrawMode(gputypes.PrimitiveTopology)                              {}
func (d *NullDevice) ActivateShader(ResourceHandle)                                    {}
func (d *NullDevice) ActivateVertexArray(ResourceHandle)                               {}
func (d *NullDevice) SetConstant(DataFieldHandle, Constant) bool                       { return true }
func (d *NullDevice) ActivateTexture(ResourceHandle, DataFieldHandle)                  {}
func (d *NullDevice) ActivateTextureSamplerObject(SamplerStates, DataFieldHandle)      {}
func (d *NullDevice) ClearColor(mgl32.Vec4)                                            {}
func (d *NullDevice) Clear(ClearFlags)                                                 {}
func (d *NullDevice) DiscardDepthStencil()                                             {}
func (d *NullDevice) BlitRenderTargets(_, _ ResourceHandle, _, _ Rect, _ bool)         {}

func (d *NullDevice) DrawIndexedTriangles(_, _ int32, _ uint32) { d.drawCalls++ }
func (d *NullDevice) DrawTriangles(_, _ int32, _ uint32)        { d.drawCalls++ }

// FramebufferRenderTarget returns d.Framebuffer.
func (d *NullDevice) FramebufferRenderTarget() ResourceHandle { return d.Framebuffer }

var _ Device = (*NullDevice)(nil)
