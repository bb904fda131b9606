// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"context"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec"
)

// LoggingDevice forwards every call to a delegate device and logs it at
// debug level. It is used to trace the exact call stream a frame produces.
type LoggingDevice struct {
	next   Device
	logger *slog.Logger
}

// NewLoggingDevice wraps next. A nil logger selects sceneexec.Logger() at
// call time, so SetLogger takes effect for existing logging devices.
func NewLoggingDevice(next Device, logger *slog.Logger) *LoggingDevice {
	return &LoggingDevice{next: next, logger: logger}
}

// Unwrap returns the delegate device.
func (d *LoggingDevice) Unwrap() Device {
	return d.next
}

func (d *LoggingDevice) log(call string, attrs ...slog.Attr) {
	l := d.logger
	if l == nil {
		l = sceneexec.Logger()
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "device: "+call, attrs...)
}

func handleAttr(key string, h ResourceHandle) slog.Attr {
	if !h.IsValid() {
		return slog.String(key, "invalid")
	}
	return slog.Uint64(key, uint64(h))
}

func rectAttr(key string, r Rect) slog.Attr {
	return slog.Group(key,
		slog.Int64("x", int64(r.X)), slog.Int64("y", int64(r.Y)),
		slog.Uint64("w", uint64(r.Width)), slog.Uint64("h", uint64(r.Height)))
}

// ActivateRenderTarget implements Device. The remaining Device methods
// below log their call the same way before forwarding it.
func (d *LoggingDevice) ActivateRenderTarget(rt ResourceHandle) {
	d.log("ActivateRenderTarget", handleAttr("rt", rt))
	d.next.ActivateRenderTarget(rt)
}

func (d *LoggingDevice) SetViewport(x, y int32, width, height uint32) {
	d.log("SetViewport", rectAttr("viewport", Rect{X: x, Y: y, Width: width, Height: height}))
	d.next.SetViewport(x, y, width, height)
}

func (d *LoggingDevice) ScissorTest(state ScissorTest, region Rect) {
	d.log("ScissorTest", slog.String("state", state.String()), rectAttr("region", region))
	d.next.ScissorTest(state, region)
}

func (d *LoggingDevice) DepthFunc(fn DepthFunc) {
	d.log("DepthFunc", slog.Any("func", fn))
	d.next.DepthFunc(fn)
}

func (d *LoggingDevice) DepthWrite(state DepthWrite) {
	d.log("DepthWrite", slog.String("state", state.String()))
	d.next.DepthWrite(state)
}

func (d *LoggingDevice) StencilFunc(fn StencilFunc, ref, mask uint8) {
	d.log("StencilFunc", slog.String("func", fn.String()),
		slog.Uint64("ref", uint64(ref)), slog.Uint64("mask", uint64(mask)))
	d.next.StencilFunc(fn, ref, mask)
}

func (d *LoggingDevice) StencilOp(fail, depthFail, depthPass StencilOp) {
	d.log("StencilOp", slog.String("fail", fail.String()),
		slog.String("depthFail", depthFail.String()), slog.String("depthPass", depthPass.String()))
	d.next.StencilOp(fail, depthFail, depthPass)
}

func (d *LoggingDevice) BlendOperations(color, alpha gputypes.BlendOperation) {
	d.log("BlendOperations", slog.Any("color", color), slog.Any("alpha", alpha))
	d.next.BlendOperations(color, alpha)
}

func (d *LoggingDevice) BlendFactors(srcColor, dstColor, srcAlpha, dstAlpha gputypes.BlendFactor) {
	d.log("BlendFactors", slog.Any("srcColor", srcColor), slog.Any("dstColor", dstColor),
		slog.Any("srcAlpha", srcAlpha), slog.Any("dstAlpha", dstAlpha))
	d.next.BlendFactors(srcColor, dstColor, srcAlpha, dstAlpha)
}

func (d *LoggingDevice) BlendColor(color mgl32.Vec4) {
	d.log("BlendColor", slog.Any("color", color))
	d.next.BlendColor(color)
}

func (d *LoggingDevice) ColorMask(mask gputypes.ColorWriteMask) {
	d.log("ColorMask", slog.Any("mask", mask))
	d.next.ColorMask(mask)
}

func (d *LoggingDevice) CullMode(mode gputypes.CullMode) {
	d.log("CullMode", slog.Any("mode", mode))
	d.next.CullMode(mode)
}

func (d *LoggingDevice) DrawMode(mode gputypes.PrimitiveTopology) {
	d.log("DrawMode", slog.Any("mode", mode))
	d.next.DrawMode(mode)
}

func (d *LoggingDevice) ActivateShader(shader ResourceHandle) {
	d.log("ActivateShader", handleAttr("shader", shader))
	d.next.ActivateShader(shader)
}

func (d *LoggingDevice) ActivateVertexArray(vertexArray ResourceHandle) {
	d.log("ActivateVertexArray", handleAttr("vertexArray", vertexArray))
	d.next.ActivateVertexArray(vertexArray)
}

func (d *LoggingDevice) SetConstant(field DataFieldHandle, value Constant) bool {
	ok := d.next.SetConstant(field, value)
	d.log("SetConstant", slog.Uint64("field", uint64(field)),
		slog.String("type", ConstantKind(value)), slog.Int("count", value.Len()), slog.Bool("ok", ok))
	return ok
}

func (d *LoggingDevice) ActivateTexture(texture ResourceHandle, field DataFieldHandle) {
	d.log("ActivateTexture", handleAttr("texture", texture), slog.Uint64("field", uint64(field)))
	d.next.ActivateTexture(texture, field)
}

func (d *LoggingDevice) ActivateTextureSamplerObject(states SamplerStates, field DataFieldHandle) {
	d.log("ActivateTextureSamplerObject", slog.Any("states", states), slog.Uint64("field", uint64(field)))
	d.next.ActivateTextureSamplerObject(states, field)
}

func (d *LoggingDevice) DrawIndexedTriangles(startOffset, elementCount int32, instanceCount uint32) {
	d.log("DrawIndexedTriangles", slog.Int64("start", int64(startOffset)),
		slog.Int64("count", int64(elementCount)), slog.Uint64("instances", uint64(instanceCount)))
	d.next.DrawIndexedTriangles(startOffset, elementCount, instanceCount)
}

func (d *LoggingDevice) DrawTriangles(startOffset, elementCount int32, instanceCount uint32) {
	d.log("DrawTriangles", slog.Int64("start", int64(startOffset)),
		slog.Int64("count", int64(elementCount)), slog.Uint64("instances", uint64(instanceCount)))
	d.next.DrawTriangles(startOffset, elementCount, instanceCount)
}

func (d *LoggingDevice) ClearColor(color mgl32.Vec4) {
	d.log("ClearColor", slog.Any("color", color))
	d.next.ClearColor(color)
}

func (d *LoggingDevice) Clear(flags ClearFlags) {
	d.log("Clear", slog.String("flags", flags.String()))
	d.next.Clear(flags)
}

func (d *LoggingDevice) DiscardDepthStencil() {
	d.log("DiscardDepthStencil")
	d.next.DiscardDepthStencil()
}

func (d *LoggingDevice) BlitRenderTargets(src, dst ResourceHandle, srcRect, dstRect Rect, colorOnly bool) {
	d.log("BlitRenderTargets", handleAttr("src", src), handleAttr("dst", dst),
		rectAttr("srcRect", srcRect), rectAttr("dstRect", dstRect), slog.Bool("colorOnly", colorOnly))
	d.next.BlitRenderTargets(src, dst, srcRect, dstRect, colorOnly)
}

func (d *LoggingDevice) FramebufferRenderTarget() ResourceHandle {
	return d.next.FramebufferRenderTarget()
}

var _ Device = (*LoggingDevice)(nil)
