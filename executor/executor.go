// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/scene"
)

// Executor renders scenes into the device of a State.
//
// An Executor has no mutable state and may be shared by any number of
// displays, as long as each State is used by one goroutine at a time.
type Executor struct {
	cfg Config
}

// New creates an executor. Zero fields of cfg take their defaults.
func New(cfg Config) *Executor {
	return &Executor{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (e *Executor) Config() Config {
	return e.cfg
}

// Execute runs sc from the context's RenderFrom iterator and stores the
// returned iterator back into the context.
func (e *Executor) Execute(st *State, sc *scene.Scene) Iterator {
	it := e.ExecuteScene(st, sc, st.ctx.RenderFrom)
	st.ctx.RenderFrom = it
	return it
}

// ExecuteScene emits the device calls of sc starting at from.
//
// Passes are executed in render order. Render passes are interrupted when
// the state's time budget is exceeded at a batch boundary; the returned
// Iterator then points at the first renderable not yet rendered. Blit
// passes are never interrupted. The zero Iterator is returned once the last
// pass is done.
//
// Starting from the zero Iterator invalidates every cell of st, so the first
// renderable of a frame sends its complete state.
//
// Renderables whose resources are not uploaded are skipped. Broken scene
// data, such as an out-of-range handle or a field without a value, panics.
func (e *Executor) ExecuteScene(st *State, sc *scene.Scene, from Iterator) Iterator {
	st.SetScene(sc)
	if from.IsZero() {
		st.InvalidateAll()
		st.activeShaderAnimation = false
	}

	it := from
	passes := sc.Passes()
	for ; int(it.RenderPass) < len(passes); it.RenderPass++ {
		p := passes[it.RenderPass]
		switch p.Type {
		case scene.PassTypeRender:
			if !e.executeRenderPass(st, p.RenderPass, &it) {
				sceneexec.Logger().Debug("executor: time budget exceeded",
					slog.String("scene", sc.ID().String()),
					slog.String("resume", it.String()))
				return it
			}
			if DepthStencilDiscardAllowed(sc, int(it.RenderPass), st.ctx) {
				st.dev.DiscardDepthStencil()
			}
		case scene.PassTypeBlit:
			e.executeBlitPass(st, p.BlitPass)
		default:
			panic(fmt.Sprintf("executor: unknown pass type %d", p.Type))
		}
		it.Renderable = 0
	}
	return Iterator{}
}

// executeRenderPass renders the pass from it.Renderable on. It returns false
// when the time budget interrupted the pass.
func (e *Executor) executeRenderPass(st *State, h scene.RenderPassHandle, it *Iterator) bool {
	sc := st.scene
	rp := sc.RenderPass(h)

	e.executeRenderTarget(st, rp)
	st.SetCamera(rp.Camera)
	if st.viewport.Changed() {
		vp := st.viewport.Get()
		st.dev.SetViewport(vp.X, vp.Y, vp.Width, vp.Height)
	}

	fromBeginning := it.Renderable == 0
	st.renderPass.Set(h)
	if st.renderPass.Changed() && fromBeginning {
		e.clearRenderTarget(st, rp)
	}

	for int(it.Renderable) < len(rp.Renderables) {
		e.executeRenderable(st, rp.Renderables[it.Renderable])
		it.Renderable++
		it.Flattened++
		if it.Flattened%e.cfg.RenderablesPerBudgetCheck == 0 && st.HasExceededTimeBudgetForRendering() {
			return false
		}
	}
	return true
}

func (e *Executor) executeRenderTarget(st *State, rp *scene.RenderPass) {
	st.renderTarget.Set(rp.RenderTarget)
	if !st.renderTarget.Changed() {
		return
	}
	if rp.RendersToDisplay() {
		st.dev.ActivateRenderTarget(st.ctx.DisplayBufferDeviceHandle)
		return
	}
	st.dev.ActivateRenderTarget(st.scene.RenderTarget(rp.RenderTarget).DeviceHandle)
}

// clearRenderTarget clears the buffers of the pass's target. The display
// buffer is cleared with the pending display clear, which is consumed.
func (e *Executor) clearRenderTarget(st *State, rp *scene.RenderPass) {
	flags, color := rp.ClearFlags, rp.ClearColor
	if rp.RendersToDisplay() {
		flags, color = st.ctx.DisplayBufferClearPending, st.ctx.DisplayBufferClearColor
		st.ctx.DisplayBufferClearPending = device.ClearFlagsNone
	}
	if flags == device.ClearFlagsNone {
		return
	}

	dev := st.dev
	if flags.Has(device.ClearFlagColor) {
		dev.ColorMask(gputypes.ColorWriteMaskAll)
		dev.ClearColor(color)
	}
	if flags.Has(device.ClearFlagDepth) {
		dev.DepthWrite(device.DepthWriteEnabled)
	}
	dev.ScissorTest(device.ScissorTestDisabled, device.Rect{})
	dev.Clear(flags)

	st.resetAfterClear()
}

func (e *Executor) executeRenderable(st *State, h scene.RenderableHandle) {
	sc := st.scene
	r := sc.Renderable(h)
	res := sc.RenderableResources(h)
	if !res.Ready() || !r.Uniforms.IsValid() {
		sceneexec.Logger().Debug("executor: skipping renderable",
			slog.String("scene", sc.ID().String()),
			slog.Uint64("renderable", uint64(h)),
			slog.Bool("dirty", res.Dirty))
		return
	}

	st.SetRenderable(h)
	e.executeRenderStates(st, sc.RenderState(r.RenderState))

	st.shader.Set(res.Shader)
	if st.shader.Changed() {
		st.dev.ActivateShader(res.Shader)
	}
	st.dev.ActivateVertexArray(res.VertexArray)

	e.executeUniforms(st, r.Uniforms)

	if res.Indexed {
		st.dev.DrawIndexedTriangles(int32(r.StartIndex), int32(r.IndexCount), r.InstanceCount)
	} else {
		st.dev.DrawTriangles(int32(r.StartVertex), int32(r.IndexCount), r.InstanceCount)
	}
}

// executeRenderStates sends the changed state categories in a fixed order.
// The draw mode is sent for every renderable.
func (e *Executor) executeRenderStates(st *State, rs *scene.RenderState) {
	dev := st.dev

	st.scissor.Set(scissorState{Test: rs.ScissorTest, Region: rs.ScissorRegion})
	if st.scissor.Changed() {
		dev.ScissorTest(rs.ScissorTest, rs.ScissorRegion)
	}

	st.depthFunc.Set(rs.DepthFunc)
	if st.depthFunc.Changed() {
		dev.DepthFunc(rs.DepthFunc)
	}

	st.depthWrite.Set(rs.DepthWrite)
	if st.depthWrite.Changed() {
		dev.DepthWrite(rs.DepthWrite)
	}

	st.stencil.Set(rs.Stencil)
	if st.stencil.Changed() {
		s := rs.Stencil
		dev.StencilFunc(s.Func, s.Ref, s.Mask)
		dev.StencilOp(s.OpFail, s.OpDepthFail, s.OpDepthPass)
	}

	st.blendOperations.Set(rs.BlendOperations)
	if st.blendOperations.Changed() {
		dev.BlendOperations(rs.BlendOperations.Color, rs.BlendOperations.Alpha)
	}

	st.blendFactors.Set(rs.BlendFactors)
	if st.blendFactors.Changed() {
		f := rs.BlendFactors
		dev.BlendFactors(f.SrcColor, f.DstColor, f.SrcAlpha, f.DstAlpha)
	}

	st.blendColor.Set(rs.BlendColor)
	if st.blendColor.Changed() {
		dev.BlendColor(rs.BlendColor)
	}

	st.colorMask.Set(rs.ColorWriteMask)
	if st.colorMask.Changed() {
		dev.ColorMask(rs.ColorWriteMask)
	}

	st.cullMode.Set(rs.CullMode)
	if st.cullMode.Changed() {
		dev.CullMode(rs.CullMode)
	}

	dev.DrawMode(rs.DrawMode)
}

// executeBlitPass copies the source buffer into the destination buffer.
// The blit changes the bound render target, so the render target cell is
// reset.
func (e *Executor) executeBlitPass(st *State, h scene.BlitPassHandle) {
	bp := st.scene.BlitPass(h)
	st.renderTarget.Reset()
	st.dev.BlitRenderTargets(bp.SourceTarget, bp.DestinationTarget, bp.SourceRegion, bp.DestinationRegion, false)
}
