// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/frametimer"
	"github.com/gogpu/sceneexec/internal/cache"
	"github.com/gogpu/sceneexec/scene"
)

// scissorState is the cached value of the scissor cell.
type scissorState struct {
	Test   device.ScissorTest
	Region device.Rect
}

// uniformKey addresses a resolved semantic uniform.
type uniformKey struct {
	instance scene.DataInstanceHandle
	field    int
}

// blendColorSentinel never equals a real blend color.
var blendColorSentinel = mgl32.Vec4{math32.Inf(1), math32.Inf(1), math32.Inf(1), math32.Inf(1)}

// State is the execution state of one display.
//
// It holds the device, the rendering context, the optional time budget, the
// matrices of the current camera and renderable and one cell per category of
// pipeline state. Cells remember what was last sent to the device so that
// unchanged state is not sent again.
//
// State is not safe for concurrent use.
type State struct {
	dev    device.Device
	ctx    *RenderingContext
	budget TimeBudget
	now    func() time.Time

	scene      *scene.Scene
	camera     scene.CameraHandle
	renderable scene.RenderableHandle

	projection     mgl32.Mat4
	view           mgl32.Mat4
	model          mgl32.Mat4
	modelView      mgl32.Mat4
	mvp            mgl32.Mat4
	normal         mgl32.Mat4
	cameraPosition mgl32.Vec3

	uniforms              *cache.Map[uniformKey, device.Constant]
	activeShaderAnimation bool

	scissor         cache.Cell[scissorState]
	depthFunc       cache.Cell[device.DepthFunc]
	depthWrite      cache.Cell[device.DepthWrite]
	stencil         cache.Cell[device.Stencil]
	blendFactors    cache.Cell[device.BlendFactors]
	blendOperations cache.Cell[device.BlendOperations]
	blendColor      cache.Cell[mgl32.Vec4]
	colorMask       cache.Cell[gputypes.ColorWriteMask]
	cullMode        cache.Cell[gputypes.CullMode]
	shader          cache.Cell[device.ResourceHandle]
	renderTarget    cache.Cell[scene.RenderTargetHandle]
	renderPass      cache.Cell[scene.RenderPassHandle]
	viewport        cache.Cell[device.Rect]
}

// StateOption configures a State.
type StateOption func(*State)

// WithClock replaces the wall clock used for time based shader inputs.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// WithUniformCacheLimit sets the soft limit of resolved semantic uniforms.
// Zero means unlimited. Default is DefaultUniformCacheLimit.
func WithUniformCacheLimit(n int) StateOption {
	return func(s *State) {
		s.uniforms = cache.NewMap[uniformKey, device.Constant](max(n, 0))
	}
}

// NewState creates the execution state of a display rendering with dev.
//
// A nil ctx is replaced by a context whose display buffer is the device's
// framebuffer. A nil budget is never exceeded. Pass an untyped nil, not a
// nil *frametimer.Timer.
func NewState(dev device.Device, ctx *RenderingContext, budget TimeBudget, opts ...StateOption) *State {
	if dev == nil {
		panic("executor: nil device")
	}
	if ctx == nil {
		ctx = &RenderingContext{DisplayBufferDeviceHandle: dev.FramebufferRenderTarget()}
	}
	s := &State{
		dev:        dev,
		ctx:        ctx,
		budget:     budget,
		now:        time.Now,
		camera:     scene.InvalidCamera,
		renderable: scene.InvalidRenderable,
		uniforms:   cache.NewMap[uniformKey, device.Constant](DefaultUniformCacheLimit),

		shader:       cache.NewCell(device.InvalidResource),
		renderTarget: cache.NewCell(scene.InvalidRenderTarget),
		renderPass:   cache.NewCell(scene.InvalidRenderPass),
		blendColor:   cache.NewCell(blendColorSentinel),
		scissor:      cache.NewCell(scissorState{Test: device.ScissorTest(0xFF)}),
		depthWrite:   cache.NewCell(device.DepthWrite(0xFF)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Device returns the device calls are emitted to.
func (s *State) Device() device.Device {
	return s.dev
}

// Context returns the rendering context.
func (s *State) Context() *RenderingContext {
	return s.ctx
}

// SetScene binds sc for the following render operations. Binding a
// different scene drops the resolved uniforms of the previous one.
func (s *State) SetScene(sc *scene.Scene) {
	if sc == nil {
		panic("executor: nil scene")
	}
	if s.scene != sc {
		s.uniforms.Clear()
		s.activeShaderAnimation = false
	}
	s.scene = sc
}

// Scene returns the bound scene. It panics if no scene was set.
func (s *State) Scene() *scene.Scene {
	if s.scene == nil {
		panic("executor: no scene set")
	}
	return s.scene
}

// SetCamera makes h the current camera: it computes the projection and view
// matrices and the camera position and stores the camera viewport in the
// viewport cell.
func (s *State) SetCamera(h scene.CameraHandle) {
	cam := s.Scene().Camera(h)
	s.camera = h
	s.projection = cam.Projection.Matrix()
	s.view = cam.World.Inv()
	s.cameraPosition = s.view.Inv().Col(3).Vec3()
	s.viewport.Set(cam.Viewport)
}

// Camera returns the current camera.
func (s *State) Camera() scene.CameraHandle {
	return s.camera
}

// SetRenderable makes h the current renderable and computes its matrices
// from the current camera.
func (s *State) SetRenderable(h scene.RenderableHandle) {
	r := s.Scene().Renderable(h)
	s.renderable = h
	s.model = r.World
	s.modelView = s.view.Mul4(s.model)
	s.mvp = s.projection.Mul4(s.modelView)
	s.normal = s.modelView.Inv().Transpose()
}

// Renderable returns the current renderable.
func (s *State) Renderable() scene.RenderableHandle {
	return s.renderable
}

// ProjectionMatrix returns the projection matrix of the current camera.
func (s *State) ProjectionMatrix() mgl32.Mat4 { return s.projection }

// ViewMatrix returns the inverse world transform of the current camera.
func (s *State) ViewMatrix() mgl32.Mat4 { return s.view }

// ModelMatrix returns the world transform of the current renderable.
func (s *State) ModelMatrix() mgl32.Mat4 { return s.model }

// ModelViewMatrix returns the view matrix times the model matrix.
func (s *State) ModelViewMatrix() mgl32.Mat4 { return s.modelView }

// ModelViewProjectionMatrix returns the projection matrix times the
// model-view matrix.
func (s *State) ModelViewProjectionMatrix() mgl32.Mat4 { return s.mvp }

// NormalMatrix returns the inverse transpose of the model-view matrix.
func (s *State) NormalMatrix() mgl32.Mat4 { return s.normal }

// CameraWorldPosition returns the world position of the current camera.
func (s *State) CameraWorldPosition() mgl32.Vec3 { return s.cameraPosition }

// HasExceededTimeBudgetForRendering reports whether the offscreen render
// budget of the frame is used up.
func (s *State) HasExceededTimeBudgetForRendering() bool {
	return s.budget != nil && s.budget.IsTimeBudgetExceededForSection(frametimer.SectionOffscreenBufferRender)
}

// HasActiveShaderAnimation reports whether a time based shader input was
// rendered since the bound scene's frame started.
func (s *State) HasActiveShaderAnimation() bool {
	return s.activeShaderAnimation
}

// ResolvedUniform returns the last value resolved for the semantic field of
// a data instance.
func (s *State) ResolvedUniform(instance scene.DataInstanceHandle, field int) (device.Constant, bool) {
	return s.uniforms.Get(uniformKey{instance: instance, field: field})
}

// InvalidateAll resets every cell. The next value set in each category is
// sent to the device. Call it when something other than the executor may
// have changed the device state.
func (s *State) InvalidateAll() {
	s.scissor.Reset()
	s.depthFunc.Reset()
	s.depthWrite.Reset()
	s.stencil.Reset()
	s.blendFactors.Reset()
	s.blendOperations.Reset()
	s.blendColor.Reset()
	s.colorMask.Reset()
	s.cullMode.Reset()
	s.shader.Reset()
	s.renderTarget.Reset()
	s.renderPass.Reset()
	s.viewport.Reset()
}

// resetAfterClear resets the cells a clear overrides on the device.
func (s *State) resetAfterClear() {
	s.scissor.Reset()
	s.depthWrite.Reset()
	s.colorMask.Reset()
}

// timeMs returns the wrapping milliseconds since the scene's effect time
// sync. The zero sync time means the Unix epoch.
func (s *State) timeMs() int32 {
	sync := s.Scene().EffectTimeSync()
	if sync.IsZero() {
		sync = time.UnixMilli(0)
	}
	return int32(s.now().Sub(sync).Milliseconds())
}
