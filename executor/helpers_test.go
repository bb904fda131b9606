// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/frametimer"
	"github.com/gogpu/sceneexec/recording"
	"github.com/gogpu/sceneexec/scene"
)

const (
	testFramebuffer = device.ResourceHandle(1)
	testTarget      = device.ResourceHandle(50)
	testShader      = device.ResourceHandle(100)
	testVertexArray = device.ResourceHandle(200)
)

// fixedBudget is a TimeBudget that is always or never exceeded.
type fixedBudget bool

func (b fixedBudget) IsTimeBudgetExceededForSection(frametimer.Section) bool { return bool(b) }

// fixture builds scenes with one camera, one render state and one uniform
// instance holding the model-view-projection matrix.
type fixture struct {
	b        *scene.Builder
	camera   scene.CameraHandle
	state    scene.RenderStateHandle
	uniforms scene.DataInstanceHandle
}

func newFixture() *fixture {
	b := scene.NewBuilder(1)
	f := &fixture{b: b}
	f.camera = b.Camera(scene.Camera{
		Projection: scene.Perspective(60, 4.0/3, 0.1, 100),
		Viewport:   device.Rect{Width: 640, Height: 480},
	})
	f.state = b.RenderState(scene.DefaultRenderState())
	layout := b.DataLayout(scene.DataField{Name: "u_mvp", Semantic: scene.SemanticModelViewProjectionMatrix, Field: 0})
	f.uniforms = b.DataInstance(layout)
	return f
}

func readyResources() scene.RenderableResources {
	return scene.RenderableResources{Shader: testShader, VertexArray: testVertexArray, Indexed: true}
}

func (f *fixture) displayPass(flags device.ClearFlags) scene.RenderPassHandle {
	return f.b.RenderPass(scene.RenderPass{Camera: f.camera, RenderTarget: scene.InvalidRenderTarget, ClearFlags: flags})
}

func (f *fixture) targetPass(rt scene.RenderTargetHandle, flags device.ClearFlags) scene.RenderPassHandle {
	return f.b.RenderPass(scene.RenderPass{Camera: f.camera, RenderTarget: rt, ClearFlags: flags})
}

// colorTarget adds a render target with a color attachment only.
func (f *fixture) colorTarget(handle device.ResourceHandle) scene.RenderTargetHandle {
	color := f.b.RenderBuffer(scene.RenderBuffer{Width: 16, Height: 16, Format: gputypes.TextureFormatRGBA8Unorm, Type: scene.BufferTypeColor})
	return f.b.RenderTarget(handle, color)
}

// depthTarget adds a render target with color and depth-stencil
// attachments.
func (f *fixture) depthTarget(handle device.ResourceHandle) (scene.RenderTargetHandle, scene.RenderBufferHandle) {
	color := f.b.RenderBuffer(scene.RenderBuffer{Width: 16, Height: 16, Format: gputypes.TextureFormatRGBA8Unorm, Type: scene.BufferTypeColor})
	depth := f.b.RenderBuffer(scene.RenderBuffer{
		Width:  16,
		Height: 16,
		Format: gputypes.TextureFormatDepth24PlusStencil8,
		Type:   scene.BufferTypeDepthStencil,
		Access: scene.AccessWriteOnly,
	})
	return f.b.RenderTarget(handle, color, depth), depth
}

func (f *fixture) renderable(pass scene.RenderPassHandle) scene.RenderableHandle {
	return f.b.Renderable(pass, scene.Renderable{RenderState: f.state, Uniforms: f.uniforms, IndexCount: 6}, readyResources())
}

func (f *fixture) renderables(pass scene.RenderPassHandle, n int) {
	for range n {
		f.renderable(pass)
	}
}

func newTestState(budget TimeBudget, opts ...StateOption) (*State, *recording.Recorder) {
	rec := recording.NewRecorder(testFramebuffer)
	ctx := &RenderingContext{
		DisplayBufferDeviceHandle: testFramebuffer,
		ViewportWidth:             640,
		ViewportHeight:            480,
	}
	return NewState(rec, ctx, budget, opts...), rec
}

func commandTypes(cmds []recording.Command) []recording.CommandType {
	types := make([]recording.CommandType, len(cmds))
	for i, cmd := range cmds {
		types[i] = cmd.Type()
	}
	return types
}

// fullRenderableCommands is what the first renderable after an
// invalidation sends.
var fullRenderableCommands = []recording.CommandType{
	recording.CmdScissorTest,
	recording.CmdDepthFunc,
	recording.CmdDepthWrite,
	recording.CmdStencilFunc,
	recording.CmdStencilOp,
	recording.CmdBlendOperations,
	recording.CmdBlendFactors,
	recording.CmdBlendColor,
	recording.CmdColorMask,
	recording.CmdCullMode,
	recording.CmdDrawMode,
	recording.CmdActivateShader,
	recording.CmdActivateVertexArray,
	recording.CmdSetConstant,
	recording.CmdDrawIndexedTriangles,
}

// minimalRenderableCommands is what a renderable identical to its
// predecessor sends.
var minimalRenderableCommands = []recording.CommandType{
	recording.CmdDrawMode,
	recording.CmdActivateVertexArray,
	recording.CmdSetConstant,
	recording.CmdDrawIndexedTriangles,
}

func concat(parts ...[]recording.CommandType) []recording.CommandType {
	var out []recording.CommandType
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func mat4Near(a, b mgl32.Mat4) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
