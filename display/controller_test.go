// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/executor"
	"github.com/gogpu/sceneexec/frametimer"
	"github.com/gogpu/sceneexec/recording"
	"github.com/gogpu/sceneexec/scene"
)

// testScene builds a scene with one display pass of n renderables.
func testScene(id scene.ID, n int, animated bool) *scene.Scene {
	b := scene.NewBuilder(id)
	cam := b.Camera(scene.Camera{
		Projection: scene.Perspective(60, 1, 0.1, 100),
		Viewport:   device.Rect{Width: 320, Height: 240},
	})
	state := b.RenderState(scene.DefaultRenderState())
	sem := scene.SemanticModelViewProjectionMatrix
	if animated {
		sem = scene.SemanticTimeMs
	}
	layout := b.DataLayout(scene.DataField{Name: "u_input", Semantic: sem})
	inst := b.DataInstance(layout)
	pass := b.RenderPass(scene.RenderPass{Camera: cam, RenderTarget: scene.InvalidRenderTarget})
	for range n {
		b.Renderable(pass, scene.Renderable{RenderState: state, Uniforms: inst, IndexCount: 3},
			scene.RenderableResources{Shader: device.ResourceHandle(10 + id), VertexArray: 20, Indexed: true})
	}
	return b.Build()
}

// exhaustedTimer returns a frame timer whose offscreen budget is always used up.
func exhaustedTimer() *frametimer.Timer {
	return frametimer.New(frametimer.WithBudget(frametimer.SectionOffscreenBufferRender, 0))
}

func TestController_BeginFrame(t *testing.T) {
	rec := recording.NewRecorder(4)
	c := New(rec, WithClear(device.ClearFlagColor, mgl32.Vec4{0, 0, 1, 1}), WithViewport(320, 240))

	if got := c.Context().DisplayBufferDeviceHandle; got != 4 {
		t.Errorf("DisplayBufferDeviceHandle = %d, want 4", got)
	}
	if got := c.Context().DisplayBufferClearPending; got != device.ClearFlagsNone {
		t.Errorf("clear pending before BeginFrame = %v, want None", got)
	}
	c.BeginFrame()
	if got := c.Context().DisplayBufferClearPending; got != device.ClearFlagColor {
		t.Errorf("clear pending = %v, want Color", got)
	}

	if !c.RenderScene(testScene(1, 2, false)) {
		t.Fatal("RenderScene() = false, want true")
	}
	r := rec.FinishRecording()
	if got := r.Count(recording.CmdClear); got != 1 {
		t.Errorf("Clear count = %d, want 1", got)
	}
	if got := c.Context().DisplayBufferClearPending; got != device.ClearFlagsNone {
		t.Errorf("clear pending after render = %v, want None", got)
	}
	if got := c.Stats().Frames; got != 1 {
		t.Errorf("Stats().Frames = %d, want 1", got)
	}
}

func TestController_InterruptibleResumes(t *testing.T) {
	rec := recording.NewRecorder(0)
	c := New(rec, WithFrameTimer(exhaustedTimer()), WithInterruptible(true))
	sc := testScene(1, 25, false)

	c.BeginFrame()
	want := []struct {
		done bool
		it   executor.Iterator
	}{
		{false, executor.Iterator{Renderable: 10, Flattened: 10}},
		{false, executor.Iterator{Renderable: 20, Flattened: 20}},
		{true, executor.Iterator{}},
	}
	for i, w := range want {
		if got := c.RenderScene(sc); got != w.done {
			t.Fatalf("call %d: RenderScene() = %v, want %v", i, got, w.done)
		}
		if got := c.Iterator(sc.ID()); got != w.it {
			t.Errorf("call %d: Iterator() = %v, want %v", i, got, w.it)
		}
	}

	if got := rec.FinishRecording().Count(recording.CmdDrawIndexedTriangles); got != 25 {
		t.Errorf("draw count = %d, want 25", got)
	}
	stats := c.Stats()
	if stats.SceneExecutions != 3 || stats.Interruptions != 2 || stats.ScenesCompleted != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestController_NotInterruptibleIgnoresBudget(t *testing.T) {
	c := New(device.NewNullDevice(), WithFrameTimer(exhaustedTimer()))
	c.BeginFrame()
	if !c.RenderScene(testScene(1, 25, false)) {
		t.Error("RenderScene() = false for a display that is not interruptible")
	}
}

func TestController_InvalidatesStateWhenResumingAfterSwitch(t *testing.T) {
	rec := recording.NewRecorder(0)
	c := New(rec, WithFrameTimer(exhaustedTimer()), WithInterruptible(true))
	a := testScene(1, 15, false)
	b := testScene(2, 1, false)

	c.BeginFrame()
	if c.RenderScene(a) {
		t.Fatal("RenderScene(a) finished, want interruption")
	}
	c.RenderScene(b)
	rec.Reset()

	if !c.RenderScene(a) {
		t.Fatal("RenderScene(a) did not finish")
	}
	r := rec.FinishRecording()
	// The resumed scene sends its render target, shader and full state again.
	for _, typ := range []recording.CommandType{recording.CmdActivateRenderTarget, recording.CmdActivateShader, recording.CmdDepthFunc} {
		if got := r.Count(typ); got != 1 {
			t.Errorf("%v count = %d, want 1", typ, got)
		}
	}
	if got := c.Stats().Invalidations; got != 1 {
		t.Errorf("Stats().Invalidations = %d, want 1", got)
	}
}

func TestController_ResetScene(t *testing.T) {
	c := New(device.NewNullDevice(), WithFrameTimer(exhaustedTimer()), WithInterruptible(true))
	sc := testScene(3, 15, false)
	c.BeginFrame()
	c.RenderScene(sc)
	if c.Iterator(sc.ID()).IsZero() {
		t.Fatal("Iterator() is zero after interruption")
	}
	c.ResetScene(sc.ID())
	if !c.Iterator(sc.ID()).IsZero() {
		t.Error("Iterator() not zero after ResetScene")
	}
}

func TestController_ShaderAnimation(t *testing.T) {
	now := time.Unix(50, 0)
	c := New(device.NewNullDevice(), WithClock(func() time.Time { return now }))
	still := testScene(1, 1, false)
	moving := testScene(2, 1, true)

	c.BeginFrame()
	c.RenderScene(still)
	c.RenderScene(moving)
	if c.HasActiveShaderAnimation(still.ID()) {
		t.Error("HasActiveShaderAnimation(still) = true")
	}
	if !c.HasActiveShaderAnimation(moving.ID()) {
		t.Error("HasActiveShaderAnimation(moving) = false")
	}
}

func TestController_Resize(t *testing.T) {
	c := New(device.NewNullDevice(), WithViewport(10, 20))
	c.Resize(30, 40)
	ctx := c.Context()
	if ctx.ViewportWidth != 30 || ctx.ViewportHeight != 40 {
		t.Errorf("viewport = %dx%d, want 30x40", ctx.ViewportWidth, ctx.ViewportHeight)
	}
}

func TestOpen(t *testing.T) {
	c, err := Open("recording", nil, WithCallLogging(true))
	if err != nil {
		t.Fatalf("Open(recording) error = %v", err)
	}
	logging, ok := c.Device().(*device.LoggingDevice)
	if !ok {
		t.Fatalf("Device() = %T, want *device.LoggingDevice", c.Device())
	}
	if _, ok := logging.Unwrap().(*recording.Recorder); !ok {
		t.Errorf("wrapped device = %T, want *recording.Recorder", logging.Unwrap())
	}

	if _, err := Open("no-such-device", nil); !errors.Is(err, device.ErrUnknownDevice) {
		t.Errorf("Open(no-such-device) error = %v, want ErrUnknownDevice", err)
	}
}

func TestNew_NilDevicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(nil) did not panic")
		}
	}()
	New(nil)
}
