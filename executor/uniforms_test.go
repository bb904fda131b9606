// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/recording"
	"github.com/gogpu/sceneexec/scene"
)

func TestExecuteScene_UniformsInLayoutOrder(t *testing.T) {
	f := newFixture()
	states := device.SamplerStates{
		AddressU:  gputypes.AddressModeClampToEdge,
		AddressV:  gputypes.AddressModeClampToEdge,
		AddressW:  gputypes.AddressModeClampToEdge,
		MinFilter: gputypes.FilterModeLinear,
		MagFilter: gputypes.FilterModeLinear,
	}
	tex := f.b.TextureSampler(scene.TextureSampler{States: states, Texture: 300})
	texMS := f.b.TextureSampler(scene.TextureSampler{States: states, Texture: 301, Multisampled: true})
	refLayout := f.b.DataLayout(scene.DataField{Name: "value", Field: 0})
	ref := f.b.DataInstance(refLayout, scene.Uniform{Constant: device.Floats{2}})

	layout := f.b.DataLayout(
		scene.DataField{Name: "u_color", Field: 0},
		scene.DataField{Name: "u_texture", Field: 1},
		scene.DataField{Name: "u_textureMS", Field: 2},
		scene.DataField{Name: "u_linked", Field: 3},
		scene.DataField{Name: "u_time", Semantic: scene.SemanticTimeMs, Field: 4},
		scene.DataField{Name: "u_resolution", Semantic: scene.SemanticDisplayBufferResolution, Field: 5},
	)
	inst := f.b.DataInstance(layout,
		scene.Uniform{Constant: device.Vec4s{{1, 0, 0, 1}}},
		scene.SamplerRef{Sampler: tex},
		scene.SamplerRef{Sampler: texMS},
		scene.DataRef{Instance: ref},
	)
	f.b.Renderable(f.displayPass(device.ClearFlagsNone), scene.Renderable{RenderState: f.state, Uniforms: inst, IndexCount: 6}, readyResources())
	sc := f.b.Build()
	sc.SetEffectTimeSync(time.Unix(99, 500_000_000))

	now := time.Unix(100, 0)
	st, rec := newTestState(nil, WithClock(func() time.Time { return now }))
	New(DefaultConfig()).ExecuteScene(st, sc, Iterator{})

	cmds := rec.Commands()
	start := 2 + len(fullRenderableCommands) - 2 // after ActivateVertexArray
	got := cmds[start : len(cmds)-1]
	want := []recording.Command{
		recording.SetConstantCommand{Field: 0, Value: device.Vec4s{{1, 0, 0, 1}}},
		recording.ActivateTextureCommand{Texture: 300, Field: 1},
		recording.ActivateTextureSamplerObjectCommand{States: states, Field: 1},
		recording.ActivateTextureCommand{Texture: 301, Field: 2},
		recording.SetConstantCommand{Field: 3, Value: device.Floats{2}},
		recording.SetConstantCommand{Field: 4, Value: device.Ints{500}},
		recording.SetConstantCommand{Field: 5, Value: device.Vec2s{{640, 480}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("uniform commands =\n%v\nwant\n%v", got, want)
	}
}

func TestExecuteScene_TimeMs(t *testing.T) {
	now := time.Unix(100, 0)
	tests := []struct {
		name string
		sync time.Time
		want int32
	}{
		{"since sync", now.Add(-1234 * time.Millisecond), 1234},
		{"at sync", now, 0},
		{"zero sync is epoch", time.Time{}, int32(now.UnixMilli())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			layout := f.b.DataLayout(scene.DataField{Name: "u_time", Semantic: scene.SemanticTimeMs, Field: 7})
			inst := f.b.DataInstance(layout)
			f.b.Renderable(f.displayPass(device.ClearFlagsNone), scene.Renderable{RenderState: f.state, Uniforms: inst}, readyResources())
			sc := f.b.Build()
			sc.SetEffectTimeSync(tt.sync)

			st, rec := newTestState(nil, WithClock(func() time.Time { return now }))
			if st.HasActiveShaderAnimation() {
				t.Fatal("HasActiveShaderAnimation() = true before execution")
			}
			New(DefaultConfig()).ExecuteScene(st, sc, Iterator{})
			if !st.HasActiveShaderAnimation() {
				t.Error("HasActiveShaderAnimation() = false after rendering a time input")
			}

			consts := rec.FinishRecording().Filter(recording.CmdSetConstant)
			want := []recording.Command{recording.SetConstantCommand{Field: 7, Value: device.Ints{tt.want}}}
			if !reflect.DeepEqual(consts, want) {
				t.Errorf("constants = %v, want %v", consts, want)
			}
		})
	}
}

func TestExecuteScene_AnimationFlagResetsPerFrame(t *testing.T) {
	f := newFixture()
	layout := f.b.DataLayout(scene.DataField{Name: "u_time", Semantic: scene.SemanticTimeMs})
	inst := f.b.DataInstance(layout)
	h := f.b.Renderable(f.displayPass(device.ClearFlagsNone), scene.Renderable{RenderState: f.state, Uniforms: inst}, readyResources())
	sc := f.b.Build()

	st, _ := newTestState(nil)
	ex := New(DefaultConfig())
	ex.ExecuteScene(st, sc, Iterator{})
	if !st.HasActiveShaderAnimation() {
		t.Fatal("HasActiveShaderAnimation() = false after first frame")
	}

	sc.SetRenderableResources(h, scene.UnresolvedResources)
	ex.ExecuteScene(st, sc, Iterator{})
	if st.HasActiveShaderAnimation() {
		t.Error("HasActiveShaderAnimation() = true although no time input was rendered")
	}
}

func TestExecuteScene_SemanticMatrices(t *testing.T) {
	f := newFixture()
	camWorld := mgl32.Translate3D(0, 2, 10)
	cam := f.b.Camera(scene.Camera{
		Projection: scene.Orthographic(-1, 1, -1, 1, 0.1, 100),
		Viewport:   device.Rect{Width: 100, Height: 100},
		World:      camWorld,
	})
	layout := f.b.DataLayout(
		scene.DataField{Name: "m", Semantic: scene.SemanticModelMatrix, Field: 0},
		scene.DataField{Name: "v", Semantic: scene.SemanticViewMatrix, Field: 1},
		scene.DataField{Name: "p", Semantic: scene.SemanticProjectionMatrix, Field: 2},
		scene.DataField{Name: "mv", Semantic: scene.SemanticModelViewMatrix, Field: 3},
		scene.DataField{Name: "mv33", Semantic: scene.SemanticModelViewMatrix33, Field: 4},
		scene.DataField{Name: "mvp", Semantic: scene.SemanticModelViewProjectionMatrix, Field: 5},
		scene.DataField{Name: "n", Semantic: scene.SemanticNormalMatrix, Field: 6},
		scene.DataField{Name: "eye", Semantic: scene.SemanticCameraWorldPosition, Field: 7},
	)
	inst := f.b.DataInstance(layout)
	model := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	pass := f.b.RenderPass(scene.RenderPass{Camera: cam, RenderTarget: scene.InvalidRenderTarget})
	f.b.Renderable(pass, scene.Renderable{RenderState: f.state, Uniforms: inst, World: model}, readyResources())
	sc := f.b.Build()

	st, rec := newTestState(nil)
	New(DefaultConfig()).ExecuteScene(st, sc, Iterator{})

	view := camWorld.Inv()
	proj := mgl32.Ortho(-1, 1, -1, 1, 0.1, 100)
	mv := view.Mul4(model)
	wantMat4 := map[device.DataFieldHandle]mgl32.Mat4{
		0: model,
		1: view,
		2: proj,
		3: mv,
		5: proj.Mul4(mv),
		6: mv.Inv().Transpose(),
	}

	consts := rec.FinishRecording().Filter(recording.CmdSetConstant)
	if len(consts) != 8 {
		t.Fatalf("recorded %d constants, want 8", len(consts))
	}
	for _, c := range consts {
		cmd := c.(recording.SetConstantCommand)
		switch v := cmd.Value.(type) {
		case device.Mat4s:
			if want, ok := wantMat4[cmd.Field]; !ok || !mat4Near(v[0], want) {
				t.Errorf("field %d = %v, want %v", cmd.Field, v[0], want)
			}
		case device.Mat3s:
			if want := mv.Mat3(); cmd.Field != 4 || !v[0].ApproxEqualThreshold(want, 1e-5) {
				t.Errorf("field %d = %v, want %v", cmd.Field, v[0], want)
			}
		case device.Vec3s:
			if want := (mgl32.Vec3{0, 2, 10}); cmd.Field != 7 || !v[0].ApproxEqualThreshold(want, 1e-5) {
				t.Errorf("field %d = %v, want %v", cmd.Field, v[0], want)
			}
		default:
			t.Errorf("field %d has unexpected constant %s", cmd.Field, device.ConstantKind(cmd.Value))
		}
	}

	if c, ok := st.ResolvedUniform(inst, 7); !ok || device.ConstantKind(c) != device.ConstantKind(device.Vec3s{}) {
		t.Errorf("ResolvedUniform(eye) = %v, %v", c, ok)
	}
	if _, ok := st.ResolvedUniform(inst, 8); ok {
		t.Error("ResolvedUniform() found a field outside the layout")
	}
}

func TestExecuteScene_UnsupportedValuePanics(t *testing.T) {
	f := newFixture()
	layout := f.b.DataLayout(scene.DataField{Name: "u_linked", Field: 0})
	empty := f.b.DataInstance(layout)
	inst := f.b.DataInstance(layout, scene.DataRef{Instance: empty})
	f.b.Renderable(f.displayPass(device.ClearFlagsNone), scene.Renderable{RenderState: f.state, Uniforms: inst}, readyResources())
	sc := f.b.Build()

	mustPanic(t, "reference to empty instance", func() {
		st, _ := newTestState(nil)
		New(DefaultConfig()).ExecuteScene(st, sc, Iterator{})
	})
}
