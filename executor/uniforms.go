// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/scene"
)

// executeUniforms sends the fields of a uniform data instance in layout
// order. Semantic fields are computed from st and kept in its uniform cache.
func (e *Executor) executeUniforms(st *State, h scene.DataInstanceHandle) {
	sc := st.scene
	inst := sc.DataInstance(h)
	layout := sc.DataLayout(inst.Layout)

	for i, f := range layout.Fields {
		if f.Semantic != scene.SemanticNone {
			c := st.resolveSemantic(f.Semantic)
			st.uniforms.Set(uniformKey{instance: h, field: i}, c)
			setConstant(st.dev, f, c)
			continue
		}

		var v scene.Value
		if i < len(inst.Values) {
			v = inst.Values[i]
		}
		switch v := v.(type) {
		case scene.Uniform:
			if v.Constant == nil {
				panic(fmt.Sprintf("executor: data instance %d field %q has no constant", h, f.Name))
			}
			setConstant(st.dev, f, v.Constant)
		case scene.SamplerRef:
			ts := sc.TextureSampler(v.Sampler)
			st.dev.ActivateTexture(ts.Texture, f.Field)
			if !ts.Multisampled {
				st.dev.ActivateTextureSamplerObject(ts.States, f.Field)
			}
		case scene.DataRef:
			setConstant(st.dev, f, referencedConstant(sc, v.Instance))
		default:
			panic(fmt.Sprintf("executor: data instance %d field %q has unsupported value %T", h, f.Name, v))
		}
	}
}

func setConstant(dev device.Device, f scene.DataField, c device.Constant) {
	if !dev.SetConstant(f.Field, c) {
		sceneexec.Logger().Debug("executor: constant rejected",
			slog.String("field", f.Name),
			slog.String("kind", device.ConstantKind(c)))
	}
}

// referencedConstant returns the value of the first field of a referenced
// data instance.
func referencedConstant(sc *scene.Scene, h scene.DataInstanceHandle) device.Constant {
	inst := sc.DataInstance(h)
	if len(inst.Values) > 0 {
		if u, ok := inst.Values[0].(scene.Uniform); ok && u.Constant != nil {
			return u.Constant
		}
	}
	panic(fmt.Sprintf("executor: referenced data instance %d has no constant", h))
}

// resolveSemantic computes the value of a semantic shader input for the
// current camera and renderable.
func (s *State) resolveSemantic(sem scene.Semantic) device.Constant {
	switch sem {
	case scene.SemanticModelMatrix:
		return device.Mat4s{s.model}
	case scene.SemanticViewMatrix:
		return device.Mat4s{s.view}
	case scene.SemanticProjectionMatrix:
		return device.Mat4s{s.projection}
	case scene.SemanticModelViewMatrix:
		return device.Mat4s{s.modelView}
	case scene.SemanticModelViewMatrix33:
		return device.Mat3s{s.modelView.Mat3()}
	case scene.SemanticModelViewProjectionMatrix:
		return device.Mat4s{s.mvp}
	case scene.SemanticNormalMatrix:
		return device.Mat4s{s.normal}
	case scene.SemanticCameraWorldPosition:
		return device.Vec3s{s.cameraPosition}
	case scene.SemanticDisplayBufferResolution:
		return device.Vec2s{mgl32.Vec2{float32(s.ctx.ViewportWidth), float32(s.ctx.ViewportHeight)}}
	case scene.SemanticTimeMs:
		s.activeShaderAnimation = true
		return device.Ints{s.timeMs()}
	default:
		panic(fmt.Sprintf("executor: unsupported semantic %s", sem))
	}
}
