package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec/device"
)

// Builder assembles a Scene.
//
// Each method appends one table entry and returns its handle. Render passes
// and blit passes are executed in order of their RenderOrder; the builder
// assigns increasing orders to passes whose RenderOrder is zero.
//
// Example:
//
//	b := scene.NewBuilder(7)
//	cam := b.Camera(scene.Camera{Projection: scene.Orthographic(-1, 1, -1, 1, 0.1, 10)})
//	state := b.RenderState(scene.DefaultRenderState())
//	pass := b.RenderPass(scene.RenderPass{Camera: cam, RenderTarget: scene.InvalidRenderTarget})
//	b.Renderable(pass, scene.Renderable{RenderState: state, IndexCount: 6}, res)
//	sc := b.Build()
type Builder struct {
	scene     *Scene
	nextOrder int32
}

// NewBuilder creates a builder for an empty scene with the given ID.
func NewBuilder(id ID) *Builder {
	return &Builder{scene: New(id)}
}

// Scene returns the scene under construction.
func (b *Builder) Scene() *Scene {
	return b.scene
}

// Build returns the finished scene.
func (b *Builder) Build() *Scene {
	b.scene.Passes()
	return b.scene
}

// Camera adds a camera. A zero World matrix is replaced by identity.
func (b *Builder) Camera(c Camera) CameraHandle {
	if c.World == (mgl32.Mat4{}) {
		c.World = mgl32.Ident4()
	}
	b.scene.cameras = append(b.scene.cameras, c)
	return CameraHandle(len(b.scene.cameras) - 1)
}

// RenderState adds a render state.
func (b *Builder) RenderState(rs RenderState) RenderStateHandle {
	b.scene.renderStates = append(b.scene.renderStates, rs)
	return RenderStateHandle(len(b.scene.renderStates) - 1)
}

// DataLayout adds a data layout.
func (b *Builder) DataLayout(fields ...DataField) DataLayoutHandle {
	b.scene.layouts = append(b.scene.layouts, DataLayout{Fields: fields})
	return DataLayoutHandle(len(b.scene.layouts) - 1)
}

// DataInstance adds a data instance of layout. Values are matched to the
// layout's fields by position; missing values are nil.
func (b *Builder) DataInstance(layout DataLayoutHandle, values ...Value) DataInstanceHandle {
	n := len(b.scene.DataLayout(layout).Fields)
	vals := make([]Value, n)
	copy(vals, values)
	b.scene.instances = append(b.scene.instances, DataInstance{Layout: layout, Values: vals})
	return DataInstanceHandle(len(b.scene.instances) - 1)
}

// TextureSampler adds a texture sampler.
func (b *Builder) TextureSampler(ts TextureSampler) TextureSamplerHandle {
	b.scene.samplers = append(b.scene.samplers, ts)
	return TextureSamplerHandle(len(b.scene.samplers) - 1)
}

// RenderBuffer adds a render buffer.
func (b *Builder) RenderBuffer(rb RenderBuffer) RenderBufferHandle {
	b.scene.renderBuffers = append(b.scene.renderBuffers, rb)
	return RenderBufferHandle(len(b.scene.renderBuffers) - 1)
}

// RenderTarget adds a render target with the given device handle and
// attachments.
func (b *Builder) RenderTarget(handle device.ResourceHandle, buffers ...RenderBufferHandle) RenderTargetHandle {
	b.scene.renderTargets = append(b.scene.renderTargets, RenderTarget{Buffers: buffers, DeviceHandle: handle})
	return RenderTargetHandle(len(b.scene.renderTargets) - 1)
}

// RenderPass adds a render pass. Its renderables are added with Renderable.
func (b *Builder) RenderPass(rp RenderPass) RenderPassHandle {
	rp.RenderOrder = b.order(rp.RenderOrder)
	b.scene.renderPasses = append(b.scene.renderPasses, rp)
	h := RenderPassHandle(len(b.scene.renderPasses) - 1)
	b.scene.passes = append(b.scene.passes, PassInfo{Type: PassTypeRender, RenderPass: h, BlitPass: InvalidBlitPass})
	b.scene.passesDirty = true
	return h
}

// BlitPass adds a blit pass.
func (b *Builder) BlitPass(bp BlitPass) BlitPassHandle {
	bp.RenderOrder = b.order(bp.RenderOrder)
	b.scene.blitPasses = append(b.scene.blitPasses, bp)
	h := BlitPassHandle(len(b.scene.blitPasses) - 1)
	b.scene.passes = append(b.scene.passes, PassInfo{Type: PassTypeBlit, RenderPass: InvalidRenderPass, BlitPass: h})
	b.scene.passesDirty = true
	return h
}

// order returns explicit when non-zero, otherwise the next automatic order.
func (b *Builder) order(explicit int32) int32 {
	if explicit != 0 {
		return explicit
	}
	b.nextOrder++
	return b.nextOrder
}

// Renderable adds a renderable with its resolved resources to the end of
// pass. A zero World matrix is replaced by identity and a zero instance
// count by one.
func (b *Builder) Renderable(pass RenderPassHandle, r Renderable, res RenderableResources) RenderableHandle {
	if r.World == (mgl32.Mat4{}) {
		r.World = mgl32.Ident4()
	}
	if r.InstanceCount == 0 {
		r.InstanceCount = 1
	}
	b.scene.renderables = append(b.scene.renderables, r)
	b.scene.resources = append(b.scene.resources, res)
	h := RenderableHandle(len(b.scene.renderables) - 1)
	rp := b.scene.RenderPass(pass)
	rp.Renderables = append(rp.Renderables, h)
	return h
}
