package scene

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Scene is a resolved scene ready for execution.
//
// Lookups panic with an out-of-range message for handles that were never
// allocated; execution treats such handles as programmer errors.
//
// Scene is not safe for concurrent modification. Execution only reads it.
type Scene struct {
	id ID

	renderPasses  []RenderPass
	blitPasses    []BlitPass
	renderables   []Renderable
	resources     []RenderableResources
	cameras       []Camera
	renderStates  []RenderState
	layouts       []DataLayout
	instances     []DataInstance
	samplers      []TextureSampler
	renderTargets []RenderTarget
	renderBuffers []RenderBuffer

	passes      []PassInfo
	passesDirty bool

	effectTimeSync time.Time
}

// New creates an empty scene.
func New(id ID) *Scene {
	return &Scene{id: id}
}

// ID returns the scene ID.
func (s *Scene) ID() ID {
	return s.id
}

// Passes returns all render and blit passes sorted by render order.
// Passes with equal order keep their insertion order.
func (s *Scene) Passes() []PassInfo {
	if s.passesDirty {
		slices.SortStableFunc(s.passes, func(a, b PassInfo) int {
			return cmp.Compare(s.passOrder(a), s.passOrder(b))
		})
		s.passesDirty = false
	}
	return s.passes
}

func (s *Scene) passOrder(p PassInfo) int32 {
	if p.Type == PassTypeBlit {
		return s.blitPasses[p.BlitPass].RenderOrder
	}
	return s.renderPasses[p.RenderPass].RenderOrder
}

// EffectTimeSync returns the reference time of time-based shader inputs.
// The zero time means the Unix epoch.
func (s *Scene) EffectTimeSync() time.Time {
	return s.effectTimeSync
}

// SetEffectTimeSync sets the reference time of time-based shader inputs.
func (s *Scene) SetEffectTimeSync(t time.Time) {
	s.effectTimeSync = t
}

func lookup[T any, H ~uint32](table []T, h H, kind string) *T {
	if int(h) >= len(table) {
		panic(fmt.Sprintf("scene: %s handle %d out of range", kind, uint32(h)))
	}
	return &table[h]
}

// RenderPass returns the render pass for h.
func (s *Scene) RenderPass(h RenderPassHandle) *RenderPass {
	return lookup(s.renderPasses, h, "render pass")
}

// BlitPass returns the blit pass for h.
func (s *Scene) BlitPass(h BlitPassHandle) *BlitPass {
	return lookup(s.blitPasses, h, "blit pass")
}

// Renderable returns the renderable for h.
func (s *Scene) Renderable(h RenderableHandle) *Renderable {
	return lookup(s.renderables, h, "renderable")
}

// RenderableResources returns the resolved device resources of h.
func (s *Scene) RenderableResources(h RenderableHandle) RenderableResources {
	return *lookup(s.resources, h, "renderable")
}

// SetRenderableResources replaces the resolved device resources of h.
func (s *Scene) SetRenderableResources(h RenderableHandle, res RenderableResources) {
	*lookup(s.resources, h, "renderable") = res
}

// Camera returns the camera for h.
func (s *Scene) Camera(h CameraHandle) *Camera {
	return lookup(s.cameras, h, "camera")
}

// RenderState returns the render state for h.
func (s *Scene) RenderState(h RenderStateHandle) *RenderState {
	return lookup(s.renderStates, h, "render state")
}

// DataLayout returns the data layout for h.
func (s *Scene) DataLayout(h DataLayoutHandle) *DataLayout {
	return lookup(s.layouts, h, "data layout")
}

// DataInstance returns the data instance for h.
func (s *Scene) DataInstance(h DataInstanceHandle) *DataInstance {
	return lookup(s.instances, h, "data instance")
}

// TextureSampler returns the texture sampler for h.
func (s *Scene) TextureSampler(h TextureSamplerHandle) *TextureSampler {
	return lookup(s.samplers, h, "texture sampler")
}

// RenderTarget returns the render target for h.
func (s *Scene) RenderTarget(h RenderTargetHandle) *RenderTarget {
	return lookup(s.renderTargets, h, "render target")
}

// RenderBuffer returns the render buffer for h.
func (s *Scene) RenderBuffer(h RenderBufferHandle) *RenderBuffer {
	return lookup(s.renderBuffers, h, "render buffer")
}

// DepthStencilBuffer returns the first depth or depth-stencil attachment of
// rt, or InvalidRenderBuffer if rt has none.
func (s *Scene) DepthStencilBuffer(rt RenderTargetHandle) RenderBufferHandle {
	for _, b := range s.RenderTarget(rt).Buffers {
		switch s.RenderBuffer(b).Type {
		case BufferTypeDepth, BufferTypeDepthStencil:
			return b
		}
	}
	return InvalidRenderBuffer
}

// RenderTargetHasBuffer reports whether buf is attached to rt.
func (s *Scene) RenderTargetHasBuffer(rt RenderTargetHandle, buf RenderBufferHandle) bool {
	return slices.Contains(s.RenderTarget(rt).Buffers, buf)
}

// Stats returns the number of entries per table.
func (s *Scene) Stats() Stats {
	return Stats{
		RenderPasses:  len(s.renderPasses),
		BlitPasses:    len(s.blitPasses),
		Renderables:   len(s.renderables),
		Cameras:       len(s.cameras),
		RenderTargets: len(s.renderTargets),
		RenderBuffers: len(s.renderBuffers),
	}
}

// Stats contains scene table sizes.
type Stats struct {
	RenderPasses  int
	BlitPasses    int
	Renderables   int
	Cameras       int
	RenderTargets int
	RenderBuffers int
}
