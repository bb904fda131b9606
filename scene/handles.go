package scene

import "fmt"

// Invalid is the sentinel value shared by all scene handle types.
const Invalid = ^uint32(0)

// Typed handles into the tables of a Scene.
type (
	RenderPassHandle     uint32
	BlitPassHandle       uint32
	RenderableHandle     uint32
	CameraHandle         uint32
	RenderStateHandle    uint32
	DataLayoutHandle     uint32
	DataInstanceHandle   uint32
	TextureSamplerHandle uint32
	RenderTargetHandle   uint32
	RenderBufferHandle   uint32
)

// Invalid handles of each type.
const (
	InvalidRenderPass     = RenderPassHandle(Invalid)
	InvalidBlitPass       = BlitPassHandle(Invalid)
	InvalidRenderable     = RenderableHandle(Invalid)
	InvalidCamera         = CameraHandle(Invalid)
	InvalidRenderState    = RenderStateHandle(Invalid)
	InvalidDataLayout     = DataLayoutHandle(Invalid)
	InvalidDataInstance   = DataInstanceHandle(Invalid)
	InvalidTextureSampler = TextureSamplerHandle(Invalid)
	// InvalidRenderTarget as a render pass target selects the display buffer.
	InvalidRenderTarget = RenderTargetHandle(Invalid)
	InvalidRenderBuffer = RenderBufferHandle(Invalid)
)

// IsValid reports whether the handle is not Invalid.
func (h RenderPassHandle) IsValid() bool     { return uint32(h) != Invalid }
func (h BlitPassHandle) IsValid() bool       { return uint32(h) != Invalid }
func (h RenderableHandle) IsValid() bool     { return uint32(h) != Invalid }
func (h CameraHandle) IsValid() bool         { return uint32(h) != Invalid }
func (h RenderStateHandle) IsValid() bool    { return uint32(h) != Invalid }
func (h DataLayoutHandle) IsValid() bool     { return uint32(h) != Invalid }
func (h DataInstanceHandle) IsValid() bool   { return uint32(h) != Invalid }
func (h TextureSamplerHandle) IsValid() bool { return uint32(h) != Invalid }
func (h RenderTargetHandle) IsValid() bool   { return uint32(h) != Invalid }
func (h RenderBufferHandle) IsValid() bool   { return uint32(h) != Invalid }

// ID identifies a scene across the renderer.
type ID uint64

// String returns the scene ID as "scene#N".
func (id ID) String() string {
	return fmt.Sprintf("scene#%d", uint64(id))
}

// PassType distinguishes render passes from blit passes in the pass list.
type PassType uint8

const (
	PassTypeRender PassType = iota
	PassTypeBlit
)

// String returns "Render" or "Blit".
func (t PassType) String() string {
	if t == PassTypeBlit {
		return "Blit"
	}
	return "Render"
}

// PassInfo is one entry of the sorted pass list.
// Only the handle matching Type is meaningful.
type PassInfo struct {
	Type       PassType
	RenderPass RenderPassHandle
	BlitPass   BlitPassHandle
}
