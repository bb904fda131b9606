package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
)

// ProjectionType selects the camera projection.
type ProjectionType uint8

const (
	ProjectionPerspective ProjectionType = iota
	ProjectionOrthographic
)

// Projection describes a camera frustum by its clipping planes.
type Projection struct {
	Type                     ProjectionType
	Left, Right, Bottom, Top float32
	Near, Far                float32
}

// Perspective returns a symmetric perspective projection for a vertical
// field of view in degrees.
func Perspective(fovYDeg, aspect, near, far float32) Projection {
	top := near * math32.Tan(mgl32.DegToRad(fovYDeg)/2)
	right := top * aspect
	return Projection{
		Type: ProjectionPerspective,
		Left: -right, Right: right, Bottom: -top, Top: top,
		Near: near, Far: far,
	}
}

// Orthographic returns an orthographic projection.
func Orthographic(left, right, bottom, top, near, far float32) Projection {
	return Projection{
		Type: ProjectionOrthographic,
		Left: left, Right: right, Bottom: bottom, Top: top,
		Near: near, Far: far,
	}
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	if p.Type == ProjectionOrthographic {
		return mgl32.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	}
	return mgl32.Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// Camera is a resolved camera.
type Camera struct {
	Projection Projection
	// Viewport is the area of the render target the camera renders to.
	Viewport device.Rect
	// World is the camera's world transform. The view matrix is its inverse.
	World mgl32.Mat4
}

// RenderPass renders an ordered list of renderables with one camera into a
// render target or the display buffer.
type RenderPass struct {
	Camera CameraHandle
	// RenderTarget is InvalidRenderTarget for the display buffer.
	RenderTarget RenderTargetHandle
	ClearFlags   device.ClearFlags
	ClearColor   mgl32.Vec4
	RenderOrder  int32
	Renderables  []RenderableHandle
}

// RendersToDisplay reports whether the pass targets the display buffer.
func (p *RenderPass) RendersToDisplay() bool {
	return !p.RenderTarget.IsValid()
}

// BlitPass copies a region of one render buffer into another.
type BlitPass struct {
	Source            RenderBufferHandle
	Destination       RenderBufferHandle
	SourceRegion      device.Rect
	DestinationRegion device.Rect
	RenderOrder       int32

	// Device render targets wrapping Source and Destination.
	SourceTarget      device.ResourceHandle
	DestinationTarget device.ResourceHandle
}

// Renderable is one draw of a geometry with a shader and its inputs.
type Renderable struct {
	RenderState   RenderStateHandle
	Uniforms      DataInstanceHandle
	Geometry      DataInstanceHandle
	StartIndex    uint32
	IndexCount    uint32
	StartVertex   uint32
	InstanceCount uint32
	// World is the renderable's model matrix.
	World mgl32.Mat4
}

// RenderableResources are the device resources resolved for a renderable.
// A renderable is dirty while a resource it needs is not uploaded.
type RenderableResources struct {
	Shader      device.ResourceHandle
	VertexArray device.ResourceHandle
	Indexed     bool
	Dirty       bool
}

// Ready reports whether every resource is present.
func (r RenderableResources) Ready() bool {
	return !r.Dirty && r.Shader.IsValid() && r.VertexArray.IsValid()
}

// UnresolvedResources marks a renderable whose resources are not uploaded.
var UnresolvedResources = RenderableResources{
	Shader:      device.InvalidResource,
	VertexArray: device.InvalidResource,
	Dirty:       true,
}

// RenderState is the pipeline state a renderable is drawn with.
type RenderState struct {
	ScissorTest     device.ScissorTest
	ScissorRegion   device.Rect
	DepthFunc       device.DepthFunc
	DepthWrite      device.DepthWrite
	Stencil         device.Stencil
	BlendFactors    device.BlendFactors
	BlendOperations device.BlendOperations
	BlendColor      mgl32.Vec4
	ColorWriteMask  gputypes.ColorWriteMask
	CullMode        gputypes.CullMode
	DrawMode        gputypes.PrimitiveTopology
}

// DefaultRenderState returns opaque, depth-tested triangle rendering with
// back-face culling.
func DefaultRenderState() RenderState {
	return RenderState{
		ScissorTest: device.ScissorTestDisabled,
		DepthFunc:   gputypes.CompareFunctionLess,
		DepthWrite:  device.DepthWriteEnabled,
		Stencil: device.Stencil{
			Func: device.StencilFuncDisabled,
			Mask: 0xFF,
		},
		BlendFactors: device.BlendFactors{
			SrcColor: gputypes.BlendFactorSrcAlpha,
			DstColor: gputypes.BlendFactorOneMinusSrcAlpha,
			SrcAlpha: gputypes.BlendFactorOne,
			DstAlpha: gputypes.BlendFactorOne,
		},
		BlendOperations: device.BlendOperations{
			Color: gputypes.BlendOperationAdd,
			Alpha: gputypes.BlendOperationAdd,
		},
		ColorWriteMask: gputypes.ColorWriteMaskAll,
		CullMode:       gputypes.CullModeBack,
		DrawMode:       gputypes.PrimitiveTopologyTriangleList,
	}
}

// RenderTarget is a set of render buffer attachments.
type RenderTarget struct {
	Buffers      []RenderBufferHandle
	DeviceHandle device.ResourceHandle
}

// BufferType is the attachment type of a render buffer.
type BufferType uint8

const (
	BufferTypeColor BufferType = iota
	BufferTypeDepth
	BufferTypeDepthStencil
)

// String returns the buffer type name.
func (t BufferType) String() string {
	switch t {
	case BufferTypeDepth:
		return "Depth"
	case BufferTypeDepthStencil:
		return "DepthStencil"
	default:
		return "Color"
	}
}

// AccessMode describes whether a render buffer can be read after rendering.
type AccessMode uint8

const (
	AccessReadWrite AccessMode = iota
	AccessWriteOnly
)

// RenderBuffer is a render target attachment.
type RenderBuffer struct {
	Width, Height uint32
	Format        gputypes.TextureFormat
	Type          BufferType
	Access        AccessMode
	SampleCount   uint32
	DeviceHandle  device.ResourceHandle
}
