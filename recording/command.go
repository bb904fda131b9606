package recording

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
)

// CommandType identifies the device call a command records.
type CommandType uint8

const (
	// Render target and viewport
	CmdActivateRenderTarget CommandType = iota
	CmdSetViewport

	// Pipeline state
	CmdScissorTest
	CmdDepthFunc
	CmdDepthWrite
	CmdStencilFunc
	CmdStencilOp
	CmdBlendOperations
	CmdBlendFactors
	CmdBlendColor
	CmdColorMask
	CmdCullMode
	CmdDrawMode

	// Resource binding
	CmdActivateShader
	CmdActivateVertexArray
	CmdSetConstant
	CmdActivateTexture
	CmdActivateTextureSamplerObject

	// Draw calls
	CmdDrawIndexedTriangles
	CmdDrawTriangles

	// Buffers
	CmdClearColor
	CmdClear
	CmdDiscardDepthStencil
	CmdBlitRenderTargets

	numCommandTypes
)

var commandTypeNames = [...]string{
	CmdActivateRenderTarget:         "ActivateRenderTarget",
	CmdSetViewport:                  "SetViewport",
	CmdScissorTest:                  "ScissorTest",
	CmdDepthFunc:                    "DepthFunc",
	CmdDepthWrite:                   "DepthWrite",
	CmdStencilFunc:                  "StencilFunc",
	CmdStencilOp:                    "StencilOp",
	CmdBlendOperations:              "BlendOperations",
	CmdBlendFactors:                 "BlendFactors",
	CmdBlendColor:                   "BlendColor",
	CmdColorMask:                    "ColorMask",
	CmdCullMode:                     "CullMode",
	CmdDrawMode:                     "DrawMode",
	CmdActivateShader:               "ActivateShader",
	CmdActivateVertexArray:          "ActivateVertexArray",
	CmdSetConstant:                  "SetConstant",
	CmdActivateTexture:              "ActivateTexture",
	CmdActivateTextureSamplerObject: "ActivateTextureSamplerObject",
	CmdDrawIndexedTriangles:         "DrawIndexedTriangles",
	CmdDrawTriangles:                "DrawTriangles",
	CmdClearColor:                   "ClearColor",
	CmdClear:                        "Clear",
	CmdDiscardDepthStencil:          "DiscardDepthStencil",
	CmdBlitRenderTargets:            "BlitRenderTargets",
}

// String returns the device method name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsStateChange reports whether the command only changes pipeline state or
// bindings. Such commands are the ones scene execution may elide.
func (c CommandType) IsStateChange() bool {
	return c >= CmdScissorTest && c <= CmdActivateTextureSamplerObject
}

// IsDraw reports whether the command issues a draw call.
func (c CommandType) IsDraw() bool {
	return c == CmdDrawIndexedTriangles || c == CmdDrawTriangles
}

// Command is implemented by all recorded device calls.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Format returns a single-line description of cmd, such as
// "Clear{Flags:Color|Depth}".
func Format(cmd Command) string {
	return fmt.Sprintf("%s%+v", cmd.Type(), cmd)
}

// --------------------------------------------------------------------------
// Render target and viewport
// --------------------------------------------------------------------------

// ActivateRenderTargetCommand records Device.ActivateRenderTarget.
type ActivateRenderTargetCommand struct {
	RenderTarget device.ResourceHandle
}

// Type implements Command.
func (ActivateRenderTargetCommand) Type() CommandType { return CmdActivateRenderTarget }

// SetViewportCommand records Device.SetViewport.
type SetViewportCommand struct {
	X, Y          int32
	Width, Height uint32
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// --------------------------------------------------------------------------
// Pipeline state
// --------------------------------------------------------------------------

// ScissorTestCommand records Device.ScissorTest.
type ScissorTestCommand struct {
	State  device.ScissorTest
	Region device.Rect
}

// Type implements Command.
func (ScissorTestCommand) Type() CommandType { return CmdScissorTest }

// DepthFuncCommand records Device.DepthFunc.
type DepthFuncCommand struct {
	Func device.DepthFunc
}

// Type implements Command.
func (DepthFuncCommand) Type() CommandType { return CmdDepthFunc }

// DepthWriteCommand records Device.DepthWrite.
type DepthWriteCommand struct {
	State device.DepthWrite
}

// Type implements Command.
func (DepthWriteCommand) Type() CommandType { return CmdDepthWrite }

// StencilFuncCommand records Device.StencilFunc.
type StencilFuncCommand struct {
	Func device.StencilFunc
	Ref  uint8
	Mask uint8
}

// Type implements Command.
func (StencilFuncCommand) Type() CommandType { return CmdStencilFunc }

// StencilOpCommand records Device.StencilOp.
type StencilOpCommand struct {
	Fail      device.StencilOp
	DepthFail device.StencilOp
	DepthPass device.StencilOp
}

// Type implements Command.
func (StencilOpCommand) Type() CommandType { return CmdStencilOp }

// BlendOperationsCommand records Device.BlendOperations.
type BlendOperationsCommand struct {
	Color gputypes.BlendOperation
	Alpha gputypes.BlendOperation
}

// Type implements Command.
func (BlendOperationsCommand) Type() CommandType { return CmdBlendOperations }

// BlendFactorsCommand records Device.BlendFactors.
type BlendFactorsCommand struct {
	SrcColor gputypes.BlendFactor
	DstColor gputypes.BlendFactor
	SrcAlpha gputypes.BlendFactor
	DstAlpha gputypes.BlendFactor
}

// Type implements Command.
func (BlendFactorsCommand) Type() CommandType { return CmdBlendFactors }

// BlendColorCommand records Device.BlendColor.
type BlendColorCommand struct {
	Color mgl32.Vec4
}

// Type implements Command.
func (BlendColorCommand) Type() CommandType { return CmdBlendColor }

// ColorMaskCommand records Device.ColorMask.
type ColorMaskCommand struct {
	Mask gputypes.ColorWriteMask
}

// Type implements Command.
func (ColorMaskCommand) Type() CommandType { return CmdColorMask }

// CullModeCommand records Device.CullMode.
type CullModeCommand struct {
	Mode gputypes.CullMode
}

// Type implements Command.
func (CullModeCommand) Type() CommandType { return CmdCullMode }

// DrawModeCommand records Device.DrawMode.
type DrawModeCommand struct {
	Mode gputypes.PrimitiveTopology
}

// Type implements Command.
func (DrawModeCommand) Type() CommandType { return CmdDrawMode }

// --------------------------------------------------------------------------
// Resource binding
// --------------------------------------------------------------------------

// ActivateShaderCommand records Device.ActivateShader.
type ActivateShaderCommand struct {
	Shader device.ResourceHandle
}

// Type implements Command.
func (ActivateShaderCommand) Type() CommandType { return CmdActivateShader }

// ActivateVertexArrayCommand records Device.ActivateVertexArray.
type ActivateVertexArrayCommand struct {
	VertexArray device.ResourceHandle
}

// Type implements Command.
func (ActivateVertexArrayCommand) Type() CommandType { return CmdActivateVertexArray }

// SetConstantCommand records Device.SetConstant.
// Value is a copy; later changes to the caller's slice do not affect it.
type SetConstantCommand struct {
	Field device.DataFieldHandle
	Value device.Constant
}

// Type implements Command.
func (SetConstantCommand) Type() CommandType { return CmdSetConstant }

// ActivateTextureCommand records Device.ActivateTexture.
type ActivateTextureCommand struct {
	Texture device.ResourceHandle
	Field   device.DataFieldHandle
}

// Type implements Command.
func (ActivateTextureCommand) Type() CommandType { return CmdActivateTexture }

// ActivateTextureSamplerObjectCommand records
// Device.ActivateTextureSamplerObject.
type ActivateTextureSamplerObjectCommand struct {
	States device.SamplerStates
	Field  device.DataFieldHandle
}

// Type implements Command.
func (ActivateTextureSamplerObjectCommand) Type() CommandType {
	return CmdActivateTextureSamplerObject
}

// --------------------------------------------------------------------------
// Draw calls
// --------------------------------------------------------------------------

// DrawIndexedTrianglesCommand records Device.DrawIndexedTriangles.
type DrawIndexedTrianglesCommand struct {
	StartOffset   int32
	ElementCount  int32
	InstanceCount uint32
}

// Type implements Command.
func (DrawIndexedTrianglesCommand) Type() CommandType { return CmdDrawIndexedTriangles }

// DrawTrianglesCommand records Device.DrawTriangles.
type DrawTrianglesCommand struct {
	StartOffset   int32
	ElementCount  int32
	InstanceCount uint32
}

// Type implements Command.
func (DrawTrianglesCommand) Type() CommandType { return CmdDrawTriangles }

// --------------------------------------------------------------------------
// Buffers
// --------------------------------------------------------------------------

// ClearColorCommand records Device.ClearColor.
type ClearColorCommand struct {
	Color mgl32.Vec4
}

// Type implements Command.
func (ClearColorCommand) Type() CommandType { return CmdClearColor }

// ClearCommand records Device.Clear.
type ClearCommand struct {
	Flags device.ClearFlags
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// DiscardDepthStencilCommand records Device.DiscardDepthStencil.
type DiscardDepthStencilCommand struct{}

// Type implements Command.
func (DiscardDepthStencilCommand) Type() CommandType { return CmdDiscardDepthStencil }

// BlitRenderTargetsCommand records Device.BlitRenderTargets.
type BlitRenderTargetsCommand struct {
	Source      device.ResourceHandle
	Destination device.ResourceHandle
	SourceRect  device.Rect
	DestRect    device.Rect
	ColorOnly   bool
}

// Type implements Command.
func (BlitRenderTargetsCommand) Type() CommandType { return CmdBlitRenderTargets }
