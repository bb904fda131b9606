package recording

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec/device"
)

func init() {
	device.Register("recording", func(device.Host) (device.Device, error) {
		return NewRecorder(0), nil
	})
}

// Recorder is a device.Device that captures calls as commands.
//
// SetConstant always reports success. FramebufferRenderTarget returns the
// handle passed to NewRecorder.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	framebuffer device.ResourceHandle
	commands    []Command
}

// NewRecorder creates a recorder whose display framebuffer is framebuffer.
func NewRecorder(framebuffer device.ResourceHandle) *Recorder {
	return &Recorder{
		framebuffer: framebuffer,
		commands:    make([]Command, 0, 64),
	}
}

// Commands returns the commands recorded so far.
// The slice is owned by the recorder and is valid until the next call.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns the recorded commands and starts a new, empty
// recording.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, cap(rec.commands))
	return rec
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Recording is an immutable sequence of recorded device calls.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Histogram returns the number of commands per type. Types that were not
// recorded are omitted.
func (r *Recording) Histogram() map[CommandType]int {
	h := make(map[CommandType]int)
	for _, cmd := range r.commands {
		h[cmd.Type()]++
	}
	return h
}

// Filter returns the commands whose type is in types, in recording order.
func (r *Recording) Filter(types ...CommandType) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if slices.Contains(types, cmd.Type()) {
			out = append(out, cmd)
		}
	}
	return out
}

// Playback replays the recording to dev.
// It returns an error if the recording contains a command type that no
// device method corresponds to.
func (r *Recording) Playback(dev device.Device) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case ActivateRenderTargetCommand:
			dev.ActivateRenderTarget(c.RenderTarget)
		case SetViewportCommand:
			dev.SetViewport(c.X, c.Y, c.Width, c.Height)
		case ScissorTestCommand:
			dev.ScissorTest(c.State, c.Region)
		case DepthFuncCommand:
			dev.DepthFunc(c.Func)
		case DepthWriteCommand:
			dev.DepthWrite(c.State)
		case StencilFuncCommand:
			dev.StencilFunc(c.Func, c.Ref, c.Mask)
		case StencilOpCommand:
			dev.StencilOp(c.Fail, c.DepthFail, c.DepthPass)
		case BlendOperationsCommand:
			dev.BlendOperations(c.Color, c.Alpha)
		case BlendFactorsCommand:
			dev.BlendFactors(c.SrcColor, c.DstColor, c.SrcAlpha, c.DstAlpha)
		case BlendColorCommand:
			dev.BlendColor(c.Color)
		case ColorMaskCommand:
			dev.ColorMask(c.Mask)
		case CullModeCommand:
			dev.CullMode(c.Mode)
		case DrawModeCommand:
			dev.DrawMode(c.Mode)
		case ActivateShaderCommand:
			dev.ActivateShader(c.Shader)
		case ActivateVertexArrayCommand:
			dev.ActivateVertexArray(c.VertexArray)
		case SetConstantCommand:
			dev.SetConstant(c.Field, c.Value)
		case ActivateTextureCommand:
			dev.ActivateTexture(c.Texture, c.Field)
		case ActivateTextureSamplerObjectCommand:
			dev.ActivateTextureSamplerObject(c.States, c.Field)
		case DrawIndexedTrianglesCommand:
			dev.DrawIndexedTriangles(c.StartOffset, c.ElementCount, c.InstanceCount)
		case DrawTrianglesCommand:
			dev.DrawTriangles(c.StartOffset, c.ElementCount, c.InstanceCount)
		case ClearColorCommand:
			dev.ClearColor(c.Color)
		case ClearCommand:
			dev.Clear(c.Flags)
		case DiscardDepthStencilCommand:
			dev.DiscardDepthStencil()
		case BlitRenderTargetsCommand:
			dev.BlitRenderTargets(c.Source, c.Destination, c.SourceRect, c.DestRect, c.ColorOnly)
		default:
			return fmt.Errorf("recording: cannot play back command %d of type %T", i, cmd)
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// device.Device
// --------------------------------------------------------------------------

// ActivateRenderTarget implements device.Device. Every Device method below
// appends the matching command.
func (r *Recorder) ActivateRenderTarget(rt device.ResourceHandle) {
	r.record(ActivateRenderTargetCommand{RenderTarget: rt})
}

func (r *Recorder) SetViewport(x, y int32, width, height uint32) {
	r.record(SetViewportCommand{X: x, Y: y, Width: width, Height: height})
}

func (r *Recorder) ScissorTest(state device.ScissorTest, region device.Rect) {
	r.record(ScissorTestCommand{State: state, Region: region})
}

func (r *Recorder) DepthFunc(fn device.DepthFunc) {
	r.record(DepthFuncCommand{Func: fn})
}

func (r *Recorder) DepthWrite(state device.DepthWrite) {
	r.record(DepthWriteCommand{State: state})
}

func (r *Recorder) StencilFunc(fn device.StencilFunc, ref, mask uint8) {
	r.record(StencilFuncCommand{Func: fn, Ref: ref, Mask: mask})
}

func (r *Recorder) StencilOp(fail, depthFail, depthPass device.StencilOp) {
	r.record(StencilOpCommand{Fail: fail, DepthFail: depthFail, DepthPass: depthPass})
}

func (r *Recorder) BlendOperations(color, alpha gputypes.BlendOperation) {
	r.record(BlendOperationsCommand{Color: color, Alpha: alpha})
}

func (r *Recorder) BlendFactors(srcColor, dstColor, srcAlpha, dstAlpha gputypes.BlendFactor) {
	r.record(BlendFactorsCommand{SrcColor: srcColor, DstColor: dstColor, SrcAlpha: srcAlpha, DstAlpha: dstAlpha})
}

func (r *Recorder) BlendColor(color mgl32.Vec4) {
	r.record(BlendColorCommand{Color: color})
}

func (r *Recorder) ColorMask(mask gputypes.ColorWriteMask) {
	r.record(ColorMaskCommand{Mask: mask})
}

func (r *Recorder) CullMode(mode gputypes.CullMode) {
	r.record(CullModeCommand{Mode: mode})
}

func (r *Recorder) DrawMode(mode gputypes.PrimitiveTopology) {
	r.record(DrawModeCommand{Mode: mode})
}

func (r *Recorder) ActivateShader(shader device.ResourceHandle) {
	r.record(ActivateShaderCommand{Shader: shader})
}

func (r *Recorder) ActivateVertexArray(vertexArray device.ResourceHandle) {
	r.record(ActivateVertexArrayCommand{VertexArray: vertexArray})
}

func (r *Recorder) SetConstant(field device.DataFieldHandle, value device.Constant) bool {
	r.record(SetConstantCommand{Field: field, Value: cloneConstant(value)})
	return true
}

func (r *Recorder) ActivateTexture(texture device.ResourceHandle, field device.DataFieldHandle) {
	r.record(ActivateTextureCommand{Texture: texture, Field: field})
}

func (r *Recorder) ActivateTextureSamplerObject(states device.SamplerStates, field device.DataFieldHandle) {
	r.record(ActivateTextureSamplerObjectCommand{States: states, Field: field})
}

func (r *Recorder) DrawIndexedTriangles(startOffset, elementCount int32, instanceCount uint32) {
	r.record(DrawIndexedTrianglesCommand{StartOffset: startOffset, ElementCount: elementCount, InstanceCount: instanceCount})
}

func (r *Recorder) DrawTriangles(startOffset, elementCount int32, instanceCount uint32) {
	r.record(DrawTrianglesCommand{StartOffset: startOffset, ElementCount: elementCount, InstanceCount: instanceCount})
}

func (r *Recorder) ClearColor(color mgl32.Vec4) {
	r.record(ClearColorCommand{Color: color})
}

func (r *Recorder) Clear(flags device.ClearFlags) {
	r.record(ClearCommand{Flags: flags})
}

func (r *Recorder) DiscardDepthStencil() {
	r.record(DiscardDepthStencilCommand{})
}

func (r *Recorder) BlitRenderTargets(src, dst device.ResourceHandle, srcRect, dstRect device.Rect, colorOnly bool) {
	r.record(BlitRenderTargetsCommand{Source: src, Destination: dst, SourceRect: srcRect, DestRect: dstRect, ColorOnly: colorOnly})
}

func (r *Recorder) FramebufferRenderTarget() device.ResourceHandle {
	return r.framebuffer
}

var _ device.Device = (*Recorder)(nil)

func cloneConstant(c device.Constant) device.Constant {
	switch v := c.(type) {
	case device.Floats:
		return slices.Clone(v)
	case device.Ints:
		return slices.Clone(v)
	case device.Bools:
		return slices.Clone(v)
	case device.Vec2s:
		return slices.Clone(v)
	case device.Vec3s:
		return slices.Clone(v)
	case device.Vec4s:
		return slices.Clone(v)
	case device.IVec2s:
		return slices.Clone(v)
	case device.IVec3s:
		return slices.Clone(v)
	case device.IVec4s:
		return slices.Clone(v)
	case device.Mat2s:
		return slices.Clone(v)
	case device.Mat3s:
		return slices.Clone(v)
	case device.Mat4s:
		return slices.Clone(v)
	default:
		return c
	}
}
