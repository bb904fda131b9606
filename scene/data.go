package scene

import (
	"github.com/gogpu/sceneexec/device"
)

// Semantic marks a shader input whose value is computed during execution
// instead of being stored in the data instance.
type Semantic uint8

const (
	SemanticNone Semantic = iota
	SemanticModelMatrix
	SemanticViewMatrix
	SemanticProjectionMatrix
	SemanticModelViewMatrix
	SemanticModelViewMatrix33
	SemanticModelViewProjectionMatrix
	SemanticNormalMatrix
	SemanticCameraWorldPosition
	SemanticDisplayBufferResolution
	SemanticTimeMs
)

var semanticNames = [...]string{
	SemanticNone:                      "None",
	SemanticModelMatrix:               "ModelMatrix",
	SemanticViewMatrix:                "ViewMatrix",
	SemanticProjectionMatrix:          "ProjectionMatrix",
	SemanticModelViewMatrix:           "ModelViewMatrix",
	SemanticModelViewMatrix33:         "ModelViewMatrix33",
	SemanticModelViewProjectionMatrix: "ModelViewProjectionMatrix",
	SemanticNormalMatrix:              "NormalMatrix",
	SemanticCameraWorldPosition:       "CameraWorldPosition",
	SemanticDisplayBufferResolution:   "DisplayBufferResolution",
	SemanticTimeMs:                    "TimeMs",
}

// String returns the semantic name.
func (s Semantic) String() string {
	if int(s) < len(semanticNames) {
		return semanticNames[s]
	}
	return "Unknown"
}

// DataField is one shader input of a data layout.
type DataField struct {
	Name     string
	Semantic Semantic
	// Field is the device handle of the shader input.
	Field device.DataFieldHandle
}

// DataLayout is the ordered list of inputs of a data instance.
type DataLayout struct {
	Fields []DataField
}

// DataInstance holds one value per field of its layout.
// Values of semantic fields are ignored and may be nil.
type DataInstance struct {
	Layout DataLayoutHandle
	Values []Value
}

// Value is the content of one data instance field.
//
// The set of implementations is closed: Uniform, SamplerRef and DataRef.
type Value interface {
	isValue()
}

// Uniform is a plain constant uploaded as is.
type Uniform struct {
	Constant device.Constant
}

// SamplerRef binds a texture sampler.
type SamplerRef struct {
	Sampler TextureSamplerHandle
}

// DataRef forwards the first field value of another data instance.
type DataRef struct {
	Instance DataInstanceHandle
}

func (Uniform) isValue()    {}
func (SamplerRef) isValue() {}
func (DataRef) isValue()    {}

// TextureSampler is a texture with its sampling states.
type TextureSampler struct {
	States device.SamplerStates
	// Texture is the device handle of the sampled texture.
	Texture device.ResourceHandle
	// Multisampled textures are fetched without a sampler object.
	Multisampled bool
}
