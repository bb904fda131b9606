// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// ClearFlags selects the buffers cleared by Device.Clear.
// Flags can be combined with bitwise OR.
type ClearFlags uint8

const (
	ClearFlagColor ClearFlags = 1 << iota
	ClearFlagDepth
	ClearFlagStencil

	// ClearFlagsNone clears nothing.
	ClearFlagsNone ClearFlags = 0
	// ClearFlagsAll clears color, depth and stencil.
	ClearFlagsAll = ClearFlagColor | ClearFlagDepth | ClearFlagStencil
)

// Has returns true if all bits of f are set.
func (c ClearFlags) Has(f ClearFlags) bool {
	return c&f == f
}

// String returns the flag names joined with "|", or "None".
func (c ClearFlags) String() string {
	if c == ClearFlagsNone {
		return "None"
	}
	var parts []string
	if c.Has(ClearFlagColor) {
		parts = append(parts, "Color")
	}
	if c.Has(ClearFlagDepth) {
		parts = append(parts, "Depth")
	}
	if c.Has(ClearFlagStencil) {
		parts = append(parts, "Stencil")
	}
	return strings.Join(parts, "|")
}

// ScissorTest enables or disables the scissor test.
type ScissorTest uint8

const (
	ScissorTestDisabled ScissorTest = iota
	ScissorTestEnabled
)

// String returns "Disabled" or "Enabled".
func (s ScissorTest) String() string {
	if s == ScissorTestEnabled {
		return "Enabled"
	}
	return "Disabled"
}

// DepthWrite enables or disables writes to the depth buffer.
type DepthWrite uint8

const (
	DepthWriteDisabled DepthWrite = iota
	DepthWriteEnabled
)

// String returns "Disabled" or "Enabled".
func (d DepthWrite) String() string {
	if d == DepthWriteEnabled {
		return "Enabled"
	}
	return "Disabled"
}

// DepthFunc is the depth comparison function.
type DepthFunc = gputypes.CompareFunction

// StencilFunc is the stencil comparison function.
// StencilFuncDisabled turns the stencil test off.
type StencilFunc uint8

const (
	StencilFuncDisabled StencilFunc = iota
	StencilFuncNever
	StencilFuncAlways
	StencilFuncEqual
	StencilFuncNotEqual
	StencilFuncLess
	StencilFuncLessEqual
	StencilFuncGreater
	StencilFuncGreaterEqual
)

var stencilFuncNames = [...]string{
	StencilFuncDisabled:     "Disabled",
	StencilFuncNever:        "Never",
	StencilFuncAlways:       "Always",
	StencilFuncEqual:        "Equal",
	StencilFuncNotEqual:     "NotEqual",
	StencilFuncLess:         "Less",
	StencilFuncLessEqual:    "LessEqual",
	StencilFuncGreater:      "Greater",
	StencilFuncGreaterEqual: "GreaterEqual",
}

// String returns the name of the stencil function.
func (s StencilFunc) String() string {
	if int(s) < len(stencilFuncNames) {
		return stencilFuncNames[s]
	}
	return "Unknown"
}

// StencilOp is the operation applied to the stencil buffer.
type StencilOp uint8

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrement
	StencilOpIncrementWrap
	StencilOpDecrement
	StencilOpDecrementWrap
	StencilOpInvert
)

var stencilOpNames = [...]string{
	StencilOpKeep:          "Keep",
	StencilOpZero:          "Zero",
	StencilOpReplace:       "Replace",
	StencilOpIncrement:     "Increment",
	StencilOpIncrementWrap: "IncrementWrap",
	StencilOpDecrement:     "Decrement",
	StencilOpDecrementWrap: "DecrementWrap",
	StencilOpInvert:        "Invert",
}

// String returns the name of the stencil operation.
func (s StencilOp) String() string {
	if int(s) < len(stencilOpNames) {
		return stencilOpNames[s]
	}
	return "Unknown"
}

// Stencil is the complete stencil configuration of a renderable.
// It is applied with one StencilFunc and one StencilOp call.
type Stencil struct {
	Func        StencilFunc
	Ref         uint8
	Mask        uint8
	OpFail      StencilOp
	OpDepthFail StencilOp
	OpDepthPass StencilOp
}

// BlendFactors holds the source and destination factors for color and alpha.
type BlendFactors struct {
	SrcColor gputypes.BlendFactor
	DstColor gputypes.BlendFactor
	SrcAlpha gputypes.BlendFactor
	DstAlpha gputypes.BlendFactor
}

// BlendOperations holds the blend equations for color and alpha.
type BlendOperations struct {
	Color gputypes.BlendOperation
	Alpha gputypes.BlendOperation
}

// SamplerStates describes how a texture is sampled.
type SamplerStates struct {
	AddressU   gputypes.AddressMode
	AddressV   gputypes.AddressMode
	AddressW   gputypes.AddressMode
	MinFilter  gputypes.FilterMode
	MagFilter  gputypes.FilterMode
	Anisotropy uint32
}
