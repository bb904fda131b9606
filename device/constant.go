// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Constant is a value uploaded to a shader input with Device.SetConstant.
//
// The set of implementations is closed: Floats, Ints, Bools, Vec2s, Vec3s,
// Vec4s, IVec2s, IVec3s, IVec4s, Mat2s, Mat3s and Mat4s. Every constant is an
// array; scalar inputs use a one-element slice.
type Constant interface {
	// Len returns the number of array elements.
	Len() int
	isConstant()
}

// IVec2 is a two-component integer vector.
type IVec2 [2]int32

// IVec3 is a three-component integer vector.
type IVec3 [3]int32

// IVec4 is a four-component integer vector.
type IVec4 [4]int32

type (
	// Floats is a float or float array input.
	Floats []float32
	// Ints is an int or int array input.
	Ints []int32
	// Bools is a bool or bool array input.
	Bools []bool
	// Vec2s is a vec2 input.
	Vec2s []mgl32.Vec2
	// Vec3s is a vec3 input.
	Vec3s []mgl32.Vec3
	// Vec4s is a vec4 input.
	Vec4s []mgl32.Vec4
	// IVec2s is an ivec2 input.
	IVec2s []IVec2
	// IVec3s is an ivec3 input.
	IVec3s []IVec3
	// IVec4s is an ivec4 input.
	IVec4s []IVec4
	// Mat2s is a mat2 input.
	Mat2s []mgl32.Mat2
	// Mat3s is a mat3 input.
	Mat3s []mgl32.Mat3
	// Mat4s is a mat4 input.
	Mat4s []mgl32.Mat4
)

// Len returns the number of array elements of the constant.
func (c Floats) Len() int { return len(c) }
func (c Ints) Len() int   { return len(c) }
func (c Bools) Len() int  { return len(c) }
func (c Vec2s) Len() int  { return len(c) }
func (c Vec3s) Len() int  { return len(c) }
func (c Vec4s) Len() int  { return len(c) }
func (c IVec2s) Len() int { return len(c) }
func (c IVec3s) Len() int { return len(c) }
func (c IVec4s) Len() int { return len(c) }
func (c Mat2s) Len() int  { return len(c) }
func (c Mat3s) Len() int  { return len(c) }
func (c Mat4s) Len() int  { return len(c) }

func (Floats) isConstant() {}
func (Ints) isConstant()   {}
func (Bools) isConstant()  {}
func (Vec2s) isConstant()  {}
func (Vec3s) isConstant()  {}
func (Vec4s) isConstant()  {}
func (IVec2s) isConstant() {}
func (IVec3s) isConstant() {}
func (IVec4s) isConstant() {}
func (Mat2s) isConstant()  {}
func (Mat3s) isConstant()  {}
func (Mat4s) isConstant()  {}

// ConstantKind returns a short type name for c, used in logs.
func ConstantKind(c Constant) string {
	switch c.(type) {
	case Floats:
		return "float"
	case Ints:
		return "int"
	case Bools:
		return "bool"
	case Vec2s:
		return "vec2"
	case Vec3s:
		return "vec3"
	case Vec4s:
		return "vec4"
	case IVec2s:
		return "ivec2"
	case IVec3s:
		return "ivec3"
	case IVec4s:
		return "ivec4"
	case Mat2s:
		return "mat2"
	case Mat3s:
		return "mat3"
	case Mat4s:
		return "mat4"
	case nil:
		return "nil"
	default:
		panic(fmt.Sprintf("device: unknown constant type %T", c))
	}
}
