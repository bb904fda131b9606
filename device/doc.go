// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the abstract rendering device that scene execution
// drives.
//
// Device is a narrow, synchronous interface: every method either changes one
// piece of pipeline state, binds one resource or issues one draw, clear,
// discard or blit. Implementations encode the calls for a concrete graphics
// API; this module ships three of them:
//
//   - NullDevice discards every call
//   - LoggingDevice logs every call through slog and forwards it
//   - recording.Recorder captures calls as typed commands
//
// Pipeline enums reuse github.com/gogpu/gputypes where WebGPU already names
// the concept (compare functions, blend factors and operations, cull mode,
// primitive topology, color write mask, sampler filtering and addressing).
// Enums WebGPU lacks at this level (stencil functions and operations, depth
// write and scissor toggles, clear flags) are defined here.
//
// # Registry
//
// Devices are created by name through a database/sql style registry:
//
//	dev, err := device.Open("null", device.NullHost{})
//
// The host is the gpucontext.DeviceProvider of the embedding application;
// devices that do not talk to a GPU ignore it.
package device
