// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Host provides GPU access from the embedding application.
//
// The host owns the GPU device and queue. A device factory receives the host
// and builds a Device on top of it; scene execution itself never creates GPU
// objects.
//
// Host is an alias for gpucontext.DeviceProvider so any gogpu application
// context can be passed directly.
type Host = gpucontext.DeviceProvider

// NullHost is a Host without a GPU. It is used by devices that do not encode
// calls for a real graphics API, such as NullDevice and the recorder.
type NullHost struct{}

// Device returns nil.
func (NullHost) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullHost) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullHost) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format.
func (NullHost) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter.
func (NullHost) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ Host = NullHost{}

// HasGPU reports whether host exposes a GPU device.
func HasGPU(host Host) bool {
	return host != nil && host.Device() != nil
}

// HostAttrs returns log attributes describing the GPU behind host.
func HostAttrs(host Host) []slog.Attr {
	if !HasGPU(host) {
		return []slog.Attr{slog.Bool("gpu", false)}
	}
	info := host.AdapterInfo()
	return []slog.Attr{
		slog.Bool("gpu", true),
		slog.String("adapter", info.Name),
		slog.String("adapter_type", info.Type.String()),
	}
}
