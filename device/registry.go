// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/sceneexec"
)

// ErrUnknownDevice is returned by Open for names that were never registered.
var ErrUnknownDevice = errors.New("device: unknown device")

// Factory creates a device on top of the host's GPU access.
type Factory func(host Host) (Device, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	Register("null", func(Host) (Device, error) {
		return NewNullDevice(), nil
	})
}

// Register makes a device factory available under name.
// It is typically called from init() in packages providing a device:
//
//	func init() {
//	    device.Register("recording", func(device.Host) (device.Device, error) {
//	        return recording.NewRecorder(0), nil
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("device: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("device: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a factory. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Open creates the device registered under name.
// The returned error wraps ErrUnknownDevice if name is not registered, or
// the factory's error.
func Open(name string, host Host) (Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDevice, name)
	}
	if host == nil {
		host = NullHost{}
	}
	dev, err := factory(host)
	if err != nil {
		return nil, fmt.Errorf("device: open %q: %w", name, err)
	}
	sceneexec.Logger().LogAttrs(context.Background(), slog.LevelDebug, "device: created",
		append([]slog.Attr{slog.String("device", name)}, HostAttrs(host)...)...)
	return dev, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(name string, host Host) Device {
	dev, err := Open(name, host)
	if err != nil {
		panic(err)
	}
	return dev
}

// Devices returns the registered device names in alphabetical order.
func Devices() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a factory is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
