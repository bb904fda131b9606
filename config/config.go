// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads scene execution settings from TOML files.
//
// A file has three optional tables; missing keys keep their defaults:
//
//	[executor]
//	renderables_per_budget_check = 10
//
//	[display]
//	device = "null"
//	width = 1280
//	height = 720
//	clear = ["color", "depth", "stencil"]
//	clear_color = [0.0, 0.0, 0.0, 1.0]
//	depth_discard = false
//	interruptible = true
//	uniform_cache_limit = 4096
//	log_calls = false
//
//	[budgets]
//	offscreen_buffer_render = "8ms"
//	scene_resources_upload = "unlimited"
//
// Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/display"
	"github.com/gogpu/sceneexec/executor"
	"github.com/gogpu/sceneexec/frametimer"
)

// ErrInvalidConfig is returned for files that cannot be decoded or hold
// values out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the content of a configuration file.
type Config struct {
	Executor ExecutorConfig `toml:"executor"`
	Display  DisplayConfig  `toml:"display"`
	Budgets  BudgetConfig   `toml:"budgets"`
}

// ExecutorConfig configures scene execution.
type ExecutorConfig struct {
	RenderablesPerBudgetCheck uint32 `toml:"renderables_per_budget_check"`
}

// DisplayConfig configures the display controller.
type DisplayConfig struct {
	Device            string    `toml:"device"`
	Width             uint32    `toml:"width"`
	Height            uint32    `toml:"height"`
	Clear             []string  `toml:"clear"`
	ClearColor        []float32 `toml:"clear_color"`
	DepthDiscard      bool      `toml:"depth_discard"`
	Interruptible     bool      `toml:"interruptible"`
	UniformCacheLimit int       `toml:"uniform_cache_limit"`
	LogCalls          bool      `toml:"log_calls"`
}

// BudgetConfig holds the frame time budget of each renderer section,
// measured from frame start.
type BudgetConfig struct {
	SceneResourcesUpload  Duration `toml:"scene_resources_upload"`
	ClientResourcesUpload Duration `toml:"client_resources_upload"`
	SceneActionsApply     Duration `toml:"scene_actions_apply"`
	OffscreenBufferRender Duration `toml:"offscreen_buffer_render"`
}

// Duration is a time.Duration written as a Go duration string such as
// "8ms", or "unlimited".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == "unlimited" {
		*d = Duration(frametimer.Unlimited)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	if time.Duration(d) == frametimer.Unlimited {
		return []byte("unlimited"), nil
	}
	return []byte(time.Duration(d).String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	unlimited := Duration(frametimer.Unlimited)
	return Config{
		Executor: ExecutorConfig{
			RenderablesPerBudgetCheck: executor.DefaultRenderablesPerBudgetCheck,
		},
		Display: DisplayConfig{
			Device:            "null",
			Width:             1280,
			Height:            720,
			Clear:             []string{"color", "depth", "stencil"},
			ClearColor:        []float32{0, 0, 0, 1},
			UniformCacheLimit: executor.DefaultUniformCacheLimit,
		},
		Budgets: BudgetConfig{
			SceneResourcesUpload:  unlimited,
			ClientResourcesUpload: unlimited,
			SceneActionsApply:     unlimited,
			OffscreenBufferRender: unlimited,
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration from r on top of the defaults and validates
// it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Executor.RenderablesPerBudgetCheck == 0 {
		return fmt.Errorf("%w: renderables_per_budget_check must be positive", ErrInvalidConfig)
	}
	if c.Display.Device == "" {
		return fmt.Errorf("%w: display device is empty", ErrInvalidConfig)
	}
	if len(c.Display.ClearColor) != 4 {
		return fmt.Errorf("%w: clear_color needs 4 components, got %d", ErrInvalidConfig, len(c.Display.ClearColor))
	}
	if c.Display.UniformCacheLimit < 0 {
		return fmt.Errorf("%w: uniform_cache_limit is negative", ErrInvalidConfig)
	}
	if _, err := ParseClearFlags(c.Display.Clear); err != nil {
		return err
	}
	if c.Display.Interruptible && time.Duration(c.Budgets.OffscreenBufferRender) == frametimer.Unlimited {
		sceneexec.Logger().Warn("config: interruptible display without offscreen_buffer_render budget")
	}
	return nil
}

// ParseClearFlags converts clear flag names ("color", "depth", "stencil",
// "all", "none") into device clear flags.
func ParseClearFlags(names []string) (device.ClearFlags, error) {
	flags := device.ClearFlagsNone
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "color":
			flags |= device.ClearFlagColor
		case "depth":
			flags |= device.ClearFlagDepth
		case "stencil":
			flags |= device.ClearFlagStencil
		case "all":
			flags |= device.ClearFlagsAll
		case "none":
		default:
			return 0, fmt.Errorf("%w: unknown clear flag %q", ErrInvalidConfig, name)
		}
	}
	return flags, nil
}

// ExecutorConfig returns the executor settings.
func (c Config) ExecutorConfig() executor.Config {
	return executor.Config{RenderablesPerBudgetCheck: c.Executor.RenderablesPerBudgetCheck}
}

// FrameTimer creates a frame timer with the configured budgets.
func (c Config) FrameTimer(opts ...frametimer.Option) *frametimer.Timer {
	budgets := []frametimer.Option{
		frametimer.WithBudget(frametimer.SectionSceneResourcesUpload, time.Duration(c.Budgets.SceneResourcesUpload)),
		frametimer.WithBudget(frametimer.SectionClientResourcesUpload, time.Duration(c.Budgets.ClientResourcesUpload)),
		frametimer.WithBudget(frametimer.SectionSceneActionsApply, time.Duration(c.Budgets.SceneActionsApply)),
		frametimer.WithBudget(frametimer.SectionOffscreenBufferRender, time.Duration(c.Budgets.OffscreenBufferRender)),
	}
	return frametimer.New(append(opts, budgets...)...)
}

// DisplayOptions returns the controller options for the configuration,
// rendering with timer as frame timer. c must be valid.
func (c Config) DisplayOptions(timer *frametimer.Timer) []display.Option {
	d := c.Display
	flags, err := ParseClearFlags(d.Clear)
	if err != nil {
		panic(err)
	}
	color := mgl32.Vec4{d.ClearColor[0], d.ClearColor[1], d.ClearColor[2], d.ClearColor[3]}
	return []display.Option{
		display.WithExecutorConfig(c.ExecutorConfig()),
		display.WithFrameTimer(timer),
		display.WithInterruptible(d.Interruptible),
		display.WithClear(flags, color),
		display.WithDepthDiscard(d.DepthDiscard),
		display.WithViewport(d.Width, d.Height),
		display.WithUniformCacheLimit(d.UniformCacheLimit),
		display.WithCallLogging(d.LogCalls),
	}
}
