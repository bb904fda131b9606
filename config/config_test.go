// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/display"
	"github.com/gogpu/sceneexec/executor"
	"github.com/gogpu/sceneexec/frametimer"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := cfg.ExecutorConfig(); got != executor.DefaultConfig() {
		t.Errorf("ExecutorConfig() = %+v, want %+v", got, executor.DefaultConfig())
	}
}

func TestDecode(t *testing.T) {
	const file = `
[executor]
renderables_per_budget_check = 25

[display]
device = "recording"
width = 800
height = 600
clear_color = [0.5, 0.25, 0.0, 1.0]
interruptible = true
log_calls = true

[budgets]
offscreen_buffer_render = "8ms"
scene_actions_apply = "500us"
`
	cfg, err := Decode(strings.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Executor.RenderablesPerBudgetCheck != 25 {
		t.Errorf("RenderablesPerBudgetCheck = %d, want 25", cfg.Executor.RenderablesPerBudgetCheck)
	}
	d := cfg.Display
	if d.Device != "recording" || d.Width != 800 || d.Height != 600 || !d.Interruptible || !d.LogCalls {
		t.Errorf("Display = %+v", d)
	}
	if d.UniformCacheLimit != executor.DefaultUniformCacheLimit {
		t.Errorf("UniformCacheLimit = %d, want default %d", d.UniformCacheLimit, executor.DefaultUniformCacheLimit)
	}

	budgets := []struct {
		name string
		got  Duration
		want time.Duration
	}{
		{"offscreen", cfg.Budgets.OffscreenBufferRender, 8 * time.Millisecond},
		{"actions", cfg.Budgets.SceneActionsApply, 500 * time.Microsecond},
		{"scene upload", cfg.Budgets.SceneResourcesUpload, frametimer.Unlimited},
		{"client upload", cfg.Budgets.ClientResourcesUpload, frametimer.Unlimited},
	}
	for _, b := range budgets {
		if time.Duration(b.got) != b.want {
			t.Errorf("%s budget = %v, want %v", b.name, time.Duration(b.got), b.want)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"syntax", "[display\nwidth = 1"},
		{"unknown key", "[display]\nfullscreen = true"},
		{"unknown table", "[audio]\nvolume = 3"},
		{"bad duration", "[budgets]\noffscreen_buffer_render = \"soon\""},
		{"negative duration", "[budgets]\noffscreen_buffer_render = \"-1ms\""},
		{"zero batch", "[executor]\nrenderables_per_budget_check = 0"},
		{"empty device", "[display]\ndevice = \"\""},
		{"short clear color", "[display]\nclear_color = [1.0, 0.0]"},
		{"negative cache", "[display]\nuniform_cache_limit = -1"},
		{"clear flag", "[display]\nclear = [\"accum\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.file))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Decode() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sceneexec.toml")
	if err := os.WriteFile(path, []byte("[display]\nwidth = 64\nheight = 32\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Width != 64 || cfg.Display.Height != 32 {
		t.Errorf("size = %dx%d, want 64x32", cfg.Display.Width, cfg.Display.Height)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseClearFlags(t *testing.T) {
	tests := []struct {
		names []string
		want  device.ClearFlags
	}{
		{nil, device.ClearFlagsNone},
		{[]string{"none"}, device.ClearFlagsNone},
		{[]string{"color"}, device.ClearFlagColor},
		{[]string{"Depth", " stencil "}, device.ClearFlagDepth | device.ClearFlagStencil},
		{[]string{"all"}, device.ClearFlagsAll},
		{[]string{"color", "color"}, device.ClearFlagColor},
	}
	for _, tt := range tests {
		got, err := ParseClearFlags(tt.names)
		if err != nil {
			t.Errorf("ParseClearFlags(%q) error = %v", tt.names, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClearFlags(%q) = %v, want %v", tt.names, got, tt.want)
		}
	}
}

func TestDuration_Text(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"unlimited", frametimer.Unlimited},
		{"", frametimer.Unlimited},
		{"4ms", 4 * time.Millisecond},
		{"0s", 0},
	}
	for _, tt := range tests {
		var d Duration
		if err := d.UnmarshalText([]byte(tt.text)); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
		}
		if time.Duration(d) != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, time.Duration(d), tt.want)
		}
	}

	text, _ := Duration(frametimer.Unlimited).MarshalText()
	if string(text) != "unlimited" {
		t.Errorf("MarshalText(Unlimited) = %q", text)
	}
	text, _ = Duration(8 * time.Millisecond).MarshalText()
	if string(text) != "8ms" {
		t.Errorf("MarshalText(8ms) = %q", text)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[executor]", "[display]", "[budgets]", "renderables_per_budget_check", "unlimited"} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() output lacks %q:\n%s", want, out)
		}
	}
}

func TestFrameTimer(t *testing.T) {
	cfg := Default()
	cfg.Budgets.OffscreenBufferRender = Duration(8 * time.Millisecond)
	timer := cfg.FrameTimer()
	if got := timer.SectionTimeBudget(frametimer.SectionOffscreenBufferRender); got != 8*time.Millisecond {
		t.Errorf("offscreen budget = %v, want 8ms", got)
	}
	if got := timer.SectionTimeBudget(frametimer.SectionSceneResourcesUpload); got != frametimer.Unlimited {
		t.Errorf("upload budget = %v, want Unlimited", got)
	}
}

func TestDisplayOptions(t *testing.T) {
	cfg := Default()
	cfg.Display.Width = 320
	cfg.Display.Height = 200
	cfg.Display.Clear = []string{"color"}
	cfg.Display.ClearColor = []float32{0, 1, 0, 1}
	cfg.Display.DepthDiscard = true

	timer := cfg.FrameTimer()
	c := display.New(device.NewNullDevice(), cfg.DisplayOptions(timer)...)
	if c.Timer() != timer {
		t.Error("controller does not use the configured timer")
	}
	c.BeginFrame()
	ctx := c.Context()
	if ctx.ViewportWidth != 320 || ctx.ViewportHeight != 200 {
		t.Errorf("viewport = %dx%d, want 320x200", ctx.ViewportWidth, ctx.ViewportHeight)
	}
	if ctx.DisplayBufferClearPending != device.ClearFlagColor {
		t.Errorf("clear pending = %v, want Color", ctx.DisplayBufferClearPending)
	}
	if ctx.DisplayBufferClearColor != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("clear color = %v", ctx.DisplayBufferClearColor)
	}
	if !ctx.DisplayBufferDepthDiscard {
		t.Error("depth discard not enabled")
	}
}
