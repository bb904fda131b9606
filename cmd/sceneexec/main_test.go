package main

import (
	"reflect"
	"testing"

	"github.com/gogpu/sceneexec/display"
	"github.com/gogpu/sceneexec/frametimer"
	"github.com/gogpu/sceneexec/recording"
)

func TestDemoScene_RendersFrames(t *testing.T) {
	tests := []struct {
		name   string
		opts   []display.Option
		slices []int
	}{
		{"unlimited budget", nil, []int{1, 1}},
		{"exhausted budget", []display.Option{
			display.WithFrameTimer(frametimer.New(frametimer.WithBudget(frametimer.SectionOffscreenBufferRender, 0))),
			display.WithInterruptible(true),
		}, []int{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(0)
			c := display.New(rec, append(tt.opts, display.WithViewport(320, 240))...)
			sc := demoScene(c.Device(), 320, 240, 25)

			if got := renderFrames(c, sc, 2); !reflect.DeepEqual(got, tt.slices) {
				t.Errorf("renderFrames() = %v, want %v", got, tt.slices)
			}

			r := rec.FinishRecording()
			counts := []struct {
				typ  recording.CommandType
				want int
			}{
				{recording.CmdDrawIndexedTriangles, 50},
				{recording.CmdDrawTriangles, 2},
				{recording.CmdClear, 4},
				{recording.CmdDiscardDepthStencil, 2},
				{recording.CmdBlitRenderTargets, 2},
			}
			for _, cnt := range counts {
				if got := r.Count(cnt.typ); got != cnt.want {
					t.Errorf("%v count = %d, want %d", cnt.typ, got, cnt.want)
				}
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	rec := recording.NewRecorder(0)
	c := display.New(rec, display.WithCallLogging(true))
	if got := recorder(c.Device()); got != rec {
		t.Errorf("recorder(logging device) = %p, want %p", got, rec)
	}
	if got := recorder(display.New(rec).Device()); got != rec {
		t.Errorf("recorder(recorder) = %p, want %p", got, rec)
	}
}
