// Command sceneexec renders a demo scene through a display controller and
// reports the device calls it produced.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sceneexec"
	"github.com/gogpu/sceneexec/config"
	"github.com/gogpu/sceneexec/device"
	"github.com/gogpu/sceneexec/display"
	"github.com/gogpu/sceneexec/recording"
	"github.com/gogpu/sceneexec/scene"
)

func main() {
	var (
		configPath  = flag.String("config", "", "TOML configuration file")
		deviceName  = flag.String("device", "", "registered device, overrides the configuration")
		frames      = flag.Int("frames", 3, "number of frames to render")
		renderables = flag.Int("renderables", 64, "renderables per pass")
		printConfig = flag.Bool("print-config", false, "print the effective configuration and exit")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sceneexec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if *deviceName != "" {
		cfg.Display.Device = *deviceName
	}
	if *printConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			log.Fatalf("Failed to encode configuration: %v", err)
		}
		return
	}

	timer := cfg.FrameTimer()
	c, err := display.Open(cfg.Display.Device, device.NullHost{}, cfg.DisplayOptions(timer)...)
	if err != nil {
		log.Fatalf("Failed to open display (devices: %v): %v", device.Devices(), err)
	}

	sc := demoScene(c.Device(), cfg.Display.Width, cfg.Display.Height, *renderables)
	for frame, parts := range renderFrames(c, sc, *frames) {
		log.Printf("Frame %d rendered in %d slice(s)\n", frame, parts)
	}

	stats := c.Stats()
	log.Printf("Frames %d, executions %d, interruptions %d, invalidations %d\n",
		stats.Frames, stats.SceneExecutions, stats.Interruptions, stats.Invalidations)

	if rec := recorder(c.Device()); rec != nil {
		printHistogram(rec.FinishRecording())
	}
}

// renderFrames renders frames frames of sc and returns the number of
// RenderScene calls each frame needed.
func renderFrames(c *display.Controller, sc *scene.Scene, frames int) []int {
	counts := make([]int, 0, frames)
	for range frames {
		c.BeginFrame()
		n := 1
		for !c.RenderScene(sc) {
			n++
		}
		counts = append(counts, n)
	}
	return counts
}

// demoScene builds an offscreen pass into a multisampled target, a blit of
// its color buffer into the display buffer and an overlay pass on top.
func demoScene(dev device.Device, width, height uint32, n int) *scene.Scene {
	b := scene.NewBuilder(1)
	aspect := float32(width) / float32(max(height, 1))
	viewport := device.Rect{Width: width, Height: height}

	color := b.RenderBuffer(scene.RenderBuffer{
		Width:        width,
		Height:       height,
		Format:       gputypes.TextureFormatRGBA8Unorm,
		Type:         scene.BufferTypeColor,
		SampleCount:  4,
		DeviceHandle: 11,
	})
	depth := b.RenderBuffer(scene.RenderBuffer{
		Width:        width,
		Height:       height,
		Format:       gputypes.TextureFormatDepth24PlusStencil8,
		Type:         scene.BufferTypeDepthStencil,
		Access:       scene.AccessWriteOnly,
		SampleCount:  4,
		DeviceHandle: 12,
	})
	const offscreenTarget device.ResourceHandle = 10
	rt := b.RenderTarget(offscreenTarget, color, depth)

	world := b.Camera(scene.Camera{
		Projection: scene.Perspective(60, aspect, 0.1, 100),
		Viewport:   viewport,
		World:      mgl32.Translate3D(0, 2, 12),
	})
	overlay := b.Camera(scene.Camera{
		Projection: scene.Orthographic(0, float32(width), 0, float32(height), -1, 1),
		Viewport:   viewport,
		World:      mgl32.Ident4(),
	})

	opaque := scene.DefaultRenderState()
	blended := b.RenderState(opaque)
	opaque.BlendFactors.SrcColor = gputypes.BlendFactorOne
	opaque.BlendFactors.DstColor = gputypes.BlendFactorZero
	solid := b.RenderState(opaque)

	layout := b.DataLayout(
		scene.DataField{Name: "u_mvp", Semantic: scene.SemanticModelViewProjectionMatrix, Field: 0},
		scene.DataField{Name: "u_normal", Semantic: scene.SemanticNormalMatrix, Field: 1},
		scene.DataField{Name: "u_color", Field: 2},
	)
	overlayLayout := b.DataLayout(
		scene.DataField{Name: "u_mvp", Semantic: scene.SemanticModelViewProjectionMatrix, Field: 0},
		scene.DataField{Name: "u_time", Semantic: scene.SemanticTimeMs, Field: 1},
		scene.DataField{Name: "u_resolution", Semantic: scene.SemanticDisplayBufferResolution, Field: 2},
	)

	offscreen := b.RenderPass(scene.RenderPass{
		Camera:       world,
		RenderTarget: rt,
		ClearFlags:   device.ClearFlagsAll,
		ClearColor:   mgl32.Vec4{0.1, 0.1, 0.2, 1},
		RenderOrder:  1,
	})
	res := scene.RenderableResources{Shader: 100, VertexArray: 200, Indexed: true}
	for i := range n {
		shade := float32(i) / float32(max(n, 1))
		inst := b.DataInstance(layout, nil, nil, scene.Uniform{Constant: device.Vec4s{{shade, 1 - shade, 0.5, 1}}})
		b.Renderable(offscreen, scene.Renderable{
			RenderState: solid,
			Uniforms:    inst,
			IndexCount:  36,
			World:       mgl32.Translate3D(float32(i%8)-4, 0, -float32(i/8)),
		}, res)
	}

	b.BlitPass(scene.BlitPass{
		Source:            color,
		Destination:       scene.InvalidRenderBuffer,
		SourceRegion:      viewport,
		DestinationRegion: viewport,
		RenderOrder:       2,
		SourceTarget:      offscreenTarget,
		DestinationTarget: dev.FramebufferRenderTarget(),
	})

	hud := b.RenderPass(scene.RenderPass{
		Camera:       overlay,
		RenderTarget: scene.InvalidRenderTarget,
		RenderOrder:  3,
	})
	b.Renderable(hud, scene.Renderable{
		RenderState: blended,
		Uniforms:    b.DataInstance(overlayLayout),
		StartVertex: 0,
		IndexCount:  6,
		World:       mgl32.Scale3D(float32(width), 32, 1),
	}, scene.RenderableResources{Shader: 101, VertexArray: 201})

	return b.Build()
}

// recorder returns the recording device behind dev, if any.
func recorder(dev device.Device) *recording.Recorder {
	if l, ok := dev.(*device.LoggingDevice); ok {
		dev = l.Unwrap()
	}
	rec, _ := dev.(*recording.Recorder)
	return rec
}

func printHistogram(r *recording.Recording) {
	h := r.Histogram()
	fmt.Printf("%d device calls\n", r.Len())
	for _, typ := range slices.Sorted(maps.Keys(h)) {
		fmt.Printf("  %-32s %d\n", typ, h[typ])
	}
}
