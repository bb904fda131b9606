// Package scene holds the resolved, read-only scene data consumed by scene
// execution.
//
// A Scene is a set of flat tables indexed by typed handles: render passes,
// blit passes, renderables, cameras, render states, data layouts, data
// instances, texture samplers, render targets and render buffers. Every
// device resource a renderable needs has already been resolved to a
// device.ResourceHandle and is stored in the renderable's Resources entry.
//
// Passes are executed in the order returned by Scene.Passes, which sorts
// render and blit passes by their RenderOrder. Renderables of a render pass
// are pre-ordered and are never re-sorted.
//
// Scenes are usually assembled with a Builder:
//
//	b := scene.NewBuilder(1)
//	cam := b.Camera(scene.Camera{Projection: scene.Perspective(45, 4.0/3, 0.1, 100)})
//	pass := b.RenderPass(scene.RenderPass{Camera: cam, RenderTarget: scene.InvalidRenderTarget})
//	b.Renderable(pass, r, res)
//	sc := b.Build()
package scene
