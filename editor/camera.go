package editor

import "github.com/milk9111/mapmaker/geom"

const (
	zoomStep = 0.005
	minZoom  = 0.05
)

// Viewport is the on-screen rectangle, in device pixels, the world camera
// renders into. Nil means "use the full framebuffer".
type Viewport struct {
	Pos  geom.UVec2
	Size geom.UVec2
}

// Camera is the editing camera consumed by the host renderer. The editor
// owns its translation, zoom, and viewport override while editing.
type Camera struct {
	Translation geom.Vec2
	Zoom        float64
	Viewport    *Viewport
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Reset recenters the camera at the world origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.Translation = geom.Vec2{}
	c.Zoom = 1
}

// Pan applies a drag delta in UI points. UI space grows downward and world
// space grows upward, so Y is flipped.
func (c *Camera) Pan(delta geom.Vec2, uiScale float64) {
	c.Translation.X -= delta.X * uiScale * c.Zoom
	c.Translation.Y += delta.Y * uiScale * c.Zoom
}

// ZoomBy applies a scroll delta. The zoom scale has a floor but no ceiling.
func (c *Camera) ZoomBy(scrollY float64) {
	c.Zoom -= scrollY * zoomStep
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
}

// ZoomPercent is the display form of the zoom scale (100 at 1:1).
func (c *Camera) ZoomPercent() float64 {
	return 1 / c.Zoom * 100
}

// SetViewport converts a UI-space rectangle to device pixels and writes the
// camera's viewport override. Called every frame the editing viewport is
// visible.
func (c *Camera) SetViewport(rect geom.Rect, pixelsPerPoint float64) {
	c.Viewport = &Viewport{
		Pos: geom.UVec2{
			X: uint32(rect.X * pixelsPerPoint),
			Y: uint32(rect.Y * pixelsPerPoint),
		},
		Size: geom.UVec2{
			X: uint32(rect.Width * pixelsPerPoint),
			Y: uint32(rect.Height * pixelsPerPoint),
		},
	}
}

// ClearViewport removes the override so the camera renders to the full
// framebuffer again.
func (c *Camera) ClearViewport() {
	c.Viewport = nil
}
