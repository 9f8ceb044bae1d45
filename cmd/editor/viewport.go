package main

import (
	"image"
	"image/color"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/mapmaker/editor"
	"github.com/milk9111/mapmaker/geom"
	"github.com/milk9111/mapmaker/scene"
)

var (
	gridColor   = color.RGBA{90, 90, 100, 255}
	boundsColor = color.RGBA{170, 170, 190, 255}
)

// viewportRect is the canvas area between the bars, in UI points.
func (a *App) viewportRect() geom.Rect {
	return geom.Rect{
		X:      leftBarW,
		Y:      topBarH,
		Width:  baseWidth - leftBarW - rightPanelW,
		Height: baseHeight - topBarH,
	}
}

func (a *App) dialogOpen() bool {
	s := a.ed.Session
	return s.ShowMapCreate || s.ShowLayerCreate || s.ShowMapExport
}

func (a *App) claimCursor(shape ebiten.CursorShapeType) {
	if a.cursorClaimed {
		return
	}
	ebiten.SetCursorShape(shape)
	a.cursorClaimed = true
}

// updateViewport handles wheel zoom and middle-drag panning over the canvas.
// Input is ignored while the pointer is over a widget or a dialog is open,
// except that an in-flight pan keeps following the cursor wherever it goes.
func (a *App) updateViewport() {
	rect := a.viewportRect()
	a.ed.Camera.SetViewport(rect, ebiten.Monitor().DeviceScaleFactor())

	mx, my := ebiten.CursorPosition()
	inside := rect.Contains(geom.Vec2{X: float64(mx), Y: float64(my)})
	canvasFocused := inside && !ebuiinput.UIHovered && !a.dialogOpen()

	if _, wy := ebiten.Wheel(); wy != 0 && canvasFocused {
		a.ed.Camera.ZoomBy(wy * scrollPointsPerTick)
	}

	switch {
	case a.panning:
		if panHeld(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			panModifierHeld()) {
			dx := float64(mx - a.lastMX)
			dy := float64(my - a.lastMY)
			a.ed.Camera.Pan(geom.Vec2{X: dx, Y: dy}, uiThemeScale)
			a.claimCursor(ebiten.CursorShapeMove)
		} else {
			a.panning = false
		}
	case canvasFocused:
		if panStarted(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			panModifierHeld()) {
			a.panning = true
			a.claimCursor(ebiten.CursorShapeMove)
		} else {
			a.claimCursor(ebiten.CursorShapeCrosshair)
		}
	}

	a.lastMX, a.lastMY = mx, my
}

func panModifierHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// Pans start on middle button, or primary button with ctrl/cmd held. The
// primary button sustains a pan only while the modifier stays down, so a
// middle-button pan can't be prolonged by an unrelated left press.
func panStarted(justMiddle, justLeft, modifier bool) bool {
	return justMiddle || (modifier && justLeft)
}

func panHeld(middle, left, modifier bool) bool {
	return middle || (modifier && left)
}

// drawViewport renders the map bounds and the grid overlay into the canvas
// area. World space grows upward, so Y is flipped going to the screen.
func (a *App) drawViewport(screen *ebiten.Image) {
	if !a.ed.HasMap() {
		return
	}
	rect := a.viewportRect()
	sub := screen.SubImage(image.Rect(
		int(rect.X), int(rect.Y),
		int(rect.X+rect.Width), int(rect.Y+rect.Height),
	)).(*ebiten.Image)

	cam := a.ed.Camera
	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2

	rt, ok := a.ed.World.LocalTransform(a.ed.Root())
	if !ok {
		return
	}

	m := a.ed.Map()
	bounds := geom.Rect{
		X:      rt.Translation.X,
		Y:      rt.Translation.Y,
		Width:  float64(m.GridSize.X * m.TileSize.X),
		Height: float64(m.GridSize.Y * m.TileSize.Y),
	}
	drawWorldRect(sub, cam, cx, cy, bounds, 2, boundsColor)

	grid := a.ed.GridNode()
	if !a.ed.World.Visible(grid) {
		return
	}
	gp, ok := scene.Get(a.ed.World, grid, editor.GridPreviewComponent)
	if !ok {
		return
	}
	for _, cell := range gp.Rects {
		drawWorldRect(sub, cam, cx, cy, geom.Rect{
			X:      rt.Translation.X + cell.X,
			Y:      rt.Translation.Y + cell.Y,
			Width:  cell.Width,
			Height: cell.Height,
		}, 1, gridColor)
	}
}

func drawWorldRect(dst *ebiten.Image, cam *editor.Camera, cx, cy float64, r geom.Rect, stroke float32, clr color.Color) {
	sx := cx + (r.X-cam.Translation.X)/cam.Zoom
	sy := cy - (r.Y+r.Height-cam.Translation.Y)/cam.Zoom
	vector.StrokeRect(dst,
		float32(sx), float32(sy),
		float32(r.Width/cam.Zoom), float32(r.Height/cam.Zoom),
		stroke, clr, false,
	)
}
