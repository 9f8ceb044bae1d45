package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/mapmaker/editor"
	"github.com/milk9111/mapmaker/localization"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModeEditing
)

const (
	baseWidth   = 1280
	baseHeight  = 720
	topBarH     = 48
	leftBarW    = 56
	rightPanelW = 260

	// uiThemeScale converts UI points to world units when panning.
	uiThemeScale = 1.0
	// scrollPointsPerTick converts wheel ticks to scroll points.
	scrollPointsPerTick = 20.0

	statusDuration = 4 * time.Second
)

// App is the ebiten shell around the editor core: it owns the mode switch
// between the menu and the editing session, routes pointer input to the
// camera, and keeps the widget tree in sync with the session state.
type App struct {
	ed      *editor.Editor
	loc     *localization.Table
	watcher *localization.Watcher

	mode Mode
	menu *menuUI
	ui   *editorUI

	exportText string

	status      string
	statusUntil time.Time

	// cursorClaimed is reset every frame; the first writer wins so the
	// viewport never overrides a cursor another widget already set.
	cursorClaimed bool

	panning        bool
	lastMX, lastMY int

	lastHasMap     bool
	lastLayerCount int
	layersDirty    bool

	quit bool
}

func NewApp(table *localization.Table, watcher *localization.Watcher) *App {
	a := &App{
		ed:      editor.New(),
		loc:     table,
		watcher: watcher,
	}
	a.menu = buildMenuUI(a)
	a.ui = buildEditorUI(a)
	return a
}

func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	a.pollLocale()

	if a.mode == ModeMenu {
		a.menu.ui.Update()
		return nil
	}

	a.cursorClaimed = false
	a.ui.ui.Update()
	a.updateViewport()
	if !a.cursorClaimed {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	for _, sig := range a.ed.Session.DrainSignals() {
		a.handleSignal(sig)
	}

	if a.ed.EndFrame() > 0 {
		a.layersDirty = true
	}
	a.syncWidgets()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.mode == ModeMenu {
		screen.Fill(color.RGBA{24, 24, 28, 255})
		a.menu.ui.Draw(screen)
		return
	}

	screen.Fill(color.RGBA{24, 24, 28, 255})
	a.drawViewport(screen)
	a.ui.ui.Draw(screen)
	a.drawReadouts(screen)
	if a.ed.Session.ShowMapExport {
		a.drawExportText(screen)
	}
	a.drawStatus(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (a *App) enterEditor() {
	a.ed.EnterEditing()
	a.mode = ModeEditing
	a.layersDirty = true
}

func (a *App) handleSignal(sig editor.Signal) {
	switch sig {
	case editor.SignalPlay:
		// The editor only requests play; a standalone editor has no game
		// host to hand the map to.
		a.setStatus(a.loc.Lookup("play-unavailable"))
	case editor.SignalMainMenu:
		a.ed.ExitEditing()
		a.mode = ModeMenu
	}
}

func (a *App) pollLocale() {
	if a.watcher == nil {
		return
	}
	select {
	case path, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("locale reload %s: %v", path, err)
			return
		}
		if err := a.loc.LoadBytes(data); err != nil {
			log.Printf("locale reload %s: %v", path, err)
			return
		}
		log.Printf("reloaded locale strings from %s", path)
	case err, ok := <-a.watcher.Errors:
		if ok && err != nil {
			log.Printf("locale watcher: %v", err)
		}
	default:
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = time.Now().Add(statusDuration)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	if a.status == "" || time.Now().After(a.statusUntil) {
		return
	}
	ebitenutil.DebugPrintAt(screen, a.status, leftBarW+8, baseHeight-24)
}

func (a *App) drawReadouts(screen *ebiten.Image) {
	cam := a.ed.Camera
	offset := a.loc.Lookup(fmt.Sprintf("view-offset?x=%.0f&y=%.0f", cam.Translation.X, cam.Translation.Y))
	zoom := a.loc.Lookup(fmt.Sprintf("view-zoom?percent=%.0f", cam.ZoomPercent()))
	ebitenutil.DebugPrintAt(screen, offset+"   "+zoom, leftBarW+8, topBarH+4)
}
