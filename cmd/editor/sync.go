package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui/widget"
	"golang.design/x/clipboard"
)

func (a *App) openMapCreateDialog() {
	a.ed.Session.OpenMapCreate()
	a.ui.mapCreate.SetForm(a.ed.Session.MapForm)
}

func (a *App) openLayerCreateDialog() {
	if !a.ed.HasMap() {
		return
	}
	a.ed.Session.OpenLayerCreate()
	a.ui.layerCreate.SetForm(a.ed.Session.LayerForm)
}

func (a *App) confirmMapCreate() {
	if err := a.ed.ConfirmMapCreate(); err != nil {
		log.Printf("create map: %v", err)
		return
	}
	a.layersDirty = true
}

func (a *App) confirmLayerCreate() {
	if err := a.ed.ConfirmLayerCreate(); err != nil {
		log.Printf("create layer: %v", err)
		return
	}
	a.layersDirty = true
}

func (a *App) openExportWindow() {
	text, err := a.ed.ExportYAML()
	if err != nil {
		log.Printf("export map: %v", err)
		return
	}
	a.exportText = text
	a.ed.Session.ShowMapExport = true
}

func (a *App) closeExportWindow() {
	a.ed.Session.ShowMapExport = false
	a.exportText = ""
}

func (a *App) copyExport() {
	if a.exportText == "" {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(a.exportText))
	a.setStatus(a.loc.Lookup("copy") + ": " + a.loc.Lookup("map-export"))
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// syncWidgets reconciles the widget tree with the session after the frame's
// commands have been applied. Widgets never hold authoritative state; they
// mirror it here.
func (a *App) syncWidgets() {
	hasMap := a.ed.HasMap()
	session := a.ed.Session

	a.ui.playBtn.GetWidget().Disabled = !hasMap
	a.ui.exportBtn.GetWidget().Disabled = !hasMap
	a.ui.newLayerBtn.GetWidget().Disabled = !hasMap
	a.ui.toggleVisBtn.GetWidget().Disabled = !hasMap

	gridKey := "show-grid-off"
	if session.ShowGrid {
		gridKey = "show-grid-on"
	}
	if text := a.ui.gridBtn.Text(); text != nil {
		text.Label = a.loc.Lookup(gridKey)
	}

	setVisible(a.ui.noMapPanel, !hasMap)
	setVisible(a.ui.mapCreate.Overlay, session.ShowMapCreate)
	setVisible(a.ui.layerCreate.Overlay, session.ShowLayerCreate)
	setVisible(a.ui.exportWin.Overlay, session.ShowMapExport)

	a.ui.mapCreate.createBtn.GetWidget().Disabled = !session.MapForm.IsValid()

	if !hasMap {
		a.lastHasMap = false
		a.lastLayerCount = 0
		return
	}

	m := a.ed.Map()
	if !a.lastHasMap {
		a.ui.mapInfo.SetMap(
			a.loc.Lookup("name")+": "+m.Name,
			fmt.Sprintf("%s: %d x %d", a.loc.Lookup("grid-size"), m.GridSize.X, m.GridSize.Y),
		)
		a.lastHasMap = true
	}

	if a.layersDirty || len(m.Layers) != a.lastLayerCount {
		labels := make([]string, len(m.Layers))
		for i := range m.Layers {
			labels[i] = a.layerEntryLabel(i)
		}
		a.ui.layerPanel.SetEntries(labels)
		if idx := session.CurrentLayerIndex; idx >= 0 && idx < len(m.Layers) {
			a.ui.layerPanel.SetSelected(idx)
		}
		a.lastLayerCount = len(m.Layers)
		a.layersDirty = false
	}
}
