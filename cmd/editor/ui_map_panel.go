package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LayerEntry is a small value used by the UI list to represent a layer row.
type LayerEntry struct {
	Index int
	Label string
}

// LayerPanel holds the layer list widget and small helpers used by the
// editor UI.
type LayerPanel struct {
	list    *widget.List
	entries []any
	// suppressEvents, when true, causes the selection handler to ignore
	// programmatic selections.
	suppressEvents bool
}

func (lp *LayerPanel) SetEntries(labels []string) {
	if lp == nil || lp.list == nil {
		return
	}
	lp.suppressEvents = true
	entries := make([]any, len(labels))
	for i, label := range labels {
		entries[i] = LayerEntry{Index: i, Label: label}
	}
	lp.entries = entries
	lp.list.SetEntries(entries)
	lp.suppressEvents = false
}

func (lp *LayerPanel) SetSelected(idx int) {
	if lp == nil || lp.list == nil || idx < 0 || idx >= len(lp.entries) {
		return
	}
	lp.suppressEvents = true
	lp.list.SetSelectedEntry(lp.entries[idx])
	lp.suppressEvents = false
}

// mapInfoSection shows the open map's name and grid size. Both are
// immutable after creation, so it is populated once.
type mapInfoSection struct {
	container *widget.Container
	fontFace  *text.Face
	populated bool
}

func (m *mapInfoSection) SetMap(name, gridSize string) {
	if m == nil || m.populated {
		return
	}
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	m.container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, m.fontFace, labelColor),
	))
	m.container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(gridSize, m.fontFace, labelColor),
	))
	m.container.RequestRelayout()
	m.populated = true
}

func buildMapPanel(a *App, eui *editorUI, theme *widget.Theme, fontFace *text.Face) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelW, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{34, 34, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			),
		),
	)

	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("map-info"), fontFace, labelColor),
	))

	infoContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	panel.AddChild(infoContainer)
	eui.mapInfo = &mapInfoSection{container: infoContainer, fontFace: fontFace}

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("layers"), fontFace, labelColor),
	))

	layerPanel := &LayerPanel{}
	layerList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(LayerEntry); ok {
				return entry.Label
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(LayerEntry)
			if !ok || layerPanel.suppressEvents {
				return
			}
			a.ed.Session.SelectLayer(entry.Index)
		}),
	)
	layerPanel.list = layerList
	panel.AddChild(layerList)
	eui.layerPanel = layerPanel

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	eui.newLayerBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("create-layer"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.openLayerCreateDialog()
		}),
	)
	eui.toggleVisBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("toggle-visibility"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sel, ok := layerList.SelectedEntry().(LayerEntry)
			if !ok {
				return
			}
			a.ed.Session.ToggleLayerHidden(sel.Index)
			a.layersDirty = true
		}),
	)
	buttonsRow.AddChild(eui.newLayerBtn)
	buttonsRow.AddChild(eui.toggleVisBtn)
	panel.AddChild(buttonsRow)

	return panel
}

func buildNoMapPanel(a *App, theme *widget.Theme, fontFace *text.Face) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(12),
			),
		),
	)

	openBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("open-map"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.setStatus(a.loc.Lookup("open-map-unimplemented"))
		}),
	)
	createBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("create-map"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.openMapCreateDialog()
		}),
	)

	panel.AddChild(openBtn)
	panel.AddChild(createBtn)
	return panel
}

// layerEntryLabel composes the row text for one layer: kind icon, name,
// visibility marker.
func (a *App) layerEntryLabel(idx int) string {
	m := a.ed.Map()
	if m == nil || idx >= len(m.Layers) {
		return ""
	}
	layer := m.Layers[idx]
	icon := a.loc.Lookup(string(layer.Kind.Tag()) + "-layer-icon")
	eye := a.loc.Lookup("layer-visible-icon")
	if a.ed.Session.LayerHidden(idx) {
		eye = a.loc.Lookup("layer-hidden-icon")
	}
	name := layer.Name
	if name == "" {
		name = fmt.Sprintf("Layer %d", idx)
	}
	return fmt.Sprintf("%s %s %s", icon, name, eye)
}
