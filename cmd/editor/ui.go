package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// editorUI holds the widget tree plus the handles syncWidgets pokes every
// frame.
type editorUI struct {
	ui *ebitenui.UI

	playBtn      *widget.Button
	exportBtn    *widget.Button
	gridBtn      *widget.Button
	newLayerBtn  *widget.Button
	toggleVisBtn *widget.Button

	mapInfo    *mapInfoSection
	layerPanel *LayerPanel
	toolBar    *ToolBar

	noMapPanel *widget.Container

	mapCreate   *mapCreateDialog
	layerCreate *layerCreateDialog
	exportWin   *exportWindow
}

func loadFontFace() text.Face {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	return &text.GoTextFace{Source: s, Size: 14}
}

func buildEditorUI(a *App) *editorUI {
	ui := &ebitenui.UI{}
	fontFace := loadFontFace()
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	eui := &editorUI{ui: ui}

	topBar := buildTopBar(a, eui, theme, &fontFace)
	topBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}

	leftBar, toolBar := buildToolStrip(a, theme, &fontFace)
	leftBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	eui.toolBar = toolBar

	rightPanel := buildMapPanel(a, eui, theme, &fontFace)
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}

	eui.noMapPanel = buildNoMapPanel(a, theme, &fontFace)
	eui.noMapPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	eui.mapCreate = newMapCreateDialog(a, theme, &fontFace)
	eui.layerCreate = newLayerCreateDialog(a, theme, &fontFace)
	eui.exportWin = newExportWindow(a, theme, &fontFace)

	root.AddChild(eui.noMapPanel)
	root.AddChild(leftBar)
	root.AddChild(rightPanel)
	root.AddChild(topBar)
	for _, overlay := range []*widget.Container{eui.mapCreate.Overlay, eui.layerCreate.Overlay, eui.exportWin.Overlay} {
		root.AddChild(overlay)
		overlay.GetWidget().LayoutData = widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
			StretchHorizontal:  true,
			StretchVertical:    true,
		}
	}

	ui.Container = root
	return eui
}

// menuUI is the placeholder host menu wrapping the editor.
type menuUI struct {
	ui *ebitenui.UI
}

func buildMenuUI(a *App) *menuUI {
	ui := &ebitenui.UI{}
	fontFace := loadFontFace()
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	menu := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 200),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 46, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(12),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			),
		),
	)
	menu.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	title := widget.NewLabel(
		widget.LabelOpts.Text("mapmaker", &fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	editorBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("editor"), &fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.enterEditor()
		}),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("quit"), &fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.quit = true
		}),
	)

	menu.AddChild(title)
	menu.AddChild(editorBtn)
	menu.AddChild(quitBtn)
	root.AddChild(menu)

	ui.Container = root
	return &menuUI{ui: ui}
}
