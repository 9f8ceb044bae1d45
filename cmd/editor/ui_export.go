package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	exportWinW = 640
	exportWinH = 480
)

// exportWindow shows the serialized map for reading or copying. The YAML
// body is drawn over the dialog each frame; the widgets only provide the
// frame and the Copy/Close buttons.
type exportWindow struct {
	Overlay *widget.Container
}

func newExportWindow(a *App, theme *widget.Theme, fontFace *text.Face) *exportWindow {
	overlay, dialog := newDialogOverlay()
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	dialog.GetWidget().MinWidth = exportWinW
	dialog.GetWidget().MinHeight = exportWinH

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	header.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("map-export"), fontFace, labelColor),
	))
	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("copy"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.copyExport()
		}),
	)
	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("close"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.closeExportWindow()
		}),
	)
	header.AddChild(copyBtn)
	header.AddChild(closeBtn)
	dialog.AddChild(header)

	return &exportWindow{Overlay: overlay}
}

func (a *App) drawExportText(screen *ebiten.Image) {
	x := (baseWidth - exportWinW) / 2
	y := (baseHeight-exportWinH)/2 + 48
	ebitenutil.DebugPrintAt(screen, a.exportText, x+16, y)
}
