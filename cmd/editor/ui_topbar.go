package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/mapmaker/editor"
)

func buildTopBar(a *App, eui *editorUI, theme *widget.Theme, fontFace *text.Face) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth, topBarH),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{34, 34, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("editor"), fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	bar.AddChild(title)

	resetBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("view-reset"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Camera.Reset()
		}),
	)
	bar.AddChild(resetBtn)

	eui.gridBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("show-grid-on"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Session.ShowGrid = !a.ed.Session.ShowGrid
		}),
	)
	bar.AddChild(eui.gridBtn)

	eui.playBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("play"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Session.Request(editor.SignalPlay)
		}),
	)
	bar.AddChild(eui.playBtn)

	eui.exportBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("export-map"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.openExportWindow()
		}),
	)
	bar.AddChild(eui.exportBtn)

	menuBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("main-menu"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Session.Request(editor.SignalMainMenu)
		}),
	)
	bar.AddChild(menuBtn)

	return bar
}
