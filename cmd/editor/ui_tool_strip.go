package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Tool is the active canvas tool. Tools are an affordance only; painting is
// owned by the content systems.
type Tool int

const (
	ToolSelect Tool = iota
	ToolTile
	ToolSpawn
	ToolErase
)

// ToolBar contains the radio-group state for the tool strip buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	active  Tool
}

func (tb *ToolBar) Active() Tool {
	if tb == nil {
		return ToolSelect
	}
	return tb.active
}

func buildToolStrip(a *App, theme *widget.Theme, fontFace *text.Face) (*widget.Container, *ToolBar) {
	toolKeys := []string{"tool-select", "tool-tile", "tool-spawn", "tool-erase"}

	strip := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftBarW, 200),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{34, 34, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			),
		),
	)

	tb := &ToolBar{}
	for _, key := range toolKeys {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.loc.Lookup(key), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(leftBarW-8, 36),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		strip.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range tb.buttons {
				if args.Active == b {
					tb.active = Tool(idx)
					return
				}
			}
		}),
	)
	tb.group.SetActive(tb.buttons[0])

	return strip, tb
}
