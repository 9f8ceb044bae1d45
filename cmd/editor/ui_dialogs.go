package main

import (
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/mapmaker/mapmeta"
)

func newDialogOverlay() (*widget.Container, *widget.Container) {
	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(340, 160),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{48, 48, 54, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	overlay.AddChild(dialog)
	return overlay, dialog
}

func newDialogTextInput(fontFace *text.Face, minWidth int, changed func(string)) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if changed != nil {
				changed(args.InputText)
			}
		}),
	)
}

// mapCreateDialog is the modal form behind the Create Map button.
type mapCreateDialog struct {
	Overlay     *widget.Container
	nameInput   *widget.TextInput
	widthInput  *widget.TextInput
	heightInput *widget.TextInput
	createBtn   *widget.Button
}

// parseDim reads a grid dimension; anything unparseable becomes 0, which
// fails the form's validity check and keeps Create disabled.
func parseDim(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func newMapCreateDialog(a *App, theme *widget.Theme, fontFace *text.Face) *mapCreateDialog {
	overlay, dialog := newDialogOverlay()
	d := &mapCreateDialog{Overlay: overlay}
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("create-map"), fontFace, labelColor),
	))

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("name"), fontFace, labelColor),
	))
	d.nameInput = newDialogTextInput(fontFace, 280, func(s string) {
		a.ed.Session.MapForm.Name = s
	})
	dialog.AddChild(d.nameInput)

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("grid-size"), fontFace, labelColor),
	))
	sizeRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	d.widthInput = newDialogTextInput(fontFace, 80, func(s string) {
		a.ed.Session.MapForm.Width = parseDim(s)
	})
	d.heightInput = newDialogTextInput(fontFace, 80, func(s string) {
		a.ed.Session.MapForm.Height = parseDim(s)
	})
	sizeRow.AddChild(d.widthInput)
	sizeRow.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("x", fontFace, labelColor),
	))
	sizeRow.AddChild(d.heightInput)
	dialog.AddChild(sizeRow)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	d.createBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("create"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.confirmMapCreate()
		}),
	)
	cancelBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("cancel"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Session.CloseMapCreate()
		}),
	)
	buttonsRow.AddChild(d.createBtn)
	buttonsRow.AddChild(cancelBtn)
	dialog.AddChild(buttonsRow)

	return d
}

func (d *mapCreateDialog) SetForm(form mapmeta.MapCreateForm) {
	d.nameInput.SetText(form.Name)
	d.widthInput.SetText(strconv.FormatUint(uint64(form.Width), 10))
	d.heightInput.SetText(strconv.FormatUint(uint64(form.Height), 10))
	d.nameInput.Focus(true)
}

// layerCreateDialog is the modal form behind the New Layer button.
type layerCreateDialog struct {
	Overlay     *widget.Container
	nameInput   *widget.TextInput
	kindGroup   *widget.RadioGroup
	kindButtons []*widget.Button
}

var layerKindOrder = []mapmeta.LayerKindTag{
	mapmeta.LayerKindTiles,
	mapmeta.LayerKindDecorations,
	mapmeta.LayerKindEntities,
}

func newLayerCreateDialog(a *App, theme *widget.Theme, fontFace *text.Face) *layerCreateDialog {
	overlay, dialog := newDialogOverlay()
	d := &layerCreateDialog{Overlay: overlay}
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("create-layer"), fontFace, labelColor),
	))

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("name"), fontFace, labelColor),
	))
	d.nameInput = newDialogTextInput(fontFace, 280, func(s string) {
		a.ed.Session.LayerForm.Name = s
	})
	dialog.AddChild(d.nameInput)

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(a.loc.Lookup("layer-kind"), fontFace, labelColor),
	))
	kindRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	kindKeys := []string{"tile", "decoration", "entity"}
	for _, key := range kindKeys {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.loc.Lookup(key), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
		)
		d.kindButtons = append(d.kindButtons, btn)
		kindRow.AddChild(btn)
	}
	dialog.AddChild(kindRow)

	elements := make([]widget.RadioGroupElement, 0, len(d.kindButtons))
	for _, b := range d.kindButtons {
		elements = append(elements, b)
	}
	d.kindGroup = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range d.kindButtons {
				if args.Active == b {
					a.ed.Session.LayerForm.Kind = layerKindOrder[idx]
					return
				}
			}
		}),
	)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	createBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("create"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.confirmLayerCreate()
		}),
	)
	cancelBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(a.loc.Lookup("cancel"), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.ed.Session.CloseLayerCreate()
		}),
	)
	buttonsRow.AddChild(createBtn)
	buttonsRow.AddChild(cancelBtn)
	dialog.AddChild(buttonsRow)

	return d
}

func (d *layerCreateDialog) SetForm(form mapmeta.LayerCreateForm) {
	d.nameInput.SetText(form.Name)
	for idx, tag := range layerKindOrder {
		if tag == form.Kind {
			d.kindGroup.SetActive(d.kindButtons[idx])
			break
		}
	}
	d.nameInput.Focus(true)
}
