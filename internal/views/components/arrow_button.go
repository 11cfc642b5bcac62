package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ArrowButton is a full-area tappable surface that shows at most one image
type ArrowButton struct {
	widget.BaseWidget

	OnTapped func()

	resource fyne.Resource
}

var _ fyne.Tappable = (*ArrowButton)(nil)

// NewArrowButton creates an empty ArrowButton
func NewArrowButton(tapped func()) *ArrowButton {
	button := &ArrowButton{OnTapped: tapped}
	button.ExtendBaseWidget(button)
	return button
}

// Tapped forwards the tap to OnTapped, if set
func (b *ArrowButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// SetArrow displays res. A nil resource clears the image.
func (b *ArrowButton) SetArrow(res fyne.Resource) {
	b.resource = res
	b.Refresh()
}

// Clear removes the image
func (b *ArrowButton) Clear() {
	b.SetArrow(nil)
}

// Resource returns the image currently displayed, or nil
func (b *ArrowButton) Resource() fyne.Resource {
	return b.resource
}

// Showing returns true if an image is displayed
func (b *ArrowButton) Showing() bool {
	return b.resource != nil
}

// CreateRenderer creates the renderer for ArrowButton
func (b *ArrowButton) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	background.CornerRadius = theme.InputRadiusSize()

	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Hide()

	r := &arrowButtonRenderer{
		button:     b,
		background: background,
		image:      img,
		objects:    []fyne.CanvasObject{background, img},
	}
	r.Refresh()
	return r
}

type arrowButtonRenderer struct {
	button     *ArrowButton
	background *canvas.Rectangle
	image      *canvas.Image
	objects    []fyne.CanvasObject
}

func (r *arrowButtonRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	pad := theme.Padding() * 4
	inner := fyne.NewSize(fyne.Max(size.Width-2*pad, 0), fyne.Max(size.Height-2*pad, 0))
	r.image.Resize(inner)
	r.image.Move(fyne.NewPos(pad, pad))
}

func (r *arrowButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSize(theme.IconInlineSize()*4, theme.IconInlineSize()*4)
}

func (r *arrowButtonRenderer) Refresh() {
	r.background.FillColor = backgroundColor()
	r.background.Refresh()

	res := r.button.resource
	r.image.Resource = res
	if res == nil {
		r.image.Hide()
	} else {
		r.image.Show()
	}
	r.image.Refresh()

	r.Layout(r.button.Size())
}

func (r *arrowButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *arrowButtonRenderer) Destroy() {}

func backgroundColor() color.Color {
	return theme.Color(theme.ColorNameButton)
}
