package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	PlotViewportWidth  = 640
	PlotViewportHeight = 480
)

// ClickHandler receives a click in image-pixel coordinates together
// with the button discriminator (secondary = right click).
type ClickHandler func(pixelX, pixelY float64, secondary bool)

// PlotDisplay shows the loaded chart at original pixel size and
// translates taps into image-pixel click events for the engine.
type PlotDisplay struct {
	widget.BaseWidget
	image   *canvas.Image
	onClick ClickHandler
}

var _ fyne.Tappable = (*PlotDisplay)(nil)
var _ fyne.SecondaryTappable = (*PlotDisplay)(nil)

func NewPlotDisplay() *PlotDisplay {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillOriginal
	img.SetMinSize(fyne.NewSize(PlotViewportWidth, PlotViewportHeight))

	pd := &PlotDisplay{image: img}
	pd.ExtendBaseWidget(pd)
	return pd
}

func (pd *PlotDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pd.image)
}

func (pd *PlotDisplay) SetOnClick(handler ClickHandler) {
	pd.onClick = handler
}

// SetImage displays a newly loaded chart at its native size so click
// positions map one-to-one onto image pixels.
func (pd *PlotDisplay) SetImage(img image.Image) {
	if img == nil {
		return
	}
	pd.image.Image = img

	bounds := img.Bounds()
	pd.image.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	pd.image.Refresh()
	pd.Refresh()
}

func (pd *PlotDisplay) Tapped(ev *fyne.PointEvent) {
	pd.emitClick(ev, false)
}

func (pd *PlotDisplay) TappedSecondary(ev *fyne.PointEvent) {
	pd.emitClick(ev, true)
}

// emitClick converts a widget-local tap position to image pixels.
// ImageFillOriginal centers the bitmap inside the widget, so the
// centering offset is removed and taps outside the bitmap ignored.
func (pd *PlotDisplay) emitClick(ev *fyne.PointEvent, secondary bool) {
	if pd.onClick == nil || pd.image.Image == nil {
		return
	}

	bounds := pd.image.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())
	size := pd.Size()

	offsetX := (float64(size.Width) - imgW) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY := (float64(size.Height) - imgH) / 2
	if offsetY < 0 {
		offsetY = 0
	}

	x := float64(ev.Position.X) - offsetX
	y := float64(ev.Position.Y) - offsetY
	if x < 0 || y < 0 || x >= imgW || y >= imgH {
		return
	}

	pd.onClick(x, y, secondary)
}
