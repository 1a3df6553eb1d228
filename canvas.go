package softgui

import (
	"image"
	"image/color"

	"github.com/agiangrant/softgui/render"
)

// Canvas owns a raw pixel buffer whose dimensions are independent of the
// widget geometry; drawing stretches the buffer to fill the geometry.

// CanvasSize returns the pixel buffer dimensions.
func (w *Widget) CanvasSize() (int, int) {
	if w.canvas == nil {
		return 0, 0
	}
	return w.canvas.Size()
}

// SetPixel writes one pixel in buffer coordinates. Out-of-range writes
// are dropped.
func (w *Widget) SetPixel(x, y int, c color.Color) {
	if w.canvas == nil {
		return
	}
	w.canvas.Set(x, y, c)
	w.MarkDirty()
}

// Pixel reads one pixel in buffer coordinates.
func (w *Widget) Pixel(x, y int) color.Color {
	if w.canvas == nil {
		return color.RGBA{}
	}
	return w.canvas.At(x, y)
}

// Clear floods the whole buffer with one color.
func (w *Widget) Clear(c color.Color) {
	if w.canvas == nil {
		return
	}
	w.canvas.Fill(c)
	w.MarkDirty()
}

// DrawImage copies an image into the buffer at (0,0), cropping to the
// buffer bounds. Decoding is the caller's concern; the canvas only takes
// finished pixels.
func (w *Widget) DrawImage(img image.Image) {
	if w.canvas == nil || img == nil {
		return
	}
	w.canvas.DrawImage(img)
	w.MarkDirty()
}

// canvasPixmap exposes the buffer to the paint pass.
func (w *Widget) canvasPixmap() *render.Pixmap { return w.canvas }
