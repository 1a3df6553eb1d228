package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap is an owned RGBA pixel buffer for canvas widgets. Unlike Surface
// it is long-lived application state, not a pooled paint-pass scratch
// buffer.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap allocates a pixmap of the given size, initially transparent
// black.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the pixmap dimensions.
func (p *Pixmap) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Set writes one pixel; out-of-range coordinates are ignored.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		p.img.Set(x, y, c)
	}
}

// At reads one pixel; out-of-range coordinates return opaque black.
func (p *Pixmap) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return color.RGBA{A: 0xFF}
	}
	return p.img.RGBAAt(x, y)
}

// Fill floods the pixmap with one color.
func (p *Pixmap) Fill(c color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage copies src with its top-left at the origin, cropped to the
// pixmap bounds.
func (p *Pixmap) DrawImage(src image.Image) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	r := image.Rect(0, 0, sb.Dx(), sb.Dy())
	draw.Draw(p.img, r.Intersect(p.img.Bounds()), src, sb.Min, draw.Over)
}

// Image exposes the backing image for blitting.
func (p *Pixmap) Image() *image.RGBA { return p.img }
