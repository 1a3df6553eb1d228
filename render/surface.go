// Package render is a software drawing layer over image.RGBA. It supplies
// the primitive set the widget toolkit paints with: filled and outlined
// rectangles, rounded rectangles, ellipses, polygons, line segments,
// single-line text, and stretch blits, plus pooled off-screen surfaces
// for double buffering.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Surface is a drawable pixel buffer. Coordinates are surface pixels with
// a top-left origin; drawing outside the bounds is clipped.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// RGBA exposes the backing image.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Fill floods the whole surface with one color.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills the rectangle, clipped to the surface.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeRect draws a one-pixel rectangle outline.
func (s *Surface) StrokeRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	s.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	s.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	s.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	s.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// FillRoundedRect fills a rectangle with quarter-circle corners of the
// given radius. The radius is clamped to half the shorter side.
func (s *Surface) FillRoundedRect(r image.Rectangle, radius int, c color.Color) {
	if r.Empty() {
		return
	}
	if m := minInt(r.Dx(), r.Dy()) / 2; radius > m {
		radius = m
	}
	if radius <= 0 {
		s.FillRect(r, c)
		return
	}
	fr := float32(radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		inset := 0
		if y < r.Min.Y+radius || y >= r.Max.Y-radius {
			var dy float32
			if y < r.Min.Y+radius {
				dy = float32(r.Min.Y+radius-y) - 0.5
			} else {
				dy = float32(y-(r.Max.Y-radius)) + 0.5
			}
			if dy > fr {
				dy = fr
			}
			inset = radius - int(math32.Sqrt(fr*fr-dy*dy))
		}
		s.FillRect(image.Rect(r.Min.X+inset, y, r.Max.X-inset, y+1), c)
	}
}

// FillEllipse fills the ellipse inscribed in the rectangle.
func (s *Surface) FillEllipse(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	cx := float32(r.Min.X) + rx
	cy := float32(r.Min.Y) + ry
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := (float32(y) + 0.5 - cy) / ry
		rem := 1 - dy*dy
		if rem <= 0 {
			continue
		}
		half := rx * math32.Sqrt(rem)
		s.FillRect(image.Rect(int(cx-half), y, int(cx+half)+1, y+1), c)
	}
}

// StrokeEllipse draws a one-pixel ellipse outline inscribed in the
// rectangle, stepping the parametric form.
func (s *Surface) StrokeEllipse(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	rx := float32(r.Dx()-1) / 2
	ry := float32(r.Dy()-1) / 2
	cx := float32(r.Min.X) + rx
	cy := float32(r.Min.Y) + ry
	steps := 4 * (r.Dx() + r.Dy())
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		t := 2 * math32.Pi * float32(i) / float32(steps)
		x := int(cx + rx*math32.Cos(t) + 0.5)
		y := int(cy + ry*math32.Sin(t) + 0.5)
		s.setPixel(x, y, c)
	}
}

// FillPolygon fills a polygon by even-odd scanline intersection.
func (s *Surface) FillPolygon(pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	xs := make([]float32, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		fy := float32(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float32(a.Y), float32(b.Y)
			if (ay <= fy) == (by <= fy) {
				continue
			}
			t := (fy - ay) / (by - ay)
			xs = append(xs, float32(a.X)+t*float32(b.X-a.X))
		}
		sortFloat32(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			s.FillRect(image.Rect(int(xs[i]+0.5), y, int(xs[i+1]+0.5)+1, y+1), c)
		}
	}
}

// Line draws a one-pixel segment from (x0,y0) to (x1,y1).
func (s *Surface) Line(x0, y0, x1, y1 int, c color.Color) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Blit stretches src to fill the destination rectangle using
// nearest-neighbor scaling.
func (s *Surface) Blit(r image.Rectangle, src image.Image) {
	if r.Empty() || src == nil || src.Bounds().Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(s.img, r.Intersect(s.img.Bounds()), src, src.Bounds(), xdraw.Over, nil)
}

// BlitRGB stretches a packed 24-bit RGB buffer of the given pixel
// dimensions into the destination rectangle.
func (s *Surface) BlitRGB(r image.Rectangle, pix []byte, width, height int) {
	if width <= 0 || height <= 0 || len(pix) < width*height*3 {
		return
	}
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		src.Pix[i*4+0] = pix[i*3+0]
		src.Pix[i*4+1] = pix[i*3+1]
		src.Pix[i*4+2] = pix[i*3+2]
		src.Pix[i*4+3] = 0xFF
	}
	s.Blit(r, src)
}

// CopyTo copies the whole surface onto dst in one operation; this is the
// double-buffer present.
func (s *Surface) CopyTo(dst *image.RGBA) {
	if dst.Bounds() == s.img.Bounds() && dst.Stride == s.img.Stride {
		copy(dst.Pix, s.img.Pix)
		return
	}
	draw.Draw(dst, dst.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
}

func (s *Surface) setPixel(x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		s.img.Set(x, y, c)
	}
}

// ============================================================================
// Surface pooling
// ============================================================================
//
// A paint pass acquires its off-screen surface here and releases it on
// every exit path. Pixel storage is recycled when the requested size fits
// the pooled buffer's capacity.

var surfacePool = sync.Pool{
	New: func() any { return &Surface{} },
}

// Acquire returns a surface of exactly the requested size, reusing pooled
// pixel storage when possible. Callers must Release it before the paint
// pass returns.
func Acquire(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := surfacePool.Get().(*Surface)
	need := 4 * width * height
	if s.img != nil && cap(s.img.Pix) >= need {
		s.img = &image.RGBA{
			Pix:    s.img.Pix[:need],
			Stride: 4 * width,
			Rect:   image.Rect(0, 0, width, height),
		}
		return s
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return s
}

// Release returns a surface to the pool.
func Release(s *Surface) {
	if s == nil {
		return
	}
	surfacePool.Put(s)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortFloat32 is a small insertion sort; polygon scanlines intersect a
// handful of edges at most.
func sortFloat32(xs []float32) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
