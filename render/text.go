package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ============================================================================
// Font faces
// ============================================================================
//
// Two embedded typefaces ship with the toolkit: "go" (the default
// proportional face) and "mono". Faces are cached per (name, size) and
// shared by every window in the process, so the cache carries its own
// lock even though each window paints from a single goroutine.

const (
	// FontDefault is the proportional UI face.
	FontDefault = "go"
	// FontMono is the fixed-width face.
	FontMono = "mono"
)

type faceKey struct {
	name string
	size int
}

var fontState struct {
	mu    sync.Mutex
	refs  int
	fonts map[string]*sfnt.Font
	faces map[faceKey]font.Face
}

// Init parses the embedded typefaces. Calls are reference counted; each
// must be paired with a Shutdown.
func Init() error {
	fontState.mu.Lock()
	defer fontState.mu.Unlock()
	fontState.refs++
	if fontState.fonts != nil {
		return nil
	}
	fonts := make(map[string]*sfnt.Font, 2)
	for name, data := range map[string][]byte{
		FontDefault: goregular.TTF,
		FontMono:    gomono.TTF,
	} {
		f, err := opentype.Parse(data)
		if err != nil {
			return fmt.Errorf("render: parse font %q: %w", name, err)
		}
		fonts[name] = f
	}
	fontState.fonts = fonts
	fontState.faces = make(map[faceKey]font.Face)
	return nil
}

// Shutdown releases one Init reference; the last one drops the face cache.
func Shutdown() {
	fontState.mu.Lock()
	defer fontState.mu.Unlock()
	if fontState.refs > 0 {
		fontState.refs--
	}
	if fontState.refs > 0 {
		return
	}
	for _, f := range fontState.faces {
		f.Close()
	}
	fontState.fonts = nil
	fontState.faces = nil
}

// face returns the cached face for a (name, size) pair, falling back to
// the bitmap face when the typeface cache is unavailable.
func face(name string, size int) font.Face {
	fontState.mu.Lock()
	defer fontState.mu.Unlock()
	if fontState.fonts == nil {
		return basicfont.Face7x13
	}
	if name == "" {
		name = FontDefault
	}
	if size <= 0 {
		size = 12
	}
	key := faceKey{name: name, size: size}
	if f, ok := fontState.faces[key]; ok {
		return f
	}
	src, ok := fontState.fonts[name]
	if !ok {
		src = fontState.fonts[FontDefault]
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	fontState.faces[key] = f
	return f
}

// MeasureText returns the advance width of text in pixels.
func MeasureText(text, fontName string, size int) int {
	return font.MeasureString(face(fontName, size), text).Ceil()
}

// TextHeight returns the line height of the face in pixels.
func TextHeight(fontName string, size int) int {
	return face(fontName, size).Metrics().Height.Ceil()
}

// Text draws one line of text with its top-left corner at (x, y).
func (s *Surface) Text(x, y int, text, fontName string, size int, c color.Color) {
	f := face(fontName, size)
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: f,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + f.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// TextCentered draws one line of text centered in the rectangle.
func (s *Surface) TextCentered(r image.Rectangle, text, fontName string, size int, c color.Color) {
	w := MeasureText(text, fontName, size)
	h := TextHeight(fontName, size)
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-h)/2
	s.Text(x, y, text, fontName, size, c)
}
