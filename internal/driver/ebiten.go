package driver

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten runs the app inside an Ebitengine window. Ebitengine owns the
// native message pump and calls Update at the configured ticks-per-second,
// which doubles as the toolkit's frame timer.
type Ebiten struct{}

// NewEbiten returns the production windowing driver.
func NewEbiten() *Ebiten { return &Ebiten{} }

// Run opens the window and blocks inside Ebitengine's game loop until the
// window is closed.
func (d *Ebiten) Run(cfg Config, app App) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	}
	ebiten.SetScreenClearedEveryFrame(false)

	g := &game{
		app:    app,
		width:  cfg.Width,
		height: cfg.Height,
	}
	return ebiten.RunGame(g)
}

// SetTitle renames the native window while it is open.
func (d *Ebiten) SetTitle(title string) { ebiten.SetWindowTitle(title) }

// Resize changes the native window size while it is open.
func (d *Ebiten) Resize(width, height int) { ebiten.SetWindowSize(width, height) }

type game struct {
	app           App
	width, height int
	buf           *image.RGBA

	prevDown     bool
	lastX, lastY int
}

func (g *game) Update() error {
	cx, cy := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !g.prevDown:
		g.app.HandleEvent(Event{Type: EventPointerDown, X: cx, Y: cy})
	case down && (cx != g.lastX || cy != g.lastY):
		g.app.HandleEvent(Event{Type: EventPointerMove, X: cx, Y: cy})
	case !down && g.prevDown:
		g.app.HandleEvent(Event{Type: EventPointerUp, X: cx, Y: cy})
	}
	g.prevDown = down
	g.lastX, g.lastY = cx, cy

	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= ' ' {
			g.app.HandleEvent(Event{Type: EventChar, Char: r})
		}
	}
	// Control keys arrive as characters, matching the host convention the
	// toolkit expects ('\b' deletes, '\r' unfocuses).
	if repeating(ebiten.KeyBackspace) {
		g.app.HandleEvent(Event{Type: EventChar, Char: '\b'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.app.HandleEvent(Event{Type: EventChar, Char: '\r'})
	}
	for key, code := range arrowKeys {
		if repeating(key) {
			g.app.HandleEvent(Event{Type: EventKeyDown, Key: code})
		}
	}

	g.app.Tick(time.Now())
	return nil
}

var arrowKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyHome:       KeyHome,
	ebiten.KeyEnd:        KeyEnd,
}

// repeating reports a fresh press immediately, then repeats it after a
// half-second hold at a 1/20s cadence.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= 30 && (d-30)%3 == 0
}

func (g *game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if g.buf == nil || g.buf.Bounds().Dx() != w || g.buf.Bounds().Dy() != h {
		g.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	g.app.Paint(g.buf)
	screen.WritePixels(g.buf.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.HandleEvent(Event{Type: EventResize, Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
