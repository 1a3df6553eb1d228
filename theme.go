package softgui

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Theme carries the toolkit's shared visual and timing configuration.
// It is plain data: one struct, no cascading or per-widget styling.
type Theme struct {
	Background color.RGBA // window background
	Surface    color.RGBA // entry/list interiors
	Face       color.RGBA // button and thumb faces
	Border     color.RGBA
	Text       color.RGBA
	Accent     color.RGBA // selections, checks, slider tracks
	AccentText color.RGBA // text on accent fills

	FontName string
	FontSize int

	BlinkInterval time.Duration // caret toggle period
	EaseFactor    float32       // fraction of remaining slider distance per tick
	FPS           int
}

// DefaultTheme returns the built-in light theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{0xF0, 0xF0, 0xF0, 0xFF},
		Surface:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Face:       color.RGBA{0xE1, 0xE1, 0xE1, 0xFF},
		Border:     color.RGBA{0x70, 0x70, 0x70, 0xFF},
		Text:       color.RGBA{0x20, 0x20, 0x20, 0xFF},
		Accent:     color.RGBA{0x33, 0x66, 0xCC, 0xFF},
		AccentText: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},

		FontName: "go",
		FontSize: 12,

		BlinkInterval: 500 * time.Millisecond,
		EaseFactor:    0.25,
		FPS:           60,
	}
}

// themeFile is the TOML shape of a theme on disk. Colors are hex strings.
type themeFile struct {
	Colors struct {
		Background string `toml:"background"`
		Surface    string `toml:"surface"`
		Face       string `toml:"face"`
		Border     string `toml:"border"`
		Text       string `toml:"text"`
		Accent     string `toml:"accent"`
		AccentText string `toml:"accent_text"`
	} `toml:"colors"`
	Font struct {
		Name string `toml:"name"`
		Size int    `toml:"size"`
	} `toml:"font"`
	Timing struct {
		BlinkMs    int     `toml:"blink_ms"`
		EaseFactor float32 `toml:"ease_factor"`
		FPS        int     `toml:"fps"`
	} `toml:"timing"`
}

// LoadTheme reads a TOML theme file, layering it over DefaultTheme so a
// partial file only overrides what it names.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("read theme: %w", err)
	}
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return th, fmt.Errorf("parse theme %s: %w", path, err)
	}

	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{tf.Colors.Background, &th.Background},
		{tf.Colors.Surface, &th.Surface},
		{tf.Colors.Face, &th.Face},
		{tf.Colors.Border, &th.Border},
		{tf.Colors.Text, &th.Text},
		{tf.Colors.Accent, &th.Accent},
		{tf.Colors.AccentText, &th.AccentText},
	} {
		if c.hex == "" {
			continue
		}
		parsed, err := ParseColor(c.hex)
		if err != nil {
			return th, err
		}
		*c.dst = parsed
	}

	if tf.Font.Name != "" {
		th.FontName = tf.Font.Name
	}
	if tf.Font.Size > 0 {
		th.FontSize = tf.Font.Size
	}
	if tf.Timing.BlinkMs > 0 {
		th.BlinkInterval = time.Duration(tf.Timing.BlinkMs) * time.Millisecond
	}
	if tf.Timing.EaseFactor > 0 && tf.Timing.EaseFactor <= 1 {
		th.EaseFactor = tf.Timing.EaseFactor
	}
	if tf.Timing.FPS > 0 {
		th.FPS = tf.Timing.FPS
	}
	return th, nil
}

// ParseColor converts a "#rrggbb" hex string to an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
