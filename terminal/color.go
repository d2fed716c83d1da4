package terminal

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode is the richest color model a terminal accepts
type ColorMode uint8

const (
	ColorModeBasic     ColorMode = iota // 8/16 base colors only
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	default:
		return "basic"
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses "#rrggbb" (or "#rgb") into an RGB value
func ParseRGB(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// toColorful returns the color in go-colorful's float RGB space
func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// xterm-256 palette entries 16-255: the 6x6x6 cube, then the gray ramp
var (
	cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}
	palette256 [240]colorful.Color
)

func init() {
	for i := range 216 {
		palette256[i] = RGB{cubeLevels[i/36], cubeLevels[i/6%6], cubeLevels[i%6]}.toColorful()
	}
	for i := range 24 {
		v := uint8(8 + 10*i)
		palette256[216+i] = RGB{v, v, v}.toColorful()
	}
}

// To256 returns the perceptually nearest xterm-256 palette index (16-255).
// The 16 base colors are skipped: terminals remap them freely.
func (c RGB) To256() uint8 {
	target := c.toColorful()
	best, bestDist := 0, math.MaxFloat64
	for i, p := range palette256 {
		if d := target.DistanceLab(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(16 + best)
}

// DetectColorMode combines the queried color count with environment hints.
// colors is the result of QueryColors; -1 means unknown.
func DetectColorMode(colors int) ColorMode {
	if trueColorEnv() || colors >= 1<<24 {
		return ColorModeTrueColor
	}
	if colors >= 256 {
		return ColorMode256
	}
	if colors < 0 && strings.Contains(os.Getenv("TERM"), "256color") {
		return ColorMode256
	}
	return ColorModeBasic
}

// trueColorEnv reports 24-bit support advertised through COLORTERM or TERM
func trueColorEnv() bool {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit", "24-bit":
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.HasSuffix(term, "-truecolor") || strings.HasSuffix(term, "-direct")
}
