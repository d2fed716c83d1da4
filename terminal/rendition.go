package terminal

import (
	"strconv"
	"strings"
)

// Rendition is a complete SGR sequence (ESC [ codes m) applied to subsequent output
type Rendition struct {
	seq string
}

// NewRendition builds an SGR sequence from attribute codes.
// Blank codes are skipped; codes are joined with ';'.
func NewRendition(codes ...string) Rendition {
	var sb strings.Builder
	sb.WriteString("\x1b[")
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		sb.WriteString(code)
		sb.WriteByte(';')
	}
	seq := strings.TrimSuffix(sb.String(), ";")
	return Rendition{seq: seq + "m"}
}

// String returns the escape sequence
func (r Rendition) String() string {
	return r.seq
}

// Join concatenates the sequences of several renditions
func Join(rs ...Rendition) string {
	var sb strings.Builder
	for _, r := range rs {
		sb.WriteString(r.seq)
	}
	return sb.String()
}

// Color is one of the 8 base ANSI colors
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

// Variant selects weight, underline and intensity for a base color
type Variant uint8

const (
	Normal Variant = iota
	Bold
	Underline
	Intense
	BoldIntense
)

const (
	sgrReset     = "0"
	sgrBold      = "1"
	sgrUnderline = "4"

	fgBase        = 30
	bgBase        = 40
	intenseOffset = 60
)

// Foreground returns the rendition for a base foreground color
func Foreground(c Color, v Variant) Rendition {
	return colorRendition(fgBase+int(c), v)
}

// Background returns the rendition for a base background color
func Background(c Color, v Variant) Rendition {
	if v == Normal {
		// Plain background keeps the current foreground attributes
		return NewRendition(strconv.Itoa(bgBase + int(c)))
	}
	return colorRendition(bgBase+int(c), v)
}

func colorRendition(code int, v Variant) Rendition {
	switch v {
	case Bold:
		return NewRendition(sgrBold, strconv.Itoa(code))
	case Underline:
		return NewRendition(sgrUnderline, strconv.Itoa(code))
	case Intense:
		return NewRendition(sgrReset, strconv.Itoa(code+intenseOffset))
	case BoldIntense:
		return NewRendition(sgrBold, strconv.Itoa(code+intenseOffset))
	default:
		return NewRendition(sgrReset, strconv.Itoa(code))
	}
}

// Fg256 selects a foreground color from the xterm-256 palette
func Fg256(index uint8) Rendition {
	return NewRendition("38", "5", strconv.Itoa(int(index)))
}

// Bg256 selects a background color from the xterm-256 palette
func Bg256(index uint8) Rendition {
	return NewRendition("48", "5", strconv.Itoa(int(index)))
}

// FgRGB selects a 24-bit foreground color
func FgRGB(c RGB) Rendition {
	return NewRendition("38", "2", strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B)))
}

// BgRGB selects a 24-bit background color
func BgRGB(c RGB) Rendition {
	return NewRendition("48", "2", strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B)))
}
