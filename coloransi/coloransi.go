// Package coloransi renders 24-bit terminal colors for the rating display.
// Logger prefixes use gologger's coloransi; this package covers the exact
// RGB pairs the color maps are defined with.
package coloransi

import (
	"fmt"
	"strings"
)

// ColorCode packs an RGB color into the upper 24 bits, the same layout gologger uses
type ColorCode uint32

// RGB creates a ColorCode from RGB values
func RGB(r, g, b uint8) ColorCode {
	return ColorCode(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

func (c ColorCode) GetRGB() (uint8, uint8, uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8)
}

// Hex returns the color as #rrggbb
func (c ColorCode) Hex() string {
	r, g, b := c.GetRGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Luminance is the relative luminance in [0,1]
// See: https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c ColorCode) Luminance() float64 {
	r, g, b := c.GetRGB()
	return 0.2126*float64(r)/255 + 0.7152*float64(g)/255 + 0.0722*float64(b)/255
}

// Contrast picks black or white text for a background of color c
func (c ColorCode) Contrast() ColorCode {
	if c.Luminance() > 0.5 {
		return Black
	}
	return White
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

func join(v []interface{}) string {
	args := make([]string, len(v))
	for i, arg := range v {
		args[i] = fmt.Sprint(arg)
	}
	return strings.Join(args, " ")
}

// OneForeground returns the escape sequence selecting c as text color
func OneForeground(c ColorCode) string {
	r, g, b := c.GetRGB()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// OneBackground returns the escape sequence selecting c as background color
func OneBackground(c ColorCode) string {
	r, g, b := c.GetRGB()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// Reset returns the ANSI escape sequence to reset the text color.
func Reset() string {
	return "\033[0m"
}

// Foreground formats the given text with the specified foreground color.
func Foreground(fg ColorCode, v ...interface{}) string {
	return OneForeground(fg) + join(v) + Reset()
}

// Color formats the given text with the specified foreground and background colors.
func Color(fg, bg ColorCode, v ...interface{}) string {
	return OneForeground(fg) + OneBackground(bg) + join(v) + Reset()
}

// Badge draws text on bg with whichever of black or white reads better
func Badge(bg ColorCode, v ...interface{}) string {
	return Color(bg.Contrast(), bg, v...)
}
