package gamedata

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to an RGBA color.
func ParseHexColor(hex string) (color.RGBA, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHexColor converts a hex color string, panicking on error.
func MustParseHexColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
