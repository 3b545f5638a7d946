package surface

import (
	"image/color"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tinywasm/fmt"
)

// ParseColor decodes a CSS color: hex, rgb(), rgba(), hsl() and the named
// colors. Channel values outside their range are clamped, as browsers do.
func ParseColor(style string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(fmt.Convert(strings.TrimSpace(style)).ToLower().String())
	if err != nil {
		return color.NRGBA{}, fmt.Errf("unsupported color '%s'", style)
	}
	return color.NRGBA{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)}, nil
}

// unit maps a [0, 1] channel onto a byte.
func unit(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
