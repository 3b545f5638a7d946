package barchart

import (
	"math/rand/v2"

	"github.com/tinywasm/fmt"
)

// BarFillOpacity is the alpha of a bar's fill; its stroke is opaque.
const BarFillOpacity = 0.3

// RGB is a bar color.
type RGB struct {
	R, G, B uint8
}

// Fill is the translucent CSS fill style of the color.
func (c RGB) Fill() string {
	return fmt.Sprintf("rgba(%d, %d, %d, 0.3)", int(c.R), int(c.G), int(c.B))
}

// Stroke is the opaque CSS stroke style of the color.
func (c RGB) Stroke() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(c.R), int(c.G), int(c.B))
}

// ColorSource yields one color per bar, in bar order.
type ColorSource func() RGB

// RandomInt returns a uniform integer in [min, max).
func RandomInt(r *rand.Rand, min, max int) int {
	return r.IntN(max-min) + min
}

// RandomColors draws each channel independently and uniformly from
// [0, 255]. The upper end is 255 rather than 256: a canvas clamps 256 to
// 255 anyway, so only the distribution of the top value differs. A nil r
// uses the global generator.
func RandomColors(r *rand.Rand) ColorSource {
	if r == nil {
		r = rand.New(globalSource{})
	}
	return func() RGB {
		return RGB{
			R: uint8(RandomInt(r, 0, 256)),
			G: uint8(RandomInt(r, 0, 256)),
			B: uint8(RandomInt(r, 0, 256)),
		}
	}
}

// SeededColors is RandomColors with a reproducible sequence.
func SeededColors(seed uint64) ColorSource {
	return RandomColors(rand.New(rand.NewPCG(seed, seed)))
}

// FixedColors cycles through colors, which must not be empty.
func FixedColors(colors ...RGB) ColorSource {
	i := 0
	return func() RGB {
		c := colors[i%len(colors)]
		i++
		return c
	}
}

// globalSource adapts the package-level generator to rand.Source.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }
