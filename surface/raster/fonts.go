package raster

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/tinywasm/barchart/surface"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	bold, italic bool
	size         float64
}

var (
	fontsOnce sync.Once
	fonts     map[[2]bool]*truetype.Font
)

func loadFonts() {
	fonts = make(map[[2]bool]*truetype.Font)
	for key, ttf := range map[[2]bool][]byte{
		{false, false}: goregular.TTF,
		{true, false}:  gobold.TTF,
		{false, true}:  goitalic.TTF,
		{true, true}:   gobolditalic.TTF,
	} {
		// the embedded Go fonts always parse
		if f, err := truetype.Parse(ttf); err == nil {
			fonts[key] = f
		}
	}
}

func keyOf(f surface.Font) faceKey {
	return faceKey{bold: f.Bold(), italic: f.Style != surface.StyleNormal, size: f.Size}
}

// newFace builds a face for key. Sizes are pixels: at 72 DPI one point is
// one pixel. Faces cache glyphs and must not be shared between goroutines.
func newFace(key faceKey) font.Face {
	if key.size <= 0 {
		return basicfont.Face7x13
	}
	fontsOnce.Do(loadFonts)
	ttf, ok := fonts[[2]bool{key.bold, key.italic}]
	if !ok {
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: key.size, DPI: 72})
}
