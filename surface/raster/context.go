package raster

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/tinywasm/barchart/surface"
	"golang.org/x/image/font"
)

// Context maps the canvas 2D vocabulary onto a gg.Context. gg has a single
// current color, so stroke and fill colors are kept here and applied right
// before each Stroke or Fill.
type Context struct {
	dc   *gg.Context
	warn func(message ...any)

	stroke   color.Color
	fill     color.Color
	align    surface.TextAlign
	baseline surface.TextBaseline
	face     font.Face
	faces    map[faceKey]font.Face
}

func newContext(dc *gg.Context, warn func(message ...any)) *Context {
	return &Context{
		dc:       dc,
		warn:     warn,
		stroke:   color.Black,
		fill:     color.Black,
		align:    surface.AlignStart,
		baseline: surface.BaselineAlphabetic,
		face:     newFace(faceKey{size: 10}),
		faces:    make(map[faceKey]font.Face),
	}
}

func (c *Context) SetStrokeStyle(style string) { c.stroke = c.color(style) }
func (c *Context) SetFillStyle(style string)   { c.fill = c.color(style) }
func (c *Context) SetLineWidth(width float64)  { c.dc.SetLineWidth(width) }

func (c *Context) SetFont(css string) {
	f, err := surface.ParseFont(css)
	if err != nil {
		c.log("raster: font", css, err)
		return
	}
	key := keyOf(f)
	face, ok := c.faces[key]
	if !ok {
		face = newFace(key)
		c.faces[key] = face
	}
	c.face = face
}

func (c *Context) SetTextAlign(align surface.TextAlign)          { c.align = align }
func (c *Context) SetTextBaseline(baseline surface.TextBaseline) { c.baseline = baseline }

func (c *Context) BeginPath()          { c.dc.ClearPath() }
func (c *Context) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64) { c.dc.LineTo(x, y) }

func (c *Context) Rect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
}

// Stroke and Fill keep the path, as a canvas does.
func (c *Context) Stroke() {
	c.dc.SetColor(c.stroke)
	c.dc.StrokePreserve()
}

func (c *Context) Fill() {
	c.dc.SetColor(c.fill)
	c.dc.FillPreserve()
}

func (c *Context) FillText(text string, x, y float64) {
	var ax, ay float64
	switch c.align {
	case surface.AlignCenter:
		ax = 0.5
	case surface.AlignRight, surface.AlignEnd:
		ax = 1
	}
	switch c.baseline {
	case surface.BaselineTop:
		ay = 1
	case surface.BaselineMiddle:
		ay = 0.5
	}

	c.dc.SetFontFace(c.face)
	c.dc.SetColor(c.fill)
	c.dc.DrawStringAnchored(text, x, y, ax, ay)
}

func (c *Context) color(style string) color.Color {
	col, err := surface.ParseColor(style)
	if err != nil {
		c.log("raster:", err)
		return color.Black
	}
	return col
}

func (c *Context) log(message ...any) {
	if c.warn != nil {
		c.warn(message...)
	}
}
