package pdf

import (
	"image/color"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/tinywasm/barchart/surface"
)

// Font metrics of the core fonts, as fractions of the font size.
const (
	ascent  = 0.72
	descent = 0.22
)

// Context replays canvas paths onto fpdf primitives: line segments are
// stroked with Line and rectangles with Rect. Only rectangles are filled.
type Context struct {
	doc       *fpdf.Fpdf
	warn      func(message ...any)
	translate func(string) string

	path     surface.Path
	stroke   color.NRGBA
	fill     color.NRGBA
	align    surface.TextAlign
	baseline surface.TextBaseline
	fontSize float64
}

func newContext(doc *fpdf.Fpdf, warn func(message ...any)) *Context {
	c := &Context{
		doc:       doc,
		warn:      warn,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		stroke:    color.NRGBA{A: 255},
		fill:      color.NRGBA{A: 255},
		align:     surface.AlignStart,
		baseline:  surface.BaselineAlphabetic,
		fontSize:  10,
	}
	doc.SetFont("Times", "", c.fontSize)
	return c
}

func (c *Context) SetStrokeStyle(style string) { c.stroke = c.color(style) }
func (c *Context) SetFillStyle(style string)   { c.fill = c.color(style) }
func (c *Context) SetLineWidth(width float64)  { c.doc.SetLineWidth(width) }

func (c *Context) SetFont(css string) {
	f, err := surface.ParseFont(css)
	if err != nil {
		c.log("pdf: font", css, err)
		return
	}
	style := ""
	if f.Bold() {
		style += "B"
	}
	if f.Style != surface.StyleNormal {
		style += "I"
	}
	c.fontSize = f.Size
	c.doc.SetFont(coreFamily(f.Family), style, f.Size)
}

func (c *Context) SetTextAlign(align surface.TextAlign)          { c.align = align }
func (c *Context) SetTextBaseline(baseline surface.TextBaseline) { c.baseline = baseline }

func (c *Context) BeginPath()              { c.path.Reset() }
func (c *Context) MoveTo(x, y float64)     { c.path.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64)     { c.path.LineTo(x, y) }
func (c *Context) Rect(x, y, w, h float64) { c.path.Rect(x, y, w, h) }

func (c *Context) Stroke() {
	c.doc.SetDrawColor(int(c.stroke.R), int(c.stroke.G), int(c.stroke.B))
	c.doc.SetAlpha(alpha(c.stroke), "Normal")
	for _, s := range c.path.Segments() {
		switch s.Kind {
		case surface.SegmentLine:
			c.doc.Line(s.X1, s.Y1, s.X2, s.Y2)
		case surface.SegmentRect:
			x, y, w, h := s.Normalize()
			c.doc.Rect(x, y, w, h, "D")
		}
	}
	c.doc.SetAlpha(1, "Normal")
}

func (c *Context) Fill() {
	c.doc.SetFillColor(int(c.fill.R), int(c.fill.G), int(c.fill.B))
	c.doc.SetAlpha(alpha(c.fill), "Normal")
	for _, s := range c.path.Segments() {
		if s.Kind == surface.SegmentRect {
			x, y, w, h := s.Normalize()
			c.doc.Rect(x, y, w, h, "F")
		}
	}
	c.doc.SetAlpha(1, "Normal")
}

func (c *Context) FillText(text string, x, y float64) {
	text = c.translate(text)

	switch c.align {
	case surface.AlignCenter:
		x -= c.doc.GetStringWidth(text) / 2
	case surface.AlignRight, surface.AlignEnd:
		x -= c.doc.GetStringWidth(text)
	}
	switch c.baseline {
	case surface.BaselineTop:
		y += ascent * c.fontSize
	case surface.BaselineMiddle:
		y += (ascent - descent) / 2 * c.fontSize
	case surface.BaselineBottom:
		y -= descent * c.fontSize
	}

	c.doc.SetTextColor(int(c.fill.R), int(c.fill.G), int(c.fill.B))
	c.doc.SetAlpha(alpha(c.fill), "Normal")
	c.doc.Text(x, y, text)
	c.doc.SetAlpha(1, "Normal")
}

func (c *Context) color(style string) color.NRGBA {
	col, err := surface.ParseColor(style)
	if err != nil {
		c.log("pdf:", err)
		return color.NRGBA{A: 255}
	}
	return col
}

func (c *Context) log(message ...any) {
	if c.warn != nil {
		c.warn(message...)
	}
}

func alpha(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// coreFamily maps a CSS family onto a PDF core font.
func coreFamily(family string) string {
	switch f := strings.ToLower(family); {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	case strings.Contains(f, "helvetica"), strings.Contains(f, "arial"), f == "sans-serif":
		return "Helvetica"
	default:
		return "Times"
	}
}
