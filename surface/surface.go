// Package surface defines the 2D immediate-mode drawing capability a chart
// renders onto, and the hosts that attach such a surface to a container.
//
// The vocabulary follows the HTML canvas 2D context: style assignment,
// path construction, stroke/fill and text rendering with font, alignment and
// baseline properties. Style values are CSS strings ("#b1b1b1",
// "rgba(10, 20, 30, 0.3)", "normal 300 12px times"); hosts that do not speak
// CSS natively decode them with ParseColor and ParseFont.
package surface

// TextAlign is the horizontal anchor of FillText relative to x.
type TextAlign string

const (
	AlignStart  TextAlign = "start"
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
	AlignEnd    TextAlign = "end"
)

// TextBaseline is the vertical anchor of FillText relative to y.
type TextBaseline string

const (
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineTop        TextBaseline = "top"
	BaselineMiddle     TextBaseline = "middle"
	BaselineBottom     TextBaseline = "bottom"
)

// Context is a 2D immediate-mode drawing context. The current path survives
// Stroke and Fill and is only discarded by BeginPath.
type Context interface {
	SetStrokeStyle(style string)
	SetFillStyle(style string)
	SetLineWidth(width float64)
	SetFont(font string)
	SetTextAlign(align TextAlign)
	SetTextBaseline(baseline TextBaseline)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	Stroke()
	Fill()

	FillText(text string, x, y float64)
}

// Host creates a fresh width × height surface, attaches it to the container
// named containerID replacing whatever the container held, and returns its
// drawing context. An unknown container yields *errs.ConfigurationError and
// leaves every container untouched.
type Host interface {
	Attach(containerID string, width, height float64) (Context, error)
}
