//go:build wasm
// +build wasm

// Package canvas attaches charts to page elements as HTML <canvas> nodes and
// draws through their CanvasRenderingContext2D.
package canvas

import (
	"math/rand/v2"
	"strconv"
	"syscall/js"

	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/surface"
)

// Host resolves container ids with document.getElementById.
type Host struct{}

// Attach replaces the children of the element with id containerID by a new
// width × height canvas. A missing element, or a browser without a 2D
// context, leaves the page untouched.
func (Host) Attach(containerID string, width, height float64) (surface.Context, error) {
	document := js.Global().Get("document")
	if document.IsUndefined() {
		return nil, &errs.ConfigurationError{ContainerID: containerID, Reason: "no document"}
	}
	container := document.Call("getElementById", containerID)
	if container.IsNull() || container.IsUndefined() {
		return nil, &errs.ConfigurationError{ContainerID: containerID}
	}

	canvas := document.Call("createElement", "canvas")
	canvas.Set("id", containerID+"-"+strconv.FormatUint(rand.Uint64(), 36))
	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, &errs.ConfigurationError{ContainerID: containerID, Reason: "2d context unavailable"}
	}

	// clean container
	container.Set("innerHTML", "")
	container.Call("appendChild", canvas)

	return &Context{v: ctx}, nil
}

// Context forwards every call to a CanvasRenderingContext2D.
type Context struct {
	v js.Value
}

func (c *Context) SetStrokeStyle(style string) { c.v.Set("strokeStyle", style) }
func (c *Context) SetFillStyle(style string)   { c.v.Set("fillStyle", style) }
func (c *Context) SetLineWidth(width float64)  { c.v.Set("lineWidth", width) }
func (c *Context) SetFont(font string)         { c.v.Set("font", font) }
func (c *Context) SetTextAlign(a surface.TextAlign) {
	c.v.Set("textAlign", string(a))
}
func (c *Context) SetTextBaseline(b surface.TextBaseline) {
	c.v.Set("textBaseline", string(b))
}
func (c *Context) BeginPath()              { c.v.Call("beginPath") }
func (c *Context) MoveTo(x, y float64)     { c.v.Call("moveTo", x, y) }
func (c *Context) LineTo(x, y float64)     { c.v.Call("lineTo", x, y) }
func (c *Context) Rect(x, y, w, h float64) { c.v.Call("rect", x, y, w, h) }
func (c *Context) Stroke()                 { c.v.Call("stroke") }
func (c *Context) Fill()                   { c.v.Call("fill") }
func (c *Context) FillText(text string, x, y float64) {
	c.v.Call("fillText", text, x, y)
}
