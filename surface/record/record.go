// Package record provides a surface that records drawing calls instead of
// rasterizing them, for tests and for inspecting a render pass.
package record

import (
	"sync"

	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/surface"
)

// Op is one recorded drawing call. Text holds the string argument of style,
// font, alignment and text calls; Nums holds the numeric arguments.
type Op struct {
	Name string
	Text string
	Nums []float64
}

// Recorder is a surface.Context that appends every call to Ops.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

func (r *Recorder) add(name, text string, nums ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Text: text, Nums: nums})
}

func (r *Recorder) SetStrokeStyle(style string) { r.add("strokeStyle", style) }
func (r *Recorder) SetFillStyle(style string)   { r.add("fillStyle", style) }
func (r *Recorder) SetLineWidth(width float64)  { r.add("lineWidth", "", width) }
func (r *Recorder) SetFont(font string)         { r.add("font", font) }
func (r *Recorder) SetTextAlign(a surface.TextAlign) {
	r.add("textAlign", string(a))
}
func (r *Recorder) SetTextBaseline(b surface.TextBaseline) {
	r.add("textBaseline", string(b))
}
func (r *Recorder) BeginPath()              { r.add("beginPath", "") }
func (r *Recorder) MoveTo(x, y float64)     { r.add("moveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64)     { r.add("lineTo", "", x, y) }
func (r *Recorder) Rect(x, y, w, h float64) { r.add("rect", "", x, y, w, h) }
func (r *Recorder) Stroke()                 { r.add("stroke", "") }
func (r *Recorder) Fill()                   { r.add("fill", "") }
func (r *Recorder) FillText(text string, x, y float64) {
	r.add("fillText", text, x, y)
}

// Count returns how many recorded ops are named name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops named name, in call order.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Host hands out a fresh Recorder per Attach and keeps the latest one per
// container.
type Host struct {
	mu         sync.Mutex
	containers map[string]*Recorder
}

// NewHost returns a Host with the given containers registered.
func NewHost(ids ...string) *Host {
	h := &Host{containers: make(map[string]*Recorder)}
	for _, id := range ids {
		h.Register(id)
	}
	return h
}

// Register adds an empty container. Registering an existing id clears it.
func (h *Host) Register(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.containers[id] = nil
}

func (h *Host) Attach(containerID string, width, height float64) (surface.Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.containers[containerID]; !ok {
		return nil, &errs.ConfigurationError{ContainerID: containerID}
	}
	r := &Recorder{Width: width, Height: height}
	h.containers[containerID] = r
	return r, nil
}

// Recorder returns the surface currently attached to containerID, or nil.
func (h *Host) Recorder(containerID string) *Recorder {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.containers[containerID]
}
