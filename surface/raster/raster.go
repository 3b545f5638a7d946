// Package raster draws charts into in-memory images with fogleman/gg.
//
// Containers are plain names registered on a Host; attaching a chart to a
// container replaces its image. Text uses the Go font family (regular,
// bold, italic) at the pixel size of the requested CSS font, since no other
// TrueType data ships with the binary.
package raster

import (
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/surface"
)

// Default is the host used by barchart.New on the backend when no host is
// given.
var Default = NewHost()

// Host keeps one image per registered container.
type Host struct {
	// Background, if set, fills every freshly attached image.
	Background color.Color
	// Logger receives style values the context could not decode.
	Logger func(message ...any)

	mu         sync.Mutex
	containers map[string]*gg.Context
}

// NewHost returns a Host with the given containers registered.
func NewHost(ids ...string) *Host {
	h := &Host{containers: make(map[string]*gg.Context)}
	for _, id := range ids {
		h.Register(id)
	}
	return h
}

// Register adds an empty container, or empties an existing one.
func (h *Host) Register(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.containers[id] = nil
}

// Attach creates a width × height image (rounded up to whole pixels) for
// containerID.
func (h *Host) Attach(containerID string, width, height float64) (surface.Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.containers[containerID]; !ok {
		return nil, &errs.ConfigurationError{ContainerID: containerID}
	}
	w, ht := pixels(width), pixels(height)
	if w == 0 || ht == 0 {
		return nil, &errs.ConfigurationError{ContainerID: containerID, Reason: "surface has no pixels"}
	}

	dc := gg.NewContext(w, ht)
	if h.Background != nil {
		dc.SetColor(h.Background)
		dc.Clear()
	}
	h.containers[containerID] = dc
	return newContext(dc, h.Logger), nil
}

// Image returns the current image of containerID, or nil when nothing has
// been attached to it.
func (h *Host) Image(containerID string) image.Image {
	h.mu.Lock()
	defer h.mu.Unlock()
	if dc := h.containers[containerID]; dc != nil {
		return dc.Image()
	}
	return nil
}

// EncodePNG writes the current image of containerID as PNG.
func (h *Host) EncodePNG(containerID string, w io.Writer) error {
	h.mu.Lock()
	dc, ok := h.containers[containerID]
	h.mu.Unlock()

	if !ok {
		return &errs.ConfigurationError{ContainerID: containerID}
	}
	if dc == nil {
		return &errs.ConfigurationError{ContainerID: containerID, Reason: "nothing rendered"}
	}
	return dc.EncodePNG(w)
}

func pixels(v float64) int {
	if v <= 0 {
		return 0
	}
	n := int(v)
	if float64(n) < v {
		n++
	}
	return n
}
