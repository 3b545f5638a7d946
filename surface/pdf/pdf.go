// Package pdf draws charts as single-page PDF documents with go-pdf/fpdf.
//
// One canvas pixel maps to one PDF point, so a 600 × 300 chart becomes a
// 600pt × 300pt page. Labels use the PDF core fonts (Times, Helvetica,
// Courier) chosen from the CSS family.
package pdf

import (
	"bytes"
	"io"
	"sync"

	"github.com/go-pdf/fpdf"
	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/surface"
)

type document struct {
	doc  *fpdf.Fpdf
	data []byte
}

// Host keeps one document per registered container.
type Host struct {
	// Logger receives style values the context could not decode.
	Logger func(message ...any)

	mu         sync.Mutex
	containers map[string]*document
}

// NewHost returns a Host with the given containers registered.
func NewHost(ids ...string) *Host {
	h := &Host{containers: make(map[string]*document)}
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

// Attach starts a new one-page document of width × height points for
// containerID.
func (h *Host) Attach(containerID string, width, height float64) (surface.Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.containers[containerID]; !ok {
		return nil, &errs.ConfigurationError{ContainerID: containerID}
	}
	if width <= 0 || height <= 0 {
		return nil, &errs.ConfigurationError{ContainerID: containerID, Reason: "page has no area"}
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	h.containers[containerID] = &document{doc: doc}
	return newContext(doc, h.Logger), nil
}

// Output writes the document of containerID. The document is finalized on
// the first call; later calls write the same bytes.
func (h *Host) Output(containerID string, w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ok := h.containers[containerID]
	if !ok {
		return &errs.ConfigurationError{ContainerID: containerID}
	}
	if d == nil {
		return &errs.ConfigurationError{ContainerID: containerID, Reason: "nothing rendered"}
	}
	if d.data == nil {
		var buf bytes.Buffer
		if err := d.doc.Output(&buf); err != nil {
			return errs.New("pdf output for", containerID, ':', err)
		}
		d.data = buf.Bytes()
	}
	_, err := w.Write(d.data)
	return err
}
