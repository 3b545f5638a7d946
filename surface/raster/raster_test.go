package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/surface"
)

func TestAttachUnknownContainer(t *testing.T) {
	h := NewHost()
	_, err := h.Attach("nope", 10, 10)
	var cfgErr *errs.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Attach error = %v; want ConfigurationError", err)
	}
	if err := h.EncodePNG("nope", &bytes.Buffer{}); !errors.As(err, &cfgErr) {
		t.Fatalf("EncodePNG error = %v; want ConfigurationError", err)
	}
}

func TestAttachZeroSize(t *testing.T) {
	h := NewHost("c")
	if _, err := h.Attach("c", 0, 10); err == nil {
		t.Fatal("Attach with zero width succeeded")
	}
	if err := h.EncodePNG("c", &bytes.Buffer{}); err == nil {
		t.Fatal("EncodePNG before any render succeeded")
	}
}

func TestDrawAndEncode(t *testing.T) {
	h := NewHost("c")
	h.Background = color.White

	ctx, err := h.Attach("c", 40.5, 20)
	if err != nil {
		t.Fatal(err)
	}

	ctx.SetFillStyle("rgb(255, 0, 0)")
	ctx.SetStrokeStyle("#0000ff")
	ctx.SetLineWidth(1)
	ctx.BeginPath()
	ctx.Rect(10, 15, 10, -10) // negative height grows upward
	ctx.Fill()
	ctx.Stroke()
	ctx.SetFont("normal 300 6px times")
	ctx.SetTextAlign(surface.AlignCenter)
	ctx.SetTextBaseline(surface.BaselineTop)
	ctx.FillText("A", 30, 2)

	img := h.Image("c")
	if img == nil {
		t.Fatal("Image returned nil after Attach")
	}
	if b := img.Bounds(); b.Dx() != 41 || b.Dy() != 20 {
		t.Errorf("image bounds = %v; want 41x20", b)
	}

	r, g, b, _ := img.At(15, 10).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("bar interior = %d,%d,%d; want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background = %d,%d,%d; want white", r>>8, g>>8, b>>8)
	}

	var buf bytes.Buffer
	if err := h.EncodePNG("c", &buf); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("encoded PNG does not decode: %v", err)
	}
}

func TestBadStylesFallBack(t *testing.T) {
	var logged []string
	h := NewHost("c")
	h.Logger = func(message ...any) { logged = append(logged, "x") }

	ctx, err := h.Attach("c", 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	ctx.SetStrokeStyle("hsl(1, 2, 3)")
	ctx.SetFont("times")
	if len(logged) != 2 {
		t.Errorf("logged %d warnings; want 2", len(logged))
	}
}
