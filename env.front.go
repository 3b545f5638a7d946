//go:build wasm
// +build wasm

package barchart

import (
	"github.com/tinywasm/barchart/surface"
	"github.com/tinywasm/barchart/surface/canvas"
)

// defaultHost attaches a <canvas> to the page element named by the chart's
// container id.
func defaultHost() surface.Host {
	return canvas.Host{}
}
