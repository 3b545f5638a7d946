//go:build !wasm
// +build !wasm

package barchart

import (
	"github.com/tinywasm/barchart/surface"
	"github.com/tinywasm/barchart/surface/raster"
)

// defaultHost draws into the shared in-memory raster host on the backend.
func defaultHost() surface.Host {
	return raster.Default
}
