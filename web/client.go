//go:build wasm

package main

import (
	"github.com/tinywasm/barchart/env"
	"github.com/tinywasm/barchart/web/ui"
)

func main() {
	env.Logger("barchart client starting...")

	ui.Setup()

	// data.json is served next to index.html
	ui.Load("data.json")

	env.Logger("client ready")

	// Mantener el programa ejecutándose
	select {}
}
