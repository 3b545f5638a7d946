//go:build wasm
// +build wasm

package ui

import (
	"bytes"

	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/env"
	"github.com/tinywasm/barchart/surface/pdf"
)

const pdfContainer = "pdf"

// DownloadPDF renders the loaded items onto a PDF page of the current size
// and hands the file to the browser.
func DownloadPDF() {
	w, h := size()

	host := pdf.NewHost(pdfContainer)
	host.Logger = env.Logger
	if _, err := barchart.New(pdfContainer, w, h, items, host); err != nil {
		ShowError("Error al generar PDF: " + err.Error())
		return
	}

	var buf bytes.Buffer
	if err := host.Output(pdfContainer, &buf); err != nil {
		ShowError("Error al obtener bytes del PDF: " + err.Error())
		return
	}
	env.Logger("PDF generado, tamaño:", buf.Len(), "bytes")

	if err := env.FileWriter("chart.pdf", buf.Bytes()); err != nil {
		ShowError(err.Error())
	}
}
