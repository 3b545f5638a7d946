//go:build wasm
// +build wasm

package ui

import (
	"bytes"
	"syscall/js"

	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/env"
)

// ChartID is the id of the element the chart is drawn into.
const ChartID = "chart-container"

var (
	items       []barchart.Item
	widthInput  js.Value
	heightInput js.Value
)

// Setup builds the page: size inputs, redraw and download buttons and the
// chart container.
func Setup() {
	document := js.Global().Get("document")
	body := document.Get("body")
	body.Set("innerHTML", "")

	container := document.Call("createElement", "div")
	container.Set("className", "container")

	title := document.Call("createElement", "h1")
	title.Set("textContent", "Bar chart")
	container.Call("appendChild", title)

	formSection := document.Call("createElement", "div")
	formSection.Set("className", "form-section")

	widthInput = numberInput(document, formSection, "Width:", "600")
	heightInput = numberInput(document, formSection, "Height:", "300")

	formSection.Call("appendChild", button(document, "Redraw", Draw))
	formSection.Call("appendChild", button(document, "Download PDF", DownloadPDF))
	container.Call("appendChild", formSection)

	chart := document.Call("createElement", "div")
	chart.Set("className", "chart-container")
	chart.Set("id", ChartID)
	container.Call("appendChild", chart)

	body.Call("appendChild", container)

	loadStyles()
}

func numberInput(document, parent js.Value, label, value string) js.Value {
	l := document.Call("createElement", "label")
	l.Set("textContent", label)
	parent.Call("appendChild", l)

	in := document.Call("createElement", "input")
	in.Set("type", "number")
	in.Set("min", "1")
	in.Set("value", value)
	parent.Call("appendChild", in)
	return in
}

func button(document js.Value, text string, onClick func()) js.Value {
	btn := document.Call("createElement", "button")
	btn.Set("textContent", text)
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		onClick()
		return nil
	}))
	return btn
}

func loadStyles() {
	document := js.Global().Get("document")
	head := document.Get("head")

	existingLink := document.Call("querySelector", "link[href='style.css']")
	if !existingLink.IsNull() {
		return
	}

	link := document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	head.Call("appendChild", link)
}

// Load fetches a YAML or JSON item list and draws it. fetch blocks, so it
// runs outside the caller's goroutine.
func Load(url string) {
	go func() {
		raw, err := env.ReadResource(url)
		if err != nil {
			ShowError("loading " + url + ": " + err.Error())
			return
		}
		decoded, err := barchart.DecodeItems(bytes.NewReader(raw))
		if err != nil {
			ShowError(err.Error())
			return
		}
		items = decoded
		env.Logger("loaded", len(items), "items from", url)
		Draw()
	}()
}

// Draw renders the loaded items at the size given in the inputs.
func Draw() {
	w, h := size()
	if _, err := barchart.New(ChartID, w, h, items); err != nil {
		ShowError(err.Error())
	}
}

func size() (float64, float64) {
	return widthInput.Get("valueAsNumber").Float(), heightInput.Get("valueAsNumber").Float()
}

// ShowError replaces the chart container contents with a message.
func ShowError(message string) {
	env.Logger("error:", message)

	document := js.Global().Get("document")
	chart := document.Call("getElementById", ChartID)
	if chart.IsNull() {
		return
	}
	chart.Set("innerHTML", "")

	errorDiv := document.Call("createElement", "div")
	errorDiv.Set("className", "error-message")
	errorDiv.Set("textContent", message)
	chart.Call("appendChild", errorDiv)
}
