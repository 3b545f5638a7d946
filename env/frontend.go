//go:build wasm
// +build wasm

package env

import (
	"syscall/js"

	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/utils"
	"github.com/tinywasm/fetch"
)

// SetupDefaultLogger configures the default logger for frontend environments
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		args := make([]any, len(a))
		for i, arg := range a {
			args[i] = js.ValueOf(utils.AnyToString(arg))
		}
		console := js.Global().Get("console")
		if !console.IsUndefined() {
			console.Call("log", args...)
		}
	}
}

// SetupDefaultFileWriter triggers a browser download of data named filename.
func SetupDefaultFileWriter() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		document := js.Global().Get("document")
		if document.IsUndefined() {
			return errs.New("file writing needs a document")
		}

		uint8Array := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(uint8Array, data)
		blob := js.Global().Get("Blob").New([]any{uint8Array})
		url := js.Global().Get("URL").Call("createObjectURL", blob)

		link := document.Call("createElement", "a")
		link.Set("href", url)
		link.Set("download", filename)
		link.Call("click")
		js.Global().Get("URL").Call("revokeObjectURL", url)
		return nil
	}
}

type fetched struct {
	body []byte
	err  error
}

// ReadResource returns chart data fetched from a URL (absolute or relative
// to the page) or passed as []byte. Fetching waits for the browser, so it
// must not be called from the goroutine serving JS callbacks.
func ReadResource(pathOrContent any) ([]byte, error) {
	switch v := pathOrContent.(type) {
	case string:
		if v == "" {
			return nil, errs.New("empty chart data url")
		}
		done := make(chan fetched, 1)
		fetch.Get(v).Send(func(resp *fetch.Response, err error) {
			if err != nil {
				done <- fetched{err: errs.New("error fetching", v, ':', err)}
				return
			}
			if resp.Status != 200 {
				done <- fetched{err: errs.New("error fetching", v, ':', "status", resp.Status)}
				return
			}
			done <- fetched{body: resp.Body()}
		})
		r := <-done
		return r.body, r.err

	case []byte:
		return v, nil

	default:
		return nil, errs.New("chart data must be a url string or []byte")
	}
}
