//go:build !wasm
// +build !wasm

package env

import (
	"fmt"
	"os"

	"github.com/tinywasm/barchart/errs"
)

// SetupDefaultLogger configures the default logger for backend environments
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		fmt.Println(a...)
	}
}

func SetupDefaultFileWriter() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		return os.WriteFile(filename, data, 0644)
	}
}

// ReadResource returns the contents of a chart data file, or content
// itself when given []byte.
func ReadResource(pathOrContent any) ([]byte, error) {
	switch v := pathOrContent.(type) {
	case string:
		content, err := os.ReadFile(v)
		if err != nil {
			return nil, errs.New("chart data", v, ':', err)
		}
		return content, nil

	case []byte:
		return v, nil

	default:
		return nil, errs.New("chart data must be a file path or []byte")
	}
}
