//go:build !wasm

package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadResource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	if err := FileWriter(path, []byte("- {label: A, value: 1}\n")); err != nil {
		t.Fatal(err)
	}

	got, err := ReadResource(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "- {label: A, value: 1}\n" {
		t.Errorf("ReadResource(path) = %q", got)
	}

	if got, err := ReadResource([]byte("raw")); err != nil || string(got) != "raw" {
		t.Errorf("ReadResource([]byte) = %q, %v", got, err)
	}

	for _, in := range []any{filepath.Join(dir, "missing.yaml"), dir, 12} {
		_, err := ReadResource(in)
		if err == nil {
			t.Errorf("ReadResource(%v) succeeded; want error", in)
			continue
		}
		if !strings.HasPrefix(err.Error(), "chart data") {
			t.Errorf("ReadResource(%v) error = %q; want it to name the chart data", in, err)
		}
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
