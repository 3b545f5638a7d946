package surface

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#666", color.NRGBA{0x66, 0x66, 0x66, 255}},
		{"#b1b1b1", color.NRGBA{0xb1, 0xb1, 0xb1, 255}},
		{"#E5E5E5", color.NRGBA{0xe5, 0xe5, 0xe5, 255}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(1, 2, 3, 0.3)", color.NRGBA{1, 2, 3, 77}},
		{"rgb(256, 0, 0)", color.NRGBA{255, 0, 0, 255}},
		{"  White ", color.NRGBA{255, 255, 255, 255}},
		{"steelblue", color.NRGBA{70, 130, 180, 255}},
		{"transparent", color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "nocolor", "rgb(1, 2)", "rgb(a, b, c)", "rgba(1, 2, 3, x)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded; want error", in)
		}
	}
}
