package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"normal 300 3px times", Font{Style: StyleNormal, Weight: 300, Size: 3, Family: "times"}},
		{"12px arial", Font{Style: StyleNormal, Weight: 400, Size: 12, Family: "arial"}},
		{"italic bold 7.5px Times New Roman", Font{Style: StyleItalic, Weight: 700, Size: 7.5, Family: "Times New Roman"}},
		{"OBLIQUE 10PX \"Fira Sans\"", Font{Style: StyleOblique, Weight: 400, Size: 10, Family: "Fira Sans"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFont(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseFontRejects(t *testing.T) {
	for _, in := range []string{"", "times", "normal 12px", "heavy 12px times", "xpx times"} {
		if _, err := ParseFont(in); err == nil {
			t.Errorf("ParseFont(%q) succeeded; want error", in)
		}
	}
}

func TestFontBold(t *testing.T) {
	if (Font{Weight: 300}).Bold() {
		t.Error("weight 300 reported bold")
	}
	if !(Font{Weight: 700}).Bold() {
		t.Error("weight 700 not reported bold")
	}
}
