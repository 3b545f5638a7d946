package barchart

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustLayout(t *testing.T, width, height float64, items []Item) (Config, Dataset, Geometry) {
	t.Helper()
	cfg := Configure("c", width, height)
	ds, err := Normalize(items)
	if err != nil {
		t.Fatal(err)
	}
	geo, err := ComputeLayout(cfg, ds)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, ds, geo
}

func TestComputeLayoutTwoItems(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 200, 100, []Item{{"A", 10}, {"B", 30}})

	want := Geometry{
		VerticalAxisLength:   80,
		HorizontalAxisLength: 160,
		VerticalUpperBound:   30,
		VerticalLabelStep:    15,
		HorizontalLabelStep:  80,
	}
	if diff := cmp.Diff(want, geo, cmpopts.IgnoreUnexported(Geometry{})); diff != "" {
		t.Errorf("ComputeLayout mismatch (-want +got):\n%s", diff)
	}

	if got := geo.Bar(cfg, ds, 1); got != (Rect{X: 108, Y: 90, Width: 64, Height: -80}) {
		t.Errorf("bar B = %+v", got)
	}
	if got := geo.Bar(cfg, ds, 0); got.X != 28 || got.Height != -80.0*10/30 {
		t.Errorf("bar A = %+v", got)
	}
}

func TestComputeLayoutSingleItem(t *testing.T) {
	cfg, _, geo := mustLayout(t, 300, 200, []Item{{"X", 7}})

	if geo.VerticalUpperBound != 10 {
		t.Fatalf("upper bound = %v; want 10", geo.VerticalUpperBound)
	}
	if geo.TickCount() != 2 {
		t.Fatalf("TickCount() = %d; want 2", geo.TickCount())
	}
	if geo.TickValue(0) != 10 || geo.TickValue(1) != 0 {
		t.Errorf("tick values = %v, %v; want 10, 0", geo.TickValue(0), geo.TickValue(1))
	}
	if geo.TickY(cfg, 0) != cfg.VerticalMargin || geo.TickY(cfg, 1) != cfg.Bottom() {
		t.Errorf("tick ys = %v, %v", geo.TickY(cfg, 0), geo.TickY(cfg, 1))
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	var empty *EmptyDatasetError
	if _, err := ComputeLayout(Configure("c", 10, 10), Dataset{}); !errors.As(err, &empty) {
		t.Fatalf("ComputeLayout(empty) error = %v; want EmptyDatasetError", err)
	}
}

func TestUpperBound(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{7, 10},
		{10, 10},
		{10.5, 20},
		{30, 30},
		{99.9, 100},
		{0, 0},
		{-3, 0},
		{-15, -10},
	}
	for _, tt := range tests {
		got := UpperBound(tt.in)
		if got != tt.want {
			t.Errorf("UpperBound(%v) = %v; want %v", tt.in, got, tt.want)
		}
		if tt.in >= 0 && got < tt.in {
			t.Errorf("UpperBound(%v) = %v is below its input", tt.in, got)
		}
		if math.Mod(got, 10) != 0 {
			t.Errorf("UpperBound(%v) = %v is not a multiple of 10", tt.in, got)
		}
	}
}

func TestLayoutProperties(t *testing.T) {
	datasets := [][]Item{
		{{"a", 1}},
		{{"a", 3}, {"b", 99}, {"c", 42}},
		{{"a", 0.25}, {"b", 0.5}},
		{{"a", 1000}, {"b", 1001}, {"c", 0}, {"d", 7}, {"e", 13}},
	}
	for _, items := range datasets {
		cfg, ds, geo := mustLayout(t, 640, 480, items)
		if geo.VerticalUpperBound < ds.Max {
			t.Errorf("upper bound %v < max %v", geo.VerticalUpperBound, ds.Max)
		}
		if math.Mod(geo.VerticalUpperBound, 10) != 0 {
			t.Errorf("upper bound %v is not a multiple of 10", geo.VerticalUpperBound)
		}
		if geo.HorizontalLabelStep <= 0 {
			t.Errorf("label step %v is not positive", geo.HorizontalLabelStep)
		}
		if got := geo.SlotX(cfg, ds.Count); math.Abs(got-cfg.Right()) > 1e-9 {
			t.Errorf("SlotX(count) = %v; want %v", got, cfg.Right())
		}
		if got := geo.TickY(cfg, ds.Count); math.Abs(got-cfg.Bottom()) > 1e-9 {
			t.Errorf("TickY(count) = %v; want %v", got, cfg.Bottom())
		}
		if geo.TickValue(ds.Count) != 0 {
			t.Errorf("last tick value = %v; want 0", geo.TickValue(ds.Count))
		}
	}
}

func TestTickLabelsEndAtExactZero(t *testing.T) {
	items := make([]Item, 11)
	for i := range items {
		items[i] = Item{Label: string(rune('a' + i)), Value: float64(5 + 9*i)}
	}
	_, ds, geo := mustLayout(t, 600, 300, items)
	if ds.Max != 95 || geo.VerticalUpperBound != 100 {
		t.Fatalf("max %v, upper bound %v; want 95, 100", ds.Max, geo.VerticalUpperBound)
	}

	if got := formatNumber(geo.TickValue(ds.Count)); got != "0" {
		t.Errorf("last tick label = %q; want \"0\"", got)
	}
	if got := formatNumber(geo.TickValue(0)); got != "100" {
		t.Errorf("first tick label = %q; want \"100\"", got)
	}
}

func TestBarAllZero(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 100, 100, []Item{{"a", 0}, {"b", 0}})
	for i := 0; i < ds.Count; i++ {
		if h := geo.Bar(cfg, ds, i).Height; h != 0 {
			t.Errorf("bar %d height = %v; want 0", i, h)
		}
	}
}
