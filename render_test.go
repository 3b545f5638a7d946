package barchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinywasm/barchart/surface/record"
)

func op(name, text string, nums ...float64) record.Op {
	return record.Op{Name: name, Text: text, Nums: nums}
}

func line(x1, y1, x2, y2 float64) []record.Op {
	return []record.Op{
		op("beginPath", ""),
		op("moveTo", "", x1, y1),
		op("lineTo", "", x2, y2),
		op("stroke", ""),
	}
}

func TestRenderTwoItems(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 200, 100, []Item{{"A", 10}, {"B", 30}})
	colors := FixedColors(RGB{R: 10, G: 20, B: 30}, RGB{R: 200, G: 100, B: 0})

	rec := &record.Recorder{}
	NewRenderer(cfg, ds, geo, colors).Render(rec)

	var want []record.Op
	add := func(ops ...record.Op) { want = append(want, ops...) }

	// vertical axis
	add(op("beginPath", ""), op("strokeStyle", "#b1b1b1"), op("lineWidth", "", 0.75),
		op("moveTo", "", 20, 10), op("lineTo", "", 20, 90), op("stroke", ""))
	// horizontal axis
	add(op("beginPath", ""), op("strokeStyle", "#b1b1b1"), op("lineWidth", "", 0.75),
		op("moveTo", "", 20, 90), op("lineTo", "", 180, 90), op("stroke", ""))
	// vertical labels
	add(op("font", "normal 300 3px times"), op("textAlign", "right"),
		op("textBaseline", "alphabetic"), op("fillStyle", "#666"),
		op("fillText", "30", 18, 10), op("fillText", "15", 18, 50), op("fillText", "0", 18, 90))
	// horizontal labels
	add(op("font", "normal 300 6px times"), op("fillStyle", "#666"),
		op("textAlign", "center"), op("textBaseline", "top"),
		op("fillText", "A", 60, 91), op("fillText", "B", 140, 91))
	// horizontal gridlines
	add(op("strokeStyle", "#e5e5e5"), op("lineWidth", "", 0.5))
	add(line(20, 10, 180, 10)...)
	add(line(20, 50, 180, 50)...)
	add(line(20, 90, 180, 90)...)
	// vertical gridlines
	add(op("strokeStyle", "#e5e5e5"), op("lineWidth", "", 0.5))
	add(line(20, 90, 20, 10)...)
	add(line(100, 90, 100, 10)...)
	add(line(180, 90, 180, 10)...)
	// bars
	add(op("lineWidth", "", 0.5))
	add(op("strokeStyle", "rgb(10, 20, 30)"), op("fillStyle", "rgba(10, 20, 30, 0.3)"),
		op("beginPath", ""), op("rect", "", 28, 90, 64, -80.0*10/30), op("stroke", ""), op("fill", ""))
	add(op("strokeStyle", "rgb(200, 100, 0)"), op("fillStyle", "rgba(200, 100, 0, 0.3)"),
		op("beginPath", ""), op("rect", "", 108, 90, 64, -80), op("stroke", ""), op("fill", ""))

	if diff := cmp.Diff(want, rec.Ops); diff != "" {
		t.Errorf("render ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSingleItemCounts(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 300, 200, []Item{{"X", 7}})
	rec := &record.Recorder{}
	r := NewRenderer(cfg, ds, geo, FixedColors(RGB{}))

	r.DrawVerticalLabels(rec)
	labels := rec.Filter("fillText")
	if len(labels) != 2 || labels[0].Text != "10" || labels[1].Text != "0" {
		t.Fatalf("vertical labels = %+v; want 10 and 0", labels)
	}

	rec.Ops = nil
	r.DrawHorizontalLabels(rec)
	if n := rec.Count("fillText"); n != 1 {
		t.Errorf("horizontal labels = %d; want 1", n)
	}

	rec.Ops = nil
	r.DrawHorizontalGridlines(rec)
	if n := rec.Count("stroke"); n != 2 {
		t.Errorf("horizontal gridlines = %d; want 2", n)
	}

	rec.Ops = nil
	r.DrawVerticalGridlines(rec)
	if n := rec.Count("stroke"); n != 2 {
		t.Errorf("vertical gridlines = %d; want 2", n)
	}

	rec.Ops = nil
	r.DrawBars(rec)
	if n := rec.Count("rect"); n != 1 {
		t.Errorf("bars = %d; want 1", n)
	}
}

func TestVerticalGridlinesSetGridColor(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 200, 100, []Item{{"A", 1}})
	rec := &record.Recorder{}
	NewRenderer(cfg, ds, geo, nil).DrawVerticalGridlines(rec)

	styles := rec.Filter("strokeStyle")
	if len(styles) != 1 || styles[0].Text != GridColor {
		t.Fatalf("vertical gridline stroke styles = %+v; want one %q", styles, GridColor)
	}
}

// Each routine must reproduce its own output when run again in isolation.
func TestRoutinesRepeatable(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 640, 480, []Item{{"a", 3}, {"b", 99}, {"c", 42}})
	r := NewRenderer(cfg, ds, geo, FixedColors(RGB{R: 1}))

	routines := map[string]func(*record.Recorder){
		"vertical axis":        func(rec *record.Recorder) { r.DrawVerticalAxis(rec) },
		"horizontal axis":      func(rec *record.Recorder) { r.DrawHorizontalAxis(rec) },
		"vertical labels":      func(rec *record.Recorder) { r.DrawVerticalLabels(rec) },
		"horizontal labels":    func(rec *record.Recorder) { r.DrawHorizontalLabels(rec) },
		"horizontal gridlines": func(rec *record.Recorder) { r.DrawHorizontalGridlines(rec) },
		"vertical gridlines":   func(rec *record.Recorder) { r.DrawVerticalGridlines(rec) },
		"bars":                 func(rec *record.Recorder) { r.DrawBars(rec) },
	}
	for name, draw := range routines {
		t.Run(name, func(t *testing.T) {
			first, second := &record.Recorder{}, &record.Recorder{}
			draw(first)
			draw(second)
			if diff := cmp.Diff(first.Ops, second.Ops); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRenderGeometryIgnoresColors(t *testing.T) {
	cfg, ds, geo := mustLayout(t, 400, 300, []Item{{"a", 12}, {"b", 5}, {"c", 33}})

	first, second := &record.Recorder{}, &record.Recorder{}
	NewRenderer(cfg, ds, geo, SeededColors(1)).Render(first)
	NewRenderer(cfg, ds, geo, SeededColors(2)).Render(second)

	var a, b []record.Op
	for _, o := range first.Ops {
		if o.Name != "strokeStyle" && o.Name != "fillStyle" {
			a = append(a, o)
		}
	}
	for _, o := range second.Ops {
		if o.Name != "strokeStyle" && o.Name != "fillStyle" {
			b = append(b, o)
		}
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("geometry differs between color sources (-first +second):\n%s", diff)
	}
}
