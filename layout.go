package barchart

import (
	"math"
	"strconv"
)

// Geometry is the pixel-space layout derived from a Config and a Dataset.
type Geometry struct {
	VerticalAxisLength   float64
	HorizontalAxisLength float64
	// VerticalUpperBound is Max rounded up to a multiple of 10; an exact
	// multiple is kept as is.
	VerticalUpperBound float64
	// VerticalLabelStep is the value distance between tick labels. There is
	// one step per item, so the tick count follows the item count.
	VerticalLabelStep float64
	// HorizontalLabelStep is the pixel width of one category slot.
	HorizontalLabelStep float64

	count int
}

// Rect is an axis-aligned rectangle in canvas coordinates. Height is
// negative for bars, which grow upward from the baseline.
type Rect struct {
	X, Y, Width, Height float64
}

// ComputeLayout derives the geometry of cfg and ds.
func ComputeLayout(cfg Config, ds Dataset) (Geometry, error) {
	if ds.Count == 0 {
		return Geometry{}, &EmptyDatasetError{}
	}
	n := float64(ds.Count)

	g := Geometry{
		VerticalAxisLength:   cfg.Height - 2*cfg.VerticalMargin,
		HorizontalAxisLength: cfg.Width - 2*cfg.HorizontalMargin,
		VerticalUpperBound:   UpperBound(ds.Max),
		count:                ds.Count,
	}
	g.VerticalLabelStep = g.VerticalUpperBound / n
	g.HorizontalLabelStep = g.HorizontalAxisLength / n
	return g, nil
}

// UpperBound rounds v up to the nearest multiple of 10.
func UpperBound(v float64) float64 {
	return math.Ceil(v/10) * 10
}

// TickCount is the number of value-axis labels and horizontal gridlines.
func (g Geometry) TickCount() int {
	return g.count + 1
}

// TickValue is the value printed at tick i, counting from the top.
func (g Geometry) TickValue(i int) float64 {
	return g.VerticalUpperBound * float64(g.count-i) / float64(g.count)
}

// TickY is the y coordinate of tick i. Scaling the label step by
// axisLength/upperBound reduces to axisLength/count, which also stays finite
// when the upper bound is zero.
func (g Geometry) TickY(cfg Config, i int) float64 {
	return cfg.VerticalMargin + float64(i)*g.VerticalAxisLength/float64(g.count)
}

// SlotX is the left edge of category slot i. SlotX(cfg, count) is the right
// end of the horizontal axis.
func (g Geometry) SlotX(cfg Config, i int) float64 {
	return cfg.HorizontalMargin + float64(i)*g.HorizontalLabelStep
}

// Bar is the rectangle of item i: inset by a tenth of the slot on both
// sides, anchored on the horizontal axis and scaled against the maximum.
// An all-zero dataset yields flat bars.
func (g Geometry) Bar(cfg Config, ds Dataset, i int) Rect {
	inset := g.HorizontalLabelStep / cfg.AxisRatio
	r := Rect{
		X:     g.SlotX(cfg, i) + inset,
		Y:     cfg.Bottom(),
		Width: g.HorizontalLabelStep - 2*inset,
	}
	if ds.Max != 0 {
		r.Height = -g.VerticalAxisLength * ds.Values[i] / ds.Max
	}
	return r
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
