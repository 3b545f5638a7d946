package barchart

import "github.com/tinywasm/barchart/surface"

// Renderer issues the drawing commands of one chart. Every Draw method sets
// all the context state it relies on, so each can be run on its own and
// running one twice draws the same geometry again.
type Renderer struct {
	cfg    Config
	ds     Dataset
	geo    Geometry
	colors ColorSource
}

// NewRenderer binds the immutable outputs of the previous stages. A nil
// colors draws bar colors at random.
func NewRenderer(cfg Config, ds Dataset, geo Geometry, colors ColorSource) *Renderer {
	if colors == nil {
		colors = RandomColors(nil)
	}
	return &Renderer{cfg: cfg, ds: ds, geo: geo, colors: colors}
}

// Render draws the whole chart in its fixed order.
func (r *Renderer) Render(ctx surface.Context) {
	r.DrawVerticalAxis(ctx)
	r.DrawHorizontalAxis(ctx)
	r.DrawVerticalLabels(ctx)
	r.DrawHorizontalLabels(ctx)
	r.DrawHorizontalGridlines(ctx)
	r.DrawVerticalGridlines(ctx)
	r.DrawBars(ctx)
}

func (r *Renderer) DrawVerticalAxis(ctx surface.Context) {
	c := r.cfg
	ctx.BeginPath()
	ctx.SetStrokeStyle(c.AxisColor)
	ctx.SetLineWidth(c.AxisWidth)
	ctx.MoveTo(c.HorizontalMargin, c.VerticalMargin)
	ctx.LineTo(c.HorizontalMargin, c.Bottom())
	ctx.Stroke()
}

func (r *Renderer) DrawHorizontalAxis(ctx surface.Context) {
	c := r.cfg
	ctx.BeginPath()
	ctx.SetStrokeStyle(c.AxisColor)
	ctx.SetLineWidth(c.AxisWidth)
	ctx.MoveTo(c.HorizontalMargin, c.Bottom())
	ctx.LineTo(c.Right(), c.Bottom())
	ctx.Stroke()
}

// DrawVerticalLabels prints count+1 values from the upper bound down to
// zero, right aligned just left of the vertical axis.
func (r *Renderer) DrawVerticalLabels(ctx surface.Context) {
	c := r.cfg
	ctx.SetFont(c.VerticalFont())
	ctx.SetTextAlign(surface.AlignRight)
	ctx.SetTextBaseline(surface.BaselineAlphabetic)
	ctx.SetFillStyle(c.FontColor)

	x := c.HorizontalMargin - c.HorizontalMargin/c.AxisRatio
	for i := 0; i < r.geo.TickCount(); i++ {
		ctx.FillText(formatNumber(r.geo.TickValue(i)), x, r.geo.TickY(c, i))
	}
}

// DrawHorizontalLabels centers each category label under its slot.
func (r *Renderer) DrawHorizontalLabels(ctx surface.Context) {
	c := r.cfg
	ctx.SetFont(c.HorizontalFont())
	ctx.SetFillStyle(c.FontColor)
	ctx.SetTextAlign(surface.AlignCenter)
	ctx.SetTextBaseline(surface.BaselineTop)

	step := r.geo.HorizontalLabelStep
	y := c.Bottom() + c.VerticalMargin/c.AxisRatio
	for i, label := range r.ds.Labels {
		ctx.FillText(label, r.geo.SlotX(c, i)+step/2, y)
	}
}

func (r *Renderer) DrawHorizontalGridlines(ctx surface.Context) {
	c := r.cfg
	ctx.SetStrokeStyle(c.GridColor)
	ctx.SetLineWidth(c.GridWidth)

	for i := 0; i < r.geo.TickCount(); i++ {
		y := r.geo.TickY(c, i)
		ctx.BeginPath()
		ctx.MoveTo(c.HorizontalMargin, y)
		ctx.LineTo(c.HorizontalMargin+r.geo.HorizontalAxisLength, y)
		ctx.Stroke()
	}
}

func (r *Renderer) DrawVerticalGridlines(ctx surface.Context) {
	c := r.cfg
	ctx.SetStrokeStyle(c.GridColor)
	ctx.SetLineWidth(c.GridWidth)

	for i := 0; i <= r.ds.Count; i++ {
		x := r.geo.SlotX(c, i)
		ctx.BeginPath()
		ctx.MoveTo(x, c.Bottom())
		ctx.LineTo(x, c.VerticalMargin)
		ctx.Stroke()
	}
}

// DrawBars strokes and fills one rectangle per item, each with the next
// color of the renderer's ColorSource.
func (r *Renderer) DrawBars(ctx surface.Context) {
	// bars keep the gridline stroke width
	ctx.SetLineWidth(r.cfg.GridWidth)
	for i := 0; i < r.ds.Count; i++ {
		color := r.colors()
		bar := r.geo.Bar(r.cfg, r.ds, i)

		ctx.SetStrokeStyle(color.Stroke())
		ctx.SetFillStyle(color.Fill())
		ctx.BeginPath()
		ctx.Rect(bar.X, bar.Y, bar.Width, bar.Height)
		ctx.Stroke()
		ctx.Fill()
	}
}
