// Package barchart renders a labeled bar chart onto a 2D drawing surface.
//
// A chart is built in one synchronous pass:
//
//	chart, err := barchart.New("sales", 600, 300, []barchart.Item{
//		{Label: "Jan", Value: 120},
//		{Label: "Feb", Value: 140},
//	})
//
// New derives a Config from the container and dimensions, normalizes the
// items into a Dataset, computes the Geometry, attaches a fresh surface to
// the container and draws axes, tick labels, gridlines and bars onto it.
// Input errors are reported before the container is touched.
//
// The surface comes from a surface.Host. In the browser (GOOS=js, wasm) the
// default host creates a <canvas> inside the element with the given id; on
// the backend the default is raster.Default, whose containers must be
// registered first. Any other host can be passed as an option.
package barchart

import (
	"reflect"
	"slices"

	"github.com/tinywasm/barchart/env"
	"github.com/tinywasm/barchart/surface"
)

// LoggerFunc receives diagnostic messages.
type LoggerFunc func(message ...any)

// Chart is the handle of a rendered chart. Its configuration and geometry
// are fixed; draw a new chart to change them.
type Chart struct {
	cfg      Config
	ds       Dataset
	geo      Geometry
	ctx      surface.Context
	renderer *Renderer
	logger   LoggerFunc
}

// New renders data as a bar chart of width × height into the container
// named containerID, replacing its previous contents.
//
// Options are matched by type:
//
//	surface.Host   where the drawing surface is attached
//	ColorSource    bar colors (random by default), also func() RGB
//	LoggerFunc     diagnostics (env.Logger by default)
//
// Options of any other type are logged and ignored.
func New(containerID string, width, height float64, data []Item, options ...any) (*Chart, error) {
	var (
		host    surface.Host
		colors  ColorSource
		logger  LoggerFunc = env.Logger
		ignored []any
	)
	for _, opt := range options {
		switch v := opt.(type) {
		case surface.Host:
			host = v
		case ColorSource:
			colors = v
		case func() RGB:
			colors = v
		case LoggerFunc:
			logger = v
		case func(message ...any):
			logger = v
		default:
			ignored = append(ignored, opt)
		}
	}
	if host == nil {
		host = defaultHost()
	}

	c := &Chart{logger: logger}
	for _, opt := range ignored {
		c.Log("barchart: ignoring option of type", reflect.TypeOf(opt).String())
	}
	c.cfg = Configure(containerID, width, height)

	ds, err := Normalize(data)
	if err != nil {
		c.Log("barchart:", containerID, err)
		return nil, err
	}
	c.ds = ds

	if c.geo, err = ComputeLayout(c.cfg, c.ds); err != nil {
		return nil, err
	}

	if c.ctx, err = host.Attach(containerID, width, height); err != nil {
		c.Log("barchart:", containerID, err)
		return nil, err
	}

	c.renderer = NewRenderer(c.cfg, c.ds, c.geo, colors)
	c.renderer.Render(c.ctx)
	c.Log("barchart:", c.cfg.String(), "rendered", c.ds.Count, "bars")
	return c, nil
}

// Log escribe mensajes de log según el entorno
func (c *Chart) Log(message ...any) {
	if c.logger != nil {
		c.logger(message...)
	}
}

func (c *Chart) Config() Config { return c.cfg }

// Dataset returns a copy of the normalized data; changing it does not
// affect Redraw.
func (c *Chart) Dataset() Dataset {
	ds := c.ds
	ds.Labels = slices.Clone(c.ds.Labels)
	ds.Values = slices.Clone(c.ds.Values)
	return ds
}

func (c *Chart) Geometry() Geometry { return c.geo }

// Context is the drawing context the chart was rendered onto.
func (c *Chart) Context() surface.Context { return c.ctx }

// Redraw repeats the render pass on the chart's context. Geometry is
// identical to the first pass; bar colors come from the same ColorSource
// and so differ unless it repeats.
func (c *Chart) Redraw() {
	c.renderer.Render(c.ctx)
}
