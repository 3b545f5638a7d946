package barchart

import (
	"io"
	"math"

	"github.com/tinywasm/fmt"
	"gopkg.in/yaml.v3"
)

// Item is one (label, value) pair of chart input. Slice order is the order
// of the horizontal axis.
type Item struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// Dataset is the normalized form of the input: parallel label and value
// slices in input order plus aggregate statistics.
type Dataset struct {
	Labels []string
	Values []float64
	Count  int
	Max    float64
	Min    float64
}

// Normalize splits items into parallel slices and scans for the extremes.
// It fails with *EmptyDatasetError for no items and *InvalidValueError for
// a NaN or infinite value. Negative values are accepted here but render
// undefined bars.
func Normalize(items []Item) (Dataset, error) {
	if len(items) == 0 {
		return Dataset{}, &EmptyDatasetError{}
	}

	ds := Dataset{
		Labels: make([]string, len(items)),
		Values: make([]float64, len(items)),
		Count:  len(items),
		Max:    math.Inf(-1),
		Min:    math.Inf(1),
	}
	for i, it := range items {
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return Dataset{}, &InvalidValueError{Index: i, Label: it.Label, Value: it.Value}
		}
		ds.Labels[i] = it.Label
		ds.Values[i] = it.Value
		ds.Max = math.Max(ds.Max, it.Value)
		ds.Min = math.Min(ds.Min, it.Value)
	}
	return ds, nil
}

type rawItem struct {
	Label string    `yaml:"label"`
	Value yaml.Node `yaml:"value"`
}

// DecodeItems reads a YAML or JSON sequence of {label, value} objects.
// A value that is missing or not a number yields *InvalidValueError.
func DecodeItems(r io.Reader) ([]Item, error) {
	var raw []rawItem
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errf("decode chart data: %s", err.Error())
	}

	items := make([]Item, len(raw))
	for i, ri := range raw {
		items[i].Label = ri.Label

		n := ri.Value
		if n.Kind != yaml.ScalarNode || (n.Tag != "!!int" && n.Tag != "!!float") {
			var v any
			if n.Kind == yaml.ScalarNode {
				v = n.Value
			}
			return nil, &InvalidValueError{Index: i, Label: ri.Label, Value: v}
		}
		if err := n.Decode(&items[i].Value); err != nil {
			return nil, &InvalidValueError{Index: i, Label: ri.Label, Value: n.Value}
		}
	}
	return items, nil
}
