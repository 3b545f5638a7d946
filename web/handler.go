//go:build !wasm

package main

import (
	"bytes"
	"errors"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/surface"
	"github.com/tinywasm/barchart/surface/pdf"
	"github.com/tinywasm/barchart/surface/raster"
)

const (
	chartContainer = "chart"
	defaultWidth   = 600
	defaultHeight  = 300
	maxSide        = 4096
)

func newMux(publicDir string, log *logrus.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", noCache(http.FileServer(http.Dir(publicDir))))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running"))
	})

	mux.Handle("/chart.png", noCache(chartHandler{format: "png", log: log}))
	mux.Handle("/chart.pdf", noCache(chartHandler{format: "pdf", log: log}))
	return mux
}

// Middleware to disable caching (useful in dev/test)
func noCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		h.ServeHTTP(w, r)
	})
}

// chartHandler renders the items given as repeated d=label:value query
// parameters. w, h and seed are optional.
type chartHandler struct {
	format string
	log    *logrus.Logger
}

func (c chartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	width, err := dimension(q.Get("w"), defaultWidth)
	if err != nil {
		http.Error(w, "w: "+err.Error(), http.StatusBadRequest)
		return
	}
	height, err := dimension(q.Get("h"), defaultHeight)
	if err != nil {
		http.Error(w, "h: "+err.Error(), http.StatusBadRequest)
		return
	}
	items, err := parseItems(q["d"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	options := []any{barchart.LoggerFunc(c.log.Debug)}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			http.Error(w, "seed: "+err.Error(), http.StatusBadRequest)
			return
		}
		options = append(options, barchart.SeededColors(seed))
	}

	var (
		host   surface.Host
		encode func(*bytes.Buffer) error
		ctype  string
	)
	switch c.format {
	case "pdf":
		h := pdf.NewHost(chartContainer)
		h.Logger = c.log.Warn
		host, ctype = h, "application/pdf"
		encode = func(buf *bytes.Buffer) error { return h.Output(chartContainer, buf) }
	default:
		h := raster.NewHost(chartContainer)
		h.Background = color.White
		h.Logger = c.log.Warn
		host, ctype = h, "image/png"
		encode = func(buf *bytes.Buffer) error { return h.EncodePNG(chartContainer, buf) }
	}

	if _, err := barchart.New(chartContainer, width, height, items, append(options, host)...); err != nil {
		c.log.WithError(err).Debug("chart rejected")
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		c.log.WithError(err).Error("encoding chart")
		http.Error(w, "encoding chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(buf.Bytes())
	}
}

func dimension(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > maxSide {
		return 0, errors.New("out of range")
	}
	return v, nil
}

// parseItems reads label:value pairs. The value follows the last colon so
// labels may contain colons.
func parseItems(pairs []string) ([]barchart.Item, error) {
	items := make([]barchart.Item, 0, len(pairs))
	for i, p := range pairs {
		sep := strings.LastIndexByte(p, ':')
		if sep < 0 {
			return nil, &barchart.InvalidValueError{Index: i, Label: p}
		}
		label, raw := p[:sep], p[sep+1:]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &barchart.InvalidValueError{Index: i, Label: label, Value: raw}
		}
		items = append(items, barchart.Item{Label: label, Value: v})
	}
	return items, nil
}

func statusFor(err error) int {
	var (
		empty   *barchart.EmptyDatasetError
		invalid *barchart.InvalidValueError
	)
	if errors.As(err, &empty) || errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
