package barchart

import "github.com/tinywasm/fmt"

// Fixed chart styling.
const (
	AxisRatio  = 10 // percent of width/height reserved as margin on each side
	AxisColor  = "#b1b1b1"
	AxisWidth  = 0.75
	FontRatio  = 3 // percent of width/height used as label font size
	FontFamily = "times"
	FontStyle  = "normal"
	FontWeight = "300"
	FontColor  = "#666"
	GridColor  = "#e5e5e5"
	GridWidth  = 0.5
)

// Config holds everything a chart derives from its container and
// dimensions. It is a value and is never modified after Configure.
type Config struct {
	ContainerID string
	Width       float64
	Height      float64

	AxisRatio        float64
	VerticalMargin   float64
	HorizontalMargin float64
	AxisColor        string
	AxisWidth        float64

	FontRatio          float64
	FontFamily         string
	FontStyle          string
	FontWeight         string
	FontColor          string
	VerticalFontSize   float64
	HorizontalFontSize float64

	GridColor string
	GridWidth float64
}

// Configure derives the chart configuration. Width and height are taken as
// given; non-positive dimensions are the caller's problem.
func Configure(containerID string, width, height float64) Config {
	return Config{
		ContainerID: containerID,
		Width:       width,
		Height:      height,

		AxisRatio:        AxisRatio,
		VerticalMargin:   height * AxisRatio / 100,
		HorizontalMargin: width * AxisRatio / 100,
		AxisColor:        AxisColor,
		AxisWidth:        AxisWidth,

		FontRatio:          FontRatio,
		FontFamily:         FontFamily,
		FontStyle:          FontStyle,
		FontWeight:         FontWeight,
		FontColor:          FontColor,
		VerticalFontSize:   height * FontRatio / 100,
		HorizontalFontSize: width * FontRatio / 100,

		GridColor: GridColor,
		GridWidth: GridWidth,
	}
}

// VerticalFont is the CSS font used for value-axis labels.
func (c Config) VerticalFont() string {
	return c.font(c.VerticalFontSize)
}

// HorizontalFont is the CSS font used for category labels.
func (c Config) HorizontalFont() string {
	return c.font(c.HorizontalFontSize)
}

func (c Config) font(size float64) string {
	return c.FontStyle + " " + c.FontWeight + " " + formatNumber(size) + "px " + c.FontFamily
}

// Bottom is the y coordinate of the horizontal axis.
func (c Config) Bottom() float64 {
	return c.Height - c.VerticalMargin
}

// Right is the x coordinate where the horizontal axis ends.
func (c Config) Right() float64 {
	return c.Width - c.HorizontalMargin
}

func (c Config) String() string {
	return fmt.Sprintf("%s %sx%s", c.ContainerID, formatNumber(c.Width), formatNumber(c.Height))
}
