package surface

import (
	"strconv"
	"strings"

	"github.com/tinywasm/fmt"
)

// FontStyle is the slant part of a CSS font shorthand.
type FontStyle string

const (
	StyleNormal  FontStyle = "normal"
	StyleItalic  FontStyle = "italic"
	StyleOblique FontStyle = "oblique"
)

// Font is a decoded CSS font shorthand.
type Font struct {
	Style  FontStyle
	Weight int
	Size   float64 // px
	Family string
}

// Bold reports whether the weight renders as bold (CSS 600 and above).
func (f Font) Bold() bool {
	return f.Weight >= 600
}

// ParseFont decodes "[style] [weight] <size>px <family>", the shorthand a
// canvas context accepts. Omitted style and weight default to normal / 400.
func ParseFont(font string) (Font, error) {
	out := Font{Style: StyleNormal, Weight: 400}

	fields := strings.Fields(font)
	sizeAt := -1
	for i, tok := range fields {
		if strings.HasSuffix(fmt.Convert(tok).ToLower().String(), "px") {
			sizeAt = i
			break
		}
	}
	if sizeAt < 0 || sizeAt == len(fields)-1 {
		return Font{}, fmt.Errf("font '%s' needs a px size followed by a family", font)
	}

	size, err := strconv.ParseFloat(fields[sizeAt][:len(fields[sizeAt])-2], 64)
	if err != nil {
		return Font{}, fmt.Errf("bad font size in '%s'", font)
	}
	out.Size = size
	out.Family = strings.Trim(strings.Join(fields[sizeAt+1:], " "), `"'`)

	// Normalize style and weight (case-insensitive)
	for _, tok := range fields[:sizeAt] {
		switch s := fmt.Convert(tok).ToLower().String(); s {
		case "normal":
		case "italic":
			out.Style = StyleItalic
		case "oblique":
			out.Style = StyleOblique
		case "bold":
			out.Weight = 700
		case "lighter":
			out.Weight = 300
		case "bolder":
			out.Weight = 800
		default:
			w, err := strconv.Atoi(s)
			if err != nil {
				return Font{}, fmt.Errf("unknown font token '%s' in '%s'", tok, font)
			}
			out.Weight = w
		}
	}
	return out, nil
}
