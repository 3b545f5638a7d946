package surface

// SegmentKind distinguishes the subpaths a Path accumulates.
type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentRect
)

// Segment is one stroked line or one closed rectangle of a Path. For a
// rectangle X2, Y2 hold width and height, which may be negative.
type Segment struct {
	Kind           SegmentKind
	X1, Y1, X2, Y2 float64
}

// Path accumulates canvas-style subpaths for hosts whose native API draws
// primitives immediately instead of keeping a current path.
type Path struct {
	segments []Segment
	x, y     float64
	started  bool
}

func (p *Path) Reset() {
	p.segments = p.segments[:0]
	p.started = false
}

func (p *Path) MoveTo(x, y float64) {
	p.x, p.y, p.started = x, y, true
}

// LineTo without a preceding MoveTo only sets the current point.
func (p *Path) LineTo(x, y float64) {
	if p.started {
		p.segments = append(p.segments, Segment{Kind: SegmentLine, X1: p.x, Y1: p.y, X2: x, Y2: y})
	}
	p.x, p.y, p.started = x, y, true
}

func (p *Path) Rect(x, y, w, h float64) {
	p.segments = append(p.segments, Segment{Kind: SegmentRect, X1: x, Y1: y, X2: w, Y2: h})
	p.x, p.y, p.started = x, y, true
}

// Segments returns the subpaths in construction order.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Normalize returns the rectangle with a non-negative width and height.
func (s Segment) Normalize() (x, y, w, h float64) {
	x, y, w, h = s.X1, s.Y1, s.X2, s.Y2
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}
