package textaddr

import (
	"image"
	"unicode/utf8"
)

// Direction is the writing direction of a run.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// SliceSource is the raw shaped data of one slice: a typographic bounding
// rectangle in layout-local coordinates and a half-open character range.
type SliceSource struct {
	Bounds image.Rectangle
	Range  CharRange
}

// RunSource is the raw shaped data of one style-contiguous run. TextOffset
// is added to the slice ranges when the layout's text was joined from
// multiple sub-strings and the slices are addressed relative to their own
// sub-string.
type RunSource struct {
	Direction  Direction
	Link       string
	TextOffset int
	Slices     []SliceSource
}

// LineSource is the raw shaped data of one visual line. Origin and Bounds
// are layout-local.
type LineSource struct {
	Origin image.Point
	Bounds image.Rectangle
	Runs   []RunSource
}

// LayoutSource is the raw shaped data of one paragraph: its joined text, an
// anchor resolvable to an origin point in the shared coordinate space, and
// the paragraph's lines.
type LayoutSource struct {
	Text   string
	Anchor any
	Lines  []LineSource
}

// Slice is the smallest addressable unit of a layout.
type Slice struct {
	bounds image.Rectangle
	rng    CharRange
}

// Range returns the slice's character range within its layout's text.
func (s *Slice) Range() CharRange {
	return s.rng
}

// Bounds returns the slice's typographic bounds in layout-local coordinates.
func (s *Slice) Bounds() image.Rectangle {
	return s.bounds
}

// Run is a style-contiguous span of slices sharing a writing direction and
// an optional link reference.
type Run struct {
	direction Direction
	link      string
	slices    []*Slice
}

func (r *Run) Direction() Direction {
	return r.direction
}

// Link returns the run's associated link reference, or the empty string.
func (r *Run) Link() string {
	return r.link
}

func (r *Run) Slices() []*Slice {
	return r.slices
}

// Line is an ordered sequence of runs within a layout.
type Line struct {
	origin image.Point
	bounds image.Rectangle
	runs   []*Run
}

// Origin returns the line origin in layout-local coordinates.
func (l *Line) Origin() image.Point {
	return l.origin
}

// Bounds returns the line's typographic bounds in layout-local coordinates.
func (l *Line) Bounds() image.Rectangle {
	return l.bounds
}

func (l *Line) Runs() []*Run {
	return l.runs
}

// Layout is one paragraph's laid-out content. Its origin is captured at
// construction because the resolver that produced it may only be valid for
// the duration of one layout pass. The line list and bounds are built
// lazily on first access and memoized; a Layout is never mutated after its
// Collection is constructed, so the memoization is pure caching.
type Layout struct {
	src     LayoutSource
	origin  image.Point
	textLen int

	lines       []*Line
	linesBuilt  bool
	bounds      image.Rectangle
	boundsValid bool
}

func newLayout(src LayoutSource, origin image.Point) *Layout {
	return &Layout{
		src:     src,
		origin:  origin,
		textLen: utf8.RuneCountInString(src.Text),
	}
}

// Text returns the paragraph's joined text.
func (l *Layout) Text() string {
	return l.src.Text
}

// Len returns the length of the paragraph's text in runes.
func (l *Layout) Len() int {
	return l.textLen
}

// Origin returns the layout's origin point in the shared coordinate space.
func (l *Layout) Origin() image.Point {
	return l.origin
}

// Lines returns the layout's lines, building them from the raw source on
// first access.
func (l *Layout) Lines() []*Line {
	if !l.linesBuilt {
		l.lines = buildLines(l.src.Lines)
		l.linesBuilt = true
	}
	return l.lines
}

// Bounds returns the layout's bounding rectangle in the shared coordinate
// space: the union of its lines' typographic bounds, translated by the
// layout origin.
func (l *Layout) Bounds() image.Rectangle {
	if !l.boundsValid {
		var b image.Rectangle
		for _, line := range l.Lines() {
			b = b.Union(line.bounds)
		}
		l.bounds = b.Add(l.origin)
		l.boundsValid = true
	}
	return l.bounds
}

func buildLines(sources []LineSource) []*Line {
	lines := make([]*Line, 0, len(sources))
	for _, ls := range sources {
		line := &Line{
			origin: ls.Origin,
			bounds: ls.Bounds,
			runs:   make([]*Run, 0, len(ls.Runs)),
		}
		for _, rs := range ls.Runs {
			run := &Run{
				direction: rs.Direction,
				link:      rs.Link,
				slices:    make([]*Slice, 0, len(rs.Slices)),
			}
			for _, ss := range rs.Slices {
				run.slices = append(run.slices, &Slice{
					bounds: ss.Bounds,
					rng: CharRange{
						Start: ss.Range.Start + rs.TextOffset,
						End:   ss.Range.End + rs.TextOffset,
					},
				})
			}
			line.runs = append(line.runs, run)
		}
		lines = append(lines, line)
	}
	return lines
}
