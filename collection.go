// Package textaddr addresses, navigates, and derives selection geometry
// over an immutable snapshot of laid-out multi-paragraph text. It maps flat
// character offsets to hierarchical layout/line/run/slice addresses and
// back, walks word and paragraph boundaries, remaps selections across
// layout snapshots, and produces direction-aware, gap-free highlight
// rectangles for arbitrary character ranges.
package textaddr

import (
	"image"
)

// OriginResolver resolves a layout anchor to an origin point in the shared
// coordinate space. It is queried once per layout, at construction time,
// because in some hosting environments geometry queries are only valid
// during an active layout pass.
type OriginResolver interface {
	ResolveOrigin(anchor any) image.Point
}

// WordSegmenter locates word boundaries within a single layout's text.
// Indices are rune offsets local to that text. NextWordBoundary returns the
// start of the next word after index, or the text length when there is none;
// PreviousWordBoundary returns the start of the word preceding index, or 0.
type WordSegmenter interface {
	NextWordBoundary(text string, index int) int
	PreviousWordBoundary(text string, index int) int
}

// CaretResolver resolves a Position to a caret rectangle in the shared
// coordinate space. The selection builder uses the rectangle's X coordinate
// to trim the first and last highlight rectangles.
type CaretResolver interface {
	CaretRect(p Position) (image.Rectangle, bool)
}

// Option configures optional collaborators of a Collection.
type Option func(*Collection)

// WithWordSegmenter attaches a word-boundary service. Without one, word
// navigation is unavailable and NextWord/PreviousWord report false.
func WithWordSegmenter(seg WordSegmenter) Option {
	return func(c *Collection) {
		c.segmenter = seg
	}
}

// WithCaretResolver replaces the default slice-edge caret resolver with a
// host-provided one.
func WithCaretResolver(r CaretResolver) Option {
	return func(c *Collection) {
		c.caret = r
	}
}

// Collection is an immutable snapshot of a laid-out document: an ordered
// sequence of layouts, one per paragraph. All reads are single-threaded;
// derived state (node lists, bounds, fingerprints, the link index) is
// memoized on first access and must not be shared across goroutines without
// external synchronization.
type Collection struct {
	layouts []*Layout
	// starts[i] is the total text length of all layouts preceding layout i,
	// in runes; ends[i] is starts[i] plus layout i's own length. total is
	// the document length.
	starts []int
	ends   []int
	total  int

	segmenter WordSegmenter
	caret     CaretResolver

	contentFP  *fingerprint
	geometryFP *fingerprint
	links      *linkIndex
}

// NewCollection builds a snapshot from raw shaped paragraphs. Layout
// origins are captured eagerly through origins; a nil resolver leaves all
// origins at the zero point.
func NewCollection(sources []LayoutSource, origins OriginResolver, opts ...Option) *Collection {
	c := &Collection{
		layouts: make([]*Layout, 0, len(sources)),
		starts:  make([]int, 0, len(sources)),
	}
	for _, src := range sources {
		var origin image.Point
		if origins != nil {
			origin = origins.ResolveOrigin(src.Anchor)
		}
		l := newLayout(src, origin)
		c.starts = append(c.starts, c.total)
		c.total += l.Len()
		c.ends = append(c.ends, c.total)
		c.layouts = append(c.layouts, l)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.caret == nil {
		c.caret = &sliceEdgeResolver{c: c}
	}
	return c
}

// Len returns the total document length in runes.
func (c *Collection) Len() int {
	return c.total
}

// LayoutCount returns the number of layouts in the collection.
func (c *Collection) LayoutCount() int {
	return len(c.layouts)
}

// LayoutAt returns the layout at the given index.
func (c *Collection) LayoutAt(index int) (*Layout, bool) {
	if index < 0 || index >= len(c.layouts) {
		return nil, false
	}
	return c.layouts[index], true
}

// IndexOf returns the index of the given layout within the collection, or
// -1 if it is not owned by this collection. The scan is linear; collections
// hold paragraphs, not characters.
func (c *Collection) IndexOf(l *Layout) int {
	for i, candidate := range c.layouts {
		if candidate == l {
			return i
		}
	}
	return -1
}

// Equal reports whether the two snapshots are structurally equal: same
// underlying text and geometry content, and every layout's resolved origin
// matches. Comparing origins guards against missed geometry settlement,
// e.g. a container resized after layout.
func (c *Collection) Equal(other *Collection) bool {
	if other == nil || len(c.layouts) != len(other.layouts) {
		return false
	}
	for i, l := range c.layouts {
		if l.origin != other.layouts[i].origin {
			return false
		}
	}
	return c.contentFingerprint() == other.contentFingerprint() &&
		c.geometryFingerprint() == other.geometryFingerprint()
}

// NeedsReconciliation reports whether a selection captured against other
// must be remapped before use with this snapshot. Only content changes
// require re-addressing; origin-only changes never do, since addresses are
// content-derived.
func (c *Collection) NeedsReconciliation(other *Collection) bool {
	if other == nil {
		return true
	}
	return c.contentFingerprint() != other.contentFingerprint()
}

// StartPosition returns the first position of the document.
func (c *Collection) StartPosition() Position {
	if addr, ok := c.firstAddress(0); ok {
		return Position{Address: addr, Affinity: Downstream}
	}
	return Position{Affinity: Downstream}
}

// EndPosition returns the last position of the document.
func (c *Collection) EndPosition() Position {
	last := len(c.layouts) - 1
	if last < 0 {
		return Position{Affinity: Upstream}
	}
	if addr, ok := c.lastAddress(last); ok {
		return Position{Address: addr, Affinity: Upstream}
	}
	return Position{Address: Address{Layout: last}, Affinity: Upstream}
}

// firstAddress returns the address of the first slice of the given layout.
func (c *Collection) firstAddress(layoutIdx int) (Address, bool) {
	l, ok := c.LayoutAt(layoutIdx)
	if !ok {
		return Address{}, false
	}
	for li, line := range l.Lines() {
		for ri, run := range line.runs {
			if len(run.slices) > 0 {
				return Address{Layout: layoutIdx, Line: li, Run: ri}, true
			}
		}
	}
	return Address{}, false
}

// firstAddressFrom returns the first addressable slice address at or after
// a in document order.
func (c *Collection) firstAddressFrom(a Address) (Address, bool) {
	for layoutIdx := a.Layout; layoutIdx < len(c.layouts); layoutIdx++ {
		if first, ok := c.firstAddress(layoutIdx); ok && !first.Before(a) {
			return first, true
		}
	}
	return Address{}, false
}

// lastAddress returns the address of the last slice of the given layout.
func (c *Collection) lastAddress(layoutIdx int) (Address, bool) {
	l, ok := c.LayoutAt(layoutIdx)
	if !ok {
		return Address{}, false
	}
	lines := l.Lines()
	for li := len(lines) - 1; li >= 0; li-- {
		runs := lines[li].runs
		for ri := len(runs) - 1; ri >= 0; ri-- {
			if n := len(runs[ri].slices); n > 0 {
				return Address{Layout: layoutIdx, Line: li, Run: ri, Slice: n - 1}, true
			}
		}
	}
	return Address{}, false
}

// nodeAt resolves an address to its layout, line, run and slice nodes.
func (c *Collection) nodeAt(a Address) (*Layout, *Line, *Run, *Slice, bool) {
	l, ok := c.LayoutAt(a.Layout)
	if !ok {
		return nil, nil, nil, nil, false
	}
	lines := l.Lines()
	if a.Line < 0 || a.Line >= len(lines) {
		return nil, nil, nil, nil, false
	}
	line := lines[a.Line]
	if a.Run < 0 || a.Run >= len(line.runs) {
		return nil, nil, nil, nil, false
	}
	run := line.runs[a.Run]
	if a.Slice < 0 || a.Slice >= len(run.slices) {
		return nil, nil, nil, nil, false
	}
	return l, line, run, run.slices[a.Slice], true
}

// SliceAt returns the slice addressed by a.
func (c *Collection) SliceAt(a Address) (*Slice, bool) {
	_, _, _, s, ok := c.nodeAt(a)
	return s, ok
}
