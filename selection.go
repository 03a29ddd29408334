package textaddr

import (
	"image"
)

// SelectionRect is one highlight rectangle of a selection, in the shared
// coordinate space. ContainsStart and ContainsEnd mark the rectangles
// holding the range's endpoints, for callers drawing rounded end-caps.
type SelectionRect struct {
	Rect          image.Rectangle
	Direction     Direction
	ContainsStart bool
	ContainsEnd   bool
}

// sliceEdgeResolver is the default caret resolver: the caret rectangle is
// the leading or trailing edge of the addressed slice, picked by affinity
// and the run's writing direction.
type sliceEdgeResolver struct {
	c *Collection
}

func (r *sliceEdgeResolver) CaretRect(p Position) (image.Rectangle, bool) {
	l, _, run, s, ok := r.c.nodeAt(p.Address)
	if !ok {
		return image.Rectangle{}, false
	}
	rect := s.bounds.Add(l.origin)
	leading := p.Affinity == Downstream
	if run.direction == RightToLeft {
		leading = !leading
	}
	x := rect.Max.X
	if leading {
		x = rect.Min.X
	}
	return image.Rect(x, rect.Min.Y, x, rect.Max.Y), true
}

// visualLine collects the rectangles assembled for one visual line.
type visualLine struct {
	layout int
	line   int
	rects  []SelectionRect
}

// SelectionRects derives the minimal set of highlight rectangles covering
// the range: one or more rectangles per visual line, merged across
// same-direction slices, trimmed to the endpoint caret X coordinates, and
// vertically inflated so stacked lines render as one unbroken block. A
// collapsed range yields no rectangles.
func (c *Collection) SelectionRects(r Range) []SelectionRect {
	var rects []SelectionRect
	for _, vl := range c.selectionLines(r) {
		rects = append(rects, vl.rects...)
	}
	return markEndpoints(rects)
}

// SelectionRectsInLayout is the per-layout variant of SelectionRects: the
// rectangles belonging to the given layout, translated by subtracting that
// layout's origin, for callers rendering an overlay local to one
// paragraph's container. Endpoint flags are resolved against the whole
// range first, so a rectangle only carries ContainsStart or ContainsEnd
// when the endpoint really lies in this layout.
func (c *Collection) SelectionRectsInLayout(r Range, layoutIdx int) []SelectionRect {
	l, ok := c.LayoutAt(layoutIdx)
	if !ok {
		return nil
	}
	lines := c.selectionLines(r)
	var all []SelectionRect
	var layouts []int
	for _, vl := range lines {
		for _, rc := range vl.rects {
			all = append(all, rc)
			layouts = append(layouts, vl.layout)
		}
	}
	markEndpoints(all)
	var rects []SelectionRect
	for i, rc := range all {
		if layouts[i] != layoutIdx {
			continue
		}
		rc.Rect = rc.Rect.Sub(l.origin)
		rects = append(rects, rc)
	}
	return rects
}

// selectionLines walks the range's slice addresses in document order,
// groups them by visual line, splits on direction changes, trims the lines
// holding the endpoints, and closes vertical gaps between consecutive
// lines.
func (c *Collection) selectionLines(r Range) []visualLine {
	if r.Collapsed() {
		return nil
	}
	r = r.normalized()

	// Caret X coordinates, not slice boundaries, trim the first and the
	// last rectangle.
	var (
		startX, endX         int
		haveStartX, haveEndX bool
	)
	if rect, ok := c.caret.CaretRect(r.Start); ok {
		startX, haveStartX = rect.Min.X, true
	}
	if rect, ok := c.caret.CaretRect(r.End); ok {
		endX, haveEndX = rect.Min.X, true
	}

	var (
		lines   []visualLine
		current SelectionRect
		open    bool
	)
	flush := func() {
		if open {
			lines[len(lines)-1].rects = append(lines[len(lines)-1].rects, current)
			open = false
		}
	}
	for addr := range c.Addresses(r) {
		l, _, run, s, ok := c.nodeAt(addr)
		if !ok {
			break
		}
		rect := s.bounds.Add(l.origin)
		sameLine := len(lines) > 0 &&
			lines[len(lines)-1].layout == addr.Layout &&
			lines[len(lines)-1].line == addr.Line
		if !sameLine {
			flush()
			lines = append(lines, visualLine{layout: addr.Layout, line: addr.Line})
		} else if open && current.Direction != run.direction {
			// A direction change starts a new rectangle on the same line,
			// so a right-to-left span is never spliced into an unrelated
			// left-to-right rectangle.
			flush()
		}
		if !open {
			current = SelectionRect{Rect: rect, Direction: run.direction}
			open = true
		} else {
			current.Rect = current.Rect.Union(rect)
		}
	}
	flush()
	if len(lines) == 0 {
		return nil
	}

	if haveStartX {
		trimLine(findLine(lines, r.Start.Address), startX, true)
	}
	if haveEndX {
		trimLine(findLine(lines, r.End.Address), endX, false)
	}
	inflateLines(lines)
	return lines
}

func findLine(lines []visualLine, a Address) *visualLine {
	for i := range lines {
		if lines[i].layout == a.Layout && lines[i].line == a.Line {
			return &lines[i]
		}
	}
	return nil
}

// trimLine clips the rectangle whose horizontal extent contains x. The
// clipped edge depends on the rectangle's writing direction: the leading
// edge for the range start, the trailing edge for the range end.
func trimLine(vl *visualLine, x int, leading bool) {
	if vl == nil {
		return
	}
	for i := range vl.rects {
		rc := &vl.rects[i]
		if x < rc.Rect.Min.X || x > rc.Rect.Max.X {
			continue
		}
		clipMin := leading
		if rc.Direction == RightToLeft {
			clipMin = !clipMin
		}
		if clipMin {
			rc.Rect.Min.X = x
		} else {
			rc.Rect.Max.X = x
		}
		return
	}
}

// inflateLines extends each line's rectangles upward to the previous line's
// bottom edge wherever an inter-line or inter-paragraph gap would show, so
// stacked rectangles render as one unbroken block.
func inflateLines(lines []visualLine) {
	prevBottom := 0
	for i := range lines {
		if i > 0 {
			for j := range lines[i].rects {
				if lines[i].rects[j].Rect.Min.Y > prevBottom {
					lines[i].rects[j].Rect.Min.Y = prevBottom
				}
			}
		}
		bottom := lines[i].rects[0].Rect.Max.Y
		for _, rc := range lines[i].rects[1:] {
			if rc.Rect.Max.Y > bottom {
				bottom = rc.Rect.Max.Y
			}
		}
		prevBottom = bottom
	}
}

func markEndpoints(rects []SelectionRect) []SelectionRect {
	if len(rects) > 0 {
		rects[0].ContainsStart = true
		rects[len(rects)-1].ContainsEnd = true
	}
	return rects
}
