package textaddr

// NextWord resolves the position at the start of the next word after p,
// continuing into the following paragraph when the boundary reaches the end
// of the current one. It reports false when no word segmenter is attached
// or p is not a valid position.
func (c *Collection) NextWord(p Position) (Position, bool) {
	if c.segmenter == nil {
		return Position{}, false
	}
	layoutIdx := p.Address.Layout
	l, ok := c.LayoutAt(layoutIdx)
	if !ok {
		return Position{}, false
	}
	local, ok := c.LocalCharacterIndex(p)
	if !ok {
		return Position{}, false
	}
	boundary := c.segmenter.NextWordBoundary(l.Text(), local)
	if boundary < l.Len() {
		return c.PositionAt(layoutIdx, boundary)
	}
	// Zero-length paragraphs hold no word to land on; skip them the same
	// way the backward loop does.
	for next := layoutIdx + 1; next < len(c.layouts); next++ {
		if nl, _ := c.LayoutAt(next); nl.Len() > 0 {
			return c.PositionAt(next, 0)
		}
	}
	return c.EndPosition(), true
}

// PreviousWord resolves the position at the start of the word preceding p,
// crossing into the previous paragraph when no leftward motion is possible
// within the current one. It reports false when no word segmenter is
// attached or p is not a valid position.
func (c *Collection) PreviousWord(p Position) (Position, bool) {
	if c.segmenter == nil {
		return Position{}, false
	}
	layoutIdx := p.Address.Layout
	l, ok := c.LayoutAt(layoutIdx)
	if !ok {
		return Position{}, false
	}
	local, ok := c.LocalCharacterIndex(p)
	if !ok {
		return Position{}, false
	}
	// Walking one layout back per iteration keeps the cross-paragraph retry
	// bounded even when zero-length paragraphs are present.
	for {
		boundary := c.segmenter.PreviousWordBoundary(l.Text(), local)
		if boundary != 0 || local != 0 {
			return c.PositionAt(layoutIdx, boundary)
		}
		if layoutIdx == 0 {
			return c.StartPosition(), true
		}
		layoutIdx--
		l, _ = c.LayoutAt(layoutIdx)
		local = l.Len()
	}
}

// BlockStart returns the first position of the paragraph containing p.
// When p already is that position, it returns the previous paragraph's
// first position instead, so repeated invocation walks backward one
// paragraph at a time; at the first paragraph it returns p unchanged.
func (c *Collection) BlockStart(p Position) Position {
	layoutIdx := p.Address.Layout
	first := c.blockFirstPosition(layoutIdx)
	if p == first && layoutIdx > 0 {
		return c.blockFirstPosition(layoutIdx - 1)
	}
	return first
}

// BlockEnd returns the last position of the paragraph containing p,
// toggling forward into the next paragraph when p already is at this
// paragraph's end.
func (c *Collection) BlockEnd(p Position) Position {
	layoutIdx := p.Address.Layout
	last := c.blockLastPosition(layoutIdx)
	if p == last && layoutIdx+1 < len(c.layouts) {
		return c.blockLastPosition(layoutIdx + 1)
	}
	return last
}

func (c *Collection) blockFirstPosition(layoutIdx int) Position {
	if addr, ok := c.firstAddress(layoutIdx); ok {
		return Position{Address: addr, Affinity: Downstream}
	}
	return Position{Address: Address{Layout: layoutIdx}, Affinity: Downstream}
}

func (c *Collection) blockLastPosition(layoutIdx int) Position {
	if addr, ok := c.lastAddress(layoutIdx); ok {
		return Position{Address: addr, Affinity: Upstream}
	}
	return Position{Address: Address{Layout: layoutIdx}, Affinity: Upstream}
}

// ReconcileRange remaps a range captured against a previous snapshot onto
// this one. It reports false when the two snapshots' layout counts differ,
// meaning the content diverged too far to remap; callers must then clear or
// recompute the selection instead of trusting a partial result. Identical
// text with re-split slices (different wrap points) remaps correctly, since
// each endpoint is re-resolved against this snapshot's slice geometry.
func (c *Collection) ReconcileRange(r Range, from *Collection) (Range, bool) {
	if from == nil || len(c.layouts) != len(from.layouts) {
		return Range{}, false
	}
	start, ok := c.reconcilePosition(r.Start, from)
	if !ok {
		return Range{}, false
	}
	end, ok := c.reconcilePosition(r.End, from)
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

func (c *Collection) reconcilePosition(p Position, from *Collection) (Position, bool) {
	local, ok := from.LocalCharacterIndex(p)
	if !ok {
		logger.Debug("stale position no longer resolves against its own snapshot", "position", p.String())
		return Position{}, false
	}
	return c.PositionAt(p.Address.Layout, local)
}
