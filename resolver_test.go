package textaddr

import (
	"fmt"
	"testing"
)

func TestCharacterIndexRoundTrip(t *testing.T) {
	c := perCharCollection()
	for offset := 0; offset <= c.Len(); offset++ {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			p, ok := c.PositionAtIndex(offset)
			if !ok {
				t.Fatalf("offset %d did not resolve", offset)
			}
			got, ok := c.CharacterIndex(p)
			if !ok || got != offset {
				t.Errorf("round trip of %d via %s = %d", offset, p, got)
			}
		})
	}
}

func TestIdentityOffset(t *testing.T) {
	c := perCharCollection()
	for offset := 0; offset <= c.Len(); offset++ {
		p, ok := c.PositionAtIndex(offset)
		if !ok {
			t.Fatalf("offset %d did not resolve", offset)
		}
		q, ok := c.PositionFrom(p, 0)
		if !ok || q != p {
			t.Errorf("PositionFrom(%s, 0) = %s", p, q)
		}
	}
}

func TestPositionFromBounds(t *testing.T) {
	c := helloByeCollection()
	start := c.StartPosition()

	testcases := []struct {
		offset int
		ok     bool
	}{
		{offset: -1, ok: false},
		{offset: 0, ok: true},
		{offset: 11, ok: true},
		{offset: c.Len(), ok: true},
		{offset: c.Len() + 1, ok: false},
	}
	for i, tc := range testcases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			_, ok := c.PositionFrom(start, tc.offset)
			if ok != tc.ok {
				t.Errorf("PositionFrom(start, %d) ok = %v, want %v", tc.offset, ok, tc.ok)
			}
		})
	}
}

// A boundary index shared by the end of one slice and the start of the next
// resolves to the containing slice with downstream affinity; the
// upper-bound-equality fallback only applies when no slice contains the
// index.
func TestPositionAtBoundaryPrecedence(t *testing.T) {
	c := NewCollection(wrappedSources(), nil)

	p, ok := c.PositionAt(0, 6)
	if !ok {
		t.Fatalf("boundary index did not resolve")
	}
	want := Position{Address: Address{Layout: 0, Line: 1}, Affinity: Downstream}
	if p != want {
		t.Errorf("PositionAt(0, 6) = %s, want %s", p, want)
	}
}

func TestPositionAtEnds(t *testing.T) {
	c := helloByeCollection()

	p, ok := c.PositionAt(0, 0)
	if !ok || p != (Position{Affinity: Downstream}) {
		t.Errorf("PositionAt(0, 0) = %s", p)
	}
	p, ok = c.PositionAt(0, 11)
	want := Position{Address: Address{Layout: 0, Slice: 1}, Affinity: Upstream}
	if !ok || p != want {
		t.Errorf("PositionAt(0, 11) = %s, want %s", p, want)
	}
	if _, ok := c.PositionAt(0, 12); ok {
		t.Errorf("local index past the layout end should not resolve")
	}
	if _, ok := c.PositionAt(2, 0); ok {
		t.Errorf("nonexistent layout should not resolve")
	}
}

func TestPositionAtEmptyLayout(t *testing.T) {
	c := NewCollection([]LayoutSource{{Text: ""}}, nil)
	p, ok := c.PositionAt(0, 0)
	if !ok {
		t.Fatalf("empty layout end did not resolve")
	}
	if p.Affinity != Upstream || p.Address != (Address{}) {
		t.Errorf("degenerate position = %s", p)
	}
}

func TestLocalCharacterIndex(t *testing.T) {
	c := helloByeCollection()
	addr := Address{Layout: 0, Slice: 1}

	testcases := []struct {
		affinity Affinity
		want     int
	}{
		{affinity: Downstream, want: 6},
		{affinity: Upstream, want: 11},
	}
	for i, tc := range testcases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			got, ok := c.LocalCharacterIndex(Position{Address: addr, Affinity: tc.affinity})
			if !ok || got != tc.want {
				t.Errorf("local index = %d, want %d", got, tc.want)
			}
		})
	}

	if _, ok := c.LocalCharacterIndex(Position{Address: Address{Layout: 0, Slice: 5}}); ok {
		t.Errorf("invalid address should not resolve")
	}
}

// A document ending in a zero-length paragraph resolves its final offset to
// that paragraph's degenerate position, and that position maps back to the
// same offset.
func TestCharacterIndexTrailingEmptyLayout(t *testing.T) {
	c := NewCollection(trailingEmptySources(), helloByeOrigins())

	p, ok := c.PositionAtIndex(c.Len())
	if !ok {
		t.Fatalf("document end did not resolve")
	}
	want := Position{Address: Address{Layout: 2}, Affinity: Upstream}
	if p != want {
		t.Errorf("PositionAtIndex(len) = %s, want %s", p, want)
	}
	if idx, ok := c.CharacterIndex(p); !ok || idx != c.Len() {
		t.Errorf("round trip of the document end = %d, want %d", idx, c.Len())
	}
	if q, ok := c.PositionFrom(p, 0); !ok || q != p {
		t.Errorf("PositionFrom(%s, 0) = %s", p, q)
	}
}

func TestLocalCharacterIndexDegeneratePosition(t *testing.T) {
	c := NewCollection(emptyMiddleSources(), helloByeOrigins())

	for i, affinity := range []Affinity{Downstream, Upstream} {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			p := Position{Address: Address{Layout: 1}, Affinity: affinity}
			if idx, ok := c.LocalCharacterIndex(p); !ok || idx != 0 {
				t.Errorf("degenerate local index = %d, want 0", idx)
			}
		})
	}

	// Only the zero address of such a layout is degenerate.
	if _, ok := c.LocalCharacterIndex(Position{Address: Address{Layout: 1, Slice: 1}}); ok {
		t.Errorf("non-zero address in a lineless layout should not resolve")
	}
}

// A paragraph-boundary offset belongs to the following layout's start, not
// the preceding layout's end.
func TestPositionAtIndexParagraphBoundary(t *testing.T) {
	c := helloByeCollection()
	p, ok := c.PositionAtIndex(11)
	if !ok {
		t.Fatalf("boundary offset did not resolve")
	}
	want := Position{Address: Address{Layout: 1}, Affinity: Downstream}
	if p != want {
		t.Errorf("PositionAtIndex(11) = %s, want %s", p, want)
	}

	p, ok = c.PositionAtIndex(c.Len())
	if !ok {
		t.Fatalf("document end did not resolve")
	}
	if p != c.EndPosition() {
		t.Errorf("PositionAtIndex(len) = %s, want %s", p, c.EndPosition())
	}
}
