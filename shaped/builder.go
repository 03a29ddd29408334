// Package shaped builds raw paragraph input for the addressing layer from
// a gioui.org/text glyph stream: lines from line-break flags, runs from
// run-break flags with their bidi direction, and one slice per glyph
// cluster.
package shaped

import (
	"image"

	"gioui.org/text"
	"golang.org/x/image/math/fixed"

	"github.com/oligo/textaddr"
	"github.com/oligo/textaddr/segment"
)

// Builder assembles one paragraph at a time. Feed it the paragraph's glyphs
// with Glyph, then call Paragraph to collect the result and reset the
// builder for the next paragraph.
type Builder struct {
	lines []textaddr.LineSource
	runs  []textaddr.RunSource

	// current run state
	slices []textaddr.SliceSource
	runDir textaddr.Direction
	runSet bool

	// current glyph cluster state
	clusterMinX, clusterMaxX fixed.Int26_6
	clusterRunes             int
	clusterOpen              bool

	// current line state
	lineMinX, lineMaxX fixed.Int26_6
	lineY              int
	lineStarted        bool
	ascent, descent    fixed.Int26_6

	runeOff int
}

// Glyph indexes one glyph of the current paragraph.
func (b *Builder) Glyph(gl text.Glyph) {
	dir := textaddr.LeftToRight
	if gl.Flags&text.FlagTowardOrigin != 0 {
		dir = textaddr.RightToLeft
	}
	if !b.runSet {
		b.runDir = dir
		b.runSet = true
	}

	if !b.clusterOpen {
		b.clusterMinX = gl.X
		b.clusterMaxX = gl.X
		b.clusterOpen = true
		b.lineY = int(gl.Y)
		b.ascent = gl.Ascent
		b.descent = gl.Descent
	}
	if gl.X < b.clusterMinX {
		b.clusterMinX = gl.X
	}
	if end := gl.X + gl.Advance; end > b.clusterMaxX {
		b.clusterMaxX = end
	}
	if !b.lineStarted {
		b.lineMinX = gl.X
		b.lineMaxX = gl.X
		b.lineStarted = true
	}
	if gl.X < b.lineMinX {
		b.lineMinX = gl.X
	}
	if end := gl.X + gl.Advance; end > b.lineMaxX {
		b.lineMaxX = end
	}
	b.clusterRunes += int(gl.Runes)

	if gl.Flags&text.FlagClusterBreak != 0 {
		if gl.Flags&text.FlagParagraphBreak != 0 {
			// Paragraph-breaking clusters are zero-width; emitting a slice
			// for them would create a visually empty addressable unit.
			b.runeOff += b.clusterRunes
		} else {
			b.closeCluster()
		}
		b.clusterRunes = 0
		b.clusterOpen = false
	}
	if gl.Flags&text.FlagRunBreak != 0 {
		b.closeRun()
	}
	if gl.Flags&text.FlagLineBreak != 0 {
		b.closeLine()
	}
}

// Paragraph finalizes the paragraph with its joined text and anchor and
// resets the builder.
func (b *Builder) Paragraph(src string, anchor any) textaddr.LayoutSource {
	b.closeCluster()
	b.closeLine()
	layout := textaddr.LayoutSource{
		Text:   src,
		Anchor: anchor,
		Lines:  b.lines,
	}
	*b = Builder{}
	return layout
}

func (b *Builder) closeCluster() {
	if b.clusterRunes == 0 {
		return
	}
	b.slices = append(b.slices, textaddr.SliceSource{
		Bounds: image.Rect(
			b.clusterMinX.Floor(),
			b.lineY-b.ascent.Ceil(),
			b.clusterMaxX.Ceil(),
			b.lineY+b.descent.Floor(),
		),
		Range: textaddr.CharRange{Start: b.runeOff, End: b.runeOff + b.clusterRunes},
	})
	b.runeOff += b.clusterRunes
	b.clusterRunes = 0
	b.clusterOpen = false
}

func (b *Builder) closeRun() {
	if len(b.slices) == 0 {
		b.runSet = false
		return
	}
	b.runs = append(b.runs, textaddr.RunSource{
		Direction: b.runDir,
		Slices:    b.slices,
	})
	b.slices = nil
	b.runSet = false
}

func (b *Builder) closeLine() {
	b.closeRun()
	if len(b.runs) == 0 {
		return
	}
	b.lines = append(b.lines, textaddr.LineSource{
		Origin: image.Pt(b.lineMinX.Floor(), b.lineY),
		Bounds: image.Rect(
			b.lineMinX.Floor(),
			b.lineY-b.ascent.Ceil(),
			b.lineMaxX.Ceil(),
			b.lineY+b.descent.Floor(),
		),
		Runs: b.runs,
	})
	b.runs = nil
	b.lineStarted = false
}

// FromText builds a paragraph without a shaper: a single line and run with
// one zero-geometry slice per grapheme cluster. It supports addressing and
// navigation when no glyph stream is available, the same way a fallback
// layout pass fakes glyphs per rune.
func FromText(src string, anchor any) textaddr.LayoutSource {
	boundaries := segment.Graphemes(src)
	if len(boundaries) < 2 {
		return textaddr.LayoutSource{Text: src, Anchor: anchor}
	}
	slices := make([]textaddr.SliceSource, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		slices = append(slices, textaddr.SliceSource{
			Range: textaddr.CharRange{Start: boundaries[i], End: boundaries[i+1]},
		})
	}
	return textaddr.LayoutSource{
		Text:   src,
		Anchor: anchor,
		Lines: []textaddr.LineSource{{
			Runs: []textaddr.RunSource{{Slices: slices}},
		}},
	}
}
