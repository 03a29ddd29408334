package textaddr

import (
	"image"
)

// originTable resolves string anchors to fixed origin points.
type originTable map[string]image.Point

func (t originTable) ResolveOrigin(anchor any) image.Point {
	key, _ := anchor.(string)
	return t[key]
}

// charSlices builds one slice per character, each charWidth wide, starting
// at x.
func charSlices(from, to, x, charWidth, y0, y1 int) []SliceSource {
	var slices []SliceSource
	for i := from; i < to; i++ {
		slices = append(slices, SliceSource{
			Bounds: image.Rect(x+(i-from)*charWidth, y0, x+(i-from+1)*charWidth, y1),
			Range:  CharRange{Start: i, End: i + 1},
		})
	}
	return slices
}

// helloByeSources is the two-paragraph document used across tests:
// "Hello world" (11 chars, one line, one run, slices [0,6) and [6,11)) at
// origin (0,0), and "Bye" (3 chars) at origin (0,30).
func helloByeSources() []LayoutSource {
	return []LayoutSource{
		{
			Text:   "Hello world",
			Anchor: "p0",
			Lines: []LineSource{{
				Bounds: image.Rect(0, 0, 110, 20),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices: []SliceSource{
						{Bounds: image.Rect(0, 0, 60, 20), Range: CharRange{Start: 0, End: 6}},
						{Bounds: image.Rect(60, 0, 110, 20), Range: CharRange{Start: 6, End: 11}},
					},
				}},
			}},
		},
		{
			Text:   "Bye",
			Anchor: "p1",
			Lines: []LineSource{{
				Bounds: image.Rect(0, 0, 30, 20),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices: []SliceSource{
						{Bounds: image.Rect(0, 0, 30, 20), Range: CharRange{Start: 0, End: 3}},
					},
				}},
			}},
		},
	}
}

func helloByeOrigins() originTable {
	return originTable{
		"p0": image.Pt(0, 0),
		"p1": image.Pt(0, 30),
	}
}

func helloByeCollection(opts ...Option) *Collection {
	return NewCollection(helloByeSources(), helloByeOrigins(), opts...)
}

// perCharCollection is the two-paragraph document with one slice per
// character, the granularity at which offsets and positions round-trip
// exactly.
func perCharCollection(opts ...Option) *Collection {
	sources := []LayoutSource{
		{
			Text:   "Hello world",
			Anchor: "p0",
			Lines: []LineSource{{
				Bounds: image.Rect(0, 0, 110, 20),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices:    charSlices(0, 11, 0, 10, 0, 20),
				}},
			}},
		},
		{
			Text:   "Bye",
			Anchor: "p1",
			Lines: []LineSource{{
				Bounds: image.Rect(0, 0, 30, 20),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices:    charSlices(0, 3, 0, 10, 0, 20),
				}},
			}},
		},
	}
	return NewCollection(sources, helloByeOrigins(), opts...)
}

// emptyMiddleSources inserts a zero-length paragraph between the two
// helloBye paragraphs.
func emptyMiddleSources() []LayoutSource {
	hb := helloByeSources()
	return []LayoutSource{hb[0], {Text: ""}, hb[1]}
}

// trailingEmptySources appends a zero-length paragraph after the helloBye
// document.
func trailingEmptySources() []LayoutSource {
	return append(helloByeSources(), LayoutSource{Text: ""})
}

// wrappedSources is "Hello world" wrapped over two lines with a 2px
// inter-line gap: "Hello " on line 0 and "world" on line 1.
func wrappedSources() []LayoutSource {
	return []LayoutSource{{
		Text:   "Hello world",
		Anchor: "p0",
		Lines: []LineSource{
			{
				Bounds: image.Rect(0, 0, 60, 20),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices: []SliceSource{
						{Bounds: image.Rect(0, 0, 60, 20), Range: CharRange{Start: 0, End: 6}},
					},
				}},
			},
			{
				Bounds: image.Rect(0, 22, 50, 42),
				Runs: []RunSource{{
					Direction: LeftToRight,
					Slices: []SliceSource{
						{Bounds: image.Rect(0, 22, 50, 42), Range: CharRange{Start: 6, End: 11}},
					},
				}},
			},
		},
	}}
}

// bidiSources is a single line mixing a left-to-right run over [0,5) with a
// right-to-left run over [5,10).
func bidiSources() []LayoutSource {
	return []LayoutSource{{
		Text:   "abcdeABCDE",
		Anchor: "p0",
		Lines: []LineSource{{
			Bounds: image.Rect(0, 0, 100, 20),
			Runs: []RunSource{
				{
					Direction: LeftToRight,
					Slices: []SliceSource{
						{Bounds: image.Rect(0, 0, 50, 20), Range: CharRange{Start: 0, End: 5}},
					},
				},
				{
					Direction: RightToLeft,
					Slices: []SliceSource{
						{Bounds: image.Rect(80, 0, 100, 20), Range: CharRange{Start: 5, End: 7}},
						{Bounds: image.Rect(50, 0, 80, 20), Range: CharRange{Start: 7, End: 10}},
					},
				},
			},
		}},
	}}
}
