package segment

import (
	"github.com/go-text/typesetting/segmenter"
)

// Graphemes returns the grapheme cluster boundaries of text as rune
// offsets, including 0 and the text length. Empty text yields nil.
func Graphemes(text string) []int {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init(runes)
	var boundaries []int
	iter := seg.GraphemeIterator()
	if iter.Next() {
		graph := iter.Grapheme()
		boundaries = append(boundaries, graph.Offset, graph.Offset+len(graph.Text))
	}
	for iter.Next() {
		graph := iter.Grapheme()
		boundaries = append(boundaries, graph.Offset+len(graph.Text))
	}
	return boundaries
}
