// Package segment provides default text segmentation services: word
// boundary lookup for word navigation, and grapheme cluster boundaries for
// position snapping and slice splitting.
package segment

import "unicode"

// Words locates word-start boundaries in a single paragraph's text and
// satisfies the word-boundary service expected by the addressing layer.
// Whitespace, punctuation and symbols count as word breaks.
type Words struct{}

// NextWordBoundary returns the rune offset of the start of the next word
// after index, or the text length in runes when there is none.
func (Words) NextWordBoundary(text string, index int) int {
	runes := []rune(text)
	i := clamp(index, len(runes))
	for i < len(runes) && !isWordBreak(runes[i]) {
		i++
	}
	for i < len(runes) && isWordBreak(runes[i]) {
		i++
	}
	return i
}

// PreviousWordBoundary returns the rune offset of the start of the word
// preceding index, or 0 when no leftward motion is possible.
func (Words) PreviousWordBoundary(text string, index int) int {
	runes := []rune(text)
	i := clamp(index, len(runes))
	for i > 0 && isWordBreak(runes[i-1]) {
		i--
	}
	for i > 0 && !isWordBreak(runes[i-1]) {
		i--
	}
	return i
}

func isWordBreak(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
