package segment

import (
	"fmt"
	"testing"
)

func TestNextWordBoundary(t *testing.T) {
	seg := Words{}

	testcases := []struct {
		text  string
		index int
		want  int
	}{
		{text: "Hello world", index: 0, want: 6},
		{text: "Hello world", index: 2, want: 6},
		{text: "Hello world", index: 6, want: 11},
		{text: "Hello world", index: 11, want: 11},
		{text: "hello,world!!!", index: 0, want: 6},
		{text: "Bye", index: 0, want: 3},
		{text: "", index: 0, want: 0},
		{text: "Hello", index: -3, want: 5},
		{text: "Hello", index: 99, want: 5},
	}
	for i, tc := range testcases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			if got := seg.NextWordBoundary(tc.text, tc.index); got != tc.want {
				t.Errorf("NextWordBoundary(%q, %d) = %d, want %d", tc.text, tc.index, got, tc.want)
			}
		})
	}
}

func TestPreviousWordBoundary(t *testing.T) {
	seg := Words{}

	testcases := []struct {
		text  string
		index int
		want  int
	}{
		{text: "Hello world", index: 11, want: 6},
		{text: "Hello world", index: 8, want: 6},
		{text: "Hello world", index: 6, want: 0},
		{text: "Hello world", index: 0, want: 0},
		{text: "hello,world!!!", index: 14, want: 6},
		{text: "hello,world!!!", index: 6, want: 0},
		{text: "", index: 0, want: 0},
		{text: "Hello", index: 99, want: 0},
	}
	for i, tc := range testcases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			if got := seg.PreviousWordBoundary(tc.text, tc.index); got != tc.want {
				t.Errorf("PreviousWordBoundary(%q, %d) = %d, want %d", tc.text, tc.index, got, tc.want)
			}
		})
	}
}

func TestGraphemes(t *testing.T) {
	testcases := []struct {
		text string
		want []int
	}{
		{text: "", want: nil},
		{text: "ab", want: []int{0, 1, 2}},
		// A combining acute accent stays in its base rune's cluster.
		{text: "éx", want: []int{0, 2, 3}},
	}
	for i, tc := range testcases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			got := Graphemes(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("Graphemes(%q) = %v, want %v", tc.text, got, tc.want)
			}
			for j := range got {
				if got[j] != tc.want[j] {
					t.Errorf("Graphemes(%q) = %v, want %v", tc.text, got, tc.want)
					break
				}
			}
		})
	}
}
