package textaddr

import (
	"cmp"

	"github.com/rdleal/intervalst/interval"
)

// Link is a hyperlink carried by a run, located by the absolute document
// character range its slices cover and the address of its first slice.
type Link struct {
	Ref     string
	Range   CharRange
	Address Address
}

// linkIndex stores run link references in an interval tree keyed by their
// absolute character ranges, so overlapping links remain queryable.
type linkIndex struct {
	tree *interval.MultiValueSearchTree[Link, int]
}

func (c *Collection) indexLinks() *linkIndex {
	if c.links == nil {
		tree := interval.NewMultiValueSearchTree[Link](func(a, b int) int {
			return cmp.Compare(a, b)
		})
		for layoutIdx, l := range c.layouts {
			base := c.starts[layoutIdx]
			for li, line := range l.Lines() {
				for ri, run := range line.runs {
					if run.link == "" || len(run.slices) == 0 {
						continue
					}
					rng := CharRange{
						Start: base + run.slices[0].rng.Start,
						End:   base + run.slices[len(run.slices)-1].rng.End,
					}
					if rng.Len() <= 0 {
						continue
					}
					tree.Insert(rng.Start, rng.End, Link{
						Ref:     run.link,
						Range:   rng,
						Address: Address{Layout: layoutIdx, Line: li, Run: ri},
					})
				}
			}
		}
		c.links = &linkIndex{tree: tree}
	}
	return c.links
}

// LinksAt returns the links covering the given absolute character index.
func (c *Collection) LinksAt(index int) []Link {
	all, _ := c.indexLinks().tree.AllIntersections(index, index+1)
	return all
}

// LinksInRange returns the links overlapping the half-open character range
// [start, end).
func (c *Collection) LinksInRange(start, end int) []Link {
	if start >= end {
		return nil
	}
	all, _ := c.indexLinks().tree.AllIntersections(start, end)
	return all
}

// LinkAt returns the link carried by the run addressed by a.
func (c *Collection) LinkAt(a Address) (Link, bool) {
	_, _, run, _, ok := c.nodeAt(a)
	if !ok || run.link == "" || len(run.slices) == 0 {
		return Link{}, false
	}
	base := c.starts[a.Layout]
	return Link{
		Ref: run.link,
		Range: CharRange{
			Start: base + run.slices[0].rng.Start,
			End:   base + run.slices[len(run.slices)-1].rng.End,
		},
		Address: Address{Layout: a.Layout, Line: a.Line, Run: a.Run},
	}, true
}
