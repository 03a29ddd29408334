package textaddr

import (
	"encoding/binary"
	"hash"
	"image"

	"golang.org/x/crypto/blake2b"
)

// fingerprint is a stable content digest used for value-semantics equality
// between snapshots, instead of identity comparison of opaque producer
// objects.
type fingerprint [blake2b.Size256]byte

// contentFingerprint digests the geometry-independent content of the
// collection: the text and the line/run/slice structure with directions,
// link references and character ranges. Two snapshots with equal content
// fingerprints never need position reconciliation.
func (c *Collection) contentFingerprint() fingerprint {
	if c.contentFP == nil {
		h, _ := blake2b.New256(nil)
		for _, l := range c.layouts {
			hashInt(h, len(l.src.Text))
			h.Write([]byte(l.src.Text))
			hashInt(h, len(l.Lines()))
			for _, line := range l.Lines() {
				hashInt(h, len(line.runs))
				for _, run := range line.runs {
					hashInt(h, int(run.direction))
					hashInt(h, len(run.link))
					h.Write([]byte(run.link))
					hashInt(h, len(run.slices))
					for _, s := range run.slices {
						hashInt(h, s.rng.Start)
						hashInt(h, s.rng.End)
					}
				}
			}
		}
		fp := fingerprint(h.Sum(nil))
		c.contentFP = &fp
	}
	return *c.contentFP
}

// geometryFingerprint digests the layout-local geometry: line origins and
// bounds and slice bounds. Layout origins are deliberately excluded; they
// are compared separately so origin-only changes remain distinguishable
// from geometry changes.
func (c *Collection) geometryFingerprint() fingerprint {
	if c.geometryFP == nil {
		h, _ := blake2b.New256(nil)
		for _, l := range c.layouts {
			for _, line := range l.Lines() {
				hashInt(h, line.origin.X)
				hashInt(h, line.origin.Y)
				hashRect(h, line.bounds)
				for _, run := range line.runs {
					for _, s := range run.slices {
						hashRect(h, s.bounds)
					}
				}
			}
		}
		fp := fingerprint(h.Sum(nil))
		c.geometryFP = &fp
	}
	return *c.geometryFP
}

func hashInt(h hash.Hash, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
	h.Write(buf[:])
}

func hashRect(h hash.Hash, r image.Rectangle) {
	hashInt(h, r.Min.X)
	hashInt(h, r.Min.Y)
	hashInt(h, r.Max.X)
	hashInt(h, r.Max.Y)
}
