package pocketcube

import "math/rand/v2"

// projection is the hash basis: one random 64-bit coefficient per facelet
// slot, drawn once per process and reused for every hash. Hashes are
// therefore stable within a run but not across runs. Forcing the low bit
// keeps every coefficient odd, so no slot degenerates to a zero term.
var projection = newProjection()

func newProjection() [NumFacelets]uint64 {
	var p [NumFacelets]uint64
	for i := range p {
		p[i] = rand.Uint64() | 1
	}
	return p
}

// Hash returns a hash of the facelet array: the projection of the facelet
// vector onto the per-process random basis. Equal cubes always hash equal;
// unequal cubes may collide, so lookups must re-check with Equal.
func (c *Cube) Hash() uint64 {
	var h uint64
	for i, f := range c.facelets {
		h += projection[i] * uint64(f+1)
	}
	return h
}

// cubeSet is a collision-tolerant set of configurations keyed by Hash and
// verified by Equal. It retains the first cube added for each configuration,
// ancestry included, so bidirectional search can walk a matched entry back
// to its root.
type cubeSet struct {
	buckets map[uint64][]*Cube
}

func newCubeSet() *cubeSet {
	return &cubeSet{buckets: make(map[uint64][]*Cube)}
}

// add inserts c if its configuration is not yet present. It reports whether
// the insert happened.
func (s *cubeSet) add(c *Cube) bool {
	h := c.Hash()
	for _, o := range s.buckets[h] {
		if o.Equal(c) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], c)
	return true
}

// get returns the stored cube equal to c, if any.
func (s *cubeSet) get(c *Cube) (*Cube, bool) {
	for _, o := range s.buckets[c.Hash()] {
		if o.Equal(c) {
			return o, true
		}
	}
	return nil, false
}

// has reports whether a configuration equal to c is present.
func (s *cubeSet) has(c *Cube) bool {
	_, ok := s.get(c)
	return ok
}
