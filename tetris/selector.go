package tetris

import "math/rand/v2"

// RandomSelector picks a shape uniformly at random.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded with seed. Two selectors with
// the same seed produce the same sequence.
func NewRandomSelector(seed uint64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Select returns a random catalog entry.
func (s *RandomSelector) Select(catalog []Shape) Shape {
	return catalog[s.rng.IntN(len(catalog))]
}

// BagSelector deals the catalog in shuffled bags so every shape appears once
// per len(catalog) spawns.
type BagSelector struct {
	rng *rand.Rand
	bag []int
}

// NewBagSelector creates a bag selector seeded with seed.
func NewBagSelector(seed uint64) *BagSelector {
	return &BagSelector{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Select returns the next shape from the current bag, refilling it when empty.
func (s *BagSelector) Select(catalog []Shape) Shape {
	if len(s.bag) == 0 {
		s.bag = s.rng.Perm(len(catalog))
	}
	next := s.bag[0]
	s.bag = s.bag[1:]
	return catalog[next]
}

// SequenceSelector cycles through a fixed list of kinds.
type SequenceSelector struct {
	kinds []ShapeKind
	next  int
}

// NewSequenceSelector creates a round-robin selector over kinds. With no
// kinds it walks the whole catalog in order.
func NewSequenceSelector(kinds ...ShapeKind) *SequenceSelector {
	return &SequenceSelector{kinds: kinds}
}

// Select returns the next kind in the sequence.
func (s *SequenceSelector) Select(catalog []Shape) Shape {
	if len(s.kinds) == 0 {
		shape := catalog[s.next%len(catalog)]
		s.next++
		return shape
	}
	kind := s.kinds[s.next%len(s.kinds)]
	s.next++
	return catalog[kind]
}
