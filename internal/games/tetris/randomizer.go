package tetris

import "math/rand"

// Randomizer is a 7-bag generator feeding a lookahead queue.
// Every bag is a uniform permutation of Kinds, so any aligned run of seven
// draws contains each kind exactly once.
type Randomizer struct {
	rng   *rand.Rand
	depth int
	bag   []Kind
	queue []Kind
}

// NewRandomizer creates a randomizer drawing from rng with a queue of depth kinds.
func NewRandomizer(rng *rand.Rand, depth int) *Randomizer {
	r := &Randomizer{
		rng:   rng,
		depth: depth,
		bag:   make([]Kind, 0, len(Kinds)),
		queue: make([]Kind, 0, depth+1),
	}
	r.fill()
	return r
}

// Next pops the front of the queue and tops it back up.
func (r *Randomizer) Next() Kind {
	if len(r.queue) == 0 {
		r.fill()
	}
	k := r.queue[0]
	r.queue = append(r.queue[:0], r.queue[1:]...)
	r.fill()
	return k
}

// Peek returns up to n upcoming kinds without consuming them.
func (r *Randomizer) Peek(n int) []Kind {
	n = min(max(n, 0), len(r.queue))
	return append([]Kind(nil), r.queue[:n]...)
}

// Len returns the current queue length.
func (r *Randomizer) Len() int {
	return len(r.queue)
}

// refillBag loads a fresh shuffled permutation of all kinds.
func (r *Randomizer) refillBag() {
	r.bag = append(r.bag[:0], Kinds[:]...)
	r.rng.Shuffle(len(r.bag), func(i, j int) {
		r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
	})
}

// fill moves kinds from the bag to the queue until it reaches depth.
func (r *Randomizer) fill() {
	for len(r.queue) < r.depth {
		if len(r.bag) == 0 {
			r.refillBag()
		}
		r.queue = append(r.queue, r.bag[0])
		r.bag = r.bag[1:]
	}
}
