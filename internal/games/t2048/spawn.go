package t2048

import (
	"fmt"
	"math/rand"
)

// SpawnWeight gives an exponent a relative chance of being spawned.
type SpawnWeight struct {
	Exponent uint8
	Weight   int
}

// SpawnDistribution is the set of values a new tile can take.
type SpawnDistribution []SpawnWeight

// DefaultSpawnDistribution spawns a 2 nine times out of ten and a 4 otherwise.
func DefaultSpawnDistribution() SpawnDistribution {
	return SpawnDistribution{
		{Exponent: 1, Weight: 9},
		{Exponent: 2, Weight: 1},
	}
}

// Validate checks that the distribution can be sampled.
func (d SpawnDistribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("t2048: spawn distribution is empty")
	}
	total := 0
	for _, w := range d {
		if w.Exponent < 1 || w.Exponent > MaxExponent {
			return fmt.Errorf("t2048: spawn exponent %d outside 1..%d", w.Exponent, MaxExponent)
		}
		if w.Weight < 0 {
			return fmt.Errorf("t2048: spawn weight %d for exponent %d is negative", w.Weight, w.Exponent)
		}
		total += w.Weight
	}
	if total == 0 {
		return fmt.Errorf("t2048: spawn weights sum to zero")
	}
	return nil
}

// Spawner places new tiles on empty cells.
// It owns the random source for one game session.
type Spawner struct {
	rng           *rand.Rand
	dist          SpawnDistribution
	total         int
	startExponent uint8
}

// NewSpawner creates a spawner drawing from rng. An invalid distribution
// falls back to DefaultSpawnDistribution; a zero start exponent means 1.
func NewSpawner(rng *rand.Rand, dist SpawnDistribution, startExponent uint8) *Spawner {
	if dist.Validate() != nil {
		dist = DefaultSpawnDistribution()
	}
	if startExponent == 0 || startExponent > MaxExponent {
		startExponent = 1
	}
	total := 0
	for _, w := range dist {
		total += w.Weight
	}
	return &Spawner{
		rng:           rng,
		dist:          dist,
		total:         total,
		startExponent: startExponent,
	}
}

// Spawn puts a tile drawn from the distribution on a uniformly chosen empty
// cell. Returns false and leaves the grid untouched when it is full.
func (s *Spawner) Spawn(g *Grid) (Position, bool) {
	return s.place(g, s.pick())
}

// Seed puts a starting tile on a uniformly chosen empty cell.
func (s *Spawner) Seed(g *Grid) (Position, bool) {
	return s.place(g, s.startExponent)
}

func (s *Spawner) place(g *Grid, exp uint8) (Position, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Position{}, false
	}
	pos := empty[s.rng.Intn(len(empty))]
	g.Set(pos.Row, pos.Col, exp)
	return pos, true
}

// pick samples an exponent according to the weights.
func (s *Spawner) pick() uint8 {
	r := s.rng.Intn(s.total)
	for _, w := range s.dist {
		if r < w.Weight {
			return w.Exponent
		}
		r -= w.Weight
	}
	return s.dist[len(s.dist)-1].Exponent
}
