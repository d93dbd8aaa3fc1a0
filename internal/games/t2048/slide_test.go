package t2048

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name  string
		input []uint8
		want  []uint8
		moved bool
		score uint64
	}{
		{"pair at the far end", []uint8{0, 0, 2, 2}, []uint8{3, 0, 0, 0}, true, 8},
		{"trailing tile does not join a fresh merge", []uint8{1, 1, 1, 0}, []uint8{2, 1, 0, 0}, true, 4},
		{"two pairs", []uint8{1, 1, 1, 1}, []uint8{2, 2, 0, 0}, true, 8},
		{"gap between equal tiles", []uint8{2, 0, 0, 2}, []uint8{3, 0, 0, 0}, true, 8},
		{"equal tiles after moving", []uint8{0, 1, 0, 1}, []uint8{2, 0, 0, 0}, true, 4},
		{"merged tile is not merged again", []uint8{1, 1, 2, 0}, []uint8{2, 2, 0, 0}, true, 4},
		{"older equal tile is not merged into", []uint8{3, 2, 2, 2}, []uint8{3, 3, 2, 0}, true, 8},
		{"single tile slides", []uint8{0, 3, 0, 0}, []uint8{3, 0, 0, 0}, true, 0},
		{"no change needed", []uint8{2, 1, 0, 0}, []uint8{2, 1, 0, 0}, false, 0},
		{"packed without pairs", []uint8{1, 2, 3, 4}, []uint8{1, 2, 3, 4}, false, 0},
		{"empty line", []uint8{0, 0, 0, 0}, []uint8{0, 0, 0, 0}, false, 0},
		{"five cells", []uint8{1, 0, 1, 2, 2}, []uint8{2, 3, 0, 0, 0}, true, 12},
		{"saturated tiles never merge", []uint8{MaxExponent, MaxExponent, 0, 0}, []uint8{MaxExponent, MaxExponent, 0, 0}, false, 0},
		{"merge into the top exponent", []uint8{62, 62, 0}, []uint8{MaxExponent, 0, 0}, true, 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.input)
			got, moved, score := SlideLine(in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SlideLine(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if moved != tt.moved {
				t.Errorf("SlideLine(%v) moved = %v, want %v", tt.input, moved, tt.moved)
			}
			if score != tt.score {
				t.Errorf("SlideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !slices.Equal(in, tt.input) {
				t.Errorf("SlideLine modified its input: %v", in)
			}
		})
	}
}

// referenceSlide compacts the line first and then merges neighbouring pairs
// left to right, which is the textbook statement of the rule.
func referenceSlide(line []uint8) ([]uint8, uint64) {
	var tiles []uint8
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	out := make([]uint8, 0, len(line))
	var score uint64
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] && tiles[i] < MaxExponent {
			out = append(out, tiles[i]+1)
			score += TileValue(tiles[i] + 1)
			i++
			continue
		}
		out = append(out, tiles[i])
	}
	for len(out) < len(line) {
		out = append(out, 0)
	}
	return out, score
}

func countTiles(line []uint8) int {
	n := 0
	for _, v := range line {
		if v != 0 {
			n++
		}
	}
	return n
}

func mass(line []uint8) uint64 {
	var m uint64
	for _, v := range line {
		m += TileValue(v)
	}
	return m
}

func TestSlideLineProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	values := []uint8{0, 0, 1, 1, 2, 3, 62, MaxExponent}

	for range 5000 {
		n := MinSize + rng.Intn(6)
		line := make([]uint8, n)
		for i := range line {
			line[i] = values[rng.Intn(len(values))]
		}

		got, moved, score := SlideLine(line)
		want, wantScore := referenceSlide(line)

		if !slices.Equal(got, want) || score != wantScore {
			t.Fatalf("SlideLine(%v) = %v +%d, want %v +%d", line, got, score, want, wantScore)
		}
		if moved != !slices.Equal(got, line) {
			t.Fatalf("SlideLine(%v) moved = %v for result %v", line, moved, got)
		}
		if countTiles(got) > countTiles(line) {
			t.Fatalf("SlideLine(%v) = %v gained tiles", line, got)
		}
		if mass(got) != mass(line) {
			t.Fatalf("SlideLine(%v) = %v changed total face value %d -> %d", line, got, mass(line), mass(got))
		}
		if merges := countTiles(line) - countTiles(got); merges == 0 && score != 0 {
			t.Fatalf("SlideLine(%v) scored %d without merging", line, score)
		}

		for i := 1; i < len(got); i++ {
			if got[i] != 0 && got[i-1] == 0 {
				t.Fatalf("SlideLine(%v) = %v left a gap", line, got)
			}
		}
	}
}
