package t2048

import "fmt"

// findTarget returns where the tile at x ends up when slid toward index 0,
// looking no further back than stop.
func findTarget(line []uint8, x, stop int) int {
	for t := x - 1; t >= stop; t-- {
		if line[t] == 0 {
			continue
		}
		if line[t] == line[x] && line[x] < MaxExponent {
			return t
		}
		return t + 1
	}
	return stop
}

// slideLine compacts a line toward index 0 in place, merging equal
// neighbours. Returns whether anything moved and the score earned.
//
// stop is the lowest index a later tile may still reach. It moves past each
// merge so a freshly merged tile cannot merge again in the same pass.
func slideLine(line []uint8) (moved bool, gained uint64) {
	stop := 0
	for i := range line {
		if line[i] == 0 {
			continue
		}
		t := findTarget(line, i, stop)
		if t == i {
			continue
		}

		if line[t] == line[i] {
			line[t]++
			gained += TileValue(line[t])
			stop = t + 1
		} else {
			if line[t] != 0 {
				panic(fmt.Sprintf("t2048: slide target %d holds %d, want empty", t, line[t]))
			}
			line[t] = line[i]
			stop = t
		}
		line[i] = 0
		moved = true
	}
	return moved, gained
}

// SlideLine slides a copy of line toward index 0.
// The input is left untouched.
func SlideLine(line []uint8) (out []uint8, moved bool, gained uint64) {
	out = append([]uint8(nil), line...)
	moved, gained = slideLine(out)
	return out, moved, gained
}
