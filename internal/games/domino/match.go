package domino

import "github.com/kamstrup/intmap"

// DefaultMinGroup is the smallest cluster that gets cleared.
const DefaultMinGroup = 3

var neighbors = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindMatches returns every cell that belongs to a 4-connected cluster of one
// color with at least minGroup members. Each cell is visited once, so the
// result holds no duplicates. An empty result means the board is stable.
func FindMatches(b *Board, minGroup int) []Coord {
	visited := intmap.New[int, bool](b.rows * b.cols)
	seen := func(row, col int) bool {
		_, ok := visited.Get(b.index(row, col))
		return ok
	}
	var matches []Coord

	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			start := b.At(r, c)
			if !start.Filled || seen(r, c) {
				continue
			}

			visited.Put(b.index(r, c), true)
			queue := []Coord{{r, c}}
			var cluster []Coord

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				cluster = append(cluster, cur)

				for _, d := range neighbors {
					nr, nc := cur.Row+d.Row, cur.Col+d.Col
					if !b.InBounds(nr, nc) || seen(nr, nc) {
						continue
					}
					next := b.At(nr, nc)
					if !next.Filled || next.Color != start.Color {
						continue
					}
					visited.Put(b.index(nr, nc), true)
					queue = append(queue, Coord{nr, nc})
				}
			}

			if len(cluster) >= minGroup {
				matches = append(matches, cluster...)
			}
		}
	}

	return matches
}
