package board

import "slices"

// Range returns the integers from start to end inclusive.
// The sequence descends when start is greater than end.
func Range(start, end int) []int {
	step := 1
	if end < start {
		step = -1
	}

	n := (end-start)*step + 1
	out := make([]int, 0, n)
	for v := start; len(out) < n; v += step {
		out = append(out, v)
	}
	return out
}

// Row returns the tiles in row n ordered by column.
func Row(tiles []*Tile, n int) []*Tile {
	return line(tiles, func(p Position) (int, int) { return p.x, p.y }, n)
}

// Column returns the tiles in column n ordered by row.
func Column(tiles []*Tile, n int) []*Tile {
	return line(tiles, func(p Position) (int, int) { return p.y, p.x }, n)
}

// Group partitions tiles into Size rows or columns, each sorted ascending
// along the axis the tiles travel on.
func Group(tiles []*Tile, axis Axis) [][]*Tile {
	pick := Row
	if axis == Columns {
		pick = Column
	}

	groups := make([][]*Tile, 0, Size)
	for _, n := range Range(0, Size-1) {
		groups = append(groups, pick(tiles, n))
	}
	return groups
}

// line selects tiles whose fixed coordinate is n and sorts them by the free one.
func line(tiles []*Tile, coords func(Position) (fixed, free int), n int) []*Tile {
	var out []*Tile
	for _, t := range tiles {
		if fixed, _ := coords(t.position); fixed == n {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, func(a, b *Tile) int {
		_, fa := coords(a.position)
		_, fb := coords(b.position)
		return fa - fb
	})
	return out
}

func reversed(tiles []*Tile) []*Tile {
	out := slices.Clone(tiles)
	slices.Reverse(out)
	return out
}
