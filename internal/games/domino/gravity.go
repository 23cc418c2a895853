package domino

// Collapse lets every column settle: filled cells slide down to the floor,
// keeping their relative order. Cells never change column.
// Reports whether anything moved.
func Collapse(b *Board) bool {
	moved := false
	column := make([]Cell, 0, b.rows)

	for c := 0; c < b.cols; c++ {
		column = column[:0]
		for r := b.rows - 1; r >= 0; r-- {
			if cell := b.At(r, c); cell.Filled {
				column = append(column, cell)
			}
		}

		for r := b.rows - 1; r >= 0; r-- {
			i := b.rows - 1 - r
			before := b.At(r, c)
			if i < len(column) {
				b.Set(r, c, column[i].Color)
			} else {
				b.Clear(r, c)
			}
			if before != b.At(r, c) {
				moved = true
			}
		}
	}

	return moved
}
