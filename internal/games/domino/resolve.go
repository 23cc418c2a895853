package domino

// ChainResult summarizes one resolve loop.
type ChainResult struct {
	Chain   int   // Number of match-and-collapse passes
	Removed int   // Cells cleared across all passes
	Passes  []int // Cells cleared per pass
}

// Resolve clears matches and collapses the board until no cluster of
// minGroup remains.
func Resolve(b *Board, minGroup int) ChainResult {
	var res ChainResult

	for {
		matches := FindMatches(b, minGroup)
		if len(matches) == 0 {
			return res
		}

		res.Chain++
		res.Removed += len(matches)
		res.Passes = append(res.Passes, len(matches))

		for _, m := range matches {
			b.Clear(m.Row, m.Col)
		}
		Collapse(b)
	}
}
