package dot4gravity

// checkWinner scans every top-left corner (r, c) with r < H-1, c < W-1,
// checks whether the four cells of the 2x2 square are all Stone(same
// player), and increments that player's square counter; a player with three
// or more counted squares wins (player 0 is checked first). Squares are not
// checked for disjointness: overlapping squares that share stones are each
// counted. This is the NORMATIVE detector per
// spec.md §4.6; the legacy four-in-a-row detector from the original
// source is deliberately not implemented.
func checkWinner(b *Board) *PlayerIndex {
	var squareCount [NumPlayers]int
	for r := 0; r < BoardHeight-1; r++ {
		for c := 0; c < BoardWidth-1; c++ {
			corners := [4]Coordinates{
				{Row: r, Col: c},
				{Row: r, Col: c + 1},
				{Row: r + 1, Col: c},
				{Row: r + 1, Col: c + 1},
			}
			first := b.get(corners[0])
			if first.Kind != CellStone {
				continue
			}
			allSame := true
			for _, coord := range corners[1:] {
				cell := b.get(coord)
				if cell.Kind != CellStone || cell.Stone != first.Stone {
					allSame = false
					break
				}
			}
			if allSame {
				squareCount[first.Stone]++
			}
		}
	}
	for p, n := range squareCount {
		if n >= 3 {
			return ptr(PlayerIndex(p))
		}
	}
	return nil
}
