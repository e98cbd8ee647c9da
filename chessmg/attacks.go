package chessmg

// Ray directions shared by the attack scan and the slider generator:
// four diagonals first, then four orthogonals.
var rayDirs = [8][2]int{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// IsSquareAttacked reports whether any piece of color attacker could
// capture on (r, c). The test is purely geometric: it radiates rays and
// offsets outward from the square and does not care whether (r, c) is
// occupied.
func (b *Board) IsSquareAttacked(r, c int, attacker Color) bool {
	// Sliders: first piece on each ray blocks it; diagonal rays hit
	// bishops and queens, orthogonal rays rooks and queens.
	for i, d := range rayDirs {
		for k := 1; k < 8; k++ {
			nr, nc := r+d[0]*k, c+d[1]*k
			if !onBoard(nr, nc) {
				break
			}
			p := b.squares[nr][nc]
			if p.Type == Empty {
				continue
			}
			if p.Color == attacker {
				if p.Type == Queen {
					return true
				}
				if i < 4 && p.Type == Bishop {
					return true
				}
				if i >= 4 && p.Type == Rook {
					return true
				}
			}
			break
		}
	}

	for _, d := range knightOffsets {
		nr, nc := r+d[0], c+d[1]
		if !onBoard(nr, nc) {
			continue
		}
		p := b.squares[nr][nc]
		if p.Type == Knight && p.Color == attacker {
			return true
		}
	}

	// Pawns attack diagonally forward from their own perspective: a White
	// attacker sits one row below (row+1), a Black attacker one row above.
	pr := r + 1
	if attacker == Black {
		pr = r - 1
	}
	if pr >= 0 && pr < 8 {
		for _, nc := range [2]int{c - 1, c + 1} {
			if nc < 0 || nc > 7 {
				continue
			}
			p := b.squares[pr][nc]
			if p.Type == Pawn && p.Color == attacker {
				return true
			}
		}
	}

	for _, d := range kingOffsets {
		nr, nc := r+d[0], c+d[1]
		if !onBoard(nr, nc) {
			continue
		}
		p := b.squares[nr][nc]
		if p.Type == King && p.Color == attacker {
			return true
		}
	}

	return false
}

// KingInCheck reports whether the king of the given color is attacked.
// A board with no such king is never in check.
func (b *Board) KingInCheck(color Color) bool {
	kp := b.findKing(color)
	if kp.Row == -1 {
		return false
	}
	return b.IsSquareAttacked(kp.Row, kp.Col, color.Opposite())
}
