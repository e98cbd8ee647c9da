package chessmg

// maxMovesInList bounds a generated move list. No reachable chess position
// exceeds ~218 legal moves, so 512 leaves ample headroom.
const maxMovesInList = 512

// GenerateLegalMoves produces every legal move for the side to move:
// pseudo-legal generation followed by a make/test/unmake filter that
// rejects moves leaving the mover's own king in check.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.generatePseudoLegalMoves()
	legal := pseudo[:0:len(pseudo)]
	mover := b.sideToMove
	for _, m := range pseudo {
		b.MakeMove(m)
		if !b.KingInCheck(mover) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m)
	}
	return legal
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateLegalMoves()) > 0
}

// generatePseudoLegalMoves walks every square and dispatches by piece kind,
// without testing self-check.
func (b *Board) generatePseudoLegalMoves() []Move {
	moves := make([]Move, 0, maxMovesInList)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p.Color != b.sideToMove {
				continue
			}
			switch p.Type {
			case Pawn:
				moves = b.genPawnMoves(moves, r, c)
			case Knight:
				moves = b.genKnightMoves(moves, r, c)
			case Bishop, Rook, Queen:
				moves = b.genSlidingMoves(moves, r, c)
			case King:
				moves = b.genKingMoves(moves, r, c)
			}
		}
	}
	return moves
}

// addMove appends a move unless its destination is off-board or occupied by
// an own piece. En passant is exempt from the occupancy check: its
// destination is empty by construction.
func (b *Board) addMove(moves []Move, m Move) []Move {
	if !onBoard(m.To.Row, m.To.Col) {
		return moves
	}
	if m.Flag != MoveEnPassant && b.squares[m.To.Row][m.To.Col].Color == b.sideToMove {
		return moves
	}
	return append(moves, m)
}

// addPromotions emits the four promotion choices for a pawn arriving on the
// promotion rank.
func (b *Board) addPromotions(moves []Move, from, to Square) []Move {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		moves = b.addMove(moves, Move{From: from, To: to, Promotion: pt, Flag: MovePromotion})
	}
	return moves
}

func (b *Board) genPawnMoves(moves []Move, r, c int) []Move {
	player := b.sideToMove
	dir := 1
	startRow, promotionRow := 1, 7
	if player == White {
		dir = -1
		startRow, promotionRow = 6, 0
	}
	from := Square{r, c}

	if !onBoard(r+dir, c) {
		return moves
	}

	// Single push, fanning out into promotions on the last rank.
	if b.squares[r+dir][c].Type == Empty {
		if r+dir == promotionRow {
			moves = b.addPromotions(moves, from, Square{r + dir, c})
		} else {
			moves = b.addMove(moves, Move{From: from, To: Square{r + dir, c}, Flag: MoveNormal})
		}

		// Double push from the start row through an empty intermediate.
		if r == startRow && b.squares[r+2*dir][c].Type == Empty {
			moves = b.addMove(moves, Move{From: from, To: Square{r + 2*dir, c}, Flag: MoveNormal})
		}
	}

	// Diagonal captures, including promotion captures and en passant.
	for _, nc := range [2]int{c - 1, c + 1} {
		if nc < 0 || nc > 7 {
			continue
		}
		target := b.squares[r+dir][nc]
		if target.Type != Empty && target.Color != player {
			if r+dir == promotionRow {
				moves = b.addPromotions(moves, from, Square{r + dir, nc})
			} else {
				moves = b.addMove(moves, Move{From: from, To: Square{r + dir, nc}, Flag: MoveNormal})
			}
		}
		// The en-passant destination is empty; the target square being set
		// at all is the signal that the capture is available this ply.
		if (Square{r + dir, nc}) == b.enPassantTarget {
			moves = b.addMove(moves, Move{From: from, To: Square{r + dir, nc}, Flag: MoveEnPassant})
		}
	}
	return moves
}

func (b *Board) genKnightMoves(moves []Move, r, c int) []Move {
	from := Square{r, c}
	for _, d := range knightOffsets {
		moves = b.addMove(moves, Move{From: from, To: Square{r + d[0], c + d[1]}, Flag: MoveNormal})
	}
	return moves
}

func (b *Board) genSlidingMoves(moves []Move, r, c int) []Move {
	p := b.squares[r][c]
	from := Square{r, c}

	// Bishops use the four diagonal rays, rooks the four orthogonals,
	// queens all eight. rayDirs lists diagonals first.
	startDir, endDir := 0, 8
	switch p.Type {
	case Bishop:
		endDir = 4
	case Rook:
		startDir = 4
	}

	for i := startDir; i < endDir; i++ {
		d := rayDirs[i]
		for k := 1; k < 8; k++ {
			nr, nc := r+d[0]*k, c+d[1]*k
			if !onBoard(nr, nc) {
				break
			}
			target := b.squares[nr][nc]
			if target.Type == Empty {
				moves = b.addMove(moves, Move{From: from, To: Square{nr, nc}, Flag: MoveNormal})
				continue
			}
			if target.Color != b.sideToMove {
				moves = b.addMove(moves, Move{From: from, To: Square{nr, nc}, Flag: MoveNormal})
			}
			break
		}
	}
	return moves
}

func (b *Board) genKingMoves(moves []Move, r, c int) []Move {
	from := Square{r, c}
	for _, d := range kingOffsets {
		moves = b.addMove(moves, Move{From: from, To: Square{r + d[0], c + d[1]}, Flag: MoveNormal})
	}

	// Castling. Rights alone are not trusted: the king must stand on its
	// home square, the in-between squares must be empty, and the two
	// squares the king traverses must not be attacked. Castling out of
	// check is never allowed.
	player := b.sideToMove
	homeRow := 0
	if player == White {
		homeRow = 7
	}
	if r != homeRow || c != 4 {
		return moves
	}
	if b.KingInCheck(player) {
		return moves
	}
	opponent := player.Opposite()

	kingside := b.castling.BlackKing
	queenside := b.castling.BlackQueen
	if player == White {
		kingside = b.castling.WhiteKing
		queenside = b.castling.WhiteQueen
	}

	if kingside &&
		b.squares[homeRow][5].Type == Empty &&
		b.squares[homeRow][6].Type == Empty &&
		!b.IsSquareAttacked(homeRow, 5, opponent) &&
		!b.IsSquareAttacked(homeRow, 6, opponent) {
		moves = b.addMove(moves, Move{From: from, To: Square{homeRow, 6}, Flag: MoveCastleKing})
	}
	// The b-file square must be empty but may be attacked: the king never
	// crosses it.
	if queenside &&
		b.squares[homeRow][1].Type == Empty &&
		b.squares[homeRow][2].Type == Empty &&
		b.squares[homeRow][3].Type == Empty &&
		!b.IsSquareAttacked(homeRow, 2, opponent) &&
		!b.IsSquareAttacked(homeRow, 3, opponent) {
		moves = b.addMove(moves, Move{From: from, To: Square{homeRow, 2}, Flag: MoveCastleQueen})
	}
	return moves
}
