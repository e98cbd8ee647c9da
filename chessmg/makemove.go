package chessmg

// moveRecord holds everything UnmakeMove needs to restore the pre-move
// state exactly.
type moveRecord struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevSide      Color
}

func (b *Board) clearEnPassant() {
	b.enPassantTarget = NoSquare
}

// MakeMove applies a move in place and pushes a history record. The move
// must come from GenerateLegalMoves (or be one the legality filter is about
// to test); MakeMove itself performs no validation.
func (b *Board) MakeMove(m Move) {
	rec := moveRecord{
		move:          m,
		prevCastling:  b.castling,
		prevEnPassant: b.enPassantTarget,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevSide:      b.sideToMove,
	}

	from, to := m.From, m.To
	moving := b.squares[from.Row][from.Col]
	rec.captured = b.squares[to.Row][to.Col]

	resetHalfmove := false

	switch m.Flag {
	case MoveCastleKing, MoveCastleQueen:
		b.squares[to.Row][to.Col] = moving
		b.squares[from.Row][from.Col] = noPiece

		// The rook jumps to the square the king crossed: f-file for
		// kingside, d-file for queenside.
		row := to.Row
		if m.Flag == MoveCastleKing {
			b.squares[row][5] = b.squares[row][7]
			b.squares[row][7] = noPiece
		} else {
			b.squares[row][3] = b.squares[row][0]
			b.squares[row][0] = noPiece
		}
		b.clearEnPassant()
		resetHalfmove = true

	case MoveEnPassant:
		b.squares[to.Row][to.Col] = moving
		b.squares[from.Row][from.Col] = noPiece

		// The captured pawn sits behind the target square.
		capRow := to.Row - 1
		if rec.prevSide == White {
			capRow = to.Row + 1
		}
		if onBoard(capRow, to.Col) {
			rec.captured = b.squares[capRow][to.Col]
			b.squares[capRow][to.Col] = noPiece
		}
		b.clearEnPassant()
		resetHalfmove = true

	case MovePromotion:
		b.squares[to.Row][to.Col] = Piece{m.Promotion, moving.Color}
		b.squares[from.Row][from.Col] = noPiece
		b.clearEnPassant()
		resetHalfmove = true

	default:
		b.squares[to.Row][to.Col] = moving
		b.squares[from.Row][from.Col] = noPiece

		if rec.captured.Type != Empty {
			resetHalfmove = true
		}
		if moving.Type == Pawn || moving.Type == King {
			resetHalfmove = true
		}

		// A double pawn push leaves its skipped square as the en-passant
		// target for exactly one ply.
		if moving.Type == Pawn && (to.Row-from.Row == 2 || from.Row-to.Row == 2) {
			b.enPassantTarget = Square{(from.Row + to.Row) / 2, from.Col}
		} else {
			b.clearEnPassant()
		}
	}

	// Rights maintenance, independent of the flag: a king move forfeits
	// both of its rights, a rook leaving or being captured on a home
	// corner forfeits the matching one.
	if rec.captured.Type == Rook {
		switch {
		case rec.captured.Color == White && to.Row == 7 && to.Col == 0:
			b.castling.WhiteQueen = false
		case rec.captured.Color == White && to.Row == 7 && to.Col == 7:
			b.castling.WhiteKing = false
		case rec.captured.Color == Black && to.Row == 0 && to.Col == 0:
			b.castling.BlackQueen = false
		case rec.captured.Color == Black && to.Row == 0 && to.Col == 7:
			b.castling.BlackKing = false
		}
	}
	if moving.Type == Rook {
		switch {
		case moving.Color == White && from.Row == 7 && from.Col == 0:
			b.castling.WhiteQueen = false
		case moving.Color == White && from.Row == 7 && from.Col == 7:
			b.castling.WhiteKing = false
		case moving.Color == Black && from.Row == 0 && from.Col == 0:
			b.castling.BlackQueen = false
		case moving.Color == Black && from.Row == 0 && from.Col == 7:
			b.castling.BlackKing = false
		}
	}
	if moving.Type == King {
		if moving.Color == White {
			b.castling.WhiteKing = false
			b.castling.WhiteQueen = false
		} else {
			b.castling.BlackKing = false
			b.castling.BlackQueen = false
		}
	}

	if resetHalfmove {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Opposite()

	b.history = append(b.history, rec)
}

// UnmakeMove pops the most recent history record and restores the exact
// pre-move position. It must pair with the preceding MakeMove; unmaking
// with an empty history is a no-op.
func (b *Board) UnmakeMove(m Move) {
	n := len(b.history)
	if n == 0 {
		return
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]

	from, to := rec.move.From, rec.move.To

	b.sideToMove = rec.prevSide
	b.halfmoveClock = rec.prevHalfmove
	b.fullmoveNumber = rec.prevFullmove
	b.castling = rec.prevCastling
	b.enPassantTarget = rec.prevEnPassant

	switch rec.move.Flag {
	case MoveCastleKing, MoveCastleQueen:
		b.squares[from.Row][from.Col] = b.squares[to.Row][to.Col]
		b.squares[to.Row][to.Col] = noPiece

		row := to.Row
		if rec.move.Flag == MoveCastleKing {
			b.squares[row][7] = b.squares[row][5]
			b.squares[row][5] = noPiece
		} else {
			b.squares[row][0] = b.squares[row][3]
			b.squares[row][3] = noPiece
		}

	case MoveEnPassant:
		b.squares[from.Row][from.Col] = b.squares[to.Row][to.Col]
		b.squares[to.Row][to.Col] = noPiece

		capRow := to.Row - 1
		if rec.prevSide == White {
			capRow = to.Row + 1
		}
		if onBoard(capRow, to.Col) {
			b.squares[capRow][to.Col] = rec.captured
		}

	case MovePromotion:
		b.squares[from.Row][from.Col] = Piece{Pawn, rec.prevSide}
		b.squares[to.Row][to.Col] = rec.captured

	default:
		b.squares[from.Row][from.Col] = b.squares[to.Row][to.Col]
		b.squares[to.Row][to.Col] = rec.captured
	}
}
