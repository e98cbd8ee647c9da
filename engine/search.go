package engine

import (
	gm "github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

// Score constants. MateValue sits well below Infinity so that mate-distance
// adjustments (MateValue - ply) can never collide with the window bounds.
const (
	Infinity  = 1_000_000
	MateValue = Infinity - 1000
)

// SearchDepth is the fixed root depth in plies.
const SearchDepth = 6

// FindBestMove runs a fixed-depth search and returns the engine's choice,
// or the null move when the side to move has no legal moves (checkmate or
// stalemate).
func FindBestMove(b *gm.Board) gm.Move {
	move, _ := SearchToDepth(b, SearchDepth)
	return move
}

// SearchToDepth searches to the given depth and returns the best move with
// its score from the mover's perspective. Depth values below 1 are treated
// as 1 so the root always examines at least one ply.
func SearchToDepth(b *gm.Board, depth int) (gm.Move, int) {
	if depth < 1 {
		depth = 1
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return gm.NoMove, 0
	}
	orderMoves(b, moves)

	bestMove := gm.NoMove
	bestScore := -Infinity
	alpha, beta := -Infinity, Infinity

	for _, m := range moves {
		b.MakeMove(m)
		score := -negamax(b, depth-1, -beta, -alpha, 1)
		b.UnmakeMove(m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		// Raising alpha sharpens the window for the remaining siblings.
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore
}

// signedEval is the static evaluation from the mover's perspective, the
// negamax convention.
func signedEval(b *gm.Board) int {
	score := Evaluate(b)
	if b.SideToMove() == gm.Black {
		return -score
	}
	return score
}

// negamax is alpha-beta search in negamax form. ply counts distance from
// the root so mate scores prefer the shortest mate.
func negamax(b *gm.Board, depth, alpha, beta, ply int) int {
	// Draws by rule trump everything else.
	if b.HalfmoveClock() >= 100 || b.InsufficientMaterial() {
		return 0
	}

	inCheck := b.KingInCheck(b.SideToMove())
	if inCheck {
		// Check extension: never stand pat while the king is attacked.
		depth++
	}

	if depth <= 0 {
		return quiescence(b, alpha, beta)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MateValue + ply
		}
		return 0
	}
	orderMoves(b, moves)

	best := -Infinity
	for _, m := range moves {
		b.MakeMove(m)
		score := -negamax(b, depth-1, -beta, -alpha, ply+1)
		b.UnmakeMove(m)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// quiescence extends the search through capture sequences only, using the
// static evaluation as a stand-pat lower bound, so the leaf score is never
// taken in the middle of a tactical exchange.
func quiescence(b *gm.Board, alpha, beta int) int {
	standPat := signedEval(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := b.GenerateLegalMoves()
	orderMoves(b, moves)

	for _, m := range moves {
		// Only captures: a quiet destination is skipped unless the move is
		// en passant, whose destination square is empty.
		if b.PieceAt(m.To.Row, m.To.Col).Type == gm.Empty && m.Flag != gm.MoveEnPassant {
			continue
		}
		b.MakeMove(m)
		score := -quiescence(b, -beta, -alpha)
		b.UnmakeMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
