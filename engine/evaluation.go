package engine

import (
	gm "github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

// Tapered evaluation: a middlegame score and an endgame score are computed
// side by side and blended by game phase. The phase starts at 24 with full
// material (N/B count 1, R counts 2, Q counts 4) and drops as pieces come
// off the board.

const phaseTotal = 24

// Material values indexed by PieceType; pawns gain weight in the endgame.
var materialMG = [7]int{0, 82, 337, 365, 477, 1025, 0}
var materialEG = [7]int{0, 94, 281, 297, 512, 936, 0}

const (
	mobilityMG = 1
	mobilityEG = 1
)

var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

// Piece-square tables, from White's point of view (row 0 is rank 8).
// Black reads them mirrored by rank.

var pawnMG = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var pawnEG = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{80, 80, 80, 80, 80, 80, 80, 80},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{30, 30, 30, 30, 30, 30, 30, 30},
	{20, 20, 20, 20, 20, 20, 20, 20},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightMG = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -10, -30, -30, -30, -30, -10, -50},
}

var knightEG = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -30, -20, -20, -20, -20, -30, -50},
}

var bishopMG = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

// The source's bishop tables are identical for both phases.
var bishopEG = bishopMG

var rookMG = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, -5, 0, 5, 5, 0, -5, 0},
}

var rookEG = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{5, 5, 5, 5, 5, 5, 5, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenMG = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var queenEG = queenMG

var kingMG = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var kingEG = [8][8]int{
	{-50, -40, -30, -20, -20, -30, -40, -50},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
}

// tableScore reads a PST for a piece of the given color; Black sees the
// board rank-mirrored.
func tableScore(table *[8][8]int, r, c int, color gm.Color) int {
	if color == gm.Black {
		r = 7 - r
	}
	return table[r][c]
}

var diagDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthoDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var allDirs = [8][2]int{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

func sliderDirs(t gm.PieceType) [][2]int {
	switch t {
	case gm.Bishop:
		return diagDirs[:]
	case gm.Rook:
		return orthoDirs[:]
	default:
		return allDirs[:]
	}
}

var knightDirs = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// slidingMobility counts reachable squares for a bishop, rook or queen.
func slidingMobility(b *gm.Board, r, c int, p gm.Piece) int {
	count := 0
	for _, d := range sliderDirs(p.Type) {
		for k := 1; k < 8; k++ {
			nr, nc := r+d[0]*k, c+d[1]*k
			if nr < 0 || nr > 7 || nc < 0 || nc > 7 {
				break
			}
			target := b.PieceAt(nr, nc)
			if target.Type == gm.Empty {
				count++
				continue
			}
			if target.Color != p.Color {
				count++
			}
			break
		}
	}
	return count
}

func knightMobility(b *gm.Board, r, c int, p gm.Piece) int {
	count := 0
	for _, d := range knightDirs {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr > 7 || nc < 0 || nc > 7 {
			continue
		}
		if b.PieceAt(nr, nc).Color != p.Color {
			count++
		}
	}
	return count
}

// Evaluate returns a static score for the position from White's
// perspective: positive favors White. It is deterministic and reads only
// the board.
func Evaluate(b *gm.Board) int {
	mgScore, egScore := 0, 0
	gamePhase := 0

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.PieceAt(r, c)
			if p.Type == gm.Empty {
				continue
			}
			gamePhase += phaseWeight[p.Type]

			mg := materialMG[p.Type]
			eg := materialEG[p.Type]

			switch p.Type {
			case gm.Pawn:
				mg += tableScore(&pawnMG, r, c, p.Color)
				eg += tableScore(&pawnEG, r, c, p.Color)
			case gm.Knight:
				mg += tableScore(&knightMG, r, c, p.Color)
				eg += tableScore(&knightEG, r, c, p.Color)
				mob := knightMobility(b, r, c, p)
				mg += mob * mobilityMG
				eg += mob * mobilityEG
			case gm.Bishop:
				mg += tableScore(&bishopMG, r, c, p.Color)
				eg += tableScore(&bishopEG, r, c, p.Color)
				mob := slidingMobility(b, r, c, p)
				mg += mob * mobilityMG
				eg += mob * mobilityEG
			case gm.Rook:
				mg += tableScore(&rookMG, r, c, p.Color)
				eg += tableScore(&rookEG, r, c, p.Color)
				mob := slidingMobility(b, r, c, p)
				mg += mob * mobilityMG
				eg += mob * mobilityEG
			case gm.Queen:
				mg += tableScore(&queenMG, r, c, p.Color)
				eg += tableScore(&queenEG, r, c, p.Color)
				mob := slidingMobility(b, r, c, p)
				mg += mob * mobilityMG
				eg += mob * mobilityEG
			case gm.King:
				mg += tableScore(&kingMG, r, c, p.Color)
				eg += tableScore(&kingEG, r, c, p.Color)
			}

			if p.Color == gm.White {
				mgScore += mg
				egScore += eg
			} else {
				mgScore -= mg
				egScore -= eg
			}
		}
	}

	// Blend: full material weighs the middlegame table, bare kings the
	// endgame table. Promotions can push the raw phase above the cap.
	if gamePhase > phaseTotal {
		gamePhase = phaseTotal
	}
	mgWeight := gamePhase
	egWeight := phaseTotal - gamePhase
	return (mgScore*mgWeight + egScore*egWeight) / phaseTotal
}
