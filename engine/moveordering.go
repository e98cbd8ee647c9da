package engine

import (
	"golang.org/x/exp/slices"

	gm "github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

// Piece values used only for move ordering (MVV-LVA), not for evaluation.
var orderingValue = [7]int{0, 100, 320, 330, 500, 900, 20000}

const (
	captureOffset   = 10000
	promotionOffset = 9000
)

type scoredMove struct {
	move  gm.Move
	score int
}

// scoreMove ranks a move for search ordering: captures score victim value
// minus a tenth of the attacker value on top of a large offset, so the
// most valuable victim comes first and the least valuable aggressor breaks
// ties; quiet promotions rank just below the captures; everything else is
// flat. En-passant captures land on an empty square and score as quiet.
func scoreMove(b *gm.Board, m gm.Move) int {
	victim := b.PieceAt(m.To.Row, m.To.Col)
	if victim.Type != gm.Empty && victim.Color != b.SideToMove() {
		attacker := b.PieceAt(m.From.Row, m.From.Col)
		return captureOffset + orderingValue[victim.Type] - orderingValue[attacker.Type]/10
	}
	if m.Flag == gm.MovePromotion {
		return promotionOffset
	}
	return 0
}

// orderMoves sorts the move list by ordering score, best first. The sort is
// stable so equally scored moves keep generation order, which keeps search
// results reproducible.
func orderMoves(b *gm.Board, moves []gm.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(b, m)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		return a.score > b.score
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
