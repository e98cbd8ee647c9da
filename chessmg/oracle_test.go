package chessmg_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

// Cross-validation against an independently implemented generator. Both
// sides see the same FEN; the long-algebraic move sets must be identical.

var oracleFENs = []string{
	chessmg.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

func legalMoveStrings(b *chessmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func referenceMoveStrings(fen string) []string {
	ref := dragontoothmg.ParseFen(fen)
	moves := ref.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	for _, fen := range oracleFENs {
		b := mustParse(t, fen)
		ours := legalMoveStrings(b)
		theirs := referenceMoveStrings(fen)
		if len(ours) != len(theirs) {
			t.Errorf("%s:\n ours   (%d) %v\n theirs (%d) %v", fen, len(ours), ours, len(theirs), theirs)
			continue
		}
		for i := range ours {
			if ours[i] != theirs[i] {
				t.Errorf("%s: move set mismatch at %d: %s vs %s", fen, i, ours[i], theirs[i])
				break
			}
		}
	}
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesReferenceGenerator(t *testing.T) {
	for _, fen := range oracleFENs {
		b := mustParse(t, fen)
		ref := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			ours := chessmg.Perft(b, depth)
			theirs := referencePerft(&ref, depth)
			if ours != theirs {
				t.Fatalf("%s depth %d: got %d, reference %d", fen, depth, ours, theirs)
			}
		}
	}
}
