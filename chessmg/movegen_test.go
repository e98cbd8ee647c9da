package chessmg_test

import (
	"testing"

	"github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	b := chessmg.NewBoard()
	if got := len(b.GenerateLegalMoves()); got != 20 {
		t.Fatalf("initial position: got %d legal moves, want 20", got)
	}
}

func TestPinnedPieceMayNotMove(t *testing.T) {
	// The knight on e2 is pinned against the king by the rook on e8.
	b := mustParse(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	for _, m := range b.GenerateLegalMoves() {
		if m.From == (chessmg.Square{Row: 6, Col: 4}) {
			t.Fatalf("pinned knight must not move, got %s", m)
		}
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 covers f1, which the king must cross.
	b := mustParse(t, "5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	if m, ok := findMove(b, "e1g1"); ok {
		t.Fatalf("kingside castling must not be legal with f1 attacked, got %s", m)
	}

	// Without the rook the same position castles.
	b = mustParse(t, "8/8/8/8/8/8/8/4K2R w K - 0 1")
	m, ok := findMove(b, "e1g1")
	if !ok {
		t.Fatalf("kingside castling should be legal")
	}
	if m.Flag != chessmg.MoveCastleKing {
		t.Fatalf("e1g1 should carry the castle flag, got flag %d", m.Flag)
	}
}

func TestQueensideCastlingIgnoresAttackOnB1(t *testing.T) {
	// The king crosses d1 and c1 only; an attack on b1 does not matter.
	b := mustParse(t, "1r6/8/8/8/8/8/8/R3K3 w Q - 0 1")
	m, ok := findMove(b, "e1c1")
	if !ok {
		t.Fatalf("queenside castling should be legal with only b1 attacked")
	}
	if m.Flag != chessmg.MoveCastleQueen {
		t.Fatalf("e1c1 should carry the queenside castle flag")
	}

	// An attack on d1 does forbid it.
	b = mustParse(t, "3r4/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if _, ok := findMove(b, "e1c1"); ok {
		t.Fatalf("queenside castling must not be legal with d1 attacked")
	}
}

func TestCastlingRequiresEmptySquares(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/4KB1R w K - 0 1")
	if _, ok := findMove(b, "e1g1"); ok {
		t.Fatalf("castling must not be legal with f1 occupied")
	}
}

func TestNoCastlingOutOfCheck(t *testing.T) {
	b := mustParse(t, "4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	if _, ok := findMove(b, "e1g1"); ok {
		t.Fatalf("castling must not be legal while in check")
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	b := mustParse(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	want := map[chessmg.PieceType]bool{
		chessmg.Queen: false, chessmg.Rook: false,
		chessmg.Bishop: false, chessmg.Knight: false,
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From != (chessmg.Square{Row: 1, Col: 0}) {
			continue
		}
		if m.Flag != chessmg.MovePromotion {
			t.Fatalf("pawn move to the last rank must be promotion-flagged, got %s", m)
		}
		want[m.Promotion] = true
	}
	for pt, seen := range want {
		if !seen {
			t.Fatalf("missing promotion to piece type %d", pt)
		}
	}
}

func TestResolveMovePromotionDefaultsToQueen(t *testing.T) {
	b := mustParse(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	parsed, err := chessmg.ParseMove("a7a8")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := b.ResolveMove(parsed)
	if !ok {
		t.Fatalf("a7a8 should resolve")
	}
	if m.Promotion != chessmg.Queen {
		t.Fatalf("bare coordinates should default to queen, got %d", m.Promotion)
	}

	parsed, err = chessmg.ParseMove("a7a8n")
	if err != nil {
		t.Fatal(err)
	}
	m, ok = b.ResolveMove(parsed)
	if !ok {
		t.Fatalf("a7a8n should resolve")
	}
	if m.Promotion != chessmg.Knight {
		t.Fatalf("explicit letter should pick the knight, got %d", m.Promotion)
	}
}

func TestResolveMoveRejectsIllegal(t *testing.T) {
	b := chessmg.NewBoard()
	parsed, err := chessmg.ParseMove("e2e5")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.ResolveMove(parsed); ok {
		t.Fatalf("e2e5 is not legal from the start position")
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e", "i2i4", "e2e9", "e2e4x", "e2e4qq"} {
		if _, err := chessmg.ParseMove(s); err == nil {
			t.Fatalf("ParseMove(%q) should fail", s)
		}
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	m, ok := findMove(b, "e5d6")
	if !ok {
		t.Fatalf("en passant capture e5d6 should be legal")
	}
	if m.Flag != chessmg.MoveEnPassant {
		t.Fatalf("e5d6 should carry the en passant flag, got %d", m.Flag)
	}

	// Without the target set the same capture is not available.
	b = mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - - 0 2")
	if _, ok := findMove(b, "e5d6"); ok {
		t.Fatalf("en passant must only be available on the following ply")
	}
}

func TestNoMoveCapturesKing(t *testing.T) {
	fens := []string{
		chessmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		for _, m := range b.GenerateLegalMoves() {
			if b.PieceAt(m.To.Row, m.To.Col).Type == chessmg.King {
				t.Fatalf("%s: move %s captures a king", fen, m)
			}
		}
	}
}

func TestLegalMovesNeverLeaveOwnKingInCheck(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		mover := b.SideToMove()
		for _, m := range b.GenerateLegalMoves() {
			b.MakeMove(m)
			if b.KingInCheck(mover) {
				t.Fatalf("%s: move %s leaves the mover in check", fen, m)
			}
			b.UnmakeMove(m)
		}
	}
}

// findMove looks up a legal move by its long-algebraic string.
func findMove(b *chessmg.Board, s string) (chessmg.Move, bool) {
	for _, m := range b.GenerateLegalMoves() {
		if m.String() == s {
			return m, true
		}
	}
	return chessmg.NoMove, false
}
