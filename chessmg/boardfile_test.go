package chessmg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")

	b := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 7 12")
	if err := b.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := chessmg.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, want := loaded.ToFEN(), b.ToFEN(); got != want {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSaveWritesExpectedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")

	b := chessmg.NewBoard()
	m, _ := findMove(b, "e2e4")
	b.MakeMove(m)
	if err := b.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "rnbqkbnr\n" +
		"pppppppp\n" +
		"........\n" +
		"........\n" +
		"....P...\n" +
		"........\n" +
		"PPPP.PPP\n" +
		"RNBQKBNR\n" +
		"b\n" +
		"KQkq\n" +
		"e3\n" +
		"0\n" +
		"1\n"
	if string(data) != want {
		t.Fatalf("file contents:\n%s\nwant:\n%s", data, want)
	}
}

func TestLoadEnPassantAndEmptyRights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "k.......\n" +
		"........\n" +
		"........\n" +
		"...pP...\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		".......K\n" +
		"w\n" +
		"-\n" +
		"d6\n" +
		"0\n" +
		"2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := chessmg.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := b.EnPassantTarget(); got != (chessmg.Square{Row: 2, Col: 3}) {
		t.Fatalf("en passant target: got %v, want d6", got)
	}
	if b.Castling() != (chessmg.CastlingRights{}) {
		t.Fatalf("'-' should load as no rights")
	}
	if _, ok := findMove(b, "e5d6"); !ok {
		t.Fatalf("loaded en passant capture should be available")
	}
}

func TestLoadRejectsShortRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "k.......\n" +
		"....\n" // row 2 is too short
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := chessmg.LoadFile(path); err == nil {
		t.Fatalf("short row should fail to load")
	}
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "k.......\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		".......K\n" +
		"w\n" // castling, en passant and clocks are missing
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := chessmg.LoadFile(path); err == nil {
		t.Fatalf("truncated file should fail to load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := chessmg.LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("missing file should fail to load")
	}
}
