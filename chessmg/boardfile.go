package chessmg

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The board file is thirteen lines of text: eight 8-character rows (rank 8
// first, '.' for empty), the side to move ('w'/'b'), the castling rights
// ("KQkq" subset or "-"), the en-passant target ("e3" or "-"), the halfmove
// clock and the fullmove number.

// LoadFile reads a position from the text format. It fails on a missing
// file, a short board row, or a missing line.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	nextLine := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("board file %s: unexpected end of file", path)
		}
		return scanner.Text(), nil
	}

	b := &Board{
		enPassantTarget: NoSquare,
		history:         make([]moveRecord, 0, maxHistoryDepth),
	}

	for r := 0; r < 8; r++ {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		if len(line) < 8 {
			return nil, fmt.Errorf("board file %s: row %d is shorter than 8 squares", path, r+1)
		}
		for c := 0; c < 8; c++ {
			b.squares[r][c] = pieceFromChar(rune(line[c]))
		}
	}

	line, err := nextLine()
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(line, "w") {
		b.sideToMove = White
	} else {
		b.sideToMove = Black
	}

	line, err = nextLine()
	if err != nil {
		return nil, err
	}
	for _, ch := range line {
		switch ch {
		case 'K':
			b.castling.WhiteKing = true
		case 'Q':
			b.castling.WhiteQueen = true
		case 'k':
			b.castling.BlackKing = true
		case 'q':
			b.castling.BlackQueen = true
		}
	}

	line, err = nextLine()
	if err != nil {
		return nil, err
	}
	if len(line) >= 2 && line[0] != '-' {
		if sq, ok := squareFromAlgebraic(line[0], line[1]); ok {
			b.enPassantTarget = sq
		}
	}

	line, err = nextLine()
	if err != nil {
		return nil, err
	}
	b.halfmoveClock, _ = strconv.Atoi(strings.TrimSpace(line))

	line, err = nextLine()
	if err != nil {
		return nil, err
	}
	b.fullmoveNumber, _ = strconv.Atoi(strings.TrimSpace(line))

	return b, nil
}

// SaveFile writes the position in the text format, thirteen lines exactly.
func (b *Board) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			w.WriteByte(charFromPiece(b.squares[r][c]))
		}
		w.WriteByte('\n')
	}

	side := byte('w')
	if b.sideToMove == Black {
		side = 'b'
	}
	fmt.Fprintf(w, "%c\n", side)
	fmt.Fprintf(w, "%s\n", b.castling.String())
	fmt.Fprintf(w, "%s\n", b.enPassantTarget.algebraic())
	fmt.Fprintf(w, "%d\n", b.halfmoveClock)
	fmt.Fprintf(w, "%d\n", b.fullmoveNumber)

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
