package chessmg

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a piece letter to a Piece. Uppercase is White,
// lowercase Black; '.' and ' ' (and anything unrecognized) map to empty.
func pieceFromChar(ch rune) Piece {
	color := White
	lower := ch
	if ch >= 'A' && ch <= 'Z' {
		lower = ch + ('a' - 'A')
	} else {
		color = Black
	}
	var t PieceType
	switch lower {
	case 'p':
		t = Pawn
	case 'n':
		t = Knight
	case 'b':
		t = Bishop
	case 'r':
		t = Rook
	case 'q':
		t = Queen
	case 'k':
		t = King
	default:
		return noPiece
	}
	return Piece{t, color}
}

// charFromPiece converts a Piece to its letter, or '.' for an empty square.
func charFromPiece(p Piece) byte {
	var ch byte
	switch p.Type {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '.'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN string and returns a new Board set up to that
// position. Returns an error if the FEN is invalid.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{
		enPassantTarget: NoSquare,
		halfmoveClock:   0,
		fullmoveNumber:  1,
		history:         make([]moveRecord, 0, maxHistoryDepth),
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			b.squares[r][c] = noPiece
		}
	}

	// 1. Piece placement; the first rank group is rank 8, which is row 0.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p.Type == Empty {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if col >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			b.squares[row][col] = p
			col++
		}
		if col != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling.WhiteKing = true
			case 'Q':
				b.castling.WhiteQueen = true
			case 'k':
				b.castling.BlackKing = true
			case 'q':
				b.castling.BlackQueen = true
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		sq, ok := squareFromAlgebraic(fields[3][0], fields[3][1])
		if !ok {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		b.enPassantTarget = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		b.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		b.fullmoveNumber = fullmove
	}

	return b, nil
}

// ToFEN produces the FEN string for the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		emptyCount := 0
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p.Type == Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')

	sb.WriteString(b.enPassantTarget.algebraic())
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

// String renders the rights in KQkq order, or "-" when none remain.
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKing {
		sb.WriteByte('K')
	}
	if cr.WhiteQueen {
		sb.WriteByte('Q')
	}
	if cr.BlackKing {
		sb.WriteByte('k')
	}
	if cr.BlackQueen {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
