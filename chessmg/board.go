package chessmg

import "strings"

// Piece types and colors.
type PieceType uint8

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Opposite returns the other side. NoColor maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Piece is a (type, color) pair. An empty square is {Empty, NoColor}.
type Piece struct {
	Type  PieceType
	Color Color
}

var noPiece = Piece{Empty, NoColor}

// Square is a board coordinate. Row 0 is rank 8 (Black's back rank),
// row 7 is rank 1; column 0 is file a.
type Square struct {
	Row, Col int
}

// NoSquare marks "no square": the null en-passant target and the null move.
var NoSquare = Square{-1, -1}

func onBoard(r, c int) bool {
	return r >= 0 && r < 8 && c >= 0 && c < 8
}

// CastlingRights tracks the four independent castling permissions.
type CastlingRights struct {
	WhiteKing  bool
	WhiteQueen bool
	BlackKing  bool
	BlackQueen bool
}

// Board is the full game state: piece placement, side to move, castling
// rights, en-passant target, halfmove clock and fullmove number. The
// make/unmake history stack lives on the board so that independent games
// never share undo state.
type Board struct {
	squares         [8][8]Piece
	sideToMove      Color
	castling        CastlingRights
	enPassantTarget Square
	halfmoveClock   int
	fullmoveNumber  int

	history []moveRecord
}

const maxHistoryDepth = 4096

var startRows = [8]string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// NewBoard returns the standard starting position: White to move, all four
// castling rights, no en-passant target, clocks at 0 and 1.
func NewBoard() *Board {
	b := &Board{
		sideToMove:      White,
		castling:        CastlingRights{true, true, true, true},
		enPassantTarget: NoSquare,
		halfmoveClock:   0,
		fullmoveNumber:  1,
		history:         make([]moveRecord, 0, maxHistoryDepth),
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			b.squares[r][c] = pieceFromChar(rune(startRows[r][c]))
		}
	}
	return b
}

// PieceAt returns the piece on (r, c). Off-board coordinates return an
// empty piece.
func (b *Board) PieceAt(r, c int) Piece {
	if !onBoard(r, c) {
		return noPiece
	}
	return b.squares[r][c]
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassantTarget returns the square skipped by the last double pawn push,
// or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.enPassantTarget }

// HalfmoveClock returns the number of plies since the clock was last reset.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's
// move, starting at 1).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// findKing locates the king of the given color, or NoSquare if absent.
func (b *Board) findKing(color Color) Square {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p.Type == King && p.Color == color {
				return Square{r, c}
			}
		}
	}
	return NoSquare
}

// InsufficientMaterial reports whether only the two kings remain. KB-vs-K
// and KN-vs-K are deliberately not treated as drawn here.
func (b *Board) InsufficientMaterial() bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			t := b.squares[r][c].Type
			if t != Empty && t != King {
				return false
			}
		}
	}
	return true
}

// String renders the board as the text diagram used by the interactive
// front-end, with rank and file legends and the side to move.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n   +-----------------+\n")
	for r := 0; r < 8; r++ {
		sb.WriteString(" ")
		sb.WriteByte('0' + byte(8-r))
		sb.WriteString(" | ")
		for c := 0; c < 8; c++ {
			sb.WriteByte(charFromPiece(b.squares[r][c]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   +-----------------+\n")
	sb.WriteString("     a b c d e f g h\n")
	sb.WriteString("Side to move: " + b.sideToMove.String() + "\n")
	return sb.String()
}
