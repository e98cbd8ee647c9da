package chessmg

import (
	"errors"
	"strings"
)

// MoveFlag distinguishes the special move kinds.
type MoveFlag uint8

const (
	MoveNormal MoveFlag = iota
	MovePromotion
	MoveEnPassant
	MoveCastleKing
	MoveCastleQueen
)

// Move is a from/to pair plus an optional promotion piece and a flag.
// Promotion is non-Empty exactly when Flag is MovePromotion.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Flag      MoveFlag
}

// NoMove is the null move returned when no legal move exists.
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether the move is the null marker.
func (m Move) IsNull() bool { return m.From.Row == -1 }

// String produces the long-algebraic form of the move (e.g. "e2e4",
// "a7a8q"). The null move renders as "-".
func (m Move) String() string {
	if m.IsNull() {
		return "-"
	}
	var sb strings.Builder
	sb.WriteByte('a' + byte(m.From.Col))
	sb.WriteByte('8' - byte(m.From.Row))
	sb.WriteByte('a' + byte(m.To.Col))
	sb.WriteByte('8' - byte(m.To.Row))
	if m.Flag == MovePromotion {
		sb.WriteByte(promotionChar(m.Promotion))
	}
	return sb.String()
}

func promotionChar(t PieceType) byte {
	switch t {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	default:
		return 'q'
	}
}

var errBadMove = errors.New("move: want <file><rank><file><rank> with optional promotion letter")

// ParseMove parses long-algebraic input ("e2e4", "a7a8q"). A 4-character
// string is a plain move; a 5th character requests a specific promotion
// piece (q, r, b or n, case-insensitive). The returned move carries no
// castling or en-passant flag; ResolveMove matches it against the legal
// move list to recover those.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, errBadMove
	}
	from, ok := squareFromAlgebraic(s[0], s[1])
	if !ok {
		return NoMove, errBadMove
	}
	to, ok := squareFromAlgebraic(s[2], s[3])
	if !ok {
		return NoMove, errBadMove
	}
	m := Move{From: from, To: to, Promotion: Empty, Flag: MoveNormal}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			m.Promotion = Queen
		case 'r', 'R':
			m.Promotion = Rook
		case 'b', 'B':
			m.Promotion = Bishop
		case 'n', 'N':
			m.Promotion = Knight
		default:
			return NoMove, errBadMove
		}
		m.Flag = MovePromotion
	}
	return m, nil
}

// squareFromAlgebraic converts a file/rank byte pair ('a'..'h', '1'..'8')
// to a Square.
func squareFromAlgebraic(file, rank byte) (Square, bool) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, true
}

// algebraic renders a square as "e3", or "-" for NoSquare.
func (s Square) algebraic() string {
	if s.Row == -1 {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// ResolveMove matches parsed user input against the legal move list and
// returns the engine's move with the correct flags. A coordinate pair that
// hits a promotion without naming a piece resolves to the queen promotion.
func (b *Board) ResolveMove(input Move) (Move, bool) {
	for _, m := range b.GenerateLegalMoves() {
		if m.From != input.From || m.To != input.To {
			continue
		}
		if m.Flag == MovePromotion {
			if input.Flag == MovePromotion {
				if m.Promotion == input.Promotion {
					return m, true
				}
				continue
			}
			if m.Promotion == Queen {
				return m, true
			}
			continue
		}
		// Castling and en passant come back with the generator's flags.
		return m, true
	}
	return NoMove, false
}
