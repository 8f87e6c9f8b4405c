package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// BoardSize - number of rows and columns on the board.
const BoardSize = 3

// Mark - content of a single cell. PlayerX and PlayerO double as the two player identities.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// String returns "X", "O" or "" for an empty cell.
func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark
	return nil
}

// ParseMark - parses "X", "O" (any case) or "" into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "":
		return EmptyCell, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Action names a cell by zero-based row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid held by value: assignment copies it and == compares every cell.
type Board [BoardSize][BoardSize]Mark

// NewBoard - returns the canonical empty board.
func NewBoard() Board {
	return Board{}
}

func (that Board) Equal(other Board) bool {
	return that == other
}

// Copy returns an independent board with the same contents.
func (that Board) Copy() Board {
	return that
}

func (that Board) At(action Action) Mark {
	return that[action.Row][action.Col]
}

func (that Board) IsEmpty() bool {
	return that == Board{}
}

// counts returns the number of X and O marks on the board.
func (that Board) counts() (int, int) {
	var xs, os int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xs++
			case PlayerO:
				os++
			}
		}
	}

	return xs, os
}

// String renders the board row-major as nine characters, "." for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board
	return nil
}

// ParseBoard - reads nine row-major cells. Row separators "/" and newlines are ignored;
// "X" and "O" are marks, ".", "_", "-" and space are empty cells.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.NewReplacer("/", "", "\n", "", "\r", "").Replace(s)
	if len(cells) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize*BoardSize, len(cells))
	}

	for i, ch := range cells {
		var mark Mark
		switch ch {
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '_', '-', ' ':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at %d", apperror.ErrInvalidBoard, ch, i)
		}
		board[i/BoardSize][i%BoardSize] = mark
	}

	return board, nil
}

// Validate checks that the board is reachable by alternating play with X first.
func (that Board) Validate() error {
	xs, os := that.counts()
	if diff := xs - os; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidBoard, xs, os)
	}

	var xLine, oLine bool
	for _, line := range winLines {
		switch that.lineOwner(line) {
		case PlayerX:
			xLine = true
		case PlayerO:
			oLine = true
		}
	}

	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both players hold a line", apperror.ErrInvalidBoard)
	case xLine && xs == os:
		return fmt.Errorf("%w: O moved after X completed a line", apperror.ErrInvalidBoard)
	case oLine && xs > os:
		return fmt.Errorf("%w: X moved after O completed a line", apperror.ErrInvalidBoard)
	}

	return nil
}
