package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// winLines lists every line in winner precedence: rows, columns, main diagonal, anti-diagonal.
var winLines = [8][BoardSize]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Outcome - result of a board: still in progress, won by one side, or drawn.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

var outcomeNames = map[Outcome]string{
	InProgress: "in_progress",
	XWins:      "x_wins",
	OWins:      "o_wins",
	Draw:       "draw",
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(that))
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*that = outcome
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Utility scores the outcome from X's side: +1, -1, or 0 for draws and unfinished games.
func (that Outcome) Utility() int {
	switch that {
	case XWins:
		return 1
	case OWins:
		return -1
	default:
		return 0
	}
}

// lineOwner returns the mark filling the whole line, or EmptyCell.
func (that Board) lineOwner(line [BoardSize]Action) Mark {
	a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
	if a != EmptyCell && a == b && b == c {
		return a
	}
	return EmptyCell
}

func (that Board) lineWinner() Mark {
	for _, line := range winLines {
		if mark := that.lineOwner(line); mark != EmptyCell {
			return mark
		}
	}
	return EmptyCell
}

// Terminal - reports whether a line is complete or the board is full.
func (that Board) Terminal() bool {
	xs, os := that.counts()

	// no line fits in fewer than three marks
	if xs+os < BoardSize {
		return false
	}

	return xs+os == BoardSize*BoardSize || that.lineWinner() != EmptyCell
}

// Outcome is defined for every board, unlike Winner and Utility.
func (that Board) Outcome() Outcome {
	switch that.lineWinner() {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	}

	if xs, os := that.counts(); xs+os == BoardSize*BoardSize {
		return Draw
	}

	return InProgress
}

// PlayerToMove - infers the side to move from mark counts. X opens.
func (that Board) PlayerToMove() (Mark, error) {
	if that.Terminal() {
		return EmptyCell, fmt.Errorf("%w: no player to move on a finished board", apperror.ErrInvalidQuery)
	}

	if that.IsEmpty() {
		return PlayerX, nil
	}

	if xs, os := that.counts(); xs > os {
		return PlayerO, nil
	}

	return PlayerX, nil
}

// LegalActions - empty cells in row-major order. A terminal board has none.
func (that Board) LegalActions() []Action {
	if that.Terminal() {
		return nil
	}

	actions := make([]Action, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Winner - mark holding the first complete line, or EmptyCell for a draw.
// Fails with ErrInvalidQuery while the game is still in progress.
func (that Board) Winner() (Mark, error) {
	if !that.Terminal() {
		return EmptyCell, fmt.Errorf("%w: winner of an unfinished board", apperror.ErrInvalidQuery)
	}

	return that.lineWinner(), nil
}

// Utility - +1 when X has won, -1 when O has won, 0 for a draw. Only valid on terminal boards.
func (that Board) Utility() (int, error) {
	if !that.Terminal() {
		return 0, fmt.Errorf("%w: utility of an unfinished board", apperror.ErrInvalidQuery)
	}

	return that.Outcome().Utility(), nil
}
