package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Apply - returns a new board with the side to move's mark placed at action.
// The receiver is a copy, so the caller's board is never touched.
func (that Board) Apply(action Action) (Board, error) {
	if !action.InRange() {
		return that, fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrOutOfRange, action)
	}

	if that.At(action) != EmptyCell {
		return that, fmt.Errorf("%w: cell %s is occupied", apperror.ErrIllegalMove, action)
	}

	player, err := that.PlayerToMove()
	if err != nil {
		return that, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that[action.Row][action.Col] = player

	return that, nil
}
