package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	belowMinUtility = -2
	aboveMaxUtility = 2
)

// searcher counts visited boards for one line of search. It is not shared between goroutines.
type searcher struct {
	nodes int64
}

// maxValue - best utility X can force on board with X to move.
func (that *searcher) maxValue(board entity.Board) (int, error) {
	return that.value(board, true)
}

// minValue - best utility O can force on board with O to move.
func (that *searcher) minValue(board entity.Board) (int, error) {
	return that.value(board, false)
}

func (that *searcher) value(board entity.Board, maximize bool) (int, error) {
	that.nodes++

	if board.Terminal() {
		return board.Utility()
	}

	best := aboveMaxUtility
	if maximize {
		best = belowMinUtility
	}

	for _, action := range board.LegalActions() {
		next, err := board.Apply(action)
		if err != nil {
			return 0, err
		}

		v, err := that.value(next, !maximize)
		if err != nil {
			return 0, err
		}

		if maximize {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}

	return best, nil
}
