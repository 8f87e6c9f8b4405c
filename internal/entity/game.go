package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game - a session between a human and the engine.
type Game struct {
	ID       string  `json:"id"`
	Board    Board   `json:"board"`
	Human    Mark    `json:"human"`
	Bot      Mark    `json:"bot"`
	Turn     Mark    `json:"turn"`
	Status   string  `json:"status"`
	Outcome  Outcome `json:"outcome"`
	Winner   Mark    `json:"winner"`
	LastMove *Action `json:"last_move,omitempty"`
}

func NewGame(id string, human Mark) (*Game, error) {
	if human != PlayerX && human != PlayerO {
		return nil, fmt.Errorf("%w: human must play X or O", apperror.ErrInvalidMark)
	}

	game := &Game{
		ID:    id,
		Board: NewBoard(),
		Human: human,
		Bot:   human.Opponent(),
	}
	game.UpdateGameState()

	return game, nil
}

// UpdateGameState - derives turn, status and result from the board.
func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Outcome()

	switch that.Outcome {
	case XWins:
		that.Winner = PlayerX
	case OWins:
		that.Winner = PlayerO
	default:
		that.Winner = EmptyCell
	}

	if that.Outcome != InProgress {
		that.Status = StatusFinished
		that.Turn = EmptyCell
		return
	}

	that.Status = StatusOngoing
	// the board is not terminal here, so the error is always nil
	that.Turn, _ = that.Board.PlayerToMove()
}

// MakeTurn - places mark at action if it is that mark's turn.
func (that *Game) MakeTurn(mark Mark, action Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.Apply(action)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = next
	that.LastMove = &action
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.Bot
}
