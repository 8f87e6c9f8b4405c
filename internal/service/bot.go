package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type moveChooser interface {
	ChooseMove(board entity.Board) (entity.Action, error)
}

type botService struct {
	engine moveChooser
}

func NewBotService(engine moveChooser) BotService {
	return &botService{
		engine: engine,
	}
}

// MakeTurn - plays the engine's move for the bot's mark.
func (that *botService) MakeTurn(game *entity.Game) error {
	action, err := that.engine.ChooseMove(game.Board)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = game.MakeTurn(game.Bot, action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

var _ moveChooser = (*minimax.Engine)(nil)
