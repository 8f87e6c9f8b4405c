package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

// Analysis - everything the predicates and the engine know about a board.
type Analysis struct {
	Board        entity.Board    `json:"board"`
	Terminal     bool            `json:"terminal"`
	Outcome      entity.Outcome  `json:"outcome"`
	Winner       entity.Mark     `json:"winner"`
	PlayerToMove entity.Mark     `json:"player_to_move"`
	LegalActions []entity.Action `json:"legal_actions"`
	BestMove     *entity.Action  `json:"best_move,omitempty"`
	Value        int             `json:"value"`
	Nodes        int64           `json:"nodes"`
}

type AnalysisService interface {
	Analyze(board entity.Board) (*Analysis, error)
}

type searcher interface {
	Search(board entity.Board) (minimax.Result, error)
}

type analysisService struct {
	engine searcher
}

func NewAnalysisService(engine searcher) AnalysisService {
	return &analysisService{
		engine: engine,
	}
}

func (that *analysisService) Analyze(board entity.Board) (*Analysis, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Board:        board,
		Terminal:     board.Terminal(),
		Outcome:      board.Outcome(),
		LegalActions: board.LegalActions(),
	}

	if analysis.Terminal {
		winner, err := board.Winner()
		if err != nil {
			return nil, fmt.Errorf("failed to get winner: %w", err)
		}

		utility, err := board.Utility()
		if err != nil {
			return nil, fmt.Errorf("failed to get utility: %w", err)
		}

		analysis.Winner = winner
		analysis.Value = utility
		analysis.LegalActions = []entity.Action{}

		return analysis, nil
	}

	player, err := board.PlayerToMove()
	if err != nil {
		return nil, fmt.Errorf("failed to get player to move: %w", err)
	}

	result, err := that.engine.Search(board)
	if err != nil {
		return nil, fmt.Errorf("failed to search board: %w", err)
	}

	analysis.PlayerToMove = player
	analysis.BestMove = &result.Action
	analysis.Value = result.Value
	analysis.Nodes = result.Nodes

	return analysis, nil
}
