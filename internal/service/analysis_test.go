package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestAnalysisService_Analyze(t *testing.T) {
	service := NewAnalysisService(newTestEngine())

	t.Run("Board in progress gets a best move", func(t *testing.T) {
		// Given: O can complete column 2
		board, err := entity.ParseBoard("X.O/XXO/...")
		require.NoError(t, err)

		// When: analysing it
		analysis, err := service.Analyze(board)

		// Then: O is to move and wins at (2,2)
		require.NoError(t, err)
		assert.False(t, analysis.Terminal)
		assert.Equal(t, entity.InProgress, analysis.Outcome)
		assert.Equal(t, entity.PlayerO, analysis.PlayerToMove)
		assert.Len(t, analysis.LegalActions, 4)
		assert.Equal(t, &entity.Action{Row: 2, Col: 2}, analysis.BestMove)
		assert.Equal(t, -1, analysis.Value)
		assert.Positive(t, analysis.Nodes)
	})

	t.Run("Finished board reports the winner", func(t *testing.T) {
		board, err := entity.ParseBoard("XXX/OO./...")
		require.NoError(t, err)

		analysis, err := service.Analyze(board)

		require.NoError(t, err)
		assert.True(t, analysis.Terminal)
		assert.Equal(t, entity.PlayerX, analysis.Winner)
		assert.Equal(t, 1, analysis.Value)
		assert.Nil(t, analysis.BestMove)
		assert.Empty(t, analysis.LegalActions)
	})

	t.Run("Unreachable board is rejected", func(t *testing.T) {
		board, err := entity.ParseBoard("OO.......")
		require.NoError(t, err)

		_, err = service.Analyze(board)

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}
