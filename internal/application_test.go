package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestNewEngine(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("First opening takes the top-left corner", func(t *testing.T) {
		engine := NewEngine(logger, config.Engine{Opening: config.OpeningFirst})

		action, err := engine.ChooseMove(entity.NewBoard())

		require.NoError(t, err)
		assert.Equal(t, entity.Action{Row: 0, Col: 0}, action)
	})

	t.Run("Random opening is reproducible for a seed", func(t *testing.T) {
		conf := config.Engine{Opening: config.OpeningRandom, Seed: 5, Parallel: true}

		a, err := NewEngine(logger, conf).ChooseMove(entity.NewBoard())
		require.NoError(t, err)
		b, err := NewEngine(logger, conf).ChooseMove(entity.NewBoard())
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
