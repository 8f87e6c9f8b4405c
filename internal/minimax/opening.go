package minimax

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// OpeningPolicy picks the first move of the game. Every opening draws under perfect play,
// so the choice only affects variety.
type OpeningPolicy interface {
	Pick(actions []entity.Action) entity.Action
}

// FirstAction - always picks the lowest row-major cell.
type FirstAction struct{}

func (FirstAction) Pick(actions []entity.Action) entity.Action {
	return actions[0]
}

// SeededOpening - picks a uniformly random cell from an explicitly seeded source.
type SeededOpening struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededOpening(seed int64) *SeededOpening {
	return &SeededOpening{
		rng: rand.New(rand.NewSource(seed)), //nolint: gosec // move variety, not security
	}
}

func (that *SeededOpening) Pick(actions []entity.Action) entity.Action {
	that.mu.Lock()
	defer that.mu.Unlock()

	return actions[that.rng.Intn(len(actions))]
}
