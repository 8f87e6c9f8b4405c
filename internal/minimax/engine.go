package minimax

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Result - outcome of a root search.
type Result struct {
	Action entity.Action
	Value  int
	Nodes  int64
}

// Engine searches the full game tree. It keeps no state between calls.
type Engine struct {
	logger   *slog.Logger
	opening  OpeningPolicy
	parallel bool
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(that *Engine) {
		that.logger = logger
	}
}

func WithOpening(policy OpeningPolicy) Option {
	return func(that *Engine) {
		that.opening = policy
	}
}

// WithParallel - evaluate each root action in its own goroutine.
func WithParallel(parallel bool) Option {
	return func(that *Engine) {
		that.parallel = parallel
	}
}

func New(opts ...Option) *Engine {
	engine := &Engine{
		logger:  slog.Default(),
		opening: FirstAction{},
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.logger = engine.logger.With("component", "minimax")

	return engine
}

// ChooseMove - returns an optimal action for the side to move.
func (that *Engine) ChooseMove(board entity.Board) (entity.Action, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Action{}, err
	}

	return result.Action, nil
}

// Search runs a full-depth minimax from board. Equal values resolve to the earliest
// action in row-major order.
func (that *Engine) Search(board entity.Board) (Result, error) {
	player, err := board.PlayerToMove()
	if err != nil {
		return Result{}, fmt.Errorf("failed to choose move: %w", err)
	}

	actions := board.LegalActions()

	// the empty board is a draw under perfect play whatever the opening
	if board.IsEmpty() {
		return Result{Action: that.opening.Pick(actions)}, nil
	}

	start := time.Now()

	values, nodes, err := that.evaluateRoot(board, player, actions)
	if err != nil {
		return Result{}, fmt.Errorf("failed to evaluate actions: %w", err)
	}

	best := 0
	for i := range values {
		if player == entity.PlayerX && values[i] > values[best] ||
			player == entity.PlayerO && values[i] < values[best] {
			best = i
		}
	}

	result := Result{Action: actions[best], Value: values[best], Nodes: nodes}

	that.logger.Debug("search finished",
		"board", board.String(),
		"player", player.String(),
		"action", result.Action.String(),
		"value", result.Value,
		"nodes", result.Nodes,
		"elapsed", time.Since(start),
	)

	return result, nil
}

// Evaluate - game-theoretic value of board from X's side.
func (that *Engine) Evaluate(board entity.Board) (int, error) {
	if board.Terminal() {
		return board.Utility()
	}

	player, err := board.PlayerToMove()
	if err != nil {
		return 0, err
	}

	var s searcher
	if player == entity.PlayerX {
		return s.maxValue(board)
	}
	return s.minValue(board)
}

// evaluateRoot scores every root action from the opponent's point of view.
// values[i] always belongs to actions[i], whichever goroutine finished first.
func (that *Engine) evaluateRoot(board entity.Board, player entity.Mark, actions []entity.Action) ([]int, int64, error) {
	values := make([]int, len(actions))
	searchers := make([]searcher, len(actions))

	evaluate := func(i int, board entity.Board) error {
		next, err := board.Apply(actions[i])
		if err != nil {
			return err
		}

		if player == entity.PlayerX {
			values[i], err = searchers[i].minValue(next)
		} else {
			values[i], err = searchers[i].maxValue(next)
		}

		return err
	}

	if that.parallel {
		var group errgroup.Group
		for i := range actions {
			i := i
			own := board.Copy()
			group.Go(func() error {
				return evaluate(i, own)
			})
		}

		if err := group.Wait(); err != nil {
			return nil, 0, err
		}
	} else {
		for i := range actions {
			if err := evaluate(i, board); err != nil {
				return nil, 0, err
			}
		}
	}

	var nodes int64
	for i := range searchers {
		nodes += searchers[i].nodes
	}

	return values, nodes, nil
}
