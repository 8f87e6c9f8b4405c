package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type mockGamePlay struct {
	mock.Mock
}

func (that *mockGamePlay) CreateGame(ctx context.Context, human entity.Mark) (*entity.Game, error) {
	args := that.Called(ctx, human)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) MakeTurn(ctx context.Context, id string, action entity.Action) (*entity.Game, error) {
	args := that.Called(ctx, id, action)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGamePlay) DeleteGame(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestServer(t *testing.T, gamePlay *mockGamePlay) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := minimax.New(minimax.WithLogger(logger))
	handlers := NewHandlers(logger, gamePlay, service.NewAnalysisService(engine))

	srv := httptest.NewServer(NewRouter(logger, handlers))
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

func TestHandlers_Ping(t *testing.T) {
	srv := newTestServer(t, &mockGamePlay{})

	resp, body := do(t, http.MethodGet, srv.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandlers_Analyze(t *testing.T) {
	srv := newTestServer(t, &mockGamePlay{})

	t.Run("Returns the best move", func(t *testing.T) {
		// When: analysing a board where O wins in one
		resp, body := do(t, http.MethodPost, srv.URL+"/analyze", `{"board":"X.O/XXO/..."}`)

		// Then: the winning cell is reported
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var analysis service.Analysis
		require.NoError(t, json.Unmarshal(body, &analysis))
		assert.Equal(t, entity.PlayerO, analysis.PlayerToMove)
		assert.Equal(t, &entity.Action{Row: 2, Col: 2}, analysis.BestMove)
		assert.Equal(t, -1, analysis.Value)
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, srv.URL+"/analyze", `{"board":"XO"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "invalid board")
	})

	t.Run("Rejects an empty body", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, srv.URL+"/analyze", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandlers_Games(t *testing.T) {
	game, err := entity.NewGame("g1", entity.PlayerX)
	require.NoError(t, err)

	t.Run("Create defaults to X", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("CreateGame", mock.Anything, entity.PlayerX).Return(game, nil).Once()
		srv := newTestServer(t, gamePlay)

		resp, body := do(t, http.MethodPost, srv.URL+"/games", "")

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(body), `"board":"........."`)
		gamePlay.AssertExpectations(t)
	})

	t.Run("Create with mark O", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("CreateGame", mock.Anything, entity.PlayerO).Return(game, nil).Once()
		srv := newTestServer(t, gamePlay)

		resp, _ := do(t, http.MethodPost, srv.URL+"/games", `{"mark":"O"}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		gamePlay.AssertExpectations(t)
	})

	t.Run("Get unknown game", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("GetGame", mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()
		srv := newTestServer(t, gamePlay)

		resp, _ := do(t, http.MethodGet, srv.URL+"/games/missing", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Turn on an occupied cell conflicts", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("MakeTurn", mock.Anything, "g1", entity.Action{Row: 1, Col: 1}).
			Return(nil, apperror.ErrIllegalMove).Once()
		srv := newTestServer(t, gamePlay)

		resp, _ := do(t, http.MethodPost, srv.URL+"/games/g1/turn", `{"row":1,"col":1}`)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Turn out of range is a bad request", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("MakeTurn", mock.Anything, "g1", entity.Action{Row: 5, Col: 0}).
			Return(nil, apperror.ErrOutOfRange).Once()
		srv := newTestServer(t, gamePlay)

		resp, _ := do(t, http.MethodPost, srv.URL+"/games/g1/turn", `{"row":5,"col":0}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Delete", func(t *testing.T) {
		gamePlay := &mockGamePlay{}
		gamePlay.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()
		srv := newTestServer(t, gamePlay)

		resp, _ := do(t, http.MethodDelete, srv.URL+"/games/g1", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		gamePlay.AssertExpectations(t)
	})
}
