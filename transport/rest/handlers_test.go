package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type memoryVerdicts struct {
	mu      sync.Mutex
	reports map[string]entity.Report
}

func (that *memoryVerdicts) Save(_ context.Context, report *entity.Report) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reports[report.Board.String()] = *report

	return nil
}

func (that *memoryVerdicts) GetByBoard(_ context.Context, board string) (*entity.Report, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	report, ok := that.reports[board]
	if !ok {
		return nil, repository.ErrVerdictNotFound
	}

	return &report, nil
}

type memoryGames struct {
	mu    sync.Mutex
	games map[string][]byte
}

func (that *memoryGames) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	that.games[game.ID] = data

	return nil
}

func (that *memoryGames) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	data, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (that *memoryGames) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}
	delete(that.games, id)

	return nil
}

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	boards := usecase.NewBoardChecker(logger, entity.DefaultSize, &memoryVerdicts{reports: map[string]entity.Report{}})
	games := usecase.NewGameManager(logger, entity.DefaultSize, &memoryGames{games: map[string][]byte{}})

	return NewRouter(logger, boards, games)
}

func newTestServer(t *testing.T, router http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)

	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestPing(t *testing.T) {
	server := newTestServer(t, newTestRouter())

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestCheckBoard(t *testing.T) {
	server := newTestServer(t, newTestRouter())

	t.Run("Valid board", func(t *testing.T) {
		// When: a won board is checked
		resp, body := post(t, server.URL+"/boards/check", `{"board":"XXXOO...."}`)

		// Then: the report names the winner
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "X", body["winner"])
		assert.Equal(t, entity.StatusWonByA, body["status"])
		assert.Equal(t, true, body["valid"])
	})

	t.Run("Impossible board is still a report", func(t *testing.T) {
		resp, body := post(t, server.URL+"/boards/check", `{"board":"XX......."}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "too-many-x", body["reason"])
	})

	t.Run("Malformed board", func(t *testing.T) {
		resp, body := post(t, server.URL+"/boards/check", `{"board":"XO"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "wrong length")
	})

	t.Run("Malformed body", func(t *testing.T) {
		resp, _ := post(t, server.URL+"/boards/check", `{`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGames(t *testing.T) {
	router := newTestRouter()
	server := newTestServer(t, router)

	t.Run("Play a game to the end", func(t *testing.T) {
		// Given: a new game
		resp, body := post(t, server.URL+"/games", "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		id, ok := body["id"].(string)
		require.True(t, ok)
		assert.Equal(t, ".........", body["board"])

		// When: X wins on the top row
		turns := []string{
			`{"mark":"X","cell":0}`,
			`{"mark":"O","cell":3}`,
			`{"mark":"X","cell":1}`,
			`{"mark":"O","cell":4}`,
		}
		for _, turn := range turns {
			resp, _ = post(t, server.URL+"/games/"+id+"/turn", turn)
			require.Equal(t, http.StatusOK, resp.StatusCode, turn)
		}

		resp, body = post(t, server.URL+"/games/"+id+"/turn", `{"mark":"X","cell":2}`)

		// Then: the final state is returned and the game is gone
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "XXXOO....", body["board"])
		assert.Equal(t, entity.StatusWonByA, body["status"])
		assert.Equal(t, "X", body["winner"])

		getResp, err := http.Get(server.URL + "/games/" + id)
		require.NoError(t, err)
		getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})

	t.Run("Empty chunked body starts a new game", func(t *testing.T) {
		// Given: a request without a body and an unknown length
		req := httptest.NewRequest(http.MethodPost, "/games", http.NoBody)
		req.ContentLength = -1
		rec := httptest.NewRecorder()

		// When: it is routed
		router.ServeHTTP(rec, req)

		// Then: an empty game is created
		assert.Equal(t, http.StatusCreated, rec.Code)

		var game map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&game))
		assert.Equal(t, ".........", game["board"])
	})

	t.Run("Finished snapshot is not kept", func(t *testing.T) {
		resp, body := post(t, server.URL+"/games", `{"board":"XXXOO...."}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, entity.StatusWonByA, body["status"])

		id, ok := body["id"].(string)
		require.True(t, ok)

		getResp, err := http.Get(server.URL + "/games/" + id)
		require.NoError(t, err)
		getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})

	t.Run("Resume from snapshot", func(t *testing.T) {
		resp, body := post(t, server.URL+"/games", `{"board":"X...O...."}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		id, ok := body["id"].(string)
		require.True(t, ok)

		getResp, err := http.Get(server.URL + "/games/" + id)
		require.NoError(t, err)
		game := readBody(t, getResp)

		assert.Equal(t, http.StatusOK, getResp.StatusCode)
		assert.Equal(t, "X...O....", game["board"])
		assert.Equal(t, "X", game["player_turn"])
	})

	t.Run("Impossible snapshot", func(t *testing.T) {
		resp, body := post(t, server.URL+"/games", `{"board":"..O......"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body["error"], "O has more marks than X")
	})

	t.Run("Out of turn", func(t *testing.T) {
		_, body := post(t, server.URL+"/games", "")
		id, ok := body["id"].(string)
		require.True(t, ok)

		resp, _ := post(t, server.URL+"/games/"+id+"/turn", `{"mark":"O","cell":0}`)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Invalid mark", func(t *testing.T) {
		_, body := post(t, server.URL+"/games", "")
		id, ok := body["id"].(string)
		require.True(t, ok)

		resp, _ := post(t, server.URL+"/games/"+id+"/turn", `{"mark":"Q","cell":0}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown game", func(t *testing.T) {
		resp, _ := post(t, server.URL+"/games/nope/turn", `{"mark":"X","cell":0}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
