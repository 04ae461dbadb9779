package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type boardChecker interface {
	Check(ctx context.Context, text string) (*entity.Report, error)
}

type gameManager interface {
	CreateGame(ctx context.Context, snapshot string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Game, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	CheckBoard(w http.ResponseWriter, r *http.Request)

	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
}

type boardRequest struct {
	Board string `json:"board"`
}

type turnRequest struct {
	Mark entity.Mark `json:"mark"`
	Cell int         `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	boards boardChecker
	games  gameManager
}

func NewHandlers(logger *slog.Logger, boards boardChecker, games gameManager) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		boards: boards,
		games:  games,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CheckBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	report, err := that.boards.Check(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, report)
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, err)
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), req.Mark, req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedBody, err)
	}

	return nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	var (
		badChars *entity.BadCharsError
		reason   entity.ImpossibleReason
	)

	switch {
	case errors.Is(err, apperror.ErrMalformedBody),
		errors.Is(err, entity.ErrEmptyBoard),
		errors.Is(err, entity.ErrBadBoardLength),
		errors.Is(err, entity.ErrInvalidMark),
		errors.As(err, &badChars):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.As(err, &reason),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
