package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger    *slog.Logger
	boardSize int
	gameRepo  gameRepo
	newID     func() string
}

func NewGameManager(logger *slog.Logger, boardSize int, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		boardSize: boardSize,
		gameRepo:  gameRepo,
		newID:     uuid.NewString,
	}
}

// CreateGame starts a game on an empty board, or continues from snapshot
// when it is not empty. Unreachable snapshots are rejected.
func (that *GameManager) CreateGame(ctx context.Context, snapshot string) (*entity.Game, error) {
	game, err := that.newGame(snapshot)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.logger.Info("snapshot already finished, not stored", "game_id", game.ID, "status", game.Status)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "status", game.Status)

	return game, nil
}

func (that *GameManager) newGame(snapshot string) (*entity.Game, error) {
	id := that.newID()

	if snapshot == "" {
		game, err := entity.NewGame(id, that.boardSize)
		if err != nil {
			return nil, fmt.Errorf("failed to start game: %w", err)
		}

		return game, nil
	}

	board, err := entity.ParseBoard(snapshot, that.boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	game, err := entity.ResumeGame(id, board)
	if err != nil {
		return nil, fmt.Errorf("failed to resume game: %w", err)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies a turn. A game that finishes is dropped from the store
// and returned in its final state.
func (that *GameManager) MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(mark, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		if err = that.finishGame(ctx, game); err != nil {
			return nil, err
		}

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// finishGame drops a finished game from the store. When the delete fails
// the final state is stored instead, so later turns get ErrGameFinished.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "finishGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game, storing final state", "game_id", game.ID, "error", err)

		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to store finished game: %w", err)
		}

		return nil
	}

	log.Info("game finished", "game_id", game.ID, "status", game.Status, "winner", game.Winner)

	return nil
}
