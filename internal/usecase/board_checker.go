package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type verdictRepo interface {
	Save(ctx context.Context, report *entity.Report) error
	GetByBoard(ctx context.Context, board string) (*entity.Report, error)
}

type BoardChecker struct {
	logger      *slog.Logger
	boardSize   int
	verdictRepo verdictRepo
}

func NewBoardChecker(logger *slog.Logger, boardSize int, verdictRepo verdictRepo) *BoardChecker {
	return &BoardChecker{
		logger:      logger.With("component", "board_checker"),
		boardSize:   boardSize,
		verdictRepo: verdictRepo,
	}
}

// Check parses board text and reports its winner and reachability. Verdicts
// are cached; a failing cache never fails the check.
func (that *BoardChecker) Check(ctx context.Context, text string) (*entity.Report, error) {
	log := that.logger.With("method", "Check")

	board, err := entity.ParseBoard(text, that.boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	key := board.String()

	cached, err := that.verdictRepo.GetByBoard(ctx, key)
	switch {
	case err == nil:
		log.Debug("verdict cache hit", "board", key)
		return cached, nil
	case !errors.Is(err, repository.ErrVerdictNotFound):
		log.Error("failed to read verdict cache", "board", key, "error", err)
	}

	report := entity.Inspect(board)

	if err = that.verdictRepo.Save(ctx, &report); err != nil {
		log.Error("failed to cache verdict", "board", key, "error", err)
	}

	log.Info("board checked", "board", key, "status", report.Status, "valid", report.Valid)

	return &report, nil
}
