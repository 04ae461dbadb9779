package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type mockVerdictRepo struct {
	mock.Mock
}

func (m *mockVerdictRepo) Save(ctx context.Context, report *entity.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockVerdictRepo) GetByBoard(ctx context.Context, board string) (*entity.Report, error) {
	args := m.Called(ctx, board)
	report, _ := args.Get(0).(*entity.Report)
	return report, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
