package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const verdictKeyPrefix = "verdict:"

var ErrVerdictNotFound = errors.New("verdict not found")

// VerdictRepository caches board reports by canonical board text.
type VerdictRepository interface {
	Save(ctx context.Context, report *entity.Report) error
	GetByBoard(ctx context.Context, board string) (*entity.Report, error)
}

type dbVerdict struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVerdictRepository(client *redis.Client, ttl time.Duration) VerdictRepository {
	return &dbVerdict{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbVerdict) Save(ctx context.Context, report *entity.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}

	err = that.client.Set(ctx, verdictKeyPrefix+report.Board.String(), reportJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set verdict: %w", err)
	}

	return nil
}

func (that *dbVerdict) GetByBoard(ctx context.Context, board string) (*entity.Report, error) {
	response, err := that.client.Get(ctx, verdictKeyPrefix+board).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrVerdictNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get verdict: %w", err)
	}

	var report entity.Report
	if err = json.Unmarshal([]byte(response), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}
