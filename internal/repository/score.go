package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrScoreNotFound = errors.New("score not found")

type ScoreRepository interface {
	CreateOrUpdate(ctx context.Context, playerID string, score *entity.Score) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Score, error)
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func scoreKey(playerID string) string {
	return "score:" + playerID
}

func (that *dbScore) CreateOrUpdate(ctx context.Context, playerID string, score *entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, scoreKey(playerID), scoreJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) GetByPlayerID(ctx context.Context, playerID string) (*entity.Score, error) {
	response, err := that.client.Get(ctx, scoreKey(playerID)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Score{}, ErrScoreNotFound
	}

	if err != nil {
		return &entity.Score{}, fmt.Errorf("failed to get score by player id: %w", err)
	}

	var score entity.Score
	if err = json.Unmarshal([]byte(response), &score); err != nil {
		return &entity.Score{}, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &score, nil
}

func (that *dbScore) DeleteByPlayerID(ctx context.Context, playerID string) error {
	deleted, err := that.client.Del(ctx, scoreKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	if deleted == 0 {
		return ErrScoreNotFound
	}

	return nil
}
