package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// memoryScore keeps scores for the lifetime of the process. It is used when
// Redis is disabled and behaves like the Redis repository.
type memoryScore struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) CreateOrUpdate(_ context.Context, playerID string, score *entity.Score) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[playerID] = *score

	return nil
}

func (that *memoryScore) GetByPlayerID(_ context.Context, playerID string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score, ok := that.scores[playerID]
	if !ok {
		return &entity.Score{}, ErrScoreNotFound
	}

	return &score, nil
}

func (that *memoryScore) DeleteByPlayerID(_ context.Context, playerID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.scores[playerID]; !ok {
		return ErrScoreNotFound
	}

	delete(that.scores, playerID)

	return nil
}
