package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepository(t *testing.T) {
	ctx, st := suite.New(t)

	testScoreRepository(ctx, t, NewScoreRepository(st.Storage))
}

func TestMemoryScoreRepository(t *testing.T) {
	testScoreRepository(context.Background(), t, NewMemoryScoreRepository())
}

func testScoreRepository(ctx context.Context, t *testing.T, scoreRepo ScoreRepository) {
	t.Helper()

	t.Run("GetByPlayerID_NotFound", func(t *testing.T) {
		// When: GetByPlayerID is called for an unknown player
		score, err := scoreRepo.GetByPlayerID(ctx, "nobody")

		// Then: ErrScoreNotFound and an empty score are returned
		require.ErrorIs(t, err, ErrScoreNotFound)
		assert.Equal(t, &entity.Score{}, score)
	})

	t.Run("CreateOrUpdate_and_GetByPlayerID", func(t *testing.T) {
		// Given: a stored score
		score := &entity.Score{HumanWins: 1, AgentWins: 2, Ties: 3}
		require.NoError(t, scoreRepo.CreateOrUpdate(ctx, "alice", score))

		// When: the score is updated and read back
		score.Add(entity.OutcomeTie)
		require.NoError(t, scoreRepo.CreateOrUpdate(ctx, "alice", score))

		retrieved, err := scoreRepo.GetByPlayerID(ctx, "alice")

		// Then: the latest score is returned
		require.NoError(t, err)
		assert.Equal(t, &entity.Score{HumanWins: 1, AgentWins: 2, Ties: 4}, retrieved)
	})

	t.Run("Scores are kept per player", func(t *testing.T) {
		require.NoError(t, scoreRepo.CreateOrUpdate(ctx, "bob", &entity.Score{AgentWins: 7}))

		alice, err := scoreRepo.GetByPlayerID(ctx, "alice")
		require.NoError(t, err)
		bob, err := scoreRepo.GetByPlayerID(ctx, "bob")
		require.NoError(t, err)

		assert.Equal(t, 4, alice.Ties)
		assert.Equal(t, 7, bob.AgentWins)
	})

	t.Run("DeleteByPlayerID", func(t *testing.T) {
		// When: the score is deleted
		require.NoError(t, scoreRepo.DeleteByPlayerID(ctx, "alice"))

		// Then: it is gone and a second delete reports it
		_, err := scoreRepo.GetByPlayerID(ctx, "alice")
		require.ErrorIs(t, err, ErrScoreNotFound)
		require.ErrorIs(t, scoreRepo.DeleteByPlayerID(ctx, "alice"), ErrScoreNotFound)
	})
}
