package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/models"
)

func TestVoteRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVoteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (review_id, user_id) DO UPDATE SET vote = EXCLUDED.vote")).
		WithArgs("r1", "u1", -1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), models.Vote{ReviewID: "r1", UserID: "u1", Value: -1}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepositoryDeleteMissingVote(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVoteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM review_votes WHERE review_id = $1 AND user_id = $2")).
		WithArgs("r1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Delete(context.Background(), "r1", "u1")
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepositoryTallies(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVoteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY review_id")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "score"}).AddRow("r1", 3).AddRow("r2", -1))

	tallies, err := repo.Tallies(context.Background(), []string{"r1", "r2"})
	require.NoError(t, err)
	assert.Equal(t, []models.VoteTally{{ReviewID: "r1", Score: 3}, {ReviewID: "r2", Score: -1}}, tallies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepositoryForUserAnonymous(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewVoteRepository(db)

	votes, err := repo.ForUser(context.Background(), "", []string{"r1"})
	require.NoError(t, err)
	assert.Empty(t, votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
