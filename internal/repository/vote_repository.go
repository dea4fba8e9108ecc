package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/rate-my-teacher/internal/models"
)

// VoteRepository manages review votes keyed by (review_id, user_id).
type VoteRepository struct {
	db *sqlx.DB
}

// NewVoteRepository constructs a VoteRepository.
func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Upsert stores the caller's vote, replacing any previous one.
func (r *VoteRepository) Upsert(ctx context.Context, vote models.Vote) error {
	const query = `INSERT INTO review_votes (review_id, user_id, vote) VALUES ($1, $2, $3)
		ON CONFLICT (review_id, user_id) DO UPDATE SET vote = EXCLUDED.vote`
	if _, err := r.db.ExecContext(ctx, query, vote.ReviewID, vote.UserID, vote.Value); err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

// Delete clears the caller's vote. Zero rows affected is not an error.
func (r *VoteRepository) Delete(ctx context.Context, reviewID, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review_votes WHERE review_id = $1 AND user_id = $2`, reviewID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete vote: %w", err)
	}
	return res.RowsAffected()
}

// Tallies sums votes per review.
func (r *VoteRepository) Tallies(ctx context.Context, reviewIDs []string) ([]models.VoteTally, error) {
	if len(reviewIDs) == 0 {
		return []models.VoteTally{}, nil
	}
	const query = `SELECT review_id, COALESCE(SUM(vote), 0) AS score FROM review_votes WHERE review_id = ANY($1) GROUP BY review_id`
	var tallies []models.VoteTally
	if err := r.db.SelectContext(ctx, &tallies, query, pq.Array(reviewIDs)); err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	return tallies, nil
}

// ForUser returns the caller's votes among the given reviews.
func (r *VoteRepository) ForUser(ctx context.Context, userID string, reviewIDs []string) ([]models.Vote, error) {
	if userID == "" || len(reviewIDs) == 0 {
		return []models.Vote{}, nil
	}
	const query = `SELECT review_id, user_id, vote FROM review_votes WHERE user_id = $1 AND review_id = ANY($2)`
	var votes []models.Vote
	if err := r.db.SelectContext(ctx, &votes, query, userID, pq.Array(reviewIDs)); err != nil {
		return nil, fmt.Errorf("user votes: %w", err)
	}
	return votes, nil
}
