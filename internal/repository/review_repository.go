package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/rate-my-teacher/internal/models"
)

const reviewColumns = "id, teacher_id, user_id, quality, difficulty, would_take_again, comment, course, grade, is_online, tags, created_at"

// ReviewRepository manages persistence for reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	if review.Tags == nil {
		review.Tags = pq.StringArray{}
	}

	const query = `INSERT INTO reviews (id, teacher_id, user_id, quality, difficulty, would_take_again, comment, course, grade, is_online, tags, created_at)
		VALUES (:id, :teacher_id, :user_id, :quality, :difficulty, :would_take_again, :comment, :course, :grade, :is_online, :tags, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// UpdateOwned updates a review only when it belongs to userID and returns
// its teacher id. sql.ErrNoRows means nothing matched.
func (r *ReviewRepository) UpdateOwned(ctx context.Context, review *models.Review, userID string) (string, error) {
	if review.Tags == nil {
		review.Tags = pq.StringArray{}
	}
	const query = `UPDATE reviews SET quality = $3, difficulty = $4, would_take_again = $5, course = $6, grade = $7, is_online = $8, tags = $9, comment = $10
		WHERE id = $1 AND user_id = $2 RETURNING teacher_id`
	var teacherID string
	err := r.db.GetContext(ctx, &teacherID, query,
		review.ID, userID, review.Quality, review.Difficulty, review.WouldTakeAgain,
		review.Course, review.Grade, review.IsOnline, review.Tags, review.Comment)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("update review: %w", err)
	}
	return teacherID, nil
}

// DeleteOwned deletes a review only when it belongs to userID.
func (r *ReviewRepository) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	return res.RowsAffected()
}

// Update modifies any review. Used by moderation.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) (int64, error) {
	if review.Tags == nil {
		review.Tags = pq.StringArray{}
	}
	const query = `UPDATE reviews SET quality = :quality, difficulty = :difficulty, would_take_again = :would_take_again, course = :course,
		grade = :grade, is_online = :is_online, comment = :comment, tags = :tags WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, review)
	if err != nil {
		return 0, fmt.Errorf("update review: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes any review. Used by moderation.
func (r *ReviewRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	return res.RowsAffected()
}

// FindByID fetches a review by ID.
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE id = $1"
	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

// List returns the newest reviews matching the filter.
func (r *ReviewRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.TeacherID != "" {
		conditions = append(conditions, fmt.Sprintf("teacher_id = $%d", len(args)+1))
		args = append(args, filter.TeacherID)
	}
	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, filter.UserID)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("comment ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
