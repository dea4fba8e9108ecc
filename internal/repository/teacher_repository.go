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

const teacherListColumns = `t.id, t.full_name, t.subjects,
	COUNT(r.id) AS review_count,
	AVG(r.quality)::float8 AS avg_quality,
	AVG(r.difficulty)::float8 AS avg_difficulty,
	(100.0 * AVG(CASE WHEN r.would_take_again THEN 1 ELSE 0 END))::float8 AS pct_would_take_again`

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns one page of teachers with rating aggregates. It fetches one
// row past the page size so callers can tell whether a next page exists.
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherListItem, error) {
	base := "FROM teachers t LEFT JOIN reviews r ON r.teacher_id = t.id WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("t.full_name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(t.subjects)", len(args)+1))
		args = append(args, filter.Subject)
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s GROUP BY t.id ORDER BY review_count DESC, t.full_name ASC LIMIT %d OFFSET %d", teacherListColumns, base, size+1, offset)
	var teachers []models.TeacherListItem
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Subjects returns the distinct subject tags in use.
func (r *TeacherRepository) Subjects(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT s.subject FROM teachers t, unnest(t.subjects) AS s(subject) WHERE s.subject <> '' ORDER BY s.subject ASC`
	var subjects []string
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// Search returns teachers for the admin roster ordered by name.
func (r *TeacherRepository) Search(ctx context.Context, search string, limit int) ([]models.Teacher, error) {
	query := "SELECT id, full_name, subjects, created_at FROM teachers"
	var args []interface{}
	if search != "" {
		query += " WHERE full_name ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	query += fmt.Sprintf(" ORDER BY full_name ASC LIMIT %d", limit)

	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("search teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	const query = `SELECT id, full_name, subjects, created_at FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return &teacher, nil
}

// FindByIDs batch-fetches teachers.
func (r *TeacherRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Teacher, error) {
	if len(ids) == 0 {
		return []models.Teacher{}, nil
	}
	const query = `SELECT id, full_name, subjects, created_at FROM teachers WHERE id = ANY($1)`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find teachers: %w", err)
	}
	return teachers, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}
	if teacher.Subjects == nil {
		teacher.Subjects = pq.StringArray{}
	}

	const query = `INSERT INTO teachers (id, full_name, subjects, created_at) VALUES (:id, :full_name, :subjects, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update modifies name and subjects, returning the affected row count.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if teacher.Subjects == nil {
		teacher.Subjects = pq.StringArray{}
	}
	const query = `UPDATE teachers SET full_name = :full_name, subjects = :subjects WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return 0, fmt.Errorf("update teacher: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes a teacher. Foreign keys from reviews make this fail while
// reviews still reference the teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete teacher: %w", err)
	}
	return res.RowsAffected()
}
