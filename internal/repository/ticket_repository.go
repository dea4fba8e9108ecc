package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/rate-my-teacher/internal/models"
)

const ticketColumns = "id, user_id, email, category, category_other, title, description, page_url, user_agent, status, admin_note, created_at, updated_at"

// TicketRepository manages support tickets.
type TicketRepository struct {
	db *sqlx.DB
}

// NewTicketRepository constructs a TicketRepository.
func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create inserts a ticket.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now
	if ticket.Status == "" {
		ticket.Status = models.TicketOpen
	}

	const query = `INSERT INTO support_tickets (id, user_id, email, category, category_other, title, description, page_url, user_agent, status, admin_note, created_at, updated_at)
		VALUES (:id, :user_id, :email, :category, :category_other, :title, :description, :page_url, :user_agent, :status, :admin_note, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, ticket); err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

// List returns the latest tickets matching the filter.
func (r *TicketRepository) List(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error) {
	query := "SELECT " + ticketColumns + " FROM support_tickets WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(email ILIKE $%d OR title ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var tickets []models.Ticket
	if err := r.db.SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// FindByID fetches a ticket by ID.
func (r *TicketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	query := "SELECT " + ticketColumns + " FROM support_tickets WHERE id = $1"
	var ticket models.Ticket
	if err := r.db.GetContext(ctx, &ticket, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &ticket, nil
}

// UpdateStatus sets status and the admin note.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status models.TicketStatus, note *string) (int64, error) {
	const query = `UPDATE support_tickets SET status = $2, admin_note = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, string(status), note, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("update ticket: %w", err)
	}
	return res.RowsAffected()
}
