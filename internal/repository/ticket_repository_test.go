package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/models"
)

func TestTicketRepositoryCreateDefaultsStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTicketRepository(db)

	mock.ExpectExec("INSERT INTO support_tickets").WillReturnResult(sqlmock.NewResult(1, 1))

	ticket := &models.Ticket{UserID: "u1", Email: "a@basischina.com", Category: "Bug Report", Title: "Broken", Description: "Page is broken"}
	require.NoError(t, repo.Create(context.Background(), ticket))
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.NotEmpty(t, ticket.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTicketRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM support_tickets WHERE 1=1 AND status = $1 AND (email ILIKE $2 OR title ILIKE $2) ORDER BY created_at DESC LIMIT 80")).
		WithArgs("open", "%login%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email", "category", "category_other", "title", "description", "page_url", "user_agent", "status", "admin_note", "created_at", "updated_at"}).
			AddRow("k1", "u1", "a@basischina.com", "Account & Login", nil, "Cannot login", "Password reset fails", nil, nil, "open", nil, now, now))

	tickets, err := repo.List(context.Background(), models.TicketFilter{Status: "open", Search: "login", Limit: 80})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, models.TicketOpen, tickets[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTicketRepository(db)

	note := "fixed in release"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE support_tickets SET status = $2, admin_note = $3, updated_at = $4 WHERE id = $1")).
		WithArgs("k1", "resolved", note, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(context.Background(), "k1", models.TicketResolved, &note)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
