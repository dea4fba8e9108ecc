package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/export"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

const (
	contactPath       = "/contact"
	adminTicketsPath  = "/admin/tickets"
	adminTicketsLimit = 80
	exportTicketLimit = 1000
	maxPageURL        = 2048
	maxUserAgent      = 512
)

var ticketMessages = map[string]string{
	"Category":      "Please choose a category.",
	"CategoryOther": "Category description is too long (max 60 characters).",
	"Title":         "Title must be 3-120 characters.",
	"Description":   "Description must be 10-4000 characters.",
}

type ticketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	List(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error)
	FindByID(ctx context.Context, id string) (*models.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status models.TicketStatus, note *string) (int64, error)
}

// ExportFile is a rendered ticket export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TicketService handles the contact form and the admin ticket queue.
type TicketService struct {
	repo      ticketRepository
	gate      Gate
	renderers map[string]export.Renderer
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTicketService constructs a TicketService. Exports are available as csv
// and pdf.
func NewTicketService(repo ticketRepository, gate Gate, validate *validator.Validate, logger *zap.Logger) *TicketService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	csv, pdf := export.NewCSVExporter(), export.NewPDFExporter()
	return &TicketService{
		repo:      repo,
		gate:      gate,
		renderers: map[string]export.Renderer{csv.Extension(): csv, pdf.Extension(): pdf},
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Create files a support ticket for the signed-in user.
func (s *TicketService) Create(ctx context.Context, user *models.SessionUser, in dto.TicketForm) Outcome {
	in.Normalize()
	if err := s.validator.Struct(in); err != nil {
		return invalid(contactPath, violation(err, ticketMessages, "Please check the form."))
	}
	if !knownCategory(in.Category) {
		return invalid(contactPath, ticketMessages["Category"])
	}
	if in.Category == models.CategoryOther && in.CategoryOther == "" {
		return invalid(contactPath, "Please describe the category.")
	}
	if out, ok := s.gate.Check(user, contactPath); !ok {
		return out
	}

	ticket := &models.Ticket{
		UserID:        user.ID,
		Email:         user.Email,
		Category:      in.Category,
		CategoryOther: form.Optional(in.CategoryOther),
		Title:         in.Title,
		Description:   in.Description,
		PageURL:       form.Optional(form.Truncate(in.PageURL, maxPageURL)),
		UserAgent:     form.Optional(form.Truncate(in.UserAgent, maxUserAgent)),
		Status:        models.TicketOpen,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		s.logger.Warn("create ticket failed", zap.String("user_id", user.ID), zap.Error(err))
		return failed(contactPath, err)
	}
	s.logger.Info("ticket submitted", zap.String("ticket_id", ticket.ID), zap.String("category", ticket.Category))
	return done(contactPath, "Ticket submitted.")
}

// AdminList returns the latest tickets. An unknown status filter is ignored.
func (s *TicketService) AdminList(ctx context.Context, q dto.TicketQuery) ([]models.Ticket, error) {
	return s.list(ctx, q, adminTicketsLimit)
}

// Get returns one ticket.
func (s *TicketService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Ticket not found.")
		}
		return nil, appErrors.Backend(err)
	}
	return ticket, nil
}

// AdminUpdate sets a ticket's status and reply note.
func (s *TicketService) AdminUpdate(ctx context.Context, in dto.TicketUpdateForm) Outcome {
	in.Normalize()
	if in.ID == "" {
		return invalid(adminTicketsPath, "Missing ticket id.")
	}
	detail := adminTicketsPath + "/" + url.PathEscape(in.ID)
	if in.Status == "" {
		return invalid(detail, "Status is required.")
	}
	status := models.TicketStatus(in.Status)
	if !status.Valid() {
		return invalid(detail, "Unknown status.")
	}

	affected, err := s.repo.UpdateStatus(ctx, in.ID, status, form.Optional(in.AdminNote))
	if err != nil {
		s.logger.Warn("update ticket failed", zap.String("ticket_id", in.ID), zap.Error(err))
		return failed(detail, err)
	}
	if affected == 0 {
		return reject(detail, appErrors.Clone(appErrors.ErrNotFound, "Ticket not found."))
	}
	return done(detail, "Updated.")
}

// Export renders the filtered ticket queue as csv (default) or pdf.
func (s *TicketService) Export(ctx context.Context, q dto.TicketQuery) (*ExportFile, error) {
	format := strings.ToLower(form.Str(q.Format))
	if format == "" {
		format = "csv"
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Unsupported export format.")
	}

	tickets, err := s.list(ctx, q, exportTicketLimit)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   "Support tickets",
		Headers: []string{"Created", "Status", "Category", "Email", "Title", "Description", "Admin note"},
		Widths:  []float64{1.3, 1, 1.4, 1.8, 2, 3.5, 2},
		Rows:    make([][]string, 0, len(tickets)),
	}
	for _, t := range tickets {
		data.Rows = append(data.Rows, []string{
			t.CreatedAt.UTC().Format("2006-01-02 15:04"),
			t.Status.Label(),
			t.CategoryLabel(),
			t.Email,
			t.Title,
			t.Description,
			deref(t.AdminNote),
		})
	}

	body, err := renderer.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("tickets-%s.%s", s.now().UTC().Format("20060102-150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        body,
	}, nil
}

func (s *TicketService) list(ctx context.Context, q dto.TicketQuery, limit int) ([]models.Ticket, error) {
	filter := models.TicketFilter{Search: form.Str(q.Q), Limit: limit}
	if status := models.TicketStatus(form.Str(q.Status)); status.Valid() {
		filter.Status = string(status)
	}
	tickets, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Backend(err)
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

func knownCategory(category string) bool {
	for _, c := range models.TicketCategories {
		if c == category {
			return true
		}
	}
	return false
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
