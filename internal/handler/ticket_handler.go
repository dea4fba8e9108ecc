package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
)

type ticketSubmitter interface {
	Create(ctx context.Context, user *models.SessionUser, in dto.TicketForm) service.Outcome
}

// TicketHandler serves the contact form.
type TicketHandler struct {
	tickets ticketSubmitter
	metrics mutationRecorder
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(tickets ticketSubmitter, metrics mutationRecorder) *TicketHandler {
	return &TicketHandler{tickets: tickets, metrics: metrics}
}

// Categories godoc
// @Summary Contact form categories
// @Tags Support
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contact [get]
func (h *TicketHandler) Categories(c *gin.Context) {
	renderJSON(c, gin.H{"categories": models.TicketCategories, "other": models.CategoryOther}, nil, nil)
}

// Create godoc
// @Summary Submit a support ticket
// @Tags Support
// @Accept x-www-form-urlencoded
// @Param category formData string true "One of the contact categories"
// @Param category_other formData string false "Required when category is Other"
// @Param title formData string true "3-120 characters"
// @Param description formData string true "10-4000 characters"
// @Success 303 "Redirect to /contact?message= or /contact?error="
// @Router /contact [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var in dto.TicketForm
	bindForm(c, &in)
	in.PageURL = c.GetHeader("Referer")
	in.UserAgent = c.GetHeader("User-Agent")
	respond(c, h.metrics, "create_ticket", h.tickets.Create(c.Request.Context(), currentUser(c), in))
}
