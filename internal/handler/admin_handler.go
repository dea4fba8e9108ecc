package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	"github.com/noah-isme/rate-my-teacher/pkg/response"
)

type adminTeacherService interface {
	Roster(ctx context.Context, search string) ([]models.Teacher, error)
	Get(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, in dto.TeacherForm) service.Outcome
	Update(ctx context.Context, in dto.TeacherForm) service.Outcome
	Delete(ctx context.Context, in dto.AdminDeleteForm) service.Outcome
}

type adminReviewService interface {
	AdminList(ctx context.Context, search, teacherID string) ([]models.ReviewItem, []string, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	AdminUpdate(ctx context.Context, in dto.AdminReviewForm) service.Outcome
	AdminDelete(ctx context.Context, in dto.AdminDeleteForm) service.Outcome
}

type adminTicketService interface {
	AdminList(ctx context.Context, q dto.TicketQuery) ([]models.Ticket, error)
	Get(ctx context.Context, id string) (*models.Ticket, error)
	AdminUpdate(ctx context.Context, in dto.TicketUpdateForm) service.Outcome
	Export(ctx context.Context, q dto.TicketQuery) (*service.ExportFile, error)
}

// AdminHandler serves the moderation panel: teachers, reviews and support
// tickets.
type AdminHandler struct {
	teachers adminTeacherService
	reviews  adminReviewService
	tickets  adminTicketService
	metrics  mutationRecorder
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(teachers adminTeacherService, reviews adminReviewService, tickets adminTicketService, metrics mutationRecorder) *AdminHandler {
	return &AdminHandler{teachers: teachers, reviews: reviews, tickets: tickets, metrics: metrics}
}

// ListTeachers godoc
// @Summary Teacher roster
// @Tags Admin
// @Produce json
// @Param q query string false "Name contains"
// @Success 200 {object} response.Envelope
// @Router /admin/teachers [get]
func (h *AdminHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.teachers.Roster(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, teachers, nil, nil)
}

// EditTeacher godoc
// @Summary Teacher for the edit form
// @Tags Admin
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/teachers/{id}/edit [get]
func (h *AdminHandler) EditTeacher(c *gin.Context) {
	teacher, err := h.teachers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, teacher, nil, nil)
}

// CreateTeacher godoc
// @Summary Add a teacher
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param full_name formData string true "Full name"
// @Param subjects formData string false "Comma separated subjects"
// @Success 303 "Redirect to /admin/teachers"
// @Router /admin/teachers [post]
func (h *AdminHandler) CreateTeacher(c *gin.Context) {
	var in dto.TeacherForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_create_teacher", h.teachers.Create(c.Request.Context(), in))
}

// UpdateTeacher godoc
// @Summary Edit a teacher
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id formData string true "Teacher ID"
// @Param full_name formData string true "Full name"
// @Param subjects formData string false "Comma separated subjects"
// @Success 303 "Redirect to /admin/teachers; the edit page with error= on failure"
// @Router /admin/teachers/update [post]
func (h *AdminHandler) UpdateTeacher(c *gin.Context) {
	var in dto.TeacherForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_update_teacher", h.teachers.Update(c.Request.Context(), in))
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id formData string true "Teacher ID"
// @Success 303 "Redirect to /admin/teachers"
// @Router /admin/teachers/delete [post]
func (h *AdminHandler) DeleteTeacher(c *gin.Context) {
	var in dto.AdminDeleteForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_delete_teacher", h.teachers.Delete(c.Request.Context(), in))
}

// ListReviews godoc
// @Summary Latest reviews for moderation
// @Tags Admin
// @Produce json
// @Param q query string false "Comment contains"
// @Param teacher_id query string false "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(c *gin.Context) {
	items, warnings, err := h.reviews.AdminList(c.Request.Context(), c.Query("q"), c.Query("teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, items, nil, warnings)
}

// EditReview godoc
// @Summary Review for the moderation form
// @Tags Admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/reviews/{id}/edit [get]
func (h *AdminHandler) EditReview(c *gin.Context) {
	review, err := h.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, review, nil, nil)
}

// UpdateReview godoc
// @Summary Moderate a review
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id formData string true "Review ID"
// @Param teacher_id formData string true "Teacher ID"
// @Param quality formData int true "1-5"
// @Param difficulty formData int true "1-5"
// @Success 303 "Redirect to /admin/reviews"
// @Router /admin/reviews/update [post]
func (h *AdminHandler) UpdateReview(c *gin.Context) {
	var in dto.AdminReviewForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_update_review", h.reviews.AdminUpdate(c.Request.Context(), in))
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id formData string true "Review ID"
// @Param teacher_id formData string false "Teacher ID"
// @Success 303 "Redirect to /admin/reviews"
// @Router /admin/reviews/delete [post]
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	var in dto.AdminDeleteForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_delete_review", h.reviews.AdminDelete(c.Request.Context(), in))
}

// ListTickets godoc
// @Summary Support ticket queue
// @Tags Admin
// @Produce json
// @Param q query string false "Email or title contains"
// @Param status query string false "open, in_progress, resolved or closed"
// @Success 200 {object} response.Envelope
// @Router /admin/tickets [get]
func (h *AdminHandler) ListTickets(c *gin.Context) {
	var query dto.TicketQuery
	_ = c.ShouldBindQuery(&query)
	tickets, err := h.tickets.AdminList(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, tickets, nil, nil)
}

// GetTicket godoc
// @Summary Ticket detail
// @Tags Admin
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/tickets/{id} [get]
func (h *AdminHandler) GetTicket(c *gin.Context) {
	ticket, err := h.tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, ticket, nil, nil)
}

// UpdateTicket godoc
// @Summary Change a ticket's status
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id formData string true "Ticket ID"
// @Param status formData string true "open, in_progress, resolved or closed"
// @Param admin_note formData string false "Internal note"
// @Success 303 "Redirect to /admin/tickets/{id}"
// @Router /admin/tickets/update [post]
func (h *AdminHandler) UpdateTicket(c *gin.Context) {
	var in dto.TicketUpdateForm
	bindForm(c, &in)
	respond(c, h.metrics, "admin_update_ticket", h.tickets.AdminUpdate(c.Request.Context(), in))
}

// ExportTickets godoc
// @Summary Download the ticket queue
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param q query string false "Email or title contains"
// @Param status query string false "open, in_progress, resolved or closed"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /admin/tickets/export [get]
func (h *AdminHandler) ExportTickets(c *gin.Context) {
	var query dto.TicketQuery
	_ = c.ShouldBindQuery(&query)
	file, err := h.tickets.Export(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
