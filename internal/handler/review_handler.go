package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	"github.com/noah-isme/rate-my-teacher/pkg/response"
)

type reviewService interface {
	Create(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) service.Outcome
	UpdateMine(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) service.Outcome
	DeleteMine(ctx context.Context, user *models.SessionUser, in dto.DeleteReviewForm) service.Outcome
	ListMine(ctx context.Context, user *models.SessionUser) ([]models.ReviewItem, []string, error)
	GetMine(ctx context.Context, user *models.SessionUser, id string) (*models.Review, error)
}

type voteService interface {
	Set(ctx context.Context, user *models.SessionUser, in dto.VoteForm) service.Outcome
}

// ReviewHandler serves rating submission, the caller's own ratings and
// review votes.
type ReviewHandler struct {
	reviews reviewService
	votes   voteService
	metrics mutationRecorder
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviews reviewService, votes voteService, metrics mutationRecorder) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, votes: votes, metrics: metrics}
}

// Create godoc
// @Summary Submit a rating
// @Tags Reviews
// @Accept x-www-form-urlencoded
// @Param teacherId formData string true "Teacher ID"
// @Param quality formData int true "1-5"
// @Param difficulty formData int true "1-5"
// @Param wouldTakeAgain formData string false "yes or no; defaults to yes"
// @Param course formData string false "Course"
// @Param grade formData string false "Grade received"
// @Param isOnline formData string false "Checkbox; last value wins"
// @Param tags formData string false "Comma separated tags"
// @Param comment formData string false "Review text"
// @Success 303 "Redirect to /teachers/{id}#ratings; /teachers/{id}/rate?error= on failure"
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var in dto.ReviewForm
	bindForm(c, &in)
	respond(c, h.metrics, "create_review", h.reviews.Create(c.Request.Context(), currentUser(c), in))
}

// UpdateMine godoc
// @Summary Edit one of my ratings
// @Tags Reviews
// @Accept x-www-form-urlencoded
// @Param reviewId formData string true "Review ID"
// @Param quality formData int true "1-5"
// @Param difficulty formData int true "1-5"
// @Param wouldTakeAgain formData string true "yes or no"
// @Param course formData string true "Course"
// @Success 303 "Redirect to /teachers/{id}#ratings; /me/ratings/{id}/edit?error= on failure"
// @Router /me/ratings/update [post]
func (h *ReviewHandler) UpdateMine(c *gin.Context) {
	var in dto.ReviewForm
	bindForm(c, &in)
	respond(c, h.metrics, "update_review", h.reviews.UpdateMine(c.Request.Context(), currentUser(c), in))
}

// DeleteMine godoc
// @Summary Delete one of my ratings
// @Tags Reviews
// @Accept x-www-form-urlencoded
// @Param reviewId formData string true "Review ID"
// @Param teacherId formData string true "Teacher ID"
// @Success 303 "Redirect to /teachers/{id}#ratings"
// @Router /me/ratings/delete [post]
func (h *ReviewHandler) DeleteMine(c *gin.Context) {
	var in dto.DeleteReviewForm
	bindForm(c, &in)
	respond(c, h.metrics, "delete_review", h.reviews.DeleteMine(c.Request.Context(), currentUser(c), in))
}

// Vote godoc
// @Summary Vote on a review
// @Tags Reviews
// @Accept x-www-form-urlencoded
// @Param teacherId formData string true "Teacher ID"
// @Param reviewId formData string true "Review ID"
// @Param op formData string true "up, down or remove"
// @Success 303 "Redirect to /teachers/{id}#ratings"
// @Router /reviews/vote [post]
func (h *ReviewHandler) Vote(c *gin.Context) {
	var in dto.VoteForm
	bindForm(c, &in)
	respond(c, h.metrics, "vote", h.votes.Set(c.Request.Context(), currentUser(c), in))
}

// ListMine godoc
// @Summary My ratings
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /me/ratings [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	items, warnings, err := h.reviews.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, items, nil, warnings)
}

// EditMine godoc
// @Summary One of my ratings, for editing
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /me/ratings/{id}/edit [get]
func (h *ReviewHandler) EditMine(c *gin.Context) {
	review, err := h.reviews.GetMine(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, review, nil, nil)
}
