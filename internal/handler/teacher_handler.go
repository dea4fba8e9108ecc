package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/pkg/response"
)

type teacherReader interface {
	Browse(ctx context.Context, query dto.TeacherQuery, token string) (*models.TeacherPage, *models.Pagination, []string, error)
	Detail(ctx context.Context, id, token string) (*models.TeacherDetail, []string, error)
	Get(ctx context.Context, id string) (*models.Teacher, error)
}

// TeacherHandler serves the public teacher pages.
type TeacherHandler struct {
	teachers teacherReader
	cookie   CookieConfig
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(teachers teacherReader, cookie CookieConfig) *TeacherHandler {
	return &TeacherHandler{teachers: teachers, cookie: cookie}
}

// Browse godoc
// @Summary Browse teachers
// @Tags Teachers
// @Produce json
// @Param q query string false "Name contains"
// @Param subject query string false "Exact subject"
// @Param page query int false "Page number, 10 per page"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) Browse(c *gin.Context) {
	var query dto.TeacherQuery
	_ = c.ShouldBindQuery(&query)

	page, pagination, warnings, err := h.teachers.Browse(c.Request.Context(), query, sessionToken(c, h.cookie))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, page, pagination, warnings)
}

// Detail godoc
// @Summary Teacher profile with reviews
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Detail(c *gin.Context) {
	detail, warnings, err := h.teachers.Detail(c.Request.Context(), c.Param("id"), sessionToken(c, h.cookie))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, detail, nil, warnings)
}

// RateForm godoc
// @Summary Teacher summary for the rating form
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id}/rate [get]
func (h *TeacherHandler) RateForm(c *gin.Context) {
	teacher, err := h.teachers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderJSON(c, teacher, nil, nil)
}
