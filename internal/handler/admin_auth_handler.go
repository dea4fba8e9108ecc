package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
)

type adminAuthService interface {
	Login(ctx context.Context, in dto.AdminLoginForm) (service.Outcome, *models.Session)
	Logout(ctx context.Context) service.Outcome
}

// AdminAuthHandler serves admin panel login and logout.
type AdminAuthHandler struct {
	service adminAuthService
	metrics mutationRecorder
	cookie  CookieConfig
}

// NewAdminAuthHandler constructs the handler.
func NewAdminAuthHandler(svc adminAuthService, metrics mutationRecorder, cookie CookieConfig) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc, metrics: metrics, cookie: cookie}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Param next formData string false "Relative admin path to continue to"
// @Success 303 "Redirect to next or /admin/teachers; /admin/login?error= on failure"
// @Router /admin/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var in dto.AdminLoginForm
	bindForm(c, &in)
	out, session := h.service.Login(c.Request.Context(), in)
	if session != nil {
		setSessionCookie(c, h.cookie, session)
	}
	respond(c, h.metrics, "admin_login", out)
}

// Logout godoc
// @Summary Admin logout
// @Tags Admin
// @Success 303 "Redirect to /admin/login?message=Logged out."
// @Router /admin/logout [post]
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	out := h.service.Logout(c.Request.Context())
	clearSessionCookie(c, h.cookie)
	respond(c, h.metrics, "admin_logout", out)
}
