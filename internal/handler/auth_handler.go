package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
)

type authService interface {
	SignIn(ctx context.Context, in dto.SignInForm) (service.Outcome, *models.Session)
	SignUp(ctx context.Context, in dto.SignUpForm) (service.Outcome, *models.Session)
	SignOut(ctx context.Context, token string) service.Outcome
}

// AuthHandler serves the end-user sign-in, sign-up and sign-out forms.
type AuthHandler struct {
	service authService
	metrics mutationRecorder
	cookie  CookieConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, metrics mutationRecorder, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, metrics: metrics, cookie: cookie}
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param redirectTo formData string false "Relative path to continue to"
// @Success 303 "Redirect to redirectTo or /teachers; /login?error= on failure"
// @Router /login [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var in dto.SignInForm
	bindForm(c, &in)
	out, session := h.service.SignIn(c.Request.Context(), in)
	if session != nil {
		setSessionCookie(c, h.cookie, session)
	}
	respond(c, h.metrics, "sign_in", out)
}

// SignUp godoc
// @Summary Register an account
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirmPassword formData string false "Password confirmation"
// @Param redirectTo formData string false "Relative path to continue to"
// @Success 303 "Redirect to redirectTo or /teachers; /login?mode=signup&error= on failure"
// @Router /signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var in dto.SignUpForm
	bindForm(c, &in)
	out, session := h.service.SignUp(c.Request.Context(), in)
	if session != nil {
		setSessionCookie(c, h.cookie, session)
	}
	respond(c, h.metrics, "sign_up", out)
}

// SignOut godoc
// @Summary Sign out
// @Tags Authentication
// @Success 303 "Redirect to /login"
// @Router /logout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	out := h.service.SignOut(c.Request.Context(), sessionToken(c, h.cookie))
	clearSessionCookie(c, h.cookie)
	respond(c, h.metrics, "sign_out", out)
}
