package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/middleware"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	"github.com/noah-isme/rate-my-teacher/pkg/response"
)

// CookieConfig names a session cookie and its security attributes.
type CookieConfig struct {
	Name   string
	Secure bool
}

type mutationRecorder interface {
	RecordMutation(operation string, outcome service.Outcome)
}

// bindForm decodes the form body. Binding problems leave fields empty and
// the service reports them as missing values; the decode error is attached
// to the context so the access log records it.
func bindForm(c *gin.Context, dest interface{}) {
	if err := c.ShouldBind(dest); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
	}
}

// respond finishes a form submission with a 303 redirect.
func respond(c *gin.Context, metrics mutationRecorder, operation string, out service.Outcome) {
	if metrics != nil {
		metrics.RecordMutation(operation, out)
	}
	response.Redirect(c, out.Path, out.Message, out.Failure())
}

func currentUser(c *gin.Context) *models.SessionUser {
	return middleware.CurrentUser(c)
}

func sessionToken(c *gin.Context, cookie CookieConfig) string {
	token, err := c.Cookie(cookie.Name)
	if err != nil {
		return ""
	}
	return token
}

func setSessionCookie(c *gin.Context, cookie CookieConfig, session *models.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie.Name, session.Token, maxAge, "/", "", cookie.Secure, true)
}

func clearSessionCookie(c *gin.Context, cookie CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, true)
}

func renderJSON(c *gin.Context, data interface{}, pagination *models.Pagination, warnings []string) {
	middleware.AddWarnings(c, warnings...)
	response.JSON(c, http.StatusOK, data, pagination, middleware.ExtractMeta(c))
}
