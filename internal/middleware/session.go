package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
	"github.com/noah-isme/rate-my-teacher/pkg/response"
)

// Context keys set by the session middleware.
const (
	ContextUserKey  = "currentUser"
	ContextAdminKey = "currentAdmin"
)

type sessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.SessionUser, error)
}

type adminValidator interface {
	Validate(token string) (*models.AdminSession, error)
}

// Session attaches the end-user session when the cookie holds a valid one.
// It never blocks the request.
func Session(resolver sessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		user, err := resolver.CurrentUser(c.Request.Context(), token)
		if err == nil && user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// RequireUser sends visitors without an allowed session to the login page,
// remembering where they were headed.
func RequireUser(gate service.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if out, ok := gate.Check(CurrentUser(c), c.Request.URL.RequestURI()); !ok {
			response.Redirect(c, out.Path, out.Message, out.Failure())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin guards the admin panel with the signed admin cookie.
func RequireAdmin(admins adminValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		session, err := admins.Validate(token)
		if err != nil {
			c.Header("Cache-Control", "no-store")
			c.Redirect(http.StatusSeeOther, "/admin/login?next="+url.QueryEscape(adminNext(c.Request)))
			c.Abort()
			return
		}
		c.Set(ContextAdminKey, session)
		c.Next()
	}
}

// CurrentUser returns the session user attached by Session, if any.
func CurrentUser(c *gin.Context) *models.SessionUser {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.SessionUser)
	if !ok {
		return nil
	}
	return user
}

// adminNext is where to return after admin login: the page itself for
// reads, the section index for form posts.
func adminNext(r *http.Request) string {
	const fallback = "/admin/teachers"
	if r.Method == http.MethodGet {
		return form.SafeRedirect(r.URL.RequestURI(), fallback)
	}
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 3)
	if len(parts) >= 2 && parts[0] == "admin" && parts[1] != "" {
		return form.SafeRedirect("/admin/"+parts[1], fallback)
	}
	return fallback
}
