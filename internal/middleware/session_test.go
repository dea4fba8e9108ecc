package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
)

type stubResolver map[string]*models.SessionUser

func (s stubResolver) CurrentUser(ctx context.Context, token string) (*models.SessionUser, error) {
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, errors.New("invalid session")
}

type stubAdmins struct{ valid string }

func (s stubAdmins) Validate(token string) (*models.AdminSession, error) {
	if token == "" || token != s.valid {
		return nil, errors.New("invalid admin session")
	}
	return &models.AdminSession{Username: "admin"}, nil
}

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolver := stubResolver{
		"good":    {ID: "u-1", Email: "ana@school.edu"},
		"outside": {ID: "u-2", Email: "bob@gmail.com"},
	}
	r.Use(Session(resolver, "rmt_session"))
	r.GET("/me/ratings", RequireUser(service.NewGate("school.edu")), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).ID)
	})
	return r
}

func get(r http.Handler, target, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	w := get(sessionRouter(), "/me/ratings?tab=1", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/login?redirectTo=%2Fme%2Fratings%3Ftab%3D1"), loc)
	assert.Contains(t, loc, "error=Please+sign+in.")
}

func TestRequireUserRejectsOutsideDomain(t *testing.T) {
	w := get(sessionRouter(), "/me/ratings", "rmt_session=outside")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=Only+internal+emails+are+allowed.", w.Header().Get("Location"))
}

func TestRequireUserPassesSession(t *testing.T) {
	w := get(sessionRouter(), "/me/ratings", "rmt_session=good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", w.Body.String())

	w = get(sessionRouter(), "/me/ratings", "rmt_session=forged")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", RequireAdmin(stubAdmins{valid: "signed"}, "rmt_admin"))
	admin.GET("/tickets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin.POST("/tickets/update", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequireAdmin(t *testing.T) {
	r := adminRouter()

	w := get(r, "/admin/tickets/tk-1", "rmt_admin=signed")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/admin/tickets/tk-1", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Ftickets%2Ftk-1", w.Header().Get("Location"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	req := httptest.NewRequest(http.MethodPost, "/admin/tickets/update", nil)
	req.Header.Set("Cookie", "rmt_admin=stale")
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, req)
	assert.Equal(t, http.StatusSeeOther, pw.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Ftickets", pw.Header().Get("Location"))
}

func TestAdminNextFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	assert.Equal(t, "/admin/teachers", adminNext(req))
}
