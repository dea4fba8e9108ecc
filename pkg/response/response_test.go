package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

func TestWithParam(t *testing.T) {
	assert.Equal(t, "/teachers?error=Missing+teacher+id.", WithParam("/teachers", "error", "Missing teacher id."))
	assert.Equal(t, "/teachers/t1?message=ok#ratings", WithParam("/teachers/t1#ratings", "message", "ok"))
	assert.Equal(t, "/login?mode=signup&error=x", WithParam("/login?mode=signup", "error", "x"))
}

func TestRedirectEncodesError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/contact", nil)

	Redirect(c, "/contact", "", appErrors.Clone(appErrors.ErrValidation, "Title is too short."))
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/contact", loc.Path)
	assert.Equal(t, "Title is too short.", loc.Query().Get("error"))
}

func TestRedirectPlainErrorIsNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

	Redirect(c, "/x", "", errors.New("stack trace here"))

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "internal server error", loc.Query().Get("error"))
}

func TestRedirectMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/teachers", nil)

	Redirect(c, "/admin/teachers", "Teacher created.", nil)

	assert.Equal(t, "/admin/teachers?message=Teacher+created.", w.Header().Get("Location"))
}
