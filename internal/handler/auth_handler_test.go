package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

type authServiceMock struct {
	signInOut  service.Outcome
	session    *models.Session
	lastSignIn dto.SignInForm
	lastToken  string
}

func (m *authServiceMock) SignIn(ctx context.Context, in dto.SignInForm) (service.Outcome, *models.Session) {
	m.lastSignIn = in
	return m.signInOut, m.session
}

func (m *authServiceMock) SignUp(ctx context.Context, in dto.SignUpForm) (service.Outcome, *models.Session) {
	return m.signInOut, m.session
}

func (m *authServiceMock) SignOut(ctx context.Context, token string) service.Outcome {
	m.lastToken = token
	return service.Outcome{Path: "/login"}
}

func TestAuthHandlerSignInSetsCookie(t *testing.T) {
	svc := &authServiceMock{
		signInOut: service.Outcome{Path: "/me/ratings"},
		session:   &models.Session{Token: "jwt-token", ExpiresAt: time.Now().Add(time.Hour)},
	}
	spy := &mutationSpy{}
	h := NewAuthHandler(svc, spy, CookieConfig{Name: "rmt_session", Secure: true})

	c, w := newContext(postForm("/login", url.Values{"email": {"ana@school.edu"}, "password": {"pw"}, "redirectTo": {"/me/ratings"}}), nil)
	h.SignIn(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/me/ratings", w.Header().Get("Location"))
	assert.Equal(t, "ana@school.edu", svc.lastSignIn.Email)
	assert.Equal(t, "/me/ratings", svc.lastSignIn.RedirectTo)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "rmt_session", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	require.Len(t, spy.calls, 1)
	assert.Equal(t, "sign_in", spy.calls[0].operation)
}

func TestAuthHandlerSignInFailureLeavesCookie(t *testing.T) {
	svc := &authServiceMock{signInOut: service.Outcome{
		Path: "/login",
		Err:  appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid login credentials"),
	}}
	h := NewAuthHandler(svc, nil, CookieConfig{Name: "rmt_session"})

	c, w := newContext(postForm("/login", url.Values{"email": {"ana@school.edu"}}), nil)
	h.SignIn(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=Invalid+login+credentials", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandlerSignOutClearsCookie(t *testing.T) {
	svc := &authServiceMock{}
	h := NewAuthHandler(svc, nil, CookieConfig{Name: "rmt_session"})

	req := postForm("/logout", url.Values{})
	req.AddCookie(&http.Cookie{Name: "rmt_session", Value: "jwt-token"})
	c, w := newContext(req, nil)
	h.SignOut(c)

	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "jwt-token", svc.lastToken)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
