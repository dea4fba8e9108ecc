package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/session"
)

func TestAdminLogin(t *testing.T) {
	svc := NewAdminAuthService(AdminCredentials{Username: "admin", Password: "hunter2"}, session.NewSigner("s3cret", time.Hour), nil)

	out, sess := svc.Login(context.Background(), dto.AdminLoginForm{Username: "admin", Password: "hunter2", Next: "/admin/tickets"})
	require.True(t, out.OK())
	assert.Equal(t, "/admin/tickets", out.Path)
	require.NotNil(t, sess)

	admin, err := svc.Validate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	out, _ = svc.Login(context.Background(), dto.AdminLoginForm{Username: "admin", Password: "hunter2", Next: "//evil.example"})
	assert.Equal(t, "/admin/teachers", out.Path)
}

func TestAdminLoginRejects(t *testing.T) {
	svc := NewAdminAuthService(AdminCredentials{Username: "admin", Password: "hunter2"}, session.NewSigner("s3cret", time.Hour), nil)
	out, sess := svc.Login(context.Background(), dto.AdminLoginForm{Username: "admin", Password: "nope"})
	assert.Nil(t, sess)
	assert.Equal(t, "/admin/login", out.Path)
	assert.Equal(t, "Invalid admin credentials.", out.Err.Message)

	unset := NewAdminAuthService(AdminCredentials{}, session.NewSigner("s3cret", time.Hour), nil)
	out, sess = unset.Login(context.Background(), dto.AdminLoginForm{})
	assert.Nil(t, sess)
	assert.False(t, out.OK())
}

func TestAdminValidateAndLogout(t *testing.T) {
	svc := NewAdminAuthService(AdminCredentials{Username: "admin", Password: "pw"}, session.NewSigner("s3cret", time.Hour), nil)
	_, err := svc.Validate("")
	assert.Error(t, err)
	_, err = svc.Validate("garbage")
	assert.Error(t, err)

	out := svc.Logout(context.Background())
	assert.Equal(t, "/admin/login", out.Path)
	assert.Equal(t, "Logged out.", out.Message)
}

func TestAdminValidateRejectsForgedSubjects(t *testing.T) {
	signer := session.NewSigner("dev_admin_secret", time.Hour)
	minted, _, err := signer.Issue("mallory")
	require.NoError(t, err)

	disabled := NewAdminAuthService(AdminCredentials{}, signer, nil)
	_, err = disabled.Validate(minted)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	adminToken, _, err := signer.Issue("admin")
	require.NoError(t, err)
	_, err = disabled.Validate(adminToken)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	configured := NewAdminAuthService(AdminCredentials{Username: "admin", Password: "pw"}, signer, nil)
	_, err = configured.Validate(minted)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	admin, err := configured.Validate(adminToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}
