package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
	"github.com/noah-isme/rate-my-teacher/pkg/session"
)

const (
	adminLoginPath = "/admin/login"
	adminHome      = "/admin/teachers"
)

// AdminCredentials is the single configured admin account.
type AdminCredentials struct {
	Username string
	Password string
}

// AdminAuthService issues and checks the admin panel session. It has no
// relationship to end-user accounts.
type AdminAuthService struct {
	creds  AdminCredentials
	signer *session.Signer
	logger *zap.Logger
}

// NewAdminAuthService constructs the service.
func NewAdminAuthService(creds AdminCredentials, signer *session.Signer, logger *zap.Logger) *AdminAuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminAuthService{creds: creds, signer: signer, logger: logger}
}

// Login compares both credentials in constant time. Unset credentials never
// match.
func (s *AdminAuthService) Login(ctx context.Context, in dto.AdminLoginForm) (Outcome, *models.Session) {
	in.Normalize()
	okUser := form.SafeEqual(in.Username, s.creds.Username)
	okPass := form.SafeEqual(in.Password, s.creds.Password)
	if !okUser || !okPass || !s.Enabled() {
		s.logger.Warn("admin login rejected", zap.String("username", in.Username))
		return reject(adminLoginPath, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid admin credentials.")), nil
	}

	token, expiresAt, err := s.signer.Issue(in.Username)
	if err != nil {
		return reject(adminLoginPath, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Could not start admin session.")), nil
	}
	s.logger.Info("admin signed in", zap.String("username", in.Username))
	return done(form.SafeRedirect(in.Next, adminHome), ""), &models.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      models.SessionUser{ID: in.Username},
	}
}

// Logout ends the admin session.
func (s *AdminAuthService) Logout(ctx context.Context) Outcome {
	return done(adminLoginPath, "Logged out.")
}

// Enabled reports whether both admin credentials are configured.
func (s *AdminAuthService) Enabled() bool {
	return s.creds.Username != "" && s.creds.Password != ""
}

// Validate checks an admin cookie value. Sessions are refused while admin
// login is disabled and must name the configured admin.
func (s *AdminAuthService) Validate(token string) (*models.AdminSession, error) {
	if token == "" || !s.Enabled() {
		return nil, appErrors.ErrUnauthorized
	}
	subject, expiresAt, err := s.signer.Parse(token)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid admin session")
	}
	if !form.SafeEqual(subject, s.creds.Username) {
		s.logger.Warn("admin session for unknown subject", zap.String("subject", subject))
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid admin session")
	}
	return &models.AdminSession{Username: subject, ExpiresAt: expiresAt}, nil
}
