package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

const (
	signInPath    = "/login"
	signUpPath    = "/login?mode=signup"
	afterSignIn   = "/teachers"
	msgCredsEmpty = "Email and password are required."
)

// AuthConfig defines the account policy for end users.
type AuthConfig struct {
	AllowedDomain     string
	MinPasswordLength int
}

// AuthService runs the sign-in, sign-up and sign-out forms against an
// AuthProvider.
type AuthService struct {
	provider  AuthProvider
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(provider AuthProvider, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.MinPasswordLength <= 0 {
		config.MinPasswordLength = 8
	}
	return &AuthService{provider: provider, validator: validate, logger: logger, config: config}
}

// Gate returns the end-user gate for the configured domain.
func (s *AuthService) Gate() Gate {
	return NewGate(s.config.AllowedDomain)
}

// CurrentUser resolves a session token; an invalid token yields no user.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.SessionUser, error) {
	return s.provider.CurrentUser(ctx, token)
}

// SignIn authenticates the form and, on success, returns the session to set.
func (s *AuthService) SignIn(ctx context.Context, in dto.SignInForm) (Outcome, *models.Session) {
	in.Normalize()
	if err := s.validator.Struct(in); err != nil {
		return invalid(signInPath, msgCredsEmpty), nil
	}
	if !form.HasEmailDomain(in.Email, s.config.AllowedDomain) {
		return reject(signInPath, appErrors.Clone(appErrors.ErrForbidden, msgInternalOnly)), nil
	}

	session, err := s.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		s.logger.Info("sign in rejected", zap.String("email", in.Email), zap.Error(err))
		return failed(signInPath, err), nil
	}
	return done(form.SafeRedirect(in.RedirectTo, afterSignIn), ""), session
}

// SignUp registers an account under the allowed domain.
func (s *AuthService) SignUp(ctx context.Context, in dto.SignUpForm) (Outcome, *models.Session) {
	in.Normalize()
	if err := s.validator.Struct(in); err != nil {
		return invalid(signUpPath, msgCredsEmpty), nil
	}
	if !form.HasEmailDomain(in.Email, s.config.AllowedDomain) {
		return reject(signUpPath, appErrors.Clone(appErrors.ErrForbidden, msgInternalOnly)), nil
	}
	if form.Len(in.Password) < s.config.MinPasswordLength {
		return invalid(signUpPath, fmt.Sprintf("Password must be at least %d characters.", s.config.MinPasswordLength)), nil
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return invalid(signUpPath, "Passwords do not match."), nil
	}

	session, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		s.logger.Info("sign up rejected", zap.String("email", in.Email), zap.Error(err))
		return failed(signUpPath, err), nil
	}
	return done(form.SafeRedirect(in.RedirectTo, afterSignIn), ""), session
}

// SignOut ends the session. Provider failures are logged only; the cookie is
// cleared regardless.
func (s *AuthService) SignOut(ctx context.Context, token string) Outcome {
	if err := s.provider.SignOut(ctx, token); err != nil {
		s.logger.Warn("sign out failed", zap.Error(err))
	}
	return done(signInPath, "")
}
