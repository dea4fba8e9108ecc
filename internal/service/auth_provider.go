package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

// AuthProvider is the external authentication backend. Errors it returns
// carry the provider's own user-facing text.
type AuthProvider interface {
	CurrentUser(ctx context.Context, token string) (*models.SessionUser, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignUp(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
}

type accountRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// PasswordProviderConfig configures the built-in provider.
type PasswordProviderConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// PasswordProvider is the default AuthProvider: accounts live in the users
// table with bcrypt hashes and sessions are HS256 tokens.
type PasswordProvider struct {
	repo   accountRepository
	logger *zap.Logger
	cfg    PasswordProviderConfig
	now    func() time.Time
}

// NewPasswordProvider constructs the provider.
func NewPasswordProvider(repo accountRepository, cfg PasswordProviderConfig, logger *zap.Logger) *PasswordProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "rate-my-teacher"
	}
	return &PasswordProvider{repo: repo, logger: logger, cfg: cfg, now: time.Now}
}

// CurrentUser resolves the session token. An empty token is not an error.
func (p *PasswordProvider) CurrentUser(ctx context.Context, token string) (*models.SessionUser, error) {
	if token == "" {
		return nil, nil
	}
	parsed, err := jwt.ParseWithClaims(token, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(p.cfg.Secret), nil
	}, jwt.WithIssuer(p.cfg.Issuer), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Invalid session.")
	}
	claims, ok := parsed.Claims.(*models.SessionClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid session.")
	}
	return &models.SessionUser{ID: claims.UserID, Email: claims.Email}, nil
}

// SignIn checks the password and issues a session.
func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid login credentials")
		}
		return nil, appErrors.Backend(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid login credentials")
	}
	return p.issue(user)
}

// SignUp registers a new account and signs it in.
func (p *PasswordProvider) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	if _, err := p.repo.FindByEmail(ctx, email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "User already registered")
	} else if !isNotFound(err) {
		return nil, appErrors.Backend(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	user := &models.User{Email: strings.ToLower(email), PasswordHash: string(hash)}
	if err := p.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Backend(err)
	}
	p.logger.Info("account registered", zap.String("user_id", user.ID))
	return p.issue(user)
}

// SignOut is a no-op: sessions are stateless and the caller clears the cookie.
func (p *PasswordProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

func (p *PasswordProvider) issue(user *models.User) (*models.Session, error) {
	issuedAt := p.now().UTC()
	expiresAt := issuedAt.Add(p.cfg.TTL)
	claims := &models.SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.cfg.Issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.cfg.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session")
	}
	return &models.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      models.SessionUser{ID: user.ID, Email: user.Email},
	}, nil
}
