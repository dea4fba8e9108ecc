package service

import (
	"database/sql"
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

const (
	msgSignIn          = "Please sign in."
	msgInternalOnly    = "Only internal emails are allowed."
	msgUpdateFailed    = "Update failed."
	msgMissingTeacher  = "Missing teacher id."
	msgMissingReview   = "Missing review id."
	msgQualityRange    = "Quality must be 1-5."
	msgDifficultyRange = "Difficulty must be 1-5."
)

// Outcome is the result of a form mutation: where to send the browser next
// and either a confirmation message or the error that stopped it.
type Outcome struct {
	Path    string
	Message string
	Err     *appErrors.Error
}

// OK reports whether the mutation was persisted.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Failure returns Err as an error, nil when the mutation succeeded.
func (o Outcome) Failure() error {
	if o.Err == nil {
		return nil
	}
	return o.Err
}

func done(path, message string) Outcome {
	return Outcome{Path: path, Message: message}
}

func reject(path string, err *appErrors.Error) Outcome {
	return Outcome{Path: path, Err: err}
}

func invalid(path, message string) Outcome {
	return reject(path, appErrors.Clone(appErrors.ErrValidation, message))
}

// failed maps a repository error to a rejection carrying the backend text.
func failed(path string, err error) Outcome {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return reject(path, appErr)
	}
	return reject(path, appErrors.Backend(err))
}

// Gate is the end-user authorization check shared by middleware and
// mutation services.
type Gate struct {
	domain string
}

// NewGate restricts writes to accounts under domain.
func NewGate(domain string) Gate {
	return Gate{domain: domain}
}

// Domain returns the allowed email domain.
func (g Gate) Domain() string {
	return g.domain
}

// Check returns a rejection when user may not act. returnTo is the path the
// login page should send the user back to.
func (g Gate) Check(user *models.SessionUser, returnTo string) (Outcome, bool) {
	if user == nil || user.ID == "" {
		return reject(LoginPath(returnTo), appErrors.Clone(appErrors.ErrUnauthorized, msgSignIn)), false
	}
	if !form.HasEmailDomain(user.Email, g.domain) {
		return reject("/login", appErrors.Clone(appErrors.ErrForbidden, msgInternalOnly)), false
	}
	return Outcome{}, true
}

// LoginPath is the sign-in page with an optional return path.
func LoginPath(returnTo string) string {
	if returnTo = form.SafeRedirect(returnTo, ""); returnTo == "" {
		return "/login"
	}
	return "/login?redirectTo=" + url.QueryEscape(returnTo)
}

func teacherPath(id string) string {
	return "/teachers/" + url.PathEscape(id)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// violation returns the message registered for the first failed field of a
// validator error. Keys are "Field.tag" or "Field".
func violation(err error, messages map[string]string, fallback string) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fallback
	}
	first := errs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[first.Field()]; ok {
		return msg
	}
	return fallback
}
