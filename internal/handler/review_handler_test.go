package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

type reviewServiceMock struct {
	lastForm   dto.ReviewForm
	lastDelete dto.DeleteReviewForm
	lastUser   *models.SessionUser
	out        service.Outcome
	items      []models.ReviewItem
	warnings   []string
	getErr     error
}

func (m *reviewServiceMock) Create(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) service.Outcome {
	m.lastUser, m.lastForm = user, in
	return m.out
}

func (m *reviewServiceMock) UpdateMine(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) service.Outcome {
	m.lastUser, m.lastForm = user, in
	return m.out
}

func (m *reviewServiceMock) DeleteMine(ctx context.Context, user *models.SessionUser, in dto.DeleteReviewForm) service.Outcome {
	m.lastUser, m.lastDelete = user, in
	return m.out
}

func (m *reviewServiceMock) ListMine(ctx context.Context, user *models.SessionUser) ([]models.ReviewItem, []string, error) {
	return m.items, m.warnings, nil
}

func (m *reviewServiceMock) GetMine(ctx context.Context, user *models.SessionUser, id string) (*models.Review, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &models.Review{ID: id, UserID: user.ID}, nil
}

type voteServiceMock struct {
	last dto.VoteForm
	out  service.Outcome
}

func (m *voteServiceMock) Set(ctx context.Context, user *models.SessionUser, in dto.VoteForm) service.Outcome {
	m.last = in
	return m.out
}

var ana = &models.SessionUser{ID: "u-1", Email: "ana@school.edu"}

func TestReviewHandlerCreateBindsForm(t *testing.T) {
	svc := &reviewServiceMock{out: service.Outcome{Path: "/teachers/t-1#ratings", Message: "Rating submitted."}}
	spy := &mutationSpy{}
	h := NewReviewHandler(svc, &voteServiceMock{}, spy)

	c, w := newContext(postForm("/reviews", url.Values{
		"teacherId":  {"t-1"},
		"quality":    {"5"},
		"difficulty": {"2"},
		"isOnline":   {"false", "on"},
		"tags":       {"caring,fair"},
	}), ana)
	h.Create(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teachers/t-1?message=Rating+submitted.#ratings", w.Header().Get("Location"))
	assert.Equal(t, ana, svc.lastUser)
	assert.Equal(t, "t-1", svc.lastForm.TeacherID)
	assert.Equal(t, []string{"false", "on"}, svc.lastForm.IsOnline)
	assert.Equal(t, "create_review", spy.calls[0].operation)
}

func TestReviewHandlerPassesAnonymousCallerToService(t *testing.T) {
	svc := &reviewServiceMock{out: service.Outcome{
		Path: "/login?redirectTo=%2Fme%2Fratings",
		Err:  appErrors.Clone(appErrors.ErrUnauthorized, "Please sign in."),
	}}
	h := NewReviewHandler(svc, &voteServiceMock{}, nil)

	c, w := newContext(postForm("/me/ratings/delete", url.Values{"reviewId": {"r-1"}, "teacherId": {"t-1"}}), nil)
	h.DeleteMine(c)

	assert.Nil(t, svc.lastUser)
	assert.Equal(t, "r-1", svc.lastDelete.ReviewID)
	assert.Equal(t, "/login?redirectTo=%2Fme%2Fratings&error=Please+sign+in.", w.Header().Get("Location"))
}

func TestReviewHandlerVote(t *testing.T) {
	votes := &voteServiceMock{out: service.Outcome{Path: "/teachers/t-1#ratings"}}
	h := NewReviewHandler(&reviewServiceMock{}, votes, nil)

	c, w := newContext(postForm("/reviews/vote", url.Values{"teacherId": {"t-1"}, "reviewId": {"r-1"}, "op": {"remove"}}), ana)
	h.Vote(c)

	assert.Equal(t, "/teachers/t-1#ratings", w.Header().Get("Location"))
	assert.Equal(t, dto.VoteForm{TeacherID: "t-1", ReviewID: "r-1", Op: "remove"}, votes.last)
}

func TestReviewHandlerListMineIncludesWarnings(t *testing.T) {
	svc := &reviewServiceMock{
		items:    []models.ReviewItem{{Review: models.Review{ID: "r-1"}, TeacherName: models.Placeholder}},
		warnings: []string{"Teacher names unavailable: timeout"},
	}
	h := NewReviewHandler(svc, &voteServiceMock{}, nil)

	c, w := newContext(httptest.NewRequest(http.MethodGet, "/me/ratings", nil), ana)
	h.ListMine(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []models.ReviewItem `json:"data"`
		Meta struct {
			Warnings []string `json:"warnings"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, []string{"Teacher names unavailable: timeout"}, body.Meta.Warnings)
}

func TestReviewHandlerEditMineNotFound(t *testing.T) {
	svc := &reviewServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "Review not found.")}
	h := NewReviewHandler(svc, &voteServiceMock{}, nil)

	c, w := newContext(httptest.NewRequest(http.MethodGet, "/me/ratings/r-9/edit", nil), ana)
	c.AddParam("id", "r-9")
	h.EditMine(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Review not found.")
}
