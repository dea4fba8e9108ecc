package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

type ticketSubmitterMock struct {
	last dto.TicketForm
	out  service.Outcome
}

func (m *ticketSubmitterMock) Create(ctx context.Context, user *models.SessionUser, in dto.TicketForm) service.Outcome {
	m.last = in
	return m.out
}

func TestTicketHandlerCreateReadsHeaders(t *testing.T) {
	svc := &ticketSubmitterMock{out: service.Outcome{Path: "/contact", Message: "Ticket submitted."}}
	h := NewTicketHandler(svc, nil)

	req := postForm("/contact", url.Values{
		"category":    {"Bug Report"},
		"title":       {"Broken"},
		"description": {"It does not work at all."},
		"page_url":    {"https://spoofed.example"},
	})
	req.Header.Set("Referer", "https://rmt.example/teachers/t-1")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	c, w := newContext(req, ana)
	h.Create(c)

	assert.Equal(t, "/contact?message=Ticket+submitted.", w.Header().Get("Location"))
	assert.Equal(t, "Bug Report", svc.last.Category)
	assert.Equal(t, "https://rmt.example/teachers/t-1", svc.last.PageURL)
	assert.Equal(t, "Mozilla/5.0", svc.last.UserAgent)
}

func TestTicketHandlerCreateRejected(t *testing.T) {
	svc := &ticketSubmitterMock{out: service.Outcome{Path: "/contact", Err: appErrors.Clone(appErrors.ErrValidation, "Please describe the category.")}}
	spy := &mutationSpy{}
	h := NewTicketHandler(svc, spy)

	c, w := newContext(postForm("/contact", url.Values{"category": {"Other"}}), ana)
	h.Create(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact?error=Please+describe+the+category.", w.Header().Get("Location"))
	assert.False(t, spy.calls[0].outcome.OK())
}

func TestTicketHandlerCategories(t *testing.T) {
	h := NewTicketHandler(&ticketSubmitterMock{}, nil)
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/contact", nil), nil)
	h.Categories(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Bug Report"`)
	assert.Contains(t, w.Body.String(), `"other":"Other"`)
}
