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

type adminTeacherMock struct {
	lastForm   dto.TeacherForm
	lastDelete dto.AdminDeleteForm
}

func (m *adminTeacherMock) Roster(ctx context.Context, search string) ([]models.Teacher, error) {
	return []models.Teacher{{ID: "t-1", FullName: search}}, nil
}

func (m *adminTeacherMock) Get(ctx context.Context, id string) (*models.Teacher, error) {
	return &models.Teacher{ID: id}, nil
}

func (m *adminTeacherMock) Create(ctx context.Context, in dto.TeacherForm) service.Outcome {
	m.lastForm = in
	return service.Outcome{Path: "/admin/teachers", Message: "Teacher created."}
}

func (m *adminTeacherMock) Update(ctx context.Context, in dto.TeacherForm) service.Outcome {
	m.lastForm = in
	return service.Outcome{Path: "/admin/teachers/" + in.ID + "/edit", Message: "Saved."}
}

func (m *adminTeacherMock) Delete(ctx context.Context, in dto.AdminDeleteForm) service.Outcome {
	m.lastDelete = in
	return service.Outcome{Path: "/admin/teachers", Err: appErrors.Backend(assert.AnError)}
}

type adminReviewMock struct {
	lastSearch, lastTeacher string
}

func (m *adminReviewMock) AdminList(ctx context.Context, search, teacherID string) ([]models.ReviewItem, []string, error) {
	m.lastSearch, m.lastTeacher = search, teacherID
	return []models.ReviewItem{}, nil, nil
}

func (m *adminReviewMock) Get(ctx context.Context, id string) (*models.Review, error) {
	return &models.Review{ID: id}, nil
}

func (m *adminReviewMock) AdminUpdate(ctx context.Context, in dto.AdminReviewForm) service.Outcome {
	return service.Outcome{Path: "/admin/reviews/" + in.ID + "/edit", Message: "Saved."}
}

func (m *adminReviewMock) AdminDelete(ctx context.Context, in dto.AdminDeleteForm) service.Outcome {
	return service.Outcome{Path: "/admin/reviews", Message: "Review deleted."}
}

type adminTicketMock struct {
	lastQuery dto.TicketQuery
	exportErr error
}

func (m *adminTicketMock) AdminList(ctx context.Context, q dto.TicketQuery) ([]models.Ticket, error) {
	m.lastQuery = q
	return []models.Ticket{}, nil
}

func (m *adminTicketMock) Get(ctx context.Context, id string) (*models.Ticket, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Ticket not found.")
}

func (m *adminTicketMock) AdminUpdate(ctx context.Context, in dto.TicketUpdateForm) service.Outcome {
	return service.Outcome{Path: "/admin/tickets/" + in.ID, Message: "Updated."}
}

func (m *adminTicketMock) Export(ctx context.Context, q dto.TicketQuery) (*service.ExportFile, error) {
	m.lastQuery = q
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	return &service.ExportFile{Filename: "tickets-20260504-093000.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("a,b\n")}, nil
}

func newAdminHandler() (*AdminHandler, *adminTeacherMock, *adminReviewMock, *adminTicketMock) {
	teachers, reviews, tickets := &adminTeacherMock{}, &adminReviewMock{}, &adminTicketMock{}
	return NewAdminHandler(teachers, reviews, tickets, nil), teachers, reviews, tickets
}

func TestAdminHandlerTeacherForms(t *testing.T) {
	h, teachers, _, _ := newAdminHandler()

	c, w := newContext(postForm("/admin/teachers/update", url.Values{"id": {"t-1"}, "full_name": {"Mr. Li"}, "subjects": {"Math,Art"}}), nil)
	h.UpdateTeacher(c)
	assert.Equal(t, "/admin/teachers/t-1/edit?message=Saved.", w.Header().Get("Location"))
	assert.Equal(t, dto.TeacherForm{ID: "t-1", FullName: "Mr. Li", Subjects: "Math,Art"}, teachers.lastForm)

	c, w = newContext(postForm("/admin/teachers/delete", url.Values{"id": {"t-1"}}), nil)
	h.DeleteTeacher(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/teachers?error="+url.QueryEscape(assert.AnError.Error()), w.Header().Get("Location"))
	assert.Equal(t, "t-1", teachers.lastDelete.ID)
}

func TestAdminHandlerListReviewsReadsFilters(t *testing.T) {
	h, _, reviews, _ := newAdminHandler()
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/admin/reviews?q=late&teacher_id=t-1", nil), nil)
	h.ListReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "late", reviews.lastSearch)
	assert.Equal(t, "t-1", reviews.lastTeacher)
}

func TestAdminHandlerExportTickets(t *testing.T) {
	h, _, _, tickets := newAdminHandler()
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/admin/tickets/export?status=open&format=csv", nil), nil)
	h.ExportTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="tickets-20260504-093000.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "a,b\n", w.Body.String())
	assert.Equal(t, dto.TicketQuery{Status: "open", Format: "csv"}, tickets.lastQuery)
}

func TestAdminHandlerExportRejectsFormat(t *testing.T) {
	h, _, _, tickets := newAdminHandler()
	tickets.exportErr = appErrors.Clone(appErrors.ErrValidation, "Unsupported export format.")
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/admin/tickets/export?format=xlsx", nil), nil)
	h.ExportTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestAdminHandlerTicketDetailNotFound(t *testing.T) {
	h, _, _, _ := newAdminHandler()
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/admin/tickets/nope", nil), nil)
	c.AddParam("id", "nope")
	h.GetTicket(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
