package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

// TeacherPageSize is the number of teachers per browse page.
const TeacherPageSize = 10

const adminTeachersPath = "/admin/teachers"

type teacherRepository interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherListItem, error)
	Subjects(ctx context.Context) ([]string, error)
	Search(ctx context.Context, search string, limit int) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type reviewLister interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
}

type voteReader interface {
	Tallies(ctx context.Context, reviewIDs []string) ([]models.VoteTally, error)
	ForUser(ctx context.Context, userID string, reviewIDs []string) ([]models.Vote, error)
}

type viewerResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.SessionUser, error)
}

// TeacherService serves the browse and profile pages and the admin teacher
// roster.
type TeacherService struct {
	repo    teacherRepository
	reviews reviewLister
	votes   voteReader
	viewers viewerResolver
	cache   *CacheService
	logger  *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, reviews reviewLister, votes voteReader, viewers viewerResolver, cache *CacheService, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, reviews: reviews, votes: votes, viewers: viewers, cache: cache, logger: logger}
}

// Browse returns one page of teachers. The list, the subject filter options
// and the viewer are loaded concurrently; only a list failure is fatal.
func (s *TeacherService) Browse(ctx context.Context, query dto.TeacherQuery, token string) (*models.TeacherPage, *models.Pagination, []string, error) {
	page, ok := form.IntInRange(query.Page, 1, math.MaxInt32)
	if !ok {
		page = 1
	}
	filter := models.TeacherFilter{
		Search:   form.Str(query.Q),
		Subject:  form.Str(query.Subject),
		Page:     page,
		PageSize: TeacherPageSize,
	}

	var (
		wg          sync.WaitGroup
		rows        []models.TeacherListItem
		subjects    []string
		viewer      *models.SessionUser
		rowsErr     error
		subjectsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, rowsErr = s.listTeachers(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		subjects, subjectsErr = s.subjects(ctx)
	}()
	go func() {
		defer wg.Done()
		viewer = s.viewer(ctx, token)
	}()
	wg.Wait()

	if rowsErr != nil {
		return nil, nil, nil, appErrors.Backend(rowsErr)
	}

	var warnings []string
	if subjectsErr != nil {
		s.logger.Warn("subject list unavailable", zap.Error(subjectsErr))
		warnings = append(warnings, "Subject filter unavailable: "+appErrors.Backend(subjectsErr).Message)
		subjects = []string{}
	}

	hasNext := len(rows) > TeacherPageSize
	if hasNext {
		rows = rows[:TeacherPageSize]
	}
	if rows == nil {
		rows = []models.TeacherListItem{}
	}

	return &models.TeacherPage{
			Teachers: rows,
			Subjects: subjects,
			Query:    filter.Search,
			Subject:  filter.Subject,
			Viewer:   viewer,
		}, &models.Pagination{
			Page:     page,
			PageSize: TeacherPageSize,
			HasPrev:  page > 1,
			HasNext:  hasNext,
		}, warnings, nil
}

// Detail returns a teacher profile with reviews newest first, each carrying
// its vote score and the viewer's own vote. Missing vote data degrades to
// zero scores with a warning.
func (s *TeacherService) Detail(ctx context.Context, id, token string) (*models.TeacherDetail, []string, error) {
	var (
		wg         sync.WaitGroup
		teacher    *models.Teacher
		reviews    []models.Review
		viewer     *models.SessionUser
		teacherErr error
		reviewsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		teacher, teacherErr = s.repo.FindByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = s.reviews.List(ctx, models.ReviewFilter{TeacherID: id})
	}()
	go func() {
		defer wg.Done()
		viewer = s.viewer(ctx, token)
	}()
	wg.Wait()

	if teacherErr != nil {
		if isNotFound(teacherErr) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found.")
		}
		return nil, nil, appErrors.Backend(teacherErr)
	}
	if reviewsErr != nil {
		return nil, nil, appErrors.Backend(reviewsErr)
	}

	ids := make([]string, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}

	var (
		tallies  []models.VoteTally
		mine     []models.Vote
		tallyErr error
		mineErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tallies, tallyErr = s.votes.Tallies(ctx, ids)
	}()
	go func() {
		defer wg.Done()
		if viewer != nil {
			mine, mineErr = s.votes.ForUser(ctx, viewer.ID, ids)
		}
	}()
	wg.Wait()

	var warnings []string
	if tallyErr != nil {
		s.logger.Warn("vote tallies unavailable", zap.String("teacher_id", id), zap.Error(tallyErr))
		warnings = append(warnings, "Vote scores unavailable: "+appErrors.Backend(tallyErr).Message)
	}
	if mineErr != nil {
		s.logger.Warn("viewer votes unavailable", zap.String("teacher_id", id), zap.Error(mineErr))
		warnings = append(warnings, "Your votes could not be loaded: "+appErrors.Backend(mineErr).Message)
	}

	scores := make(map[string]int, len(tallies))
	for _, t := range tallies {
		scores[t.ReviewID] = t.Score
	}
	myVotes := make(map[string]int, len(mine))
	for _, v := range mine {
		myVotes[v.ReviewID] = v.Value
	}

	items := make([]models.ReviewVotes, len(reviews))
	for i, r := range reviews {
		items[i] = models.ReviewVotes{Review: r, Score: scores[r.ID], MyVote: myVotes[r.ID]}
	}

	return &models.TeacherDetail{Teacher: *teacher, Reviews: items, Viewer: viewer}, warnings, nil
}

// Get returns a teacher or a not-found error. Used by the rating form and
// the admin edit page.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found.")
		}
		return nil, appErrors.Backend(err)
	}
	return teacher, nil
}

// Roster lists teachers for the admin panel.
func (s *TeacherService) Roster(ctx context.Context, search string) ([]models.Teacher, error) {
	teachers, err := s.repo.Search(ctx, form.Str(search), 0)
	if err != nil {
		return nil, appErrors.Backend(err)
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

// Create adds a teacher.
func (s *TeacherService) Create(ctx context.Context, in dto.TeacherForm) Outcome {
	in.Normalize()
	if in.FullName == "" {
		return invalid(adminTeachersPath, "Name is required.")
	}

	teacher := &models.Teacher{FullName: in.FullName, Subjects: in.SubjectList()}
	if err := s.repo.Create(ctx, teacher); err != nil {
		s.logger.Warn("create teacher failed", zap.Error(err))
		return failed(adminTeachersPath, err)
	}
	s.cache.invalidateBrowse(ctx)
	s.logger.Info("teacher created", zap.String("teacher_id", teacher.ID))
	return done(adminTeachersPath, "Teacher created.")
}

// Update renames a teacher or changes their subjects.
func (s *TeacherService) Update(ctx context.Context, in dto.TeacherForm) Outcome {
	in.Normalize()
	if in.ID == "" {
		return invalid(adminTeachersPath, msgMissingTeacher)
	}
	editPath := adminTeacherEditPath(in.ID)
	if in.FullName == "" {
		return invalid(editPath, "Name is required.")
	}

	affected, err := s.repo.Update(ctx, &models.Teacher{ID: in.ID, FullName: in.FullName, Subjects: in.SubjectList()})
	if err != nil {
		s.logger.Warn("update teacher failed", zap.String("teacher_id", in.ID), zap.Error(err))
		return failed(editPath, err)
	}
	if affected == 0 {
		return reject(editPath, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found."))
	}
	s.cache.invalidateBrowse(ctx)
	return done(editPath, "Saved.")
}

// Delete removes a teacher. A teacher that still has reviews is refused by
// the database and its error text is passed through.
func (s *TeacherService) Delete(ctx context.Context, in dto.AdminDeleteForm) Outcome {
	in.Normalize()
	if in.ID == "" {
		return invalid(adminTeachersPath, msgMissingTeacher)
	}
	if _, err := s.repo.Delete(ctx, in.ID); err != nil {
		s.logger.Warn("delete teacher failed", zap.String("teacher_id", in.ID), zap.Error(err))
		return failed(adminTeachersPath, err)
	}
	s.cache.invalidateBrowse(ctx)
	return done(adminTeachersPath, "Teacher deleted.")
}

func (s *TeacherService) listTeachers(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherListItem, error) {
	key := cacheKey(cacheTeacherList, filter.Page, url.QueryEscape(filter.Search), url.QueryEscape(filter.Subject))
	var rows []models.TeacherListItem
	if s.cache.Get(ctx, key, &rows) {
		return rows, nil
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, rows)
	return rows, nil
}

func (s *TeacherService) subjects(ctx context.Context) ([]string, error) {
	var subjects []string
	if s.cache.Get(ctx, cacheTeacherSubjects, &subjects) {
		return subjects, nil
	}
	subjects, err := s.repo.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	if subjects == nil {
		subjects = []string{}
	}
	s.cache.Set(ctx, cacheTeacherSubjects, subjects)
	return subjects, nil
}

// viewer resolves the session; failures render the page anonymously.
func (s *TeacherService) viewer(ctx context.Context, token string) *models.SessionUser {
	if s.viewers == nil || token == "" {
		return nil
	}
	user, err := s.viewers.CurrentUser(ctx, token)
	if err != nil {
		s.logger.Debug("session not resolved", zap.Error(err))
		return nil
	}
	return user
}

func adminTeacherEditPath(id string) string {
	return fmt.Sprintf("%s/%s/edit", adminTeachersPath, url.PathEscape(id))
}
