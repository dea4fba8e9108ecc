package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

const (
	myRatingsPath     = "/me/ratings"
	adminReviewsPath  = "/admin/reviews"
	adminReviewsLimit = 50
	minCommentLimit   = 50
	maxCommentLimit   = 1200
)

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	UpdateOwned(ctx context.Context, review *models.Review, userID string) (string, error)
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
	Update(ctx context.Context, review *models.Review) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
}

type teacherLookup interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Teacher, error)
}

type userLookup interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// ReviewRules caps review content. NewReviewService clamps both fields into
// their fixed bounds: comments to [50,1200] characters (zero or less means
// 1200) and tags to [0,10].
type ReviewRules struct {
	CommentLimit int
	MaxTags      int
}

// DefaultReviewRules returns the widest allowed limits.
func DefaultReviewRules() ReviewRules {
	return ReviewRules{CommentLimit: maxCommentLimit, MaxTags: form.DefaultMaxTags}
}

// ReviewService handles rating submissions, edits and moderation.
type ReviewService struct {
	repo     reviewRepository
	teachers teacherLookup
	users    userLookup
	gate     Gate
	rules    ReviewRules
	cache    *CacheService
	logger   *zap.Logger
}

// NewReviewService constructs a ReviewService.
func NewReviewService(repo reviewRepository, teachers teacherLookup, users userLookup, gate Gate, rules ReviewRules, cache *CacheService, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rules.CommentLimit <= 0 {
		rules.CommentLimit = maxCommentLimit
	}
	rules.CommentLimit = form.Clamp(rules.CommentLimit, minCommentLimit, maxCommentLimit)
	rules.MaxTags = form.Clamp(rules.MaxTags, 0, form.DefaultMaxTags)
	return &ReviewService{repo: repo, teachers: teachers, users: users, gate: gate, rules: rules, cache: cache, logger: logger}
}

// Create stores a new rating. It accepts forms that predate the "would take
// again" question, treating a missing answer as yes, and lets the form
// tighten its own course, comment and tag rules within the service limits.
func (s *ReviewService) Create(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) Outcome {
	in.Normalize()
	ratePath := "/teachers"
	if in.TeacherID != "" {
		ratePath = teacherPath(in.TeacherID) + "/rate"
	}
	if in.TeacherID == "" {
		return invalid("/teachers", msgMissingTeacher)
	}

	quality, ok := form.IntInRange(in.Quality, 1, 5)
	if !ok {
		return invalid(ratePath, msgQualityRange)
	}
	difficulty, ok := form.IntInRange(in.Difficulty, 1, 5)
	if !ok {
		return invalid(ratePath, msgDifficultyRange)
	}

	maxTags := form.Clamp(truncOr(in.MaxTags, s.rules.MaxTags), 0, s.rules.MaxTags)
	commentLimit := form.Clamp(truncOr(in.CommentLimit, s.rules.CommentLimit), minCommentLimit, s.rules.CommentLimit)

	if form.Bool(in.RequireCourse) && in.Course == "" {
		return invalid(ratePath, "Subject is required.")
	}
	if form.Bool(in.RequireComment) && in.Comment == "" {
		return invalid(ratePath, "Review text is required.")
	}
	if form.Len(in.Comment) > commentLimit {
		return invalid(ratePath, tooLong(commentLimit))
	}
	if out, ok := s.gate.Check(user, ratePath); !ok {
		return out
	}

	wouldTakeAgain := true
	if answer, given := yesNo(in.WouldTakeAgain); given {
		wouldTakeAgain = answer
	}

	review := &models.Review{
		TeacherID:      in.TeacherID,
		UserID:         user.ID,
		Quality:        quality,
		Difficulty:     difficulty,
		WouldTakeAgain: wouldTakeAgain,
		Comment:        form.Optional(in.Comment),
		Course:         form.Optional(in.Course),
		Grade:          form.Optional(in.Grade),
		IsOnline:       form.Bool(form.Last(in.IsOnline)),
		Tags:           pq.StringArray(form.Tags(in.Tags, maxTags)),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Warn("create review failed", zap.String("teacher_id", in.TeacherID), zap.Error(err))
		return failed(ratePath, err)
	}

	s.cache.invalidateBrowse(ctx)
	s.logger.Info("review created", zap.String("review_id", review.ID), zap.String("teacher_id", in.TeacherID))
	return done(teacherPath(in.TeacherID)+"#ratings", "Rating submitted.")
}

// UpdateMine edits one of the caller's reviews. Unlike Create every answer
// is mandatory.
func (s *ReviewService) UpdateMine(ctx context.Context, user *models.SessionUser, in dto.ReviewForm) Outcome {
	in.Normalize()
	editPath := myRatingsPath
	if in.ReviewID != "" {
		editPath = myReviewEditPath(in.ReviewID)
	}
	if in.ReviewID == "" {
		return invalid(myRatingsPath, msgMissingReview)
	}

	quality, ok := form.IntInRange(in.Quality, 1, 5)
	if !ok {
		return invalid(editPath, msgQualityRange)
	}
	difficulty, ok := form.IntInRange(in.Difficulty, 1, 5)
	if !ok {
		return invalid(editPath, msgDifficultyRange)
	}
	wouldTakeAgain, given := yesNo(in.WouldTakeAgain)
	if !given {
		return invalid(editPath, "Would take again is required.")
	}
	if in.Course == "" {
		return invalid(editPath, "Subject is required.")
	}
	if form.Len(in.Comment) > s.rules.CommentLimit {
		return invalid(editPath, tooLong(s.rules.CommentLimit))
	}
	if out, ok := s.gate.Check(user, editPath); !ok {
		return out
	}

	course := in.Course
	review := &models.Review{
		ID:             in.ReviewID,
		Quality:        quality,
		Difficulty:     difficulty,
		WouldTakeAgain: wouldTakeAgain,
		Course:         &course,
		Grade:          form.Optional(in.Grade),
		IsOnline:       form.Bool(form.Last(in.IsOnline)),
		Tags:           pq.StringArray(form.Tags(in.Tags, s.rules.MaxTags)),
		Comment:        form.Optional(in.Comment),
	}
	teacherID, err := s.repo.UpdateOwned(ctx, review, user.ID)
	if err != nil {
		if isNotFound(err) {
			return reject(editPath, appErrors.Clone(appErrors.ErrNotFound, msgUpdateFailed))
		}
		s.logger.Warn("update review failed", zap.String("review_id", in.ReviewID), zap.Error(err))
		return failed(editPath, err)
	}

	s.cache.invalidateBrowse(ctx)
	return done(teacherPath(teacherID)+"#ratings", "Rating updated.")
}

// DeleteMine removes one of the caller's reviews.
func (s *ReviewService) DeleteMine(ctx context.Context, user *models.SessionUser, in dto.DeleteReviewForm) Outcome {
	in.Normalize()
	if in.ReviewID == "" {
		return invalid(myRatingsPath, msgMissingReview)
	}
	if in.TeacherID == "" {
		return invalid(myRatingsPath, msgMissingTeacher)
	}
	if out, ok := s.gate.Check(user, myRatingsPath); !ok {
		return out
	}

	profile := teacherPath(in.TeacherID)
	affected, err := s.repo.DeleteOwned(ctx, in.ReviewID, user.ID)
	if err != nil {
		s.logger.Warn("delete review failed", zap.String("review_id", in.ReviewID), zap.Error(err))
		return failed(profile, err)
	}
	if affected == 0 {
		return reject(profile, appErrors.Clone(appErrors.ErrNotFound, "Delete failed."))
	}

	s.cache.invalidateBrowse(ctx)
	return done(profile+"#ratings", "Rating deleted.")
}

// AdminUpdate edits any review.
func (s *ReviewService) AdminUpdate(ctx context.Context, in dto.AdminReviewForm) Outcome {
	in.Normalize()
	if in.ID == "" {
		return invalid(adminReviewsPath, msgMissingReview)
	}
	editPath := adminReviewEditPath(in.ID)

	quality, ok := form.IntInRange(in.Quality, 1, 5)
	if !ok {
		return invalid(editPath, msgQualityRange)
	}
	difficulty, ok := form.IntInRange(in.Difficulty, 1, 5)
	if !ok {
		return invalid(editPath, msgDifficultyRange)
	}
	if form.Len(in.Comment) > s.rules.CommentLimit {
		return invalid(editPath, tooLong(s.rules.CommentLimit))
	}

	review := &models.Review{
		ID:             in.ID,
		Quality:        quality,
		Difficulty:     difficulty,
		WouldTakeAgain: strings.EqualFold(in.WouldTakeAgain, "yes"),
		Course:         form.Optional(in.Course),
		Grade:          form.Optional(in.Grade),
		IsOnline:       form.Bool(form.Last(in.IsOnline)),
		Comment:        form.Optional(in.Comment),
		Tags:           pq.StringArray(form.Tags(in.Tags, s.rules.MaxTags)),
	}
	affected, err := s.repo.Update(ctx, review)
	if err != nil {
		s.logger.Warn("admin update review failed", zap.String("review_id", in.ID), zap.Error(err))
		return failed(editPath, err)
	}
	if affected == 0 {
		return reject(editPath, appErrors.Clone(appErrors.ErrNotFound, "Review not found."))
	}

	s.cache.invalidateBrowse(ctx)
	return done(editPath, "Saved.")
}

// AdminDelete removes any review.
func (s *ReviewService) AdminDelete(ctx context.Context, in dto.AdminDeleteForm) Outcome {
	in.Normalize()
	if in.ID == "" {
		return invalid(adminReviewsPath, msgMissingReview)
	}
	if _, err := s.repo.Delete(ctx, in.ID); err != nil {
		s.logger.Warn("admin delete review failed", zap.String("review_id", in.ID), zap.Error(err))
		return failed(adminReviewsPath, err)
	}
	s.cache.invalidateBrowse(ctx)
	s.logger.Info("review removed by admin", zap.String("review_id", in.ID))
	return done(adminReviewsPath, "Review deleted.")
}

// ListMine returns the caller's reviews with teacher names.
func (s *ReviewService) ListMine(ctx context.Context, user *models.SessionUser) ([]models.ReviewItem, []string, error) {
	reviews, err := s.repo.List(ctx, models.ReviewFilter{UserID: user.ID})
	if err != nil {
		return nil, nil, appErrors.Backend(err)
	}
	items, warnings := s.resolve(ctx, reviews, false)
	for i := range items {
		items[i].AuthorEmail = ""
	}
	return items, warnings, nil
}

// GetMine returns one review owned by the caller.
func (s *ReviewService) GetMine(ctx context.Context, user *models.SessionUser, id string) (*models.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Review not found.")
	}
	return review, nil
}

// Get returns any review.
func (s *ReviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Review not found.")
		}
		return nil, appErrors.Backend(err)
	}
	return review, nil
}

// AdminList returns the latest reviews for moderation with teacher names and
// author emails resolved. Unresolved names render as the placeholder.
func (s *ReviewService) AdminList(ctx context.Context, search, teacherID string) ([]models.ReviewItem, []string, error) {
	reviews, err := s.repo.List(ctx, models.ReviewFilter{
		TeacherID: form.Str(teacherID),
		Search:    form.Str(search),
		Limit:     adminReviewsLimit,
	})
	if err != nil {
		return nil, nil, appErrors.Backend(err)
	}
	items, warnings := s.resolve(ctx, reviews, true)
	return items, warnings, nil
}

// resolve batch-loads teacher names and, when withEmails is set, author
// emails concurrently.
func (s *ReviewService) resolve(ctx context.Context, reviews []models.Review, withEmails bool) ([]models.ReviewItem, []string) {
	teacherIDs := distinct(reviews, func(r models.Review) string { return r.TeacherID })
	userIDs := distinct(reviews, func(r models.Review) string { return r.UserID })

	var (
		wg          sync.WaitGroup
		teachers    []models.Teacher
		users       []models.User
		teachersErr error
		usersErr    error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		teachers, teachersErr = s.teachers.FindByIDs(ctx, teacherIDs)
	}()
	if withEmails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users, usersErr = s.users.FindByIDs(ctx, userIDs)
		}()
	}
	wg.Wait()

	var warnings []string
	if teachersErr != nil {
		s.logger.Warn("teacher names unavailable", zap.Error(teachersErr))
		warnings = append(warnings, "Teacher names unavailable: "+appErrors.Backend(teachersErr).Message)
	}
	if usersErr != nil {
		s.logger.Warn("author emails unavailable", zap.Error(usersErr))
		warnings = append(warnings, "Author emails unavailable: "+appErrors.Backend(usersErr).Message)
	}

	names := make(map[string]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.FullName
	}
	emails := make(map[string]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	items := make([]models.ReviewItem, len(reviews))
	for i, r := range reviews {
		items[i] = models.ReviewItem{Review: r, TeacherName: orPlaceholder(names[r.TeacherID]), AuthorEmail: orPlaceholder(emails[r.UserID])}
	}
	return items, warnings
}

func distinct(reviews []models.Review, key func(models.Review) string) []string {
	seen := make(map[string]struct{}, len(reviews))
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func orPlaceholder(v string) string {
	if v == "" {
		return models.Placeholder
	}
	return v
}

// yesNo reads a yes/no answer; given is false for anything else.
func yesNo(v string) (answer, given bool) {
	switch strings.ToLower(v) {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}

// truncOr parses v as a number truncated toward zero, or returns fallback.
func truncOr(v string, fallback int) int {
	n, ok := form.Float(v)
	if !ok {
		return fallback
	}
	t := math.Trunc(n)
	if t > math.MaxInt32 {
		return math.MaxInt32
	}
	if t < math.MinInt32 {
		return math.MinInt32
	}
	return int(t)
}

func tooLong(limit int) string {
	return fmt.Sprintf("Review is too long (max %d characters).", limit)
}

func myReviewEditPath(id string) string {
	return myRatingsPath + "/" + url.PathEscape(id) + "/edit"
}

func adminReviewEditPath(id string) string {
	return adminReviewsPath + "/" + url.PathEscape(id) + "/edit"
}
