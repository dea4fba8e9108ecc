package dto

import "github.com/noah-isme/rate-my-teacher/pkg/form"

// ReviewForm carries the rating form for both creating and editing a review.
// Numeric fields stay raw strings so range checks can report their own
// messages.
type ReviewForm struct {
	TeacherID      string   `form:"teacherId"`
	ReviewID       string   `form:"reviewId"`
	Quality        string   `form:"quality"`
	Difficulty     string   `form:"difficulty"`
	WouldTakeAgain string   `form:"wouldTakeAgain"`
	Course         string   `form:"course"`
	Grade          string   `form:"grade"`
	IsOnline       []string `form:"isOnline"`
	Comment        string   `form:"comment"`
	Tags           string   `form:"tags"`

	RequireCourse  string `form:"requireCourse"`
	RequireComment string `form:"requireComment"`
	CommentLimit   string `form:"commentLimit"`
	MaxTags        string `form:"maxTags"`
}

// Normalize trims every scalar field.
func (f *ReviewForm) Normalize() {
	for _, field := range []*string{
		&f.TeacherID, &f.ReviewID, &f.Quality, &f.Difficulty, &f.WouldTakeAgain,
		&f.Course, &f.Grade, &f.Comment, &f.Tags,
		&f.RequireCourse, &f.RequireComment, &f.CommentLimit, &f.MaxTags,
	} {
		*field = form.Str(*field)
	}
}

// DeleteReviewForm removes one of the caller's reviews.
type DeleteReviewForm struct {
	ReviewID  string `form:"reviewId"`
	TeacherID string `form:"teacherId"`
}

// Normalize trims fields.
func (f *DeleteReviewForm) Normalize() {
	f.ReviewID = form.Str(f.ReviewID)
	f.TeacherID = form.Str(f.TeacherID)
}

// VoteForm sets or clears the caller's vote on a review.
type VoteForm struct {
	TeacherID string `form:"teacherId"`
	ReviewID  string `form:"reviewId"`
	Op        string `form:"op"`
}

// Normalize trims fields.
func (f *VoteForm) Normalize() {
	f.TeacherID = form.Str(f.TeacherID)
	f.ReviewID = form.Str(f.ReviewID)
	f.Op = form.Str(f.Op)
}

// AdminReviewForm is the moderation edit of any review.
type AdminReviewForm struct {
	ID             string   `form:"id"`
	TeacherID      string   `form:"teacher_id"`
	Quality        string   `form:"quality"`
	Difficulty     string   `form:"difficulty"`
	WouldTakeAgain string   `form:"would_take_again"`
	Course         string   `form:"course"`
	Grade          string   `form:"grade"`
	IsOnline       []string `form:"is_online"`
	Comment        string   `form:"comment"`
	Tags           string   `form:"tags"`
}

// Normalize trims every scalar field.
func (f *AdminReviewForm) Normalize() {
	for _, field := range []*string{&f.ID, &f.TeacherID, &f.Quality, &f.Difficulty, &f.WouldTakeAgain, &f.Course, &f.Grade, &f.Comment, &f.Tags} {
		*field = form.Str(*field)
	}
}

// AdminDeleteForm identifies a row to delete from the admin panel. Review
// forms also send the teacher so the panel can link back to it.
type AdminDeleteForm struct {
	ID        string `form:"id"`
	TeacherID string `form:"teacher_id"`
}

// Normalize trims fields.
func (f *AdminDeleteForm) Normalize() {
	f.ID = form.Str(f.ID)
	f.TeacherID = form.Str(f.TeacherID)
}
