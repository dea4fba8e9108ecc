package models

import (
	"time"

	"github.com/lib/pq"
)

// Review is a single rating of a teacher by a signed-in user.
type Review struct {
	ID             string         `db:"id" json:"id"`
	TeacherID      string         `db:"teacher_id" json:"teacher_id"`
	UserID         string         `db:"user_id" json:"user_id"`
	Quality        int            `db:"quality" json:"quality"`
	Difficulty     int            `db:"difficulty" json:"difficulty"`
	WouldTakeAgain bool           `db:"would_take_again" json:"would_take_again"`
	Comment        *string        `db:"comment" json:"comment,omitempty"`
	Course         *string        `db:"course" json:"course,omitempty"`
	Grade          *string        `db:"grade" json:"grade,omitempty"`
	IsOnline       bool           `db:"is_online" json:"is_online"`
	Tags           pq.StringArray `db:"tags" json:"tags"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// ReviewFilter narrows admin and personal review listings.
type ReviewFilter struct {
	TeacherID string
	UserID    string
	Search    string
	Limit     int
}

// ReviewVotes decorates a review with its vote score and the caller's vote.
type ReviewVotes struct {
	Review
	Score  int `json:"score"`
	MyVote int `json:"my_vote"`
}

// ReviewItem is a review listing row with related names resolved.
type ReviewItem struct {
	Review
	TeacherName string `json:"teacher_name"`
	AuthorEmail string `json:"author_email,omitempty"`
}

// Placeholder is rendered for related data that could not be loaded.
const Placeholder = "—"
