package models

import (
	"time"

	"github.com/lib/pq"
)

// Teacher represents a rateable teacher profile.
type Teacher struct {
	ID        string         `db:"id" json:"id"`
	FullName  string         `db:"full_name" json:"full_name"`
	Subjects  pq.StringArray `db:"subjects" json:"subjects"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// TeacherListItem is a teacher row with aggregated rating figures.
type TeacherListItem struct {
	ID                string         `db:"id" json:"id"`
	FullName          string         `db:"full_name" json:"full_name"`
	Subjects          pq.StringArray `db:"subjects" json:"subjects"`
	ReviewCount       int            `db:"review_count" json:"review_count"`
	AvgQuality        *float64       `db:"avg_quality" json:"avg_quality"`
	AvgDifficulty     *float64       `db:"avg_difficulty" json:"avg_difficulty"`
	PctWouldTakeAgain *float64       `db:"pct_would_take_again" json:"pct_would_take_again"`
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	Search   string
	Subject  string
	Page     int
	PageSize int
}

// TeacherPage is the browse page payload.
type TeacherPage struct {
	Teachers []TeacherListItem `json:"teachers"`
	Subjects []string          `json:"subjects"`
	Query    string            `json:"q,omitempty"`
	Subject  string            `json:"subject,omitempty"`
	Viewer   *SessionUser      `json:"viewer,omitempty"`
}

// TeacherDetail is the teacher profile page payload.
type TeacherDetail struct {
	Teacher Teacher       `json:"teacher"`
	Reviews []ReviewVotes `json:"reviews"`
	Viewer  *SessionUser  `json:"viewer,omitempty"`
}
