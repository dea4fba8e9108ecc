package models

import "time"

// TicketStatus is the support ticket lifecycle state.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Label is the human readable status.
func (s TicketStatus) Label() string {
	switch s {
	case TicketOpen:
		return "Open"
	case TicketInProgress:
		return "In Progress"
	case TicketResolved:
		return "Resolved"
	case TicketClosed:
		return "Closed"
	}
	if s == "" {
		return Placeholder
	}
	return string(s)
}

// CategoryOther requires a free-text category.
const CategoryOther = "Other"

// TicketCategories lists the selectable contact categories.
var TicketCategories = []string{
	"Troubleshooting",
	"Business Partnership",
	"Technical Partnership",
	"Account & Login",
	"Report Content",
	"Bug Report",
	"Feature Request",
	"Data Correction",
	CategoryOther,
}

// Ticket is a support request filed through the contact form.
type Ticket struct {
	ID            string       `db:"id" json:"id"`
	UserID        string       `db:"user_id" json:"user_id"`
	Email         string       `db:"email" json:"email"`
	Category      string       `db:"category" json:"category"`
	CategoryOther *string      `db:"category_other" json:"category_other,omitempty"`
	Title         string       `db:"title" json:"title"`
	Description   string       `db:"description" json:"description"`
	PageURL       *string      `db:"page_url" json:"page_url,omitempty"`
	UserAgent     *string      `db:"user_agent" json:"user_agent,omitempty"`
	Status        TicketStatus `db:"status" json:"status"`
	AdminNote     *string      `db:"admin_note" json:"admin_note,omitempty"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// CategoryLabel renders "Other: <text>" for free-text categories.
func (t Ticket) CategoryLabel() string {
	if t.Category == CategoryOther && t.CategoryOther != nil && *t.CategoryOther != "" {
		return "Other: " + *t.CategoryOther
	}
	return t.Category
}

// TicketFilter narrows admin ticket listings.
type TicketFilter struct {
	Search string
	Status string
	Limit  int
}
