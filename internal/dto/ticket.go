package dto

import "github.com/noah-isme/rate-my-teacher/pkg/form"

// TicketForm is the contact form submission. PageURL and UserAgent are
// filled from request headers, not from the form body.
type TicketForm struct {
	Category      string `form:"category" validate:"required,max=40"`
	CategoryOther string `form:"category_other" validate:"max=60"`
	Title         string `form:"title" validate:"min=3,max=120"`
	Description   string `form:"description" validate:"min=10,max=4000"`
	PageURL       string `form:"-"`
	UserAgent     string `form:"-"`
}

// Normalize trims fields.
func (f *TicketForm) Normalize() {
	f.Category = form.Str(f.Category)
	f.CategoryOther = form.Str(f.CategoryOther)
	f.Title = form.Str(f.Title)
	f.Description = form.Str(f.Description)
	f.PageURL = form.Str(f.PageURL)
	f.UserAgent = form.Str(f.UserAgent)
}

// TicketUpdateForm is the admin status/note update.
type TicketUpdateForm struct {
	ID        string `form:"id"`
	Status    string `form:"status"`
	AdminNote string `form:"admin_note"`
}

// Normalize trims fields.
func (f *TicketUpdateForm) Normalize() {
	f.ID = form.Str(f.ID)
	f.Status = form.Str(f.Status)
	f.AdminNote = form.Str(f.AdminNote)
}

// TicketQuery filters the admin ticket list and export.
type TicketQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
	Format string `form:"format"`
}
