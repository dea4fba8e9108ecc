package dto

import "github.com/noah-isme/rate-my-teacher/pkg/form"

// TeacherForm creates or edits a teacher from the admin panel. Subjects is a
// comma-separated list; the single "subject" field of older forms is folded in.
type TeacherForm struct {
	ID       string `form:"id"`
	FullName string `form:"full_name"`
	Subjects string `form:"subjects"`
	Subject  string `form:"subject"`
}

// Normalize trims fields.
func (f *TeacherForm) Normalize() {
	f.ID = form.Str(f.ID)
	f.FullName = form.Str(f.FullName)
	f.Subjects = form.Str(f.Subjects)
	f.Subject = form.Str(f.Subject)
}

// SubjectList merges the subjects and subject fields.
func (f TeacherForm) SubjectList() []string {
	subjects := form.List(f.Subjects)
	if f.Subject != "" {
		for _, s := range subjects {
			if s == f.Subject {
				return subjects
			}
		}
		subjects = append(subjects, f.Subject)
	}
	return subjects
}

// TeacherQuery is the browse page query string.
type TeacherQuery struct {
	Q       string `form:"q"`
	Subject string `form:"subject"`
	Page    string `form:"page"`
}
