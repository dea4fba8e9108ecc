package dto

import (
	"strings"

	"github.com/noah-isme/rate-my-teacher/pkg/form"
)

// SignInForm is the end-user sign-in submission.
type SignInForm struct {
	Email      string `form:"email" validate:"required"`
	Password   string `form:"password" validate:"required"`
	RedirectTo string `form:"redirectTo"`
}

// Normalize trims fields and lower-cases the email.
func (f *SignInForm) Normalize() {
	f.Email = strings.ToLower(form.Str(f.Email))
	f.Password = form.Str(f.Password)
	f.RedirectTo = form.Str(f.RedirectTo)
}

// SignUpForm is the account registration submission. ConfirmPassword is
// only compared when the form sends it.
type SignUpForm struct {
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword"`
	RedirectTo      string `form:"redirectTo"`
}

// Normalize trims fields and lower-cases the email.
func (f *SignUpForm) Normalize() {
	f.Email = strings.ToLower(form.Str(f.Email))
	f.Password = form.Str(f.Password)
	f.ConfirmPassword = form.Str(f.ConfirmPassword)
	f.RedirectTo = form.Str(f.RedirectTo)
}

// AdminLoginForm is the admin panel login submission.
type AdminLoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// Normalize trims fields.
func (f *AdminLoginForm) Normalize() {
	f.Username = form.Str(f.Username)
	f.Password = form.Str(f.Password)
	f.Next = form.Str(f.Next)
}
