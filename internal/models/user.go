package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an end-user account held by the auth provider.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SessionUser is the authenticated caller resolved from the session cookie.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued cookie value.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      SessionUser
}

// SessionClaims is the end-user session token payload.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AdminSession is the decoded admin cookie.
type AdminSession struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Pagination contains range-limited paging metadata.
type Pagination struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasPrev  bool `json:"has_prev"`
	HasNext  bool `json:"has_next"`
}
