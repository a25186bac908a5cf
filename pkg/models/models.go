package models

import (
	"time"
)

// Multi-tenancy models

// Org represents an organization (top-level tenant). Every brand document,
// testimonial, and user membership hangs off an org.
type Org struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Plan      *string   `json:"plan,omitempty" db:"plan"`
}

// User represents a dashboard user who can belong to multiple orgs.
type User struct {
	ID            int64      `json:"id" db:"id"`
	Email         string     `json:"email" db:"email"`
	PasswordHash  string     `json:"-" db:"password_hash"` // Never expose password hash in JSON
	Name          string     `json:"name" db:"name"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	EmailVerified bool       `json:"email_verified" db:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Testimonial is one collected piece of customer praise.
type Testimonial struct {
	ID           string     `json:"id" db:"id"` // uuid
	OrgID        int64      `json:"org_id" db:"org_id"`
	AuthorName   string     `json:"author_name" db:"author_name"`
	AuthorHandle *string    `json:"author_handle,omitempty" db:"author_handle"`
	AuthorAvatar *string    `json:"author_avatar,omitempty" db:"author_avatar"`
	Company      *string    `json:"company,omitempty" db:"company"`
	Body         string     `json:"body" db:"body"`
	Rating       *int       `json:"rating,omitempty" db:"rating"` // 1-5 when present
	Source       string     `json:"source" db:"source"`           // email, chat, social, custom-page
	Approved     bool       `json:"approved" db:"approved"`
	CollectedAt  time.Time  `json:"collected_at" db:"collected_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty" db:"approved_at"`
}

// BrandProfile is the display metadata for an org's public surfaces.
type BrandProfile struct {
	OrgID       int64   `json:"org_id" db:"org_id"`
	DisplayName string  `json:"display_name" db:"display_name"`
	LogoURL     *string `json:"logo_url,omitempty" db:"logo_url"`
	AccentColor *string `json:"accent_color,omitempty" db:"accent_color"`
	ProductName *string `json:"product_name,omitempty" db:"product_name"`
}

// PasswordReset tracks an outstanding reset token for a user.
type PasswordReset struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	TokenHash string     `json:"-" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty" db:"used_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
