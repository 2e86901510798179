package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminLoginRequest holds CMS admin credentials. Username accepts either
// the account username or its email address.
type AdminLoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// AdminLoginResponse returns the issued session token and account info.
type AdminLoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	IssuedAt    time.Time     `json:"issued_at"`
	User        AdminUserInfo `json:"user"`
}

// AdminClaims is the JWT payload for admin session tokens. Token expiry
// carries the 8-hour admin session policy.
type AdminClaims struct {
	UserID   string    `json:"user_id"`
	Role     AdminRole `json:"role"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	jwt.RegisteredClaims
}

// DisplayName prefers the full name over the username.
func (c *AdminClaims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Username
}

// MemberLoginRequest authenticates a public-site member.
type MemberLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MemberRegisterRequest registers a pre-existing member with the identity
// provider.
type MemberRegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FullName    string `json:"full_name" validate:"required"`
	BatchYear   string `json:"batch_year"`
	PhoneNumber string `json:"phone_number"`
}

// MemberSessionResponse returns the member principal after login/register.
type MemberSessionResponse struct {
	UID      string  `json:"uid"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name,omitempty"`
	Profile  *Member `json:"profile,omitempty"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
