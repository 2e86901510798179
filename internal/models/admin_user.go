package models

import "time"

// AdminRole represents the portal admin roles.
type AdminRole string

const (
	RoleSuperAdmin          AdminRole = "super_admin"
	RoleAdmin               AdminRole = "admin"
	RoleRepresentativeAdmin AdminRole = "representative_admin"
)

// Valid reports whether the role is one of the known admin roles.
func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleRepresentativeAdmin:
		return true
	}
	return false
}

// HasFullPermissions reports whether the role can review submissions and
// publish content directly.
func (r AdminRole) HasFullPermissions() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// CanManageAdmins reports whether the role can add or remove other admins.
func (r AdminRole) CanManageAdmins() bool {
	return r.HasFullPermissions()
}

// NeedsApproval reports whether content posted by this role must pass
// review before it becomes visible.
func (r AdminRole) NeedsApproval() bool {
	return r == RoleRepresentativeAdmin
}

// AdminUser is a CMS admin account. Passwords are bcrypt-hashed at rest.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         AdminRole `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	BatchYear    string    `json:"batchYear,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// DisplayName prefers the full name over the username.
func (u *AdminUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Public strips the credential hash for API responses.
func (u AdminUser) Public() AdminUserInfo {
	return AdminUserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		CreatedBy: u.CreatedBy,
	}
}

// AdminUserInfo is the API-facing view of an admin account.
type AdminUserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      AdminRole `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
