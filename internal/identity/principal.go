// Package identity models the two disjoint authentication authorities of
// the portal: CMS admin accounts and public-site members. Each has its own
// principal variant; the two identity spaces never overlap.
package identity

import "github.com/nsmosa/alumni-portal-api/internal/models"

// Kind discriminates principal variants.
type Kind string

const (
	KindAdmin  Kind = "admin"
	KindMember Kind = "member"
)

// Principal is an authenticated actor of either identity space.
type Principal interface {
	PrincipalID() string
	PrincipalKind() Kind
}

// AdminPrincipal is a CMS admin resolved from a session token.
type AdminPrincipal struct {
	UserID   string
	Username string
	Name     string
	Role     models.AdminRole
}

func (p AdminPrincipal) PrincipalID() string { return p.UserID }
func (p AdminPrincipal) PrincipalKind() Kind { return KindAdmin }

// DisplayName prefers the full name over the username.
func (p AdminPrincipal) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

// AdminFromClaims converts verified token claims into a principal.
func AdminFromClaims(claims *models.AdminClaims) AdminPrincipal {
	return AdminPrincipal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     claims.Role,
	}
}

// MemberPrincipal is a public-site member resolved by the identity
// provider.
type MemberPrincipal struct {
	UID   string
	Email string
}

func (p MemberPrincipal) PrincipalID() string { return p.UID }
func (p MemberPrincipal) PrincipalKind() Kind { return KindMember }
