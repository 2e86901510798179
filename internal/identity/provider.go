package identity

import (
	"context"

	"github.com/nsmosa/alumni-portal-api/internal/models"
)

// AuthError is the typed failure value surfaced by the identity provider.
// Its message is shown to the end user verbatim.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string { return e.Message }

// Provider error codes.
const (
	CodeUserNotFound      = "user-not-found"
	CodeAlreadyRegistered = "already-registered"
	CodeWrongPassword     = "auth/wrong-password"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeWeakPassword      = "auth/weak-password"
	CodeUnknown           = "unknown-error"
)

// Profile carries the optional registration fields.
type Profile struct {
	FullName    string
	BatchYear   string
	PhoneNumber string
}

// Provider is the external identity/document-store collaborator. Only
// existing member documents (seeded by the association) may sign in or
// register; registration stamps the document with a uid.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (MemberPrincipal, error)
	Register(ctx context.Context, email, password string, profile Profile) (MemberPrincipal, error)
	GetUserData(ctx context.Context, uid string) (*models.Member, error)
	GetUserByEmail(ctx context.Context, email string) (*models.Member, error)
}
