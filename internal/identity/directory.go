package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
)

// DirectoryProvider implements the Provider contract against the member
// directory held in the portal's own store. It stands in for the managed
// identity service in development and tests; production swaps in a client
// for the real collaborator behind the same interface.
type DirectoryProvider struct {
	members           *repository.MemberRepository
	minPasswordLength int
}

// NewDirectoryProvider creates the provider.
func NewDirectoryProvider(members *repository.MemberRepository, minPasswordLength int) *DirectoryProvider {
	if minPasswordLength <= 0 {
		minPasswordLength = 6
	}
	return &DirectoryProvider{members: members, minPasswordLength: minPasswordLength}
}

// SignIn authenticates a registered member. The member document must
// pre-exist; a seeded-but-unregistered document fails like a wrong
// password so the error does not leak registration state.
func (p *DirectoryProvider) SignIn(ctx context.Context, email, password string) (MemberPrincipal, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeInvalidEmail, Message: "Invalid email address. Please check and try again."}
	}

	member, err := p.members.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return MemberPrincipal{}, &AuthError{Code: CodeUserNotFound, Message: "This email is not registered as an existing member. Please contact support."}
	}
	if err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeUnknown, Message: "An error occurred during sign in. Please try again."}
	}

	if member.UID == "" || member.PasswordHash == "" {
		return MemberPrincipal{}, &AuthError{Code: CodeWrongPassword, Message: "Invalid email or password. Please try again."}
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeWrongPassword, Message: "Invalid email or password. Please try again."}
	}

	return MemberPrincipal{UID: member.UID, Email: member.Email}, nil
}

// Register creates credentials for a pre-existing member document.
func (p *DirectoryProvider) Register(ctx context.Context, email, password string, profile Profile) (MemberPrincipal, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeInvalidEmail, Message: "Invalid email address. Please check and try again."}
	}

	member, err := p.members.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return MemberPrincipal{}, &AuthError{Code: CodeUserNotFound, Message: "This email is not registered as an existing member. Please contact support to register your email first."}
	}
	if err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeUnknown, Message: "An error occurred during registration. Please try again."}
	}

	if member.UID != "" {
		return MemberPrincipal{}, &AuthError{Code: CodeAlreadyRegistered, Message: "This email is already registered. Please use the login page instead."}
	}

	if len(password) < p.minPasswordLength {
		return MemberPrincipal{}, &AuthError{
			Code:    CodeWeakPassword,
			Message: fmt.Sprintf("Password should be at least %d characters long.", p.minPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeUnknown, Message: "An error occurred during registration. Please try again."}
	}

	uid := uuid.NewString()
	now := time.Now().UTC()
	updated, err := p.members.UpdateByEmail(ctx, email, func(m *models.Member) {
		m.UID = uid
		m.PasswordHash = string(hash)
		m.IsExistingMember = true
		m.RegisteredAt = &now
		if profile.FullName != "" {
			m.FullName = profile.FullName
		}
		if profile.BatchYear != "" {
			m.BatchYear = profile.BatchYear
		}
		if profile.PhoneNumber != "" {
			m.PhoneNumber = profile.PhoneNumber
		}
	})
	if err != nil {
		return MemberPrincipal{}, &AuthError{Code: CodeUnknown, Message: "An error occurred during registration. Please try again."}
	}

	return MemberPrincipal{UID: updated.UID, Email: updated.Email}, nil
}

// GetUserData returns the profile registered under uid, or nil when no
// such member exists.
func (p *DirectoryProvider) GetUserData(ctx context.Context, uid string) (*models.Member, error) {
	member, err := p.members.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	member.PasswordHash = ""
	return member, nil
}

// GetUserByEmail returns the member document for an email, or nil.
func (p *DirectoryProvider) GetUserByEmail(ctx context.Context, email string) (*models.Member, error) {
	member, err := p.members.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	member.PasswordHash = ""
	return member, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ Provider = (*DirectoryProvider)(nil)
