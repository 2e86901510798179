package repository

import (
	"context"
	"strings"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// MemberRepository persists the alumni member directory consulted by the
// identity provider. Records are seeded by the association; registration
// only annotates an existing record with a uid and credentials.
type MemberRepository struct {
	store store.Store
}

// NewMemberRepository creates the repository.
func NewMemberRepository(s store.Store) *MemberRepository {
	return &MemberRepository{store: s}
}

// List returns the whole member directory.
func (r *MemberRepository) List(ctx context.Context) ([]models.Member, error) {
	return readList[models.Member](ctx, r.store, store.KeyUsers)
}

// FindByEmail matches a member document case-insensitively by email.
func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, m := range members {
		if strings.ToLower(m.Email) == needle {
			match := m
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

// FindByUID returns the member registered under the given uid.
func (r *MemberRepository) FindByUID(ctx context.Context, uid string) (*models.Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.UID == uid {
			match := m
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

// Append seeds a new member document.
func (r *MemberRepository) Append(ctx context.Context, member models.Member) error {
	return appendItem(ctx, r.store, store.KeyUsers, member)
}

// UpdateByEmail applies change to the member document matching email.
func (r *MemberRepository) UpdateByEmail(ctx context.Context, email string, change func(*models.Member)) (*models.Member, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	return updateItem(ctx, r.store, store.KeyUsers,
		func(m models.Member) bool { return strings.ToLower(m.Email) == needle },
		change,
	)
}
