package repository

import (
	"context"
	"strings"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// AdminUserRepository persists CMS admin accounts.
type AdminUserRepository struct {
	store store.Store
}

// NewAdminUserRepository creates the repository.
func NewAdminUserRepository(s store.Store) *AdminUserRepository {
	return &AdminUserRepository{store: s}
}

// List returns every admin account.
func (r *AdminUserRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	return readList[models.AdminUser](ctx, r.store, store.KeyAdminUsers)
}

// GetByID returns the account with the given id.
func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			match := u
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

// FindByLogin matches an account by username or email, case-insensitively.
func (r *AdminUserRepository) FindByLogin(ctx context.Context, login string) (*models.AdminUser, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(login))
	for _, u := range users {
		if strings.ToLower(u.Username) == needle || strings.ToLower(u.Email) == needle {
			match := u
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

// UsernameExists reports whether an account already claims the username.
func (r *AdminUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.ToLower(strings.TrimSpace(username))
	for _, u := range users {
		if strings.ToLower(u.Username) == needle {
			return true, nil
		}
	}
	return false, nil
}

// Append adds a new account. Uniqueness is the caller's concern; the
// append itself is atomic per key.
func (r *AdminUserRepository) Append(ctx context.Context, user models.AdminUser) error {
	return appendItem(ctx, r.store, store.KeyAdminUsers, user)
}

// Remove deletes exactly the account with the given id, regardless of its
// role, and returns it.
func (r *AdminUserRepository) Remove(ctx context.Context, id string) (*models.AdminUser, error) {
	return removeItem(ctx, r.store, store.KeyAdminUsers, func(u models.AdminUser) bool {
		return u.ID == id
	})
}
