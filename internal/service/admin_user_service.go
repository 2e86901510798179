package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/pkg/config"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

// adminDirectory is the admin-account persistence surface.
type adminDirectory interface {
	List(ctx context.Context) ([]models.AdminUser, error)
	FindByLogin(ctx context.Context, login string) (*models.AdminUser, error)
	Append(ctx context.Context, user models.AdminUser) error
	Remove(ctx context.Context, id string) (*models.AdminUser, error)
}

// AdminUserService manages CMS admin accounts. Only full-permission roles
// may add or remove admins; new accounts are always representative
// admins, so admin-created accounts can never escalate past the approval
// boundary.
type AdminUserService struct {
	users    adminDirectory
	notifier notifier
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAdminUserService creates the service.
func NewAdminUserService(users adminDirectory, n notifier, logger *zap.Logger) *AdminUserService {
	return &AdminUserService{
		users:    users,
		notifier: n,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns every admin account without credential material.
func (s *AdminUserService) List(ctx context.Context) ([]models.AdminUserInfo, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to load admin accounts")
	}
	infos := make([]models.AdminUserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Public())
	}
	return infos, nil
}

// ListRepresentatives returns only the representative admin accounts.
func (s *AdminUserService) ListRepresentatives(ctx context.Context) ([]models.AdminUserInfo, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to load admin accounts")
	}
	infos := make([]models.AdminUserInfo, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleRepresentativeAdmin {
			infos = append(infos, u.Public())
		}
	}
	return infos, nil
}

// AddRepresentative creates a representative admin account. The username
// and email must both be unused; the password is hashed before it is
// stored.
func (s *AdminUserService) AddRepresentative(ctx context.Context, actor identity.AdminPrincipal, req dto.AddRepresentativeAdminRequest) (*models.AdminUserInfo, error) {
	if !actor.Role.CanManageAdmins() {
		return nil, appErrors.ErrForbidden
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	for _, login := range []string{req.Username, req.Email} {
		_, err := s.users.FindByLogin(ctx, login)
		if err == nil {
			return nil, appErrors.Clone(appErrors.ErrConflict, "username or email already in use")
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to load admin accounts")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, "HASHING_FAILED", 500, "failed to hash password")
	}

	user := models.AdminUser{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleRepresentativeAdmin,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    actor.UserID,
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to create admin account")
	}

	if err := s.notifier.Notify(ctx, NotificationInput{
		Type:        models.NotificationUserAdded,
		Message:     user.Name + " has been added as a representative admin",
		TargetRoles: []models.AdminRole{models.RoleRepresentativeAdmin},
	}); err != nil {
		s.logger.Warn("failed to notify on admin creation", zap.String("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("representative admin created",
		zap.String("user_id", user.ID),
		zap.String("created_by", actor.UserID),
	)
	info := user.Public()
	return &info, nil
}

// Remove deletes exactly the account with the given id. Actors cannot
// remove their own account, and only a super admin may remove another
// super admin.
func (s *AdminUserService) Remove(ctx context.Context, actor identity.AdminPrincipal, id string) (*models.AdminUserInfo, error) {
	if !actor.Role.CanManageAdmins() {
		return nil, appErrors.ErrForbidden
	}
	if id == actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrConflict, "cannot remove your own account")
	}

	existing, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to load admin accounts")
	}
	for _, u := range existing {
		if u.ID == id && u.Role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "only a super admin can remove a super admin account")
		}
	}

	removed, err := s.users.Remove(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no admin account with that id")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to remove admin account")
	}

	s.logger.Info("admin account removed",
		zap.String("user_id", removed.ID),
		zap.String("role", string(removed.Role)),
		zap.String("removed_by", actor.UserID),
	)
	info := removed.Public()
	return &info, nil
}

// EnsureDefaults seeds the built-in super admin and admin accounts when
// the directory is empty. Passwords come from the bootstrap config; a
// blank password gets a generated one, logged once so the operator can
// complete first login and rotate it.
func (s *AdminUserService) EnsureDefaults(ctx context.Context, cfg config.BootstrapConfig) error {
	if !cfg.SeedDefaultAdmins {
		return nil
	}
	existing, err := s.users.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to load admin accounts")
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []struct {
		username string
		email    string
		name     string
		role     models.AdminRole
		password string
	}{
		{"superadmin", "superadmin@nsmosa.org", "Super Administrator", models.RoleSuperAdmin, cfg.SuperAdminPassword},
		{"admin", "admin@nsmosa.org", "Administrator", models.RoleAdmin, cfg.AdminPassword},
	}
	for _, d := range defaults {
		password := d.password
		if password == "" {
			password = uuid.NewString()
			s.logger.Warn("generated password for default admin account, rotate it after first login",
				zap.String("username", d.username),
				zap.String("password", password),
			)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return appErrors.Wrap(err, "HASHING_FAILED", 500, "failed to hash password")
		}
		user := models.AdminUser{
			ID:           uuid.NewString(),
			Username:     d.username,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
			Name:         d.name,
			CreatedAt:    time.Now().UTC(),
			CreatedBy:    "bootstrap",
		}
		if err := s.users.Append(ctx, user); err != nil {
			return appErrors.Wrap(err, "ADMINS_UNAVAILABLE", 500, "failed to seed admin account")
		}
		s.logger.Info("seeded default admin account",
			zap.String("username", d.username),
			zap.String("role", string(d.role)),
		)
	}
	return nil
}
