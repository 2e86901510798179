package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/pkg/config"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

// adminFinder matches admin accounts by username or email.
type adminFinder interface {
	FindByLogin(ctx context.Context, login string) (*models.AdminUser, error)
}

// AdminAuthService issues and validates CMS admin session tokens. Tokens
// are signed JWTs whose expiry carries the 8-hour session policy; there
// is no refresh flow, an expired session means logging in again.
type AdminAuthService struct {
	users    adminFinder
	jwtCfg   config.JWTConfig
	adminTTL time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAdminAuthService creates the service.
func NewAdminAuthService(users adminFinder, jwtCfg config.JWTConfig, adminTTL time.Duration, logger *zap.Logger) *AdminAuthService {
	if adminTTL <= 0 {
		adminTTL = 8 * time.Hour
	}
	return &AdminAuthService{
		users:    users,
		jwtCfg:   jwtCfg,
		adminTTL: adminTTL,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login verifies credentials against the stored bcrypt hash and issues a
// session token. Unknown accounts and wrong passwords fail identically.
func (s *AdminAuthService) Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	user, err := s.users.FindByLogin(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("admin login rejected",
			zap.String("login", req.Username),
			zap.String("ip", req.IP),
		)
		return nil, appErrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "AUTH_UNAVAILABLE", 500, "failed to load admin account")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Info("admin login rejected",
			zap.String("login", req.Username),
			zap.String("ip", req.IP),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.adminTTL)
	claims := models.AdminClaims{
		UserID:   user.ID,
		Role:     user.Role,
		Email:    user.Email,
		Username: user.Username,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    s.jwtCfg.Issuer,
			Audience:  s.jwtCfg.Audience,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, "TOKEN_SIGNING_FAILED", 500, "failed to issue session token")
	}

	s.logger.Info("admin logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("ip", req.IP),
	)
	return &models.AdminLoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.adminTTL.Seconds()),
		IssuedAt:    now,
		User:        user.Public(),
	}, nil
}

// ValidateToken parses and verifies a session token, returning its claims.
func (s *AdminAuthService) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtCfg.Secret), nil
	}, jwt.WithIssuer(s.jwtCfg.Issuer))
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired session token")
	}
	if !claims.Role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired session token")
	}
	return claims, nil
}
