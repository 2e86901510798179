package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

// MemberService fronts the identity provider for public-site members.
// Provider failures are typed; their codes and messages pass through to
// the response so the site can show them verbatim.
type MemberService struct {
	provider identity.Provider
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMemberService creates the service.
func NewMemberService(provider identity.Provider, logger *zap.Logger) *MemberService {
	return &MemberService{
		provider: provider,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login authenticates a registered member and returns the session view
// with the member's profile attached.
func (s *MemberService) Login(ctx context.Context, req models.MemberLoginRequest) (*models.MemberSessionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	principal, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.session(ctx, principal)
}

// Register creates credentials for a pre-existing member document.
func (s *MemberService) Register(ctx context.Context, req models.MemberRegisterRequest) (*models.MemberSessionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	principal, err := s.provider.Register(ctx, req.Email, req.Password, identity.Profile{
		FullName:    req.FullName,
		BatchYear:   req.BatchYear,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}
	return s.session(ctx, principal)
}

// Profile returns the member document for a uid.
func (s *MemberService) Profile(ctx context.Context, uid string) (*models.Member, error) {
	member, err := s.provider.GetUserData(ctx, uid)
	if err != nil {
		return nil, appErrors.Wrap(err, "MEMBERS_UNAVAILABLE", 500, "failed to load member profile")
	}
	if member == nil {
		return nil, appErrors.ErrNotFound
	}
	return member, nil
}

func (s *MemberService) session(ctx context.Context, principal identity.MemberPrincipal) (*models.MemberSessionResponse, error) {
	resp := &models.MemberSessionResponse{UID: principal.UID, Email: principal.Email}
	member, err := s.provider.GetUserData(ctx, principal.UID)
	if err != nil {
		s.logger.Warn("failed to load member profile after auth", zap.String("uid", principal.UID), zap.Error(err))
		return resp, nil
	}
	if member != nil {
		resp.FullName = member.FullName
		resp.Profile = member
	}
	return resp, nil
}
