package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type memberService interface {
	Login(ctx context.Context, req models.MemberLoginRequest) (*models.MemberSessionResponse, error)
	Register(ctx context.Context, req models.MemberRegisterRequest) (*models.MemberSessionResponse, error)
	Profile(ctx context.Context, uid string) (*models.Member, error)
}

// MemberAuthHandler exposes the public-site member auth endpoints.
// Identity provider failures carry their own code and message; those pass
// through to the response body verbatim.
type MemberAuthHandler struct {
	members memberService
}

// NewMemberAuthHandler constructs the handler.
func NewMemberAuthHandler(members memberService) *MemberAuthHandler {
	return &MemberAuthHandler{members: members}
}

// Login godoc
// @Summary Member login
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body models.MemberLoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/members/login [post]
func (h *MemberAuthHandler) Login(c *gin.Context) {
	var req models.MemberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid login payload"))
		return
	}
	session, err := h.members.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, mapAuthError(err))
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Register godoc
// @Summary Member registration
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body models.MemberRegisterRequest true "Registration details"
// @Success 201 {object} response.Envelope
// @Router /auth/members/register [post]
func (h *MemberAuthHandler) Register(c *gin.Context) {
	var req models.MemberRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid registration payload"))
		return
	}
	session, err := h.members.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, mapAuthError(err))
		return
	}
	response.Created(c, session)
}

// Profile godoc
// @Summary Member profile by uid
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param uid path string true "Member uid"
// @Success 200 {object} response.Envelope
// @Router /admin/members/{uid} [get]
func (h *MemberAuthHandler) Profile(c *gin.Context) {
	member, err := h.members.Profile(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member, nil)
}

// mapAuthError converts an identity provider failure into the typed
// response error for its code.
func mapAuthError(err error) error {
	var authErr *identity.AuthError
	if !errors.As(err, &authErr) {
		return err
	}
	status := http.StatusUnauthorized
	switch authErr.Code {
	case identity.CodeInvalidEmail, identity.CodeWeakPassword:
		status = http.StatusBadRequest
	case identity.CodeAlreadyRegistered:
		status = http.StatusConflict
	case identity.CodeUserNotFound:
		status = http.StatusNotFound
	case identity.CodeUnknown:
		status = http.StatusInternalServerError
	}
	return appErrors.New(authErr.Code, status, authErr.Message)
}
