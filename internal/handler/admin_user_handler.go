package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type adminUserService interface {
	List(ctx context.Context) ([]models.AdminUserInfo, error)
	ListRepresentatives(ctx context.Context) ([]models.AdminUserInfo, error)
	AddRepresentative(ctx context.Context, actor identity.AdminPrincipal, req dto.AddRepresentativeAdminRequest) (*models.AdminUserInfo, error)
	Remove(ctx context.Context, actor identity.AdminPrincipal, id string) (*models.AdminUserInfo, error)
}

// AdminUserHandler exposes admin account management.
type AdminUserHandler struct {
	users adminUserService
}

// NewAdminUserHandler constructs the handler.
func NewAdminUserHandler(users adminUserService) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// List godoc
// @Summary List admin accounts
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// ListRepresentatives godoc
// @Summary List representative admin accounts
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/users/representatives [get]
func (h *AdminUserHandler) ListRepresentatives(c *gin.Context) {
	users, err := h.users.ListRepresentatives(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// AddRepresentative godoc
// @Summary Create a representative admin account
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddRepresentativeAdminRequest true "Account details"
// @Success 201 {object} response.Envelope
// @Router /admin/users/representatives [post]
func (h *AdminUserHandler) AddRepresentative(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.AddRepresentativeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid account payload"))
		return
	}
	created, err := h.users.AddRepresentative(c.Request.Context(), principal, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Remove godoc
// @Summary Remove an admin account
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account id"
// @Success 200 {object} response.Envelope
// @Router /admin/users/{id} [delete]
func (h *AdminUserHandler) Remove(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	removed, err := h.users.Remove(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, removed, nil)
}
