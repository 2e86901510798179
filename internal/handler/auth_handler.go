package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type adminAuthService interface {
	Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error)
}

// AuthHandler exposes the CMS admin session endpoints.
type AuthHandler struct {
	auth adminAuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth adminAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid login payload"))
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Me godoc
// @Summary Current admin session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /auth/admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"user_id":  principal.UserID,
		"username": principal.Username,
		"name":     principal.Name,
		"role":     principal.Role,
	}, nil)
}
