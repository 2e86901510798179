package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type givingService interface {
	CreateMembership(ctx context.Context, req dto.CreateMembershipRequest) (*models.Membership, error)
	ListMemberships(ctx context.Context) ([]models.Membership, error)
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*models.Donation, error)
	ListDonations(ctx context.Context) ([]models.Donation, error)
}

// GivingHandler exposes membership and donation recording. Creation is
// public, the ledgers are admin-only.
type GivingHandler struct {
	giving givingService
}

// NewGivingHandler constructs the handler.
func NewGivingHandler(giving givingService) *GivingHandler {
	return &GivingHandler{giving: giving}
}

// CreateMembership godoc
// @Summary Record a membership enrollment
// @Tags Giving
// @Accept json
// @Produce json
// @Param payload body dto.CreateMembershipRequest true "Membership"
// @Success 201 {object} response.Envelope
// @Router /memberships [post]
func (h *GivingHandler) CreateMembership(c *gin.Context) {
	var req dto.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid membership payload"))
		return
	}
	record, err := h.giving.CreateMembership(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// ListMemberships godoc
// @Summary List membership enrollments
// @Tags Giving
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/memberships [get]
func (h *GivingHandler) ListMemberships(c *gin.Context) {
	items, err := h.giving.ListMemberships(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// CreateDonation godoc
// @Summary Record a donation
// @Tags Giving
// @Accept json
// @Produce json
// @Param payload body dto.CreateDonationRequest true "Donation"
// @Success 201 {object} response.Envelope
// @Router /donations [post]
func (h *GivingHandler) CreateDonation(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid donation payload"))
		return
	}
	record, err := h.giving.CreateDonation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// ListDonations godoc
// @Summary List donations
// @Tags Giving
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/donations [get]
func (h *GivingHandler) ListDonations(c *gin.Context) {
	items, err := h.giving.ListDonations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}
