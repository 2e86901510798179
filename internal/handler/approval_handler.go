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

type approvalService interface {
	Submit(ctx context.Context, actor identity.AdminPrincipal, req dto.SubmitContentRequest) (*dto.SubmitContentResponse, error)
	ListPending(ctx context.Context, viewer identity.AdminPrincipal) ([]models.Submission, error)
	Approve(ctx context.Context, reviewer identity.AdminPrincipal, id string) (*models.Submission, error)
	Reject(ctx context.Context, reviewer identity.AdminPrincipal, id string, notes string) (*models.Submission, error)
}

// ApprovalHandler exposes the content approval workflow.
type ApprovalHandler struct {
	approvals approvalService
}

// NewApprovalHandler constructs the handler.
func NewApprovalHandler(approvals approvalService) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals}
}

// Submit godoc
// @Summary Submit content for publication
// @Tags Approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubmitContentRequest true "Submission"
// @Success 201 {object} response.Envelope
// @Router /admin/submissions [post]
func (h *ApprovalHandler) Submit(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.SubmitContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid submission payload"))
		return
	}
	result, err := h.approvals.Submit(c.Request.Context(), principal, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result, nil)
}

// ListPending godoc
// @Summary List pending submissions
// @Tags Approvals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/approvals [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	pending, err := h.approvals.ListPending(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pending, nil)
}

// Approve godoc
// @Summary Approve a pending submission
// @Tags Approvals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission id"
// @Success 200 {object} response.Envelope
// @Router /admin/approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	submission, err := h.approvals.Approve(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission, nil)
}

// Reject godoc
// @Summary Reject a pending submission
// @Tags Approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission id"
// @Param payload body dto.RejectSubmissionRequest false "Review notes"
// @Success 200 {object} response.Envelope
// @Router /admin/approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.RejectSubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rejection payload"))
			return
		}
	}
	submission, err := h.approvals.Reject(c.Request.Context(), principal, c.Param("id"), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission, nil)
}
