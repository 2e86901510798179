package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

// approvalQueue is the pending-submission persistence surface.
type approvalQueue interface {
	Append(ctx context.Context, submission models.Submission) error
	List(ctx context.Context) ([]models.Submission, error)
	Remove(ctx context.Context, id string) (*models.Submission, error)
}

// contentPublisher prepares and publishes submission payloads.
type contentPublisher interface {
	PrepareSubmissionPayload(t models.SubmissionType, payload json.RawMessage) (json.RawMessage, error)
	PublishSubmission(ctx context.Context, t models.SubmissionType, payload json.RawMessage) error
}

// notifier delivers admin feed entries.
type notifier interface {
	Notify(ctx context.Context, input NotificationInput) error
}

// workflowRecorder counts approval workflow outcomes.
type workflowRecorder interface {
	RecordSubmission(outcome string)
}

// ApprovalService runs the content approval workflow. Submissions from
// representative admins wait in the pending queue until a full-permission
// reviewer approves or rejects them; submissions from full-permission
// actors publish immediately. A submission leaves the queue exactly once:
// removal rides the store's atomic update, so two concurrent reviewers
// cannot both resolve the same entry.
type ApprovalService struct {
	queue     approvalQueue
	publisher contentPublisher
	notifier  notifier
	metrics   workflowRecorder
	logger    *zap.Logger
}

// NewApprovalService creates the service.
func NewApprovalService(queue approvalQueue, publisher contentPublisher, n notifier, metrics workflowRecorder, logger *zap.Logger) *ApprovalService {
	return &ApprovalService{queue: queue, publisher: publisher, notifier: n, metrics: metrics, logger: logger}
}

// Submit routes a content submission by the actor's role. Representative
// admins enqueue a pending submission and reviewers are notified; other
// roles publish directly. An actor without a resolved identity is
// rejected rather than recorded with a blank author.
func (s *ApprovalService) Submit(ctx context.Context, actor identity.AdminPrincipal, req dto.SubmitContentRequest) (*dto.SubmitContentResponse, error) {
	if actor.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "submitter identity could not be resolved")
	}

	payload, err := s.publisher.PrepareSubmissionPayload(req.Type, req.Payload)
	if err != nil {
		return nil, err
	}

	if !actor.Role.NeedsApproval() {
		if err := s.publisher.PublishSubmission(ctx, req.Type, payload); err != nil {
			return nil, err
		}
		s.metrics.RecordSubmission("published")
		s.logger.Info("content published directly",
			zap.String("type", string(req.Type)),
			zap.String("actor", actor.UserID),
		)
		return &dto.SubmitContentResponse{Status: "published"}, nil
	}

	submission := models.Submission{
		ID:              uuid.NewString(),
		Type:            req.Type,
		Payload:         payload,
		SubmittedBy:     actor.UserID,
		SubmittedByName: actor.DisplayName(),
		SubmittedAt:     time.Now().UTC(),
		Status:          models.SubmissionStatusPending,
	}
	if err := s.queue.Append(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, "SUBMISSION_FAILED", 500, "failed to queue submission")
	}

	s.metrics.RecordSubmission("queued")
	s.notifyReviewers(ctx, submission)
	s.logger.Info("submission queued for approval",
		zap.String("submission_id", submission.ID),
		zap.String("type", string(submission.Type)),
		zap.String("submitted_by", submission.SubmittedBy),
	)
	return &dto.SubmitContentResponse{Status: "pending", Submission: &submission}, nil
}

// ListPending returns pending submissions newest first. Full-permission
// viewers see the whole queue; representative admins see only their own.
func (s *ApprovalService) ListPending(ctx context.Context, viewer identity.AdminPrincipal) ([]models.Submission, error) {
	all, err := s.queue.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "APPROVALS_UNAVAILABLE", 500, "failed to load pending approvals")
	}
	visible := all
	if !viewer.Role.HasFullPermissions() {
		visible = make([]models.Submission, 0, len(all))
		for _, sub := range all {
			if sub.SubmittedBy == viewer.UserID {
				visible = append(visible, sub)
			}
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].SubmittedAt.After(visible[j].SubmittedAt)
	})
	return visible, nil
}

// Approve resolves a pending submission, publishes its payload and
// notifies the submitter. A second approval of the same id finds nothing
// pending and reports not found with no further effect. If publication
// fails the submission is requeued so the content change is not lost.
func (s *ApprovalService) Approve(ctx context.Context, reviewer identity.AdminPrincipal, id string) (*models.Submission, error) {
	submission, err := s.resolve(ctx, reviewer, id)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishSubmission(ctx, submission.Type, submission.Payload); err != nil {
		if requeueErr := s.queue.Append(ctx, *submission); requeueErr != nil {
			s.logger.Error("failed to requeue submission after publish failure",
				zap.String("submission_id", submission.ID),
				zap.Error(requeueErr),
			)
		}
		return nil, err
	}

	now := time.Now().UTC()
	submission.Status = models.SubmissionStatusApproved
	submission.ReviewedBy = reviewer.UserID
	submission.ReviewedAt = &now

	s.metrics.RecordSubmission("approved")
	s.notifySubmitter(ctx, submission, models.NotificationContentApproved,
		fmt.Sprintf("Your %s submission has been approved", submission.Type.Label()))
	s.logger.Info("submission approved",
		zap.String("submission_id", submission.ID),
		zap.String("reviewer", reviewer.UserID),
	)
	return submission, nil
}

// Reject resolves a pending submission without publishing anything and
// notifies the submitter, including the reviewer's notes when present.
func (s *ApprovalService) Reject(ctx context.Context, reviewer identity.AdminPrincipal, id string, notes string) (*models.Submission, error) {
	submission, err := s.resolve(ctx, reviewer, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submission.Status = models.SubmissionStatusRejected
	submission.ReviewedBy = reviewer.UserID
	submission.ReviewedAt = &now
	submission.ReviewNotes = notes

	message := fmt.Sprintf("Your %s submission has been rejected", submission.Type.Label())
	if notes != "" {
		message = fmt.Sprintf("%s: %s", message, notes)
	}
	s.metrics.RecordSubmission("rejected")
	s.notifySubmitter(ctx, submission, models.NotificationContentRejected, message)
	s.logger.Info("submission rejected",
		zap.String("submission_id", submission.ID),
		zap.String("reviewer", reviewer.UserID),
	)
	return submission, nil
}

// resolve atomically claims a pending submission for review.
func (s *ApprovalService) resolve(ctx context.Context, reviewer identity.AdminPrincipal, id string) (*models.Submission, error) {
	if !reviewer.Role.HasFullPermissions() {
		return nil, appErrors.ErrForbidden
	}
	submission, err := s.queue.Remove(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no pending submission with that id")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "APPROVALS_UNAVAILABLE", 500, "failed to resolve submission")
	}
	return submission, nil
}

func (s *ApprovalService) notifyReviewers(ctx context.Context, submission models.Submission) {
	err := s.notifier.Notify(ctx, NotificationInput{
		Type:        models.NotificationApprovalRequest,
		Message:     fmt.Sprintf("%s submitted a %s for approval", submission.SubmittedByName, submission.Type.Label()),
		Link:        "/admin/approvals",
		TargetRoles: []models.AdminRole{models.RoleSuperAdmin, models.RoleAdmin},
	})
	if err != nil {
		s.logger.Warn("failed to notify reviewers", zap.String("submission_id", submission.ID), zap.Error(err))
	}
}

func (s *ApprovalService) notifySubmitter(ctx context.Context, submission *models.Submission, t models.NotificationType, message string) {
	err := s.notifier.Notify(ctx, NotificationInput{
		Type:         t,
		Message:      message,
		TargetUserID: submission.SubmittedBy,
	})
	if err != nil {
		s.logger.Warn("failed to notify submitter", zap.String("submission_id", submission.ID), zap.Error(err))
	}
}
