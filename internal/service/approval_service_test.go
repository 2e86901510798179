package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	"github.com/nsmosa/alumni-portal-api/pkg/config"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

var (
	repPrincipal   = identity.AdminPrincipal{UserID: "rep-1", Username: "rep", Name: "Rep One", Role: models.RoleRepresentativeAdmin}
	adminPrincipal = identity.AdminPrincipal{UserID: "admin-1", Username: "admin", Role: models.RoleAdmin}
	superPrincipal = identity.AdminPrincipal{UserID: "super-1", Username: "superadmin", Role: models.RoleSuperAdmin}
)

type approvalFixture struct {
	approvals     *ApprovalService
	notifications *NotificationService
	content       *ContentService
	contentRepo   *repository.ContentRepository
	queue         *repository.ApprovalRepository
	metrics       *MetricsService
	kv            *store.MemoryStore
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()
	kv := store.NewMemoryStore()
	logger := zap.NewNop()
	metrics := NewMetricsService()
	contentRepo := repository.NewContentRepository(kv)
	queue := repository.NewApprovalRepository(kv)
	notifications := NewNotificationService(repository.NewNotificationRepository(kv), metrics, logger, config.NotificationsConfig{})
	content := NewContentService(contentRepo, logger)
	return &approvalFixture{
		approvals:     NewApprovalService(queue, content, notifications, metrics, logger),
		notifications: notifications,
		content:       content,
		contentRepo:   contentRepo,
		queue:         queue,
		metrics:       metrics,
		kv:            kv,
	}
}

func updatePayload(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(dto.CreateUpdateRequest{Title: "Annual reunion", Content: "Details inside", Date: "2026-01-10"})
	require.NoError(t, err)
	return raw
}

func TestSubmitByRepresentativeQueues(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	result, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", result.Status)
	require.NotNil(t, result.Submission)
	require.Equal(t, models.SubmissionStatusPending, result.Submission.Status)
	require.Equal(t, "rep-1", result.Submission.SubmittedBy)
	require.Equal(t, "Rep One", result.Submission.SubmittedByName)

	// Nothing published yet.
	updates, err := f.content.ListUpdates(ctx)
	require.NoError(t, err)
	require.Empty(t, updates)

	// Reviewers are notified, the submitter is not.
	forAdmin, err := f.notifications.ListFor(ctx, adminPrincipal)
	require.NoError(t, err)
	require.Len(t, forAdmin, 1)
	require.Equal(t, models.NotificationApprovalRequest, forAdmin[0].Type)
	require.Equal(t, "/admin/approvals", forAdmin[0].Link)

	forRep, err := f.notifications.ListFor(ctx, repPrincipal)
	require.NoError(t, err)
	require.Empty(t, forRep)
}

func TestSubmitByAdminPublishesDirectly(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	result, err := f.approvals.Submit(ctx, adminPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)
	require.Equal(t, "published", result.Status)
	require.Nil(t, result.Submission)

	updates, err := f.content.ListUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, "Annual reunion", updates[0].Title)
	require.NotEmpty(t, updates[0].ID)

	pending, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSubmitWithoutResolvedIdentity(t *testing.T) {
	f := newApprovalFixture(t)

	_, err := f.approvals.Submit(context.Background(), identity.AdminPrincipal{Role: models.RoleRepresentativeAdmin}, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestSubmitRejectsBadPayload(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	_, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: "blog_post", Payload: updatePayload(t)})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	missingTitle, _ := json.Marshal(dto.CreateUpdateRequest{Content: "body", Date: "2026-01-10"})
	_, err = f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: missingTitle})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	_, err = f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestApprovePublishesAndNotifiesSubmitter(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	submitted, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)

	approved, err := f.approvals.Approve(ctx, superPrincipal, submitted.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusApproved, approved.Status)
	require.Equal(t, "super-1", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)

	updates, err := f.content.ListUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 1)

	pending, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	forRep, err := f.notifications.ListFor(ctx, repPrincipal)
	require.NoError(t, err)
	require.Len(t, forRep, 1)
	require.Equal(t, models.NotificationContentApproved, forRep[0].Type)
	require.Equal(t, "rep-1", forRep[0].TargetUserID)
}

func TestApproveTwiceReportsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	submitted, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)

	_, err = f.approvals.Approve(ctx, adminPrincipal, submitted.Submission.ID)
	require.NoError(t, err)

	_, err = f.approvals.Approve(ctx, adminPrincipal, submitted.Submission.ID)
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)

	// The first approval's publication is the only one.
	updates, err := f.content.ListUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 1)
}

func TestApproveRequiresFullPermissions(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	submitted, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)

	_, err = f.approvals.Approve(ctx, repPrincipal, submitted.Submission.ID)
	require.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)

	pending, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestRejectPublishesNothing(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	submitted, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)

	rejected, err := f.approvals.Reject(ctx, adminPrincipal, submitted.Submission.ID, "needs a better photo")
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusRejected, rejected.Status)
	require.Equal(t, "needs a better photo", rejected.ReviewNotes)

	updates, err := f.content.ListUpdates(ctx)
	require.NoError(t, err)
	require.Empty(t, updates)

	pending, err := f.queue.List(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	forRep, err := f.notifications.ListFor(ctx, repPrincipal)
	require.NoError(t, err)
	require.Len(t, forRep, 1)
	require.Equal(t, models.NotificationContentRejected, forRep[0].Type)
	require.Contains(t, forRep[0].Message, "needs a better photo")
}

func TestListPendingVisibility(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)
	otherRep := identity.AdminPrincipal{UserID: "rep-2", Username: "rep2", Role: models.RoleRepresentativeAdmin}

	_, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: updatePayload(t)})
	require.NoError(t, err)
	_, err = f.approvals.Submit(ctx, otherRep, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: updatePayload(t)})
	require.NoError(t, err)

	all, err := f.approvals.ListPending(ctx, adminPrincipal)
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := f.approvals.ListPending(ctx, repPrincipal)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "rep-1", own[0].SubmittedBy)
}

func TestApproveContentOverrideUpdatesHero(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	heroValue, err := json.Marshal(models.HeroContent{Title: "Welcome home", Quote: "Once a student, always family"})
	require.NoError(t, err)
	payload, err := json.Marshal(models.ContentOverride{Key: store.KeyHeroContent, Value: string(heroValue)})
	require.NoError(t, err)

	submitted, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeContent,
		Payload: payload,
	})
	require.NoError(t, err)

	_, err = f.approvals.Approve(ctx, superPrincipal, submitted.Submission.ID)
	require.NoError(t, err)

	hero, err := f.content.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome home", hero.Title)
	require.Equal(t, "Once a student, always family", hero.Quote)
}

func TestWorkflowOutcomesAreCounted(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture(t)

	queued, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: updatePayload(t)})
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("queued")))

	_, err = f.approvals.Submit(ctx, adminPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: updatePayload(t)})
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("published")))

	_, err = f.approvals.Approve(ctx, adminPrincipal, queued.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("approved")))

	rejected, err := f.approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{Type: models.SubmissionTypeUpdate, Payload: updatePayload(t)})
	require.NoError(t, err)
	_, err = f.approvals.Reject(ctx, adminPrincipal, rejected.Submission.ID, "")
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("rejected")))

	// Reviewer and submitter notifications were delivered along the way.
	require.Greater(t, testutil.ToFloat64(f.metrics.notifications), 0.0)
}

type stubPublisher struct {
	publishErr error
}

func (p *stubPublisher) PrepareSubmissionPayload(t models.SubmissionType, payload json.RawMessage) (json.RawMessage, error) {
	return payload, nil
}

func (p *stubPublisher) PublishSubmission(ctx context.Context, t models.SubmissionType, payload json.RawMessage) error {
	return p.publishErr
}

func TestApprovePublishFailureRequeues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	logger := zap.NewNop()
	metrics := NewMetricsService()
	queue := repository.NewApprovalRepository(kv)
	notifications := NewNotificationService(repository.NewNotificationRepository(kv), metrics, logger, config.NotificationsConfig{})
	publisher := &stubPublisher{}
	approvals := NewApprovalService(queue, publisher, notifications, metrics, logger)

	submitted, err := approvals.Submit(ctx, repPrincipal, dto.SubmitContentRequest{
		Type:    models.SubmissionTypeUpdate,
		Payload: updatePayload(t),
	})
	require.NoError(t, err)

	publisher.publishErr = errors.New("store unavailable")
	_, err = approvals.Approve(ctx, adminPrincipal, submitted.Submission.ID)
	require.Error(t, err)

	// The submission is back in the queue and can be retried.
	pending, err := queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	publisher.publishErr = nil
	_, err = approvals.Approve(ctx, adminPrincipal, submitted.Submission.ID)
	require.NoError(t, err)
}
