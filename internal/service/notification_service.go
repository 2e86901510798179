package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/pkg/config"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/jobs"
)

// notificationFeed is the persistence surface the service needs.
type notificationFeed interface {
	Append(ctx context.Context, n models.Notification) error
	List(ctx context.Context) ([]models.Notification, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
}

// deliveryRecorder counts feed entries that reached the store.
type deliveryRecorder interface {
	RecordNotification()
}

// NotificationInput describes a notification to deliver. TargetUserID
// takes precedence: when set, role targeting is dropped.
type NotificationInput struct {
	Type         models.NotificationType
	Message      string
	Link         string
	TargetRoles  []models.AdminRole
	TargetUserID string
}

// NotificationService appends to and reads the admin notification feed.
// Delivery is synchronous by default; with async delivery enabled the
// append rides a background worker queue so notifying never delays the
// request that triggered it.
type NotificationService struct {
	feed    notificationFeed
	metrics deliveryRecorder
	logger  *zap.Logger
	queue   *jobs.Queue
}

// NewNotificationService creates the service. When cfg.AsyncDelivery is
// set the returned service owns a worker queue; call Start and Stop
// around its lifetime.
func NewNotificationService(feed notificationFeed, metrics deliveryRecorder, logger *zap.Logger, cfg config.NotificationsConfig) *NotificationService {
	s := &NotificationService{feed: feed, metrics: metrics, logger: logger}
	if cfg.AsyncDelivery {
		s.queue = jobs.NewQueue("notifications", s.deliver, jobs.QueueConfig{
			Workers:    cfg.Workers,
			BufferSize: cfg.BufferSize,
			Logger:     logger,
		})
	}
	return s
}

// Start launches the delivery workers when async delivery is enabled.
func (s *NotificationService) Start(ctx context.Context) {
	if s.queue != nil {
		s.queue.Start(ctx)
	}
}

// Stop drains the delivery workers.
func (s *NotificationService) Stop() {
	if s.queue != nil {
		s.queue.Stop()
	}
}

// Notify appends a feed entry built from input. Enqueue failures fall
// back to a synchronous append so a notification is never silently lost.
func (s *NotificationService) Notify(ctx context.Context, input NotificationInput) error {
	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Message:   input.Message,
		Link:      input.Link,
		CreatedAt: time.Now().UTC(),
	}
	if input.TargetUserID != "" {
		n.TargetUserID = input.TargetUserID
	} else {
		n.TargetRoles = input.TargetRoles
	}

	if s.queue != nil {
		err := s.queue.Enqueue(jobs.Job{ID: n.ID, Type: string(n.Type), Payload: n})
		if err == nil {
			return nil
		}
		s.logger.Warn("notification enqueue failed, delivering inline", zap.Error(err))
	}
	if err := s.feed.Append(ctx, n); err != nil {
		return appErrors.Wrap(err, "NOTIFY_FAILED", 500, "failed to record notification")
	}
	s.metrics.RecordNotification()
	return nil
}

func (s *NotificationService) deliver(ctx context.Context, job jobs.Job) error {
	n, ok := job.Payload.(models.Notification)
	if !ok {
		s.logger.Error("notification job carried unexpected payload", zap.String("job_id", job.ID))
		return nil
	}
	if err := s.feed.Append(ctx, n); err != nil {
		return err
	}
	s.metrics.RecordNotification()
	return nil
}

// ListFor returns the feed entries visible to the viewer, newest first.
func (s *NotificationService) ListFor(ctx context.Context, viewer identity.AdminPrincipal) ([]models.Notification, error) {
	all, err := s.feed.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "NOTIFICATIONS_UNAVAILABLE", 500, "failed to load notifications")
	}
	visible := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(viewer.UserID, viewer.Role) {
			visible = append(visible, n)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible, nil
}

// UnreadCount returns how many visible entries are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, viewer identity.AdminPrincipal) (int, error) {
	visible, err := s.ListFor(ctx, viewer)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range visible {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips the read flag on a notification the viewer can see.
func (s *NotificationService) MarkRead(ctx context.Context, viewer identity.AdminPrincipal, id string) (*models.Notification, error) {
	existing, err := s.feed.GetByID(ctx, id)
	if err != nil {
		return nil, notificationError(err)
	}
	if !existing.VisibleTo(viewer.UserID, viewer.Role) {
		return nil, appErrors.ErrNotFound
	}
	updated, err := s.feed.MarkRead(ctx, id)
	if err != nil {
		return nil, notificationError(err)
	}
	return updated, nil
}

func notificationError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.ErrNotFound
	}
	return appErrors.Wrap(err, "NOTIFICATIONS_UNAVAILABLE", 500, "failed to load notifications")
}
