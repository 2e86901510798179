package repository

import (
	"context"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// NotificationRepository persists the append-only notification feed.
type NotificationRepository struct {
	store store.Store
}

// NewNotificationRepository creates the repository.
func NewNotificationRepository(s store.Store) *NotificationRepository {
	return &NotificationRepository{store: s}
}

// Append adds a notification to the feed.
func (r *NotificationRepository) Append(ctx context.Context, n models.Notification) error {
	return appendItem(ctx, r.store, store.KeyAdminNotifications, n)
}

// List returns the full feed in append order.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	return readList[models.Notification](ctx, r.store, store.KeyAdminNotifications)
}

// GetByID returns a single notification.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			match := item
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

// MarkRead flips the read flag on the notification with the given id.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	return updateItem(ctx, r.store, store.KeyAdminNotifications,
		func(n models.Notification) bool { return n.ID == id },
		func(n *models.Notification) { n.Read = true },
	)
}
