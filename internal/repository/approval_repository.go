package repository

import (
	"context"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// ApprovalRepository persists the pending-approval queue.
type ApprovalRepository struct {
	store store.Store
}

// NewApprovalRepository creates the repository.
func NewApprovalRepository(s store.Store) *ApprovalRepository {
	return &ApprovalRepository{store: s}
}

// Append adds a submission to the pending list.
func (r *ApprovalRepository) Append(ctx context.Context, submission models.Submission) error {
	return appendItem(ctx, r.store, store.KeyPendingApprovals, submission)
}

// List returns every pending submission in append order.
func (r *ApprovalRepository) List(ctx context.Context) ([]models.Submission, error) {
	return readList[models.Submission](ctx, r.store, store.KeyPendingApprovals)
}

// GetByID returns the pending submission with the given id.
func (r *ApprovalRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
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

// Remove takes the submission with the given id out of the pending list
// and returns it. The lookup and removal happen in one atomic update, so
// two concurrent reviewers cannot both resolve the same submission.
func (r *ApprovalRepository) Remove(ctx context.Context, id string) (*models.Submission, error) {
	return removeItem(ctx, r.store, store.KeyPendingApprovals, func(s models.Submission) bool {
		return s.ID == id
	})
}
