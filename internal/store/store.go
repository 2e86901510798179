// Package store provides the key-value persistence layer backing every
// content list and workflow queue in the portal. Each key holds one
// JSON-encoded array (or a scalar override string); a missing key reads as
// absent and is treated as an empty list by the typed repositories.
package store

import "context"

// Fixed storage keys. These form the stable persistence contract shared
// with earlier generations of the portal; renaming one orphans its data.
const (
	KeyPendingApprovals   = "nsm_pending_approvals"
	KeyAdminNotifications = "nsm_admin_notifications"
	KeyAdminUsers         = "nsm_admin_users"
	KeyUpdates            = "nsm_updates"
	KeyEventPhotos        = "nsm_event_photos"
	KeyGalleryPhotos      = "nsm_gallery_photos"
	KeyChapterPhotos      = "nsm_chapter_photos"
	KeyReunionPhotos      = "nsm_reunion_photos"
	KeyUsers              = "nsm_users"
	KeyDonations          = "nsm_donations"
	KeyMemberships        = "nsm_memberships"

	// Scalar override keys.
	KeyHeroTitle   = "nsm_hero_title"
	KeyHeroQuote   = "nsm_hero_quote"
	KeyHeroContent = "nsm_hero_content"
)

// Store is the minimal contract every backend implements. Update runs the
// mutate callback atomically with respect to other writers of the same
// key, which is what prevents two concurrent read-modify-write cycles
// from silently discarding each other's changes.
type Store interface {
	// Get returns the raw value under key, reporting whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value under key unconditionally.
	Set(ctx context.Context, key string, value []byte) error
	// Update atomically applies mutate to the current value (nil when the
	// key is absent) and persists the result. Returning an error from
	// mutate aborts the write.
	Update(ctx context.Context, key string, mutate func(current []byte) ([]byte, error)) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
