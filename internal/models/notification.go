package models

import "time"

// NotificationType enumerates admin notification kinds.
type NotificationType string

const (
	NotificationApprovalRequest NotificationType = "approval_request"
	NotificationUserAdded       NotificationType = "user_added"
	NotificationContentApproved NotificationType = "content_approved"
	NotificationContentRejected NotificationType = "content_rejected"
)

// Notification is an append-only feed entry. Targeting is either by role
// or by user; when both are supplied the user target wins and role
// targeting is dropped at creation time.
type Notification struct {
	ID           string           `json:"id"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
	Link         string           `json:"link,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	Read         bool             `json:"read"`
	TargetRoles  []AdminRole      `json:"targetRoles,omitempty"`
	TargetUserID string           `json:"targetUserId,omitempty"`
}

// VisibleTo reports whether the notification should reach the given
// viewer. User targeting takes precedence over role targeting; an entry
// with neither is visible to everyone.
func (n *Notification) VisibleTo(userID string, role AdminRole) bool {
	if n.TargetUserID != "" {
		return n.TargetUserID == userID
	}
	if len(n.TargetRoles) > 0 {
		for _, r := range n.TargetRoles {
			if r == role {
				return true
			}
		}
		return false
	}
	return true
}
