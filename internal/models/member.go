package models

import "time"

// Member is the alumni profile document kept by the identity collaborator.
// A record must pre-exist (seeded by the association) before the matching
// email may register; registration stamps the UID.
type Member struct {
	UID              string     `json:"uid,omitempty"`
	Email            string     `json:"email"`
	FullName         string     `json:"fullName,omitempty"`
	BatchYear        string     `json:"batchYear,omitempty"`
	PhoneNumber      string     `json:"phoneNumber,omitempty"`
	PasswordHash     string     `json:"passwordHash,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	IsExistingMember bool       `json:"isExistingMember"`
	MemberID         string     `json:"memberId,omitempty"`
	RegisteredAt     *time.Time `json:"registeredAt,omitempty"`
}

// Membership records a paid membership enrollment.
type Membership struct {
	ID          string    `json:"id"`
	MemberEmail string    `json:"memberEmail"`
	Name        string    `json:"name"`
	BatchYear   string    `json:"batchYear,omitempty"`
	Plan        string    `json:"plan"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Donation records a one-off contribution.
type Donation struct {
	ID        string    `json:"id"`
	DonorName string    `json:"donorName"`
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose,omitempty"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
