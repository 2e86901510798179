package dto

// CreateMembershipRequest enrolls a member.
type CreateMembershipRequest struct {
	MemberEmail string  `json:"memberEmail" validate:"required,email"`
	Name        string  `json:"name" validate:"required"`
	BatchYear   string  `json:"batchYear"`
	Plan        string  `json:"plan" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

// CreateDonationRequest records a donation.
type CreateDonationRequest struct {
	DonorName string  `json:"donorName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Purpose   string  `json:"purpose"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}
