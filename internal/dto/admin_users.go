package dto

// AddRepresentativeAdminRequest creates a new representative admin.
type AddRepresentativeAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}
