package auth

import (
	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/internal/users"
	"github.com/velora-labs/storefront-backend/pkg/enums"
)

// LoginRequest carries the credentials for both customer and admin sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest contains the payload for customer self-registration.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// LoginResponse is returned to customers after a successful sign-in.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

// AdminLoginResponse mirrors the shape the admin dashboard expects.
type AdminLoginResponse struct {
	Token    string     `json:"token"`
	UserID   uuid.UUID  `json:"user_id"`
	UserRole enums.Role `json:"user_role"`
}

// RegisterResponse returns the created account with a session token so the
// storefront can sign the customer in immediately.
type RegisterResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
