package dto

import (
	"time"

	"github.com/spec-kit/repairhub/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phoneNumber"`
	RoomNumber  *string `json:"roomNumber"`
	Block       *string `json:"block"`
}

// LoginRequest payload. Role is accepted for client compatibility but not
// cross-checked against the stored role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// ProfileUpdateRequest carries partial profile changes; absent fields are
// left unchanged.
type ProfileUpdateRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	RoomNumber  *string `json:"roomNumber"`
	Block       *string `json:"block"`
}

// StaffUpdateRequest carries partial staff record changes (warden only).
type StaffUpdateRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role"`
}

// UserResponse is the sanitized user projection; the password hash is never
// serialized.
type UserResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	PhoneNumber *string     `json:"phoneNumber,omitempty"`
	RoomNumber  *string     `json:"roomNumber,omitempty"`
	Block       *string     `json:"block,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
