package identity

import (
	"time"

	"github.com/fruitsales/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest carries the login form fields
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse is the API representation of an operator account
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	TokenResponse
	User UserResponse `json:"user"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
	}
}
