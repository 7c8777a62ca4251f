package identity

import (
	"strings"
	"time"

	"github.com/fruitsales/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// User represents a back-office operator account
type User struct {
	shared.BaseEntity
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 50 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 50 characters")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword verifies the old password and replaces it with a new one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	u.PasswordHash = hash
	u.Touch()
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.Touch()
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

func hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}
	return string(hash), nil
}
