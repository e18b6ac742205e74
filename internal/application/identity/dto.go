package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/registry/backend/internal/domain/identity"
	"github.com/registry/backend/internal/infrastructure/auth"
)

// Authentication methods accepted by the gate
const (
	MethodBasic  = "basic"
	MethodBearer = "bearer"
)

// LoginInput contains the input for a password login
type LoginInput struct {
	Username string
	Password string
}

// LogoutInput identifies the tokens to revoke
type LogoutInput struct {
	AccessClaims *auth.Claims
	RefreshToken string // optional, revoked too when valid
}

// Principal is the caller an authenticated request runs as
type Principal struct {
	UserID   uuid.UUID
	Username string
	Method   string
	// Claims is set for bearer authentication only
	Claims *auth.Claims
}

// UserInfo describes an API user
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// ToUserInfo converts a domain user
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
	}
}
