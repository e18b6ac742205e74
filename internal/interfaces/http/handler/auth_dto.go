package handler

import (
	"strings"

	appregistry "github.com/registry/backend/internal/application/registry"
	"github.com/registry/backend/internal/domain/registry"
)

// TokenRequest is the body of a password login
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *TokenRequest) validate() error {
	errs := registry.FieldErrors{}
	if strings.TrimSpace(r.Username) == "" {
		errs.Add("username", appregistry.ReasonRequired)
	}
	if r.Password == "" {
		errs.Add("password", appregistry.ReasonRequired)
	}
	return errs.OrNil()
}

// RefreshRequest is the body of a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return registry.FieldErrors{"refreshToken": {appregistry.ReasonRequired}}
	}
	return nil
}

// LogoutRequest optionally names a refresh token to revoke with the access token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LogoutResponse is the body of a successful logout
type LogoutResponse struct {
	Detail string `json:"detail"`
}
