package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appidentity "github.com/registry/backend/internal/application/identity"
	"github.com/registry/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Auth context keys
const (
	PrincipalKey  = "principal"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
	BasicPrefix   = "Basic "
)

// Messages for requests rejected before the credentials are checked
const (
	msgNotProvided = "Authentication credentials were not provided."
	msgMalformed   = "Invalid authorization header."
)

// Authenticator checks request credentials
type Authenticator interface {
	AuthenticateBasic(ctx context.Context, username, password string) (*appidentity.Principal, error)
	AuthenticateBearer(ctx context.Context, token string) (*appidentity.Principal, error)
}

// AuthConfig holds configuration for the authentication gate
type AuthConfig struct {
	Authenticator Authenticator
	// BasicEnabled accepts HTTP Basic credentials besides bearer tokens
	BasicEnabled bool
	Logger       *zap.Logger
}

// Authenticate rejects every request without valid credentials with 403.
// On success the principal is stored under PrincipalKey and its username
// is added to the request logger.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		ctx := c.Request.Context()

		var (
			principal *appidentity.Principal
			err       error
		)
		switch {
		case header == "":
			deny(c, msgNotProvided)
			return
		case strings.HasPrefix(header, BearerPrefix):
			token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
			if token == "" {
				deny(c, msgMalformed)
				return
			}
			principal, err = cfg.Authenticator.AuthenticateBearer(ctx, token)
		case strings.HasPrefix(header, BasicPrefix) && cfg.BasicEnabled:
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				deny(c, msgMalformed)
				return
			}
			principal, err = cfg.Authenticator.AuthenticateBasic(ctx, username, password)
		default:
			deny(c, msgMalformed)
			return
		}

		if err != nil {
			if appidentity.IsAuthError(err) {
				log.Warn("Authentication failed",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
				deny(c, err.Error())
				return
			}
			log.Error("Authentication backend failure", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(logger.GinUsernameKey, principal.Username)
		c.Request = c.Request.WithContext(logger.WithUsername(ctx, principal.Username))
		c.Next()
	}
}

func deny(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detail})
}

// GetPrincipal returns the authenticated caller, or nil on unauthenticated routes
func GetPrincipal(c *gin.Context) *appidentity.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(*appidentity.Principal); ok {
			return p
		}
	}
	return nil
}
