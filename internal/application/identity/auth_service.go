package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/registry/backend/internal/domain/identity"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/auth"
	"github.com/registry/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Authentication failures. The HTTP layer answers every one of them with 403.
var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username/password.")
	ErrAccountLocked      = shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Try again later.")
	ErrAccountInactive    = shared.NewDomainError("ACCOUNT_INACTIVE", "User inactive or deleted.")
	ErrTokenExpired       = shared.NewDomainError("TOKEN_EXPIRED", "Token has expired.")
	ErrTokenInvalid       = shared.NewDomainError("TOKEN_INVALID", "Token is invalid.")
	ErrTokenRevoked       = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked.")
	ErrTokenMaxRefresh    = shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Log in again.")
)

// IsAuthError reports whether err is one of the authentication failures above
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrInvalidCredentials, ErrAccountLocked, ErrAccountInactive,
		ErrTokenExpired, ErrTokenInvalid, ErrTokenRevoked, ErrTokenMaxRefresh,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService authenticates API callers and manages their tokens
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		config:     config,
		logger:     logger,
	}
}

// Login checks a username and password and issues a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*auth.TokenPair, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "login")
	defer span.End()

	user, err := s.checkPassword(ctx, input.Username, input.Password)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.Subject{UserID: user.ID, Username: user.Username})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, err
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// The login itself succeeded
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))
	return pair, nil
}

// AuthenticateBasic checks HTTP Basic credentials
func (s *AuthService) AuthenticateBasic(ctx context.Context, username, password string) (*Principal, error) {
	user, err := s.checkPassword(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user.FailedAttempts > 0 {
		user.FailedAttempts = 0
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.Error("Failed to reset failed attempts", zap.Error(err))
		}
	}
	return &Principal{UserID: user.ID, Username: user.Username, Method: MethodBasic}, nil
}

// AuthenticateBearer validates an access token and loads its user
func (s *AuthService) AuthenticateBearer(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.jwtService.ValidateAccessToken(token)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if err := s.checkRevoked(ctx, claims.ID); err != nil {
		return nil, err
	}

	user, err := s.activeUser(ctx, claims)
	if err != nil {
		return nil, err
	}
	return &Principal{UserID: user.ID, Username: user.Username, Method: MethodBearer, Claims: claims}, nil
}

// Refresh exchanges a refresh token for a new pair. The presented refresh token is revoked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "refresh")
	defer span.End()

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}
	if err := s.checkRevoked(ctx, claims.ID); err != nil {
		return nil, err
	}
	user, err := s.activeUser(ctx, claims)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	pair, _, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke rotated refresh token", zap.Error(err))
	}

	s.logger.Info("Token refreshed", zap.String("user_id", user.ID.String()))
	return pair, nil
}

// Logout revokes the access token of the current request and, when given, its refresh token
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessClaims == nil {
		return ErrTokenInvalid
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.AccessClaims.ID, input.AccessClaims.GetRemainingTTL()); err != nil {
		return err
	}

	if input.RefreshToken != "" {
		refresh, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		if err == nil && refresh.UserID == input.AccessClaims.UserID {
			if err := s.blacklist.AddToBlacklist(ctx, refresh.ID, refresh.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", input.AccessClaims.UserID))
	return nil
}

// Me returns the user behind an authenticated request
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// EnsureBootstrapUser creates the configured user when it does not exist yet.
// It reports whether a user was created.
func (s *AuthService) EnsureBootstrapUser(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	user, err := identity.NewUser(username, password)
	if err != nil {
		return false, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Another instance created it first
			return false, nil
		}
		return false, err
	}

	s.logger.Info("Bootstrap user created", zap.String("username", user.Username))
	return true, nil
}

// checkPassword finds the user and verifies the password, counting failures toward a lock
func (s *AuthService) checkPassword(ctx context.Context, username, password string) (*identity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Unknown username", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("username", user.Username))
			return nil, ErrAccountLocked
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", user.Username))
		return nil, ErrAccountInactive
	}

	if !user.VerifyPassword(password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}
		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("username", user.Username),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, ErrAccountLocked
		}
		s.logger.Warn("Invalid password attempt",
			zap.String("username", user.Username),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) checkRevoked(ctx context.Context, jti string) error {
	revoked, err := s.blacklist.IsBlacklisted(ctx, jti)
	if err != nil {
		return err
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

func (s *AuthService) activeUser(ctx context.Context, claims *auth.Claims) (*identity.User, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrAccountInactive
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, ErrAccountInactive
	}
	return user, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return ErrTokenExpired
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return ErrTokenMaxRefresh
	default:
		return ErrTokenInvalid
	}
}
