package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/registry/backend/internal/application/identity"
	"github.com/registry/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles token issuance and the current user
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token godoc
//
//	@Summary	Obtain a token pair
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TokenRequest	true	"Credentials"
//	@Success	200		{object}	auth.TokenPair
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	DetailResponse
//	@Failure	429		{object}	DetailResponse
//	@Router		/auth/token/ [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		h.HandleError(c, err)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, pair)
}

// Refresh godoc
//
//	@Summary	Exchange a refresh token for a new pair
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RefreshRequest	true	"Refresh token"
//	@Success	200		{object}	auth.TokenPair
//	@Failure	403		{object}	DetailResponse
//	@Router		/auth/token/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := req.validate(); err != nil {
		h.HandleError(c, err)
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, pair)
}

// Logout godoc
//
//	@Summary	Revoke the presented access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LogoutRequest	false	"Refresh token to revoke as well"
//	@Success	200		{object}	LogoutResponse
//	@Failure	403		{object}	DetailResponse
//	@Security	BearerAuth
//	@Router		/auth/logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleError(c, appidentity.ErrTokenInvalid)
		return
	}

	var req LogoutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	// Basic principals carry no claims; the service rejects them
	err := h.authService.Logout(c.Request.Context(), appidentity.LogoutInput{
		AccessClaims: principal.Claims,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, LogoutResponse{Detail: "Successfully logged out."})
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	appidentity.UserInfo
//	@Failure	403	{object}	DetailResponse
//	@Security	BearerAuth
//	@Router		/auth/me/ [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleError(c, appidentity.ErrTokenInvalid)
		return
	}

	info, err := h.authService.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, info)
}
