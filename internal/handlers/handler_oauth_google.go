package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
	"github.com/taxtrackng/taxtrack_backend/internal/middleware"
)

// GoogleOAuthHandler handles the Google sign-in code exchange.
type GoogleOAuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, os portssvc.GoogleOAuthSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		userService:  us,
		tokenService: ts,
		oauthService: os,
	}
}

// googleExchangeRequest carries the authorization code from the frontend.
type googleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCode godoc
// @Summary Google sign-in
// @Description Exchanges a Google OAuth authorization code for an application JWT, creating the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body googleExchangeRequest true "Authorization Code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	var req googleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	userInfo, err := h.oauthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch user info"})
		return
	}

	user, err := h.userService.CreateOAuthUser(ctx, userInfo.Name, userInfo.Email, string(domain.ProviderGoogle), userInfo.ID, userInfo.VerifiedEmail)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}
