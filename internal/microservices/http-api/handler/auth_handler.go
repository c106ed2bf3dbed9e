package handler

import (
	"log/slog"
	"net/http"
	"time"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService    service.AuthService
	accessTokenTTL time.Duration
	secureCookies  bool
}

func NewAuthHandler(authService service.AuthService, accessTokenTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accessTokenTTL: accessTokenTTL,
		secureCookies:  secureCookies,
	}
}

// RegisterRoutes registers the public authentication routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.LoginForm)
	router.POST("/", h.Login)
	router.GET("/signup/", h.SignupForm)
	router.POST("/signup/", h.Register)
	router.GET("/logout/", h.Logout)
	router.POST("/logout/", h.Logout)
	router.POST("/token/refresh/", h.RefreshToken)
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LoginForm())
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SignupForm())
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAccessCookie(c, accessToken)
	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		UserID:       user.ID,
		Username:     user.Username,
		ExpiresIn:    int64(h.accessTokenTTL.Seconds()),
	})
}

// RefreshToken rotates both tokens.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	newAccessToken, newRefreshToken, err := h.authService.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAccessCookie(c, newAccessToken)
	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(h.accessTokenTTL.Seconds()),
	})
}

// Logout revokes the refresh token if one is given and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// an empty body is a valid logout
	_ = c.ShouldBind(&req)

	if req.RefreshToken != "" {
		if err := h.authService.RevokeToken(c.Request.Context(), req.RefreshToken); err != nil {
			// always succeed to avoid token fishing
			slog.WarnContext(c.Request.Context(), "refresh_token_revoke_failed", "error", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookies, true)

	if !middleware.WantsJSON(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setAccessCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, int(h.accessTokenTTL.Seconds()), "/", "", h.secureCookies, true)
}
