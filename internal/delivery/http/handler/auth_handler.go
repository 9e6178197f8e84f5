package handler

import (
	"net/http"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/usecase/auth"
	"github.com/gdugdh24/roommate-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokenUseCase   *auth.TokenUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewAuthHandler(tokenUseCase *auth.TokenUseCase, profileUseCase *profile.ProfileUseCase) *AuthHandler {
	return &AuthHandler{
		tokenUseCase:   tokenUseCase,
		profileUseCase: profileUseCase,
	}
}

// AuthResponse is the response structure
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expiresAt"`
	Profile   *domain.Profile `json:"profile,omitempty"`
}

// Register creates a profile and signs a token for it
// @Summary Register
// @Description Create a roommate profile and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		domainError(c, err, "failed to create profile")
		return
	}

	token, err := h.tokenUseCase.IssueToken(created.ID)
	if err != nil {
		domainError(c, err, "failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
		Profile:   created,
	})
}

// Refresh issues a fresh token for the authenticated user
// @Summary Refresh token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	token, err := h.tokenUseCase.IssueToken(userID)
	if err != nil {
		domainError(c, err, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
	})
}

// Me returns current user info
// @Summary Get current user
// @Description Get authenticated user id
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
	})
}
