package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/otpauthsvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request. Email and mobile are
// individually optional; at least one must be supplied.
type RegisterRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Mobile    string `json:"mobile"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents an OTP request
type LoginRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Mobile string `json:"mobile"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Mobile string `json:"mobile"`
	Code   string `json:"code" binding:"required,len=6"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	identity, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Mobile, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrContactRequired),
			errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrMobileTaken):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered",
		"user": gin.H{
			"id":     identity.ID,
			"email":  identity.Email,
			"mobile": identity.Mobile,
		},
	})
}

// Login handles an OTP request for a registered contact
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	err := h.authSvc.Login(c.Request.Context(), req.Email, req.Mobile)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrContactRequired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		case errors.Is(err, domain.ErrIdentityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User with this contact not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully."})
}

// VerifyOTP handles OTP verification and mints the token pair
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.Mobile, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrContactRequired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		case errors.Is(err, domain.ErrCodeInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP."})
		case errors.Is(err, domain.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP has expired."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"access":  result.AccessToken,
		"refresh": result.RefreshToken,
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired refresh token"})
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"access":  result.AccessToken,
	})
}

// Profile handles getting the authenticated identity's public fields
func (h *AuthHandlers) Profile(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Identity not found in context"})
		return
	}

	identity, err := h.authSvc.GetProfile(c.Request.Context(), identityID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": gin.H{
			"id":         identity.ID,
			"email":      identity.Email,
			"mobile":     identity.Mobile,
			"first_name": identity.FirstName,
			"last_name":  identity.LastName,
		},
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Session ID not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
