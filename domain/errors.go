package domain

import "errors"

// Registration errors
var (
	ErrContactRequired  = errors.New("either email or mobile is required")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrMobileTaken      = errors.New("user with this mobile already exists")
	ErrIdentityNotFound = errors.New("identity not found")
)

// OTP errors
var (
	ErrCodeInvalid     = errors.New("invalid otp code")
	ErrCodeExpired     = errors.New("otp has expired")
	ErrCodeAlreadyUsed = errors.New("otp already used")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)
