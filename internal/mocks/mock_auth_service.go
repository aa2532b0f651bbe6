package mocks

import (
	"context"

	"github.com/you/otpauthsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, email, mobile, firstName, lastName string) (*domain.Identity, error)
	LoginFunc        func(ctx context.Context, email, mobile string) error
	VerifyOTPFunc    func(ctx context.Context, email, mobile, code string) (*domain.AuthResult, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
	GetProfileFunc   func(ctx context.Context, identityID uint) (*domain.Identity, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new identity
func (m *MockAuthService) Register(ctx context.Context, email, mobile, firstName, lastName string) (*domain.Identity, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, mobile, firstName, lastName)
	}
	// Default behavior: echo back a created identity
	return &domain.Identity{ID: 1, Email: email, Mobile: mobile, FirstName: firstName, LastName: lastName}, nil
}

// Login requests an OTP for a registered contact
func (m *MockAuthService) Login(ctx context.Context, email, mobile string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, mobile)
	}
	// Default behavior: success
	return nil
}

// VerifyOTP verifies a code and mints tokens
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, mobile, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, mobile, code)
	}
	// Default behavior: invalid code
	return nil, domain.ErrCodeInvalid
}

// RefreshToken refreshes an access token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: invalid token
	return nil, domain.ErrTokenInvalid
}

// Logout deletes the session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// GetProfile returns the identity's profile
func (m *MockAuthService) GetProfile(ctx context.Context, identityID uint) (*domain.Identity, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, identityID)
	}
	// Default behavior: not found
	return nil, domain.ErrIdentityNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
