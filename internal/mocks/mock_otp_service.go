package mocks

import (
	"context"

	"github.com/you/otpauthsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, contact string, channel domain.ChannelKind, identity *domain.Identity) (*domain.OTPRecord, error)
	VerifyFunc func(ctx context.Context, contact string, channel domain.ChannelKind, code string) (*domain.Identity, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues an OTP record
func (m *MockOTPService) Issue(ctx context.Context, contact string, channel domain.ChannelKind, identity *domain.Identity) (*domain.OTPRecord, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, contact, channel, identity)
	}
	// Default behavior: minimal issued record
	return &domain.OTPRecord{Contact: contact, Channel: channel, Code: "123456"}, nil
}

// Verify verifies a submitted code
func (m *MockOTPService) Verify(ctx context.Context, contact string, channel domain.ChannelKind, code string) (*domain.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, contact, channel, code)
	}
	// Default behavior: no matching code
	return nil, domain.ErrCodeInvalid
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
