package mocks

import (
	"context"

	"github.com/you/otpauthsvc/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	CreateFunc     func(ctx context.Context, record *domain.OTPRecord) error
	FindActiveFunc func(ctx context.Context, contact string, channel domain.ChannelKind, code string) ([]*domain.OTPRecord, error)
	ConsumeFunc    func(ctx context.Context, recordID uint) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Create appends a record to the ledger
func (m *MockOTPRepository) Create(ctx context.Context, record *domain.OTPRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	// Default behavior: success
	return nil
}

// FindActive returns unused records matching the lookup key
func (m *MockOTPRepository) FindActive(ctx context.Context, contact string, channel domain.ChannelKind, code string) ([]*domain.OTPRecord, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, contact, channel, code)
	}
	// Default behavior: no matches
	return nil, nil
}

// Consume marks a record used
func (m *MockOTPRepository) Consume(ctx context.Context, recordID uint) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, recordID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPRepository = (*MockOTPRepository)(nil)
