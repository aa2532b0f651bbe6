package mocks

import (
	"context"

	"github.com/you/otpauthsvc/domain"
)

// MockIdentityRepository implements domain.IdentityRepository interface for testing
type MockIdentityRepository struct {
	CreateFunc       func(ctx context.Context, identity *domain.Identity) error
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.Identity, error)
	FindByMobileFunc func(ctx context.Context, mobile string) (*domain.Identity, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Identity, error)
}

// NewMockIdentityRepository creates a new MockIdentityRepository with default behaviors
func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{}
}

// Create creates a new identity
func (m *MockIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an identity by email
func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrIdentityNotFound
}

// FindByMobile finds an identity by mobile number
func (m *MockIdentityRepository) FindByMobile(ctx context.Context, mobile string) (*domain.Identity, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	// Default behavior: not found
	return nil, domain.ErrIdentityNotFound
}

// FindByID finds an identity by ID
func (m *MockIdentityRepository) FindByID(ctx context.Context, id uint) (*domain.Identity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrIdentityNotFound
}

// Compile-time interface compliance verification
var _ domain.IdentityRepository = (*MockIdentityRepository)(nil)
