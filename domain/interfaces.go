package domain

import "context"

// IdentityRepository defines identity data access operations. Email and
// mobile uniqueness is enforced by the backing store.
type IdentityRepository interface {
	Create(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByMobile(ctx context.Context, mobile string) (*Identity, error)
	FindByID(ctx context.Context, id uint) (*Identity, error)
}

// OTPRepository defines the one-time code ledger. Records are append-only;
// Consume is the only permitted mutation and must be atomic: of two
// concurrent consumers of the same record, exactly one succeeds and the
// other gets ErrCodeAlreadyUsed.
type OTPRepository interface {
	Create(ctx context.Context, record *OTPRecord) error
	FindActive(ctx context.Context, contact string, channel ChannelKind, code string) ([]*OTPRecord, error)
	Consume(ctx context.Context, recordID uint) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// OTPService defines OTP issuance and verification
type OTPService interface {
	Issue(ctx context.Context, contact string, channel ChannelKind, identity *Identity) (*OTPRecord, error)
	Verify(ctx context.Context, contact string, channel ChannelKind, code string) (*Identity, error)
}

// AuthService defines the public authentication flows
type AuthService interface {
	Register(ctx context.Context, email, mobile, firstName, lastName string) (*Identity, error)
	Login(ctx context.Context, email, mobile string) error
	VerifyOTP(ctx context.Context, email, mobile, code string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, identityID uint) (*Identity, error)
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(identityID uint, sessionID string) (string, error)
	GenerateRefreshToken(identityID uint, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}
