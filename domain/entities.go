package domain

import "time"

// ChannelKind identifies the contact medium an OTP is sent through and
// validated against.
type ChannelKind string

const (
	ChannelEmail  ChannelKind = "email"
	ChannelMobile ChannelKind = "mobile"
)

// Identity represents a registered user. At least one of Email or Mobile is
// set; identities carry no password credential.
type Identity struct {
	ID        uint
	Email     string
	Mobile    string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContact reports whether the identity has at least one contact channel.
func (i *Identity) HasContact() bool {
	return i.Email != "" || i.Mobile != ""
}

// OTPRecord represents one issued one-time code. Records are append-only;
// the only mutation ever applied is the used=false -> used=true transition.
type OTPRecord struct {
	ID         uint
	IdentityID *uint
	Channel    ChannelKind
	Contact    string
	Code       string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
}

// IsExpiredAt reports whether the record is expired at t. The expiry
// instant itself counts as expired.
func (o *OTPRecord) IsExpiredAt(t time.Time) bool {
	return !t.Before(o.ExpiresAt)
}

// IsExpired reports whether the record is expired now.
func (o *OTPRecord) IsExpired() bool {
	return o.IsExpiredAt(time.Now())
}

// Session represents a logged-in session backing a refresh token.
type Session struct {
	ID         string
	IdentityID uint
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// AuthResult represents a successful verification outcome.
type AuthResult struct {
	Identity     *Identity
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	IdentityID uint   `json:"identity_id"`
	SessionID  string `json:"session_id,omitempty"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}
