package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/you/otpauthsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	identityRepo domain.IdentityRepository
	sessionRepo  domain.SessionRepository
	tokenSvc     domain.TokenService
	otpSvc       domain.OTPService
	accessTTL    time.Duration
	sessionTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	identityRepo domain.IdentityRepository,
	sessionRepo domain.SessionRepository,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	accessTTL time.Duration,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		tokenSvc:     tokenSvc,
		otpSvc:       otpSvc,
		accessTTL:    accessTTL,
		sessionTTL:   sessionTTL,
	}
}

// Register implements domain.AuthService. Identities are password-less;
// proof of contact ownership via OTP is the only credential.
func (s *AuthServiceImpl) Register(ctx context.Context, email, mobile, firstName, lastName string) (*domain.Identity, error) {
	if email == "" && mobile == "" {
		return nil, domain.ErrContactRequired
	}

	if email != "" {
		if _, err := s.identityRepo.FindByEmail(ctx, email); err == nil {
			return nil, domain.ErrEmailTaken
		}
	}
	if mobile != "" {
		if _, err := s.identityRepo.FindByMobile(ctx, mobile); err == nil {
			return nil, domain.ErrMobileTaken
		}
	}

	identity := &domain.Identity{
		Email:     email,
		Mobile:    mobile,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := s.identityRepo.Create(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrMobileTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return identity, nil
}

// Login implements domain.AuthService: resolve the identity by contact and
// issue an OTP over that channel. Earlier outstanding codes for the same
// contact stay valid; each login adds a new candidate.
func (s *AuthServiceImpl) Login(ctx context.Context, email, mobile string) error {
	if email == "" && mobile == "" {
		return domain.ErrContactRequired
	}

	identity, contact, channel, err := s.resolveContact(ctx, email, mobile)
	if err != nil {
		return err
	}

	if _, err := s.otpSvc.Issue(ctx, contact, channel, identity); err != nil {
		return err
	}

	return nil
}

// VerifyOTP implements domain.AuthService: consume a matching code, open a
// session and mint the token pair.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, mobile, code string) (*domain.AuthResult, error) {
	if email == "" && mobile == "" {
		return nil, domain.ErrContactRequired
	}

	contact := email
	channel := domain.ChannelEmail
	if email == "" {
		contact = mobile
		channel = domain.ChannelMobile
	}

	identity, err := s.otpSvc.Verify(ctx, contact, channel, code)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		IdentityID: identity.ID,
		ExpiresAt:  time.Now().Add(s.sessionTTL),
		CreatedAt:  time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(identity.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(identity.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshToken implements domain.AuthService
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	identity, err := s.identityRepo.FindByID(ctx, claims.IdentityID)
	if err != nil {
		return nil, domain.ErrIdentityNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(identity.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, identityID uint) (*domain.Identity, error) {
	return s.identityRepo.FindByID(ctx, identityID)
}

// resolveContact looks up the identity owning the supplied contact. Email
// takes precedence when both are present.
func (s *AuthServiceImpl) resolveContact(ctx context.Context, email, mobile string) (*domain.Identity, string, domain.ChannelKind, error) {
	if email != "" {
		identity, err := s.identityRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, "", "", err
		}
		return identity, email, domain.ChannelEmail, nil
	}

	identity, err := s.identityRepo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, "", "", err
	}
	return identity, mobile, domain.ChannelMobile, nil
}
