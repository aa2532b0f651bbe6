package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/you/otpauthsvc/domain"
)

// OTPServiceImpl implements domain.OTPService over the OTP ledger
type OTPServiceImpl struct {
	otpRepo         domain.OTPRepository
	identityRepo    domain.IdentityRepository
	notificationSvc domain.NotificationService
	config          OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new ledger-backed OTP service
func NewOTPService(otpRepo domain.OTPRepository, identityRepo domain.IdentityRepository, notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		otpRepo:         otpRepo,
		identityRepo:    identityRepo,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Issue implements domain.OTPService. The record is persisted first and
// returned regardless of delivery outcome; delivery failures are logged,
// never surfaced, so a transient outbound outage cannot block issuance.
func (s *OTPServiceImpl) Issue(ctx context.Context, contact string, channel domain.ChannelKind, identity *domain.Identity) (*domain.OTPRecord, error) {
	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	record := &domain.OTPRecord{
		Channel:   channel,
		Contact:   contact,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}
	if identity != nil {
		identityID := identity.ID
		record.IdentityID = &identityID
	}

	if err := s.otpRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist OTP record: %w", err)
	}

	s.deliver(contact, channel, code)

	return record, nil
}

// deliver sends the code over the requested channel, best-effort.
func (s *OTPServiceImpl) deliver(contact string, channel domain.ChannelKind, code string) {
	var err error
	switch channel {
	case domain.ChannelEmail:
		body := fmt.Sprintf("Your one-time password (OTP) is: %s. It will expire in %d minutes.", code, int(s.config.TTL.Minutes()))
		err = s.notificationSvc.SendEmail(contact, "Your OTP Code", body)
	default:
		message := fmt.Sprintf("Your OTP is %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
		err = s.notificationSvc.SendSMS(contact, message)
	}
	if err != nil {
		log.Printf("OTP_DELIVERY_FAILED: channel=%s contact=%s error=%v timestamp=%s",
			channel, contact, err, time.Now().UTC().Format(time.RFC3339))
	}
}

// Verify implements domain.OTPService. A missing match and an
// already-consumed match produce the same ErrCodeInvalid, so a caller
// cannot tell a typo from a replay. An expired match is reported as
// ErrCodeExpired and left unused.
func (s *OTPServiceImpl) Verify(ctx context.Context, contact string, channel domain.ChannelKind, code string) (*domain.Identity, error) {
	records, err := s.otpRepo.FindActive(ctx, contact, channel, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query OTP ledger: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrCodeInvalid
	}

	// FindActive orders newest-first
	candidate := records[0]
	if candidate.IsExpired() {
		return nil, domain.ErrCodeExpired
	}

	if err := s.otpRepo.Consume(ctx, candidate.ID); err != nil {
		if errors.Is(err, domain.ErrCodeAlreadyUsed) {
			// Race loser: indistinguishable from a wrong code
			return nil, domain.ErrCodeInvalid
		}
		return nil, fmt.Errorf("failed to consume OTP record: %w", err)
	}

	if candidate.IdentityID == nil {
		return nil, domain.ErrIdentityNotFound
	}

	identity, err := s.identityRepo.FindByID(ctx, *candidate.IdentityID)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// generateSecureCode generates a cryptographically secure OTP code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
