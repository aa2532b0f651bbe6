package repositories

import (
	"context"
	"time"

	"github.com/you/otpauthsvc/domain"
	"gorm.io/gorm"
)

// OTPRepositoryImpl implements domain.OTPRepository using GORM
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// DBOTP represents the database model for an OTP record. Rows are never
// deleted; consumed codes stay behind as an audit trail.
type DBOTP struct {
	ID         uint   `gorm:"primaryKey"`
	IdentityID *uint  `gorm:"index"`
	Channel    string `gorm:"index;size:10"`
	Contact    string `gorm:"index;size:255"`
	Code       string `gorm:"size:6"`
	CreatedAt  time.Time `gorm:"index"`
	ExpiresAt  time.Time
	Used       bool `gorm:"default:false"`
}

// TableName returns the table name for GORM
func (DBOTP) TableName() string {
	return "otps"
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

// Create implements domain.OTPRepository (append-only insert)
func (r *OTPRepositoryImpl) Create(ctx context.Context, record *domain.OTPRecord) error {
	dbOTP := r.domainToDB(record)
	if err := r.db.WithContext(ctx).Create(dbOTP).Error; err != nil {
		return err
	}
	record.ID = dbOTP.ID
	record.CreatedAt = dbOTP.CreatedAt
	return nil
}

// FindActive implements domain.OTPRepository. It returns unused records
// matching (contact, channel, code) newest-first; expiry is not filtered
// here, the verifier checks it on the selected candidate. Records sharing
// a creation timestamp are ordered by descending id so the latest insert
// wins the tie.
func (r *OTPRepositoryImpl) FindActive(ctx context.Context, contact string, channel domain.ChannelKind, code string) ([]*domain.OTPRecord, error) {
	var dbOTPs []DBOTP
	err := r.db.WithContext(ctx).
		Where("contact = ? AND channel = ? AND code = ? AND used = ?", contact, string(channel), code, false).
		Order("created_at DESC, id DESC").
		Find(&dbOTPs).Error
	if err != nil {
		return nil, err
	}

	records := make([]*domain.OTPRecord, 0, len(dbOTPs))
	for i := range dbOTPs {
		records = append(records, r.dbToDomain(&dbOTPs[i]))
	}
	return records, nil
}

// Consume implements domain.OTPRepository. The used flag is flipped with a
// single conditional update guarded by used=false, so of two racing
// consumers exactly one sees a row affected; the loser gets
// ErrCodeAlreadyUsed.
func (r *OTPRepositoryImpl) Consume(ctx context.Context, recordID uint) error {
	result := r.db.WithContext(ctx).
		Model(&DBOTP{}).
		Where("id = ? AND used = ?", recordID, false).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCodeAlreadyUsed
	}
	return nil
}

// domainToDB converts a domain OTP record to a database record
func (r *OTPRepositoryImpl) domainToDB(record *domain.OTPRecord) *DBOTP {
	return &DBOTP{
		ID:         record.ID,
		IdentityID: record.IdentityID,
		Channel:    string(record.Channel),
		Contact:    record.Contact,
		Code:       record.Code,
		CreatedAt:  record.CreatedAt,
		ExpiresAt:  record.ExpiresAt,
		Used:       record.Used,
	}
}

// dbToDomain converts a database OTP record to a domain record
func (r *OTPRepositoryImpl) dbToDomain(dbOTP *DBOTP) *domain.OTPRecord {
	return &domain.OTPRecord{
		ID:         dbOTP.ID,
		IdentityID: dbOTP.IdentityID,
		Channel:    domain.ChannelKind(dbOTP.Channel),
		Contact:    dbOTP.Contact,
		Code:       dbOTP.Code,
		CreatedAt:  dbOTP.CreatedAt,
		ExpiresAt:  dbOTP.ExpiresAt,
		Used:       dbOTP.Used,
	}
}
