package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/otpauthsvc/domain"
	"gorm.io/gorm"
)

// IdentityRepositoryImpl implements domain.IdentityRepository using GORM
type IdentityRepositoryImpl struct {
	db *gorm.DB
}

// DBIdentity represents the database model for Identity (with GORM tags).
// Email and mobile are nullable so the unique indexes allow identities
// registered with only one contact channel.
type DBIdentity struct {
	ID        uint    `gorm:"primaryKey"`
	Email     *string `gorm:"uniqueIndex;size:255"`
	Mobile    *string `gorm:"uniqueIndex;size:32"`
	FirstName string  `gorm:"size:150"`
	LastName  string  `gorm:"size:150"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBIdentity) TableName() string {
	return "identities"
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) domain.IdentityRepository {
	return &IdentityRepositoryImpl{db: db}
}

// Create implements domain.IdentityRepository. The unique indexes are the
// arbiter under concurrent registration; on a failed insert the colliding
// contact is re-checked so callers get the specific duplicate error.
func (r *IdentityRepositoryImpl) Create(ctx context.Context, identity *domain.Identity) error {
	dbIdentity := r.domainToDB(identity)
	if err := r.db.WithContext(ctx).Create(dbIdentity).Error; err != nil {
		if identity.Email != "" {
			if _, ferr := r.FindByEmail(ctx, identity.Email); ferr == nil {
				return domain.ErrEmailTaken
			}
		}
		if identity.Mobile != "" {
			if _, ferr := r.FindByMobile(ctx, identity.Mobile); ferr == nil {
				return domain.ErrMobileTaken
			}
		}
		return err
	}
	identity.ID = dbIdentity.ID
	identity.CreatedAt = dbIdentity.CreatedAt
	identity.UpdatedAt = dbIdentity.UpdatedAt
	return nil
}

// FindByEmail implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbIdentity), nil
}

// FindByMobile implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&dbIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbIdentity), nil
}

// FindByID implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbIdentity), nil
}

// domainToDB converts a domain identity to a database identity
func (r *IdentityRepositoryImpl) domainToDB(identity *domain.Identity) *DBIdentity {
	dbIdentity := &DBIdentity{
		ID:        identity.ID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	}
	if identity.Email != "" {
		email := identity.Email
		dbIdentity.Email = &email
	}
	if identity.Mobile != "" {
		mobile := identity.Mobile
		dbIdentity.Mobile = &mobile
	}
	return dbIdentity
}

// dbToDomain converts a database identity to a domain identity
func (r *IdentityRepositoryImpl) dbToDomain(dbIdentity *DBIdentity) *domain.Identity {
	identity := &domain.Identity{
		ID:        dbIdentity.ID,
		FirstName: dbIdentity.FirstName,
		LastName:  dbIdentity.LastName,
		CreatedAt: dbIdentity.CreatedAt,
		UpdatedAt: dbIdentity.UpdatedAt,
	}
	if dbIdentity.Email != nil {
		identity.Email = *dbIdentity.Email
	}
	if dbIdentity.Mobile != nil {
		identity.Mobile = *dbIdentity.Mobile
	}
	return identity
}
