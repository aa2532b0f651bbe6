package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/otpauthsvc/domain"
	"github.com/you/otpauthsvc/internal/config"
	"github.com/you/otpauthsvc/internal/infrastructure/auth"
	"github.com/you/otpauthsvc/internal/infrastructure/database"
	"github.com/you/otpauthsvc/internal/infrastructure/notifications"
	"github.com/you/otpauthsvc/internal/infrastructure/repositories"
	"github.com/you/otpauthsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	IdentityRepo domain.IdentityRepository
	OTPRepo      domain.OTPRepository
	SessionRepo  domain.SessionRepository

	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.IdentityRepo = repositories.NewIdentityRepository(c.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.RefreshTTL)
}

func (c *Container) initServices() {
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewNotificationService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		notifications.SMTPConfig{
			Host:     c.Config.SMTPHost,
			Port:     c.Config.SMTPPort,
			Username: c.Config.SMTPUsername,
			Password: c.Config.SMTPPassword,
			From:     c.Config.SMTPFrom,
		},
	)

	otpConfig := services.OTPConfig{
		Length: c.Config.OTPLength,
		TTL:    c.Config.OTPTTL,
	}
	c.OTPSvc = services.NewOTPService(c.OTPRepo, c.IdentityRepo, c.NotificationSvc, otpConfig)

	c.AuthSvc = services.NewAuthService(
		c.IdentityRepo,
		c.SessionRepo,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
