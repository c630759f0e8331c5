package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/infrastructure/cache"
	"github.com/lipagate/lipagate/internal/infrastructure/config"
	"github.com/lipagate/lipagate/internal/infrastructure/notification"
	"github.com/lipagate/lipagate/internal/infrastructure/render"
	"github.com/lipagate/lipagate/internal/infrastructure/scheduler"
	"github.com/lipagate/lipagate/internal/infrastructure/token"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// Container wires repositories, use cases, handlers and background services
// together and owns their shutdown order.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *useCases
	hdlrs *handlerSet

	authMiddleware *middleware.AuthMiddleware
	cronMiddleware *middleware.CronAuthMiddleware

	jwtIssuer  *token.JWTIssuer
	dispatcher *notification.Dispatcher
	renderer   *render.MarkdownRenderer
	sweepLock  *cache.SweepLock

	schedulerManager *scheduler.Manager
}

// NewContainer builds the full dependency graph. The redis client may be nil;
// the sweep then runs without its advisory lock.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{
		db:    db,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.jwtIssuer = token.NewJWTIssuer(&cfg.Auth.JWT)
	c.renderer = render.NewMarkdownRenderer()
	if redisClient != nil {
		c.sweepLock = cache.NewSweepLock(redisClient, log)
	}

	var emailSender, smsSender, whatsappSender notification.Sender
	if cfg.Email.SMTPHost != "" {
		emailSender = notification.NewEmailSender(cfg.Email)
	}
	if cfg.SMS.APIURL != "" {
		smsSender = notification.NewSMSSender(cfg.SMS)
	}
	if cfg.WhatsApp.APIURL != "" {
		whatsappSender = notification.NewWhatsAppSender(cfg.WhatsApp)
	}
	c.dispatcher = notification.NewDispatcher(emailSender, smsSender, whatsappSender, log)

	c.wireRepositories()
	c.wireUseCases()
	c.wireHandlers()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtIssuer, log)
	c.cronMiddleware = middleware.NewCronAuthMiddleware(cfg.Sweep.CronSecret, log)

	manager, err := scheduler.NewManager(c.ucs.sweepUC, c.ucs.trialsUC, log)
	if err != nil {
		return nil, err
	}
	c.schedulerManager = manager

	c.engine = c.setupRouter()
	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground starts the in-process lifecycle scheduler.
func (c *Container) StartBackground() error {
	interval := time.Duration(c.cfg.Sweep.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	if err := c.schedulerManager.RegisterJobs(interval); err != nil {
		return err
	}
	c.schedulerManager.Start()
	return nil
}

// Shutdown stops background services. The HTTP server is shut down by the
// caller before this runs.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.schedulerManager != nil && c.schedulerManager.IsStarted() {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
	return nil
}
