// Package server assembles the HTTP router from the domain services.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tenant-admin-api/config"
	"tenant-admin-api/internal/auth"
	"tenant-admin-api/internal/crypto"
	"tenant-admin-api/internal/customer"
	"tenant-admin-api/internal/database"
	"tenant-admin-api/internal/health"
	"tenant-admin-api/internal/logging"
	"tenant-admin-api/internal/pipeline"
	"tenant-admin-api/internal/sourceconfig"
	"tenant-admin-api/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table the server owns, in migration order.
func Models() []any {
	return []any{
		&customer.Customer{},
		&sourceconfig.SourceConfig{},
		&pipeline.Pipeline{},
		&user.User{},
	}
}

// Prepare migrates the schema and makes sure an admin user exists.
func Prepare(ctx context.Context, db *gorm.DB, credentials []auth.Credential, logger *zap.Logger) error {
	if err := database.Migrate(db, Models()...); err != nil {
		return err
	}

	for _, cred := range credentials {
		if cred.Role != auth.RoleAdmin {
			continue
		}
		svc := &user.UserService{DB: db}
		created, err := svc.SeedAdmin(ctx, cred)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if created {
			logger.Info("seeded admin user", zap.String("email", cred.Email))
		}
		break
	}
	return nil
}

// NewRouter wires every service onto a gin engine.
func NewRouter(cfg config.Config, db *gorm.DB, credentials []auth.Credential, logger *zap.Logger) (*gin.Engine, error) {
	encryptor, err := crypto.NewCredentialEncryptor(cfg.EncryptionKey())
	if err != nil {
		return nil, fmt.Errorf("credential encryptor: %w", err)
	}

	authService := auth.NewAuthService(cfg.SecretKey, time.Duration(cfg.TokenTTLMinutes)*time.Minute, credentials)

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestID(), logging.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			logger.Warn("liveness ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.RegisterRoutes(r, authService, logger)

	customerService := &customer.CustomerService{DB: db}
	customer.RegisterRoutes(r, customerService, authService, logger)

	sourceConfigService := &sourceconfig.SourceConfigService{DB: db, Encryptor: encryptor}
	sourceconfig.RegisterRoutes(r, sourceConfigService, authService, logger)

	pipelineService := &pipeline.PipelineService{DB: db}
	pipeline.RegisterRoutes(r, pipelineService, authService, logger)

	healthService := &health.HealthService{DB: db}
	health.RegisterRoutes(r, healthService, authService, logger)

	userService := &user.UserService{DB: db}
	user.RegisterRoutes(r, userService, authService, logger)

	return r, nil
}
