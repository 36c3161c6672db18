package main

import (
	"context"
	"fmt"
	"time"

	"identity-srv/config"
	configKafka "identity-srv/config/kafka"
	configPostgre "identity-srv/config/postgre"
	configRedis "identity-srv/config/redis"
	"identity-srv/internal/httpserver"
	pkgJWT "identity-srv/pkg/jwt"
	"identity-srv/pkg/log"
)

// @title       Identity Service API
// @description JWT-based identity service: token issuance, verification keys, user management and audit trail.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Kafka producer (optional)
	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka not available, audit event stream disabled: %v", err)
		producer = nil
	} else if producer != nil {
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected, topic %s", cfg.Kafka.Topic)
	}

	// 6. Initialize JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		PrivateKeyPEM: cfg.JWT.PrivateKey,
		PublicKeyPEM:  cfg.JWT.PublicKey,
		Issuer:        cfg.JWT.Issuer,
		Audience:      cfg.JWT.Audience,
		AccessTTL:     time.Duration(cfg.JWT.AccessTTL) * time.Second,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshTTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	logger.Infof(ctx, "JWT manager initialized with algorithm %s, issuer %s", cfg.JWT.Algorithm, cfg.JWT.Issuer)

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  postgresDB,
		Redis:       redisClient,
		JWTManager:  jwtManager,
		Producer:    producer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run until shutdown signal
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}
