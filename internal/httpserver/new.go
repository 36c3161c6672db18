package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	pkgJWT "identity-srv/pkg/jwt"
	"identity-srv/pkg/kafka"
	"identity-srv/pkg/log"
	pkgRedis "identity-srv/pkg/redis"
)

type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	redis      pkgRedis.IRedis

	jwtManager pkgJWT.IManager

	// producer is optional: nil disables the audit event stream.
	producer *kafka.Producer
}

type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis

	JWTManager pkgJWT.IManager

	Producer *kafka.Producer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           cfg.Logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		redis:       cfg.Redis,
		jwtManager:  cfg.JWTManager,
		producer:    cfg.Producer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("redis is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	return nil
}
