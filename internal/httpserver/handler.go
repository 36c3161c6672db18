package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	audithttp "identity-srv/internal/audit/delivery/http"
	auditPostgre "identity-srv/internal/audit/repository/postgre"
	auditUsecase "identity-srv/internal/audit/usecase"
	authhttp "identity-srv/internal/authentication/delivery/http"
	authUsecase "identity-srv/internal/authentication/usecase"
	"identity-srv/internal/middleware"
	userhttp "identity-srv/internal/user/delivery/http"
	userPostgre "identity-srv/internal/user/repository/postgre"
	userRedis "identity-srv/internal/user/repository/redis"
	userUsecase "identity-srv/internal/user/usecase"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Repositories
	userRepo := userPostgre.New(srv.postgresDB, srv.l)
	userCache := userRedis.New(srv.redis, srv.l, 0)
	auditRepo := auditPostgre.New(srv.postgresDB, srv.l)

	// Usecases
	auditUC := auditUsecase.New(auditRepo, srv.producer, srv.l)
	userUC := userUsecase.New(userRepo, userCache, srv.l)
	authUC := authUsecase.New(userUC, auditUC, srv.jwtManager, srv.l)

	// Handlers
	root := srv.gin.Group("")
	authhttp.New(srv.l, authUC).RegisterRoutes(root, mw)
	userhttp.New(srv.l, userUC).RegisterRoutes(root, mw)
	audithttp.New(srv.l, auditUC).RegisterRoutes(root, mw)
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.Metrics())

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
