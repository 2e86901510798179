package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nsmosa/alumni-portal-api/api/swagger"
	"github.com/nsmosa/alumni-portal-api/internal/handler"
	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/middleware"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/service"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	"github.com/nsmosa/alumni-portal-api/pkg/cache"
	"github.com/nsmosa/alumni-portal-api/pkg/config"
	"github.com/nsmosa/alumni-portal-api/pkg/database"
	"github.com/nsmosa/alumni-portal-api/pkg/logger"
	corsmiddleware "github.com/nsmosa/alumni-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nsmosa/alumni-portal-api/pkg/middleware/requestid"
	"github.com/nsmosa/alumni-portal-api/pkg/storage"
)

// @title NSMOSA Alumni Portal API
// @version 1.0.0
// @description Content, approvals and membership backend for the NSMOSA alumni portal
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()

	backend, cleanup, err := newStoreBackend(ctx, cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store", "backend", cfg.Store.Backend, "error", err)
	}
	defer cleanup()
	kv := store.NewInstrumentedStore(backend, metrics)

	approvalRepo := repository.NewApprovalRepository(kv)
	notificationRepo := repository.NewNotificationRepository(kv)
	contentRepo := repository.NewContentRepository(kv)
	adminUserRepo := repository.NewAdminUserRepository(kv)
	memberRepo := repository.NewMemberRepository(kv)
	membershipRepo := repository.NewMembershipRepository(kv)
	donationRepo := repository.NewDonationRepository(kv)

	notifications := service.NewNotificationService(notificationRepo, metrics, logr, cfg.Notifications)
	notifications.Start(ctx)
	defer notifications.Stop()

	contentSvc := service.NewContentService(contentRepo, logr)
	approvals := service.NewApprovalService(approvalRepo, contentSvc, notifications, metrics, logr)
	adminAuth := service.NewAdminAuthService(adminUserRepo, cfg.JWT, cfg.Session.AdminTTL, logr)
	adminUsers := service.NewAdminUserService(adminUserRepo, notifications, logr)
	provider := identity.NewDirectoryProvider(memberRepo, cfg.Identity.MinPasswordLength)
	members := service.NewMemberService(provider, logr)
	giving := service.NewGivingService(membershipRepo, donationRepo, logr)
	stats := service.NewStatsService(contentRepo, memberRepo, membershipRepo, donationRepo, approvalRepo, logr)
	exports := service.NewExportService(membershipRepo, donationRepo, logr)

	files, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.JWT.Secret, cfg.Uploads.URLTTL)
	uploads := service.NewUploadService(files, signer, logr)

	if err := adminUsers.EnsureDefaults(ctx, cfg.Bootstrap); err != nil {
		logr.Sugar().Fatalw("failed to seed default admins", "error", err)
	}

	authHandler := handler.NewAuthHandler(adminAuth)
	memberHandler := handler.NewMemberAuthHandler(members)
	approvalHandler := handler.NewApprovalHandler(approvals)
	notificationHandler := handler.NewNotificationHandler(notifications)
	contentHandler := handler.NewContentHandler(contentSvc)
	adminUserHandler := handler.NewAdminUserHandler(adminUsers)
	givingHandler := handler.NewGivingHandler(giving)
	statsHandler := handler.NewStatsHandler(stats)
	exportHandler := handler.NewExportHandler(exports)
	uploadHandler := handler.NewUploadHandler(uploads)
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Public site surface.
	api.POST("/auth/admin/login", authHandler.Login)
	api.POST("/auth/members/login", memberHandler.Login)
	api.POST("/auth/members/register", memberHandler.Register)
	content := api.Group("/content")
	{
		content.GET("/updates", contentHandler.ListUpdates)
		content.GET("/events", contentHandler.ListEventPhotos)
		content.GET("/gallery", contentHandler.ListGalleryPhotos)
		content.GET("/chapters", contentHandler.ListChapterPhotos)
		content.GET("/reunions", contentHandler.ListReunionPhotos)
		content.GET("/hero", contentHandler.Hero)
		content.GET("/overrides/:key", contentHandler.GetOverride)
	}
	api.POST("/memberships", givingHandler.CreateMembership)
	api.POST("/donations", givingHandler.CreateDonation)
	api.GET("/files/:token", uploadHandler.Download)

	// CMS surface: any authenticated admin.
	admin := api.Group("/admin")
	admin.Use(middleware.AdminJWT(adminAuth), middleware.Audit(logr))
	{
		admin.GET("/me", authHandler.Me)
		admin.POST("/submissions", approvalHandler.Submit)
		admin.GET("/approvals", approvalHandler.ListPending)
		admin.GET("/notifications", notificationHandler.List)
		admin.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		admin.POST("/notifications/:id/read", notificationHandler.MarkRead)
		admin.GET("/statistics", statsHandler.Statistics)
		admin.POST("/uploads", uploadHandler.Upload)
	}

	// CMS surface: reviewer-capable roles only.
	full := admin.Group("")
	full.Use(middleware.RequireFullPermissions())
	{
		full.POST("/approvals/:id/approve", approvalHandler.Approve)
		full.POST("/approvals/:id/reject", approvalHandler.Reject)
		full.GET("/users", adminUserHandler.List)
		full.GET("/users/representatives", adminUserHandler.ListRepresentatives)
		full.POST("/users/representatives", adminUserHandler.AddRepresentative)
		full.DELETE("/users/:id", adminUserHandler.Remove)
		full.POST("/content/updates", contentHandler.CreateUpdate)
		full.DELETE("/content/updates/:id", contentHandler.DeleteUpdate)
		full.PUT("/content/overrides/:key", contentHandler.SetOverride)
		full.GET("/memberships", givingHandler.ListMemberships)
		full.GET("/donations", givingHandler.ListDonations)
		full.GET("/members/:uid", memberHandler.Profile)
		if cfg.Exports.Enabled {
			full.GET("/exports/:resource", exportHandler.Export)
		} else {
			full.GET("/exports/:resource", handler.ExportsDisabled())
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}

// newStoreBackend builds the configured key-value store backend and a
// cleanup closing its connections.
func newStoreBackend(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil
	case config.StoreBackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg, func() { _ = db.Close() }, nil
	case config.StoreBackendMemory, "":
		return store.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
