package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/rate-my-teacher/api/swagger"
	"github.com/noah-isme/rate-my-teacher/internal/handler"
	"github.com/noah-isme/rate-my-teacher/internal/middleware"
	"github.com/noah-isme/rate-my-teacher/internal/repository"
	"github.com/noah-isme/rate-my-teacher/internal/service"
	"github.com/noah-isme/rate-my-teacher/pkg/cache"
	"github.com/noah-isme/rate-my-teacher/pkg/config"
	"github.com/noah-isme/rate-my-teacher/pkg/database"
	"github.com/noah-isme/rate-my-teacher/pkg/logger"
	corsmiddleware "github.com/noah-isme/rate-my-teacher/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/rate-my-teacher/pkg/middleware/requestid"
	"github.com/noah-isme/rate-my-teacher/pkg/session"
)

// @title Rate My Teacher
// @version 1.0.0
// @description Teacher ratings for an internal school community. Form posts answer 303 with a message or error query parameter.
// @BasePath /
// @schemes http https

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, page cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	teacherRepo := repository.NewTeacherRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)
	provider := service.NewPasswordProvider(userRepo, service.PasswordProviderConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	}, logr)
	authSvc := service.NewAuthService(provider, validate, logr, service.AuthConfig{
		AllowedDomain:     cfg.Auth.AllowedEmailDomain,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	})
	gate := authSvc.Gate()
	adminSvc := service.NewAdminAuthService(service.AdminCredentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, session.NewSigner(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL), logr)
	if !adminSvc.Enabled() {
		logr.Warn("admin credentials not configured, admin panel disabled")
	}

	teacherSvc := service.NewTeacherService(teacherRepo, reviewRepo, voteRepo, authSvc, cacheSvc, logr)
	reviewSvc := service.NewReviewService(reviewRepo, teacherRepo, userRepo, gate, service.ReviewRules{
		CommentLimit: cfg.Reviews.CommentLimit,
		MaxTags:      cfg.Reviews.MaxTags,
	}, cacheSvc, logr)
	voteSvc := service.NewVoteService(voteRepo, gate, logr)
	ticketSvc := service.NewTicketService(ticketRepo, gate, validate, logr)

	userCookie := handler.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}
	adminCookie := handler.CookieConfig{Name: cfg.Admin.CookieName, Secure: cfg.Session.Secure}

	checks := map[string]handler.Pinger{"postgres": handler.PingFunc(db.PingContext)}
	if redisClient != nil {
		checks["redis"] = cacheRepo
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, metricsSvc, userCookie),
		AdminAuth:   handler.NewAdminAuthHandler(adminSvc, metricsSvc, adminCookie),
		Teachers:    handler.NewTeacherHandler(teacherSvc, userCookie),
		Reviews:     handler.NewReviewHandler(reviewSvc, voteSvc, metricsSvc),
		Tickets:     handler.NewTicketHandler(ticketSvc, metricsSvc),
		Admin:       handler.NewAdminHandler(teacherSvc, reviewSvc, ticketSvc, metricsSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc, checks),
		Users:       authSvc,
		Admins:      adminSvc,
		UserCookie:  userCookie.Name,
		AdminCookie: adminCookie.Name,
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
