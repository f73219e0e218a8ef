package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kms-sarl/site-server-go/internal/config"
	"github.com/kms-sarl/site-server-go/internal/database"
	"github.com/kms-sarl/site-server-go/internal/handler"
	"github.com/kms-sarl/site-server-go/internal/jobs"
	"github.com/kms-sarl/site-server-go/internal/middleware"
	"github.com/kms-sarl/site-server-go/internal/redis"
	"github.com/kms-sarl/site-server-go/internal/repository"
	"github.com/kms-sarl/site-server-go/internal/service"
	"github.com/kms-sarl/site-server-go/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	uploadStore, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload storage")
	}

	adminUserRepo := repository.NewAdminUserRepository(db.DB)
	sessionRepo := repository.NewSessionRepository(db.DB)
	serviceRepo := repository.NewServiceRepository(db.DB)
	projectRepo := repository.NewProjectRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)
	partnerRepo := repository.NewPartnerRepository(db.DB)
	teamRepo := repository.NewTeamRepository(db.DB)
	jobRepo := repository.NewJobRepository(db.DB)
	applicationRepo := repository.NewApplicationRepository(db.DB)
	settingsRepo := repository.NewSettingsRepository(db)

	authService := service.NewAuthService(adminUserRepo, sessionRepo, cfg.SessionSecret, cfg.SessionDuration())
	contentService := service.NewContentService(serviceRepo, projectRepo, newsRepo, partnerRepo, teamRepo)
	careersService := service.NewCareersService(jobRepo, applicationRepo, uploadStore)
	settingsService := service.NewSettingsService(settingsRepo, redisClient)
	statsService := service.NewStatsService(serviceRepo, projectRepo, jobRepo, applicationRepo)
	rateLimiter := service.NewRateLimiter(redisClient.Client)

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.IsProduction())
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.IsProduction())
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	// The public API carries multipart resume uploads, so its cap follows the
	// upload limit rather than the JSON default.
	publicBodyLimit := middleware.NewBodyLimitMiddleware(cfg.MaxUploadBytes)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(cfg.IsProduction())
	submitLimiter := middleware.NewIPRateLimitMiddleware(
		rateLimiter, config.PublicSubmitLimitPerMin, time.Minute, "submit",
	)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionDuration(), cfg.IsProduction())
	adminPages := handler.StaticFileServer(cfg.StaticDir + "/admin")
	adminHandler := handler.NewAdminHandler(
		authHandler, authService, contentService, careersService,
		settingsService, statsService, authMiddleware, csrfMiddleware, adminPages,
	)
	publicHandler := handler.NewPublicHandler(
		contentService, careersService, settingsService,
		submitLimiter.Handler, cfg.MaxUploadBytes,
	)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(securityHeadersMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(publicBodyLimit.Handler)
		r.Mount("/", publicHandler.Routes())
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(bodyLimitMiddleware.Handler)
		r.Mount("/", adminHandler.Routes())
	})

	// Uploaded resumes and images, plus the public site build.
	fileServer := http.StripPrefix(cfg.UploadBaseURL, http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get(cfg.UploadBaseURL+"/*", fileServer.ServeHTTP)
	r.NotFound(handler.StaticFileServer(cfg.StaticDir + "/site").ServeHTTP)

	cleanupJob := jobs.NewCleanupJob(sessionRepo, config.CleanupJobInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: 0,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Environment).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
