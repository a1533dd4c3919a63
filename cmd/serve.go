package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpctx "github.com/dtroode/gucfolio/internal/api/http/context"
	"github.com/dtroode/gucfolio/internal/api/http/router"
	httpserver "github.com/dtroode/gucfolio/internal/api/http/server"
	"github.com/dtroode/gucfolio/internal/config"
	"github.com/dtroode/gucfolio/internal/hasher"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/mail"
	"github.com/dtroode/gucfolio/internal/metrics"
	"github.com/dtroode/gucfolio/internal/model"
	"github.com/dtroode/gucfolio/internal/repository/postgres"
	"github.com/dtroode/gucfolio/internal/server"
	"github.com/dtroode/gucfolio/internal/service"
	storage "github.com/dtroode/gucfolio/internal/storage/minio"
	"github.com/dtroode/gucfolio/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	logger := logger.New(cfg.Level())

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	storageClient, err := storage.Connect(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage client: %w", err)
	}

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	userRepo := postgres.NewUserRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	itemRepo := postgres.NewWorkItemRepository(db)
	revokedRepo := postgres.NewRevokedTokenRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	credentials := service.NewCredentialStore(userRepo, hasher.NewBcrypt(cfg.Bcrypt.Cost, cfg.Bcrypt.Workers))
	mailer := mail.NewSMTP(mail.Options{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Attempts: cfg.SMTP.Attempts,
	})

	sessionService := service.NewSession(tokenManager, revokedRepo, userRepo, logger, m)
	authService := service.NewAuth(credentials, tokenManager, sessionService, mailer, logger, m, cfg.PublicBaseURL)
	tagRegistry := service.NewTagRegistry(tagRepo, logger, m)
	portfolioService := service.NewPortfolio(itemRepo, userRepo, tagRegistry, storageClient, logger)

	handler := router.New(authService, portfolioService, sessionService, httpctx.NewManager(), logger, router.Options{
		Gatherer:       registry,
		Metrics:        m,
		DebugMode:      cfg.DebugMode,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	}).Register()
	httpServer := httpserver.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)
	wg.Add(2)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			serveErr <- err
			stop()
		}
	}(httpServer)
	go func() {
		defer wg.Done()
		sessionService.RunPruner(ctx, cfg.PruneInterval)
	}()

	logger.Info("Build info", "version", buildVersion, "date", buildDate, "commit", buildCommit)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	authService.Wait()
	logger.Info("shutdown complete")

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	default:
		return nil
	}
}
