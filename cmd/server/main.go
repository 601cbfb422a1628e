// Command vidshare-server starts the VidShare gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/config"
	"github.com/and161185/vidshare/internal/migrate"
	"github.com/and161185/vidshare/internal/repository/postgres"
	grpcserver "github.com/and161185/vidshare/internal/server/grpc"
	"github.com/and161185/vidshare/internal/service"
	"github.com/and161185/vidshare/internal/telemetry"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// run migrates the store, wires repositories and services, and serves until ctx is done.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	shutdownTracing, err := telemetry.Setup(ctx, "vidshare", version, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	if err := migrate.Up(ctx, cfg.DSN); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return fmt.Errorf("pgxpool: %w", err)
	}
	defer db.Close()

	// Repositories
	users := postgres.NewUserRepo(db)
	edges := postgres.NewEdgeRepo(db)
	videos := postgres.NewVideoRepo(db)
	comments := postgres.NewCommentRepo(db)
	tweets := postgres.NewTweetRepo(db)
	playlists := postgres.NewPlaylistRepo(db)

	// Services
	toggler := service.NewToggler(edges)
	authSvc := service.NewAuthService(users, []byte(cfg.JWTKey), cfg.AccessTTL)
	app := grpcserver.New(grpcserver.Services{
		Auth:          authSvc,
		Likes:         service.NewLikeService(toggler, videos),
		Subscriptions: service.NewSubscriptionService(toggler, users),
		Videos:        service.NewVideoService(videos, cfg.MaxPageSize),
		Comments:      service.NewCommentService(comments, videos, cfg.MaxPageSize),
		Tweets:        service.NewTweetService(tweets, users),
		Playlists:     service.NewPlaylistService(playlists, videos),
	}, logger)

	opts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(authSvc, api.PublicMethods),
		),
	}
	if !cfg.Insecure {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	grpcserver.Register(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		grpcserver.RegisterReflection(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", !cfg.Insecure))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.ShutdownTimeout):
			s.Stop()
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}
