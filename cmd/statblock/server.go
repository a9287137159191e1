package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-statblock/internal/handlers/statblock/v1alpha1"
	"github.com/KirkDiggler/rpg-statblock/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-statblock/internal/parser"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/idgen"
)

const shutdownTimeout = 30 * time.Second

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the statblock import gRPC server backed by the configured creature store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides STATBLOCK_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	p, err := parser.New(&parser.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	svc, err := importer.NewOrchestrator(&importer.Config{
		Parser:              p,
		Repository:          repo,
		IDGenerator:         idgen.NewUUID(idgen.CreaturePrefix),
		Clock:               clock.New(),
		AlwaysRollHitPoints: cfg.RollHitPoints,
		Logger:              logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: svc})
	if err != nil {
		return fmt.Errorf("failed to create statblock handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger, handler)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		gracefulStop(srv, logger, shutdownTimeout)
		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer builds a server with logging and panic recovery on every
// call, the statblock service, health checks and reflection
func newGRPCServer(logger *slog.Logger, handler v1alpha1.StatblockServiceServer) *grpc.Server {
	recovery := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic in handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	v1alpha1.RegisterStatblockServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv
}

// interceptorLogger adapts slog to the middleware logger. The middleware
// levels share slog's numbering.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// gracefulStop drains in-flight calls, forcing a stop after timeout
func gracefulStop(srv *grpc.Server, logger *slog.Logger, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}
