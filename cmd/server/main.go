package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/sp94dev/wallet-manager/internal/adapter/grpc"
	"github.com/sp94dev/wallet-manager/internal/adapter/repository/memory"
	"github.com/sp94dev/wallet-manager/internal/config"
	"github.com/sp94dev/wallet-manager/internal/logger"
	"github.com/sp94dev/wallet-manager/internal/usecase/instrument"
	"github.com/sp94dev/wallet-manager/internal/usecase/note"
	"github.com/sp94dev/wallet-manager/internal/usecase/seeder"
	"github.com/sp94dev/wallet-manager/internal/usecase/transaction"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wallet-manager: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration and logging
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	// 2. Initialize Repositories (in-memory)
	instrumentRepo := memory.NewInstrumentRepository()
	transactionRepo := memory.NewTransactionRepository()
	noteRepo := memory.NewNoteRepository()

	// 3. Initialize Services (Use Cases)
	instrumentService := instrument.NewInstrumentService(instrumentRepo, memory.NewSequence(), log.Named("instrument"))
	transactionService := transaction.NewTransactionService(transactionRepo, memory.NewSequence(), log.Named("transaction"))
	noteService := note.NewNoteService(noteRepo, memory.NewSequence(), memory.NewSequence(), log.Named("note"))

	if cfg.SeedDemoData {
		if err := seeder.NewDemoSeeder(instrumentService, noteService).Seed(context.Background()); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Info("demo data seeded")
	}

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.RecoveryInterceptor(log),
			grpcadapter.LoggingInterceptor(log),
		),
	)

	grpcAdapter := grpcadapter.NewServer(instrumentService, transactionService, noteService, grpcadapter.BuildInfo{
		Version: cfg.AppVersion,
		Status:  cfg.AppStatus,
	})
	grpcadapter.RegisterWalletServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Service listing only: WalletService has no proto descriptor, so grpcurl
	// can list it but not describe it
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		serveErr <- grpcServer.Serve(lis)
	}()

	// Graceful shutdown
	return waitForShutdown(log, grpcServer, healthServer, serveErr, cfg.ShutdownTimeout)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server.
// In-flight RPCs get up to timeout to finish before the server is stopped hard.
func waitForShutdown(
	log *zap.Logger,
	grpcServer *grpclib.Server,
	healthServer *health.Server,
	serveErr <-chan error,
	timeout time.Duration,
) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	select {
	case err := <-serveErr:
		return fmt.Errorf("gRPC server stopped unexpectedly: %w", err)
	case sig := <-sigChan:
		log.Info("shutting down gracefully", zap.String("signal", sig.String()))
	}

	healthServer.Shutdown()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		log.Warn("graceful shutdown timed out, forcing stop", zap.Duration("timeout", timeout))
		grpcServer.Stop()
	}

	log.Info("gRPC server stopped")
	return nil
}
