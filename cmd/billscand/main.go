package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	v1 "github.com/akaraszi/billscan/gen/proto/billscan/v1"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/export"
	"github.com/akaraszi/billscan/internal/ingest"
	"github.com/akaraszi/billscan/internal/pipeline"
	"github.com/akaraszi/billscan/internal/process"
	"github.com/akaraszi/billscan/internal/repository"
	"github.com/akaraszi/billscan/internal/server"
)

func main() {
	// Process-level logger; components take slog.
	zl, _ := zap.NewProduction()
	defer zl.Sync()
	zlog := zl.Sugar()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(log)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatalf("invalid configuration: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, log)
	if err != nil {
		zlog.Fatalf("creating DB pool: %v", err)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, log); err != nil {
		zlog.Fatalf("DB health failed: %v", err)
	}
	zlog.Infow("DB health OK")

	// Repositories
	profiles := repository.NewProfileRepository(entc, log)
	documents := repository.NewDocumentRepository(entc, log)
	jobs := repository.NewExtractJobRepository(entc, log)
	bills := repository.NewBillRepository(entc, log)
	schemas := repository.NewFieldSchemaRepository(entc, log)

	// Pipeline + services
	orch := pipeline.NewOrchestrator(cfg.Extract, log)
	proc := process.NewProcessor(orch, documents, jobs, bills, profiles, schemas, log)
	ingestor := ingest.NewFSIngestor(profiles, documents, log)
	exportSvc := export.NewService(entc, bills, log)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterProfilesServiceServer(grpcServer, server.NewProfileServer(profiles, schemas, log))
	v1.RegisterIngestionServiceServer(grpcServer, server.NewIngestionServer(ingestor, proc, profiles, log))
	v1.RegisterExtractionServiceServer(grpcServer, server.NewExtractionServer(proc, orch, schemas, log))
	v1.RegisterBillsServiceServer(grpcServer, server.NewBillsServer(bills, log))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, log))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatalf("listen on %s: %v", cfg.Server.GRPCAddr, err)
	}
	zlog.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Errorf("grpc serve: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
