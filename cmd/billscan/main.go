package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akaraszi/billscan/gen/ent"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/export"
	"github.com/akaraszi/billscan/internal/ingest"
	"github.com/akaraszi/billscan/internal/pipeline"
	"github.com/akaraszi/billscan/internal/process"
	repo "github.com/akaraszi/billscan/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process bills from (required)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr  = flag.String("from", "", "from date YYYY-MM-DD")
		toStr    = flag.String("to", "", "to date YYYY-MM-DD")
		language = flag.String("lang", "", "default document language (en or hu, optional)")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "bills.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	// Initialize database
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repo.OpenInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)
	}

	// Wire repositories
	profilesRepo := repo.NewProfileRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	billsRepo := repo.NewBillRepository(entc, logger)
	schemasRepo := repo.NewFieldSchemaRepository(entc, logger)

	// Create or fetch default profile
	profileName := "Local Batch"
	defaultCurrency := "EUR"
	// Empty language means per-document detection.
	defaultLanguage := *language
	profile, err := profilesRepo.GetOrCreate(ctx, profileName, defaultCurrency, defaultLanguage)
	if err != nil {
		logger.Error("failed to get or create profile", "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", profile.ID, "name", profile.Name)

	// Setup pipeline and processor
	orch := pipeline.NewOrchestrator(cfg.Extract, logger)
	processor := process.NewProcessor(orch, documentsRepo, jobsRepo, billsRepo, profilesRepo, schemasRepo, logger)

	// Setup ingestor
	ingestor := ingest.NewFSIngestor(profilesRepo, documentsRepo, logger)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir, "profile", profile.ID)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, profile.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	// Extract document IDs from ingestion results
	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			documentID, err := uuid.Parse(result.DocumentID)
			if err != nil {
				logger.Error("failed to parse document ID", "document_id", result.DocumentID, "error", err)
				continue
			}
			ingested = append(ingested, documentID)
		}
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	// Process each ingested document
	processed := 0
	failures := 0

	for _, documentID := range ingested {
		logger.Info("processing document", "document_id", documentID)
		_, _, err := processor.ProcessDocument(ctx, documentID)
		if err != nil {
			logger.Error("failed to process document", "document_id", documentID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(entc, billsRepo, logger)

	xlsxBytes, err := exportService.ExportBillsXLSX(ctx, profile.ID, from, to)
	if err != nil {
		logger.Error("failed to export bills", "error", err)
		os.Exit(1)
	}

	// Write to file
	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
