// Package ingest registers local files as extraction-ready documents:
// extension filtering, SHA-256 content hashing, and per-profile dedup.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/docsource"
	"github.com/akaraszi/billscan/internal/repository"
)

// IngestionResult describes one ingested (or skipped) file.
type IngestionResult struct {
	SourcePath   string
	DocumentID   string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	Profiles    repository.ProfileRepository
	Documents   repository.DocumentRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	Log         *slog.Logger
}

func NewFSIngestor(p repository.ProfileRepository, d repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		Profiles:  p,
		Documents: d,
		Log:       logger,
	}
}

func (i *FSIngestor) allowed(ext string) bool {
	ext = constants.NormalizeExt(ext)
	allow := i.AllowedExts
	if allow == nil {
		allow = constants.AllowedExtensions
	}
	_, ok := allow[ext]
	return ok
}

// IngestPath registers a single file. Content already ingested for this
// profile dedups against the stored hash instead of creating a new row.
func (i *FSIngestor) IngestPath(ctx context.Context, profileID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, fmt.Errorf("read: %w", err)
	}

	digest := sha256.Sum256(data)
	sum := digest[:]
	now := time.Now().UTC()

	row, dedup, err := i.Documents.UpsertByHash(ctx, profileID, abs, filepath.Base(abs), ext, len(data), sum, now)
	if err != nil {
		return out, err
	}

	// Email files carry a stable message ID worth keeping for provenance.
	if ext == "eml" && !dedup {
		if email, perr := docsource.ParseEmail(data); perr == nil && email.MessageID != "" {
			if uerr := i.Documents.SetMessageID(ctx, row.ID, email.MessageID); uerr != nil {
				i.Log.Warn("ingest.message_id_update_failed", "path", abs, "error", uerr)
			}
		}
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		DocumentID:   row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	i.Log.Info("ingest.file", "path", abs, "document_id", out.DocumentID, "dedup", dedup)
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each supported file. Per-file failures are recorded and the
// walk continues.
func (i *FSIngestor) IngestDirectory(ctx context.Context, profileID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !i.allowed(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, profileID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	i.Log.Info("ingest.directory", "root", root,
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "dedup", stats.Deduplicated, "failed", stats.Failed)
	return results, stats, nil
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
