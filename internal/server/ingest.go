package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/akaraszi/billscan/gen/proto/billscan/v1"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/ingest"
	"github.com/akaraszi/billscan/internal/process"
	"github.com/akaraszi/billscan/internal/repository"
)

type IngestionServer struct {
	v1.UnimplementedIngestionServiceServer
	ingestor  *ingest.FSIngestor
	processor *process.Processor
	profiles  repository.ProfileRepository
	logger    *slog.Logger
}

func NewIngestionServer(ing *ingest.FSIngestor, proc *process.Processor, p repository.ProfileRepository, logger *slog.Logger) *IngestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionServer{
		ingestor:  ing,
		processor: proc,
		profiles:  p,
		logger:    logger,
	}
}

func (s *IngestionServer) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	profileID, err := s.parseProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}

	resp := toIngestResponse(r)

	// Newly ingested content goes straight through the pipeline; a dedup
	// hit was already processed once.
	if !r.Deduplicated {
		docID, _ := uuid.Parse(r.DocumentID)
		ctx := common.WithProfileID(common.WithRequestID(ctx, uuid.NewString()), profileID.String())
		if _, _, err := s.processor.ProcessDocument(ctx, docID); err != nil {
			s.logger.Error("pipeline.failed", "document_id", r.DocumentID, "err", err)
			resp.Error = err.Error()
		}
	}
	return resp, nil
}

func (s *IngestionServer) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	profileID, err := s.parseProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "ingest directory: %v", err)
	}

	resp := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
	}
	for _, r := range results {
		fr := toIngestResponse(r)
		if r.Err == "" && !r.Deduplicated {
			docID, _ := uuid.Parse(r.DocumentID)
			if _, _, err := s.processor.ProcessDocument(ctx, docID); err != nil {
				s.logger.Error("pipeline.failed", "document_id", r.DocumentID, "err", err)
				fr.Error = err.Error()
			}
		}
		resp.Files = append(resp.Files, fr)
	}
	return resp, nil
}

func (s *IngestionServer) parseProfile(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile not found")
	}
	return profileID, nil
}

func toIngestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
