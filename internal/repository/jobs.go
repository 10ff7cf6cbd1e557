package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/gen/ent"
	entjob "github.com/akaraszi/billscan/gen/ent/extractjob"
	"github.com/akaraszi/billscan/internal/entity"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID, profileID uuid.UUID, format string) (*ent.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID, language string) error
	FinishExtracted(ctx context.Context, jobID, billID uuid.UUID, confidence float32, decodeTier, decodedText string, trace *entity.DebugTrace) error
	FinishLowConfidence(ctx context.Context, jobID uuid.UUID, billID *uuid.UUID, confidence float32, message string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, failureKind, message string) error
	ListByStatus(ctx context.Context, profileID uuid.UUID, status constants.JobStatus, limit int) ([]*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID, profileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID, language string) error {
	q := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning))
	if language != "" {
		q.SetLanguage(language)
	}
	return q.Exec(ctx)
}

func (r *extractJobRepo) FinishExtracted(ctx context.Context, jobID, billID uuid.UUID, confidence float32, decodeTier, decodedText string, trace *entity.DebugTrace) error {
	q := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetBillID(billID).
		SetExtractionConfidence(confidence).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtracted))
	if decodeTier != "" {
		q.SetDecodeTier(decodeTier)
	}
	if decodedText != "" {
		q.SetDecodedText(decodedText)
	}
	if trace != nil {
		if b, err := json.Marshal(trace); err == nil {
			q.SetDebugTrace(b)
		}
	}
	if err := q.Exec(ctx); err != nil {
		r.log.Error("extract_job finish(EXTRACTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished", "job_id", jobID, "status", constants.JobStatusExtracted, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishLowConfidence(ctx context.Context, jobID uuid.UUID, billID *uuid.UUID, confidence float32, message string) error {
	q := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractionConfidence(confidence).
		SetNeedsReview(true).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusLowConf)).
		SetErrorMessage(message)
	if billID != nil {
		q.SetBillID(*billID)
	}
	if err := q.Exec(ctx); err != nil {
		r.log.Error("extract_job finish(LOW_CONF) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished below threshold", "job_id", jobID, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, failureKind, message string) error {
	err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetFailureKind(failureKind).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "kind", failureKind, "error", message)
	return nil
}

func (r *extractJobRepo) ListByStatus(ctx context.Context, profileID uuid.UUID, status constants.JobStatus, limit int) ([]*ent.ExtractJob, error) {
	q := r.ent.ExtractJob.Query().
		Where(
			entjob.ProfileID(profileID),
			entjob.Status(string(status)),
		).
		Order(ent.Asc(entjob.FieldStartedAt))
	if limit > 0 {
		q.Limit(limit)
	}
	return q.All(ctx)
}
