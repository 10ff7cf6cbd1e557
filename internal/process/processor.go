// Package process runs stored documents through the extraction pipeline and
// persists the outcome: bill rows on success, job status transitions always.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/docsource"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/pipeline"
	"github.com/akaraszi/billscan/internal/repository"
)

type Processor struct {
	Orchestrator *pipeline.Orchestrator
	Documents    repository.DocumentRepository
	Jobs         repository.ExtractJobRepository
	Bills        repository.BillRepository
	Profiles     repository.ProfileRepository
	Schemas      repository.FieldSchemaRepository
	Logger       *slog.Logger
}

func NewProcessor(
	orch *pipeline.Orchestrator,
	docs repository.DocumentRepository,
	jobs repository.ExtractJobRepository,
	bills repository.BillRepository,
	profiles repository.ProfileRepository,
	schemas repository.FieldSchemaRepository,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Orchestrator: orch,
		Documents:    docs,
		Jobs:         jobs,
		Bills:        bills,
		Profiles:     profiles,
		Schemas:      schemas,
		Logger:       logger,
	}
}

// ProcessDocument runs one stored document end to end. The returned job ID
// is valid even on failure; the job row records what went wrong.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, *entity.ExtractionResult, error) {
	log := p.Logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("request_id", rid)
	}
	if pid := common.ProfileIDFromContext(ctx); pid != "" {
		log = log.With("profile_id", pid)
	}

	doc, err := p.Documents.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get document: %w", err)
	}
	log.Info("process.document.start", "document_id", doc.ID, "ext", doc.FileExt)

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return uuid.Nil, nil, fmt.Errorf("unsupported format: %s", doc.FileExt)
	}

	job, err := p.Jobs.Start(ctx, doc.ID, doc.ProfileID, format)
	if err != nil {
		return uuid.Nil, nil, err
	}

	data, err := os.ReadFile(doc.SourcePath)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, "InvalidInput", "read source: "+err.Error())
		return job.ID, nil, err
	}

	raw, err := docsource.Normalize(data, doc.Filename)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, common.FailureKind(err), err.Error())
		return job.ID, nil, err
	}

	lang, schemaEntries := p.profileContext(ctx, doc.ProfileID)
	if err := p.Jobs.MarkRunning(ctx, job.ID, string(lang)); err != nil {
		p.Logger.Warn("job status update failed", "job_id", job.ID, "err", err)
	}

	res := p.Orchestrator.Run(ctx, &entity.ExtractionContext{
		Document: raw,
		Language: lang,
		Source: entity.SourceIdentifiers{
			Type:     raw.Kind,
			FileName: doc.Filename,
		},
		Schema:      schemaEntries,
		UseStemming: lang == constants.LangHungarian || lang == "",
	})

	return job.ID, res, p.persist(ctx, job.ID, doc.ProfileID, res)
}

// profileContext resolves the profile's language preference and field
// schema. Either missing degrades to detection and defaults.
func (p *Processor) profileContext(ctx context.Context, profileID uuid.UUID) (constants.Language, []entity.FieldSchemaEntry) {
	var lang constants.Language
	if profile, err := p.Profiles.GetByID(ctx, profileID); err == nil && profile.DefaultLanguage != "" {
		lang = constants.NormalizeLanguage(profile.DefaultLanguage)
	}
	entries, err := p.Schemas.FetchFieldSchema(ctx, profileID.String())
	if err != nil {
		entries = nil
	}
	return lang, entries
}

func (p *Processor) persist(ctx context.Context, jobID, profileID uuid.UUID, res *entity.ExtractionResult) error {
	if res.Success {
		var billID uuid.UUID
		for i := range res.Bills {
			if !res.Bills[i].HasVendorOrAmount() {
				continue
			}
			row, err := p.Bills.Save(ctx, profileID, &res.Bills[i])
			if err != nil {
				_ = p.Jobs.FinishFailure(ctx, jobID, "InternalError", "bill save: "+err.Error())
				return err
			}
			billID = row.ID
		}
		tier, excerpt := "", ""
		if res.Trace != nil {
			tier = string(res.Trace.DecodeTier)
			excerpt = res.Trace.TextExcerpt
		}
		return p.Jobs.FinishExtracted(ctx, jobID, billID, res.Confidence, tier, excerpt, res.Trace)
	}

	kind := common.FailureKind(res.Err)
	if kind == "LowConfidence" {
		var billID *uuid.UUID
		// Keep the best-effort bill for review.
		for i := range res.Bills {
			if res.Bills[i].HasVendorOrAmount() {
				if row, err := p.Bills.Save(ctx, profileID, &res.Bills[i]); err == nil {
					billID = &row.ID
				}
				break
			}
		}
		return p.Jobs.FinishLowConfidence(ctx, jobID, billID, res.Confidence, res.Err.Error())
	}
	return p.Jobs.FinishFailure(ctx, jobID, kind, res.Err.Error())
}
