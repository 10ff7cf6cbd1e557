package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/akaraszi/billscan/constants"
	v1 "github.com/akaraszi/billscan/gen/proto/billscan/v1"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/docsource"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/pipeline"
	"github.com/akaraszi/billscan/internal/process"
	"github.com/akaraszi/billscan/internal/repository"
)

type ExtractionServer struct {
	v1.UnimplementedExtractionServiceServer
	processor    *process.Processor
	orchestrator *pipeline.Orchestrator
	schemas      repository.FieldSchemaRepository
	logger       *slog.Logger
}

func NewExtractionServer(proc *process.Processor, orch *pipeline.Orchestrator, schemas repository.FieldSchemaRepository, logger *slog.Logger) *ExtractionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionServer{
		processor:    proc,
		orchestrator: orch,
		schemas:      schemas,
		logger:       logger,
	}
}

// ExtractDocument runs a previously ingested document through the pipeline.
func (s *ExtractionServer) ExtractDocument(ctx context.Context, req *v1.ExtractDocumentRequest) (*v1.ExtractDocumentResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	jobID, res, err := s.processor.ProcessDocument(ctx, docID)
	if err != nil && res == nil {
		return nil, status.Errorf(codes.Internal, "process: %v", err)
	}
	return toExtractResponse(jobID, res), nil
}

// ExtractBytes runs ad-hoc content through the pipeline without persisting
// anything; the caller gets the result and nothing else changes.
func (s *ExtractionServer) ExtractBytes(ctx context.Context, req *v1.ExtractBytesRequest) (*v1.ExtractDocumentResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	raw, err := docsource.Normalize(req.GetContent(), req.GetFileName())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "content: %v", err)
	}

	var lang constants.Language
	if l := strings.TrimSpace(req.GetLanguage()); l != "" {
		lang = constants.NormalizeLanguage(l)
	}
	entries, err := s.schemas.FetchFieldSchema(ctx, req.GetProfileId())
	if err != nil {
		entries = nil
	}

	res := s.orchestrator.Run(ctx, &entity.ExtractionContext{
		Document:    raw,
		Language:    lang,
		Source:      entity.SourceIdentifiers{Type: raw.Kind, FileName: req.GetFileName()},
		Schema:      entries,
		UseStemming: lang == constants.LangHungarian || lang == "",
		Debug:       req.GetDebug(),
	})
	return toExtractResponse(uuid.Nil, res), nil
}

func toExtractResponse(jobID uuid.UUID, res *entity.ExtractionResult) *v1.ExtractDocumentResponse {
	resp := &v1.ExtractDocumentResponse{
		Success:    res != nil && res.Success,
		Confidence: 0,
	}
	if jobID != uuid.Nil {
		resp.JobId = jobID.String()
	}
	if res == nil {
		return resp
	}

	resp.Confidence = res.Confidence
	if res.Err != nil {
		resp.FailureKind = common.FailureKind(res.Err)
		resp.Error = res.Err.Error()
	}
	for i := range res.Bills {
		resp.Bills = append(resp.Bills, toPBBill(&res.Bills[i]))
	}
	if res.Trace != nil {
		if b, err := json.Marshal(res.Trace); err == nil {
			resp.DebugTraceJson = b
		}
	}
	return resp
}

func toPBBill(b *entity.Bill) *v1.Bill {
	out := &v1.Bill{
		Vendor:        b.Vendor,
		Amount:        b.Amount,
		Currency:      b.Currency,
		AccountNumber: b.AccountNumber,
		InvoiceNumber: b.InvoiceNumber,
		Category:      string(b.Category),
	}
	if !b.IssueDate.IsZero() {
		out.IssueDate = b.IssueDate.Format("2006-01-02")
	}
	if !b.DueDate.IsZero() {
		out.DueDate = b.DueDate.Format("2006-01-02")
	}
	if len(b.Dynamic) > 0 {
		flat := make(map[string]any, len(b.Dynamic))
		for name, v := range b.Dynamic {
			switch v.Kind {
			case entity.KindNumber:
				flat[name] = v.Number
			case entity.KindBoolean:
				flat[name] = v.Bool
			default:
				flat[name] = v.String()
			}
		}
		if raw, err := json.Marshal(flat); err == nil {
			out.DynamicFieldsJson = raw
		}
	}
	return out
}
