// Package pipeline drives a document through decode, normalization, field
// extraction, and reconciliation. The orchestrator is an explicit state
// machine so every run visits stages in the same order and failures carry
// the stage they died in.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/docsource"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/fields"
	"github.com/akaraszi/billscan/internal/pdfdecode"
	"github.com/akaraszi/billscan/internal/reconcile"
	"github.com/akaraszi/billscan/internal/textnorm"
)

type state int

const (
	stateStart state = iota
	stateDecodingSource
	stateNormalizing
	stateExtractingFields
	stateReconciling
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateDecodingSource:
		return "DecodingSource"
	case stateNormalizing:
		return "Normalizing"
	case stateExtractingFields:
		return "ExtractingFields"
	case stateReconciling:
		return "Reconciling"
	case stateDone:
		return "Done"
	}
	return "Unknown"
}

// Orchestrator owns the per-run pipeline. Safe for concurrent use; all
// per-run state lives in the run struct.
type Orchestrator struct {
	cfg     common.ExtractConfig
	decoder *pdfdecode.Decoder
	stemmer *textnorm.Stemmer
	log     *slog.Logger
}

func NewOrchestrator(cfg common.ExtractConfig, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:     cfg,
		decoder: pdfdecode.NewDecoder(cfg.DecodeTimeout, cfg.PageTimeout, logger),
		stemmer: textnorm.NewHungarianStemmer(),
		log:     logger,
	}
}

// run carries the mutable state of a single extraction.
type run struct {
	ec    *entity.ExtractionContext
	texts []string // one entry per extractable text unit (body, attachment)
	tier  entity.DecodeTier
	norm  []string
	bills []entity.Bill
	conf  float32
	trace *entity.DebugTrace
	err   error
}

// Run executes the full pipeline for one document. The result is always
// non-nil; failures set Err and clear Success but still carry whatever was
// recovered, so callers can store partial output for inspection.
func (o *Orchestrator) Run(ctx context.Context, ec *entity.ExtractionContext) *entity.ExtractionResult {
	if o.cfg.PipelineTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.PipelineTimeout)
		defer cancel()
	}

	r := &run{ec: ec, tier: entity.TierNone}
	if ec.Debug || o.cfg.Debug {
		r.trace = &entity.DebugTrace{}
	}

	st := stateStart
	for st != stateDone {
		select {
		case <-ctx.Done():
			r.err = common.NewAppError("PIPELINE_TIMEOUT", "pipeline budget exhausted in "+st.String(), common.ErrInternal)
			st = stateDone
			continue
		default:
		}

		o.log.Debug("pipeline.state", "state", st.String())
		switch st {
		case stateStart:
			st = o.start(r)
		case stateDecodingSource:
			st = o.decodeSource(ctx, r)
		case stateNormalizing:
			st = o.normalize(r)
		case stateExtractingFields:
			st = o.extractFields(r)
		case stateReconciling:
			st = o.reconcileAll(r)
		}
	}
	return o.finish(r)
}

func (o *Orchestrator) start(r *run) state {
	hasText := strings.TrimSpace(r.ec.RawText) != ""
	hasDoc := r.ec.Document != nil
	if hasText == hasDoc {
		r.err = common.NewAppError("PIPELINE_INPUT",
			"exactly one of raw text and document must be provided", common.ErrInvalidInput)
		return stateDone
	}
	if hasText {
		r.texts = []string{r.ec.RawText}
		r.tier = entity.TierNone
		return stateNormalizing
	}
	return stateDecodingSource
}

func (o *Orchestrator) decodeSource(ctx context.Context, r *run) state {
	doc := r.ec.Document
	switch doc.Kind {
	case constants.SourcePDF:
		res, err := o.decoder.Decode(ctx, doc.Data)
		if err != nil && (res == nil || res.PlainText() == "") {
			r.err = err
			return stateDone
		}
		r.texts = []string{res.PlainText()}
		r.tier = res.Tier

	case constants.SourceEmail:
		email, err := docsource.ParseEmail(doc.Data)
		if err != nil {
			r.err = err
			return stateDone
		}
		if body := strings.TrimSpace(email.Body); body != "" {
			r.texts = append(r.texts, body)
		}
		for _, att := range email.PDFs {
			res, err := o.decoder.Decode(ctx, att.Data)
			if err != nil {
				// A broken attachment skips, the rest of the message
				// still extracts.
				o.log.Warn("pipeline.attachment_decode_failed",
					"attachment", att.FileName, "error", err)
				continue
			}
			r.texts = append(r.texts, res.PlainText())
			r.tier = res.Tier
		}
		if len(r.texts) == 0 {
			r.err = common.NewAppError("EMAIL_EMPTY", "no extractable text in message", common.ErrDecode)
			return stateDone
		}

	case constants.SourceText:
		r.texts = []string{docsource.TextOf(doc)}
		r.tier = entity.TierNone

	default:
		r.err = common.NewAppError("UNKNOWN_SOURCE", "unrecognized source kind", common.ErrInvalidInput)
		return stateDone
	}
	return stateNormalizing
}

func (o *Orchestrator) normalize(r *run) state {
	for _, t := range r.texts {
		t = textnorm.RepairEncoding(t)
		t = textnorm.Normalize(t)
		r.norm = append(r.norm, t)
	}
	if r.ec.Language == "" && len(r.norm) > 0 {
		r.ec.Language = DetectLanguage(r.norm[0])
	}
	return stateExtractingFields
}

func (o *Orchestrator) extractFields(r *run) state {
	strategies := []Strategy{
		&PatternStrategy{Extractor: fields.NewExtractor(o.cfg.KeywordWindow, o.log)},
		&SchemaStrategy{},
	}

	for _, text := range r.norm {
		merged := entity.CanonicalFields{}
		var matches []entity.FieldMatch
		for i, s := range strategies {
			cf, m := s.Extract(text, r.ec)
			matches = append(matches, m...)
			if i == 0 {
				merged = cf
			} else {
				merged = reconcile.Merge(merged, cf)
			}
		}

		bill := reconcile.MapToSchema(merged, r.ec.Schema, text, r.ec.Language)
		bill.Source = r.ec.Source
		bill.ExtractionMethod = string(r.tier)
		r.bills = append(r.bills, bill)

		if r.trace != nil {
			r.trace.Matches = append(r.trace.Matches, matches...)
			r.trace.TextExcerpt = excerpt(text)
			r.trace.DecodeTier = r.tier
		}
	}
	return stateReconciling
}

func (o *Orchestrator) reconcileAll(r *run) state {
	var best float32
	var breakdown map[string]float32
	anyUsable := false

	for i := range r.bills {
		score, bd := reconcile.Score(r.bills[i].CanonicalFields)
		threshold := o.threshold()

		if r.ec.UseStemming && r.ec.Language == constants.LangHungarian {
			found, coverage := o.stemmer.Coverage(r.norm[i], textnorm.RequiredBillStems)
			stem := reconcile.StemScore(len(found) > 0, float64(coverage))
			if stem > score {
				score, bd = stem, map[string]float32{"stem": stem}
				threshold = o.stemThreshold()
			}
		}

		if score > best {
			best, breakdown = score, bd
		}
		if r.bills[i].HasVendorOrAmount() && score >= threshold {
			anyUsable = true
		}
	}

	r.conf = best
	if !anyUsable {
		r.err = common.NewAppError("BELOW_CONFIDENCE",
			"no bill reached the confidence threshold", common.ErrLowConfidence)
	}
	if r.trace != nil {
		r.trace.ConfidenceBreakdown = breakdown
	}
	return stateDone
}

func (o *Orchestrator) threshold() float32 {
	if o.cfg.MinConfidence > 0 {
		return o.cfg.MinConfidence
	}
	return 0.2
}

func (o *Orchestrator) stemThreshold() float32 {
	if o.cfg.MinStemConfidence > 0 {
		return o.cfg.MinStemConfidence
	}
	return 0.3
}

func (o *Orchestrator) finish(r *run) *entity.ExtractionResult {
	res := &entity.ExtractionResult{
		Success:    r.err == nil,
		Bills:      r.bills,
		Confidence: r.conf,
		Err:        r.err,
		Trace:      r.trace,
	}
	if r.err != nil {
		o.log.Info("pipeline.failed",
			"kind", common.FailureKind(r.err), "confidence", r.conf, "error", r.err)
	} else {
		o.log.Info("pipeline.done", "bills", len(res.Bills), "confidence", r.conf)
	}
	return res
}

// hungarianMarkers are folded tokens that only show up in Hungarian bills.
var hungarianMarkers = []string{
	"fizetendo", "osszeg", "szamla", "hatarido", "esedekes", "ugyfel", " ft", "huf",
}

// DetectLanguage picks between the two supported languages by marker
// presence. English is the default when nothing Hungarian surfaces.
func DetectLanguage(text string) constants.Language {
	folded := textnorm.FoldDiacritics(text)
	hits := 0
	for _, m := range hungarianMarkers {
		if strings.Contains(folded, m) {
			hits++
		}
	}
	if hits >= 2 {
		return constants.LangHungarian
	}
	return constants.LangEnglish
}

func excerpt(text string) string {
	const max = 500
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	for !strings.HasSuffix(cut, " ") && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return strings.TrimSpace(cut)
}
