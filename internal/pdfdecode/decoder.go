// Package pdfdecode turns PDF bytes into per-page positioned text runs.
//
// Three tiers, each attempted only after the previous yields no usable
// text: a structured object-model parse (positioned runs), a raw
// content-stream scan for text-show operators, and a printable byte-run
// scrape. The succeeding tier is recorded for diagnostics.
package pdfdecode

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/layout"
)

// Result is the decode outcome: ordered pages plus the tier that produced
// their text. Pages may be partially empty when individual pages failed.
type Result struct {
	Pages []entity.Page
	Tier  entity.DecodeTier
}

// PlainText joins all page text in page order.
func (r *Result) PlainText() string {
	parts := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		if p.PlainText != "" {
			parts = append(parts, p.PlainText)
		}
	}
	return strings.Join(parts, "\n")
}

type Decoder struct {
	DecodeTimeout time.Duration // whole-document budget
	PageTimeout   time.Duration // single-page budget
	YTolerance    float64
	Log           *slog.Logger
}

func NewDecoder(decodeTimeout, pageTimeout time.Duration, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	if decodeTimeout <= 0 {
		decodeTimeout = 30 * time.Second
	}
	if pageTimeout <= 0 {
		pageTimeout = 10 * time.Second
	}
	return &Decoder{
		DecodeTimeout: decodeTimeout,
		PageTimeout:   pageTimeout,
		YTolerance:    layout.DefaultYTolerance,
		Log:           logger,
	}
}

// Decode runs the tiered decode. On timeout it returns the pages completed
// so far together with the timeout error; it never reports a truncated
// document as a clean success.
func (d *Decoder) Decode(ctx context.Context, data []byte) (*Result, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, common.NewAppError("PDF_HEADER", "missing %PDF- signature", common.ErrDecode)
	}

	ctx, cancel := context.WithTimeout(ctx, d.DecodeTimeout)
	defer cancel()

	res, err := d.decodeStructured(ctx, data)
	if err == nil && res.hasText() {
		res.Tier = entity.TierStructured
		d.Log.Debug("pdfdecode.structured.ok", "pages", len(res.Pages))
		return res, nil
	}
	if ctx.Err() != nil {
		// Timed out mid-document: surface what completed.
		if res == nil {
			res = &Result{Tier: entity.TierNone}
		}
		return res, common.NewAppError("PDF_TIMEOUT", "decode timed out", common.ErrDecode)
	}
	if err != nil {
		d.Log.Warn("pdfdecode.structured.failed", "err", err)
	} else {
		d.Log.Debug("pdfdecode.structured.empty")
	}

	// Tier 2: scan content streams for text-show string literals.
	if text := scanContentStreams(data); text != "" {
		d.Log.Debug("pdfdecode.stream_scan.ok", "bytes", len(text))
		return &Result{
			Pages: []entity.Page{{Number: 1, PlainText: text}},
			Tier:  entity.TierStream,
		}, nil
	}

	// Tier 3: printable byte-run scrape.
	if text := scrapePrintable(data); text != "" {
		d.Log.Debug("pdfdecode.scrape.ok", "bytes", len(text))
		return &Result{
			Pages: []entity.Page{{Number: 1, PlainText: text}},
			Tier:  entity.TierScrape,
		}, nil
	}

	return nil, common.NewAppError("PDF_NO_TEXT", "no text recoverable by any decoder tier", common.ErrDecode)
}

// decodeStructured parses the PDF object model and extracts positioned runs
// per page. Pages decode in parallel and reassemble in original order; a
// page that fails is recorded empty without aborting siblings.
func (d *Decoder) decodeStructured(ctx context.Context, data []byte) (res *Result, err error) {
	// The parser panics on malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := safeNumPages(reader)
	if total <= 0 {
		return nil, fmt.Errorf("pdf reports no pages")
	}

	pages := d.decodePages(ctx, total, func(i int) entity.Page {
		return decodePage(reader, i, d.YTolerance)
	})

	if ctx.Err() != nil {
		return &Result{Pages: compactDecoded(pages)}, ctx.Err()
	}
	return &Result{Pages: pages}, nil
}

// decodePages fans the per-page decode out in parallel and reassembles in
// page order. A page that panics or overruns its timeout yields an empty
// slot; sibling pages keep going.
func (d *Decoder) decodePages(ctx context.Context, total int, decode func(int) entity.Page) []entity.Page {
	pages := make([]entity.Page, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i := 1; i <= total; i++ {
		i := i
		g.Go(func() error {
			pageCtx, cancel := context.WithTimeout(gctx, d.PageTimeout)
			defer cancel()

			done := make(chan entity.Page, 1)
			go func() {
				done <- safePage(i, decode)
			}()

			select {
			case p := <-done:
				pages[i-1] = p
			case <-pageCtx.Done():
				d.Log.Warn("pdfdecode.page.timeout", "page", i)
				pages[i-1] = entity.Page{Number: i}
			}
			return nil
		})
	}
	_ = g.Wait()
	return pages
}

// safePage converts a page decode panic into an empty page for that slot.
func safePage(number int, decode func(int) entity.Page) (out entity.Page) {
	out = entity.Page{Number: number}
	defer func() {
		if r := recover(); r != nil {
			out = entity.Page{Number: number}
		}
	}()
	return decode(number)
}

// decodePage extracts one page's runs and reconstructs its reading order.
// Failures (including library panics) yield an empty page.
func decodePage(reader *pdf.Reader, number int, tolerance float64) (out entity.Page) {
	out = entity.Page{Number: number}

	page := reader.Page(number)
	if page.V.IsNull() {
		return out
	}

	out.Width, out.Height = mediaBox(page)

	content := page.Content()
	runs := make([]entity.PositionedTextRun, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, entity.PositionedTextRun{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			Height:   t.FontSize,
			FontName: t.Font,
			FontSize: t.FontSize,
		})
	}

	out.Runs = runs
	out.Lines, out.PlainText = layout.Reconstruct(runs, tolerance)
	return out
}

func safeNumPages(reader *pdf.Reader) (n int) {
	defer func() { _ = recover() }()
	return reader.NumPage()
}

// mediaBox reads the page dimensions from the MediaBox array, zero when absent.
func mediaBox(page pdf.Page) (w, h float64) {
	defer func() { _ = recover() }()
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() != 4 {
		return 0, 0
	}
	llx, lly := box.Index(0).Float64(), box.Index(1).Float64()
	urx, ury := box.Index(2).Float64(), box.Index(3).Float64()
	return urx - llx, ury - lly
}

func (r *Result) hasText() bool {
	if r == nil {
		return false
	}
	for _, p := range r.Pages {
		if strings.TrimSpace(p.PlainText) != "" {
			return true
		}
	}
	return false
}

// compactDecoded keeps the pages finished before a timeout, preserving order.
func compactDecoded(pages []entity.Page) []entity.Page {
	out := make([]entity.Page, 0, len(pages))
	for _, p := range pages {
		if p.Number != 0 {
			out = append(out, p)
		}
	}
	return out
}
