package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/akaraszi/billscan/gen/ent"
	"github.com/akaraszi/billscan/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent       *ent.Client
	billsRepo repository.BillRepository
	logger    *slog.Logger
}

func NewService(entc *ent.Client, bills repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, billsRepo: bills, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes) for the given profile
// and due-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all bills for profile.
func (s *Service) ExportBillsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	bills, err := s.billsRepo.List(ctx, profileID, fromDate, toDate, 0)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	// Dynamic field names vary per bill; collect the union so every bill
	// row has the same column set.
	dynCols := dynamicColumns(bills)

	headers := []string{
		"Vendor",
		"Amount",
		"Currency",
		"Issue Date",
		"Due Date",
		"Account Number",
		"Invoice Number",
		"Category",
	}
	headers = append(headers, dynCols...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, b.Vendor)
		write(2, b.Amount)
		write(3, b.CurrencyCode)
		write(4, formatDate(b.IssueDate))
		write(5, formatDate(b.DueDate))
		write(6, b.AccountNumber)
		write(7, b.InvoiceNumber)
		write(8, b.Category)

		dyn := decodeDynamic(b)
		for i, name := range dynCols {
			if v, ok := dyn[name]; ok {
				write(9+i, v)
			}
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // vendor
	_ = f.SetColWidth(sheet, "B", "C", 12) // amount, currency
	_ = f.SetColWidth(sheet, "D", "E", 14) // dates
	_ = f.SetColWidth(sheet, "F", "G", 20) // identifiers
	_ = f.SetColWidth(sheet, "H", "H", 18) // category

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(bills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func decodeDynamic(b *ent.Bill) map[string]any {
	if len(b.DynamicFields) == 0 {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(b.DynamicFields, &out); err != nil {
		return nil
	}
	return out
}

func dynamicColumns(bills []*ent.Bill) []string {
	set := map[string]struct{}{}
	for _, b := range bills {
		for name := range decodeDynamic(b) {
			set[name] = struct{}{}
		}
	}
	cols := make([]string, 0, len(set))
	for name := range set {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}
