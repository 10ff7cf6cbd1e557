package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/akaraszi/billscan/gen/ent"
	v1 "github.com/akaraszi/billscan/gen/proto/billscan/v1"
	"github.com/akaraszi/billscan/internal/repository"
)

type BillsServer struct {
	v1.UnimplementedBillsServiceServer
	bills  repository.BillRepository
	logger *slog.Logger
}

func NewBillsServer(bills repository.BillRepository, logger *slog.Logger) *BillsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BillsServer{bills: bills, logger: logger}
}

func (s *BillsServer) ListBills(ctx context.Context, req *v1.ListBillsRequest) (*v1.ListBillsResponse, error) {
	profileID, err := uuid.Parse(strings.TrimSpace(req.GetProfileId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	fromPtr, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	toPtr, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rows, err := s.bills.List(ctx, profileID, fromPtr, toPtr, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list bills failed", "profile_id", profileID, "err", err)
		return nil, status.Error(codes.Internal, "list bills failed")
	}

	resp := &v1.ListBillsResponse{}
	for _, row := range rows {
		resp.Bills = append(resp.Bills, toPBBillRow(row))
	}
	return resp, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return &t, nil
}

func toPBBillRow(row *ent.Bill) *v1.Bill {
	out := &v1.Bill{
		Id:            row.ID.String(),
		Vendor:        row.Vendor,
		Amount:        row.Amount,
		Currency:      row.CurrencyCode,
		AccountNumber: row.AccountNumber,
		InvoiceNumber: row.InvoiceNumber,
		Category:      row.Category,
	}
	if row.IssueDate != nil && !row.IssueDate.IsZero() {
		out.IssueDate = row.IssueDate.Format("2006-01-02")
	}
	if row.DueDate != nil && !row.DueDate.IsZero() {
		out.DueDate = row.DueDate.Format("2006-01-02")
	}
	if len(row.DynamicFields) > 0 {
		out.DynamicFieldsJson = row.DynamicFields
	}
	return out
}
