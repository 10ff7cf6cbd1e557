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
	"github.com/akaraszi/billscan/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportBills(ctx context.Context, req *v1.ExportBillsRequest) (*v1.ExportBillsResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fromPtr, err = parseDate(req.GetFromDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if toPtr, err = parseDate(req.GetToDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	xlsx, err := s.svc.ExportBillsXLSX(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", pid, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportBillsResponse{Xlsx: xlsx}, nil
}
