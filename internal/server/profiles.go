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
	"github.com/akaraszi/billscan/internal/repository"
	"github.com/akaraszi/billscan/internal/schema"
)

type ProfileServer struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	schemas  repository.FieldSchemaRepository
	logger   *slog.Logger
}

func NewProfileServer(p repository.ProfileRepository, s repository.FieldSchemaRepository, logger *slog.Logger) *ProfileServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServer{profiles: p, schemas: s, logger: logger}
}

func (s *ProfileServer) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if len(currency) != 3 {
		return nil, status.Error(codes.InvalidArgument, "default_currency must be a 3-letter code")
	}
	lang := req.GetDefaultLanguage()

	p, err := s.profiles.Create(ctx, name, currency, lang)
	if err != nil {
		s.logger.Warn("create profile failed", "name", name, "err", err)
		return nil, status.Error(codes.Internal, "create profile failed")
	}

	return &v1.CreateProfileResponse{
		Profile: &v1.Profile{
			Id:              p.ID.String(),
			Name:            p.Name,
			DefaultCurrency: p.DefaultCurrency,
			DefaultLanguage: p.DefaultLanguage,
			CreatedAt:       p.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:       p.UpdatedAt.Format(time.RFC3339Nano),
		},
	}, nil
}

func (s *ProfileServer) SetFieldSchema(ctx context.Context, req *v1.SetFieldSchemaRequest) (*v1.SetFieldSchemaResponse, error) {
	profileID, err := uuid.Parse(strings.TrimSpace(req.GetProfileId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	entries, err := schema.Parse(req.GetEntriesJson())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "field schema: %v", err)
	}

	row, err := s.schemas.Store(ctx, profileID, entries)
	if err != nil {
		s.logger.Warn("field schema store failed", "profile_id", profileID, "err", err)
		return nil, status.Error(codes.Internal, "store field schema failed")
	}
	return &v1.SetFieldSchemaResponse{Version: int32(row.Version)}, nil
}
