package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/gen/ent"
	entprofile "github.com/akaraszi/billscan/gen/ent/profile"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error)
	GetByName(ctx context.Context, name string) (*ent.Profile, error)
	Create(ctx context.Context, name, defaultCurrency, defaultLanguage string) (*ent.Profile, error)
	// GetOrCreate resolves a profile by name, creating it on first use.
	GetOrCreate(ctx context.Context, name, defaultCurrency, defaultLanguage string) (*ent.Profile, error)
}

type profileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProfileRepository(entc *ent.Client, log *slog.Logger) ProfileRepository {
	return &profileRepo{ent: entc, log: log}
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return r.ent.Profile.Get(ctx, id)
}

func (r *profileRepo) GetByName(ctx context.Context, name string) (*ent.Profile, error) {
	return r.ent.Profile.Query().
		Where(entprofile.Name(name)).
		Only(ctx)
}

func (r *profileRepo) Create(ctx context.Context, name, defaultCurrency, defaultLanguage string) (*ent.Profile, error) {
	row, err := r.ent.Profile.Create().
		SetName(name).
		SetDefaultCurrency(defaultCurrency).
		SetDefaultLanguage(defaultLanguage).
		Save(ctx)
	if err != nil {
		r.log.Error("profile create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("profile created", "profile_id", row.ID, "name", name)
	return row, nil
}

func (r *profileRepo) GetOrCreate(ctx context.Context, name, defaultCurrency, defaultLanguage string) (*ent.Profile, error) {
	if existing, err := r.GetByName(ctx, name); err == nil {
		return existing, nil
	}
	return r.Create(ctx, name, defaultCurrency, defaultLanguage)
}
