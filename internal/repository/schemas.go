package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/gen/ent"
	entschema "github.com/akaraszi/billscan/gen/ent/fieldschema"
	"github.com/akaraszi/billscan/internal/entity"
	"github.com/akaraszi/billscan/internal/schema"
)

type FieldSchemaRepository interface {
	schema.Provider
	Store(ctx context.Context, profileID uuid.UUID, entries []entity.FieldSchemaEntry) (*ent.FieldSchema, error)
}

type fieldSchemaRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFieldSchemaRepository(entc *ent.Client, log *slog.Logger) FieldSchemaRepository {
	return &fieldSchemaRepo{ent: entc, log: log}
}

// FetchFieldSchema loads the newest schema version for a profile. A missing
// or unparseable row degrades to the default field set rather than failing
// the extraction that asked for it.
func (r *fieldSchemaRepo) FetchFieldSchema(ctx context.Context, profileID string) ([]entity.FieldSchemaEntry, error) {
	pid, err := uuid.Parse(profileID)
	if err != nil {
		return schema.Default(), nil
	}

	row, err := r.ent.FieldSchema.Query().
		Where(entschema.ProfileID(pid)).
		Order(ent.Desc(entschema.FieldVersion)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			r.log.Warn("field schema fetch failed, using defaults", "profile_id", profileID, "err", err)
		}
		return schema.Default(), nil
	}

	entries, err := schema.Parse(row.Entries)
	if err != nil {
		r.log.Warn("stored field schema invalid, using defaults", "profile_id", profileID, "err", err)
		return schema.Default(), nil
	}
	return entries, nil
}

// Store validates and persists a new schema version for a profile.
func (r *fieldSchemaRepo) Store(ctx context.Context, profileID uuid.UUID, entries []entity.FieldSchemaEntry) (*ent.FieldSchema, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	if _, err := schema.Parse(raw); err != nil {
		return nil, err
	}

	version := 1
	if latest, err := r.ent.FieldSchema.Query().
		Where(entschema.ProfileID(profileID)).
		Order(ent.Desc(entschema.FieldVersion)).
		First(ctx); err == nil {
		version = latest.Version + 1
	}

	row, err := r.ent.FieldSchema.Create().
		SetProfileID(profileID).
		SetEntries(raw).
		SetVersion(version).
		Save(ctx)
	if err != nil {
		r.log.Error("field schema store failed", "profile_id", profileID, "err", err)
		return nil, err
	}
	r.log.Info("field schema stored", "profile_id", profileID, "version", version)
	return row, nil
}
