package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FieldSchema stores one profile's field configuration as validated JSON.
// The document is validated before write; reads trust it.
type FieldSchema struct{ ent.Schema }

func (FieldSchema) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_schemas"},
	}
}

func (FieldSchema) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.JSON("entries", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Int("version").Default(1).NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldSchema) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("field_schemas").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (FieldSchema) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "version").Unique(),
	}
}
