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

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/db/ent/schema/utils"
)

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("vendor").Optional(),
		field.Float("amount").Optional().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").Optional().MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("issue_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("account_number").Optional(),
		field.String("invoice_number").Optional(),
		field.String("category").Optional().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.JSON("dynamic_fields", json.RawMessage{}).Optional(),
		field.JSON("provenance", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE profile (FK: bills.profile_id)
		edge.From("profile", Profile.Type).
			Ref("bills").
			Field("profile_id").
			Required().
			Unique(),
		// ONE bill -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "due_date"),
		index.Fields("profile_id", "vendor"),
	}
}
