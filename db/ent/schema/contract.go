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

	"github.com/google/uuid"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("project_id", uuid.UUID{}),
		field.String("contract_number").Optional().Nillable(),
		field.String("contract_name").Optional().Nillable(),
		field.String("party_a").Optional().Nillable(),
		field.String("party_b").Optional().Nillable(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("sign_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("effective_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("expiry_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("file_path").Optional().Nillable(),
		field.JSON("parsed_data", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY contracts -> ONE project (FK: contracts.project_id)
		edge.From("project", Project.Type).
			Ref("contracts").
			Field("project_id").
			Required().
			Unique(),
		// ONE contract -> MANY files
		edge.To("files", DocumentFile.Type),
	}
}
