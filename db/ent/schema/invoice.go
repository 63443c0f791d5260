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

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("project_id", uuid.UUID{}),
		field.String("invoice_number").Optional().Nillable(),
		field.String("invoice_code").Optional().Nillable(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("seller").Optional().Nillable(),
		field.String("buyer").Optional().Nillable(),
		field.Float("tax_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("remark").Optional().Nillable(),
		field.String("file_path").Optional().Nillable(),
		field.JSON("parsed_data", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE project (FK: invoices.project_id)
		edge.From("project", Project.Type).
			Ref("invoices").
			Field("project_id").
			Required().
			Unique(),
		// ONE invoice -> MANY files
		edge.To("files", DocumentFile.Type),
	}
}
