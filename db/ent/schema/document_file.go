package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/utils"
)

type DocumentFile struct {
	ent.Schema
}

func (DocumentFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_files"},
	}
}

func (DocumentFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("contract_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("invoice_id", uuid.UUID{}).Optional().Nillable(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.DocKinds...)),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (DocumentFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE project
		edge.From("project", Project.Type).
			Ref("files").
			Field("project_id").
			Required().
			Unique(),
		// OPTIONAL: MANY files -> ONE contract
		edge.From("contract", Contract.Type).
			Ref("files").
			Field("contract_id").
			Unique(),
		// OPTIONAL: MANY files -> ONE invoice
		edge.From("invoice", Invoice.Type).
			Ref("files").
			Field("invoice_id").
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (DocumentFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "content_hash").Unique(),
		index.Fields("project_id", "uploaded_at"),
	}
}
