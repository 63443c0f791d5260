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

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/utils"
)

type ParseJob struct{ ent.Schema }

func (ParseJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_job"},
	}
}

func (ParseJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("project_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.DocKinds...)),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileFormats...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.String("parse_status").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result_json", json.RawMessage{}).
			Optional(),
	}
}

func (ParseJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", DocumentFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("project", Project.Type).
			Ref("jobs").
			Field("project_id").
			Unique().
			Required(),
	}
}

func (ParseJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status", "started_at"),
		index.Fields("file_id"),
	}
}
