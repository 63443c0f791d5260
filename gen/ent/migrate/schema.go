// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "contract_number", Type: field.TypeString, Nullable: true},
		{Name: "contract_name", Type: field.TypeString, Nullable: true},
		{Name: "party_a", Type: field.TypeString, Nullable: true},
		{Name: "party_b", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "sign_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "parsed_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_projects_contracts",
				Columns:    []*schema.Column{ContractsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// DocumentFilesColumns holds the columns for the "document_files" table.
	DocumentFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// DocumentFilesTable holds the schema information for the "document_files" table.
	DocumentFilesTable = &schema.Table{
		Name:       "document_files",
		Columns:    DocumentFilesColumns,
		PrimaryKey: []*schema.Column{DocumentFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_files_contracts_files",
				Columns:    []*schema.Column{DocumentFilesColumns[8]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "document_files_invoices_files",
				Columns:    []*schema.Column{DocumentFilesColumns[9]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "document_files_projects_files",
				Columns:    []*schema.Column{DocumentFilesColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentfile_project_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentFilesColumns[10], DocumentFilesColumns[3]},
			},
			{
				Name:    "documentfile_project_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentFilesColumns[10], DocumentFilesColumns[7]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_code", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "seller", Type: field.TypeString, Nullable: true},
		{Name: "buyer", Type: field.TypeString, Nullable: true},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "remark", Type: field.TypeString, Nullable: true},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "parsed_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_projects_invoices",
				Columns:    []*schema.Column{InvoicesColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ParseJobColumns holds the columns for the "parse_job" table.
	ParseJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "parse_status", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ParseJobTable holds the schema information for the "parse_job" table.
	ParseJobTable = &schema.Table{
		Name:       "parse_job",
		Columns:    ParseJobColumns,
		PrimaryKey: []*schema.Column{ParseJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_job_document_files_jobs",
				Columns:    []*schema.Column{ParseJobColumns[11]},
				RefColumns: []*schema.Column{DocumentFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parse_job_projects_jobs",
				Columns:    []*schema.Column{ParseJobColumns[12]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_project_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[12], ParseJobColumns[5], ParseJobColumns[3]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[11]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractsTable,
		DocumentFilesTable,
		InvoicesTable,
		ParseJobTable,
		ProjectsTable,
	}
)

func init() {
	ContractsTable.ForeignKeys[0].RefTable = ProjectsTable
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	DocumentFilesTable.ForeignKeys[0].RefTable = ContractsTable
	DocumentFilesTable.ForeignKeys[1].RefTable = InvoicesTable
	DocumentFilesTable.ForeignKeys[2].RefTable = ProjectsTable
	DocumentFilesTable.Annotation = &entsql.Annotation{
		Table: "document_files",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ProjectsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	ParseJobTable.ForeignKeys[0].RefTable = DocumentFilesTable
	ParseJobTable.ForeignKeys[1].RefTable = ProjectsTable
	ParseJobTable.Annotation = &entsql.Annotation{
		Table: "parse_job",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
}
