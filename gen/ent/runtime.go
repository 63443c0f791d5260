// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/db/ent/schema"
	"github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/gen/ent/documentfile"
	"github.com/zhenweng/contract-parser/gen/ent/invoice"
	"github.com/zhenweng/contract-parser/gen/ent/parsejob"
	"github.com/zhenweng/contract-parser/gen/ent/project"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[12].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[13].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	documentfileFields := schema.DocumentFile{}.Fields()
	_ = documentfileFields
	// documentfileDescKind is the schema descriptor for kind field.
	documentfileDescKind := documentfileFields[4].Descriptor()
	// documentfile.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	documentfile.KindValidator = func() func(string) error {
		validators := documentfileDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentfileDescSourcePath is the schema descriptor for source_path field.
	documentfileDescSourcePath := documentfileFields[5].Descriptor()
	// documentfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	documentfile.SourcePathValidator = documentfileDescSourcePath.Validators[0].(func(string) error)
	// documentfileDescContentHash is the schema descriptor for content_hash field.
	documentfileDescContentHash := documentfileFields[6].Descriptor()
	// documentfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	documentfile.ContentHashValidator = documentfileDescContentHash.Validators[0].(func([]byte) error)
	// documentfileDescFilename is the schema descriptor for filename field.
	documentfileDescFilename := documentfileFields[7].Descriptor()
	// documentfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	documentfile.FilenameValidator = documentfileDescFilename.Validators[0].(func(string) error)
	// documentfileDescFileExt is the schema descriptor for file_ext field.
	documentfileDescFileExt := documentfileFields[8].Descriptor()
	// documentfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	documentfile.FileExtValidator = documentfileDescFileExt.Validators[0].(func(string) error)
	// documentfileDescFileSize is the schema descriptor for file_size field.
	documentfileDescFileSize := documentfileFields[9].Descriptor()
	// documentfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	documentfile.FileSizeValidator = documentfileDescFileSize.Validators[0].(func(int) error)
	// documentfileDescUploadedAt is the schema descriptor for uploaded_at field.
	documentfileDescUploadedAt := documentfileFields[10].Descriptor()
	// documentfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentfile.DefaultUploadedAt = documentfileDescUploadedAt.Default.(func() time.Time)
	// documentfileDescID is the schema descriptor for id field.
	documentfileDescID := documentfileFields[0].Descriptor()
	// documentfile.DefaultID holds the default value on creation for the id field.
	documentfile.DefaultID = documentfileDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescKind is the schema descriptor for kind field.
	parsejobDescKind := parsejobFields[3].Descriptor()
	// parsejob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	parsejob.KindValidator = func() func(string) error {
		validators := parsejobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[5].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[7].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = func() func(string) error {
		validators := parsejobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescNeedsReview is the schema descriptor for needs_review field.
	parsejobDescNeedsReview := parsejobFields[10].Descriptor()
	// parsejob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	parsejob.DefaultNeedsReview = parsejobDescNeedsReview.Default.(bool)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
}
