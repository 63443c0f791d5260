package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/gen/ent"
	entfile "github.com/zhenweng/contract-parser/gen/ent/documentfile"
)

type DocumentFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error)
	GetByProjectAndHash(ctx context.Context, projectID uuid.UUID, hash []byte) (*ent.DocumentFile, error)
	Create(ctx context.Context, projectID uuid.UUID, kind, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error)
	UpsertByHash(ctx context.Context, projectID uuid.UUID, kind, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error)
	LinkContract(ctx context.Context, fileID, contractID uuid.UUID) error
	LinkInvoice(ctx context.Context, fileID, invoiceID uuid.UUID) error
}

type documentFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentFileRepository(entc *ent.Client, logger *slog.Logger) DocumentFileRepository {
	return &documentFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error) {
	return r.ent.DocumentFile.Get(ctx, id)
}

func (r *documentFileRepo) GetByProjectAndHash(ctx context.Context, projectID uuid.UUID, hash []byte) (*ent.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Query().
		Where(
			entfile.ProjectID(projectID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			r.logger.Error("failed to get document file by project and hash", "project_id", projectID, "error", err)
		}
		return nil, err
	}
	return row, nil
}

func (r *documentFileRepo) Create(ctx context.Context, projectID uuid.UUID, kind, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Create().
		SetProjectID(projectID).
		SetKind(kind).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document file", "project_id", projectID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentFileRepo) UpsertByHash(ctx context.Context, projectID uuid.UUID, kind, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error) {
	existing, err := r.GetByProjectAndHash(ctx, projectID, hash)
	if err == nil {
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}
	row, err := r.Create(ctx, projectID, kind, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert document file by hash", "project_id", projectID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentFileRepo) LinkContract(ctx context.Context, fileID, contractID uuid.UUID) error {
	return r.ent.DocumentFile.UpdateOneID(fileID).SetContractID(contractID).Exec(ctx)
}

func (r *documentFileRepo) LinkInvoice(ctx context.Context, fileID, invoiceID uuid.UUID) error {
	return r.ent.DocumentFile.UpdateOneID(fileID).SetInvoiceID(invoiceID).Exec(ctx)
}
