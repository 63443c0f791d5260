package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/gen/ent"
	entinvoice "github.com/zhenweng/contract-parser/gen/ent/invoice"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/utils"
)

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, projectID uuid.UUID) ([]*entity.Invoice, error)
	EnsureForFile(ctx context.Context, file *ent.DocumentFile) (*entity.Invoice, error)
	SaveFields(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, projectID uuid.UUID) ([]*entity.Invoice, error) {
	rows, err := r.client.Invoice.Query().
		Where(entinvoice.ProjectID(projectID)).
		Order(entinvoice.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInvoice(row)
	}
	return out, nil
}

func (r *invoiceRepository) EnsureForFile(ctx context.Context, file *ent.DocumentFile) (*entity.Invoice, error) {
	if file.InvoiceID != nil && *file.InvoiceID != uuid.Nil {
		return r.GetByID(ctx, *file.InvoiceID)
	}
	row, err := r.client.Invoice.Create().
		SetProjectID(file.ProjectID).
		SetFilePath(file.SourcePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice for file", "file_id", file.ID, "error", err)
		return nil, err
	}
	if err := r.client.DocumentFile.UpdateOneID(file.ID).SetInvoiceID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to link file to invoice", "file_id", file.ID, "invoice_id", row.ID, "error", err)
		return nil, err
	}
	r.logger.Info("invoice created for file", "file_id", file.ID, "invoice_id", row.ID)
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) SaveFields(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(inv.ID).
		SetNillableInvoiceNumber(inv.InvoiceNumber).
		SetNillableInvoiceCode(inv.InvoiceCode).
		SetNillableAmount(inv.Amount).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableSeller(inv.Seller).
		SetNillableBuyer(inv.Buyer).
		SetNillableTaxAmount(inv.TaxAmount).
		SetNillableRemark(inv.Remark).
		SetParsedData(inv.ParsedData).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save invoice fields", "invoice_id", inv.ID, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}
