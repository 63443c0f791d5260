// Package export produces XLSX workbooks from parsed records.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/zhenweng/contract-parser/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	contractsRepo repository.ContractRepository
	invoicesRepo  repository.InvoiceRepository
	logger        *slog.Logger
}

func NewService(contracts repository.ContractRepository, invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contractsRepo: contracts, invoicesRepo: invoices, logger: logger}
}

// ExportProjectXLSX returns a workbook with one sheet of contracts and one of
// invoices for the project.
func (s *Service) ExportProjectXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	start := time.Now()

	contracts, err := s.contractsRepo.ListContracts(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}
	invoices, err := s.invoicesRepo.ListInvoices(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()

	const contractSheet = "Contracts"
	idx, err := f.NewSheet(contractSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	// drop the default sheet excelize creates
	_ = f.DeleteSheet("Sheet1")

	contractHeaders := []string{
		"Contract Number",
		"Contract Name",
		"Party A",
		"Party B",
		"Amount",
		"Sign Date",
		"Effective Date",
		"Expiry Date",
		"File Path",
	}
	for i, h := range contractHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(contractSheet, cell, h)
	}

	row := 2
	for _, c := range contracts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(contractSheet, cell, v)
		}
		write(1, strOr(c.ContractNumber))
		write(2, strOr(c.ContractName))
		write(3, strOr(c.PartyA))
		write(4, strOr(c.PartyB))
		write(5, amountOr(c.Amount))
		write(6, dateOr(c.SignDate))
		write(7, dateOr(c.EffectiveDate))
		write(8, dateOr(c.ExpiryDate))
		write(9, strOr(c.FilePath))
		row++
	}

	_ = f.SetColWidth(contractSheet, "A", "B", 24)
	_ = f.SetColWidth(contractSheet, "C", "D", 28)
	_ = f.SetColWidth(contractSheet, "E", "H", 14)
	_ = f.SetColWidth(contractSheet, "I", "I", 60)

	const invoiceSheet = "Invoices"
	if _, err := f.NewSheet(invoiceSheet); err != nil {
		return nil, err
	}

	invoiceHeaders := []string{
		"Invoice Number",
		"Invoice Code",
		"Amount",
		"Tax Amount",
		"Invoice Date",
		"Seller",
		"Buyer",
		"Remark",
		"File Path",
	}
	for i, h := range invoiceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invoiceSheet, cell, h)
	}

	row = 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(invoiceSheet, cell, v)
		}
		write(1, strOr(inv.InvoiceNumber))
		write(2, strOr(inv.InvoiceCode))
		write(3, amountOr(inv.Amount))
		write(4, amountOr(inv.TaxAmount))
		write(5, dateOr(inv.InvoiceDate))
		write(6, strOr(inv.Seller))
		write(7, strOr(inv.Buyer))
		write(8, strOr(inv.Remark))
		write(9, strOr(inv.FilePath))
		row++
	}

	_ = f.SetColWidth(invoiceSheet, "A", "B", 22)
	_ = f.SetColWidth(invoiceSheet, "C", "E", 14)
	_ = f.SetColWidth(invoiceSheet, "F", "G", 28)
	_ = f.SetColWidth(invoiceSheet, "H", "H", 40)
	_ = f.SetColWidth(invoiceSheet, "I", "I", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("project exported",
		"project_id", projectID,
		"contracts", len(contracts),
		"invoices", len(invoices),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func amountOr(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func dateOr(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}
