package utils

import (
	"fmt"
	"time"

	"github.com/zhenweng/contract-parser/gen/ent"
	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func amountOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func dateOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

// ParseYMD parses a YYYY-MM-DD string into a midnight-UTC time to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProject(e *ent.Project) *entity.Project {
	return &entity.Project{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		ContractNumber: e.ContractNumber,
		ContractName:   e.ContractName,
		PartyA:         e.PartyA,
		PartyB:         e.PartyB,
		Amount:         e.Amount,
		SignDate:       e.SignDate,
		EffectiveDate:  e.EffectiveDate,
		ExpiryDate:     e.ExpiryDate,
		FilePath:       e.FilePath,
		ParsedData:     e.ParsedData,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		InvoiceNumber: e.InvoiceNumber,
		InvoiceCode:   e.InvoiceCode,
		Amount:        e.Amount,
		InvoiceDate:   e.InvoiceDate,
		Seller:        e.Seller,
		Buyer:         e.Buyer,
		TaxAmount:     e.TaxAmount,
		Remark:        e.Remark,
		FilePath:      e.FilePath,
		ParsedData:    e.ParsedData,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToDocumentFile(e *ent.DocumentFile) *entity.DocumentFile {
	return &entity.DocumentFile{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Kind:        e.Kind,
		ContractID:  e.ContractID,
		InvoiceID:   e.InvoiceID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToParseJob(e *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:           e.ID,
		FileID:       e.FileID,
		ProjectID:    e.ProjectID,
		Kind:         e.Kind,
		Format:       e.Format,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		Status:       e.Status,
		ErrorMessage: e.ErrorMessage,
		ParseStatus:  e.ParseStatus,
		NeedsReview:  e.NeedsReview,
		RawText:      e.RawText,
		ResultJSON:   e.ResultJSON,
	}
}

func ToPBProject(p *entity.Project) *parserpb.Project {
	return &parserpb.Project{
		Id:          p.ID.String(),
		Name:        p.Name,
		Description: strOrEmpty(p.Description),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBContract(c *entity.Contract) *parserpb.Contract {
	return &parserpb.Contract{
		Id:             c.ID.String(),
		ProjectId:      c.ProjectID.String(),
		ContractNumber: strOrEmpty(c.ContractNumber),
		ContractName:   strOrEmpty(c.ContractName),
		PartyA:         strOrEmpty(c.PartyA),
		PartyB:         strOrEmpty(c.PartyB),
		Amount:         amountOrEmpty(c.Amount),
		SignDate:       dateOrEmpty(c.SignDate),
		EffectiveDate:  dateOrEmpty(c.EffectiveDate),
		ExpiryDate:     dateOrEmpty(c.ExpiryDate),
		FilePath:       strOrEmpty(c.FilePath),
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(inv *entity.Invoice) *parserpb.Invoice {
	return &parserpb.Invoice{
		Id:            inv.ID.String(),
		ProjectId:     inv.ProjectID.String(),
		InvoiceNumber: strOrEmpty(inv.InvoiceNumber),
		InvoiceCode:   strOrEmpty(inv.InvoiceCode),
		Amount:        amountOrEmpty(inv.Amount),
		InvoiceDate:   dateOrEmpty(inv.InvoiceDate),
		Seller:        strOrEmpty(inv.Seller),
		Buyer:         strOrEmpty(inv.Buyer),
		TaxAmount:     amountOrEmpty(inv.TaxAmount),
		Remark:        strOrEmpty(inv.Remark),
		FilePath:      strOrEmpty(inv.FilePath),
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBParseJob(j *entity.ParseJob) *parserpb.ParseJob {
	finished := ""
	if j.FinishedAt != nil {
		finished = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return &parserpb.ParseJob{
		Id:           j.ID.String(),
		FileId:       j.FileID.String(),
		ProjectId:    j.ProjectID.String(),
		Kind:         j.Kind,
		Format:       j.Format,
		Status:       j.Status,
		ParseStatus:  strOrEmpty(j.ParseStatus),
		NeedsReview:  j.NeedsReview,
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:   finished,
	}
}
