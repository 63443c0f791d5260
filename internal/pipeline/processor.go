// Package pipeline runs the full parse flow for one ingested file: start a
// job, acquire text and extract fields through the parser facade, validate
// the audit blob, merge into the contract or invoice record, and close the
// job. An unsupported extension still closes the job with a stored
// unsupported result so nothing disappears silently.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/gen/ent"
	"github.com/zhenweng/contract-parser/internal/merge"
	"github.com/zhenweng/contract-parser/internal/parser"
	"github.com/zhenweng/contract-parser/internal/repository"
)

type Processor struct {
	files     repository.DocumentFileRepository
	jobs      repository.ParseJobRepository
	contracts repository.ContractRepository
	invoices  repository.InvoiceRepository
	parser    *parser.Parser
	logger    *slog.Logger

	contractSchema map[string]any
	invoiceSchema  map[string]any
}

func NewProcessor(
	files repository.DocumentFileRepository,
	jobs repository.ParseJobRepository,
	contracts repository.ContractRepository,
	invoices repository.InvoiceRepository,
	p *parser.Parser,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		files:          files,
		jobs:           jobs,
		contracts:      contracts,
		invoices:       invoices,
		parser:         p,
		logger:         logger,
		contractSchema: parser.BuildContractResultSchema(),
		invoiceSchema:  parser.BuildInvoiceResultSchema(),
	}
}

// ProcessFile parses the file and merges the outcome into its record.
// Returns the job ID once a job row exists, even on failure.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	file, err := p.files.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(file.FileExt)
	if format == "" {
		// no backend handles this extension; the job still records the
		// attempt and closes with a stored unsupported result
		format = constants.UNKNOWN
	}

	job, err := p.jobs.Start(ctx, file.ID, file.ProjectID, file.Kind, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, err
	}

	switch file.Kind {
	case string(constants.KindInvoice):
		err = p.processInvoice(ctx, job.ID, file)
	default:
		err = p.processContract(ctx, job.ID, file)
	}
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, err
	}
	return job.ID, nil
}

func (p *Processor) processContract(ctx context.Context, jobID uuid.UUID, file *ent.DocumentFile) error {
	res, err := p.parser.ParseContract(ctx, file.SourcePath)
	if err != nil {
		if parser.IsUnsupported(err) {
			res = parser.UnsupportedContractResult(err.Error())
		} else {
			return err
		}
	}

	blob, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := parser.ValidateJSONAgainstSchema(p.contractSchema, blob); err != nil {
		p.logger.Error("contract result failed schema validation", "job_id", jobID, "error", err)
		return fmt.Errorf("result validation: %w", err)
	}

	if mergeable(res.ParseStatus) {
		c, err := p.contracts.EnsureForFile(ctx, file)
		if err != nil {
			return err
		}
		changed := merge.ApplyContract(c, res)
		if _, err := p.contracts.SaveFields(ctx, c); err != nil {
			return err
		}
		p.logger.Info("contract fields merged", "job_id", jobID, "contract_id", c.ID, "changed", changed)
	}

	return p.jobs.FinishSuccess(ctx, jobID, repository.JobResult{
		ParseStatus: string(res.ParseStatus),
		NeedsReview: res.ParseStatus == constants.ParseStatusPartial,
		RawText:     res.RawText,
		ResultJSON:  blob,
	})
}

func (p *Processor) processInvoice(ctx context.Context, jobID uuid.UUID, file *ent.DocumentFile) error {
	res, err := p.parser.ParseInvoice(ctx, file.SourcePath)
	if err != nil {
		if parser.IsUnsupported(err) {
			res = parser.UnsupportedInvoiceResult(err.Error())
		} else {
			return err
		}
	}

	blob, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := parser.ValidateJSONAgainstSchema(p.invoiceSchema, blob); err != nil {
		p.logger.Error("invoice result failed schema validation", "job_id", jobID, "error", err)
		return fmt.Errorf("result validation: %w", err)
	}

	if mergeable(res.ParseStatus) {
		inv, err := p.invoices.EnsureForFile(ctx, file)
		if err != nil {
			return err
		}
		changed := merge.ApplyInvoice(inv, res)
		if _, err := p.invoices.SaveFields(ctx, inv); err != nil {
			return err
		}
		p.logger.Info("invoice fields merged", "job_id", jobID, "invoice_id", inv.ID, "changed", changed)
	}

	return p.jobs.FinishSuccess(ctx, jobID, repository.JobResult{
		ParseStatus: string(res.ParseStatus),
		NeedsReview: res.ParseStatus == constants.ParseStatusPartial,
		RawText:     res.RawText,
		ResultJSON:  blob,
	})
}

// mergeable reports whether a parse outcome carries fields worth merging.
// Failed and unsupported results only go to the job row.
func mergeable(status constants.ParseStatus) bool {
	return status == constants.ParseStatusPartial || status == constants.ParseStatusFull
}
