package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/gen/ent"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/parser"
	"github.com/zhenweng/contract-parser/internal/repository"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

type stubFiles struct {
	file *ent.DocumentFile
}

func (s *stubFiles) GetByID(context.Context, uuid.UUID) (*ent.DocumentFile, error) {
	return s.file, nil
}

func (s *stubFiles) GetByProjectAndHash(context.Context, uuid.UUID, []byte) (*ent.DocumentFile, error) {
	return nil, nil
}

func (s *stubFiles) Create(context.Context, uuid.UUID, string, string, string, string, int, []byte, time.Time) (*ent.DocumentFile, error) {
	return nil, nil
}

func (s *stubFiles) UpsertByHash(context.Context, uuid.UUID, string, string, string, string, int, []byte, time.Time) (*ent.DocumentFile, bool, error) {
	return nil, false, nil
}

func (s *stubFiles) LinkContract(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (s *stubFiles) LinkInvoice(context.Context, uuid.UUID, uuid.UUID) error  { return nil }

type stubJobs struct {
	jobID         uuid.UUID
	startedFormat string
	finished      bool
	failed        string
	result        repository.JobResult
}

func (s *stubJobs) Start(_ context.Context, _, _ uuid.UUID, _, format, _ string) (*ent.ParseJob, error) {
	s.jobID = uuid.New()
	s.startedFormat = format
	return &ent.ParseJob{ID: s.jobID}, nil
}

func (s *stubJobs) FinishSuccess(_ context.Context, _ uuid.UUID, res repository.JobResult) error {
	s.finished = true
	s.result = res
	return nil
}

func (s *stubJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.failed = message
	return nil
}

func (s *stubJobs) GetByID(context.Context, uuid.UUID) (*entity.ParseJob, error) { return nil, nil }

func (s *stubJobs) ListByProject(context.Context, uuid.UUID) ([]*entity.ParseJob, error) {
	return nil, nil
}

type stubContracts struct {
	ensured bool
}

func (s *stubContracts) GetByID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, nil
}

func (s *stubContracts) ListContracts(context.Context, uuid.UUID) ([]*entity.Contract, error) {
	return nil, nil
}

func (s *stubContracts) EnsureForFile(context.Context, *ent.DocumentFile) (*entity.Contract, error) {
	s.ensured = true
	return &entity.Contract{ID: uuid.New()}, nil
}

func (s *stubContracts) SaveFields(_ context.Context, c *entity.Contract) (*entity.Contract, error) {
	return c, nil
}

type stubInvoices struct {
	ensured bool
}

func (s *stubInvoices) GetByID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoices) ListInvoices(context.Context, uuid.UUID) ([]*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoices) EnsureForFile(context.Context, *ent.DocumentFile) (*entity.Invoice, error) {
	s.ensured = true
	return &entity.Invoice{ID: uuid.New()}, nil
}

func (s *stubInvoices) SaveFields(_ context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	return inv, nil
}

func newTestProcessor(file *ent.DocumentFile) (*Processor, *stubJobs, *stubContracts, *stubInvoices) {
	jobs := &stubJobs{}
	contracts := &stubContracts{}
	invoices := &stubInvoices{}
	p := parser.New(parser.Config{}, textextract.NewExtractor(textextract.Config{}, nil), nil)
	return NewProcessor(&stubFiles{file: file}, jobs, contracts, invoices, p, nil), jobs, contracts, invoices
}

func TestProcessFileStoresUnsupportedResult(t *testing.T) {
	file := &ent.DocumentFile{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Kind:       string(constants.KindContract),
		SourcePath: "legacy.doc",
		FileExt:    "doc",
	}
	proc, jobs, contracts, _ := newTestProcessor(file)

	jobID, err := proc.ProcessFile(context.Background(), file.ID)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if jobID != jobs.jobID {
		t.Errorf("job id = %v, want %v", jobID, jobs.jobID)
	}
	if jobs.startedFormat != constants.UNKNOWN {
		t.Errorf("job format = %q, want %q", jobs.startedFormat, constants.UNKNOWN)
	}
	if !jobs.finished {
		t.Fatal("job must be closed with a stored result")
	}
	if jobs.failed != "" {
		t.Errorf("job must not be marked failed, got %q", jobs.failed)
	}
	if jobs.result.ParseStatus != string(constants.ParseStatusUnsupported) {
		t.Errorf("parse_status = %q, want unsupported", jobs.result.ParseStatus)
	}
	if jobs.result.NeedsReview {
		t.Error("unsupported result must not be flagged for review")
	}
	if contracts.ensured {
		t.Error("unsupported result must not touch the contract record")
	}

	var res parser.ContractResult
	if err := json.Unmarshal(jobs.result.ResultJSON, &res); err != nil {
		t.Fatalf("stored result blob must be valid JSON: %v", err)
	}
	if res.ParseMessage != parser.ErrDocUnsupported.Error() {
		t.Errorf("parse_message = %q, want the .doc-specific message", res.ParseMessage)
	}
}

func TestProcessFileUnsupportedInvoice(t *testing.T) {
	file := &ent.DocumentFile{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Kind:       string(constants.KindInvoice),
		SourcePath: "scan.bmp",
		FileExt:    "bmp",
	}
	proc, jobs, _, invoices := newTestProcessor(file)

	if _, err := proc.ProcessFile(context.Background(), file.ID); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if jobs.result.ParseStatus != string(constants.ParseStatusUnsupported) {
		t.Errorf("parse_status = %q, want unsupported", jobs.result.ParseStatus)
	}
	if invoices.ensured {
		t.Error("unsupported result must not touch the invoice record")
	}
}
