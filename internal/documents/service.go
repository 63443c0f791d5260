package documents

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service reads back parsed contracts, invoices, and parse jobs.
type Service struct {
	contractRepo repository.ContractRepository
	invoiceRepo  repository.InvoiceRepository
	jobRepo      repository.ParseJobRepository
	logger       *slog.Logger
}

func NewService(contracts repository.ContractRepository, invoices repository.InvoiceRepository, jobs repository.ParseJobRepository, logger *slog.Logger) *Service {
	return &Service{
		contractRepo: contracts,
		invoiceRepo:  invoices,
		jobRepo:      jobs,
		logger:       logger,
	}
}

func parseID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

// ListContracts returns the project's contracts in creation order.
func (s *Service) ListContracts(ctx context.Context, projectID string) ([]*entity.Contract, error) {
	id, err := parseID(projectID, "project_id")
	if err != nil {
		return nil, err
	}
	out, err := s.contractRepo.ListContracts(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list contracts: %v", err)
	}
	s.logger.Info("contracts listed", "project_id", id, "count", len(out))
	return out, nil
}

// ListInvoices returns the project's invoices in creation order.
func (s *Service) ListInvoices(ctx context.Context, projectID string) ([]*entity.Invoice, error) {
	id, err := parseID(projectID, "project_id")
	if err != nil {
		return nil, err
	}
	out, err := s.invoiceRepo.ListInvoices(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}
	s.logger.Info("invoices listed", "project_id", id, "count", len(out))
	return out, nil
}

// GetParseJob returns one parse job by ID.
func (s *Service) GetParseJob(ctx context.Context, jobID string) (*entity.ParseJob, error) {
	id, err := parseID(jobID, "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "parse job %s: %v", id, err)
	}
	return job, nil
}

// ListParseJobs returns the project's jobs in start order.
func (s *Service) ListParseJobs(ctx context.Context, projectID string) ([]*entity.ParseJob, error) {
	id, err := parseID(projectID, "project_id")
	if err != nil {
		return nil, err
	}
	out, err := s.jobRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list parse jobs: %v", err)
	}
	return out, nil
}
