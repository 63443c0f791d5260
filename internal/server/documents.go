package server

import (
	"context"
	"log/slog"

	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/documents"
	"github.com/zhenweng/contract-parser/internal/utils"
)

type DocumentServer struct {
	parserpb.UnimplementedDocumentsServiceServer
	svc    *documents.Service
	logger *slog.Logger
}

func NewDocumentServer(svc *documents.Service, logger *slog.Logger) *DocumentServer {
	return &DocumentServer{
		svc:    svc,
		logger: logger,
	}
}

func (s *DocumentServer) ListContracts(ctx context.Context, req *parserpb.ListContractsRequest) (*parserpb.ListContractsResponse, error) {
	list, err := s.svc.ListContracts(ctx, req.GetProjectId())
	if err != nil {
		return nil, err
	}
	out := make([]*parserpb.Contract, 0, len(list))
	for _, c := range list {
		out = append(out, utils.ToPBContract(c))
	}
	return &parserpb.ListContractsResponse{Contracts: out}, nil
}

func (s *DocumentServer) ListInvoices(ctx context.Context, req *parserpb.ListInvoicesRequest) (*parserpb.ListInvoicesResponse, error) {
	list, err := s.svc.ListInvoices(ctx, req.GetProjectId())
	if err != nil {
		return nil, err
	}
	out := make([]*parserpb.Invoice, 0, len(list))
	for _, inv := range list {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &parserpb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *DocumentServer) GetParseJob(ctx context.Context, req *parserpb.GetParseJobRequest) (*parserpb.GetParseJobResponse, error) {
	job, err := s.svc.GetParseJob(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}
	return &parserpb.GetParseJobResponse{Job: utils.ToPBParseJob(job)}, nil
}

func (s *DocumentServer) ListParseJobs(ctx context.Context, req *parserpb.ListParseJobsRequest) (*parserpb.ListParseJobsResponse, error) {
	jobs, err := s.svc.ListParseJobs(ctx, req.GetProjectId())
	if err != nil {
		return nil, err
	}
	out := make([]*parserpb.ParseJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBParseJob(j))
	}
	return &parserpb.ListParseJobsResponse{Jobs: out}, nil
}
