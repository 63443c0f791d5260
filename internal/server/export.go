package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/export"
)

type ExportServer struct {
	parserpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportDocuments(ctx context.Context, req *parserpb.ExportDocumentsRequest) (*parserpb.ExportDocumentsResponse, error) {
	pid := strings.TrimSpace(req.GetProjectId())
	projectID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id must be a UUID")
	}

	xlsx, err := s.svc.ExportProjectXLSX(ctx, projectID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "project_id", pid, "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &parserpb.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
