package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zhenweng/contract-parser/constants"
	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/async"
	"github.com/zhenweng/contract-parser/internal/ingest"
	"github.com/zhenweng/contract-parser/internal/repository"
)

type IngestionServer struct {
	parserpb.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	projectRepo repository.ProjectRepository
	queue       async.Queue
	logger      *slog.Logger
}

func NewIngestionServer(ing ingest.Ingestor, q async.Queue, p repository.ProjectRepository, logger *slog.Logger) *IngestionServer {
	return &IngestionServer{
		ingestor:    ing,
		queue:       q,
		projectRepo: p,
		logger:      logger,
	}
}

func normalizeKind(kind string) (string, error) {
	k := strings.ToUpper(strings.TrimSpace(kind))
	if k == "" {
		return string(constants.KindContract), nil
	}
	for _, allowed := range constants.DocKinds {
		if k == allowed {
			return k, nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "kind must be one of %v", constants.DocKinds)
}

// IngestFile registers one file and queues it for parsing.
func (s *IngestionServer) IngestFile(ctx context.Context, req *parserpb.IngestFileRequest) (*parserpb.IngestResponse, error) {
	pid := strings.TrimSpace(req.GetProjectId())
	if pid == "" {
		s.logger.Error("ingest request missing project_id")
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	projectID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid project_id format for ingest", "project_id", pid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "project_id must be a UUID")
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "project_id", projectID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	kind, err := normalizeKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	if exists, _ := s.projectRepo.Exists(ctx, projectID); !exists {
		s.logger.Error("project not found for ingest", "project_id", projectID)
		return nil, status.Error(codes.InvalidArgument, "project not found")
	}

	s.logger.Info("starting file ingest", "project_id", projectID, "path", path, "kind", kind)
	r, err := s.ingestor.IngestPath(ctx, projectID, kind, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "project_id", projectID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResult(r)

	if fileID, err := uuid.Parse(r.FileID); err == nil {
		if !r.Deduplicated || req.GetForce() {
			if err := s.queue.Enqueue(ctx, async.Job{
				FileID:      fileID,
				Force:       req.GetForce(),
				SubmittedAt: time.Now(),
			}); err != nil {
				s.logger.Error("enqueue failed for file", "file_id", r.FileID, "err", err)
				resp.Error = err.Error()
			}
		}
	}
	return resp, nil
}

// IngestDirectory registers all matching files under a root and queues the
// non-duplicates for parsing.
func (s *IngestionServer) IngestDirectory(ctx context.Context, req *parserpb.IngestDirectoryRequest) (*parserpb.IngestDirectoryResponse, error) {
	pid := strings.TrimSpace(req.GetProjectId())
	if pid == "" {
		s.logger.Error("ingest directory request missing project_id")
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	projectID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid project_id format for ingest directory", "project_id", pid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "project_id must be a UUID")
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "project_id", projectID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	kind, err := normalizeKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	if exists, _ := s.projectRepo.Exists(ctx, projectID); !exists {
		s.logger.Error("project not found for ingest directory", "project_id", projectID)
		return nil, status.Error(codes.InvalidArgument, "project not found")
	}

	s.logger.Info("starting directory ingest", "project_id", projectID, "root", root, "kind", kind, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, projectID, kind, root, req.GetSkipHidden())
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "project_id", projectID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &parserpb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*parserpb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngestResult(r)
		if r.Err == "" && r.FileID != "" && !r.Deduplicated {
			if fileID, err := uuid.Parse(r.FileID); err == nil {
				if err := s.queue.Enqueue(ctx, async.Job{
					FileID:      fileID,
					SubmittedAt: time.Now(),
				}); err != nil {
					s.logger.Error("enqueue failed for file", "file_id", r.FileID, "err", err)
					item.Error = err.Error()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func toPBIngestResult(r ingest.IngestionResult) *parserpb.IngestResponse {
	return &parserpb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
