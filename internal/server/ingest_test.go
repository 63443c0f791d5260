package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/gen/ent"
	"github.com/zhenweng/contract-parser/internal/async"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/ingest"
)

type stubIngestor struct {
	result ingest.IngestionResult
}

func (s *stubIngestor) IngestPath(context.Context, uuid.UUID, string, string) (ingest.IngestionResult, error) {
	return s.result, nil
}

func (s *stubIngestor) IngestDirectory(context.Context, uuid.UUID, string, string, bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return []ingest.IngestionResult{s.result}, ingest.DirStats{}, nil
}

type recordQueue struct {
	jobs []async.Job
}

func (q *recordQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordQueue) Shutdown(context.Context) {}

type stubProjects struct{}

func (stubProjects) GetByID(context.Context, uuid.UUID) (*ent.Project, error) { return nil, nil }

func (stubProjects) GetOrCreate(_ context.Context, p *entity.Project) (*entity.Project, error) {
	return p, nil
}

func (stubProjects) ListProjects(context.Context) ([]*entity.Project, error) { return nil, nil }
func (stubProjects) Exists(context.Context, uuid.UUID) (bool, error)         { return true, nil }

func TestIngestFileForceRequeuesDuplicate(t *testing.T) {
	ing := &stubIngestor{result: ingest.IngestionResult{
		FileID:       uuid.New().String(),
		Deduplicated: true,
		UploadedAt:   time.Now(),
	}}
	q := &recordQueue{}
	s := NewIngestionServer(ing, q, stubProjects{}, slog.Default())

	req := &parserpb.IngestFileRequest{
		ProjectId: uuid.New().String(),
		Path:      "/data/contracts/a.pdf",
		Kind:      "CONTRACT",
	}
	if _, err := s.IngestFile(context.Background(), req); err != nil {
		t.Fatalf("IngestFile: %v", err)
	}
	if len(q.jobs) != 0 {
		t.Fatalf("duplicate must not re-queue without force, got %d jobs", len(q.jobs))
	}

	req.Force = true
	if _, err := s.IngestFile(context.Background(), req); err != nil {
		t.Fatalf("IngestFile(force): %v", err)
	}
	if len(q.jobs) != 1 {
		t.Fatalf("force must re-queue the duplicate, got %d jobs", len(q.jobs))
	}
	if !q.jobs[0].Force {
		t.Error("queued job must carry the force flag")
	}
}

func TestIngestFileQueuesNewFile(t *testing.T) {
	ing := &stubIngestor{result: ingest.IngestionResult{
		FileID:     uuid.New().String(),
		UploadedAt: time.Now(),
	}}
	q := &recordQueue{}
	s := NewIngestionServer(ing, q, stubProjects{}, slog.Default())

	resp, err := s.IngestFile(context.Background(), &parserpb.IngestFileRequest{
		ProjectId: uuid.New().String(),
		Path:      "/data/contracts/b.pdf",
	})
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}
	if len(q.jobs) != 1 {
		t.Fatalf("new file must be queued, got %d jobs", len(q.jobs))
	}
	if resp.GetError() != "" {
		t.Errorf("unexpected response error %q", resp.GetError())
	}
}
