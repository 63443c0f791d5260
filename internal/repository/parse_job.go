package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/gen/ent"
	entjob "github.com/zhenweng/contract-parser/gen/ent/parsejob"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/utils"
)

// JobResult carries the fields persisted when a parse invocation produced a
// storable outcome, including failed and unsupported ones.
type JobResult struct {
	ParseStatus string
	NeedsReview bool
	RawText     string
	ResultJSON  json.RawMessage
}

type ParseJobRepository interface {
	Start(ctx context.Context, fileID, projectID uuid.UUID, kind, format, status string) (*ent.ParseJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, res JobResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID, projectID uuid.UUID, kind, format, status string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetProjectID(projectID).
		SetKind(kind).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "kind", kind, "format", format)
	return job, nil
}

func (r *parseJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, res JobResult) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRawText(res.RawText).
		SetParseStatus(res.ParseStatus).
		SetNeedsReview(res.NeedsReview).
		SetResultJSON(res.ResultJSON).
		SetFinishedAt(time.Now()).
		SetStatus("SUCCEEDED").
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(SUCCEEDED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (SUCCEEDED)", "job_id", jobID, "parse_status", res.ParseStatus)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus("FAILED").
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	row, err := r.ent.ParseJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToParseJob(row), nil
}

func (r *parseJobRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ParseJob, error) {
	rows, err := r.ent.ParseJob.Query().
		Where(entjob.ProjectID(projectID)).
		Order(entjob.ByStartedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list parse jobs", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make([]*entity.ParseJob, len(rows))
	for i, row := range rows {
		out[i] = utils.ToParseJob(row)
	}
	return out, nil
}
