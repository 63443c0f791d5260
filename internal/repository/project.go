package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/gen/ent"
	"github.com/zhenweng/contract-parser/gen/ent/project"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/utils"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Project, error)
	GetOrCreate(ctx context.Context, p *entity.Project) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{
		client: client,
		logger: logger,
	}
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Project, error) {
	return r.client.Project.
		Query().
		Where(project.ID(id)).
		Only(ctx)
}

func (r *projectRepository) GetOrCreate(ctx context.Context, p *entity.Project) (*entity.Project, error) {
	if existing, err := r.client.Project.Query().
		Where(project.Name(p.Name)).
		Only(ctx); err == nil {
		return utils.ToProject(existing), nil
	}
	row, err := r.client.Project.Create().
		SetName(p.Name).
		SetNillableDescription(p.Description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", p.Name, "error", err)
		return nil, err
	}
	return utils.ToProject(row), nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	plist, err := r.client.Project.Query().Order(project.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	out := make([]*entity.Project, len(plist))
	for i, row := range plist {
		out[i] = utils.ToProject(row)
	}
	return out, nil
}

func (r *projectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Project.Query().Where(project.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check project existence", "project_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
