package projects

import (
	"context"
	"log/slog"
	"strings"

	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service handles project business logic.
type Service struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// NewService creates a new project service.
func NewService(projectRepo repository.ProjectRepository, logger *slog.Logger) *Service {
	return &Service{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProjectRequest represents project creation parameters.
type CreateProjectRequest struct {
	Name        string
	Description string
}

// CreateProject creates a new project, returning the existing one when the
// name is already taken.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*entity.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	desc := strings.TrimSpace(req.Description)
	var descPtr *string
	if desc != "" {
		descPtr = &desc
	}

	p, err := s.projectRepo.GetOrCreate(ctx, &entity.Project{
		Name:        name,
		Description: descPtr,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get or create project: %v", err)
	}

	s.logger.Info("project created successfully", "project_id", p.ID, "name", p.Name)
	return p, nil
}

// ListProjects returns all projects.
func (s *Service) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	plist, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		// DB error already logged in repository layer
		return nil, status.Errorf(codes.Internal, "list projects: %v", err)
	}

	s.logger.Info("projects listed successfully", "count", len(plist))
	return plist, nil
}
