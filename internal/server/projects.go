package server

import (
	"context"
	"log/slog"

	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/projects"
	"github.com/zhenweng/contract-parser/internal/utils"
)

type ProjectServer struct {
	parserpb.UnimplementedProjectsServiceServer
	svc    *projects.Service
	logger *slog.Logger
}

func NewProjectServer(svc *projects.Service, logger *slog.Logger) *ProjectServer {
	return &ProjectServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateProject creates a new project.
func (s *ProjectServer) CreateProject(ctx context.Context, req *parserpb.CreateProjectRequest) (*parserpb.CreateProjectResponse, error) {
	p, err := s.svc.CreateProject(ctx, projects.CreateProjectRequest{
		Name:        req.GetName(),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, err
	}

	return &parserpb.CreateProjectResponse{
		Project: utils.ToPBProject(p),
	}, nil
}

// ListProjects lists all the projects.
func (s *ProjectServer) ListProjects(ctx context.Context, _ *parserpb.ListProjectsRequest) (*parserpb.ListProjectsResponse, error) {
	plist, err := s.svc.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*parserpb.Project, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProject(p))
	}
	return &parserpb.ListProjectsResponse{Projects: out}, nil
}
