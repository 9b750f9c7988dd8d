package service

import (
	"context"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-service/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	store repository.ProjectStore
}

// NewProjectService creates a new project service
func NewProjectService(store repository.ProjectStore) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// Create validates the payload, adds the caller to the member list and persists the project.
// Validation failures return domain.ErrValidation without touching the store.
func (s *ProjectService) Create(ctx context.Context, caller string, req domain.CreateProjectRequest) (*domain.Project, error) {
	req.Trim()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProject()
	if caller != "" && !p.HasMember(caller) {
		p.MembersList = append(p.MembersList, caller)
	}
	return s.store.Create(ctx, p)
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Get returns a single project by its project_id
func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.store.GetByProjectID(ctx, projectID)
}

// Update applies the fields present in req. project_id is never changed.
func (s *ProjectService) Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	return s.store.Update(ctx, projectID, req.Fields())
}

// Delete removes a project, reporting whether one existed
func (s *ProjectService) Delete(ctx context.Context, projectID string) (bool, error) {
	return s.store.Delete(ctx, projectID)
}
