package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

// MemoryRepository keeps projects in process memory.
// It is meant for local development and tests; data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]domain.Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byKey: make(map[string]domain.Project)}
}

func (r *MemoryRepository) Create(_ context.Context, p domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[p.ProjectID]; exists {
		return nil, domain.ErrDuplicate
	}

	stored := domain.NewProject(p.ProjectID, p.ProjectName, p.ProjectDesc, p.MembersList, p.NumOfHardwareSets, p.HardwareSetID)
	stored.ID = normalizeID(primitive.NewObjectID())
	r.byKey[stored.ProjectID] = stored
	r.order = append(r.order, stored.ProjectID)

	return clone(stored), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *clone(r.byKey[key]))
	}
	return out, nil
}

func (r *MemoryRepository) GetByProjectID(_ context.Context, projectID string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byKey[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(p), nil
}

func (r *MemoryRepository) Update(_ context.Context, projectID string, fields map[string]interface{}) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byKey[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := applyFields(&p, sanitizeFields(fields)); err != nil {
		return nil, err
	}
	r.byKey[projectID] = p
	return clone(p), nil
}

func (r *MemoryRepository) Delete(_ context.Context, projectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[projectID]; !ok {
		return false, nil
	}
	delete(r.byKey, projectID)
	for i, key := range r.order {
		if key == projectID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// clone returns a copy that shares no slices with the stored record.
func clone(p domain.Project) *domain.Project {
	c := domain.NewProject(p.ProjectID, p.ProjectName, p.ProjectDesc, p.MembersList, p.NumOfHardwareSets, p.HardwareSetID)
	c.ID = p.ID
	return &c
}
