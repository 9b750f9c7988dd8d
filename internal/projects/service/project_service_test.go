package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectStore) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectStore) Update(ctx context.Context, projectID string, fields map[string]interface{}) (*domain.Project, error) {
	args := m.Called(ctx, projectID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectStore) Delete(ctx context.Context, projectID string) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("appends caller and trims keys", func(t *testing.T) {
		store := new(MockProjectStore)
		svc := NewProjectService(store)

		store.On("Create", ctx, mock.MatchedBy(func(p domain.Project) bool {
			return p.ProjectID == "P1" &&
				p.ProjectName == "Demo" &&
				assert.ObjectsAreEqual([]string{"bob", "alice"}, p.MembersList) &&
				assert.ObjectsAreEqual([]string{}, p.HardwareSetID)
		})).Return(&domain.Project{ID: "x", ProjectID: "P1"}, nil).Once()

		p, err := svc.Create(ctx, "alice", domain.CreateProjectRequest{
			ProjectID:   "  P1 ",
			ProjectName: "Demo\t",
			MembersList: []string{"bob"},
		})
		require.NoError(t, err)
		assert.Equal(t, "x", p.ID)
		store.AssertExpectations(t)
	})

	t.Run("does not duplicate an existing member", func(t *testing.T) {
		store := new(MockProjectStore)
		svc := NewProjectService(store)

		store.On("Create", ctx, mock.MatchedBy(func(p domain.Project) bool {
			return assert.ObjectsAreEqual([]string{"alice"}, p.MembersList)
		})).Return(&domain.Project{ProjectID: "P1"}, nil).Once()

		_, err := svc.Create(ctx, "alice", domain.CreateProjectRequest{
			ProjectID: "P1", ProjectName: "Demo", MembersList: []string{"alice"},
		})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("whitespace-only name is rejected before the store", func(t *testing.T) {
		store := new(MockProjectStore)
		svc := NewProjectService(store)

		_, err := svc.Create(ctx, "alice", domain.CreateProjectRequest{ProjectID: "P1", ProjectName: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		store := new(MockProjectStore)
		svc := NewProjectService(store)
		store.On("Create", ctx, mock.Anything).Return(nil, domain.ErrDuplicate).Once()

		_, err := svc.Create(ctx, "alice", domain.CreateProjectRequest{ProjectID: "P1", ProjectName: "Demo"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestProjectService_UpdateStripsProjectID(t *testing.T) {
	ctx := context.Background()
	store := new(MockProjectStore)
	svc := NewProjectService(store)

	newID := "P2"
	desc := "updated"
	store.On("Update", ctx, "P1", map[string]interface{}{domain.FieldProjectDesc: "updated"}).
		Return(&domain.Project{ProjectID: "P1", ProjectDesc: "updated"}, nil).Once()

	p, err := svc.Update(ctx, "P1", domain.UpdateProjectRequest{ProjectID: &newID, ProjectDesc: &desc})
	require.NoError(t, err)
	assert.Equal(t, "P1", p.ProjectID)
	store.AssertExpectations(t)
}

func TestProjectService_Passthrough(t *testing.T) {
	ctx := context.Background()
	store := new(MockProjectStore)
	svc := NewProjectService(store)

	store.On("List", ctx).Return([]domain.Project{{ProjectID: "P1"}}, nil).Once()
	store.On("GetByProjectID", ctx, "nope").Return(nil, domain.ErrNotFound).Once()
	store.On("Delete", ctx, "P1").Return(false, errors.New("boom")).Once()

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Delete(ctx, "P1")
	assert.EqualError(t, err, "boom")

	store.AssertExpectations(t)
}
