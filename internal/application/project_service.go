package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devpad-api/internal/domain/entity"
	repo "github.com/oksasatya/devpad-api/internal/domain/repository"
)

type ProjectService struct {
	Projects repo.ProjectRepository
	Logger   *logrus.Logger
}

func NewProjectService(projects repo.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Projects: projects, Logger: logger}
}

// List returns every project owned by the caller, newest-created first.
func (s *ProjectService) List(ctx context.Context, callerID string) ([]*entity.Project, error) {
	return s.Projects.ListByOwner(ctx, callerID)
}

// Create stores a project owned by the caller. Ownership is fixed here
// and never changes afterwards.
func (s *ProjectService) Create(ctx context.Context, callerID, title string, code json.RawMessage) (*entity.Project, error) {
	p := &entity.Project{
		UserID: callerID,
		Title:  title,
		Code:   code,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get resolves the project and runs the ownership guard. Existence is
// checked first: an unknown id is a 404 regardless of who asks.
func (s *ProjectService) Get(ctx context.Context, callerID, projectID string) (*entity.Project, error) {
	p, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if err := AuthorizeOwner(p.UserID, callerID); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateInput carries only the supplied fields. Title nil means leave
// unchanged. CodeSet distinguishes an absent code from an explicit
// null, which clears the payload.
type UpdateInput struct {
	Title   *string
	Code    json.RawMessage
	CodeSet bool
}

func (s *ProjectService) Update(ctx context.Context, callerID, projectID string, in UpdateInput) (*entity.Project, error) {
	p, err := s.Get(ctx, callerID, projectID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.CodeSet {
		p.Code = in.Code
	}
	if err := s.Projects.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, callerID, projectID string) error {
	if _, err := s.Get(ctx, callerID, projectID); err != nil {
		return err
	}
	if err := s.Projects.Delete(ctx, projectID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}
