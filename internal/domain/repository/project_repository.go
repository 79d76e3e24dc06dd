package repository

import (
	"context"

	"github.com/oksasatya/devpad-api/internal/domain/entity"
)

// ProjectRepository defines the interface for project-related database operations.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	// ListByOwner returns the owner's projects ordered newest-created first.
	ListByOwner(ctx context.Context, userID string) ([]*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id string) error
}
