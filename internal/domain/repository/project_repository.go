package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Project, error)
	ListAll(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
}
