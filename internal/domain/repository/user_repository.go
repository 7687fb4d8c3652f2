package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListClients(ctx context.Context) ([]*entity.User, error)
}
