package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Activity, error)
}
