package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error)
	ListAll(ctx context.Context) ([]*entity.Payment, error)
}
