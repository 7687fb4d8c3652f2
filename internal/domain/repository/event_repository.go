package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error

	// ListUpcoming returns events with date >= from ("YYYY-MM-DD"), ordered
	// by date ascending. An empty clientID lists events for all clients.
	ListUpcoming(ctx context.Context, clientID, from string) ([]*entity.Event, error)

	Delete(ctx context.Context, id string) error
}
