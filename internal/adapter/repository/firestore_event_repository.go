package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) repository.EventRepository {
	return &firestoreEventRepository{
		client: client,
	}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	_, err := r.client.Collection("events").Doc(event.ID).Set(ctx, event)
	if err != nil {
		return errors.Internal("Failed to create event", err)
	}

	return nil
}

func (r *firestoreEventRepository) ListUpcoming(ctx context.Context, clientID, from string) ([]*entity.Event, error) {
	query := r.client.Collection("events").
		Where("date", ">=", from).
		OrderBy("date", firestore.Asc)
	if clientID != "" {
		query = query.Where("clientId", "==", clientID)
	}

	iter := query.Documents(ctx)
	var events []*entity.Event

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while listing events: %v", err)
			return nil, errors.Internal("Failed to list events", err)
		}

		var event entity.Event
		if err := doc.DataTo(&event); err != nil {
			logger.Warn("Skipping malformed event %s: %v", doc.Ref.ID, err)
			continue
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}

	return events, nil
}

func (r *firestoreEventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("events").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete event", err)
	}

	return nil
}
