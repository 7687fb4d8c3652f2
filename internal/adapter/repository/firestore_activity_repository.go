package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type firestoreActivityRepository struct {
	client *firestore.Client
}

func NewFirestoreActivityRepository(client *firestore.Client) repository.ActivityRepository {
	return &firestoreActivityRepository{
		client: client,
	}
}

func (r *firestoreActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	_, err := r.client.Collection("activities").Doc(activity.ID).Set(ctx, activity)
	if err != nil {
		return errors.Internal("Failed to create activity", err)
	}

	return nil
}

func (r *firestoreActivityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	query := r.client.Collection("activities").
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, query)
}

func (r *firestoreActivityRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Activity, error) {
	query := r.client.Collection("activities").
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc)
	return r.collect(ctx, query)
}

func (r *firestoreActivityRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Activity, error) {
	iter := query.Documents(ctx)
	var activities []*entity.Activity

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while listing activities: %v", err)
			return nil, errors.Internal("Failed to list activities", err)
		}

		var activity entity.Activity
		if err := doc.DataTo(&activity); err != nil {
			logger.Warn("Skipping malformed activity %s: %v", doc.Ref.ID, err)
			continue
		}
		activity.ID = doc.Ref.ID
		activities = append(activities, &activity)
	}

	return activities, nil
}
