package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	now := time.Now()
	project.CreatedAt = now
	project.LastUpdated = now

	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection("projects").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, errors.Internal("Failed to parse project data", err)
	}
	project.ID = doc.Ref.ID

	return &project, nil
}

func (r *firestoreProjectRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Project, error) {
	query := r.client.Collection("projects").Where("clientId", "==", clientID)
	return r.collect(ctx, query)
}

func (r *firestoreProjectRepository) ListAll(ctx context.Context) ([]*entity.Project, error) {
	return r.collect(ctx, r.client.Collection("projects").Query)
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.LastUpdated = time.Now()

	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to update project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Project, error) {
	iter := query.Documents(ctx)
	var projects []*entity.Project

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while listing projects: %v", err)
			return nil, errors.Internal("Failed to list projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			logger.Warn("Skipping malformed project %s: %v", doc.Ref.ID, err)
			continue
		}
		project.ID = doc.Ref.ID
		projects = append(projects, &project)
	}

	return projects, nil
}
